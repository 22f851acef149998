package bidi

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// radians are shown with this many fractional digits
const radPrecision = 5

var (
	twoPi     = decimal.RequireFromString("6.283185307179586476925286766559005768394")
	fullTurns = map[string]decimal.Decimal{
		"deg":  decimal.NewFromInt(360),
		"grad": decimal.NewFromInt(400),
		"rad":  twoPi,
		"turn": decimal.NewFromInt(1),
	}
)

// FullTurn returns the magnitude of one full turn in the angle unit.
func FullTurn(unit string) (decimal.Decimal, bool) {
	t, ok := fullTurns[unit]
	return t, ok
}

// IsAngle reports whether the dimension carries an angle unit.
func IsAngle(d Dimension) bool {
	_, ok := fullTurns[d.UnitLower()]
	return ok
}

// MirrorAngle returns the angle producing the opposite rotation once the
// horizontal axis is flipped: one full turn minus the magnitude, in the same
// unit. No range clamping is done, so negative input ends above a full turn
// (-45deg gives 405deg). Mirroring twice returns the original magnitude.
func MirrorAngle(d Dimension) (Dimension, error) {
	unit := d.UnitLower()
	full, ok := fullTurns[unit]
	if !ok {
		return d, fmt.Errorf("unable to mirror '%s': %w", d, ErrNotAngle)
	}
	v := full.Sub(d.Value)
	if unit == "rad" {
		v = v.Round(radPrecision)
	}
	return NewDimension(v, d.Unit), nil
}
