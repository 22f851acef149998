package bidi

import (
	"github.com/shopspring/decimal"
)

// Scaler converts lengths into a scale (root relative) unit. Implementations
// must be pure and leave dimensions they do not handle untouched.
type Scaler interface {
	Scale(Dimension) Dimension
}

// ScalerFunc adapts a function to Scaler.
type ScalerFunc func(Dimension) Dimension

func (f ScalerFunc) Scale(d Dimension) Dimension {
	return f(d)
}

// DefaultRemBase is the root font size used when none is configured.
var DefaultRemBase = decimal.NewFromInt(16)

const remPrecision = 5

// RemScaler converts px lengths to rem using Base pixels per rem.
type RemScaler struct {
	Base decimal.Decimal
}

func (s RemScaler) Scale(d Dimension) Dimension {
	if d.UnitLower() != "px" || s.Base.Sign() <= 0 {
		return d
	}
	return NewDimension(d.Value.Div(s.Base).Round(remPrecision), "rem")
}

// scaleTree converts every dimension leaf of n.
func scaleTree(n Node, s Scaler) Node {
	return walk(n, func(leaf Node) Node {
		if d, ok := leaf.(Dimension); ok {
			return s.Scale(d)
		}
		return leaf
	})
}
