package bidi

//go:generate go tool go-enum --marshal --names

// Writing direction.
// ENUM(ltr, rtl)
type Direction int

// Flip returns the opposite direction.
func (x Direction) Flip() Direction {
	if x == DirectionRtl {
		return DirectionLtr
	}
	return DirectionRtl
}

// Direction relative side.
// ENUM(start, end)
type LogicalSide int

// Absolute horizontal side.
// ENUM(left, right)
type PhysicalSide int

// Transformer family selected for a property.
// ENUM(identity, simple, sides, border-radius, background-image, background-position, shadow, transform, transform-origin, direction)
type Family int
