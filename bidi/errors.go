package bidi

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAngle is returned when angle arithmetic is requested for a
	// dimension without an angle unit.
	ErrNotAngle = errors.New("not an angle")
	// ErrUnknownBreakpoint is returned by BreakpointWrapper for tokens it
	// has no condition for.
	ErrUnknownBreakpoint = errors.New("unknown breakpoint")
)

// ParseError reports malformed value nesting. No partial result accompanies
// it.
type ParseError struct {
	Input  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse value %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}
