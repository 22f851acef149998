package bidi

import (
	"fmt"
	"strings"
)

// MediaWrapper puts a declaration under a condition selected by a
// breakpoint token.
type MediaWrapper interface {
	Wrap(breakpoint, declaration string) (string, error)
}

// BreakpointWrapper maps breakpoint names to min-width lengths. A token
// already written as a media condition, "(max-width: 40em)", is used
// verbatim.
type BreakpointWrapper map[string]string

func (w BreakpointWrapper) Wrap(breakpoint, declaration string) (string, error) {
	cond := strings.TrimSpace(breakpoint)
	if !strings.HasPrefix(cond, "(") {
		width, ok := w[cond]
		if !ok {
			return "", fmt.Errorf("unable to wrap declaration for '%s': %w", breakpoint, ErrUnknownBreakpoint)
		}
		cond = "(min-width: " + width + ")"
	}
	return "@media " + cond + " { " + declaration + "; }", nil
}
