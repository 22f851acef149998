package bidi

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// IsRTL reports whether dir is right-to-left.
func IsRTL(dir Direction) bool {
	return dir == DirectionRtl
}

// ResolveSide maps a logical side to the physical one for the direction:
// start is left and end is right in LTR, the other way around in RTL.
func ResolveSide(side LogicalSide, dir Direction) PhysicalSide {
	if (side == LogicalSideStart) != IsRTL(dir) {
		return PhysicalSideLeft
	}
	return PhysicalSideRight
}

// logicalKeyword resolves a whole logical keyword, ok is false for anything
// else. ste (start-to-end) follows the direction, ets is its opposite.
func logicalKeyword(word string, dir Direction) (string, bool) {
	switch strings.ToLower(word) {
	case "start":
		return ResolveSide(LogicalSideStart, dir).String(), true
	case "end":
		return ResolveSide(LogicalSideEnd, dir).String(), true
	case "ste":
		return dir.String(), true
	case "ets":
		return dir.Flip().String(), true
	}
	return word, false
}

// RenameLogical replaces hyphen separated start/end (and ste/ets) segments
// of an identifier: margin-start becomes margin-left in LTR and
// margin-right in RTL, a bare "start" becomes the side itself. Segments
// merely containing the letters (mix-blend-mode, flex-start's "flex") are
// left alone.
func RenameLogical(name string, dir Direction) string {
	if !hasLogicalSegment(name) {
		return name
	}
	segs := strings.Split(name, "-")
	for i, s := range segs {
		if r, ok := logicalKeyword(s, dir); ok {
			segs[i] = r
		}
	}
	return strings.Join(segs, "-")
}

func hasLogicalSegment(name string) bool {
	for s := range strings.SplitSeq(name, "-") {
		if _, ok := logicalKeyword(s, DirectionLtr); ok {
			return true
		}
	}
	return false
}

type directionKey struct{}

// ContextWithDirection returns a context carrying dir as the ambient writing
// direction. The parent context keeps its own.
func ContextWithDirection(ctx context.Context, dir Direction) context.Context {
	return context.WithValue(ctx, directionKey{}, dir)
}

// DirectionFromContext returns the ambient direction, LTR when none was set.
func DirectionFromContext(ctx context.Context) Direction {
	if dir, ok := ctx.Value(directionKey{}).(Direction); ok {
		return dir
	}
	return DirectionLtr
}

// WithDirection runs body with the ambient direction replaced by dir. The
// override exists only in the context handed to body, so whatever way body
// exits the caller's direction is intact.
func WithDirection[T any](ctx context.Context, dir Direction, body func(context.Context) (T, error)) (T, error) {
	return body(ContextWithDirection(ctx, dir))
}

var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Hebr": true, "Mand": true, "Nkoo": true,
	"Rohg": true, "Samr": true, "Syrc": true, "Thaa": true, "Yezi": true,
}

// DirectionForLanguage guesses the writing direction of a language tag from
// its (possibly inferred) script.
func DirectionForLanguage(tag language.Tag) Direction {
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return DirectionRtl
	}
	return DirectionLtr
}
