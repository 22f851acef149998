package bidi

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// properties with a dedicated transformer, matched after dropping vendor
// prefixes
var families = map[string]Family{
	"border-radius":       FamilyBorderRadius,
	"background-image":    FamilyBackgroundImage,
	"background-position": FamilyBackgroundPosition,
	"direction":           FamilyDirection,
	"box-shadow":          FamilyShadow,
	"text-shadow":         FamilyShadow,
	"transform":           FamilyTransform,
	"transform-origin":    FamilyTransformOrigin,
}

// properties where start and end name grid lines, alignment positions or
// fonts and never a side
var logicalKeepers = map[string]bool{
	"grid-area":         true,
	"grid-row":          true,
	"grid-row-start":    true,
	"grid-row-end":      true,
	"grid-column":       true,
	"grid-column-start": true,
	"grid-column-end":   true,
	"font":              true,
	"font-family":       true,
}

// keepsLogical reports whether start/end keep their meaning in prop. Box
// alignment (align-*, justify-*, place-*) is flow relative by itself.
func keepsLogical(prop string) bool {
	if logicalKeepers[prop] {
		return true
	}
	for _, p := range []string{"align-", "justify-", "place-"} {
		if strings.HasPrefix(prop, p) {
			return true
		}
	}
	return false
}

type transformer func(Node, Direction) (Node, error)

var transformers = map[Family]transformer{
	FamilyIdentity:           func(v Node, _ Direction) (Node, error) { return v, nil },
	FamilySimple:             mirrorSimple,
	FamilySides:              mirrorSides,
	FamilyBorderRadius:       mirrorBorderRadius,
	FamilyBackgroundImage:    mirrorBackgroundImage,
	FamilyBackgroundPosition: mirrorBackgroundPosition,
	FamilyShadow:             mirrorShadow,
	FamilyTransform:          mirrorTransform,
	FamilyTransformOrigin:    mirrorTransformOrigin,
	FamilyDirection:          mirrorDirection,
}

// Classify selects the transformer family for a declaration. Custom
// properties are passed through, known properties win, then anything
// mentioning a logical side in its name or value, then shorthands of up to
// four lengths. Everything else is passed through.
func Classify(property string, value Node) Family {
	property = strings.TrimSpace(property)
	if strings.HasPrefix(property, "--") {
		return FamilyIdentity
	}
	prop := unprefixed(property)
	if f, ok := families[prop]; ok {
		return f
	}
	if keepsLogical(prop) {
		return FamilyIdentity
	}
	if hasLogicalSegment(prop) || hasLogicalKeyword(value) {
		return FamilySimple
	}
	if isSides(value) {
		return FamilySides
	}
	return FamilyIdentity
}

// Declaration is a single mirrored property/value pair.
type Declaration struct {
	Property string
	Value    string
	Family   Family
	// Important is set when value carried a trailing !important
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

// Engine mirrors declarations. It is immutable once built.
type Engine struct {
	log    *zap.Logger
	scaler Scaler
	media  MediaWrapper
}

// Option configures Engine.
type Option func(*Engine)

// WithScaler replaces the default px to rem (16px base) conversion.
func WithScaler(s Scaler) Option {
	return func(e *Engine) { e.scaler = s }
}

// WithMediaWrapper enables breakpoint handling in TransformAt.
func WithMediaWrapper(w MediaWrapper) Option {
	return func(e *Engine) { e.media = w }
}

// NewEngine creates a new engine.
func NewEngine(log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		log:    log.Named("bidi"),
		scaler: RemScaler{Base: DefaultRemBase},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Mirror parses value and rewrites the declaration for dir. Lengths are
// converted by the scaler when useScale is set. A trailing !important is
// set aside before parsing and kept on the result.
func (e *Engine) Mirror(property, value string, dir Direction, useScale bool) (Declaration, error) {
	expr, important := SplitImportant(value)
	node, err := Parse(expr)
	if err != nil {
		return Declaration{}, fmt.Errorf("unable to mirror '%s': %w", property, err)
	}

	fam := Classify(property, node)
	out, err := transformers[fam](node, dir)
	if err != nil {
		return Declaration{}, fmt.Errorf("unable to mirror '%s' as %s: %w", property, fam, err)
	}
	if useScale {
		out = scaleTree(out, e.scaler)
	}

	decl := Declaration{Property: strings.TrimSpace(property), Value: Serialize(out), Family: fam, Important: important}
	if fam == FamilySimple {
		decl.Property = RenameLogical(decl.Property, dir)
	}
	e.log.Debug("Mirrored declaration",
		zap.String("property", property),
		zap.String("value", value),
		zap.Stringer("family", fam),
		zap.Stringer("direction", dir),
		zap.Stringer("result", decl))
	return decl, nil
}

// Transform returns the mirrored declaration as "property: value".
func (e *Engine) Transform(property, value string, dir Direction, useScale bool) (string, error) {
	decl, err := e.Mirror(property, value, dir, useScale)
	if err != nil {
		return "", err
	}
	return decl.String(), nil
}

// TransformContext is Transform with the direction taken from ctx.
func (e *Engine) TransformContext(ctx context.Context, property, value string, useScale bool) (string, error) {
	return e.Transform(property, value, DirectionFromContext(ctx), useScale)
}

// TransformAt is Transform with the result put under the media condition of
// breakpoint. An empty breakpoint means no condition.
func (e *Engine) TransformAt(property, value string, dir Direction, useScale bool, breakpoint string) (string, error) {
	decl, err := e.Transform(property, value, dir, useScale)
	if err != nil || breakpoint == "" {
		return decl, err
	}
	if e.media == nil {
		return "", fmt.Errorf("no media wrapper configured for '%s': %w", breakpoint, ErrUnknownBreakpoint)
	}
	return e.media.Wrap(breakpoint, decl)
}
