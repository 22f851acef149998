package css

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bidiflip/bidi"
)

// Rewriter mirrors every declaration of a stylesheet for the direction
// carried by the context.
type Rewriter struct {
	log    *zap.Logger
	parser *Parser
	engine *bidi.Engine
}

// NewRewriter creates a stylesheet rewriter on top of engine.
func NewRewriter(log *zap.Logger, engine *bidi.Engine) *Rewriter {
	if log == nil {
		log = zap.NewNop()
	}
	if engine == nil {
		engine = bidi.NewEngine(log)
	}
	return &Rewriter{
		log:    log.Named("css-rewriter"),
		parser: NewParser(log),
		engine: engine,
	}
}

// Rewrite parses data, mirrors it and returns the resulting CSS text.
// Nothing is returned when any declaration fails to mirror.
func (r *Rewriter) Rewrite(ctx context.Context, data []byte, useScale bool) ([]byte, error) {
	sheet, err := r.parser.Parse(data)
	if err != nil {
		return nil, err
	}
	out, err := r.RewriteSheet(ctx, sheet, useScale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return buf.Bytes(), nil
}

// RewriteSheet returns a mirrored copy of sheet. Errors from all failing
// declarations are combined.
func (r *Rewriter) RewriteSheet(ctx context.Context, sheet *Stylesheet, useScale bool) (*Stylesheet, error) {
	rw := &rewrite{
		engine:   r.engine,
		dir:      bidi.DirectionFromContext(ctx),
		useScale: useScale,
	}

	out := &Stylesheet{Items: make([]Item, 0, len(sheet.Items))}
	for _, item := range sheet.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out.Items = append(out.Items, rw.item(item))
	}
	if rw.errs != nil {
		return nil, rw.errs
	}

	r.log.Debug("Rewrote stylesheet",
		zap.Stringer("direction", rw.dir),
		zap.Bool("scale", useScale),
		zap.Int("items", len(out.Items)),
		zap.Int("declarations", rw.count))
	return out, nil
}

// rewrite carries the state of a single RewriteSheet call.
type rewrite struct {
	engine   *bidi.Engine
	dir      bidi.Direction
	useScale bool
	count    int
	errs     error
}

func (rw *rewrite) items(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, rw.item(item))
	}
	return out
}

func (rw *rewrite) item(item Item) Item {
	switch {
	case item.Rule != nil:
		sel := item.Rule.Selector()
		return Item{Rule: &Rule{
			Selectors:    append([]string(nil), item.Rule.Selectors...),
			Declarations: rw.declarations(item.Rule.Declarations, sel),
			Items:        rw.items(item.Rule.Items),
		}}
	case item.Block != nil:
		at := item.Block.Name
		if item.Block.Prelude != "" {
			at += " " + item.Block.Prelude
		}
		return Item{Block: &Block{
			Name:         item.Block.Name,
			Prelude:      item.Block.Prelude,
			Declarations: rw.declarations(item.Block.Declarations, at),
			Items:        rw.items(item.Block.Items),
		}}
	case item.AtRule != nil:
		at := *item.AtRule
		return Item{AtRule: &at}
	}
	return item
}

func (rw *rewrite) declarations(decls []Declaration, scope string) []Declaration {
	if decls == nil {
		return nil
	}
	out := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		if d.Custom {
			out = append(out, d)
			continue
		}
		m, err := rw.engine.Mirror(d.Property, d.Value, rw.dir, rw.useScale)
		if err != nil {
			multierr.AppendInto(&rw.errs, fmt.Errorf("%s: %w", scope, err))
			out = append(out, d)
			continue
		}
		rw.count++
		out = append(out, Declaration{Property: m.Property, Value: m.Value, Important: d.Important || m.Important})
	}
	return out
}
