package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single property declaration inside a rule or block.
type Declaration struct {
	Property  string
	Value     string // Value without the !important flag
	Important bool
	Custom    bool // Custom property (--name), never mirrored
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important"
	}
	return d.Property + ": " + d.Value
}

// Rule is a ruleset: selector list with its declarations and, for nested
// CSS, child items.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
	Items        []Item
}

// Selector returns the selector list as written in the output.
func (r *Rule) Selector() string {
	return strings.Join(r.Selectors, ", ")
}

// AtRule is a statement at-rule without a block (@import, @charset, ...).
type AtRule struct {
	Name    string // Including the '@'
	Prelude string
}

// Block is an at-rule with a block (@media, @supports, @font-face, ...).
type Block struct {
	Name         string // Including the '@'
	Prelude      string
	Declarations []Declaration
	Items        []Item
}

// Item is a single stylesheet item.
// Exactly one of Rule, Block, or AtRule is non-nil.
type Item struct {
	Rule   *Rule
	Block  *Block
	AtRule *AtRule
}

// Stylesheet is a parsed stylesheet in source order.
type Stylesheet struct {
	Items []Item
}

// Declarations returns the number of declarations in the stylesheet,
// including nested ones.
func (s *Stylesheet) Declarations() int {
	return countDeclarations(s.Items)
}

func countDeclarations(items []Item) int {
	var n int
	for _, item := range items {
		switch {
		case item.Rule != nil:
			n += len(item.Rule.Declarations) + countDeclarations(item.Rule.Items)
		case item.Block != nil:
			n += len(item.Block.Declarations) + countDeclarations(item.Block.Items)
		}
	}
	return n
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	p := &printer{w: w}
	p.items(s.Items, 0)
	return p.n, p.err
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// printer keeps the first write error and the running byte count.
type printer struct {
	w   io.Writer
	n   int64
	err error
}

func (p *printer) printf(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	var n int
	n, p.err = fmt.Fprintf(p.w, strings.Repeat("  ", depth)+format, args...)
	p.n += int64(n)
}

func (p *printer) items(items []Item, depth int) {
	for i, item := range items {
		// Blank line between items
		if i > 0 {
			p.printf(0, "\n")
		}
		switch {
		case item.AtRule != nil:
			if item.AtRule.Prelude == "" {
				p.printf(depth, "%s;\n", item.AtRule.Name)
			} else {
				p.printf(depth, "%s %s;\n", item.AtRule.Name, item.AtRule.Prelude)
			}
		case item.Block != nil:
			if item.Block.Prelude == "" {
				p.printf(depth, "%s {\n", item.Block.Name)
			} else {
				p.printf(depth, "%s %s {\n", item.Block.Name, item.Block.Prelude)
			}
			p.body(item.Block.Declarations, item.Block.Items, depth+1)
			p.printf(depth, "}\n")
		case item.Rule != nil:
			p.printf(depth, "%s {\n", item.Rule.Selector())
			p.body(item.Rule.Declarations, item.Rule.Items, depth+1)
			p.printf(depth, "}\n")
		}
	}
}

func (p *printer) body(decls []Declaration, items []Item, depth int) {
	for _, d := range decls {
		p.printf(depth, "%s;\n", d)
	}
	if len(decls) > 0 && len(items) > 0 {
		p.printf(0, "\n")
	}
	p.items(items, depth)
}
