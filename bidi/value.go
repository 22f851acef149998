package bidi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Separator tells how members of a list or function arguments are joined.
type Separator int

const (
	SepSpace Separator = iota
	SepComma
	// SepSlash joins the horizontal and vertical radii of border-radius.
	SepSlash
)

func (s Separator) join() string {
	switch s {
	case SepComma:
		return ", "
	case SepSlash:
		return "  /  "
	default:
		return " "
	}
}

// Node is a parsed value expression: Keyword, Dimension, *Function or *List.
type Node interface {
	node()
}

// Keyword is any non numeric leaf: identifiers, hashes, strings, url()
// tokens and delimiters. Text is kept as written.
type Keyword struct {
	Text string
}

// Dimension is a number with an optional unit (percentage included).
type Dimension struct {
	Value decimal.Decimal
	Unit  string
	// raw source text, dropped as soon as the value is modified
	raw string
}

// Function is a function call such as rotate(45deg) or rgba(0,0,0,.5).
// Comma separated calls keep one argument per comma item, other calls keep
// one argument per space separated component.
type Function struct {
	Name string
	Args []Node
	Sep  Separator
}

// List is a sequence of nodes. Parens is set for Sass style parenthesised
// groups, Trailing for a group closed with a dangling comma: (26px,).
type List struct {
	Items    []Node
	Sep      Separator
	Parens   bool
	Trailing bool
}

func (Keyword) node()   {}
func (Dimension) node() {}
func (*Function) node() {}
func (*List) node()     {}

// NewDimension builds a dimension with canonical (not raw) serialization.
func NewDimension(value decimal.Decimal, unit string) Dimension {
	return Dimension{Value: value, Unit: unit}
}

// UnitLower returns the unit in lower case, units are case insensitive.
func (d Dimension) UnitLower() string {
	return strings.ToLower(d.Unit)
}

// IsZero reports whether magnitude is zero regardless of unit.
func (d Dimension) IsZero() bool {
	return d.Value.IsZero()
}

// Neg flips sign. Zero stays as written so "0" never becomes "-0".
func (d Dimension) Neg() Dimension {
	if d.Value.IsZero() {
		return d
	}
	return NewDimension(d.Value.Neg(), d.Unit)
}

func (d Dimension) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.Value.String() + d.Unit
}

func (k Keyword) String() string {
	return k.Text
}

// Serialize renders node back into CSS text.
func Serialize(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case Keyword:
		sb.WriteString(v.Text)
	case Dimension:
		sb.WriteString(v.String())
	case *Function:
		sb.WriteString(v.Name)
		sb.WriteByte('(')
		writeItems(sb, v.Args, v.Sep)
		sb.WriteByte(')')
	case *List:
		if v.Parens {
			sb.WriteByte('(')
		}
		writeItems(sb, v.Items, v.Sep)
		if v.Trailing {
			sb.WriteByte(',')
		}
		if v.Parens {
			sb.WriteByte(')')
		}
	}
}

func writeItems(sb *strings.Builder, items []Node, sep Separator) {
	for i, it := range items {
		if i > 0 {
			sb.WriteString(sep.join())
		}
		write(sb, it)
	}
}

// components returns top level members of a space separated value.
func components(n Node) []Node {
	if l, ok := n.(*List); ok && l.Sep == SepSpace && !l.Parens {
		return l.Items
	}
	if l, ok := n.(*List); ok && len(l.Items) == 0 {
		return nil
	}
	return []Node{n}
}

// alternatives returns members of a top level comma separated value, a value
// without commas is its own single alternative.
func alternatives(n Node) []Node {
	if l, ok := n.(*List); ok && l.Sep == SepComma && !l.Parens {
		return l.Items
	}
	return []Node{n}
}

// spaceList folds components back, a single member is returned as is.
func spaceList(items []Node) Node {
	if len(items) == 1 {
		return items[0]
	}
	return &List{Items: items, Sep: SepSpace}
}

// walk visits every leaf and replaces it with fn's result.
func walk(n Node, fn func(Node) Node) Node {
	switch v := n.(type) {
	case *Function:
		for i := range v.Args {
			v.Args[i] = walk(v.Args[i], fn)
		}
		return v
	case *List:
		for i := range v.Items {
			v.Items[i] = walk(v.Items[i], fn)
		}
		return v
	default:
		return fn(n)
	}
}
