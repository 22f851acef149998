package bidi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// mirrorTransform flips the horizontal part of every transform function.
func mirrorTransform(v Node, dir Direction) (Node, error) {
	if !IsRTL(dir) {
		return v, nil
	}
	for _, it := range components(v) {
		if fn, ok := it.(*Function); ok {
			if err := mirrorTransformFunc(fn); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

func mirrorTransformFunc(fn *Function) error {
	switch strings.ToLower(fn.Name) {
	case "translate", "translatex", "translate3d", "skew", "skewx":
		negateArg(fn, 0)
	case "matrix":
		// | a c e |     | a -c -e |
		// | b d f |  => | -b d f  |
		if len(fn.Args) == 6 {
			negateArg(fn, 1)
			negateArg(fn, 2)
			negateArg(fn, 4)
		}
	case "rotate", "rotatez":
		return mirrorArg(fn, 0)
	case "rotate3d":
		// only the Z axis component is affected
		if len(fn.Args) < 3 {
			return nil
		}
		if d, ok := fn.Args[2].(Dimension); ok && !IsAngle(d) {
			negateArg(fn, 2)
			return nil
		}
		return mirrorArg(fn, 2)
	}
	return nil
}

func negateArg(fn *Function, i int) {
	if i >= len(fn.Args) {
		return
	}
	switch a := fn.Args[i].(type) {
	case Dimension:
		fn.Args[i] = a.Neg()
	case *Function:
		fn.Args[i] = negateExpr(a)
	}
}

var minusOne = decimal.NewFromInt(-1)

// negateExpr turns calc(x) or var(--x) into calc(-1 * (x)) and
// calc(-1 * var(--x)), undoing an earlier negation instead of nesting.
func negateExpr(fn *Function) *Function {
	if strings.EqualFold(fn.Name, "calc") && len(fn.Args) == 3 {
		if d, ok := fn.Args[0].(Dimension); ok && d.Unit == "" && d.Value.Equal(minusOne) {
			if k, ok := fn.Args[1].(Keyword); ok && k.Text == "*" {
				switch inner := fn.Args[2].(type) {
				case *List:
					if inner.Parens {
						return &Function{Name: fn.Name, Args: inner.Items, Sep: inner.Sep}
					}
				case *Function:
					return inner
				}
			}
		}
	}
	var operand Node = fn
	if strings.EqualFold(fn.Name, "calc") {
		operand = &List{Items: fn.Args, Sep: fn.Sep, Parens: true}
	}
	return &Function{
		Name: "calc",
		Args: []Node{NewDimension(minusOne, ""), Keyword{Text: "*"}, operand},
		Sep:  SepSpace,
	}
}

func mirrorArg(fn *Function, i int) error {
	if i >= len(fn.Args) {
		return nil
	}
	d, ok := fn.Args[i].(Dimension)
	if !ok || !IsAngle(d) {
		return nil
	}
	m, err := MirrorAngle(d)
	if err != nil {
		return err
	}
	fn.Args[i] = m
	return nil
}
