package bidi

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// mirrorOffset turns a horizontal position measured from the left edge into
// one measured from the right edge: 25% becomes 75%, 10px becomes
// calc(100% - 10px).
func mirrorOffset(d Dimension) Node {
	switch {
	case d.Unit == "%":
		return NewDimension(hundred.Sub(d.Value), "%")
	case d.IsZero():
		return NewDimension(hundred, "%")
	}
	return &Function{
		Name: "calc",
		Args: []Node{NewDimension(hundred, "%"), Keyword{Text: "-"}, d},
		Sep:  SepSpace,
	}
}

// mirrorPosition rewrites one position value. Logical keywords are resolved
// wherever they are, in RTL a leading numeric component is mirrored. With
// expand set a lone numeric component V becomes "100%-V V".
func mirrorPosition(v Node, dir Direction, expand bool) Node {
	items := components(v)
	out := make([]Node, 0, len(items)+1)
	for i, it := range items {
		switch x := it.(type) {
		case Keyword:
			if r, ok := logicalKeyword(x.Text, dir); ok {
				out = append(out, Keyword{Text: r})
				continue
			}
		case Dimension:
			if i == 0 && IsRTL(dir) {
				out = append(out, mirrorOffset(x))
				if expand && len(items) == 1 {
					out = append(out, x)
				}
				continue
			}
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return v
	}
	return spaceList(out)
}

func mirrorBackgroundPosition(v Node, dir Direction) (Node, error) {
	return mapAlternatives(v, func(alt Node) (Node, error) {
		return mirrorPosition(alt, dir, true), nil
	})
}

func mirrorTransformOrigin(v Node, dir Direction) (Node, error) {
	return mirrorPosition(v, dir, false), nil
}
