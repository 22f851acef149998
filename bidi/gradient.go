package bidi

import (
	"strings"
)

// gradient kinds by unprefixed function name, only linear ones carry a
// mirrorable angle
var gradients = map[string]bool{
	"linear-gradient":           true,
	"repeating-linear-gradient": true,
	"radial-gradient":           false,
	"repeating-radial-gradient": false,
	"conic-gradient":            false,
	"repeating-conic-gradient":  false,
}

// unprefixed drops a vendor prefix: -webkit-linear-gradient becomes
// linear-gradient.
func unprefixed(name string) string {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "-") {
		if i := strings.IndexByte(name[1:], '-'); i >= 0 {
			return name[i+2:]
		}
	}
	return name
}

func mirrorBackgroundImage(v Node, dir Direction) (Node, error) {
	return mapAlternatives(v, func(alt Node) (Node, error) {
		for _, c := range components(alt) {
			if fn, ok := c.(*Function); ok {
				if err := mirrorGradient(fn, dir); err != nil {
					return nil, err
				}
			}
		}
		return alt, nil
	})
}

// mirrorGradient rewrites the leading direction clause of a gradient:
// "to top start" gets its logical sides resolved, a bare angle is mirrored
// for RTL. Colour stops are never touched.
func mirrorGradient(fn *Function, dir Direction) error {
	linear, ok := gradients[unprefixed(fn.Name)]
	if !ok || fn.Sep != SepComma || len(fn.Args) == 0 {
		return nil
	}
	first := fn.Args[0]
	if d, ok := first.(Dimension); ok {
		if !linear || !IsRTL(dir) || !IsAngle(d) {
			return nil
		}
		m, err := MirrorAngle(d)
		if err != nil {
			return err
		}
		fn.Args[0] = m
		return nil
	}
	fn.Args[0] = renameKeywords(first, dir)
	return nil
}

// mapAlternatives applies fn to every member of a top level comma list (or
// to v itself when there are no commas).
func mapAlternatives(v Node, fn func(Node) (Node, error)) (Node, error) {
	l, ok := v.(*List)
	if !ok || l.Sep != SepComma || l.Parens {
		return fn(v)
	}
	for i, it := range l.Items {
		n, err := fn(it)
		if err != nil {
			return nil, err
		}
		l.Items[i] = n
	}
	return l, nil
}
