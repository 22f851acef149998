package bidi

import "strings"

// anyLeaf reports whether pred holds for some leaf of n. Opaque functions
// are leaves themselves.
func anyLeaf(n Node, pred func(Node) bool) bool {
	switch v := n.(type) {
	case *Function:
		if isOpaque(v) {
			return pred(v)
		}
		for _, a := range v.Args {
			if anyLeaf(a, pred) {
				return true
			}
		}
		return false
	case *List:
		for _, it := range v.Items {
			if anyLeaf(it, pred) {
				return true
			}
		}
		return false
	default:
		return pred(n)
	}
}

// functions whose start/end arguments are not sides: steps(4, end)
var opaqueFunctions = map[string]bool{
	"steps": true,
}

func isOpaque(fn *Function) bool {
	return opaqueFunctions[unprefixed(fn.Name)]
}

// hasLogicalKeyword reports whether v has a logical keyword outside of
// opaque functions.
func hasLogicalKeyword(v Node) bool {
	return anyLeaf(v, func(n Node) bool {
		k, ok := n.(Keyword)
		if !ok {
			return false
		}
		_, ok = logicalKeyword(k.Text, DirectionLtr)
		return ok
	})
}

// renameKeywords replaces logical keyword leaves with their physical
// counterparts, arguments of opaque functions are left alone.
func renameKeywords(n Node, dir Direction) Node {
	switch v := n.(type) {
	case *Function:
		if isOpaque(v) {
			return v
		}
		for i := range v.Args {
			v.Args[i] = renameKeywords(v.Args[i], dir)
		}
		return v
	case *List:
		for i := range v.Items {
			v.Items[i] = renameKeywords(v.Items[i], dir)
		}
		return v
	case Keyword:
		if r, ok := logicalKeyword(v.Text, dir); ok {
			return Keyword{Text: r}
		}
	}
	return n
}

// mirrorSimple handles "float: start", "margin-start: 6px" and alike, the
// property name itself is renamed by the engine.
func mirrorSimple(v Node, dir Direction) (Node, error) {
	return renameKeywords(v, dir), nil
}

// mirrorDirection resolves ste/ets, physical ltr/rtl are kept.
func mirrorDirection(v Node, dir Direction) (Node, error) {
	return walk(v, func(leaf Node) Node {
		if k, ok := leaf.(Keyword); ok {
			switch strings.ToLower(k.Text) {
			case "ste", "ets":
				r, _ := logicalKeyword(k.Text, dir)
				return Keyword{Text: r}
			}
		}
		return leaf
	}), nil
}

// isSides reports whether v looks like a top/right/bottom/left shorthand.
func isSides(v Node) bool {
	items := components(v)
	if len(items) == 0 || len(items) > 4 {
		return false
	}
	for _, it := range items {
		switch x := it.(type) {
		case Dimension:
		case Keyword:
			if !strings.EqualFold(x.Text, "auto") {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// mirrorSides swaps right and left members of a four value shorthand, fewer
// values are symmetric and stay as they are.
func mirrorSides(v Node, dir Direction) (Node, error) {
	items := components(v)
	if !IsRTL(dir) || len(items) != 4 {
		return v, nil
	}
	items[1], items[3] = items[3], items[1]
	return spaceList(items), nil
}
