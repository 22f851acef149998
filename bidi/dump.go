package bidi

import (
	"fmt"
	"strconv"
	"strings"
)

func (s Separator) String() string {
	switch s {
	case SepComma:
		return "comma"
	case SepSlash:
		return "slash"
	default:
		return "space"
	}
}

// treeWriter writes indented lines, two spaces per level.
type treeWriter struct {
	w strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(&tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Dump renders node tree one node per line for debugging.
func Dump(n Node) string {
	tw := &treeWriter{}
	dumpNode(tw, 0, n)
	return tw.w.String()
}

func dumpNode(tw *treeWriter, depth int, n Node) {
	switch v := n.(type) {
	case Keyword:
		tw.line(depth, "keyword %s", strconv.Quote(v.Text))
	case Dimension:
		tw.line(depth, "dimension %s unit=%q", v.Value, v.Unit)
	case *Function:
		tw.line(depth, "function %s sep=%s", v.Name, v.Sep)
		for _, a := range v.Args {
			dumpNode(tw, depth+1, a)
		}
	case *List:
		var flags string
		if v.Parens {
			flags += " parens"
		}
		if v.Trailing {
			flags += " trailing"
		}
		tw.line(depth, "list sep=%s%s", v.Sep, flags)
		for _, it := range v.Items {
			dumpNode(tw, depth+1, it)
		}
	case nil:
		tw.line(depth, "<nil>")
	}
}
