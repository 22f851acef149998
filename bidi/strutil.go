package bidi

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

type replaceOptions struct {
	all       bool
	matchCase bool
}

// ReplaceOption tunes Replace.
type ReplaceOption func(*replaceOptions)

// ReplaceAll selects between replacing every occurrence (default) and only
// the first one.
func ReplaceAll(all bool) ReplaceOption {
	return func(o *replaceOptions) { o.all = all }
}

// MatchCase selects case sensitive (default) or case folded matching.
func MatchCase(match bool) ReplaceOption {
	return func(o *replaceOptions) { o.matchCase = match }
}

// Replace substitutes search with repl in s.
func Replace(s, search, repl string, options ...ReplaceOption) string {
	opts := replaceOptions{all: true, matchCase: true}
	for _, o := range options {
		o(&opts)
	}
	if search == "" {
		return s
	}
	if opts.matchCase {
		n := 1
		if opts.all {
			n = -1
		}
		return strings.Replace(s, search, repl, n)
	}

	fold := cases.Fold()
	want := fold.String(search)
	width := utf8.RuneCountInString(search)

	var sb strings.Builder
	for i := 0; i < len(s); {
		if j := runeSpan(s, i, width); j > 0 && fold.String(s[i:j]) == want {
			sb.WriteString(repl)
			i = j
			if !opts.all {
				sb.WriteString(s[i:])
				return sb.String()
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		sb.WriteString(s[i : i+size])
		i += size
	}
	return sb.String()
}

// runeSpan returns the byte offset n runes after i, or -1 past the end.
func runeSpan(s string, i, n int) int {
	for ; n > 0; n-- {
		if i >= len(s) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// SplitImportant removes a trailing !important (any case, blanks allowed
// after the bang) from value and reports whether it was present. Values
// without the flag are returned unchanged.
func SplitImportant(value string) (string, bool) {
	v := strings.TrimSpace(value)
	i := strings.LastIndexByte(v, '!')
	if i < 0 || !strings.EqualFold(strings.TrimSpace(v[i+1:]), "important") {
		return value, false
	}
	return strings.TrimSpace(v[:i]), true
}
