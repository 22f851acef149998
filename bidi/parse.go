package bidi

import (
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type token struct {
	tt   css.TokenType
	text string
	off  int
}

// tokenize runs the CSS lexer over a single value expression.
func tokenize(raw string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(raw))

	var (
		toks []token
		off  int
	)
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, &ParseError{Input: raw, Offset: off, Reason: err.Error()}
			}
			return toks, nil
		}
		toks = append(toks, token{tt: tt, text: string(data), off: off})
		off += len(data)
	}
}

type parser struct {
	raw  string
	toks []token
	pos  int
}

// Parse turns a raw value into a node tree. Commas and spaces separate
// members only at the level they appear on, everything inside a function
// call or a parenthesised group belongs to it.
func Parse(raw string) (Node, error) {
	toks, err := tokenize(raw)
	if err != nil {
		return nil, err
	}
	p := &parser{raw: raw, toks: toks}
	groups, trailing, err := p.parseGroups(-1, "")
	if err != nil {
		return nil, err
	}
	return fold(groups, trailing, false), nil
}

// parseGroups consumes tokens up to the matching closing parenthesis (open >=
// 0) or the end of input (open < 0) and splits them into comma separated
// groups of space separated members.
func (p *parser) parseGroups(open int, unclosed string) ([][]Node, bool, error) {
	var (
		groups [][]Node
		cur    []Node
		comma  bool
	)
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		p.pos++

		switch t.tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.CommaToken:
			groups = append(groups, cur)
			cur, comma = nil, true
			continue
		case css.RightParenthesisToken:
			if open < 0 {
				return nil, false, p.fail(t.off, "unbalanced ')'")
			}
			groups = append(groups, cur)
			return groups, comma && len(cur) == 0, nil
		case css.FunctionToken:
			fn, err := p.parseFunction(t)
			if err != nil {
				return nil, false, err
			}
			cur = append(cur, fn)
		case css.LeftParenthesisToken:
			g, trailing, err := p.parseGroups(t.off, "unclosed '('")
			if err != nil {
				return nil, false, err
			}
			cur = append(cur, fold(g, trailing, true))
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			d, err := parseDimension(t.text)
			if err != nil {
				return nil, false, p.fail(t.off, err.Error())
			}
			cur = append(cur, d)
		case css.BadStringToken:
			return nil, false, p.fail(t.off, "unterminated string")
		case css.BadURLToken:
			return nil, false, p.fail(t.off, "malformed url()")
		default:
			cur = append(cur, Keyword{Text: t.text})
		}
		comma = false
	}
	if open >= 0 {
		return nil, false, p.fail(open, unclosed)
	}
	groups = append(groups, cur)
	return groups, comma && len(cur) == 0, nil
}

func (p *parser) parseFunction(t token) (*Function, error) {
	fn := &Function{Name: strings.TrimSuffix(t.text, "(")}
	groups, trailing, err := p.parseGroups(t.off, "unterminated function call "+t.text+"...)")
	if err != nil {
		return nil, err
	}
	if len(groups) == 1 && !trailing {
		fn.Args, fn.Sep = groups[0], SepSpace
		return fn, nil
	}
	fn.Sep = SepComma
	for _, g := range groups {
		if len(g) > 0 {
			fn.Args = append(fn.Args, spaceList(g))
		}
	}
	return fn, nil
}

func (p *parser) fail(off int, reason string) error {
	return &ParseError{Input: p.raw, Offset: off, Reason: reason}
}

// fold builds a node out of comma groups. Empty groups (a dangling comma)
// are dropped.
func fold(groups [][]Node, trailing, parens bool) Node {
	if len(groups) == 1 {
		items := groups[0]
		if len(items) == 1 && !parens {
			return items[0]
		}
		return &List{Items: items, Sep: SepSpace, Parens: parens}
	}
	l := &List{Sep: SepComma, Parens: parens, Trailing: trailing}
	for _, g := range groups {
		if len(g) > 0 {
			l.Items = append(l.Items, spaceList(g))
		}
	}
	return l
}

// parseDimension splits numeric token text into magnitude and unit.
func parseDimension(text string) (Dimension, error) {
	end := numberEnd(text)
	num := strings.TrimPrefix(text[:end], "+")
	v, err := decimal.NewFromString(num)
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Value: v, Unit: text[end:], raw: text}, nil
}

func numberEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	// exponent only when digits follow, "2em" is a unit
	if i+1 < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
