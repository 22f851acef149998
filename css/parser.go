package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"bidiflip/bidi"
)

// Parser parses CSS stylesheets into ordered rules and blocks.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Comments are dropped, unclosed
// blocks are closed at the end of input.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	items, decls, err := p.parseBlock(parser, 0)
	if err != nil {
		return nil, err
	}
	if len(decls) > 0 {
		p.log.Debug("Ignoring declarations outside of any rule", zap.Int("count", len(decls)))
	}
	return &Stylesheet{Items: items}, nil
}

// parseBlock consumes grammar until the end of the block opened at depth
// (or end of input) and returns its nested items and declarations.
func (p *Parser) parseBlock(parser *css.Parser, depth int) ([]Item, []Declaration, error) {
	var (
		items     []Item
		decls     []Declaration
		selectors []string
	)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, nil, fmt.Errorf("unable to parse stylesheet: %w", err)
			}
			if depth > 0 {
				p.log.Debug("Closing unterminated block at end of input", zap.Int("depth", depth))
			}
			return items, decls, nil

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if depth > 0 {
				return items, decls, nil
			}
			p.log.Debug("Ignoring stray closing brace")

		case css.AtRuleGrammar:
			items = append(items, Item{AtRule: &AtRule{
				Name:    string(data),
				Prelude: joinTokens(parser.Values()),
			}})

		case css.BeginAtRuleGrammar:
			name, prelude := string(data), joinTokens(parser.Values())
			inner, innerDecls, err := p.parseBlock(parser, depth+1)
			if err != nil {
				return nil, nil, err
			}
			p.log.Debug("Parsed @-rule block", zap.String("rule", name), zap.String("prelude", prelude),
				zap.Int("items", len(inner)), zap.Int("declarations", len(innerDecls)))
			items = append(items, Item{Block: &Block{
				Name:         name,
				Prelude:      prelude,
				Declarations: innerDecls,
				Items:        inner,
			}})

		case css.QualifiedRuleGrammar:
			// One selector of a comma separated list, the last one comes with BeginRulesetGrammar
			selectors = append(selectors, selectorText(data, parser.Values()))

		case css.BeginRulesetGrammar:
			selectors = append(selectors, selectorText(data, parser.Values()))
			inner, innerDecls, err := p.parseBlock(parser, depth+1)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, Item{Rule: &Rule{
				Selectors:    selectors,
				Declarations: innerDecls,
				Items:        inner,
			}})
			selectors = nil

		case css.DeclarationGrammar:
			value, important := declarationValue(parser.Values())
			if value == "" {
				p.log.Debug("Skipping empty declaration", zap.String("property", string(data)))
				continue
			}
			decls = append(decls, Declaration{Property: string(data), Value: value, Important: important})

		case css.CustomPropertyGrammar:
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    strings.TrimSpace(joinTokens(parser.Values())),
				Custom:   true,
			})
		}
	}
}

// joinTokens concatenates token data, collapsing whitespace and comments
// into single spaces.
func joinTokens(tokens []css.Token) string {
	var (
		sb    strings.Builder
		space bool
		bang  bool
	)
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			// "! important" is written as "!important"
			space = sb.Len() > 0 && !bang
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		bang = t.TokenType == css.DelimToken && string(t.Data) == "!"
		sb.Write(t.Data)
	}
	return sb.String()
}

// selectorText builds a single selector from the grammar data and its tokens.
func selectorText(data []byte, values []css.Token) string {
	return joinTokens(append([]css.Token{{TokenType: css.IdentToken, Data: data}}, values...))
}

// declarationValue returns the declaration value with the !important flag
// removed.
func declarationValue(tokens []css.Token) (string, bool) {
	value, important := bidi.SplitImportant(joinTokens(tokens))
	return strings.TrimSpace(value), important
}
