package css_test

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"bidiflip/css"
)

func parse(t *testing.T, input string) *css.Stylesheet {
	t.Helper()
	sheet, err := css.NewParser(zaptest.NewLogger(t)).Parse([]byte(input), t.Name())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return sheet
}

func TestParser_Declarations(t *testing.T) {
	sheet := parse(t, `.a { margin: 0 auto; color: red !important; width: 10px ! important }`)

	if len(sheet.Items) != 1 || sheet.Items[0].Rule == nil {
		t.Fatalf("expected a single rule, got %+v", sheet.Items)
	}
	rule := sheet.Items[0].Rule
	if rule.Selector() != ".a" {
		t.Errorf("expected selector '.a', got '%s'", rule.Selector())
	}

	want := []css.Declaration{
		{Property: "margin", Value: "0 auto"},
		{Property: "color", Value: "red", Important: true},
		{Property: "width", Value: "10px", Important: true},
	}
	if len(rule.Declarations) != len(want) {
		t.Fatalf("expected %d declarations, got %d: %+v", len(want), len(rule.Declarations), rule.Declarations)
	}
	for i, d := range rule.Declarations {
		if d != want[i] {
			t.Errorf("declaration %d: expected %+v, got %+v", i, want[i], d)
		}
	}
}

func TestParser_SelectorList(t *testing.T) {
	sheet := parse(t, "h1,\n  h2 > span { float: left; }")

	rule := sheet.Items[0].Rule
	if rule == nil {
		t.Fatal("expected a rule")
	}
	if len(rule.Selectors) != 2 {
		t.Fatalf("expected 2 selectors, got %q", rule.Selectors)
	}
	if rule.Selectors[0] != "h1" || rule.Selectors[1] != "h2 > span" {
		t.Errorf("unexpected selectors %q", rule.Selectors)
	}
	if rule.Selector() != "h1, h2 > span" {
		t.Errorf("unexpected selector text '%s'", rule.Selector())
	}
}

func TestParser_MediaBlock(t *testing.T) {
	sheet := parse(t, `
p { text-align: start; }
@media (min-width: 768px) {
  p { text-align: end; }
  .x { float: start; }
}
`)

	if len(sheet.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sheet.Items))
	}
	mb := sheet.Items[1].Block
	if mb == nil {
		t.Fatal("expected second item to be a block")
	}
	if mb.Name != "@media" {
		t.Errorf("expected '@media', got '%s'", mb.Name)
	}
	if mb.Prelude != "(min-width: 768px)" {
		t.Errorf("unexpected prelude '%s'", mb.Prelude)
	}
	if len(mb.Items) != 2 {
		t.Fatalf("expected 2 nested rules, got %d", len(mb.Items))
	}
	if mb.Items[1].Rule == nil || mb.Items[1].Rule.Selector() != ".x" {
		t.Errorf("unexpected nested item %+v", mb.Items[1])
	}
	if got := sheet.Declarations(); got != 3 {
		t.Errorf("expected 3 declarations, got %d", got)
	}
}

func TestParser_AtRules(t *testing.T) {
	sheet := parse(t, `@charset "utf-8";
@import url("base.css");
@font-face { font-family: "Serif"; src: url(serif.woff); }`)

	if len(sheet.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(sheet.Items))
	}
	if at := sheet.Items[0].AtRule; at == nil || at.Name != "@charset" || at.Prelude != `"utf-8"` {
		t.Errorf("unexpected @charset item %+v", sheet.Items[0].AtRule)
	}
	if at := sheet.Items[1].AtRule; at == nil || at.Name != "@import" || at.Prelude != `url("base.css")` {
		t.Errorf("unexpected @import item %+v", sheet.Items[1].AtRule)
	}
	ff := sheet.Items[2].Block
	if ff == nil || ff.Name != "@font-face" {
		t.Fatalf("expected @font-face block, got %+v", sheet.Items[2])
	}
	if len(ff.Declarations) != 2 || ff.Declarations[0].Property != "font-family" {
		t.Errorf("unexpected @font-face declarations %+v", ff.Declarations)
	}
	if len(ff.Items) != 0 {
		t.Errorf("expected no nested items, got %d", len(ff.Items))
	}
}

func TestParser_CustomProperty(t *testing.T) {
	sheet := parse(t, `:root { --gap: 4px; }`)

	rule := sheet.Items[0].Rule
	if rule == nil || len(rule.Declarations) != 1 {
		t.Fatalf("expected one declaration, got %+v", sheet.Items)
	}
	d := rule.Declarations[0]
	if !d.Custom || d.Property != "--gap" || d.Value != "4px" {
		t.Errorf("unexpected custom property %+v", d)
	}
}

func TestParser_Empty(t *testing.T) {
	sheet := parse(t, "")
	if len(sheet.Items) != 0 {
		t.Errorf("expected no items, got %d", len(sheet.Items))
	}
	if sheet.String() != "" {
		t.Errorf("expected empty output, got %q", sheet.String())
	}
}

func TestParser_NilLogger(t *testing.T) {
	sheet, err := css.NewParser(nil).Parse([]byte(`a { color: red }`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(sheet.Items))
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	sheet := &css.Stylesheet{Items: []css.Item{
		{AtRule: &css.AtRule{Name: "@import", Prelude: `url("a.css")`}},
		{Rule: &css.Rule{
			Selectors: []string{"h1", "h2"},
			Declarations: []css.Declaration{
				{Property: "margin-left", Value: "1px"},
				{Property: "color", Value: "red", Important: true},
			},
		}},
		{Block: &css.Block{
			Name:    "@media",
			Prelude: "print",
			Items: []css.Item{
				{Rule: &css.Rule{Selectors: []string{"p"}, Declarations: []css.Declaration{{Property: "float", Value: "left"}}}},
				{Rule: &css.Rule{Selectors: []string{"q"}, Declarations: []css.Declaration{{Property: "float", Value: "right"}}}},
			},
		}},
	}}

	want := `@import url("a.css");

h1, h2 {
  margin-left: 1px;
  color: red !important;
}

@media print {
  p {
    float: left;
  }

  q {
    float: right;
  }
}
`
	got := sheet.String()
	if got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_RoundTrip(t *testing.T) {
	input := `a {
  margin: 0 auto;
}

@media (max-width: 600px) {
  a {
    padding: 1px 2px 3px 4px;
  }
}
`
	first := parse(t, input).String()
	if first != input {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", first, input)
	}
	if second := parse(t, first).String(); second != first {
		t.Errorf("output is not stable:\n%s\nthen:\n%s", first, second)
	}
}
