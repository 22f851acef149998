package main

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"bidiflip/bidi"
	"bidiflip/config"
	"bidiflip/state"
)

func newEnv(t *testing.T, dir bidi.Direction) (context.Context, *state.LocalEnv) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	var err error
	if env.Cfg, err = config.LoadConfiguration(""); err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Log = zaptest.NewLogger(t)
	if err := env.PrepareEngine(); err != nil {
		t.Fatalf("PrepareEngine() error = %v", err)
	}
	env.Direction = dir
	return env.DirectionContext(ctx), env
}

func TestTransformDeclaration(t *testing.T) {
	tests := []struct {
		name       string
		property   string
		value      string
		breakpoint string
		useRem     bool
		expected   string
	}{
		{"logical property", "margin-start", "6px", "", false, "margin-right: 6px\n"},
		{"four sides", "padding", "1px 2px 3px 4px", "", false, "padding: 1px 4px 3px 2px\n"},
		{"rem", "margin-end", "24px", "", true, "margin-left: 1.5rem\n"},
		{"breakpoint", "float", "start", "md", false, "@media (min-width: 768px) { float: right; }\n"},
		{"literal condition", "float", "start", "(max-width: 40em)", false, "@media (max-width: 40em) { float: right; }\n"},
		{"custom property", "--start-x", "1px", "", false, "--start-x: 1px\n"},
		{"important", "margin", "1px 2px 3px 4px ! important", "", false, "margin: 1px 4px 3px 2px !important\n"},
		{"grid line", "grid-column-start", "end", "", false, "grid-column-start: end\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := newEnv(t, bidi.DirectionRtl)
			env.UseRem = tt.useRem

			var out bytes.Buffer
			if err := transformDeclaration(ctx, env, &out, tt.property, tt.value, tt.breakpoint); err != nil {
				t.Fatalf("transformDeclaration() error = %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("transformDeclaration() = %q, want %q", out.String(), tt.expected)
			}
		})
	}
}

func TestTransformDeclaration_Errors(t *testing.T) {
	ctx, env := newEnv(t, bidi.DirectionRtl)

	var out bytes.Buffer
	err := transformDeclaration(ctx, env, &out, "float", "start", "huge")
	if !errors.Is(err, bidi.ErrUnknownBreakpoint) {
		t.Errorf("expected ErrUnknownBreakpoint, got %v", err)
	}

	var perr *bidi.ParseError
	err = transformDeclaration(ctx, env, &out, "margin", "calc(1px", "")
	if !errors.As(err, &perr) {
		t.Errorf("expected *bidi.ParseError, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on error, got %q", out.String())
	}
}

func TestFlipStylesheet(t *testing.T) {
	ctx, env := newEnv(t, bidi.DirectionRtl)
	dir := t.TempDir()

	src := filepath.Join(dir, "ltr.css")
	if err := os.WriteFile(src, []byte(`.nav { margin-start: 10px; text-align: start; }`), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	dst := filepath.Join(dir, "rtl.css")

	if err := flipStylesheet(ctx, env, src, dst, false); err != nil {
		t.Fatalf("flipStylesheet() error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read destination: %v", err)
	}
	if want := ".nav {\n  margin-right: 10px;\n  text-align: right;\n}\n"; string(data) != want {
		t.Errorf("unexpected result %q, want %q", data, want)
	}

	// existing destination is kept unless asked
	if err := flipStylesheet(ctx, env, src, dst, false); err == nil {
		t.Error("expected error for existing destination")
	}
	if err := flipStylesheet(ctx, env, src, dst, true); err != nil {
		t.Errorf("flipStylesheet() with overwrite error = %v", err)
	}
}

func TestFlipStylesheet_Errors(t *testing.T) {
	ctx, env := newEnv(t, bidi.DirectionRtl)
	dir := t.TempDir()

	if err := flipStylesheet(ctx, env, filepath.Join(dir, "missing.css"), "", false); err == nil {
		t.Error("expected error for missing source")
	}

	src := filepath.Join(dir, "bad.css")
	if err := os.WriteFile(src, []byte(`a { background: url(a b); }`), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	dst := filepath.Join(dir, "out.css")
	if err := flipStylesheet(ctx, env, src, dst, false); err == nil {
		t.Error("expected error for bad declaration")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("destination must not be created on error")
	}
}

func TestFlipStylesheet_Tree(t *testing.T) {
	ctx, env := newEnv(t, bidi.DirectionRtl)
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "rtl")

	for name, content := range map[string]string{
		"site.css":          `a { float: start; }`,
		"theme/buttons.css": `.btn { padding: 1px 2px 3px 4px; }`,
		"theme/broken.css":  `.x { background: url(a b); }`,
		"theme/notes.txt":   `not a stylesheet`,
	} {
		p := filepath.Join(src, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	err := flipStylesheet(ctx, env, src, dst, false)
	if err == nil {
		t.Fatal("expected error for broken stylesheet")
	}
	var perr *bidi.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected *bidi.ParseError, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "theme", "buttons.css"))
	if err != nil {
		t.Fatalf("good stylesheets must be written: %v", err)
	}
	if want := ".btn {\n  padding: 1px 4px 3px 2px;\n}\n"; string(data) != want {
		t.Errorf("unexpected result %q, want %q", data, want)
	}
	if _, err := os.Stat(filepath.Join(dst, "site.css")); err != nil {
		t.Errorf("site.css must be written: %v", err)
	}
	for _, name := range []string{"theme/broken.css", "theme/notes.txt"} {
		if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(name))); !os.IsNotExist(err) {
			t.Errorf("%s must not be written", name)
		}
	}

	if err := flipStylesheet(ctx, env, src, "", false); err == nil {
		t.Error("expected error without destination directory")
	}
}

func TestTransformDeclaration_Report(t *testing.T) {
	ctx, env := newEnv(t, bidi.DirectionRtl)
	conf := config.ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}

	var err error
	if env.Rpt, err = conf.Prepare(); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	var out bytes.Buffer
	if err := transformDeclaration(ctx, env, &out, "transform", "rotate(45deg)", ""); err != nil {
		t.Fatalf("transformDeclaration() error = %v", err)
	}
	if err := env.Rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, name := range []string{"MANIFEST", "transform.txt", "value-tree.txt"} {
		if !names[name] {
			t.Errorf("report is missing %s", name)
		}
	}
}
