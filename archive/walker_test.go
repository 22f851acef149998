package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func makeZip(t *testing.T, files map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "styles.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(zipFile)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	zipFile.Close()
	return zipPath
}

func collect(t *testing.T, root, ext string) map[string]string {
	t.Helper()
	got := make(map[string]string)
	err := Walk(root, ext, func(name string, open OpenFunc) error {
		rc, err := open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		got[name] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return got
}

func TestWalk_Zip(t *testing.T) {
	zipPath := makeZip(t, map[string]string{
		"css/site.css":      "a { float: left; }",
		"css/print.CSS":     "p { margin: 0; }",
		"css/readme.txt":    "readme",
		"images/logo.png":   "png",
		"theme/theme.css":   "b { float: right; }",
		"theme/fonts/x.ttf": "font",
	})

	got := collect(t, zipPath, ".css")
	names := make([]string, 0, len(got))
	for name := range got {
		names = append(names, name)
	}
	slices.Sort(names)

	want := []string{"css/print.CSS", "css/site.css", "theme/theme.css"}
	if !slices.Equal(names, want) {
		t.Errorf("visited %v, want %v", names, want)
	}
	if got["css/site.css"] != "a { float: left; }" {
		t.Errorf("unexpected content %q", got["css/site.css"])
	}
}

func TestWalk_Directory(t *testing.T) {
	root := t.TempDir()
	for name, content := range map[string]string{
		"a.css":          "a {}",
		"nested/b.css":   "b {}",
		"nested/c.scss":  "c {}",
		"nested/d/e.css": "e {}",
	} {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	got := collect(t, root, ".css")
	if len(got) != 3 {
		t.Fatalf("visited %d files, want 3: %v", len(got), got)
	}
	if got["nested/d/e.css"] != "e {}" {
		t.Errorf("unexpected content %q", got["nested/d/e.css"])
	}
	if _, ok := got["nested/c.scss"]; ok {
		t.Error("files with other extensions must be skipped")
	}

	if !IsContainer(root) {
		t.Error("directory must be a container")
	}
}

func TestWalk_SingleFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "one.css")
	if err := os.WriteFile(p, []byte("x {}"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got := collect(t, p, ".css")
	if len(got) != 1 || got["one.css"] != "x {}" {
		t.Errorf("unexpected result %v", got)
	}
	if IsContainer(p) {
		t.Error("single file is not a container")
	}
}

func TestWalk_UnsafeZip(t *testing.T) {
	zipPath := makeZip(t, map[string]string{"../evil.css": "a {}"})

	err := Walk(zipPath, ".css", func(string, OpenFunc) error {
		t.Error("walkFn must not be called")
		return nil
	})
	if err == nil {
		t.Error("expected error for unsafe entry")
	}
}

func TestWalk_Errors(t *testing.T) {
	if err := Walk(filepath.Join(t.TempDir(), "missing"), ".css", nil); err == nil {
		t.Error("expected error for missing root")
	}

	bad := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(bad, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := Walk(bad, ".css", nil); err == nil {
		t.Error("expected error for invalid archive")
	}

	stop := errors.New("stop")
	var calls int
	zipPath := makeZip(t, map[string]string{"a.css": "", "b.css": ""})
	err := Walk(zipPath, ".css", func(string, OpenFunc) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("expected early termination, got %v after %d calls", err, calls)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		safe bool
	}{
		{"css/site.css", true},
		{"a..b/site.css", true},
		{"/etc/passwd", false},
		{`\windows\system.ini`, false},
		{"../up.css", false},
		{"css/../../up.css", false},
		{`css\..\..\up.css`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.safe {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.safe)
		}
	}
}
