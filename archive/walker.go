// Package archive walks stylesheets kept in a directory tree or a zip archive.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// OpenFunc opens content of a visited file.
type OpenFunc func() (io.ReadCloser, error)

// WalkFunc is the type of the function called for each file visited by Walk.
// The name argument is slash separated path relative to the walk root. If an
// error is returned, processing stops.
type WalkFunc func(name string, open OpenFunc) error

// IsContainer reports whether Walk treats root as a collection of files
// rather than a single file.
func IsContainer(root string) bool {
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		return true
	}
	return strings.EqualFold(filepath.Ext(root), ".zip")
}

// Walk calls walkFn for every regular file under root which name ends with
// ext (case insensitive). Root may be a directory, a zip archive or a single
// file. Symbolic links are not followed.
func Walk(root, ext string, walkFn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	switch {
	case info.IsDir():
		return walkDir(root, ext, walkFn)
	case strings.EqualFold(filepath.Ext(root), ".zip"):
		return walkZip(root, ext, walkFn)
	default:
		return walkFn(filepath.Base(root), func() (io.ReadCloser, error) { return os.Open(root) })
	}
}

func hasExt(name, ext string) bool {
	return len(ext) == 0 || strings.EqualFold(path.Ext(name), ext)
}

func walkDir(root, ext string, walkFn WalkFunc) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !hasExt(p, ext) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		return walkFn(filepath.ToSlash(rel), func() (io.ReadCloser, error) { return os.Open(p) })
	})
}

// walkZip refuses archives with entries which could escape destination
// directory (Zip Slip).
func walkZip(archive, ext string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !hasExt(name, ext) {
			continue
		}
		if err := walkFn(name, f.Open); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for absolute paths and those containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) || filepath.VolumeName(name) != "" {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
