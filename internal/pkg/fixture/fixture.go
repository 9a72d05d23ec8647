// Package fixture is a test helper. It reads the gps_tracker resource tree in
// testdata/, which satisfies the default rule set, and lets tests copy it into
// a temp dir with single files edited. Only _test.go files import it.
package fixture

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Dir returns the testdata tree, located relative to this source file so it
// resolves from any package's test binary.
func Dir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", "gps_tracker")
}

// Files maps each root-relative slash path to its fixture contents.
func Files(t testing.TB) map[string]string {
	t.Helper()
	dir := Dir()
	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("read fixture tree %s: %v", dir, err)
	}
	if len(files) == 0 {
		t.Fatalf("fixture tree %s is empty", dir)
	}
	return files
}

// Edit rewrites a fixture file before it is written.
type Edit func(files map[string]string)

// Replace substitutes every occurrence of old with repl in path.
func Replace(path, old, repl string) Edit {
	return func(files map[string]string) {
		files[path] = strings.ReplaceAll(files[path], old, repl)
	}
}

// Remove drops path from the tree.
func Remove(path string) Edit {
	return func(files map[string]string) {
		delete(files, path)
	}
}

// CRLF rewrites every file with Windows line endings.
func CRLF() Edit {
	return func(files map[string]string) {
		for path, content := range files {
			files[path] = strings.ReplaceAll(content, "\n", "\r\n")
		}
	}
}

// Write materializes the fixture tree (after edits) under a fresh temp dir and returns its path.
func Write(t testing.TB, edits ...Edit) string {
	t.Helper()
	files := Files(t)
	for _, edit := range edits {
		edit(files)
	}

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}
