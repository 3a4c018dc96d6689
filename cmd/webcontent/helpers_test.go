package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// newTestEnv returns an Environment with captured output and the given
// variables as its only environment.
func newTestEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	return &Environment{
		Stdout:  stdout,
		Stderr:  stderr,
		Getenv:  func(key string) string { return vars[key] },
		Environ: func() []string { return environ },
	}, stdout, stderr
}

// setupProject creates a project root with the given files below it.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return root
}

// validProject returns the files of a project with both reference tags.
func validProject() map[string]string {
	return map[string]string{
		"data/index.html": `<html><link rel="stylesheet" href="style.css"><script src="app.js"></script></html>`,
		"data/style.css":  "a{color:  red;}",
		"data/app.js":     "foo();\n\nbar();",
	}
}
