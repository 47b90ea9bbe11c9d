package main

// Notes:
// - Test infrastructure shared by the CLI tests, not code under test.
// - newTestEnv isolates the process environment: Getenv and Environ read
//   from a map, so tests using it can run in parallel.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	md2html "github.com/alnah/go-md2html"
)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment with buffered output, a fixed clock,
// non-terminal empty stdin and the given MD2HTML_* variables.
func newTestEnv(vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return now },
			Stdin:  strings.NewReader(""),
			Stdout: stdout,
			Stderr: stderr,
			Getenv: func(k string) string { return vars[k] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				return out
			},
			StdinIsTerminal: func() bool { return false },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup write %s: %v", path, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// failingConverter is a Converter that always fails.
type failingConverter struct {
	err error
}

func (f *failingConverter) Convert(_ context.Context, _ md2html.Input) (*md2html.Result, error) {
	return nil, f.err
}
