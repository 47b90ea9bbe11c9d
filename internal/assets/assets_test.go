package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "default", nil},
		{"name with hyphen", "my-style", nil},
		{"name with underscore", "my_style", nil},
		{"mixed case with digits", "Style123", nil},
		{"empty name", "", ErrInvalidAssetName},
		{"forward slash", "path/to/style", ErrInvalidAssetName},
		{"backslash", "path\\to\\style", ErrInvalidAssetName},
		{"dot dot", "..", ErrInvalidAssetName},
		{"extension", "default.css", ErrInvalidAssetName},
		{"space", "my style", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in styles
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{"default", "compact"} {
		css, err := loader.LoadStyle(name)
		if err != nil {
			t.Errorf("LoadStyle(%q) unexpected error: %v", name, err)
			continue
		}
		if !strings.Contains(css, "body") {
			t.Errorf("LoadStyle(%q) should style body, got:\n%s", name, css)
		}
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("../styles/default"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(traversal) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestStyles(t *testing.T) {
	t.Parallel()

	got := Styles()
	if len(got) != 2 || got[0] != "compact" || got[1] != "default" {
		t.Errorf("Styles() = %v, want [compact default]", got)
	}
}

// ---------------------------------------------------------------------------
// TestResolveStyle - Name or path dispatch
// ---------------------------------------------------------------------------

type stubLoader struct {
	calls []string
}

func (s *stubLoader) LoadStyle(name string) (string, error) {
	s.calls = append(s.calls, name)
	return "/* " + name + " */", nil
}

func TestResolveStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "site.css")
	if err := os.WriteFile(path, []byte("p { margin: 0; }"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("name uses loader", func(t *testing.T) {
		t.Parallel()

		loader := &stubLoader{}
		got, err := resolveStyle("fancy", loader)
		if err != nil || got != "/* fancy */" {
			t.Errorf("resolveStyle(fancy) = %q, %v", got, err)
		}
		if len(loader.calls) != 1 {
			t.Errorf("loader calls = %v", loader.calls)
		}
	})

	t.Run("path reads file", func(t *testing.T) {
		t.Parallel()

		loader := &stubLoader{}
		got, err := resolveStyle(path, loader)
		if err != nil || got != "p { margin: 0; }" {
			t.Errorf("resolveStyle(path) = %q, %v", got, err)
		}
		if len(loader.calls) != 0 {
			t.Errorf("loader should not be called for paths, got %v", loader.calls)
		}
	})

	t.Run("bare css filename is a path", func(t *testing.T) {
		t.Parallel()

		_, err := resolveStyle("nowhere.CSS", &stubLoader{})
		if !errors.Is(err, ErrAssetRead) {
			t.Errorf("error = %v, want ErrAssetRead", err)
		}
	})

	t.Run("builtin", func(t *testing.T) {
		t.Parallel()

		css, err := ResolveStyle("default")
		if err != nil || css == "" {
			t.Errorf("ResolveStyle(default) = %q, %v", css, err)
		}
	})
}
