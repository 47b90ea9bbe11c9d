package config

// Notes:
// - LoadConfig tests change the working directory and XDG_CONFIG_HOME, so
//   they cannot run in parallel.
// - Validation tests are pure and run in parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Output.Document {
		t.Error("Output.Document = true, want false")
	}
	if cfg.Output.Title != "" {
		t.Errorf("Output.Title = %q, want empty", cfg.Output.Title)
	}
	if cfg.Reference.Enabled {
		t.Error("Reference.Enabled = true, want false")
	}
	if cfg.Reference.Engine != "" {
		t.Errorf("Reference.Engine = %q, want empty", cfg.Reference.Engine)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Field lengths and engine names
// ---------------------------------------------------------------------------

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrFieldTooLong)
			assert.Contains(t, err.Error(), "test.field")
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"blackfriday engine", func(c *Config) { c.Reference.Engine = "blackfriday" }, nil},
		{"engine case insensitive", func(c *Config) { c.Reference.Engine = "Goldmark" }, nil},
		{"empty engine", func(c *Config) { c.Reference.Engine = "" }, nil},
		{"unknown engine", func(c *Config) { c.Reference.Engine = "pandoc" }, ErrInvalidEngine},
		{"title too long", func(c *Config) { c.Output.Title = strings.Repeat("t", MaxTitleLength+1) }, ErrFieldTooLong},
		{"css path too long", func(c *Config) { c.Output.CSS = strings.Repeat("p", MaxPathLength+1) }, ErrFieldTooLong},
		{"reference path too long", func(c *Config) { c.Reference.Path = strings.Repeat("p", MaxPathLength+1) }, ErrFieldTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Path and name resolution, parsing
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// isolate points the working directory and the user config directory at
// fresh temp dirs and returns both.
func isolate(t *testing.T) (wd, userDir string) {
	t.Helper()
	wd = t.TempDir()
	userDir = t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	t.Setenv("XDG_CONFIG_HOME", userDir)
	t.Setenv("HOME", userDir)
	t.Setenv("AppData", userDir)
	return wd, userDir
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.ErrorIs(t, err, ErrEmptyConfigName)
	})

	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		writeConfig(t, path, `output:
  document: true
  title: Notes
  css: style.css
reference:
  enabled: true
  engine: blackfriday
  path: out.ref.html
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, &Config{
			Output:    OutputConfig{Document: true, Title: "Notes", CSS: "style.css"},
			Reference: ReferenceConfig{Enabled: true, Engine: "blackfriday", Path: "out.ref.html"},
		}, cfg)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "partial.yaml")
		writeConfig(t, path, "reference:\n  enabled: true\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Reference.Enabled)
		assert.Empty(t, cfg.Reference.Engine)
		assert.False(t, cfg.Output.Document)
	})

	t.Run("explicit path not found", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeConfig(t, path, "output:\n  documnet: true\n")

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrConfigParse)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeConfig(t, path, "output: [unclosed\n")

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrConfigParse)
	})

	t.Run("invalid engine", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		writeConfig(t, path, "reference:\n  engine: pandoc\n")

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidEngine)
	})

	t.Run("name resolves in working directory", func(t *testing.T) {
		wd, _ := isolate(t)
		writeConfig(t, filepath.Join(wd, "work.yml"), "output:\n  title: local\n")

		cfg, err := LoadConfig("work")
		require.NoError(t, err)
		assert.Equal(t, "local", cfg.Output.Title)
	})

	t.Run("yaml preferred over yml", func(t *testing.T) {
		wd, _ := isolate(t)
		writeConfig(t, filepath.Join(wd, "both.yaml"), "output:\n  title: yaml\n")
		writeConfig(t, filepath.Join(wd, "both.yml"), "output:\n  title: yml\n")

		cfg, err := LoadConfig("both")
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Output.Title)
	})

	t.Run("name resolves in user config directory", func(t *testing.T) {
		_, userDir := isolate(t)
		configDir, err := os.UserConfigDir()
		if err != nil {
			t.Skip("cannot get user config dir")
		}
		if !strings.HasPrefix(configDir, userDir) {
			t.Skip("user config dir not redirected on this platform")
		}
		writeConfig(t, filepath.Join(configDir, AppDir, "global.yaml"), "output:\n  title: global\n")

		cfg, err := LoadConfig("global")
		require.NoError(t, err)
		assert.Equal(t, "global", cfg.Output.Title)
	})

	t.Run("name not found lists tried paths", func(t *testing.T) {
		isolate(t)

		_, err := LoadConfig("ghost")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigNotFound))
		assert.Contains(t, err.Error(), "ghost.yaml")
		assert.Contains(t, err.Error(), "ghost.yml")
	})
}

func TestSearchPaths(t *testing.T) {
	_, userDir := isolate(t)

	paths := SearchPaths("md2html")
	require.NotEmpty(t, paths)
	assert.Equal(t, "md2html.yaml", paths[0])
	assert.Equal(t, "md2html.yml", paths[1])
	if len(paths) == 4 {
		assert.True(t, strings.HasPrefix(paths[2], userDir), "user path %q should live under %q", paths[2], userDir)
		assert.Equal(t, filepath.Join(AppDir, "md2html.yaml"), filepath.Join(filepath.Base(filepath.Dir(paths[2])), filepath.Base(paths[2])))
	}
}

func TestConfig_Dump(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Output.Title = "Dumped"

	data, err := cfg.Dump()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
