package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidEngine   = errors.New("invalid reference engine")
)

// Field length limits.
const (
	MaxTitleLength = 200  // <title> text
	MaxPathLength  = 4096 // PATH_MAX on Linux
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-md2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Reference ReferenceConfig `yaml:"reference"`
}

// OutputConfig defines how the converted fragments are written.
type OutputConfig struct {
	Document bool   `yaml:"document"` // Wrap fragments in an HTML5 document
	Title    string `yaml:"title"`    // Document title (empty = "Document")
	CSS      string `yaml:"css"`      // Built-in style name or stylesheet path
}

// ReferenceConfig defines the optional reference render.
type ReferenceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Engine  string `yaml:"engine"` // "goldmark" or "blackfriday", empty = goldmark
	Path    string `yaml:"path"`   // Empty = <output>.ref.html
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.title", c.Output.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.css", c.Output.CSS, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("reference.path", c.Reference.Path, MaxPathLength); err != nil {
		return err
	}

	if c.Reference.Engine != "" && !isKnownEngine(c.Reference.Engine) {
		return fmt.Errorf("%w: reference.engine %q (must be %s)",
			ErrInvalidEngine, c.Reference.Engine, strings.Join(pipeline.Engines, " or "))
	}

	return nil
}

func isKnownEngine(engine string) bool {
	for _, e := range pipeline.Engines {
		if strings.EqualFold(engine, e) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that writes bare fragments and no
// reference render.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputConfig{Document: false},
		Reference: ReferenceConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump renders cfg as YAML, the same shape LoadConfig reads.
func (c *Config) Dump() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in order: current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in SearchPaths order.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
