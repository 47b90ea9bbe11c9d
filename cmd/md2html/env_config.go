package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix marks the environment variables read by md2html.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath      string // MD2HTML_CONFIG: config file name or path
	Title           string // MD2HTML_TITLE: document title
	CSS             string // MD2HTML_CSS: stylesheet path
	ReferenceEngine string // MD2HTML_REFERENCE_ENGINE: goldmark, blackfriday
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":           true,
	"MD2HTML_TITLE":            true,
	"MD2HTML_CSS":              true,
	"MD2HTML_REFERENCE_ENGINE": true,
}

// loadEnvConfig reads configuration through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath:      getenv("MD2HTML_CONFIG"),
		Title:           getenv("MD2HTML_TITLE"),
		CSS:             getenv("MD2HTML_CSS"),
		ReferenceEngine: getenv("MD2HTML_REFERENCE_ENGINE"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized MD2HTML_* variable
// in environ, in sorted order.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Title != "" && cfg.Output.Title == "" {
		cfg.Output.Title = env.Title
	}
	if env.CSS != "" && cfg.Output.CSS == "" {
		cfg.Output.CSS = env.CSS
	}
	if env.ReferenceEngine != "" && cfg.Reference.Engine == "" {
		cfg.Reference.Engine = env.ReferenceEngine
	}
}
