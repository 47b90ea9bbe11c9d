// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// markdownExtensions are tried when an input path is missing.
var markdownExtensions = []string{".md", ".markdown"}

// ForMissingInput returns hints for an input file that does not exist.
// Suggests a sibling file with a markdown extension when one exists.
func ForMissingInput(path string) string {
	if filepath.Ext(path) == "" {
		for _, ext := range markdownExtensions {
			if fileutil.FileExists(path + ext) {
				return format("did you mean " + path + ext + "?")
			}
		}
	}
	return format("check the path, or pass - to read from stdin")
}

// ForPermission returns a hint for files the process cannot read.
func ForPermission(path string) string {
	return format("check read permission on " + path)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	sep := string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"go-md2html"+sep) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTerminalInput returns hints when stdin is requested from a terminal.
func ForTerminalInput() string {
	return formatHints([]string{
		"pipe markdown into md2html, e.g. cat notes.md | md2html - out.html",
		"or pass an input file path",
	})
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in styles: " + strings.Join(available, ", ") + "; or pass a .css file path")
}

// ForUnknownEngine lists the available reference engines.
func ForUnknownEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available engines: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
