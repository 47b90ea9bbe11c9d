package assets

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// Styles lists the built-in style names.
func Styles() []string {
	return defaultLoader.Styles()
}

// ResolveStyle returns stylesheet content for nameOrPath. Values containing a
// path separator or ending in ".css" are read from disk; anything else is
// looked up among the built-in styles.
func ResolveStyle(nameOrPath string) (string, error) {
	return resolveStyle(nameOrPath, defaultLoader)
}

func resolveStyle(nameOrPath string, loader StyleLoader) (string, error) {
	if !isStylePath(nameOrPath) {
		return loader.LoadStyle(nameOrPath)
	}

	content, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided stylesheet path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// isStylePath reports whether s names a file rather than a built-in style.
func isStylePath(s string) bool {
	return fileutil.IsFilePath(s) || strings.HasSuffix(strings.ToLower(s), styleExt)
}
