// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/renameio"
)

// StdioPath stands for standard input or standard output in place of a path.
const StdioPath = "-"

// Sentinel errors for file utility operations.
var (
	ErrNotFound    = errors.New("file not found")
	ErrNotReadable = errors.New("permission denied")
	ErrIsDirectory = errors.New("is a directory")
	ErrEmptyPath   = errors.New("path cannot be empty")
)

// CheckReadable verifies that path names an existing regular file the
// current user can open for reading. It does not read the file.
func CheckReadable(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrNotReadable, path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrNotReadable, path)
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return f.Close()
}

// WriteFileAtomic replaces path with data in one step: the content goes to
// a temporary file in the same directory which is then renamed over path.
// Readers never observe a partially written file, and a failed write
// leaves any previous file untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// IsStdio reports whether path is the "-" placeholder.
func IsStdio(path string) bool {
	return path == StdioPath
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "html" -> false (name)
//   - "./md2html.yaml" -> true (relative path)
//   - "/etc/md2html.yaml" -> true (absolute)
//   - "C:\config\md2html.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
