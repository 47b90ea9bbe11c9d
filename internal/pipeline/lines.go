package pipeline

import (
	"regexp"
	"strings"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SplitLines normalizes line endings and splits content into lines without
// terminators. A trailing newline does not produce an extra empty line, so
// empty content yields no lines at all.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = normalizeLineEndings(content)
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// JoinLines terminates every fragment with a newline and concatenates them.
func JoinLines(fragments []string) string {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(f)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
