package pipeline

import (
	"crypto/md5" // #nosec G501 -- content addressing, not a security boundary
	"encoding/hex"
	"regexp"
	"strings"
)

// wordClass is a Unicode-aware \w: any letter or digit plus underscore.
// Go's \w is ASCII only.
const wordClass = `\p{L}\p{N}_`

// Precompiled regex patterns for the inline passes.
var (
	// ((content)) with content made of word characters and spaces.
	stripPattern = regexp.MustCompile(`\(\(([` + wordClass + ` ]+)\)\)`)

	// [[content]] with the same content class.
	digestPattern = regexp.MustCompile(`\[\[([` + wordClass + ` ]+)\]\]`)

	// **content** with word characters, spaces, angle brackets and slashes.
	boldPattern = regexp.MustCompile(`\*\*([` + wordClass + ` <>/]+)\*\*`)

	// __content__ with the same content class as bold.
	emphasisPattern = regexp.MustCompile(`__([` + wordClass + ` <>/]+)__`)
)

// stripChars removes every c and C.
var stripChars = strings.NewReplacer("c", "", "C", "")

// InlinePass rewrites a single line.
type InlinePass func(line string) string

// inlinePasses run in this order: markers resolve before bold and emphasis
// see the line.
var inlinePasses = []InlinePass{
	StripMarkers,
	DigestMarkers,
	Bold,
	Emphasis,
}

// Substitute applies every inline pass to line, in order.
// Each pass sees the output of the previous one.
func Substitute(line string) string {
	for _, pass := range inlinePasses {
		line = pass(line)
	}
	return line
}

// StripMarkers replaces ((content)) with content minus every c and C.
func StripMarkers(line string) string {
	return stripPattern.ReplaceAllStringFunc(line, func(m string) string {
		return stripChars.Replace(unwrap(m))
	})
}

// DigestMarkers replaces [[content]] with the lowercase hex MD5 of content.
func DigestMarkers(line string) string {
	return digestPattern.ReplaceAllStringFunc(line, func(m string) string {
		return Digest(unwrap(m))
	})
}

// Digest returns the 32 character lowercase hex MD5 of s.
func Digest(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401 -- content addressing
	return hex.EncodeToString(sum[:])
}

// Bold transforms **text** to <b>text</b>.
func Bold(line string) string {
	return boldPattern.ReplaceAllString(line, "<b>${1}</b>")
}

// Emphasis transforms __text__ to <em>text</em>.
func Emphasis(line string) string {
	return emphasisPattern.ReplaceAllString(line, "<em>${1}</em>")
}

// unwrap drops the two-byte delimiters on both sides of a match.
func unwrap(m string) string {
	return m[2 : len(m)-2]
}
