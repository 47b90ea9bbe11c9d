package pipeline

import (
	"fmt"
	"regexp"
)

// Kind identifies what a single line contributes to the document.
type Kind int

// Line kinds.
const (
	KindNone      Kind = iota // emits nothing and ends any open block
	KindHeading               // "#".."######" followed by a space
	KindUnordered             // "- " list line
	KindOrdered               // "* " list line
	KindText                  // plain paragraph text
)

var kindNames = [...]string{
	KindNone:      "none",
	KindHeading:   "heading",
	KindUnordered: "unordered",
	KindOrdered:   "ordered",
	KindText:      "text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Block is the classification of one substituted line.
//
// Level is set for headings only. Item is false for list lines whose
// marker is not followed by a space: they still take part in list
// bracketing but produce no <li>.
type Block struct {
	Kind  Kind
	Level int
	Text  string
	Item  bool
}

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6}) (.*)`)
	unorderedPattern = regexp.MustCompile(`^- (.*)`)
	orderedPattern   = regexp.MustCompile(`^\* (.*)`)
)

// Classify dispatches on the first character of line.
func Classify(line string) Block {
	if line == "" {
		return Block{Kind: KindNone}
	}

	switch line[0] {
	case '#':
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			return Block{Kind: KindNone}
		}
		return Block{Kind: KindHeading, Level: len(m[1]), Text: m[2]}
	case '-':
		return classifyListLine(KindUnordered, unorderedPattern, line)
	case '*':
		return classifyListLine(KindOrdered, orderedPattern, line)
	case ' ':
		return Block{Kind: KindNone}
	default:
		return Block{Kind: KindText, Text: line}
	}
}

func classifyListLine(kind Kind, pattern *regexp.Regexp, line string) Block {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return Block{Kind: kind}
	}
	return Block{Kind: kind, Text: m[1], Item: true}
}
