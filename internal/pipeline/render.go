package pipeline

import "strconv"

// blockState is the block the renderer is currently inside of.
type blockState int

const (
	stateNone blockState = iota
	stateHeading
	stateUnordered
	stateOrdered
	stateParagraph
)

// Opening and closing fragments per block state. Headings are single line
// blocks and carry their tags inline.
var (
	openTags = [...]string{
		stateUnordered: "<ul>",
		stateOrdered:   "<ol>",
		stateParagraph: "<p>",
	}
	closeTags = [...]string{
		stateUnordered: "</ul>",
		stateOrdered:   "</ol>",
		stateParagraph: "</p>",
	}
)

const lineBreak = "<br/>"

// Renderer turns classified lines into HTML fragments in a single forward
// pass. It owns the output buffer; fragments are only ever appended.
type Renderer struct {
	out   []string
	state blockState
}

// NewRenderer creates an empty Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render substitutes, classifies and emits every line, then closes the
// last open block. The returned fragments carry no line terminators.
// Render resets the receiver, so a Renderer can be reused.
func (r *Renderer) Render(lines []string) []string {
	r.out = make([]string, 0, len(lines)+2)
	r.state = stateNone

	for _, line := range lines {
		r.feed(Classify(Substitute(line)))
	}
	r.transition(stateNone)

	return r.out
}

// feed emits the fragments for one classified line.
func (r *Renderer) feed(b Block) {
	switch b.Kind {
	case KindHeading:
		r.transition(stateHeading)
		level := strconv.Itoa(b.Level)
		r.emit("<h" + level + ">" + b.Text + "</h" + level + ">")
	case KindUnordered:
		r.transition(stateUnordered)
		if b.Item {
			r.emit("\t<li>" + b.Text + "</li>")
		}
	case KindOrdered:
		r.transition(stateOrdered)
		if b.Item {
			r.emit("\t<li>" + b.Text + "</li>")
		}
	case KindText:
		if r.state == stateParagraph {
			r.emit(lineBreak)
		}
		r.transition(stateParagraph)
		r.emit(b.Text)
	default:
		r.transition(stateNone)
	}
}

// transition closes the current block and opens next, unless the renderer
// is already inside a block of that type.
func (r *Renderer) transition(next blockState) {
	if next == r.state {
		return
	}
	if tag := closeTag(r.state); tag != "" {
		r.emit(tag)
	}
	if tag := openTag(next); tag != "" {
		r.emit(tag)
	}
	r.state = next
}

func (r *Renderer) emit(fragment string) {
	r.out = append(r.out, fragment)
}

func openTag(s blockState) string {
	if int(s) < len(openTags) {
		return openTags[s]
	}
	return ""
}

func closeTag(s blockState) string {
	if int(s) < len(closeTags) {
		return closeTags[s]
	}
	return ""
}
