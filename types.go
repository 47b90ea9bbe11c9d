package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Reference engine names accepted by WithReference.
const (
	EngineGoldmark    = pipeline.EngineGoldmark
	EngineBlackfriday = pipeline.EngineBlackfriday
)

// Input holds one document to convert.
type Input struct {
	Markdown string // Source text in the line dialect
	Title    string // Overrides the WithDocument title for this document
}

// Result holds the output of a conversion.
type Result struct {
	HTML      string   // Output file content, newline terminated fragments
	Fragments []string // One entry per output line, without terminators
	Lines     int      // Number of input lines processed
	Reference string   // Reference engine output, empty unless WithReference
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	document  bool
	title     string
	css       string
	reference bool
	engine    string
}

// WithDocument wraps the output in an HTML5 document with the given title.
// An empty title falls back to "Document".
func WithDocument(title string) Option {
	return func(c *Converter) {
		c.cfg.document = true
		c.cfg.title = title
	}
}

// WithCSS adds a <style> block to wrapped documents. It has no effect
// without WithDocument, since bare fragments have no head.
func WithCSS(css string) Option {
	return func(c *Converter) {
		c.cfg.css = css
	}
}

// WithReference also renders every input with a general purpose markdown
// engine ("goldmark" or "blackfriday", "" for goldmark). The engine name is
// validated by NewConverter.
func WithReference(engine string) Option {
	return func(c *Converter) {
		c.cfg.reference = true
		c.cfg.engine = engine
	}
}
