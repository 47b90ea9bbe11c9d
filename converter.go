package md2html

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HTMLConverter = (*pipeline.BlackfridayConverter)(nil)
)

// Converter runs the dialect conversion pipeline.
// A Converter is safe for concurrent use: each call to Convert owns its
// own output buffer.
type Converter struct {
	cfg       converterConfig
	reference pipeline.HTMLConverter
}

// NewConverter creates a Converter. Without options it produces bare
// fragments exactly as the dialect defines them.
// Returns ErrUnknownEngine if WithReference names an unsupported engine.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.reference {
		ref, err := pipeline.NewReferenceConverter(c.cfg.engine)
		if err != nil {
			return nil, err
		}
		c.reference = ref
	}

	return c, nil
}

// Convert transforms input.Markdown and returns the output file content.
// The whole input is converted before anything is returned; ctx is checked
// before the core stage and before reference rendering.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := pipeline.SplitLines(input.Markdown)
	fragments := ConvertLines(lines)

	res := &Result{
		HTML:      c.finish(pipeline.JoinLines(fragments), input.Title),
		Fragments: fragments,
		Lines:     len(lines),
	}

	if c.reference == nil {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ref, err := c.reference.ToHTML(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("rendering reference: %w", err)
	}
	res.Reference = c.finish(ref, input.Title)

	return res, nil
}

// finish applies the document wrapper when configured.
func (c *Converter) finish(body, title string) string {
	if !c.cfg.document {
		return body
	}
	if title == "" {
		title = c.cfg.title
	}
	return pipeline.WrapDocument(body, title, c.cfg.css)
}

// ConvertLines is the pure core: raw input lines in, HTML fragments out.
// Lines must not carry terminators; fragments carry none either.
func ConvertLines(lines []string) []string {
	return pipeline.NewRenderer().Render(lines)
}
