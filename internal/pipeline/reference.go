package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/russross/blackfriday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors for reference rendering.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownEngine  = errors.New("unknown reference engine")
)

// Reference engine names.
const (
	EngineGoldmark    = "goldmark"
	EngineBlackfriday = "blackfriday"
)

// Engines lists the supported reference engines, default first.
var Engines = []string{EngineGoldmark, EngineBlackfriday}

// HTMLConverter renders markdown with a general purpose engine. It backs the
// reference output written next to the dialect output for comparison.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewReferenceConverter returns the converter for engine.
// An empty engine selects goldmark.
func NewReferenceConverter(engine string) (HTMLConverter, error) {
	switch strings.ToLower(engine) {
	case "", EngineGoldmark:
		return NewGoldmarkConverter(), nil
	case EngineBlackfriday:
		return NewBlackfridayConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, engine, strings.Join(Engines, ", "))
	}
}

// GoldmarkConverter renders CommonMark with GFM extensions using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // <br/> like the dialect output
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller stops waiting once ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// BlackfridayConverter renders markdown with blackfriday.
type BlackfridayConverter struct {
	extensions blackfriday.Extensions
}

// NewBlackfridayConverter creates a BlackfridayConverter with the common
// extension set plus space-required headings.
func NewBlackfridayConverter() *BlackfridayConverter {
	return &BlackfridayConverter{
		extensions: blackfriday.CommonExtensions | blackfriday.SpaceHeadings,
	}
}

// ToHTML converts content to an HTML fragment. Blackfriday cannot fail and
// runs synchronously; ctx is only checked up front.
func (c *BlackfridayConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out := blackfriday.Run([]byte(content), blackfriday.WithExtensions(c.extensions))
	return string(out), nil
}
