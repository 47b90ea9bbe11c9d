package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownEngine  = pipeline.ErrUnknownEngine
)
