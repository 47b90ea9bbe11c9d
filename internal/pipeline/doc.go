// Package pipeline implements the line-oriented markdown dialect to HTML
// conversion.
//
// Every input line goes through two stages:
//   - Inline substitution: ((marker)) stripping, [[marker]] MD5 digests,
//     **bold** and __emphasis__, in that order (Substitute)
//   - Block classification: the substituted line becomes a Block (heading,
//     unordered or ordered list line, paragraph text, or nothing) that a
//     Renderer turns into HTML fragments, opening and closing <ul>, <ol>
//     and <p> on block transitions
//
// SplitLines and JoinLines sit at the boundary, WrapDocument adds an
// optional HTML5 skeleton, and the HTMLConverter implementations render
// the same input with goldmark or blackfriday for comparison.
package pipeline
