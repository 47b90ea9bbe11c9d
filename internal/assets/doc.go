// Package assets provides the built-in stylesheets for wrapped documents.
//
// A stylesheet is referenced either by name, resolved against the styles
// embedded at compile time, or by file path:
//
//	default      embedded styles/default.css
//	compact      embedded styles/compact.css
//	./site.css   read from disk
//
// Names are validated so they can never reach outside the embedded
// styles directory.
package assets
