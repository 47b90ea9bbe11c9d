// Package config loads and validates the YAML configuration of md2html.
//
// A config file looks like:
//
//	output:
//	  document: true
//	  title: Release notes
//	  css: default
//	reference:
//	  enabled: true
//	  engine: blackfriday
//	  path: ./notes.ref.html
//
// Unknown keys are rejected. Command-line flags override config values.
package config
