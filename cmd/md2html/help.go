package main

import (
	"fmt"
	"io"
)

// usageLine is repeated in usage errors.
const usageLine = "Usage: md2html [flags] <input-path> <output-path>"

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to HTML fragments, one per line.")
	fmt.Fprintln(w, "Use - as input-path for stdin or as output-path for stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dialect:")
	fmt.Fprintln(w, "  # .. ######  text   heading, level = number of #")
	fmt.Fprintln(w, "  - text              unordered list item")
	fmt.Fprintln(w, "  * text              ordered list item")
	fmt.Fprintln(w, "  other lines         paragraph, consecutive lines joined by <br/>")
	fmt.Fprintln(w, "  **b** __e__         bold, emphasis")
	fmt.Fprintln(w, "  [[text]]            MD5 digest of text")
	fmt.Fprintln(w, "  ((text))            text without c or C")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --document            Wrap output in an HTML5 document")
	fmt.Fprintln(w, "      --title <s>           Document title (default \"Document\")")
	fmt.Fprintln(w, "      --css <name|path>     Style inlined in the head: default, compact, or a .css file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reference:")
	fmt.Fprintln(w, "      --reference <path>    Also render with a CommonMark engine")
	fmt.Fprintln(w, "      --reference-engine <s> Engine: goldmark, blackfriday")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (env: MD2HTML_CONFIG)")
	fmt.Fprintln(w, "      --print-config        Print the effective config as YAML and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show line counts and timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
