package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control config lookup and verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds document wrapping flags.
type outputFlags struct {
	document bool
	title    string
	css      string
}

// referenceFlags holds reference render flags.
type referenceFlags struct {
	path   string
	engine string
}

// cliFlags holds all flags of the md2html command.
type cliFlags struct {
	common      commonFlags
	output      outputFlags
	reference   referenceFlags
	printConfig bool
	version     bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show line counts and timing")
}

// addOutputFlags adds document wrapping flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.document, "document", false, "wrap output in an HTML5 document")
	fs.StringVar(&f.title, "title", "", "document title (with --document)")
	fs.StringVar(&f.css, "css", "", "built-in style name or CSS file path (with --document)")
}

// addReferenceFlags adds reference render flags to a FlagSet.
func addReferenceFlags(fs *flag.FlagSet, f *referenceFlags) {
	fs.StringVar(&f.path, "reference", "", "also render with a CommonMark engine to this path")
	fs.StringVar(&f.engine, "reference-engine", "", "reference engine: goldmark, blackfriday")
}

// parseFlags parses command-line flags and returns positional args.
// A lone "-" is kept as a positional argument. Returns flag.ErrHelp for
// -h/--help; the caller prints usage.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addReferenceFlags(fs, &f.reference)
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config as YAML and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// isHelp reports whether err is the help request from parseFlags.
func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
