package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("usage: md2html [flags] <input-path> <output-path>")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrReadCSS       = errors.New("failed to read CSS file")
	ErrWriteHTML     = errors.New("failed to write HTML file")
	ErrTerminalInput = errors.New("refusing to read markdown from a terminal")
)

// filePermissions is rw-r--r--: HTML output is meant to be readable.
const filePermissions = 0o644

// referenceSuffix replaces the output extension for the default reference path.
const referenceSuffix = ".ref.html"

// Converter is the interface for the conversion library.
type Converter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2html.Converter)(nil)

// newConverter builds the library converter; tests replace it.
var newConverter = func(opts ...md2html.Option) (Converter, error) {
	return md2html.NewConverter(opts...)
}

// conversionJob is one resolved run: paths and effective configuration.
type conversionJob struct {
	inputPath     string
	outputPath    string
	referencePath string // empty when no reference render
	css           string // stylesheet content
	cfg           *config.Config
}

// conversionResult holds the outcome of a conversion.
type conversionResult struct {
	lines     int
	fragments int
	duration  time.Duration
}

// runConvert orchestrates the conversion process. Every precondition is
// checked before the input is read, and the output is written only once
// the whole input has been converted.
func runConvert(ctx context.Context, positionalArgs []string, flags *cliFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	if flags.printConfig {
		return printConfig(cfg, env.Stdout)
	}

	job, err := prepareJob(positionalArgs, cfg, env)
	if err != nil {
		return err
	}

	if job.css != "" && !cfg.Output.Document && !flags.common.quiet {
		fmt.Fprintln(env.Stderr, "warning: CSS is ignored without --document")
	}

	result, err := convertFile(ctx, job, env)
	if err != nil {
		return err
	}

	printResult(job, result, flags.common, env)
	return nil
}

// resolveConfig loads the config file (flag, then MD2HTML_CONFIG), applies
// environment values, merges flags and validates the result.
func resolveConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidEngine) {
			return nil, fmt.Errorf("%w%s", err, hints.ForUnknownEngine(pipeline.Engines))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.output.document {
		cfg.Output.Document = true
	}
	if flags.output.title != "" {
		cfg.Output.Title = flags.output.title
	}
	if flags.output.css != "" {
		cfg.Output.CSS = flags.output.css
	}

	if flags.reference.path != "" {
		cfg.Reference.Enabled = true
		cfg.Reference.Path = flags.reference.path
	}
	if flags.reference.engine != "" {
		cfg.Reference.Enabled = true
		cfg.Reference.Engine = flags.reference.engine
	}
}

// printConfig writes the effective configuration as YAML.
func printConfig(cfg *config.Config, w io.Writer) error {
	data, err := cfg.Dump()
	if err != nil {
		return fmt.Errorf("printing config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// prepareJob validates positional arguments and the input path, and
// resolves the stylesheet. Nothing is converted or written here.
func prepareJob(args []string, cfg *config.Config, env *Environment) (*conversionJob, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w (got %d argument(s))", ErrUsage, len(args))
	}
	if len(args) > 2 {
		fmt.Fprintf(env.Stderr, "warning: ignoring extra arguments: %s\n", strings.Join(args[2:], " "))
	}

	job := &conversionJob{
		inputPath:  args[0],
		outputPath: args[1],
		cfg:        cfg,
	}

	if err := checkInput(job.inputPath, env); err != nil {
		return nil, err
	}

	if cfg.Reference.Enabled {
		path, err := resolveReferencePath(cfg.Reference.Path, job.outputPath)
		if err != nil {
			return nil, err
		}
		job.referencePath = path
	}

	if cfg.Output.CSS != "" {
		css, err := assets.ResolveStyle(cfg.Output.CSS)
		if err != nil {
			if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
				return nil, fmt.Errorf("%w: %w%s", ErrReadCSS, err, hints.ForStyleNotFound(assets.Styles()))
			}
			return nil, fmt.Errorf("%w: %w", ErrReadCSS, err)
		}
		job.css = css
	}

	return job, nil
}

// checkInput verifies the input can be read, with a hint on failure.
func checkInput(path string, env *Environment) error {
	if fileutil.IsStdio(path) {
		if env.StdinIsTerminal() {
			return fmt.Errorf("%w%s", ErrTerminalInput, hints.ForTerminalInput())
		}
		return nil
	}

	err := fileutil.CheckReadable(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fileutil.ErrNotFound):
		return fmt.Errorf("%w%s", err, hints.ForMissingInput(path))
	case errors.Is(err, fileutil.ErrNotReadable):
		return fmt.Errorf("%w%s", err, hints.ForPermission(path))
	default:
		return err
	}
}

// resolveReferencePath returns the configured reference path, or the
// output path with its extension replaced by ".ref.html".
func resolveReferencePath(configured, outputPath string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if fileutil.IsStdio(outputPath) {
		return "", fmt.Errorf("%w: --reference needs a path when writing to stdout", ErrUsage)
	}
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + referenceSuffix, nil
}

// converterOptions translates the effective config into library options.
func converterOptions(job *conversionJob) []md2html.Option {
	var opts []md2html.Option
	if job.cfg.Output.Document {
		opts = append(opts, md2html.WithDocument(job.cfg.Output.Title), md2html.WithCSS(job.css))
	}
	if job.referencePath != "" {
		opts = append(opts, md2html.WithReference(job.cfg.Reference.Engine))
	}
	return opts
}

// convertFile reads, converts and writes one document.
func convertFile(ctx context.Context, job *conversionJob, env *Environment) (*conversionResult, error) {
	start := env.Now()

	content, err := readInput(job.inputPath, env)
	if err != nil {
		return nil, err
	}

	conv, err := newConverter(converterOptions(job)...)
	if err != nil {
		return nil, err
	}

	res, err := conv.Convert(ctx, md2html.Input{Markdown: content})
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", job.inputPath, err)
	}

	if err := writeOutput(job.outputPath, res.HTML, env); err != nil {
		return nil, err
	}
	if job.referencePath != "" {
		if err := writeOutput(job.referencePath, res.Reference, env); err != nil {
			return nil, err
		}
	}

	return &conversionResult{
		lines:     res.Lines,
		fragments: len(res.Fragments),
		duration:  env.Now().Sub(start),
	}, nil
}

// readInput reads the whole input file, or stdin for "-".
func readInput(path string, env *Environment) (string, error) {
	var (
		data []byte
		err  error
	)
	if fileutil.IsStdio(path) {
		data, err = io.ReadAll(env.Stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- user-provided path
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// writeOutput writes content atomically to path, or to stdout for "-".
func writeOutput(path, content string, env *Environment) error {
	if fileutil.IsStdio(path) {
		if _, err := io.WriteString(env.Stdout, content); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
	}
	return nil
}

// printResult reports a successful conversion. Status goes to stderr when
// the HTML itself goes to stdout.
func printResult(job *conversionJob, r *conversionResult, common commonFlags, env *Environment) {
	if common.quiet {
		return
	}

	w := env.Stdout
	if fileutil.IsStdio(job.outputPath) {
		w = env.Stderr
	}

	if common.verbose {
		fmt.Fprintf(w, "%s -> %s (%d lines, %d fragments, %v)\n",
			job.inputPath, job.outputPath, r.lines, r.fragments, r.duration.Round(time.Millisecond))
	} else if !fileutil.IsStdio(job.outputPath) {
		fmt.Fprintf(w, "Created %s\n", job.outputPath)
	}
	if job.referencePath != "" && !fileutil.IsStdio(job.referencePath) {
		fmt.Fprintf(w, "Created %s\n", job.referencePath)
	}
}
