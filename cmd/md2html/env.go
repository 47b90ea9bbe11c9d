package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and terminal detection.
type Environment struct {
	Now     func() time.Time
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// StdinIsTerminal reports whether Stdin is an interactive terminal.
	StdinIsTerminal func() bool

	// ctx is the parent context for a run; nil means context.Background.
	ctx context.Context
}

// DefaultEnv returns the production environment bound to the process.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		StdinIsTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// Context returns the parent context for a run.
func (e *Environment) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}
