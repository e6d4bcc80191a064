// Package controller provides output adapters for displaying check results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "noprint.dev/pkg/noprint/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	roots   []m.DottedName
	workers int
}

// WithRoots sets the requested names shown while the check runs.
func WithRoots(roots []m.DottedName) StartOption {
	return func(c *StartConfig) {
		c.roots = roots
	}
}

// WithWorkers sets the worker count shown while the check runs.
func WithWorkers(workers int) StartOption {
	return func(c *StartConfig) {
		c.workers = workers
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying check progress and results.
// Warnings and errors go to the error stream, everything else to the output stream.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayNotice(ctx context.Context, notice m.Notice)
	DisplayFailure(ctx context.Context, failure m.Failure)
	// DisplayOccurrence shows a flagged entry, as an error when escalate is set.
	DisplayOccurrence(ctx context.Context, entry m.OutcomeEntry, escalate bool)
	DisplayClear(ctx context.Context, entry m.OutcomeEntry)
	DisplayProgress(ctx context.Context, scanned int, flagged int)
	DisplayVerdict(ctx context.Context, summary m.Summary, escalate bool, verbosity int)
}

// NewUI picks the interactive UI for terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool, opts ...UIOption) UI {
	if tty {
		return NewTUI(cmd, opts...)
	}

	return NewSimpleUI(cmd, opts...)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
