package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "noprint.dev/pkg/noprint/internal/model"
)

// TUI implements UI using Bubble Tea for a live progress line. Diagnostics
// are printed above the progress line; the verdict is printed once the
// program has quit.
type TUI struct {
	*SimpleUI

	program *tea.Program
	done    chan struct{}
	stop    sync.Once
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command, opts ...UIOption) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd, opts...)}
}

// Start launches the progress program on the error stream.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options...)

	t.program = tea.NewProgram(
		newProgressModel(config),
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.ErrOrStderr()),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Debug("Progress program stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the progress program and waits for it to restore the terminal.
func (t *TUI) Close(_ context.Context) {
	t.quit()
}

func (t *TUI) quit() {
	t.stop.Do(func() {
		if t.program == nil {
			return
		}

		t.program.Send(doneMsg{})
		<-t.done
	})
}

// DisplayNotice prints a discovery notice above the progress line.
func (t *TUI) DisplayNotice(ctx context.Context, notice m.Notice) {
	if ctx.Err() != nil {
		return
	}

	t.println(formatNotice(t.stderr, notice), t.errorf)
}

// DisplayFailure prints a failed module above the progress line.
func (t *TUI) DisplayFailure(ctx context.Context, failure m.Failure) {
	if ctx.Err() != nil {
		return
	}

	t.println(formatFailure(t.stderr, failure), t.errorf)
}

// DisplayOccurrence prints a flagged entry above the progress line.
func (t *TUI) DisplayOccurrence(ctx context.Context, entry m.OutcomeEntry, escalate bool) {
	if ctx.Err() != nil {
		return
	}

	t.println(formatOccurrence(t.stderr, entry, escalate), t.errorf)
}

// DisplayClear prints a clean module above the progress line.
func (t *TUI) DisplayClear(ctx context.Context, entry m.OutcomeEntry) {
	if ctx.Err() != nil {
		return
	}

	t.println(entry.Tag, t.printf)
}

// DisplayProgress updates the counters of the progress line.
func (t *TUI) DisplayProgress(ctx context.Context, scanned int, flagged int) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(progressMsg{scanned: scanned, flagged: flagged})
}

// DisplayVerdict removes the progress line and prints the final result.
func (t *TUI) DisplayVerdict(ctx context.Context, summary m.Summary, escalate bool, verbosity int) {
	t.quit()
	t.SimpleUI.DisplayVerdict(ctx, summary, escalate, verbosity)
}

// println prints above the progress line while the program runs and falls
// back to the plain stream otherwise.
func (t *TUI) println(line string, fallback func(format string, args ...interface{})) {
	if t.program == nil {
		fallback("%s\n", line)
		return
	}

	select {
	case <-t.done:
		fallback("%s\n", line)
	default:
		t.program.Println(line)
	}
}

type progressMsg struct {
	scanned int
	flagged int
}

type doneMsg struct{}

type progressModel struct {
	spinner spinner.Model
	title   string
	workers int
	scanned int
	flagged int
	done    bool
}

func newProgressModel(config StartConfig) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	names := make([]string, 0, len(config.roots))
	for _, root := range config.roots {
		names = append(names, string(root))
	}

	return &progressModel{
		spinner: sp,
		title:   strings.Join(names, ", "),
		workers: config.workers,
	}
}

func (pm *progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		pm.scanned = msg.scanned
		pm.flagged = msg.flagged

		return pm, nil
	case doneMsg:
		pm.done = true

		return pm, tea.Quit
	case spinner.TickMsg:
		if pm.done {
			return pm, nil
		}

		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm *progressModel) View() string {
	if pm.done {
		return ""
	}

	return fmt.Sprintf("%s Checking %s (%d worker(s)): %d module(s) scanned, %d flagged\n",
		pm.spinner.View(), pm.title, pm.workers, pm.scanned, pm.flagged)
}
