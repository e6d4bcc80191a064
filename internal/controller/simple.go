package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "noprint.dev/pkg/noprint/internal/model"
)

const (
	warningLabel  = "[WARNING]:"
	errorLabel    = "[ERROR]:"
	criticalLabel = "[CRITICAL]:"

	flaggedFormat = "%s statements detected"
	clearFormat   = "No %s statements found, cheers 🍺"

	defaultReservedWord = "print"
)

// palette renders severity labels for one stream.
type palette struct {
	warning  lipgloss.Style
	err      lipgloss.Style
	critical lipgloss.Style
	success  lipgloss.Style
}

// newPalette binds the styles to w so that colors are dropped when w is not a terminal.
func newPalette(w io.Writer) palette {
	renderer := lipgloss.NewRenderer(w)

	return palette{
		warning:  renderer.NewStyle().Foreground(lipgloss.Color("3")),
		err:      renderer.NewStyle().Foreground(lipgloss.Color("1")),
		critical: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		success:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func (p palette) occurrence(escalate bool) (lipgloss.Style, string) {
	if escalate {
		return p.err, errorLabel
	}

	return p.warning, warningLabel
}

// UIOption configures a SimpleUI or TUI.
type UIOption func(*SimpleUI)

// WithReservedWord names the flagged identifier in the verdict line.
func WithReservedWord(word string) UIOption {
	return func(s *SimpleUI) {
		if word != "" {
			s.reserved = word
		}
	}
}

// SimpleUI implements UI using the command's output streams.
type SimpleUI struct {
	cmd      *cobra.Command
	stdout   palette
	stderr   palette
	reserved string
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts ...UIOption) *SimpleUI {
	s := &SimpleUI{
		cmd:      cmd,
		stdout:   newPalette(cmd.OutOrStdout()),
		stderr:   newPalette(cmd.ErrOrStderr()),
		reserved: defaultReservedWord,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayNotice prints a discovery notice as a warning.
func (s *SimpleUI) DisplayNotice(ctx context.Context, notice m.Notice) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("%s\n", formatNotice(s.stderr, notice))
}

// DisplayFailure prints a module that could not be resolved or scanned.
func (s *SimpleUI) DisplayFailure(ctx context.Context, failure m.Failure) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("%s\n", formatFailure(s.stderr, failure))
}

// DisplayOccurrence prints a flagged entry.
func (s *SimpleUI) DisplayOccurrence(ctx context.Context, entry m.OutcomeEntry, escalate bool) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("%s\n", formatOccurrence(s.stderr, entry, escalate))
}

// DisplayClear prints a module without occurrences.
func (s *SimpleUI) DisplayClear(ctx context.Context, entry m.OutcomeEntry) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", entry.Tag)
}

// DisplayProgress is a no-op; plain output has no progress line.
func (s *SimpleUI) DisplayProgress(_ context.Context, _ int, _ int) {}

// DisplayVerdict prints the final line and, in verbose mode, the per-root table.
func (s *SimpleUI) DisplayVerdict(ctx context.Context, summary m.Summary, escalate bool, verbosity int) {
	if ctx.Err() != nil {
		return
	}

	if verbosity >= 2 && len(summary.Roots) > 0 {
		s.printf("\n%s", renderSummaryTable(summary))
	}

	switch summary.Verdict {
	case m.Fatal:
		s.errorf("%s\n", formatFatalVerdict(s.stderr, summary))
	case m.Flagged:
		if verbosity >= 1 {
			style, label := s.stderr.occurrence(escalate)
			s.errorf("%s%s\n", style.Render(label), s.flaggedMessage())
		}
	default:
		if verbosity >= 1 {
			s.printf("%s\n", s.stdout.success.Render(s.clearMessage()))
		}
	}
}

func (s *SimpleUI) flaggedMessage() string {
	return fmt.Sprintf(flaggedFormat, cases.Title(language.Und, cases.NoLower).String(s.reserved))
}

func (s *SimpleUI) clearMessage() string {
	return fmt.Sprintf(clearFormat, s.reserved)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func formatNotice(p palette, notice m.Notice) string {
	return p.warning.Render(warningLabel) + notice.Message
}

func formatFailure(p palette, failure m.Failure) string {
	return p.critical.Render(criticalLabel) + fmt.Sprintf("[%s] %v", failure.Module, failure.Err)
}

func formatOccurrence(p palette, entry m.OutcomeEntry, escalate bool) string {
	style, label := p.occurrence(escalate)

	return style.Render(label) + entry.Tag
}

func formatFatalVerdict(p palette, summary m.Summary) string {
	return p.critical.Render(criticalLabel) +
		fmt.Sprintf("%d module(s) could not be resolved or scanned", len(summary.Failures))
}

func renderSummaryTable(summary m.Summary) string {
	roots := make([]m.DottedName, 0, len(summary.Roots))
	for root := range summary.Roots {
		roots = append(roots, root)
	}

	sort.Slice(roots, func(i, j int) bool {
		return roots[i] < roots[j]
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Package", "Modules", "Flagged", "Failures"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, root := range roots {
		counts := summary.Roots[root]
		table.Append([]string{
			string(root),
			fmt.Sprintf("%d", counts.Modules),
			fmt.Sprintf("%d", counts.Flagged),
			fmt.Sprintf("%d", counts.Failures),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(roots)),
		fmt.Sprintf("%d", summary.Modules),
		fmt.Sprintf("%d", len(summary.Occurrences)),
		fmt.Sprintf("%d", len(summary.Failures)),
	})

	table.Render()

	return tableBuffer.String()
}
