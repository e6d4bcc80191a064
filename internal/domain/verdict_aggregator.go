package domain

import (
	"context"
	"log/slog"

	"noprint.dev/pkg/noprint/internal/controller"
	m "noprint.dev/pkg/noprint/internal/model"
)

// Verbosity levels that gate diagnostic output.
const (
	VerbosityQuiet   = 0
	VerbosityNormal  = 1
	VerbosityVerbose = 2
)

// ScanResult pairs a discovery with the outcome of scanning its module.
type ScanResult struct {
	Discovery m.Discovery
	// Outcome is nil when nothing was scanned.
	Outcome *m.ScanOutcome
}

// AggregatorOptions configures one fold.
type AggregatorOptions struct {
	Verbosity int
	// Escalate renders flagged occurrences as errors.
	Escalate        bool
	StopOnFirstFlag bool
	// Cancel stops the producers once the first flag is seen with StopOnFirstFlag.
	Cancel context.CancelFunc
}

// VerdictAggregator folds scan results into a run summary.
type VerdictAggregator interface {
	// Fold consumes results until the channel closes.
	Fold(ctx context.Context, results <-chan ScanResult, opts AggregatorOptions) m.Summary
}

type verdictAggregator struct {
	controller.UI
}

// NewVerdictAggregator creates an aggregator reporting through ui.
func NewVerdictAggregator(ui controller.UI) VerdictAggregator {
	return &verdictAggregator{UI: ui}
}

func (a *verdictAggregator) Fold(ctx context.Context, results <-chan ScanResult, opts AggregatorOptions) m.Summary {
	summary := m.Summary{
		Verdict: m.Clear,
		Roots:   make(map[m.DottedName]m.RootSummary),
	}

	flagged := 0
	stopped := false

	for result := range results {
		if stopped {
			continue
		}

		verdict := a.fold(ctx, &summary, result, opts)
		summary.Verdict = summary.Verdict.Max(verdict)

		if result.Outcome != nil {
			flagged += result.Outcome.FlaggedCount()
		}

		a.DisplayProgress(ctx, summary.Modules, flagged)

		if verdict == m.Flagged && opts.StopOnFirstFlag {
			slog.Debug("Stopping at first flagged module", "module", result.Discovery.Name)

			stopped = true

			if opts.Cancel != nil {
				opts.Cancel()
			}
		}
	}

	return summary
}

// fold records one result and returns the verdict it contributes.
func (a *verdictAggregator) fold(ctx context.Context, summary *m.Summary, result ScanResult, opts AggregatorOptions) m.Verdict {
	discovery := result.Discovery
	root := summary.Roots[discovery.Root]
	verdict := m.Clear

	for _, notice := range discovery.Notices {
		if noticeVisible(notice, opts.Verbosity) {
			a.DisplayNotice(ctx, notice)
		}
	}

	if discovery.Err != nil {
		failure := m.Failure{Module: discovery.Name, Err: discovery.Err}
		summary.Failures = append(summary.Failures, failure)
		root.Failures++
		verdict = m.Fatal

		a.DisplayFailure(ctx, failure)
	}

	if outcome := result.Outcome; outcome != nil {
		summary.Modules++
		root.Modules++

		verdict = verdict.Max(outcome.Verdict())

		if outcome.Err != nil {
			failure := m.Failure{Module: outcome.Module, Err: outcome.Err}
			summary.Failures = append(summary.Failures, failure)
			root.Failures++

			a.DisplayFailure(ctx, failure)
		}

		for _, entry := range outcome.Entries {
			if !entry.Flagged {
				if opts.Verbosity >= VerbosityVerbose {
					a.DisplayClear(ctx, entry)
				}

				continue
			}

			root.Flagged++

			if entry.Occurrence != nil {
				summary.Occurrences = append(summary.Occurrences, *entry.Occurrence)
			}

			if opts.Verbosity >= VerbosityNormal {
				a.DisplayOccurrence(ctx, entry, opts.Escalate)
			}
		}
	}

	summary.Roots[discovery.Root] = root

	return verdict
}

// noticeVisible gates notices by verbosity. Missing markers are frequent
// and only shown in verbose mode.
func noticeVisible(notice m.Notice, verbosity int) bool {
	if notice.Kind == m.NoticeMissingMarker {
		return verbosity >= VerbosityVerbose
	}

	return verbosity >= VerbosityNormal
}
