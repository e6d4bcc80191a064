package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"noprint.dev/pkg/noprint/internal/adapter"
	"noprint.dev/pkg/noprint/internal/controller"
	m "noprint.dev/pkg/noprint/internal/model"
)

var errNoPackages = errors.New("no packages given")

// CheckArgs contains the arguments for one check run.
type CheckArgs struct {
	Packages []m.DottedName
	// Workers bounds both discovery and scanning; zero or negative means one per CPU.
	Workers         int
	StopOnFirstFlag bool
	Verbosity       int
	// ErrorOut reports flagged occurrences as errors.
	ErrorOut         bool
	PreferWorkingDir bool
	MaxDepth         int
	// Report is the YAML report path; empty disables the report.
	Report m.Path
}

// Workflow runs the whole check pipeline.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) (m.Verdict, error)
}

type workflow struct {
	DiscoveryScheduler
	adapter.PythonFileAdapter
	adapter.ReportStore
	controller.UI
	aggregator VerdictAggregator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	scheduler DiscoveryScheduler,
	scanner adapter.PythonFileAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		DiscoveryScheduler: scheduler,
		PythonFileAdapter:  scanner,
		ReportStore:        reportStore,
		UI:                 ui,
		aggregator:         NewVerdictAggregator(ui),
	}
}

// Check discovers every module below the requested names, scans them and
// folds the outcomes into a single verdict.
func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.Verdict, error) {
	if len(args.Packages) == 0 {
		return m.Fatal, errNoPackages
	}

	workers := args.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if err := w.Start(ctx, controller.WithRoots(args.Packages), controller.WithWorkers(workers)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return m.Fatal, fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	slog.Info("Starting check", "packages", args.Packages, "workers", workers, "prefer_working_dir", args.PreferWorkingDir)

	discoveries := w.Discover(runCtx, args.Packages, DiscoverOptions{
		Workers:          workers,
		MaxDepth:         args.MaxDepth,
		PreferWorkingDir: args.PreferWorkingDir,
		CheckShadowing:   args.PreferWorkingDir,
	})

	results := w.scanChannel(runCtx, discoveries, workers)

	summary := w.aggregator.Fold(ctx, results, AggregatorOptions{
		Verbosity:       args.Verbosity,
		Escalate:        args.ErrorOut,
		StopOnFirstFlag: args.StopOnFirstFlag,
		Cancel:          cancel,
	})

	if err := ctx.Err(); err != nil {
		return m.Fatal, fmt.Errorf("check interrupted: %w", err)
	}

	slog.Info("Check finished", "verdict", summary.Verdict, "modules", summary.Modules,
		"occurrences", len(summary.Occurrences), "failures", len(summary.Failures))

	w.DisplayVerdict(ctx, summary, args.ErrorOut, args.Verbosity)

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, adapter.NewReport(summary)); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return summary.Verdict, fmt.Errorf("save report: %w", err)
		}
	}

	return summary.Verdict, nil
}

// scanChannel scans every resolved module on a bounded pool. Every
// discovery yields exactly one result, so the fold sees failures too. Once
// ctx is cancelled the remaining discoveries are drained unscanned.
func (w *workflow) scanChannel(ctx context.Context, discoveries <-chan m.Discovery, workers int) <-chan ScanResult {
	results := make(chan ScanResult, workers)

	go func() {
		defer close(results)

		var group errgroup.Group

		group.SetLimit(workers)

		for discovery := range discoveries {
			if ctx.Err() != nil {
				continue
			}

			current := discovery

			group.Go(func() error {
				result := ScanResult{Discovery: current}

				if current.Module.HasSource() {
					outcome := w.Scan(ctx, current.Module)
					result.Outcome = &outcome
				}

				results <- result

				return nil
			})
		}

		_ = group.Wait()
	}()

	return results
}
