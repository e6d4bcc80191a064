package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	m "noprint.dev/pkg/noprint/internal/model"
)

// ReportStore persists the result of a check run.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report Report) error
	LoadReport(ctx context.Context, path m.Path) (Report, error)
}

// Report is the serialized form of a check run.
type Report struct {
	Version     int             `yaml:"version"`
	GeneratedAt time.Time       `yaml:"generated_at"`
	Verdict     string          `yaml:"verdict"`
	Modules     int             `yaml:"modules"`
	Roots       []ReportRoot    `yaml:"roots"`
	Occurrences []ReportFinding `yaml:"occurrences,omitempty"`
	Failures    []ReportFailure `yaml:"failures,omitempty"`
}

// ReportRoot holds per-root counters.
type ReportRoot struct {
	Name     string `yaml:"name"`
	Modules  int    `yaml:"modules"`
	Flagged  int    `yaml:"flagged"`
	Failures int    `yaml:"failures"`
}

// ReportFinding is one flagged occurrence.
type ReportFinding struct {
	Module string `yaml:"module"`
	File   string `yaml:"file"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
}

// ReportFailure is one resolution or parse failure.
type ReportFailure struct {
	Module string `yaml:"module"`
	Error  string `yaml:"error"`
}

const reportVersion = 1

// NewReport builds a report from the run summary. Entries are sorted so
// that reports of the same tree are stable.
func NewReport(summary m.Summary) Report {
	report := Report{
		Version:     reportVersion,
		GeneratedAt: time.Now().UTC(),
		Verdict:     summary.Verdict.String(),
		Modules:     summary.Modules,
	}

	for name, root := range summary.Roots {
		report.Roots = append(report.Roots, ReportRoot{
			Name:     string(name),
			Modules:  root.Modules,
			Flagged:  root.Flagged,
			Failures: root.Failures,
		})
	}

	sort.Slice(report.Roots, func(i, j int) bool { return report.Roots[i].Name < report.Roots[j].Name })

	for _, occurrence := range summary.Occurrences {
		report.Occurrences = append(report.Occurrences, ReportFinding{
			Module: string(occurrence.Module),
			File:   string(occurrence.File),
			Line:   occurrence.Line,
			Column: occurrence.Column,
		})
	}

	sort.Slice(report.Occurrences, func(i, j int) bool {
		a, b := report.Occurrences[i], report.Occurrences[j]
		if a.File != b.File {
			return a.File < b.File
		}

		if a.Line != b.Line {
			return a.Line < b.Line
		}

		return a.Column < b.Column
	})

	for _, failure := range summary.Failures {
		report.Failures = append(report.Failures, ReportFailure{
			Module: string(failure.Module),
			Error:  failure.Err.Error(),
		})
	}

	sort.Slice(report.Failures, func(i, j int) bool { return report.Failures[i].Module < report.Failures[j].Module })

	return report
}

// YAMLReportStore writes reports as YAML files.
type YAMLReportStore struct{}

// NewReportStore constructs the default ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes the report, creating parent directories as needed.
func (s *YAMLReportStore) SaveReport(ctx context.Context, path m.Path, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	// #nosec G304 - report path is provided by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return Report{}, fmt.Errorf("read report: %w", err)
	}

	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("unmarshal report: %w", err)
	}

	return report, nil
}
