package model

import "fmt"

// Verdict is the tri-state summary of a run. Values are ordered so that the
// aggregate of any set of outcomes is their maximum.
type Verdict int

const (
	// Clear means no occurrence was found.
	Clear Verdict = iota
	// Flagged means at least one occurrence was found.
	Flagged
	// Fatal means at least one module could not be resolved or parsed.
	Fatal
)

func (v Verdict) String() string {
	switch v {
	case Clear:
		return "clear"
	case Flagged:
		return "flagged"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Max folds two verdicts. Clear is the identity.
func (v Verdict) Max(other Verdict) Verdict {
	if other > v {
		return other
	}

	return v
}

// ExitCode maps the verdict to a process status. Flagged only fails the
// process when escalate is set.
func (v Verdict) ExitCode(escalate bool) int {
	switch v {
	case Fatal:
		return 2
	case Flagged:
		if escalate {
			return 1
		}

		return 0
	default:
		return 0
	}
}

// FoldVerdicts returns the maximum of the given verdicts.
func FoldVerdicts(verdicts ...Verdict) Verdict {
	result := Clear
	for _, v := range verdicts {
		result = result.Max(v)
	}

	return result
}

// Occurrence locates one use of the reserved identifier.
type Occurrence struct {
	Module DottedName
	File   Path
	Line   int
	Column int
}

// OutcomeEntry is one line of a scan outcome.
type OutcomeEntry struct {
	Tag        string
	Flagged    bool
	Occurrence *Occurrence
}

// ScanOutcome is produced once per resolved module.
type ScanOutcome struct {
	Module  DottedName
	Entries []OutcomeEntry
	Err     error
}

// Verdict derives the verdict contributed by this outcome.
func (o ScanOutcome) Verdict() Verdict {
	if o.Err != nil {
		return Fatal
	}

	for _, entry := range o.Entries {
		if entry.Flagged {
			return Flagged
		}
	}

	return Clear
}

// FlaggedCount returns the number of flagged entries.
func (o ScanOutcome) FlaggedCount() int {
	count := 0

	for _, entry := range o.Entries {
		if entry.Flagged {
			count++
		}
	}

	return count
}

// OccurrenceTag formats the location tag of a flagged occurrence.
func OccurrenceTag(module DottedName, line int) string {
	return fmt.Sprintf("[%s] Line: %d", module, line)
}

// ClearTag formats the tag of a module without occurrences.
func ClearTag(module DottedName) string {
	return fmt.Sprintf("[CLEAR]:[%s]", module)
}

// Failure records a module that could not be resolved or scanned.
type Failure struct {
	Module DottedName
	Err    error
}

// Summary aggregates the results of one run.
type Summary struct {
	Verdict     Verdict
	Modules     int
	Occurrences []Occurrence
	Failures    []Failure
	Roots       map[DottedName]RootSummary
}

// RootSummary holds the counters for one requested root name.
type RootSummary struct {
	Modules  int
	Flagged  int
	Failures int
}
