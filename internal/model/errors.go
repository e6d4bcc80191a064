package model

import "fmt"

// ResolutionError reports that a name could not be located on any search root
// or that probing the filesystem for it failed.
type ResolutionError struct {
	Name         DottedName
	InWorkingDir bool
	Cause        error
}

func (e *ResolutionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("module [%s] is not present in current environment, directory or search path", e.Name)
	}

	return fmt.Sprintf("module [%s] could not be resolved (in_cwd: %t): %v", e.Name, e.InWorkingDir, e.Cause)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}
