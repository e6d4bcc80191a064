package model

import "path/filepath"

const (
	// InitFileName marks a directory as a regular package.
	InitFileName = "__init__.py"
	// MainFileName is the package entry point picked up next to the marker.
	MainFileName = "__main__.py"
)

// ResolvedModule describes where the loader would find a package or module.
//
// Two values describe the same entity when Name and ParentLocation match,
// which is how a working-directory copy shadowing an installed one is told
// apart from the installed one.
type ResolvedModule struct {
	Name DottedName
	// Origin holds the source files backing the name: none for a namespace
	// container, one for a plain module, up to two for a package.
	Origin []Path
	// ParentLocation is the directory that contains the top-level segment.
	ParentLocation Path
	// SearchPath is the directory scanned for children; empty for plain modules.
	SearchPath Path
}

// Equal reports whether both modules resolve the same name from the same root.
func (r *ResolvedModule) Equal(other *ResolvedModule) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.Name == other.Name && r.ParentLocation == other.ParentLocation
}

// IsPackage reports whether the module may contain submodules.
func (r *ResolvedModule) IsPackage() bool {
	return r != nil && r.SearchPath != ""
}

// HasInit reports whether the module is a regular package with a marker file.
func (r *ResolvedModule) HasInit() bool {
	if !r.IsPackage() || len(r.Origin) == 0 {
		return false
	}

	return filepath.Base(string(r.Origin[0])) == InitFileName
}

// HasSource reports whether there is at least one file to scan.
func (r *ResolvedModule) HasSource() bool {
	return r != nil && len(r.Origin) > 0
}
