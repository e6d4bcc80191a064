package domain

import (
	"noprint.dev/pkg/noprint/internal/adapter"
	m "noprint.dev/pkg/noprint/internal/model"
)

// NewModuleResolverWithCaches exposes the cache wiring to the external tests.
func NewModuleResolverWithCaches(fsAdapter adapter.SourceFSAdapter, workingDir m.Path, roots []m.Path, parents, searchDirs *SearchPathCache) ModuleResolver {
	return newModuleResolver(fsAdapter, workingDir, roots, parents, searchDirs)
}
