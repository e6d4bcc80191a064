package domain

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"noprint.dev/pkg/noprint/internal/adapter"
	m "noprint.dev/pkg/noprint/internal/model"
)

// buildCacheDir is never treated as a subpackage.
const buildCacheDir = "__pycache__"

// initModuleName is what the loader reports for an __init__ file of any suffix.
const initModuleName = "__init__"

// Children is the result of listing one package.
type Children struct {
	// Names are the qualified child names to resolve next.
	Names []m.DottedName
	// MissingMarker lists sub-directories the loader would not import as
	// regular packages. Only filled for packages that have a marker themselves.
	MissingMarker []m.DottedName
}

// PackageDiscovery lists the children of a resolved package.
type PackageDiscovery interface {
	Children(ctx context.Context, module *m.ResolvedModule) (Children, error)
}

type packageDiscovery struct {
	fsAdapter adapter.SourceFSAdapter
	suffixes  ModuleSuffixes
}

// NewPackageDiscovery creates a PackageDiscovery reading through fsAdapter.
func NewPackageDiscovery(fsAdapter adapter.SourceFSAdapter) PackageDiscovery {
	return &packageDiscovery{
		fsAdapter: fsAdapter,
		suffixes:  DefaultModuleSuffixes(),
	}
}

// Children reconciles the real sub-directories of the search path with what
// the loader's submodule iteration reports and returns their union, so that
// neither source can hide a subtree.
func (d *packageDiscovery) Children(ctx context.Context, module *m.ResolvedModule) (Children, error) {
	if !module.IsPackage() {
		return Children{}, nil
	}

	entries, err := d.fsAdapter.ReadDir(ctx, module.SearchPath)
	if err != nil {
		return Children{}, fmt.Errorf("list %s: %w", module.SearchPath, err)
	}

	directories := make(map[string]struct{})
	loader := make(map[string]struct{})

	for _, entry := range entries {
		name := entry.Name()

		isDir, err := d.entryIsDir(ctx, module.SearchPath, entry)
		if err != nil {
			return Children{}, err
		}

		if isDir {
			if name == buildCacheDir || !isSegment(name) {
				continue
			}

			directories[name] = struct{}{}

			isPackage, err := d.hasInitModule(ctx, d.fsAdapter.JoinPath(ctx, string(module.SearchPath), name))
			if err != nil {
				return Children{}, err
			}

			if isPackage {
				loader[name] = struct{}{}
			}

			continue
		}

		if moduleName := d.suffixes.ModuleName(name); moduleName != "" && moduleName != initModuleName && isSegment(moduleName) {
			loader[moduleName] = struct{}{}
		}
	}

	result := Children{}

	union := make(map[string]struct{}, len(directories)+len(loader))
	for name := range directories {
		union[name] = struct{}{}

		if _, ok := loader[name]; !ok && module.HasInit() {
			result.MissingMarker = append(result.MissingMarker, module.Name.Child(name))
		}
	}

	for name := range loader {
		union[name] = struct{}{}
	}

	for name := range union {
		result.Names = append(result.Names, module.Name.Child(name))
	}

	sort.Slice(result.Names, func(i, j int) bool { return result.Names[i] < result.Names[j] })
	sort.Slice(result.MissingMarker, func(i, j int) bool { return result.MissingMarker[i] < result.MissingMarker[j] })

	return result, nil
}

// entryIsDir follows symlinks the way os.path.isdir does.
func (d *packageDiscovery) entryIsDir(ctx context.Context, dir m.Path, entry os.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}

	return adapter.IsDir(ctx, d.fsAdapter, d.fsAdapter.JoinPath(ctx, string(dir), entry.Name()))
}

// hasInitModule reports whether dir holds an __init__ module of any suffix.
func (d *packageDiscovery) hasInitModule(ctx context.Context, dir m.Path) (bool, error) {
	entries, err := d.fsAdapter.ReadDir(ctx, dir)
	if err != nil {
		return false, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if d.suffixes.ModuleName(entry.Name()) == initModuleName {
			return true, nil
		}
	}

	return false, nil
}
