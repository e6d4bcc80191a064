package domain

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"noprint.dev/pkg/noprint/internal/adapter"
	m "noprint.dev/pkg/noprint/internal/model"
)

var (
	errInvalidName = errors.New("invalid dotted name")
	errNotPackage  = errors.New("parent is not a package")
)

// ModuleResolver locates the files backing a dotted name without importing it.
type ModuleResolver interface {
	Resolve(ctx context.Context, name m.DottedName, inWorkingDir bool) (*m.ResolvedModule, error)
}

// ModuleSuffixes lists the file suffixes the loader recognizes, in the order
// it probes them.
type ModuleSuffixes struct {
	Extension []string
	Source    []string
	Bytecode  []string
}

// DefaultModuleSuffixes mirrors CPython's FileFinder on POSIX and Windows.
func DefaultModuleSuffixes() ModuleSuffixes {
	return ModuleSuffixes{
		Extension: []string{".so", ".pyd"},
		Source:    []string{".py"},
		Bytecode:  []string{".pyc"},
	}
}

func (s ModuleSuffixes) all() []string {
	suffixes := make([]string, 0, len(s.Extension)+len(s.Source)+len(s.Bytecode))
	suffixes = append(suffixes, s.Extension...)
	suffixes = append(suffixes, s.Source...)

	return append(suffixes, s.Bytecode...)
}

func (s ModuleSuffixes) isSource(suffix string) bool {
	for _, source := range s.Source {
		if source == suffix {
			return true
		}
	}

	return false
}

// ModuleName strips a recognized module suffix from a file name, returning ""
// for anything the loader would not import. Tagged extension modules
// ("mod.cpython-312-x86_64-linux-gnu.so", "mod.abi3.so") map to "mod".
func (s ModuleSuffixes) ModuleName(file string) string {
	name, _ := s.moduleName(file)
	return name
}

func (s ModuleSuffixes) moduleName(file string) (string, bool) {
	for _, suffix := range s.Extension {
		if stem, ok := strings.CutSuffix(file, suffix); ok {
			base, tag, tagged := strings.Cut(stem, ".")
			if !tagged {
				return stem, true
			}

			if strings.HasPrefix(tag, "cpython-") || strings.HasPrefix(tag, "cp") || tag == "abi3" {
				return base, true
			}

			return "", false
		}
	}

	for _, suffix := range s.Source {
		if stem, ok := strings.CutSuffix(file, suffix); ok {
			return stem, false
		}
	}

	for _, suffix := range s.Bytecode {
		if stem, ok := strings.CutSuffix(file, suffix); ok {
			return stem, false
		}
	}

	return "", false
}

type lookupKind int

const (
	lookupNotFound lookupKind = iota
	lookupRegularPackage
	lookupModuleFile
	lookupNamespacePackage
)

type lookup struct {
	kind lookupKind
	// path is the package directory or the module file.
	path m.Path
	// source is set when the module file is Python source.
	source bool
}

type moduleResolver struct {
	fsAdapter  adapter.SourceFSAdapter
	workingDir m.Path
	roots      []m.Path
	suffixes   ModuleSuffixes

	// parents maps a top-level segment to the directory that holds it.
	parents *SearchPathCache
	// searchDirs maps a package name to its submodule search directory.
	searchDirs *SearchPathCache
}

// NewModuleResolver creates a resolver that searches workingDir (when asked)
// and then roots, in order.
func NewModuleResolver(fsAdapter adapter.SourceFSAdapter, workingDir m.Path, roots []m.Path) ModuleResolver {
	return newModuleResolver(fsAdapter, workingDir, roots, NewSearchPathCache(), NewSearchPathCache())
}

func newModuleResolver(fsAdapter adapter.SourceFSAdapter, workingDir m.Path, roots []m.Path, parents, searchDirs *SearchPathCache) *moduleResolver {
	return &moduleResolver{
		fsAdapter:  fsAdapter,
		workingDir: workingDir,
		roots:      roots,
		suffixes:   DefaultModuleSuffixes(),
		parents:    parents,
		searchDirs: searchDirs,
	}
}

// Resolve finds name. A dotted name is always looked up inside its parent's
// search directory, never by matching an unrelated top-level entry.
func (r *moduleResolver) Resolve(ctx context.Context, name m.DottedName, inWorkingDir bool) (*m.ResolvedModule, error) {
	if !name.Valid() {
		return nil, &m.ResolutionError{Name: name, InWorkingDir: inWorkingDir, Cause: errInvalidName}
	}

	parentLocation, err := r.parentLocation(ctx, name.Top(), inWorkingDir)
	if err != nil {
		return nil, err
	}

	parent, leaf := name.Split()

	dir := parentLocation
	if parent != "" {
		dir, err = r.searchDir(ctx, parent, inWorkingDir)
		if err != nil {
			return nil, err
		}
	}

	found, err := r.findInDir(ctx, dir, leaf)
	if err != nil {
		return nil, &m.ResolutionError{Name: name, InWorkingDir: inWorkingDir, Cause: err}
	}

	if found.kind == lookupNotFound {
		return nil, &m.ResolutionError{Name: name, InWorkingDir: inWorkingDir}
	}

	module, err := r.build(ctx, name, parentLocation, found)
	if err != nil {
		return nil, &m.ResolutionError{Name: name, InWorkingDir: inWorkingDir, Cause: err}
	}

	if module.IsPackage() {
		r.searchDirs.Set(CacheKey{Name: name, InWorkingDir: inWorkingDir}, module.SearchPath)
	}

	slog.Debug("Resolved module", "name", name, "in_cwd", inWorkingDir, "parent", parentLocation, "origin", module.Origin)

	return module, nil
}

// parentLocation returns the root directory holding the top-level segment.
func (r *moduleResolver) parentLocation(ctx context.Context, top m.DottedName, inWorkingDir bool) (m.Path, error) {
	key := CacheKey{Name: top, InWorkingDir: inWorkingDir}

	location, err := r.parents.GetOrCompute(key, func() (m.Path, error) {
		return r.findTopLevel(ctx, top, inWorkingDir)
	})
	if err != nil {
		var resolutionErr *m.ResolutionError
		if errors.As(err, &resolutionErr) {
			return "", err
		}

		return "", &m.ResolutionError{Name: top, InWorkingDir: inWorkingDir, Cause: err}
	}

	return location, nil
}

// searchDir returns the submodule directory of a package, resolving it on a
// cache miss.
func (r *moduleResolver) searchDir(ctx context.Context, name m.DottedName, inWorkingDir bool) (m.Path, error) {
	key := CacheKey{Name: name, InWorkingDir: inWorkingDir}

	return r.searchDirs.GetOrCompute(key, func() (m.Path, error) {
		module, err := r.Resolve(ctx, name, inWorkingDir)
		if err != nil {
			return "", err
		}

		if !module.IsPackage() {
			return "", &m.ResolutionError{Name: name, InWorkingDir: inWorkingDir, Cause: errNotPackage}
		}

		return module.SearchPath, nil
	})
}

// candidateRoots lists the directories searched for top-level names.
func (r *moduleResolver) candidateRoots(inWorkingDir bool) []m.Path {
	roots := make([]m.Path, 0, len(r.roots)+1)
	if inWorkingDir && r.workingDir != "" {
		roots = append(roots, r.workingDir)
	}

	return append(roots, r.roots...)
}

// findTopLevel walks the candidate roots the way the path-based finder does:
// a regular package or module wins immediately, a bare directory is only used
// when nothing better exists on any root.
func (r *moduleResolver) findTopLevel(ctx context.Context, top m.DottedName, inWorkingDir bool) (m.Path, error) {
	namespaceRoot := m.Path("")

	for _, root := range r.candidateRoots(inWorkingDir) {
		found, err := r.findInDir(ctx, root, string(top))
		if err != nil {
			return "", &m.ResolutionError{Name: top, InWorkingDir: inWorkingDir, Cause: err}
		}

		switch found.kind {
		case lookupRegularPackage, lookupModuleFile:
			return root, nil
		case lookupNamespacePackage:
			if namespaceRoot == "" {
				namespaceRoot = root
			}
		case lookupNotFound:
		}
	}

	if namespaceRoot != "" {
		return namespaceRoot, nil
	}

	return "", &m.ResolutionError{Name: top, InWorkingDir: inWorkingDir}
}

// findInDir probes dir for leaf: package directory with a marker first, then
// module files by suffix, then a marker-less directory.
func (r *moduleResolver) findInDir(ctx context.Context, dir m.Path, leaf string) (lookup, error) {
	pkgDir := r.fsAdapter.JoinPath(ctx, string(dir), leaf)

	isDir, err := adapter.IsDir(ctx, r.fsAdapter, pkgDir)
	if err != nil {
		return lookup{}, err
	}

	if isDir {
		hasInit, err := adapter.IsFile(ctx, r.fsAdapter, r.fsAdapter.JoinPath(ctx, string(pkgDir), m.InitFileName))
		if err != nil {
			return lookup{}, err
		}

		if hasInit {
			return lookup{kind: lookupRegularPackage, path: pkgDir}, nil
		}
	}

	for _, suffix := range r.suffixes.all() {
		file := r.fsAdapter.JoinPath(ctx, string(dir), leaf+suffix)

		isFile, err := adapter.IsFile(ctx, r.fsAdapter, file)
		if err != nil {
			return lookup{}, err
		}

		if isFile {
			return lookup{kind: lookupModuleFile, path: file, source: r.suffixes.isSource(suffix)}, nil
		}
	}

	tagged, err := r.findTaggedExtension(ctx, dir, leaf)
	if err != nil {
		return lookup{}, err
	}

	if tagged != "" {
		return lookup{kind: lookupModuleFile, path: tagged}, nil
	}

	if isDir {
		return lookup{kind: lookupNamespacePackage, path: pkgDir}, nil
	}

	return lookup{kind: lookupNotFound}, nil
}

// findTaggedExtension looks for ABI-tagged extension modules, which cannot be
// probed by a fixed file name.
func (r *moduleResolver) findTaggedExtension(ctx context.Context, dir m.Path, leaf string) (m.Path, error) {
	entries, err := r.fsAdapter.ReadDir(ctx, dir)
	if err != nil {
		if isDir, dirErr := adapter.IsDir(ctx, r.fsAdapter, dir); dirErr == nil && !isDir {
			return "", nil
		}

		return "", err
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), leaf+".") {
			continue
		}

		if name, extension := r.suffixes.moduleName(entry.Name()); extension && name == leaf && !entry.IsDir() {
			return r.fsAdapter.JoinPath(ctx, string(dir), entry.Name()), nil
		}
	}

	return "", nil
}

func (r *moduleResolver) build(ctx context.Context, name m.DottedName, parentLocation m.Path, found lookup) (*m.ResolvedModule, error) {
	module := &m.ResolvedModule{
		Name:           name,
		ParentLocation: parentLocation,
		Origin:         []m.Path{},
	}

	switch found.kind {
	case lookupRegularPackage, lookupNamespacePackage:
		module.SearchPath = found.path

		for _, candidate := range []string{m.InitFileName, m.MainFileName} {
			file := r.fsAdapter.JoinPath(ctx, string(found.path), candidate)

			isFile, err := adapter.IsFile(ctx, r.fsAdapter, file)
			if err != nil {
				return nil, err
			}

			if isFile {
				module.Origin = append(module.Origin, file)
			}
		}
	case lookupModuleFile:
		if found.source {
			module.Origin = append(module.Origin, found.path)
		}
	case lookupNotFound:
	}

	return module, nil
}

// isSegment reports whether a directory entry name can be a dotted segment.
func isSegment(name string) bool {
	return name != "" && !strings.Contains(name, ".")
}
