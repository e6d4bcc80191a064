package domain_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noprint.dev/pkg/noprint/internal/adapter"
	"noprint.dev/pkg/noprint/internal/domain"
	m "noprint.dev/pkg/noprint/internal/model"
)

func newResolver(workingDir string, roots ...string) domain.ModuleResolver {
	paths := make([]m.Path, 0, len(roots))
	for _, root := range roots {
		paths = append(paths, m.Path(root))
	}

	return domain.NewModuleResolver(adapter.NewLocalSourceFSAdapter(), m.Path(workingDir), paths)
}

func TestModuleResolver_Resolve(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkg/__init__.py":                      "",
		"pkg/__main__.py":                      "",
		"pkg/sub/__init__.py":                  "",
		"pkg/sub/leaf.py":                      "",
		"mod.py":                               "",
		"ext.so":                               "",
		"ext.py":                               "",
		"fast.cpython-312-x86_64-linux-gnu.so": "",
		"compiled.pyc":                         "",
		"ns/inner.py":                          "",
		"ns/deeper/":                           "",
	})

	join := func(elem ...string) m.Path {
		return m.Path(filepath.Join(append([]string{site}, elem...)...))
	}

	tests := []struct {
		name       string
		module     m.DottedName
		origin     []m.Path
		searchPath m.Path
	}{
		{
			name:       "regular package with entry point",
			module:     "pkg",
			origin:     []m.Path{join("pkg", "__init__.py"), join("pkg", "__main__.py")},
			searchPath: join("pkg"),
		},
		{
			name:       "nested package",
			module:     "pkg.sub",
			origin:     []m.Path{join("pkg", "sub", "__init__.py")},
			searchPath: join("pkg", "sub"),
		},
		{
			name:   "nested module",
			module: "pkg.sub.leaf",
			origin: []m.Path{join("pkg", "sub", "leaf.py")},
		},
		{
			name:   "source module",
			module: "mod",
			origin: []m.Path{join("mod.py")},
		},
		{
			name:   "extension shadows source",
			module: "ext",
			origin: []m.Path{},
		},
		{
			name:   "tagged extension",
			module: "fast",
			origin: []m.Path{},
		},
		{
			name:   "bytecode only",
			module: "compiled",
			origin: []m.Path{},
		},
		{
			name:       "namespace package",
			module:     "ns",
			origin:     []m.Path{},
			searchPath: join("ns"),
		},
		{
			name:   "module inside namespace package",
			module: "ns.inner",
			origin: []m.Path{join("ns", "inner.py")},
		},
		{
			name:       "nested namespace package",
			module:     "ns.deeper",
			origin:     []m.Path{},
			searchPath: join("ns", "deeper"),
		},
	}

	resolver := newResolver("", site)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module, err := resolver.Resolve(context.Background(), tt.module, false)
			require.NoError(t, err)

			assert.Equal(t, tt.module, module.Name)
			assert.Equal(t, m.Path(site), module.ParentLocation)
			assert.Equal(t, tt.origin, module.Origin)
			assert.Equal(t, tt.searchPath, module.SearchPath)
		})
	}
}

func TestModuleResolver_Errors(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkg/__init__.py": "",
		"mod.py":          "",
	})

	resolver := newResolver("", site)

	tests := []struct {
		name      string
		module    m.DottedName
		errorName m.DottedName
		notFound  bool
	}{
		{"missing top level", "missingpkg", "missingpkg", true},
		{"missing submodule", "pkg.missing", "pkg.missing", true},
		{"missing below missing parent", "missingpkg.sub", "missingpkg", true},
		{"child of plain module", "mod.child", "mod", false},
		{"empty segment", "pkg..sub", "pkg..sub", false},
		{"empty name", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module, err := resolver.Resolve(context.Background(), tt.module, false)
			require.Error(t, err)
			assert.Nil(t, module)

			var resolutionErr *m.ResolutionError
			require.True(t, errors.As(err, &resolutionErr))
			assert.Equal(t, tt.errorName, resolutionErr.Name)

			if tt.notFound {
				assert.Contains(t, err.Error(), "is not present in current environment")
			}
		})
	}
}

func TestModuleResolver_RegularPackageBeatsEarlierNamespace(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeTree(t, first, map[string]string{"shared/loose.py": ""})
	writeTree(t, second, map[string]string{"shared/__init__.py": ""})

	module, err := newResolver("", first, second).Resolve(context.Background(), "shared", false)
	require.NoError(t, err)

	assert.Equal(t, m.Path(second), module.ParentLocation)
	assert.True(t, module.HasInit())
}

func TestModuleResolver_NamespaceUsesFirstPortion(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeTree(t, first, map[string]string{"shared/a.py": ""})
	writeTree(t, second, map[string]string{"shared/b.py": ""})

	module, err := newResolver("", first, second).Resolve(context.Background(), "shared", false)
	require.NoError(t, err)

	assert.Equal(t, m.Path(first), module.ParentLocation)
	assert.Empty(t, module.Origin)
}

func TestModuleResolver_WorkingDirectoryOrder(t *testing.T) {
	cwd := t.TempDir()
	site := t.TempDir()

	writeTree(t, cwd, map[string]string{"pkg/__init__.py": "", "local/__init__.py": ""})
	writeTree(t, site, map[string]string{"pkg/__init__.py": "", "installed/__init__.py": ""})

	resolver := newResolver(cwd, site)
	ctx := context.Background()

	t.Run("shadowing copy differs from installed", func(t *testing.T) {
		local, err := resolver.Resolve(ctx, "pkg", true)
		require.NoError(t, err)

		global, err := resolver.Resolve(ctx, "pkg", false)
		require.NoError(t, err)

		assert.Equal(t, m.Path(cwd), local.ParentLocation)
		assert.Equal(t, m.Path(site), global.ParentLocation)
		assert.False(t, local.Equal(global))
	})

	t.Run("installed only resolves the same either way", func(t *testing.T) {
		local, err := resolver.Resolve(ctx, "installed", true)
		require.NoError(t, err)

		global, err := resolver.Resolve(ctx, "installed", false)
		require.NoError(t, err)

		assert.True(t, local.Equal(global))
	})

	t.Run("working directory only", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "local", true)
		require.NoError(t, err)

		_, err = resolver.Resolve(ctx, "local", false)
		require.Error(t, err)
	})
}

func TestModuleResolver_ParentLookupsAreCached(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"a/__init__.py":     "",
		"a/b/__init__.py":   "",
		"a/b/c.py":          "",
		"a/b/d/__init__.py": "",
	})

	fs := newCountingFS()
	parents := domain.NewSearchPathCache()
	searchDirs := domain.NewSearchPathCache()
	resolver := domain.NewModuleResolverWithCaches(fs, "", []m.Path{m.Path(site)}, parents, searchDirs)
	ctx := context.Background()

	_, err := resolver.Resolve(ctx, "a.b", false)
	require.NoError(t, err)

	assert.Equal(t, 1, parents.Len())
	assert.Equal(t, 2, searchDirs.Len())

	fs.reset()

	for _, name := range []m.DottedName{"a.b.c", "a.b.d"} {
		module, err := resolver.Resolve(ctx, name, false)
		require.NoError(t, err)
		assert.Equal(t, m.Path(site), module.ParentLocation)
	}

	assert.Zero(t, fs.count(filepath.Join(site, "a")))
	assert.Zero(t, fs.count(filepath.Join(site, "a", "__init__.py")))
	assert.Zero(t, fs.count(filepath.Join(site, "a", "b", "__init__.py")))
	assert.Equal(t, 1, parents.Len())
}

func TestModuleSuffixes_ModuleName(t *testing.T) {
	suffixes := domain.DefaultModuleSuffixes()

	tests := map[string]string{
		"mod.py":                              "mod",
		"mod.pyc":                             "mod",
		"mod.so":                              "mod",
		"mod.pyd":                             "mod",
		"mod.cpython-312-x86_64-linux-gnu.so": "mod",
		"mod.cp311-win_amd64.pyd":             "mod",
		"mod.abi3.so":                         "mod",
		"mod.other.so":                        "",
		"__init__.py":                         "__init__",
		"README.md":                           "",
		"setup.cfg":                           "",
	}

	for file, want := range tests {
		t.Run(file, func(t *testing.T) {
			assert.Equal(t, want, suffixes.ModuleName(file))
		})
	}
}
