package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noprint.dev/pkg/noprint/internal/adapter"
	adaptermocks "noprint.dev/pkg/noprint/internal/adapter/mocks"
	"noprint.dev/pkg/noprint/internal/domain"
	m "noprint.dev/pkg/noprint/internal/model"
)

func resolveForTest(t *testing.T, root string, name m.DottedName) *m.ResolvedModule {
	t.Helper()

	module, err := newResolver("", root).Resolve(context.Background(), name, false)
	require.NoError(t, err)

	return module
}

func TestPackageDiscovery_UnionOfDirectoriesAndLoader(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkg/__init__.py":                          "",
		"pkg/m1.py":                                "",
		"pkg/m2.py":                                "",
		"pkg/stale.pyc":                            "",
		"pkg/fast.cpython-312-x86_64-linux-gnu.so": "",
		"pkg/sub/__init__.py":                      "",
		"pkg/compiled/__init__.pyc":                "",
		"pkg/data/readme.txt":                      "",
		"pkg/__pycache__/m1.cpython-312.pyc":       "",
		"pkg/bad.name/__init__.py":                 "",
		"pkg/notes.txt":                            "",
	})

	children, err := domain.NewPackageDiscovery(adapter.NewLocalSourceFSAdapter()).
		Children(context.Background(), resolveForTest(t, site, "pkg"))
	require.NoError(t, err)

	assert.Equal(t, []m.DottedName{
		"pkg.compiled", "pkg.data", "pkg.fast", "pkg.m1", "pkg.m2", "pkg.stale", "pkg.sub",
	}, children.Names)
	assert.Equal(t, []m.DottedName{"pkg.data"}, children.MissingMarker)
}

func TestPackageDiscovery_NamespacePackageReportsNoMissingMarker(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"ns/plain/": "",
		"ns/mod.py": "",
	})

	children, err := domain.NewPackageDiscovery(adapter.NewLocalSourceFSAdapter()).
		Children(context.Background(), resolveForTest(t, site, "ns"))
	require.NoError(t, err)

	assert.Equal(t, []m.DottedName{"ns.mod", "ns.plain"}, children.Names)
	assert.Empty(t, children.MissingMarker)
}

func TestPackageDiscovery_PlainModuleHasNoChildren(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{"mod.py": ""})

	children, err := domain.NewPackageDiscovery(adapter.NewLocalSourceFSAdapter()).
		Children(context.Background(), resolveForTest(t, site, "mod"))
	require.NoError(t, err)

	assert.Empty(t, children.Names)
	assert.Empty(t, children.MissingMarker)
}

func TestPackageDiscovery_FollowsSymlinkedDirectories(t *testing.T) {
	site := t.TempDir()
	target := t.TempDir()

	writeTree(t, site, map[string]string{"pkg/__init__.py": ""})
	writeTree(t, target, map[string]string{"linked/__init__.py": ""})

	if err := os.Symlink(filepath.Join(target, "linked"), filepath.Join(site, "pkg", "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	children, err := domain.NewPackageDiscovery(adapter.NewLocalSourceFSAdapter()).
		Children(context.Background(), resolveForTest(t, site, "pkg"))
	require.NoError(t, err)

	assert.Equal(t, []m.DottedName{"pkg.linked"}, children.Names)
}

func TestPackageDiscovery_ListingError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	listErr := errors.New("permission denied")

	fsAdapter.EXPECT().ReadDir(mock.Anything, m.Path("/site/pkg")).Return(nil, listErr).Once()

	module := &m.ResolvedModule{
		Name:           "pkg",
		Origin:         []m.Path{"/site/pkg/__init__.py"},
		ParentLocation: "/site",
		SearchPath:     "/site/pkg",
	}

	_, err := domain.NewPackageDiscovery(fsAdapter).Children(context.Background(), module)
	require.ErrorIs(t, err, listErr)
}
