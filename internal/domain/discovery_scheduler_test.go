package domain_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noprint.dev/pkg/noprint/internal/adapter"
	"noprint.dev/pkg/noprint/internal/domain"
	domainmocks "noprint.dev/pkg/noprint/internal/domain/mocks"
	m "noprint.dev/pkg/noprint/internal/model"
)

func newScheduler(workingDir string, roots ...string) domain.DiscoveryScheduler {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	paths := make([]m.Path, 0, len(roots))
	for _, root := range roots {
		paths = append(paths, m.Path(root))
	}

	resolver := domain.NewModuleResolver(fsAdapter, m.Path(workingDir), paths)

	return domain.NewDiscoveryScheduler(fsAdapter, resolver, domain.NewPackageDiscovery(fsAdapter))
}

func TestDiscoveryScheduler_TerminatesForAnyWorkerCount(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkgA/__init__.py":          "",
		"pkgA/m1.py":                "",
		"pkgA/m2.py":                "",
		"pkgA/sub/__init__.py":      "",
		"pkgA/sub/x.py":             "",
		"pkgA/sub/deep/__init__.py": "",
		"pkgA/sub/deep/y.py":        "",
		"pkgA/ns/z.py":              "",
		"other.py":                  "",
	})

	want := []m.DottedName{
		"other", "pkgA", "pkgA.m1", "pkgA.m2", "pkgA.ns", "pkgA.ns.z",
		"pkgA.sub", "pkgA.sub.deep", "pkgA.sub.deep.y", "pkgA.sub.x",
	}

	for workers := 1; workers <= 8; workers++ {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			stream := newScheduler("", site).Discover(context.Background(), []m.DottedName{"pkgA", "other"}, domain.DiscoverOptions{
				Workers: workers,
			})

			discoveries := collect(t, stream)
			assert.ElementsMatch(t, want, discoveredNames(discoveries))

			for _, discovery := range discoveries {
				assert.NoError(t, discovery.Err, discovery.Name)
				assert.NotNil(t, discovery.Module, discovery.Name)
			}
		})
	}
}

func TestDiscoveryScheduler_RootAttribution(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"a/__init__.py": "",
		"a/x.py":        "",
		"b/__init__.py": "",
		"b/y.py":        "",
	})

	discoveries := collect(t, newScheduler("", site).Discover(context.Background(), []m.DottedName{"a", "b"}, domain.DiscoverOptions{}))

	for _, discovery := range discoveries {
		assert.Equal(t, discovery.Name.Top(), discovery.Root, discovery.Name)
	}
}

func TestDiscoveryScheduler_FailureIsIsolated(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkgA/__init__.py": "",
		"pkgA/m1.py":       "",
	})

	discoveries := collect(t, newScheduler("", site).Discover(context.Background(), []m.DottedName{"missingpkg", "pkgA"}, domain.DiscoverOptions{
		Workers: 2,
	}))

	assert.ElementsMatch(t, []m.DottedName{"missingpkg", "pkgA", "pkgA.m1"}, discoveredNames(discoveries))

	missing, ok := findDiscovery(discoveries, "missingpkg")
	require.True(t, ok)
	require.Error(t, missing.Err)
	assert.Nil(t, missing.Module)

	var resolutionErr *m.ResolutionError
	assert.ErrorAs(t, missing.Err, &resolutionErr)
}

func TestDiscoveryScheduler_DuplicateRootsAreScheduledOnce(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkgA/__init__.py": "",
		"pkgA/m1.py":       "",
	})

	discoveries := collect(t, newScheduler("", site).Discover(context.Background(), []m.DottedName{"pkgA", "pkgA", "pkgA.m1"}, domain.DiscoverOptions{}))

	assert.ElementsMatch(t, []m.DottedName{"pkgA", "pkgA.m1"}, discoveredNames(discoveries))
}

func TestDiscoveryScheduler_MissingMarkerNotice(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkgA/__init__.py":    "",
		"pkgA/fixtures/a.txt": "",
	})

	discoveries := collect(t, newScheduler("", site).Discover(context.Background(), []m.DottedName{"pkgA"}, domain.DiscoverOptions{}))

	root, ok := findDiscovery(discoveries, "pkgA")
	require.True(t, ok)
	require.Len(t, root.Notices, 1)
	assert.Equal(t, m.NoticeMissingMarker, root.Notices[0].Kind)
	assert.Equal(t, m.DottedName("pkgA.fixtures"), root.Notices[0].Module)
	assert.Equal(t, "Module [pkgA.fixtures] has no __init__.py", root.Notices[0].Message)
}

func TestDiscoveryScheduler_ShadowingNotices(t *testing.T) {
	cwd := t.TempDir()
	site := t.TempDir()

	writeTree(t, cwd, map[string]string{
		"shadow/__init__.py": "",
		"local/__init__.py":  "",
	})
	writeTree(t, site, map[string]string{
		"shadow/__init__.py":    "",
		"installed/__init__.py": "",
	})

	scheduler := newScheduler(cwd, site)
	opts := domain.DiscoverOptions{PreferWorkingDir: true, CheckShadowing: true}

	discoveries := collect(t, scheduler.Discover(context.Background(), []m.DottedName{"shadow", "local", "installed"}, opts))

	kinds := make(map[m.DottedName][]m.NoticeKind)
	for _, discovery := range discoveries {
		for _, notice := range discovery.Notices {
			kinds[discovery.Name] = append(kinds[discovery.Name], notice.Kind)
		}
	}

	assert.Equal(t, []m.NoticeKind{m.NoticeShadowing}, kinds["shadow"])
	assert.Equal(t, []m.NoticeKind{m.NoticeNotInstalled}, kinds["local"])
	assert.Empty(t, kinds["installed"])

	shadow, ok := findDiscovery(discoveries, "shadow")
	require.True(t, ok)
	assert.Equal(t, m.Path(cwd), shadow.Module.ParentLocation)
	assert.Equal(t, "Module [shadow] is overshadowing installed module", shadow.Notices[0].Message)
}

func TestDiscoveryScheduler_SymlinkCycle(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"pkg/__init__.py":     "",
		"pkg/sub/__init__.py": "",
	})

	if err := os.Symlink(filepath.Join(site, "pkg"), filepath.Join(site, "pkg", "sub", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			discoveries := collect(t, newScheduler("", site).Discover(context.Background(), []m.DottedName{"pkg"}, domain.DiscoverOptions{
				Workers: workers,
			}))

			assert.ElementsMatch(t, []m.DottedName{"pkg", "pkg.sub", "pkg.sub.loop"}, discoveredNames(discoveries))

			loop, ok := findDiscovery(discoveries, "pkg.sub.loop")
			require.True(t, ok)
			require.Len(t, loop.Notices, 1)
			assert.Equal(t, m.NoticeCycle, loop.Notices[0].Kind)
		})
	}
}

func TestDiscoveryScheduler_MaxDepth(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{
		"a/__init__.py":       "",
		"a/b/__init__.py":     "",
		"a/b/c/__init__.py":   "",
		"a/b/c/d/__init__.py": "",
	})

	discoveries := collect(t, newScheduler("", site).Discover(context.Background(), []m.DottedName{"a"}, domain.DiscoverOptions{
		MaxDepth: 2,
	}))

	assert.ElementsMatch(t, []m.DottedName{"a", "a.b"}, discoveredNames(discoveries))

	last, ok := findDiscovery(discoveries, "a.b")
	require.True(t, ok)
	require.Len(t, last.Notices, 1)
	assert.Equal(t, m.NoticeCycle, last.Notices[0].Kind)
}

func TestDiscoveryScheduler_CancellationClosesStream(t *testing.T) {
	resolver := domainmocks.NewMockModuleResolver(t)
	discovery := domainmocks.NewMockPackageDiscovery(t)

	// An unbounded tree: every package has three sub-packages.
	resolver.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, name m.DottedName, _ bool) (*m.ResolvedModule, error) {
			return &m.ResolvedModule{
				Name:           name,
				Origin:         []m.Path{},
				ParentLocation: "/virtual",
				SearchPath:     m.Path("/virtual/" + string(name)),
			}, nil
		}).Maybe()

	discovery.EXPECT().Children(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, module *m.ResolvedModule) (domain.Children, error) {
			return domain.Children{Names: []m.DottedName{
				module.Name.Child("a"), module.Name.Child("b"), module.Name.Child("c"),
			}}, nil
		}).Maybe()

	scheduler := domain.NewDiscoveryScheduler(adapter.NewLocalSourceFSAdapter(), resolver, discovery)

	ctx, cancel := context.WithCancel(context.Background())
	stream := scheduler.Discover(ctx, []m.DottedName{"root"}, domain.DiscoverOptions{Workers: 4, MaxDepth: 1000})

	for i := 0; i < 20; i++ {
		_, ok := <-stream
		require.True(t, ok)
	}

	cancel()

	collect(t, stream)
}

func TestDiscoveryScheduler_CancelledBeforeStart(t *testing.T) {
	site := t.TempDir()
	writeTree(t, site, map[string]string{"pkgA/__init__.py": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	discoveries := collect(t, newScheduler("", site).Discover(ctx, []m.DottedName{"pkgA"}, domain.DiscoverOptions{Workers: 2}))

	assert.LessOrEqual(t, len(discoveries), 1)
}
