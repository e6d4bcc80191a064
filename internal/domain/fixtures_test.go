package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"noprint.dev/pkg/noprint/internal/adapter"
	m "noprint.dev/pkg/noprint/internal/model"
)

// writeTree creates files below root. Keys ending in "/" create empty directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
}

// countingFS records every path probed through FileInfo and ReadDir.
type countingFS struct {
	adapter.SourceFSAdapter

	mu    sync.Mutex
	calls map[m.Path]int
}

func newCountingFS() *countingFS {
	return &countingFS{
		SourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		calls:           make(map[m.Path]int),
	}
}

func (c *countingFS) record(path m.Path) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls[path]++
}

func (c *countingFS) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	c.record(path)
	return c.SourceFSAdapter.FileInfo(ctx, path)
}

func (c *countingFS) ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error) {
	c.record(path)
	return c.SourceFSAdapter.ReadDir(ctx, path)
}

func (c *countingFS) count(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[m.Path(path)]
}

func (c *countingFS) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = make(map[m.Path]int)
}

// collect drains a discovery stream, failing the test if it does not close.
func collect(t *testing.T, stream <-chan m.Discovery) []m.Discovery {
	t.Helper()

	var discoveries []m.Discovery

	timeout := time.After(10 * time.Second)

	for {
		select {
		case discovery, ok := <-stream:
			if !ok {
				return discoveries
			}

			discoveries = append(discoveries, discovery)
		case <-timeout:
			require.FailNow(t, "discovery stream did not close")
			return nil
		}
	}
}

func discoveredNames(discoveries []m.Discovery) []m.DottedName {
	names := make([]m.DottedName, 0, len(discoveries))
	for _, discovery := range discoveries {
		names = append(names, discovery.Name)
	}

	return names
}

func findDiscovery(discoveries []m.Discovery, name m.DottedName) (m.Discovery, bool) {
	for _, discovery := range discoveries {
		if discovery.Name == name {
			return discovery, true
		}
	}

	return m.Discovery{}, false
}
