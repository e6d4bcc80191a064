package domain

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	m "noprint.dev/pkg/noprint/internal/model"
)

// CacheKey identifies a cached directory: a dotted name and whether the
// lookup searched the working directory first.
type CacheKey struct {
	Name         m.DottedName
	InWorkingDir bool
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s|cwd=%t", k.Name, k.InWorkingDir)
}

// SearchPathCache memoizes resolved directories. Each key is written once;
// the filesystem is assumed stable for the duration of a run. Concurrent
// misses on the same key share one computation.
type SearchPathCache struct {
	entries sync.Map
	group   singleflight.Group
	size    atomic.Int64
}

// NewSearchPathCache returns an empty cache.
func NewSearchPathCache() *SearchPathCache {
	return &SearchPathCache{}
}

// Get returns the cached directory for key.
func (c *SearchPathCache) Get(key CacheKey) (m.Path, bool) {
	value, ok := c.entries.Load(key)
	if !ok {
		return "", false
	}

	return value.(m.Path), true
}

// Set stores path unless key already holds a value, and returns the value
// that is stored.
func (c *SearchPathCache) Set(key CacheKey, path m.Path) m.Path {
	actual, loaded := c.entries.LoadOrStore(key, path)
	if !loaded {
		c.size.Add(1)
	}

	return actual.(m.Path)
}

// GetOrCompute returns the cached value or runs compute once for all
// concurrent callers. Errors are not cached.
func (c *SearchPathCache) GetOrCompute(key CacheKey, compute func() (m.Path, error)) (m.Path, error) {
	if path, ok := c.Get(key); ok {
		return path, nil
	}

	value, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		if path, ok := c.Get(key); ok {
			return path, nil
		}

		path, err := compute()
		if err != nil {
			return m.Path(""), err
		}

		return c.Set(key, path), nil
	})
	if err != nil {
		return "", err
	}

	return value.(m.Path), nil
}

// Len returns the number of cached keys.
func (c *SearchPathCache) Len() int {
	return int(c.size.Load())
}
