// Package adapter contains the infrastructure adapters used by the noprint
// domain: filesystem access, search-root discovery, Python source scanning and
// report persistence.
package adapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	m "noprint.dev/pkg/noprint/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the resolver
// and the discovery relies on. It hides direct `os` access so the resolution
// logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path (following symlinks).
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// Getwd returns the absolute working directory.
	Getwd(ctx context.Context) (m.Path, error)

	// RealPath resolves symlinks and returns an absolute path.
	RealPath(ctx context.Context, path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the resolver.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// ReadDir lists directory entries sorted by name.
func (a *LocalSourceFSAdapter) ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadDir(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the resolver, which only yields files under search roots
	return os.ReadFile(string(path))
}

// Getwd returns the current working directory.
func (a *LocalSourceFSAdapter) Getwd(ctx context.Context) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(wd), nil
}

// RealPath resolves symlinks so that cycles can be detected by path identity.
func (a *LocalSourceFSAdapter) RealPath(ctx context.Context, path m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(string(path))
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// IsDir reports whether path is an existing directory. Missing paths are not
// an error.
func IsDir(ctx context.Context, fsAdapter SourceFSAdapter, path m.Path) (bool, error) {
	info, err := fsAdapter.FileInfo(ctx, path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}

// IsFile reports whether path is an existing regular file (or symlink to one).
func IsFile(ctx context.Context, fsAdapter SourceFSAdapter, path m.Path) (bool, error) {
	info, err := fsAdapter.FileInfo(ctx, path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// isNotExist treats a path through a regular file ("mod.py/x") as missing, the
// way the import system does.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
