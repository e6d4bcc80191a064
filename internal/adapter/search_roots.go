package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "noprint.dev/pkg/noprint/internal/model"
)

const (
	pythonPathEnv = "PYTHONPATH"
	virtualEnvEnv = "VIRTUAL_ENV"

	sysPathScript = "import sys; print('\\n'.join(p for p in sys.path if p))"
)

// SearchRootsOptions describes where global (non working-directory) lookups
// may find top-level packages.
type SearchRootsOptions struct {
	// Paths are explicit roots, searched first in the given order.
	Paths []string
	// UsePythonPath appends the entries of $PYTHONPATH.
	UsePythonPath bool
	// UseVirtualEnv appends the site-packages of $VIRTUAL_ENV.
	UseVirtualEnv bool
	// Interpreter, when set, is asked for its sys.path. Only the interpreter
	// start-up runs; no inspected package is imported.
	Interpreter string
}

// SearchRoots builds the ordered, de-duplicated list of global search roots.
// Entries that are not existing directories are dropped.
func SearchRoots(ctx context.Context, fsAdapter SourceFSAdapter, opts SearchRootsOptions) ([]m.Path, error) {
	candidates := make([]string, 0, len(opts.Paths))
	candidates = append(candidates, opts.Paths...)

	if opts.UsePythonPath {
		candidates = append(candidates, filepath.SplitList(os.Getenv(pythonPathEnv))...)
	}

	if opts.UseVirtualEnv {
		candidates = append(candidates, virtualEnvSitePackages(os.Getenv(virtualEnvEnv))...)
	}

	if opts.Interpreter != "" {
		interpreterPaths, err := interpreterSysPath(ctx, opts.Interpreter)
		if err != nil {
			return nil, fmt.Errorf("query %s sys.path: %w", opts.Interpreter, err)
		}

		candidates = append(candidates, interpreterPaths...)
	}

	roots := make([]m.Path, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}

		abs, err := filepath.Abs(candidate)
		if err != nil {
			slog.Debug("Skipping search root", "path", candidate, "error", err)
			continue
		}

		if _, ok := seen[abs]; ok {
			continue
		}

		seen[abs] = struct{}{}

		isDir, err := IsDir(ctx, fsAdapter, m.Path(abs))
		if err != nil || !isDir {
			slog.Debug("Skipping search root", "path", abs, "error", err)
			continue
		}

		roots = append(roots, m.Path(abs))
	}

	return roots, nil
}

func virtualEnvSitePackages(venv string) []string {
	if venv == "" {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(venv, "lib", "python*", "site-packages"))
	if err != nil {
		return nil
	}

	// Windows layout.
	matches = append(matches, filepath.Join(venv, "Lib", "site-packages"))

	return matches
}

func interpreterSysPath(ctx context.Context, interpreter string) ([]string, error) {
	// #nosec G204 - the interpreter is chosen by the user running the tool
	cmd := exec.CommandContext(ctx, interpreter, "-c", sysPathScript)
	cmd.Env = append(os.Environ(), "PYTHONSAFEPATH=1")

	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var paths []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}

	return paths, scanner.Err()
}
