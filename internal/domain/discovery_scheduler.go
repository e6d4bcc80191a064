package domain

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"noprint.dev/pkg/noprint/internal/adapter"
	m "noprint.dev/pkg/noprint/internal/model"
)

// DefaultMaxDepth bounds how deep discovery descends below a root name.
const DefaultMaxDepth = 64

// DiscoverOptions configures one discovery run.
type DiscoverOptions struct {
	// Workers is the pool size; zero or negative means one per CPU.
	Workers int
	// MaxDepth bounds the package depth below each root; zero means DefaultMaxDepth.
	MaxDepth int
	// PreferWorkingDir searches the working directory before the global roots.
	PreferWorkingDir bool
	// CheckShadowing also resolves root names against the global roots only
	// and reports shadowing / not-installed notices.
	CheckShadowing bool
}

// DiscoveryScheduler walks package trees breadth-first on a bounded pool.
type DiscoveryScheduler interface {
	// Discover streams one Discovery per resolved or failed name. The channel
	// closes when the trees are exhausted or ctx is cancelled.
	Discover(ctx context.Context, roots []m.DottedName, opts DiscoverOptions) <-chan m.Discovery
}

type discoveryScheduler struct {
	fsAdapter adapter.SourceFSAdapter
	resolver  ModuleResolver
	discovery PackageDiscovery
}

// NewDiscoveryScheduler creates a scheduler over the given resolver and discovery.
func NewDiscoveryScheduler(fsAdapter adapter.SourceFSAdapter, resolver ModuleResolver, discovery PackageDiscovery) DiscoveryScheduler {
	return &discoveryScheduler{
		fsAdapter: fsAdapter,
		resolver:  resolver,
		discovery: discovery,
	}
}

type discoveryTask struct {
	name  m.DottedName
	root  m.DottedName
	depth int
}

type taskResult struct {
	task      discoveryTask
	discovery m.Discovery
	children  []m.DottedName
	// realPath identifies the package directory after resolving symlinks.
	realPath m.Path
}

// Discover runs the pool. A single dispatcher goroutine owns the queue, the
// outstanding count and the visited set; workers only resolve and list. A
// completion is handled in one step: its result is emitted and its children
// are queued before the next completion is looked at, so the run ends exactly
// when the queue is empty and nothing is in flight.
func (s *discoveryScheduler) Discover(ctx context.Context, roots []m.DottedName, opts DiscoverOptions) <-chan m.Discovery {
	opts = normalizeDiscoverOptions(opts)
	out := make(chan m.Discovery, opts.Workers)

	go func() {
		defer close(out)

		tasks := make(chan discoveryTask)
		results := make(chan taskResult)

		var group errgroup.Group

		for i := 0; i < opts.Workers; i++ {
			group.Go(func() error {
				s.work(ctx, opts, tasks, results)
				return nil
			})
		}

		s.dispatch(ctx, roots, opts, tasks, results, out)
		close(tasks)

		_ = group.Wait()
	}()

	return out
}

func normalizeDiscoverOptions(opts DiscoverOptions) DiscoverOptions {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return opts
}

func (s *discoveryScheduler) dispatch(
	ctx context.Context,
	roots []m.DottedName,
	opts DiscoverOptions,
	tasks chan<- discoveryTask,
	results <-chan taskResult,
	out chan<- m.Discovery,
) {
	queue := make([]discoveryTask, 0, len(roots))
	scheduled := make(map[m.DottedName]struct{}, len(roots))
	visited := make(map[m.Path]m.DottedName)

	enqueue := func(task discoveryTask) {
		if _, ok := scheduled[task.name]; ok {
			return
		}

		scheduled[task.name] = struct{}{}
		queue = append(queue, task)
	}

	for _, root := range roots {
		enqueue(discoveryTask{name: root, root: root, depth: 1})
	}

	pending := 0

	for len(queue) > 0 || pending > 0 {
		// A nil channel disables the send case while the queue is empty.
		var (
			sendCh chan<- discoveryTask
			next   discoveryTask
		)

		if len(queue) > 0 {
			sendCh = tasks
			next = queue[0]
		}

		select {
		case <-ctx.Done():
			slog.Debug("Discovery cancelled", "queued", len(queue), "in_flight", pending)
			return
		case sendCh <- next:
			queue = queue[1:]
			pending++
		case result := <-results:
			pending--

			discovery := result.discovery
			children := s.admitChildren(&discovery, result, opts, visited)

			for _, child := range children {
				enqueue(discoveryTask{name: child, root: result.task.root, depth: result.task.depth + 1})
			}

			select {
			case out <- discovery:
			case <-ctx.Done():
				return
			}
		}
	}

	slog.Debug("Discovery finished", "names", len(scheduled))
}

// admitChildren applies the cycle guard: a package directory is expanded at
// most once and never beyond the depth bound.
func (s *discoveryScheduler) admitChildren(discovery *m.Discovery, result taskResult, opts DiscoverOptions, visited map[m.Path]m.DottedName) []m.DottedName {
	if len(result.children) == 0 {
		return nil
	}

	if result.realPath != "" {
		if first, seen := visited[result.realPath]; seen {
			discovery.Notices = append(discovery.Notices, m.Notice{
				Kind:    m.NoticeCycle,
				Module:  discovery.Name,
				Message: fmt.Sprintf("Module [%s] points to the already visited package [%s], not descending", discovery.Name, first),
			})

			return nil
		}

		visited[result.realPath] = discovery.Name
	}

	if result.task.depth >= opts.MaxDepth {
		discovery.Notices = append(discovery.Notices, m.Notice{
			Kind:    m.NoticeCycle,
			Module:  discovery.Name,
			Message: fmt.Sprintf("Module [%s] exceeds the maximum package depth %d, not descending", discovery.Name, opts.MaxDepth),
		})

		return nil
	}

	return result.children
}

func (s *discoveryScheduler) work(ctx context.Context, opts DiscoverOptions, tasks <-chan discoveryTask, results chan<- taskResult) {
	for task := range tasks {
		result := s.runTask(ctx, opts, task)

		select {
		case results <- result:
		case <-ctx.Done():
			return
		}
	}
}

// runTask resolves one name and lists its children.
func (s *discoveryScheduler) runTask(ctx context.Context, opts DiscoverOptions, task discoveryTask) taskResult {
	result := taskResult{
		task:      task,
		discovery: m.Discovery{Name: task.name, Root: task.root},
	}

	module, err := s.resolver.Resolve(ctx, task.name, opts.PreferWorkingDir)
	if err != nil {
		slog.Debug("Failed to resolve module", "name", task.name, "error", err)
		result.discovery.Err = err

		return result
	}

	result.discovery.Module = module

	if opts.CheckShadowing && opts.PreferWorkingDir && task.name == task.root {
		result.discovery.Notices = append(result.discovery.Notices, s.shadowingNotices(ctx, module)...)
	}

	children, err := s.discovery.Children(ctx, module)
	if err != nil {
		slog.Error("Failed to list package", "name", task.name, "error", err)
		result.discovery.Err = err

		return result
	}

	for _, missing := range children.MissingMarker {
		result.discovery.Notices = append(result.discovery.Notices, m.Notice{
			Kind:    m.NoticeMissingMarker,
			Module:  missing,
			Message: fmt.Sprintf("Module [%s] has no %s", missing, m.InitFileName),
		})
	}

	result.children = children.Names

	if module.IsPackage() && len(children.Names) > 0 {
		realPath, err := s.fsAdapter.RealPath(ctx, module.SearchPath)
		if err != nil {
			realPath = module.SearchPath
		}

		result.realPath = realPath
	}

	return result
}

// shadowingNotices compares the working-directory resolution of a root name
// with the installed one.
func (s *discoveryScheduler) shadowingNotices(ctx context.Context, module *m.ResolvedModule) []m.Notice {
	installed, err := s.resolver.Resolve(ctx, module.Name, false)
	if err != nil {
		return []m.Notice{{
			Kind:    m.NoticeNotInstalled,
			Module:  module.Name,
			Message: fmt.Sprintf("Module [%s] is not installed", module.Name),
		}}
	}

	if !module.Equal(installed) {
		return []m.Notice{{
			Kind:    m.NoticeShadowing,
			Module:  module.Name,
			Message: fmt.Sprintf("Module [%s] is overshadowing installed module", module.Name),
		}}
	}

	return nil
}
