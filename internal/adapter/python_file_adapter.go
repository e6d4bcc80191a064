package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "noprint.dev/pkg/noprint/internal/model"
)

// DefaultReservedWord is the identifier flagged when nothing else is configured.
const DefaultReservedWord = "print"

// DefaultMaxFileSize is the largest source file the scanner accepts (10MB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// ErrParse is returned when a source file is not valid Python.
var ErrParse = errors.New("python parse error")

// ErrFileTooLarge is returned when a source file exceeds the size limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size limit")

// PythonFileAdapter scans the source files of a resolved module for the
// reserved identifier.
type PythonFileAdapter interface {
	Scan(ctx context.Context, module *m.ResolvedModule) m.ScanOutcome
}

// PythonFileOption configures a LocalPythonFileAdapter.
type PythonFileOption func(*LocalPythonFileAdapter)

// WithReservedWord sets the identifier to look for.
func WithReservedWord(word string) PythonFileOption {
	return func(a *LocalPythonFileAdapter) {
		if word != "" {
			a.reserved = word
		}
	}
}

// WithStopAtFirst makes Scan return after the first occurrence.
func WithStopAtFirst(stop bool) PythonFileOption {
	return func(a *LocalPythonFileAdapter) {
		a.stopAtFirst = stop
	}
}

// WithMaxFileSize sets the maximum accepted file size in bytes.
func WithMaxFileSize(bytes int64) PythonFileOption {
	return func(a *LocalPythonFileAdapter) {
		if bytes > 0 {
			a.maxFileSize = bytes
		}
	}
}

// LocalPythonFileAdapter parses Python sources with tree-sitter.
//
// Scan is safe for concurrent use: a tree-sitter parser is created per call.
type LocalPythonFileAdapter struct {
	fsAdapter   SourceFSAdapter
	reserved    string
	stopAtFirst bool
	maxFileSize int64
}

// NewLocalPythonFileAdapter constructs a scanner reading files through fsAdapter.
func NewLocalPythonFileAdapter(fsAdapter SourceFSAdapter, opts ...PythonFileOption) *LocalPythonFileAdapter {
	a := &LocalPythonFileAdapter{
		fsAdapter:   fsAdapter,
		reserved:    DefaultReservedWord,
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Scan reports every occurrence of the reserved identifier in the module's
// origin files, or a single clear entry when there is none.
func (a *LocalPythonFileAdapter) Scan(ctx context.Context, module *m.ResolvedModule) m.ScanOutcome {
	outcome := m.ScanOutcome{Module: module.Name}

	for _, file := range module.Origin {
		occurrences, err := a.scanFile(ctx, module.Name, file)
		if err != nil {
			slog.Error("Failed to scan source", "module", module.Name, "file", file, "error", err)
			outcome.Err = fmt.Errorf("module [%s] %s: %w", module.Name, file, err)
			outcome.Entries = nil

			return outcome
		}

		for i := range occurrences {
			outcome.Entries = append(outcome.Entries, m.OutcomeEntry{
				Tag:        m.OccurrenceTag(module.Name, occurrences[i].Line),
				Flagged:    true,
				Occurrence: &occurrences[i],
			})
		}

		if a.stopAtFirst && len(outcome.Entries) > 0 {
			return outcome
		}
	}

	if len(outcome.Entries) == 0 {
		outcome.Entries = append(outcome.Entries, m.OutcomeEntry{Tag: m.ClearTag(module.Name)})
	}

	return outcome
}

func (a *LocalPythonFileAdapter) scanFile(ctx context.Context, module m.DottedName, file m.Path) ([]m.Occurrence, error) {
	raw, err := a.fsAdapter.ReadFile(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	if int64(len(raw)) > a.maxFileSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrFileTooLarge, len(raw), a.maxFileSize)
	}

	content, err := DecodeSource(raw)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%w: empty syntax tree", ErrParse)
	}

	if root.HasError() {
		line, column := firstSyntaxError(root)
		return nil, fmt.Errorf("%w: invalid syntax at line %d col %d", ErrParse, line, column)
	}

	if legacy, found := findLegacySyntax(root, content); found {
		return nil, fmt.Errorf("%w: %s at line %d col %d", ErrParse, legacy.construct, legacy.line, legacy.column)
	}

	finder := identifierFinder{
		source:      content,
		reserved:    a.reserved,
		module:      module,
		file:        file,
		stopAtFirst: a.stopAtFirst,
	}

	return finder.find(root), nil
}

// firstSyntaxError returns the 1-based line and 0-based column of the first
// ERROR or MISSING node in document order.
func firstSyntaxError(root *sitter.Node) (int, int) {
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.IsError() || node.IsMissing() {
			point := node.StartPoint()
			return int(point.Row) + 1, int(point.Column)
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(i); child != nil && (child.HasError() || child.IsMissing()) {
				stack = append(stack, child)
			}
		}
	}

	point := root.StartPoint()

	return int(point.Row) + 1, int(point.Column)
}
