package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	m "noprint.dev/pkg/noprint/internal/model"
)

func scanSource(t *testing.T, src string, opts ...PythonFileOption) m.ScanOutcome {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mod.py")
	writeTestFile(t, path, src)

	adapter := NewLocalPythonFileAdapter(NewLocalSourceFSAdapter(), opts...)

	return adapter.Scan(context.Background(), &m.ResolvedModule{
		Name:   "pkg.mod",
		Origin: []m.Path{m.Path(path)},
	})
}

func flaggedLines(outcome m.ScanOutcome) []int {
	var lines []int

	for _, entry := range outcome.Entries {
		if entry.Flagged {
			lines = append(lines, entry.Occurrence.Line)
		}
	}

	return lines
}

func equalLines(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestLocalPythonFileAdapter_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []int
	}{
		{"call", "print('hello')\n", []int{1}},
		{"several calls", "print(1)\nx = 2\nprint(x)\n", []int{1, 3}},
		{"nested in expression", "def f():\n    return [print(i) for i in range(3)]\n", []int{2}},
		{"bare reference", "log = print\n", []int{1}},
		{"default value", "def f(out=print):\n    pass\n", []int{1}},
		{"keyword value", "f(callback=print)\n", []int{1}},
		{"chevron shift", "import sys\nprint >>sys.stderr, 'x'\n", []int{2}},
		{"with alias", "with open('f') as print:\n    pass\n", []int{1}},
		{"caught type", "try:\n    pass\nexcept print:\n    pass\n", []int{3}},
		{"case guard", "match x:\n    case y if print:\n        pass\n", []int{2}},
		{"attribute", "import logging\nlogging.print = 1\nx.print('a')\n", nil},
		{"keyword name", "f(print=1)\n", nil},
		{"function name", "def print():\n    pass\n", nil},
		{"class name", "class print:\n    pass\n", nil},
		{"parameters", "def f(print, *args):\n    return args\n", nil},
		{"default parameter name", "def f(print=None):\n    return 1\n", nil},
		{"lambda parameter", "g = lambda print: 0\n", nil},
		{"import", "from builtins import print\n", nil},
		{"string and comment", "s = 'print'\n# print(s)\n", nil},
		{"longer identifier", "printer = 1\npprint(printer)\n", nil},
		{"except alias", "try:\n    pass\nexcept ValueError as print:\n    pass\n", nil},
		{"except group alias", "try:\n    pass\nexcept* ValueError as print:\n    pass\n", nil},
		{"case capture", "match x:\n    case print:\n        pass\n", nil},
		{"case alias", "match x:\n    case [1, 2] as print:\n        pass\n", nil},
		{"case star capture", "match x:\n    case [1, *print]:\n        pass\n", nil},
		{"case keyword capture", "match x:\n    case Point(x=print):\n        pass\n", nil},
		{"backticks in string and comment", "s = '`x`'  # `y`\nt = 1 + \\\n    2\n", nil},
		{"numeric literals", "a = 0o777\nb = 0_0\nc = 07j\nd = 00\n", nil},
		{"empty file", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := scanSource(t, tt.src)
			if outcome.Err != nil {
				t.Fatalf("Scan() error = %v", outcome.Err)
			}

			if got := flaggedLines(outcome); !equalLines(got, tt.want) {
				t.Fatalf("Scan() flagged lines = %v, want %v", got, tt.want)
			}

			if len(tt.want) == 0 {
				if len(outcome.Entries) != 1 || outcome.Entries[0].Tag != "[CLEAR]:[pkg.mod]" {
					t.Fatalf("Scan() entries = %+v, want a single clear entry", outcome.Entries)
				}

				if outcome.Verdict() != m.Clear {
					t.Fatalf("Verdict() = %v, want clear", outcome.Verdict())
				}
			}
		})
	}
}

func TestLocalPythonFileAdapter_ScanTagsAndColumns(t *testing.T) {
	outcome := scanSource(t, "x = 1\nif x:\n    y = print\n")
	if outcome.Err != nil {
		t.Fatalf("Scan() error = %v", outcome.Err)
	}

	if len(outcome.Entries) != 1 {
		t.Fatalf("Scan() entries = %+v, want 1", outcome.Entries)
	}

	entry := outcome.Entries[0]
	if entry.Tag != "[pkg.mod] Line: 3" {
		t.Fatalf("Tag = %q, want %q", entry.Tag, "[pkg.mod] Line: 3")
	}

	if entry.Occurrence.Column != 8 {
		t.Fatalf("Column = %d, want 8", entry.Occurrence.Column)
	}

	if entry.Occurrence.Module != "pkg.mod" {
		t.Fatalf("Module = %s, want pkg.mod", entry.Occurrence.Module)
	}

	if outcome.Verdict() != m.Flagged {
		t.Fatalf("Verdict() = %v, want flagged", outcome.Verdict())
	}
}

func TestLocalPythonFileAdapter_StopAtFirst(t *testing.T) {
	root := t.TempDir()
	initFile := filepath.Join(root, "pkg", "__init__.py")
	mainFile := filepath.Join(root, "pkg", "__main__.py")
	writeTestFile(t, initFile, "print(1)\nprint(2)\n")
	writeTestFile(t, mainFile, "print(3)\n")

	module := &m.ResolvedModule{
		Name:       "pkg",
		Origin:     []m.Path{m.Path(initFile), m.Path(mainFile)},
		SearchPath: m.Path(filepath.Dir(initFile)),
	}

	all := NewLocalPythonFileAdapter(NewLocalSourceFSAdapter()).Scan(context.Background(), module)
	if got := flaggedLines(all); !equalLines(got, []int{1, 2, 1}) {
		t.Fatalf("Scan() flagged lines = %v, want [1 2 1]", got)
	}

	first := NewLocalPythonFileAdapter(NewLocalSourceFSAdapter(), WithStopAtFirst(true)).Scan(context.Background(), module)
	if got := flaggedLines(first); !equalLines(got, []int{1}) {
		t.Fatalf("Scan() with stop at first flagged lines = %v, want [1]", got)
	}
}

func TestLocalPythonFileAdapter_ReservedWord(t *testing.T) {
	outcome := scanSource(t, "print(1)\nbreakpoint()\n", WithReservedWord("breakpoint"))

	if got := flaggedLines(outcome); !equalLines(got, []int{2}) {
		t.Fatalf("Scan() flagged lines = %v, want [2]", got)
	}
}

func TestLocalPythonFileAdapter_DeclaredEncoding(t *testing.T) {
	src := append([]byte("# -*- coding: latin-1 -*-\nname = '"), 0xE9)
	src = append(src, "'\nprint(name)\n"...)

	path := filepath.Join(t.TempDir(), "legacy.py")
	writeTestBytes(t, path, src)

	outcome := NewLocalPythonFileAdapter(NewLocalSourceFSAdapter()).Scan(context.Background(), &m.ResolvedModule{
		Name:   "legacy",
		Origin: []m.Path{m.Path(path)},
	})
	if outcome.Err != nil {
		t.Fatalf("Scan() error = %v", outcome.Err)
	}

	if got := flaggedLines(outcome); !equalLines(got, []int{3}) {
		t.Fatalf("Scan() flagged lines = %v, want [3]", got)
	}
}

func TestLocalPythonFileAdapter_LegacySyntax(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		wantAt string
	}{
		{"print statement", "x = 1\nprint 'hello'\n", "line 2 col 0"},
		{"exec statement", "exec 'x = 1'\n", "line 1 col 0"},
		{"exec in namespace", "ns = {}\nexec code in ns\n", "line 2 col 0"},
		{"backticks", "x = 1\ny = `x`\n", "line 2 col 4"},
		{"diamond operator", "if 1 <> 2:\n    pass\n", "line 1 col 5"},
		{"except comma", "try:\n    pass\nexcept ValueError, e:\n    pass\n", ""},
		{"leading zero octal", "mode = 0777\n", "line 1 col 7"},
		{"long suffix", "n = 10L\n", ""},
		{"stray character", "x = 1 $ 2\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := scanSource(t, tt.src)

			if !errors.Is(outcome.Err, ErrParse) {
				t.Fatalf("Scan() error = %v, want ErrParse", outcome.Err)
			}

			if tt.wantAt != "" && !strings.Contains(outcome.Err.Error(), tt.wantAt) {
				t.Fatalf("Scan() error = %v, want position %q", outcome.Err, tt.wantAt)
			}

			if outcome.Verdict() != m.Fatal {
				t.Fatalf("Verdict() = %v, want fatal", outcome.Verdict())
			}
		})
	}
}

func TestLocalPythonFileAdapter_Errors(t *testing.T) {
	t.Run("invalid syntax", func(t *testing.T) {
		outcome := scanSource(t, "print(1)\ndef broken(:\n")

		if !errors.Is(outcome.Err, ErrParse) {
			t.Fatalf("Scan() error = %v, want ErrParse", outcome.Err)
		}

		if len(outcome.Entries) != 0 {
			t.Fatalf("Scan() entries = %+v, want none on error", outcome.Entries)
		}

		if outcome.Verdict() != m.Fatal {
			t.Fatalf("Verdict() = %v, want fatal", outcome.Verdict())
		}
	})

	t.Run("file too large", func(t *testing.T) {
		outcome := scanSource(t, "print(1)\n", WithMaxFileSize(4))

		if !errors.Is(outcome.Err, ErrFileTooLarge) {
			t.Fatalf("Scan() error = %v, want ErrFileTooLarge", outcome.Err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		adapter := NewLocalPythonFileAdapter(NewLocalSourceFSAdapter())
		outcome := adapter.Scan(context.Background(), &m.ResolvedModule{
			Name:   "gone",
			Origin: []m.Path{m.Path(filepath.Join(t.TempDir(), "gone.py"))},
		})

		if outcome.Err == nil {
			t.Fatalf("Scan() expected error for missing file")
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mod.py")
		writeTestFile(t, path, "x = 1\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcome := NewLocalPythonFileAdapter(NewLocalSourceFSAdapter()).Scan(ctx, &m.ResolvedModule{
			Name:   "mod",
			Origin: []m.Path{m.Path(path)},
		})

		if outcome.Err == nil {
			t.Fatalf("Scan() expected error due to context cancellation")
		}
	})
}
