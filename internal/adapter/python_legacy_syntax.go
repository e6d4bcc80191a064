package adapter

import (
	"bytes"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Node types the grammar keeps for Python 2 sources, which the Python 3
// compiler rejects.
const (
	pyNodePrintStatement    = "print_statement"
	pyNodeExecStatement     = "exec_statement"
	pyNodeChevron           = "chevron"
	pyNodeExceptClause      = "except_clause"
	pyNodeExceptGroupClause = "except_group_clause"
	pyNodeInteger           = "integer"
	pyNodeString            = "string"
	pyTokenDiamond          = "<>"
	pyTokenComma            = ","
)

const (
	pyLegacyPrintStatement    = "python 2 print statement"
	pyLegacyExecStatement     = "python 2 exec statement"
	pyLegacyDiamond           = "python 2 <> operator"
	pyLegacyExceptComma       = "python 2 except clause"
	pyLegacyIntegerLiteral    = "python 2 integer literal"
	pyLegacyUnparsedCharacter = "unexpected character"
)

// legacySyntax locates the first construct the tree-sitter grammar accepts
// but a Python 3 parser does not.
type legacySyntax struct {
	construct string
	line      int
	column    int
}

// findLegacySyntax walks the tree in document order. Besides the Python 2
// node types it checks the bytes no token covers: the lexer drops characters
// it has no rule for, such as backticks, without recording an ERROR node.
func findLegacySyntax(root *sitter.Node, source []byte) (legacySyntax, bool) {
	covered := uint32(0)
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if construct := legacyConstruct(node, source); construct != "" {
			point := node.StartPoint()
			return legacySyntax{construct: construct, line: int(point.Row) + 1, column: int(point.Column)}, true
		}

		if node.ChildCount() == 0 || node.Type() == pyNodeString {
			if offset, found := firstStrayByte(source, covered, node.StartByte()); found {
				return strayCharacter(source, offset), true
			}

			if end := node.EndByte(); end > covered {
				covered = end
			}
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}

	if offset, found := firstStrayByte(source, covered, uint32(len(source))); found {
		return strayCharacter(source, offset), true
	}

	return legacySyntax{}, false
}

func legacyConstruct(node *sitter.Node, source []byte) string {
	switch node.Type() {
	case pyNodePrintStatement:
		// `print >>f, x` still parses in Python 3 as a shift inside a tuple.
		if !hasChildOfType(node, pyNodeChevron) {
			return pyLegacyPrintStatement
		}
	case pyNodeExecStatement:
		return pyLegacyExecStatement
	case pyTokenDiamond:
		if !node.IsNamed() {
			return pyLegacyDiamond
		}
	case pyNodeExceptClause, pyNodeExceptGroupClause:
		if hasChildOfType(node, pyTokenComma) {
			return pyLegacyExceptComma
		}
	case pyNodeInteger:
		if isLegacyInteger(node.Content(source)) {
			return pyLegacyIntegerLiteral
		}
	}

	return ""
}

func hasChildOfType(node *sitter.Node, nodeType string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil && child.Type() == nodeType {
			return true
		}
	}

	return false
}

// isLegacyInteger reports long literals (10L) and decimals with leading
// zeros (0777), the Python 2 octal spelling.
func isLegacyInteger(text string) bool {
	if strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L") {
		return true
	}

	if len(text) < 2 || text[0] != '0' || strings.HasSuffix(text, "j") || strings.HasSuffix(text, "J") {
		return false
	}

	if next := text[1]; (next < '0' || next > '9') && next != '_' {
		return false
	}

	return strings.Trim(text, "0_") != ""
}

// firstStrayByte scans source[from:to] for anything other than whitespace,
// line continuations and comments.
func firstStrayByte(source []byte, from, to uint32) (uint32, bool) {
	if to > uint32(len(source)) {
		to = uint32(len(source))
	}

	for i := from; i < to; i++ {
		switch source[i] {
		case ' ', '\t', '\f', '\r', '\n', '\\':
		case '#':
			end := bytes.IndexByte(source[i:to], '\n')
			if end < 0 {
				return 0, false
			}

			i += uint32(end)
		default:
			return i, true
		}
	}

	return 0, false
}

func strayCharacter(source []byte, offset uint32) legacySyntax {
	head := source[:offset]
	line := bytes.Count(head, []byte{'\n'}) + 1
	column := len(head) - (bytes.LastIndexByte(head, '\n') + 1)

	return legacySyntax{construct: pyLegacyUnparsedCharacter, line: line, column: column}
}
