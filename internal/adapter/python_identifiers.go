package adapter

import (
	sitter "github.com/smacker/go-tree-sitter"

	m "noprint.dev/pkg/noprint/internal/model"
)

// Python tree-sitter node types consulted while deciding whether an
// identifier is a name reference.
const (
	pyNodeIdentifier          = "identifier"
	pyNodeAttribute           = "attribute"
	pyNodeKeywordArgument     = "keyword_argument"
	pyNodeFunctionDefinition  = "function_definition"
	pyNodeClassDefinition     = "class_definition"
	pyNodeParameters          = "parameters"
	pyNodeLambdaParameters    = "lambda_parameters"
	pyNodeTypedParameter      = "typed_parameter"
	pyNodeDefaultParameter    = "default_parameter"
	pyNodeTypedDefaultParam   = "typed_default_parameter"
	pyNodeListSplatPattern    = "list_splat_pattern"
	pyNodeDictSplatPattern    = "dictionary_splat_pattern"
	pyNodeImportStatement     = "import_statement"
	pyNodeImportFromStatement = "import_from_statement"
	pyNodeFutureImport        = "future_import_statement"
	pyNodeGlobalStatement     = "global_statement"
	pyNodeNonlocalStatement   = "nonlocal_statement"
	pyNodeAsPatternTarget     = "as_pattern_target"
	pyNodeCasePattern         = "case_pattern"
	pyNodeClassPattern        = "class_pattern"
	pyNodeDottedName          = "dotted_name"
	pyNodeKeywordPattern      = "keyword_pattern"
	pyNodeSplatPattern        = "splat_pattern"
	pyTokenAs                 = "as"

	pyStatementSuffix = "_statement"
)

// Subtrees that never hold name references, only plain strings.
var pyNameFreeStatements = map[string]struct{}{
	pyNodeImportStatement:     {},
	pyNodeImportFromStatement: {},
	pyNodeFutureImport:        {},
	pyNodeGlobalStatement:     {},
	pyNodeNonlocalStatement:   {},
}

// identifierFinder walks a syntax tree and collects the positions where the
// reserved word is used as a name, whatever the surrounding expression is.
type identifierFinder struct {
	source      []byte
	reserved    string
	module      m.DottedName
	file        m.Path
	stopAtFirst bool
}

type walkFrame struct {
	node        *sitter.Node
	parent      *sitter.Node
	grandparent *sitter.Node
}

func (f identifierFinder) find(root *sitter.Node) []m.Occurrence {
	var occurrences []m.Occurrence

	stack := []walkFrame{{node: root}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := frame.node
		if _, skip := pyNameFreeStatements[node.Type()]; skip {
			continue
		}

		if f.matches(frame) {
			point := node.StartPoint()
			occurrences = append(occurrences, m.Occurrence{
				Module: f.module,
				File:   f.file,
				Line:   int(point.Row) + 1,
				Column: int(point.Column),
			})

			if f.stopAtFirst {
				return occurrences
			}
		}

		// Children are pushed in reverse so they pop in document order.
		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			child := node.Child(i)
			if child == nil {
				continue
			}

			stack = append(stack, walkFrame{node: child, parent: node, grandparent: frame.parent})
		}
	}

	return occurrences
}

func (f identifierFinder) matches(frame walkFrame) bool {
	node := frame.node

	// `print >>f, x` parses as a print_statement led by the keyword.
	if !node.IsNamed() {
		return node.Type() == f.reserved && frame.parent != nil &&
			frame.parent.Type() == f.reserved+pyStatementSuffix
	}

	if node.Type() != pyNodeIdentifier || node.Content(f.source) != f.reserved {
		return false
	}

	return isNameReference(node, frame.parent, frame.grandparent)
}

// isNameReference reports whether the identifier would be a Name node in the
// Python AST, as opposed to an attribute, keyword, definition or parameter
// name which the AST stores as a plain string.
func isNameReference(node, parent, grandparent *sitter.Node) bool {
	if parent == nil {
		return true
	}

	switch parent.Type() {
	case pyNodeAttribute:
		return !isField(parent, "attribute", node)
	case pyNodeKeywordArgument:
		return !isField(parent, "name", node)
	case pyNodeFunctionDefinition, pyNodeClassDefinition:
		return !isField(parent, "name", node)
	case pyNodeParameters, pyNodeLambdaParameters, pyNodeTypedParameter:
		return false
	case pyNodeDefaultParameter, pyNodeTypedDefaultParam:
		return !isField(parent, "name", node)
	case pyNodeListSplatPattern, pyNodeDictSplatPattern:
		return !isParameterList(grandparent)
	case pyNodeExceptClause, pyNodeExceptGroupClause:
		prev := node.PrevSibling()
		return prev == nil || prev.Type() != pyTokenAs
	case pyNodeAsPatternTarget:
		// Except handler and case pattern aliases are bound names, not Name nodes.
		return grandparent == nil || !isBindingContext(grandparent.Parent())
	case pyNodeCasePattern, pyNodeSplatPattern, pyNodeKeywordPattern:
		return false
	case pyNodeDottedName:
		return isPatternValue(node, parent, grandparent)
	}

	return true
}

func isBindingContext(node *sitter.Node) bool {
	if node == nil {
		return false
	}

	switch node.Type() {
	case pyNodeExceptClause, pyNodeExceptGroupClause, pyNodeCasePattern:
		return true
	default:
		return false
	}
}

// isPatternValue handles dotted names, which outside skipped imports only
// occur in match patterns. A lone name there is a capture; otherwise only the
// first segment of a value or class reference is a Name node.
func isPatternValue(node, dotted, pattern *sitter.Node) bool {
	first := dotted.NamedChild(0)
	if first == nil || first.StartByte() != node.StartByte() {
		return false
	}

	if dotted.NamedChildCount() > 1 {
		return true
	}

	return pattern != nil && pattern.Type() == pyNodeClassPattern && isFirstNamedChild(pattern, dotted)
}

func isFirstNamedChild(parent, child *sitter.Node) bool {
	first := parent.NamedChild(0)

	return first != nil && first.StartByte() == child.StartByte() && first.Type() == child.Type()
}

func isParameterList(node *sitter.Node) bool {
	if node == nil {
		return false
	}

	switch node.Type() {
	case pyNodeParameters, pyNodeLambdaParameters, pyNodeTypedParameter:
		return true
	default:
		return false
	}
}

// isField reports whether child is the node stored under field in parent.
func isField(parent *sitter.Node, field string, child *sitter.Node) bool {
	fieldNode := parent.ChildByFieldName(field)
	if fieldNode == nil {
		return false
	}

	return fieldNode.StartByte() == child.StartByte() &&
		fieldNode.EndByte() == child.EndByte() &&
		fieldNode.Type() == child.Type()
}
