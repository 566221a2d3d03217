package parser

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/transport"
)

// SyntaxErrors walks the tree and emits one Error diagnostic per node the
// parser marked as error or missing. These carry no code; they cannot be
// suppressed by rule.
func SyntaxErrors(tree *tree_sitter.Tree, source []byte) []transport.Diagnostic {
	var diagnostics []transport.Diagnostic
	collectErrors(tree.RootNode(), source, &diagnostics)
	return diagnostics
}

func collectErrors(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.IsError() || node.IsMissing() {
		start := node.StartPosition()
		end := node.EndPosition()

		var message string
		if node.IsMissing() {
			message = "Missing: " + node.Kind()
		} else {
			message = "Syntax error: unexpected `" + errorSnippet(source, start, end) + "`"
		}

		*diagnostics = append(*diagnostics, transport.Diagnostic{
			Range: transport.Range{
				Start: transport.Position{Line: uint32(start.Row), Character: uint32(start.Column)},
				End:   transport.Position{Line: uint32(end.Row), Character: uint32(end.Column)},
			},
			Severity: transport.Error,
			Source:   "hjkls",
			Message:  message,
		})
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectErrors(node.Child(i), source, diagnostics)
	}
}

// errorSnippet slices the first line of the offending range out of source.
func errorSnippet(source []byte, start, end tree_sitter.Point) string {
	lines := strings.Split(string(source), "\n")
	if start.Row >= uint(len(lines)) {
		return ""
	}
	line := lines[start.Row]
	startCol := min(int(start.Column), len(line))
	endCol := len(line)
	if start.Row == end.Row {
		endCol = min(int(end.Column), len(line))
	}
	return strings.TrimSpace(line[startCol:endCol])
}
