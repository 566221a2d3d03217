package server

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/transport"
)

// Style hints (Hint severity): suggestions, not bugs.

func collectStyleHints(tree *tree_sitter.Tree, source []byte) []transport.Diagnostic {
	var diagnostics []transport.Diagnostic
	root := tree.RootNode()

	collectDoubleDotHints(root, source, &diagnostics)
	collectFunctionBangHints(root, source, &diagnostics)
	collectAbortHints(root, source, &diagnostics)
	collectSingleQuoteHints(root, source, &diagnostics)
	collectKeyNotationHints(root, source, &diagnostics)
	collectPlugNoremapHints(string(source), &diagnostics)

	return diagnostics
}

// Single-dot concatenation; Vim9 requires `..`.
func collectDoubleDotHints(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "binary_operation" {
		hasSingleDot := false
		for i := uint(0); i < node.ChildCount(); i++ {
			if node.Child(i).Kind() == "." {
				hasSingleDot = true
				break
			}
		}
		if hasSingleDot {
			text := strings.TrimSpace(node.Utf8Text(source))
			*diagnostics = append(*diagnostics, transport.Diagnostic{
				Range:    nodeRange(node),
				Severity: transport.Hint,
				Source:   "hjkls",
				Code:     "hjkls/double_dot",
				Message: fmt.Sprintf(
					"Style: '%s' uses `.` for string concatenation. Use `..` instead. In Vim9 script, `..` is required.",
					text),
			})
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectDoubleDotHints(node.Child(i), source, diagnostics)
	}
}

// function! on an s: function; the bang is pointless there.
func collectFunctionBangHints(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "function_definition" {
		hasBang := false
		var decl *tree_sitter.Node
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			switch child.Kind() {
			case "bang":
				hasBang = true
			case "function_declaration":
				decl = child
			}
		}

		if hasBang && decl != nil && isScriptLocalDeclaration(decl, source) {
			firstLine := headerLine(node, source)
			start := node.StartPosition()
			*diagnostics = append(*diagnostics, transport.Diagnostic{
				Range: transport.Range{
					Start: transport.Position{Line: uint32(start.Row), Character: uint32(start.Column)},
					End:   transport.Position{Line: uint32(start.Row), Character: uint32(start.Column) + uint32(len(firstLine))},
				},
				Severity: transport.Hint,
				Source:   "hjkls",
				Code:     "hjkls/function_bang",
				Message: fmt.Sprintf(
					"Style: '%s' uses `function!` for script-local function. The `!` is unnecessary for `s:` functions.",
					strings.TrimSpace(firstLine)),
			})
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectFunctionBangHints(node.Child(i), source, diagnostics)
	}
}

func isScriptLocalDeclaration(decl *tree_sitter.Node, source []byte) bool {
	for i := uint(0); i < decl.ChildCount(); i++ {
		child := decl.Child(i)
		if child.Kind() != "scoped_identifier" {
			continue
		}
		for j := uint(0); j < child.ChildCount(); j++ {
			sc := child.Child(j)
			if sc.Kind() == "scope" && sc.Utf8Text(source) == "s:" {
				return true
			}
		}
	}
	return false
}

func headerLine(node *tree_sitter.Node, source []byte) string {
	text := node.Utf8Text(source)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// Functions without abort continue after errors.
func collectAbortHints(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "function_definition" {
		hasAbort := false
		for i := uint(0); i < node.ChildCount(); i++ {
			if node.Child(i).Kind() == "abort" {
				hasAbort = true
				break
			}
		}
		if !hasAbort {
			firstLine := headerLine(node, source)
			start := node.StartPosition()
			*diagnostics = append(*diagnostics, transport.Diagnostic{
				Range: transport.Range{
					Start: transport.Position{Line: uint32(start.Row), Character: uint32(start.Column)},
					End:   transport.Position{Line: uint32(start.Row), Character: uint32(start.Column) + uint32(len(firstLine))},
				},
				Severity: transport.Hint,
				Source:   "hjkls",
				Code:     "hjkls/abort",
				Message: fmt.Sprintf(
					"Style: '%s' is missing `abort` attribute. Functions without `abort` continue execution after errors.",
					strings.TrimSpace(firstLine)),
			})
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectAbortHints(node.Child(i), source, diagnostics)
	}
}

// Double quotes are only needed for escape sequences.
func collectSingleQuoteHints(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "string_literal" {
		text := node.Utf8Text(source)
		if strings.HasPrefix(text, "\"") && strings.HasSuffix(text, "\"") && len(text) >= 2 {
			content := text[1 : len(text)-1]
			if !strings.Contains(content, "\\") && !strings.Contains(content, "'") {
				*diagnostics = append(*diagnostics, transport.Diagnostic{
					Range:    nodeRange(node),
					Severity: transport.Hint,
					Source:   "hjkls",
					Code:     "hjkls/single_quote",
					Message: fmt.Sprintf(
						"Style: %s can use single quotes. Double quotes are only needed for escape sequences.",
						text),
				})
			}
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectSingleQuoteHints(node.Child(i), source, diagnostics)
	}
}

// Key notation that differs from the canonical :h key-notation form.
func collectKeyNotationHints(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "keycode" {
		text := node.Utf8Text(source)
		if normalized, ok := NormalizeKeyNotation(text); ok {
			*diagnostics = append(*diagnostics, transport.Diagnostic{
				Range:    nodeRange(node),
				Severity: transport.Hint,
				Source:   "hjkls",
				Code:     "hjkls/key_notation",
				Message: fmt.Sprintf(
					"Style: %s should be written as %s (see :h key-notation)",
					text, normalized),
			})
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectKeyNotationHints(node.Child(i), source, diagnostics)
	}
}

// recursiveMapCommands maps each recursive map command to its noremap form.
var recursiveMapCommands = map[string]string{
	"map":  "noremap",
	"nmap": "nnoremap",
	"vmap": "vnoremap",
	"xmap": "xnoremap",
	"smap": "snoremap",
	"imap": "inoremap",
	"cmap": "cnoremap",
	"omap": "onoremap",
	"lmap": "lnoremap",
	"tmap": "tnoremap",
}

// NoremapEquivalent returns the non-recursive form of a map command.
func NoremapEquivalent(cmd string) (string, bool) {
	noremap, ok := recursiveMapCommands[cmd]
	return noremap, ok
}

func isMapArgument(field string) bool {
	switch strings.ToLower(field) {
	case "<buffer>", "<nowait>", "<silent>", "<script>", "<expr>", "<unique>", "<special>":
		return true
	}
	return false
}

// <Plug> mapping definitions should not be remappable themselves, so the
// noremap variant is preferred. The grammar has no dedicated node for map
// statements, so this is a line scan like the ignore-directive parser.
func collectPlugNoremapHints(source string, diagnostics *[]transport.Diagnostic) {
	for lineNum, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		indent := len(line) - len(trimmed)

		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			continue
		}
		cmd := fields[0]
		if _, ok := recursiveMapCommands[cmd]; !ok {
			continue
		}

		// Skip map arguments like <silent> to find the lhs.
		lhs := ""
		for _, f := range fields[1:] {
			if isMapArgument(f) {
				continue
			}
			lhs = f
			break
		}
		if !strings.HasPrefix(strings.ToLower(lhs), "<plug>") {
			continue
		}

		noremap := recursiveMapCommands[cmd]
		*diagnostics = append(*diagnostics, transport.Diagnostic{
			Range: transport.Range{
				Start: transport.Position{Line: uint32(lineNum), Character: uint32(indent)},
				End:   transport.Position{Line: uint32(lineNum), Character: uint32(indent + len(cmd))},
			},
			Severity: transport.Hint,
			Source:   "hjkls",
			Code:     "hjkls/plug_noremap",
			Message: fmt.Sprintf(
				"Style: `%s` used to define a <Plug> mapping. Use `%s` so the mapping is not remappable.",
				cmd, noremap),
		})
	}
}
