package server

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/transport"
)

// Suspicious lints (Warning severity): patterns that may behave
// unexpectedly without being outright bugs.

func collectSuspiciousWarnings(tree *tree_sitter.Tree, source []byte) []transport.Diagnostic {
	var diagnostics []transport.Diagnostic
	root := tree.RootNode()

	collectNormalBangWarnings(root, source, &diagnostics)
	collectMatchCaseWarnings(root, source, &diagnostics)
	collectAutocmdGroupWarnings(root, source, false, &diagnostics)
	collectSetCompatibleWarnings(root, source, &diagnostics)
	collectVim9scriptPositionWarnings(root, source, &diagnostics)

	return diagnostics
}

// normal without ! lets user mappings interfere.
func collectNormalBangWarnings(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "normal_statement" {
		hasBang := false
		for i := uint(0); i < node.ChildCount(); i++ {
			if node.Child(i).Kind() == "bang" {
				hasBang = true
				break
			}
		}
		if !hasBang {
			text := strings.TrimSpace(node.Utf8Text(source))
			*diagnostics = append(*diagnostics, transport.Diagnostic{
				Range:    nodeRange(node),
				Severity: transport.Warning,
				Source:   "hjkls",
				Code:     "hjkls/normal_bang",
				Message: fmt.Sprintf(
					"Suspicious: '%s' uses `normal` without `!`. User mappings may interfere. Use `normal!` instead.",
					text),
			})
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectNormalBangWarnings(node.Child(i), source, diagnostics)
	}
}

// =~ without a case modifier depends on 'ignorecase'.
func collectMatchCaseWarnings(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "binary_operation" {
		hasMatchOp := false
		hasCaseModifier := false
		for i := uint(0); i < node.ChildCount(); i++ {
			switch node.Child(i).Kind() {
			case "=~":
				hasMatchOp = true
			case "match_case":
				hasCaseModifier = true
			}
		}
		if hasMatchOp && !hasCaseModifier {
			text := strings.TrimSpace(node.Utf8Text(source))
			*diagnostics = append(*diagnostics, transport.Diagnostic{
				Range:    nodeRange(node),
				Severity: transport.Warning,
				Source:   "hjkls",
				Code:     "hjkls/match_case",
				Message: fmt.Sprintf(
					"Suspicious: '%s' uses `=~` without case modifier. Behavior depends on 'ignorecase' option. Use `=~#` (case-sensitive) or `=~?` (case-insensitive) instead.",
					text),
			})
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectMatchCaseWarnings(node.Child(i), source, diagnostics)
	}
}

// autocmd registrations outside an augroup duplicate on reload. The grammar
// places `augroup Name` and `augroup END` as siblings of the autocmds, so
// the open/close state is tracked across siblings; the name END
// (case-insensitive) closes.
func collectAutocmdGroupWarnings(node *tree_sitter.Node, source []byte, insideAugroup bool, diagnostics *[]transport.Diagnostic) bool {
	if node.Kind() == "augroup_statement" {
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child.Kind() == "augroup_name" {
				return !strings.EqualFold(child.Utf8Text(source), "END")
			}
		}
		return insideAugroup
	}

	if node.Kind() == "autocmd_statement" && !insideAugroup {
		hasEvents := false
		hasInlineGroup := false
		for i := uint(0); i < node.ChildCount(); i++ {
			switch node.Child(i).Kind() {
			case "au_event_list":
				hasEvents = true
			case "augroup_name":
				// autocmd MyGroup BufRead ... is valid outside a block
				hasInlineGroup = true
			}
		}

		// autocmd! with no events just clears, which is fine.
		if hasEvents && !hasInlineGroup {
			text := node.Utf8Text(source)
			firstLine := text
			if i := strings.IndexByte(text, '\n'); i >= 0 {
				firstLine = text[:i]
			}
			*diagnostics = append(*diagnostics, transport.Diagnostic{
				Range:    nodeRange(node),
				Severity: transport.Warning,
				Source:   "hjkls",
				Code:     "hjkls/autocmd_group",
				Message: fmt.Sprintf(
					"Suspicious: '%s' is defined outside of an augroup. This may cause duplicate autocmds on reload. Wrap in `augroup` with `autocmd!` to clear.",
					strings.TrimSpace(firstLine)),
			})
		}
	}

	current := insideAugroup
	for i := uint(0); i < node.ChildCount(); i++ {
		current = collectAutocmdGroupWarnings(node.Child(i), source, current, diagnostics)
	}

	// Augroup state does not leak upward past this node's siblings.
	return insideAugroup
}

// set compatible enables Vi-compatible mode, which is rarely intended.
// `set nocompatible` parses as no_option -> option_name, so only bare
// option_name children of set_item match.
func collectSetCompatibleWarnings(node *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "set_statement" {
		for i := uint(0); i < node.ChildCount(); i++ {
			item := node.Child(i)
			if item.Kind() != "set_item" {
				continue
			}
			for j := uint(0); j < item.ChildCount(); j++ {
				child := item.Child(j)
				if child.Kind() != "option_name" {
					continue
				}
				name := child.Utf8Text(source)
				if name == "compatible" || name == "cp" {
					text := strings.TrimSpace(node.Utf8Text(source))
					*diagnostics = append(*diagnostics, transport.Diagnostic{
						Range:    nodeRange(node),
						Severity: transport.Warning,
						Source:   "hjkls",
						Code:     "hjkls/set_compatible",
						Message: fmt.Sprintf(
							"Suspicious: '%s' enables Vi-compatible mode, which disables many Vim features. Is this intended?",
							text),
					})
				}
			}
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectSetCompatibleWarnings(node.Child(i), source, diagnostics)
	}
}

// vim9script must be the very first statement. The grammar parses it as
// unknown_builtin_statement with unknown_command_name "vim" and arguments
// containing "9script".
func collectVim9scriptPositionWarnings(root *tree_sitter.Node, source []byte, diagnostics *[]transport.Diagnostic) {
	if root.Kind() != "script_file" {
		return
	}

	isFirstStatement := true
	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)

		if child.Kind() == "unknown_builtin_statement" && isVim9scriptNode(child, source) {
			if !isFirstStatement {
				*diagnostics = append(*diagnostics, transport.Diagnostic{
					Range:    nodeRange(child),
					Severity: transport.Warning,
					Source:   "hjkls",
					Code:     "hjkls/vim9script_position",
					Message:  "Suspicious: `vim9script` must be at the very first line of the file.",
				})
			}
			return
		}

		// Anything before vim9script counts, comments included.
		isFirstStatement = false
	}
}

func isVim9scriptNode(node *tree_sitter.Node, source []byte) bool {
	hasVim := false
	has9script := false
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "unknown_command_name":
			if child.Utf8Text(source) == "vim" {
				hasVim = true
			}
		case "arguments":
			if strings.Contains(child.Utf8Text(source), "9script") {
				has9script = true
			}
		}
	}
	return hasVim && has9script
}
