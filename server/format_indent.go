package server

import (
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/transport"
)

// AST-driven indentation. The tree decides what indents, so keywords inside
// comments or strings never shift anything.

func computeIndentEdits(source string, tree *tree_sitter.Tree, config FormatConfig) []transport.TextEdit {
	var edits []transport.TextEdit
	lines := strings.Split(source, "\n")
	levels := computeIndentLevels(source, tree, config)

	for lineNum, line := range lines {
		if lineNum >= len(levels) {
			break
		}
		if edit, ok := lineIndentEdit(lineNum, line, levels[lineNum], config); ok {
			edits = append(edits, edit)
		}
	}
	return edits
}

// computeIndentLevels returns the expected indent (in columns) per line.
func computeIndentLevels(source string, tree *tree_sitter.Tree, config FormatConfig) []int {
	lines := strings.Split(source, "\n")
	levels := make([]int, len(lines))
	if len(lines) == 0 {
		return levels
	}

	root := tree.RootNode()
	computeASTIndentLevels(source, root, levels, config.IndentWidth)
	computeAugroupIndentLevels(source, root, levels, config.IndentWidth)

	// Line continuations: base is the indent of the previous
	// non-continuation line.
	continuationIndent := config.EffectiveLineContinuationIndent()
	inContinuation := false
	continuationBase := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "\\") {
			if !inContinuation {
				inContinuation = true
				if i > 0 {
					continuationBase = levels[i-1]
				}
			}
			levels[i] = continuationBase + continuationIndent
		} else {
			inContinuation = false
		}
	}

	return levels
}

func computeASTIndentLevels(source string, node *tree_sitter.Node, levels []int, indentWidth int) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if isBlockNode(child.Kind()) {
			indentBlockBody(source, child, levels, indentWidth)
		}
		computeASTIndentLevels(source, child, levels, indentWidth)
	}
}

func isBlockNode(kind string) bool {
	switch kind {
	case "function_definition", "if_statement", "for_loop", "while_loop", "try_statement":
		return true
	}
	return false
}

func indentBlockBody(source string, node *tree_sitter.Node, levels []int, indentWidth int) {
	startLine := node.StartPosition().Row
	endLine := node.EndPosition().Row
	if startLine >= endLine {
		// Single-line blocks get no body indent.
		return
	}

	switch node.Kind() {
	case "function_definition", "for_loop", "while_loop":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child.Kind() == "body" {
				indentBodyNode(source, child, levels, indentWidth)
			}
		}
	case "if_statement":
		// The if body plus the bodies nested inside sibling elseif/else.
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			switch child.Kind() {
			case "body":
				indentBodyNode(source, child, levels, indentWidth)
			case "elseif_statement", "else_statement":
				for j := uint(0); j < child.ChildCount(); j++ {
					if child.Child(j).Kind() == "body" {
						indentBodyNode(source, child.Child(j), levels, indentWidth)
					}
				}
			}
		}
	case "try_statement":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			switch child.Kind() {
			case "body":
				indentBodyNode(source, child, levels, indentWidth)
			case "catch_statement", "finally_statement":
				for j := uint(0); j < child.ChildCount(); j++ {
					if child.Child(j).Kind() == "body" {
						indentBodyNode(source, child.Child(j), levels, indentWidth)
					}
				}
			}
		}
	}
}

func indentBodyNode(source string, body *tree_sitter.Node, levels []int, indentWidth int) {
	startPos := body.StartPosition()
	end := body.EndPosition().Row

	// A body that begins mid-line (e.g. right after `else`) must not indent
	// its first line; that line belongs to the header.
	skipFirstLine := false
	if startPos.Column > 0 {
		lines := strings.Split(source, "\n")
		if int(startPos.Row) < len(lines) {
			line := lines[startPos.Row]
			col := int(startPos.Column)
			if col > len(line) {
				col = len(line)
			}
			skipFirstLine = strings.TrimSpace(line[:col]) != ""
		}
	}

	start := startPos.Row
	if skipFirstLine {
		start++
	}

	for line := start; line < end; line++ {
		if int(line) < len(levels) {
			levels[line] += indentWidth
		}
	}
}

// Augroups are paired, not nested: the grammar emits `augroup Name` and
// `augroup END` as separate sibling nodes, so lines strictly between an
// open and its matching END get one extra level.
func computeAugroupIndentLevels(source string, root *tree_sitter.Node, levels []int, indentWidth int) {
	type augroupLine struct {
		line  int
		isEnd bool
	}
	var augroups []augroupLine

	lines := strings.Split(source, "\n")
	var collect func(node *tree_sitter.Node)
	collect = func(node *tree_sitter.Node) {
		if node.Kind() == "augroup_statement" {
			line := int(node.StartPosition().Row)
			if line < len(lines) {
				trimmed := strings.TrimSpace(lines[line])
				isEnd := strings.EqualFold(trimmed, "augroup END") ||
					strings.EqualFold(trimmed, "augroup! END")
				augroups = append(augroups, augroupLine{line: line, isEnd: isEnd})
			}
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			collect(node.Child(i))
		}
	}
	collect(root)

	sort.Slice(augroups, func(i, j int) bool { return augroups[i].line < augroups[j].line })

	var stack []int
	for _, ag := range augroups {
		if ag.isEnd {
			if len(stack) > 0 {
				open := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for l := open + 1; l < ag.line; l++ {
					if l < len(levels) {
						levels[l] += indentWidth
					}
				}
			}
		} else {
			stack = append(stack, ag.line)
		}
	}
}

// lineIndentEdit builds the edit replacing a line's leading whitespace with
// the expected prefix, or nothing if it already matches.
func lineIndentEdit(lineNum int, line string, expected int, config FormatConfig) (transport.TextEdit, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		// Empty lines keep whatever indent they have; the trailing
		// whitespace rule cleans them up.
		return transport.TextEdit{}, false
	}

	currentIndent := len(line) - len(trimmed)
	current := line[:currentIndent]

	var expectedStr string
	if config.UseTabs {
		tabs := expected / config.IndentWidth
		spaces := expected % config.IndentWidth
		expectedStr = strings.Repeat("\t", tabs) + strings.Repeat(" ", spaces)
	} else {
		expectedStr = strings.Repeat(" ", expected)
	}

	if current == expectedStr {
		return transport.TextEdit{}, false
	}

	return transport.TextEdit{
		Range: transport.Range{
			Start: transport.Position{Line: uint32(lineNum), Character: 0},
			End:   transport.Position{Line: uint32(lineNum), Character: uint32(currentIndent)},
		},
		NewText: expectedStr,
	}, true
}
