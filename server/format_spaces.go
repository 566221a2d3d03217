package server

import (
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/transport"
)

// Space normalization: runs of two or more blanks between the leading
// indent and the trailing whitespace collapse to one space, except inside
// string literals and comments.

type protectedRange struct {
	startByte int
	endByte   int
}

func (r protectedRange) contains(offset int) bool {
	return offset >= r.startByte && offset < r.endByte
}

func computeSpaceEdits(source string, tree *tree_sitter.Tree) []transport.TextEdit {
	var edits []transport.TextEdit

	protected := collectProtectedRanges(source, tree)

	lineStart := 0
	for lineNum, line := range strings.Split(source, "\n") {
		edits = append(edits, normalizeLineSpaces(lineNum, line, lineStart, protected)...)
		lineStart += len(line) + 1
	}

	return edits
}

func collectProtectedRanges(source string, tree *tree_sitter.Tree) []protectedRange {
	var ranges []protectedRange

	var collect func(node *tree_sitter.Node)
	collect = func(node *tree_sitter.Node) {
		switch node.Kind() {
		case "string_literal", "comment":
			ranges = append(ranges, protectedRange{
				startByte: int(node.StartByte()),
				endByte:   int(node.EndByte()),
			})
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			collect(node.Child(i))
		}
	}
	collect(tree.RootNode())

	// Heuristic backup for comments the grammar did not produce nodes for.
	byteOffset := 0
	for _, line := range strings.Split(source, "\n") {
		if start, ok := findCommentStart(line); ok {
			rangeStart := byteOffset + start
			rangeEnd := byteOffset + len(line)
			covered := false
			for _, r := range ranges {
				if r.startByte <= rangeStart && r.endByte >= rangeEnd {
					covered = true
					break
				}
			}
			if !covered {
				ranges = append(ranges, protectedRange{startByte: rangeStart, endByte: rangeEnd})
			}
		}
		byteOffset += len(line) + 1
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].startByte < ranges[j].startByte })
	return ranges
}

func isProtected(offset int, ranges []protectedRange) bool {
	for _, r := range ranges {
		if r.contains(offset) {
			return true
		}
	}
	return false
}

func normalizeLineSpaces(lineNum int, line string, lineStart int, protected []protectedRange) []transport.TextEdit {
	var edits []transport.TextEdit

	// Leading indent belongs to the indent pass, trailing whitespace to the
	// line rules.
	trimmed := strings.TrimLeft(line, " \t")
	indentLen := len(line) - len(trimmed)
	contentEnd := len(strings.TrimRight(line, " \t"))

	i := indentLen
	for i < len(line) && i < contentEnd {
		if line[i] != ' ' && line[i] != '\t' {
			i++
			continue
		}
		spaceStart := i
		for i < len(line) && i < contentEnd && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i-spaceStart > 1 && !isProtected(lineStart+spaceStart, protected) {
			edits = append(edits, transport.TextEdit{
				Range: transport.Range{
					Start: transport.Position{Line: uint32(lineNum), Character: uint32(spaceStart)},
					End:   transport.Position{Line: uint32(lineNum), Character: uint32(i)},
				},
				NewText: " ",
			})
		}
	}

	return edits
}
