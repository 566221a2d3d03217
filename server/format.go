package server

import (
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/transport"
)

// Format produces the text edits that format source according to config.
// Edits come out sorted by position in reverse order so sequential
// application is safe; duplicate ranges are removed.
func Format(source string, tree *tree_sitter.Tree, config FormatConfig) []transport.TextEdit {
	var edits []transport.TextEdit

	edits = append(edits, computeIndentEdits(source, tree, config)...)

	if config.NormalizeSpaces {
		edits = append(edits, computeSpaceEdits(source, tree)...)
	}

	edits = append(edits, computeLineEdits(source, config)...)

	sort.SliceStable(edits, func(i, j int) bool {
		a, b := edits[i].Range.Start, edits[j].Range.Start
		if a.Line != b.Line {
			return a.Line > b.Line
		}
		return a.Character > b.Character
	})

	deduped := edits[:0]
	for i, edit := range edits {
		if i > 0 && edit.Range == edits[i-1].Range {
			continue
		}
		deduped = append(deduped, edit)
	}

	return deduped
}

// ApplyEdits applies reverse-sorted edits to source. Used by tests and the
// idempotence checks; the client applies the wire edits itself.
func ApplyEdits(source string, edits []transport.TextEdit) string {
	result := source
	for _, edit := range edits {
		start, okStart := positionToOffset(result, edit.Range.Start)
		end, okEnd := positionToOffset(result, edit.Range.End)
		if !okStart || !okEnd || start > end || end > len(result) {
			continue
		}
		result = result[:start] + edit.NewText + result[end:]
	}
	return result
}

func positionToOffset(source string, pos transport.Position) (int, bool) {
	offset := 0
	line := 0
	for _, l := range strings.Split(source, "\n") {
		if line == int(pos.Line) {
			char := int(pos.Character)
			if char > len(l) {
				char = len(l)
			}
			return offset + char, true
		}
		offset += len(l) + 1
		line++
	}
	return 0, false
}

// Line-level rules: trailing whitespace and the final newline.
func computeLineEdits(source string, config FormatConfig) []transport.TextEdit {
	var edits []transport.TextEdit

	lines := strings.Split(source, "\n")

	if config.TrimTrailingWhitespace {
		for lineNum, line := range lines {
			trimmed := strings.TrimRight(line, " \t")
			if len(trimmed) < len(line) {
				edits = append(edits, transport.TextEdit{
					Range: transport.Range{
						Start: transport.Position{Line: uint32(lineNum), Character: uint32(len(trimmed))},
						End:   transport.Position{Line: uint32(lineNum), Character: uint32(len(line))},
					},
					NewText: "",
				})
			}
		}
	}

	if config.InsertFinalNewline && !strings.HasSuffix(source, "\n") {
		lastLine := 0
		lastLen := 0
		if source != "" {
			lastLine = len(lines) - 1
			lastLen = len(lines[lastLine])
		}
		pos := transport.Position{Line: uint32(lastLine), Character: uint32(lastLen)}
		edits = append(edits, transport.TextEdit{
			Range:   transport.Range{Start: pos, End: pos},
			NewText: "\n",
		})
	}

	return edits
}
