package server

import (
	"context"
	"encoding/json"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/transport"
)

// FoldingRanges emits one region per multi-line block node.
func FoldingRanges(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.FoldingRangeParams
	json.Unmarshal(par, &params)

	doc, ok := s.Documents.Get(params.TextDocument.URI)
	if !ok {
		return null, nil
	}

	var ranges []transport.FoldingRange
	collectFoldingRanges(doc.Tree.RootNode(), &ranges)

	if len(ranges) == 0 {
		return null, nil
	}
	return marshalResult(ranges)
}

func collectFoldingRanges(node *tree_sitter.Node, ranges *[]transport.FoldingRange) {
	switch node.Kind() {
	case "function_definition", "if_statement", "for_loop", "while_loop", "try_statement", "augroup":
		startLine := uint32(node.StartPosition().Row)
		endLine := uint32(node.EndPosition().Row)
		if endLine > startLine {
			*ranges = append(*ranges, transport.FoldingRange{
				StartLine: startLine,
				EndLine:   endLine,
				Kind:      transport.RegionFoldingRange,
			})
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectFoldingRanges(node.Child(i), ranges)
	}
}

// SelectionRanges builds the innermost-to-outermost named-ancestor chain at
// each position, dropping ancestors whose range equals their child's.
func SelectionRanges(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.SelectionRangeParams
	json.Unmarshal(par, &params)

	doc, ok := s.Documents.Get(params.TextDocument.URI)
	if !ok {
		return null, nil
	}

	var result []transport.SelectionRange
	for _, pos := range params.Positions {
		if sel := buildSelectionRange(doc.Tree, pos); sel != nil {
			result = append(result, *sel)
		}
	}

	if len(result) == 0 {
		return null, nil
	}
	return marshalResult(result)
}

func buildSelectionRange(tree *tree_sitter.Tree, pos transport.Position) *transport.SelectionRange {
	point := tree_sitter.Point{Row: uint(pos.Line), Column: uint(pos.Character)}
	node := tree.RootNode().NamedDescendantForPointRange(point, point)
	if node == nil {
		return nil
	}

	var ranges []transport.Range
	for node != nil {
		r := nodeRange(node)
		if len(ranges) == 0 || ranges[len(ranges)-1] != r {
			ranges = append(ranges, r)
		}
		node = node.Parent()
	}

	// Link outermost to innermost.
	var result *transport.SelectionRange
	for i := len(ranges) - 1; i >= 0; i-- {
		result = &transport.SelectionRange{Range: ranges[i], Parent: result}
	}
	return result
}
