package parser

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// ExtractSymbols walks the tree and returns every function and variable
// declaration in source order. The walk descends through unknown nodes, so
// declarations inside function bodies are still found.
func ExtractSymbols(tree *tree_sitter.Tree, source []byte) []Symbol {
	var symbols []Symbol
	extractFromNode(tree.RootNode(), source, &symbols)
	return symbols
}

func extractFromNode(node *tree_sitter.Node, source []byte, symbols *[]Symbol) {
	switch node.Kind() {
	case "function_definition":
		if sym, ok := extractFunctionSymbol(node, source); ok {
			*symbols = append(*symbols, sym)
		}
	case "let_statement", "const_statement":
		if sym, ok := extractVariableSymbol(node, source); ok {
			*symbols = append(*symbols, sym)
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		extractFromNode(node.Child(i), source, symbols)
	}
}

func extractFunctionSymbol(node *tree_sitter.Node, source []byte) (Symbol, bool) {
	decl := node.ChildByFieldName("name")
	if decl == nil {
		for i := uint(0); i < node.ChildCount(); i++ {
			if node.Child(i).Kind() == "function_declaration" {
				decl = node.Child(i)
				break
			}
		}
	}
	if decl == nil {
		return Symbol{}, false
	}

	name, scope, start, end, ok := extractNameAndScope(decl, source)
	if !ok {
		return Symbol{}, false
	}

	params := extractFunctionParams(decl, source)
	signature := name + "(" + strings.Join(params, ", ") + ")"

	return Symbol{
		Name:      name,
		Scope:     scope,
		Kind:      Function,
		Start:     start,
		End:       end,
		Signature: signature,
	}, true
}

func extractVariableSymbol(node *tree_sitter.Node, source []byte) (Symbol, bool) {
	var nameNode *tree_sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		kind := node.Child(i).Kind()
		if kind == "identifier" || kind == "scoped_identifier" {
			nameNode = node.Child(i)
			break
		}
	}
	if nameNode == nil {
		return Symbol{}, false
	}

	name, scope, start, end, ok := extractNameAndScope(nameNode, source)
	if !ok {
		return Symbol{}, false
	}

	return Symbol{
		Name:  name,
		Scope: scope,
		Kind:  Variable,
		Start: start,
		End:   end,
	}, true
}

func extractNameAndScope(node *tree_sitter.Node, source []byte) (string, VimScope, Point, Point, bool) {
	switch node.Kind() {
	case "identifier":
		return node.Utf8Text(source), Implicit,
			toPoint(node.StartPosition()), toPoint(node.EndPosition()), true
	case "scoped_identifier":
		scopeNode, identNode := scopedIdentifierParts(node)
		if scopeNode == nil || identNode == nil {
			return "", Implicit, Point{}, Point{}, false
		}
		return identNode.Utf8Text(source),
			ScopeFromString(scopeNode.Utf8Text(source)),
			toPoint(identNode.StartPosition()), toPoint(identNode.EndPosition()), true
	case "function_declaration":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			kind := child.Kind()
			if kind == "identifier" || kind == "scoped_identifier" {
				return extractNameAndScope(child, source)
			}
		}
	}
	return "", Implicit, Point{}, Point{}, false
}

func extractFunctionParams(decl *tree_sitter.Node, source []byte) []string {
	var params []string
	for i := uint(0); i < decl.ChildCount(); i++ {
		child := decl.Child(i)
		if child.Kind() != "parameters" {
			continue
		}
		for j := uint(0); j < child.ChildCount(); j++ {
			param := child.Child(j)
			if param.Kind() == "identifier" {
				params = append(params, param.Utf8Text(source))
			}
		}
	}
	return params
}
