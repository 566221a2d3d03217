package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// RefLocation is a name-token range inside a single file.
type RefLocation struct {
	Start Point
	End   Point
}

// RefWithKind is a reference classified as declaration or use.
type RefWithKind struct {
	Location      RefLocation
	IsDeclaration bool
}

// CallInfo describes the call expression enclosing a position.
type CallInfo struct {
	FuncName string
	// Zero-based index of the parameter under the cursor
	ActiveParam uint32
	Autoload    *AutoloadRef
}

func toPoint(p tree_sitter.Point) Point {
	return Point{Row: uint32(p.Row), Column: uint32(p.Column)}
}

// NodeRange converts a node's extent to a pair of points.
func NodeRange(node *tree_sitter.Node) RefLocation {
	return RefLocation{
		Start: toPoint(node.StartPosition()),
		End:   toPoint(node.EndPosition()),
	}
}

func pointWithin(node *tree_sitter.Node, row, col uint32) bool {
	start := node.StartPosition()
	end := node.EndPosition()
	if uint(row) < start.Row || uint(row) > end.Row {
		return false
	}
	if uint(row) == start.Row && uint(col) < start.Column {
		return false
	}
	if uint(row) == end.Row && uint(col) > end.Column {
		return false
	}
	return true
}

// FindIdentifierAtPosition finds the identifier at the given position. The
// innermost matching node wins; nil when the position holds no identifier.
func FindIdentifierAtPosition(tree *tree_sitter.Tree, source []byte, row, col uint32) *Reference {
	return findIdentifierInNode(tree.RootNode(), source, row, col)
}

func findIdentifierInNode(node *tree_sitter.Node, source []byte, row, col uint32) *Reference {
	if !pointWithin(node, row, col) {
		return nil
	}

	// Children first for the most specific match
	for i := uint(0); i < node.ChildCount(); i++ {
		if ref := findIdentifierInNode(node.Child(i), source, row, col); ref != nil {
			return ref
		}
	}

	switch node.Kind() {
	case "identifier":
		// The name token inside a scoped_identifier resolves through its
		// parent so the scope prefix is not lost.
		if p := node.Parent(); p != nil && p.Kind() == "scoped_identifier" {
			return referenceFromScopedIdentifier(p, source)
		}
		name := node.Utf8Text(source)
		parent := node.Parent()
		isCall := parent != nil && parent.Kind() == "call_expression"

		var autoload *AutoloadRef
		if isCall {
			autoload = ParseAutoloadRef(name)
		}
		return &Reference{
			Name:     name,
			Scope:    Implicit,
			IsCall:   isCall,
			Autoload: autoload,
		}
	case "scoped_identifier":
		return referenceFromScopedIdentifier(node, source)
	}
	return nil
}

func referenceFromScopedIdentifier(node *tree_sitter.Node, source []byte) *Reference {
	scopeNode, identNode := scopedIdentifierParts(node)
	if scopeNode == nil || identNode == nil {
		return nil
	}
	parent := node.Parent()
	isCall := parent != nil && parent.Kind() == "call_expression"
	return &Reference{
		Name:   identNode.Utf8Text(source),
		Scope:  ScopeFromString(scopeNode.Utf8Text(source)),
		IsCall: isCall,
	}
}

func scopedIdentifierParts(node *tree_sitter.Node) (scope, ident *tree_sitter.Node) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "scope":
			if scope == nil {
				scope = child
			}
		case "identifier":
			if ident == nil {
				ident = child
			}
		}
	}
	return scope, ident
}

// FindCallAtPosition walks upward from the position to the enclosing
// call_expression and computes the active parameter from the commas between
// the opening paren and the cursor.
func FindCallAtPosition(tree *tree_sitter.Tree, source []byte, row, col uint32) *CallInfo {
	point := tree_sitter.Point{Row: uint(row), Column: uint(col)}
	node := tree.RootNode().DescendantForPointRange(point, point)
	if node == nil {
		return nil
	}

	for node != nil && node.Kind() != "call_expression" {
		node = node.Parent()
	}
	if node == nil {
		return nil
	}

	callee := node.Child(0)
	if callee == nil {
		return nil
	}
	name := callee.Utf8Text(source)

	// Nested calls are their own call_expression nodes, so every direct
	// comma child is at depth 0.
	var active uint32
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "," {
			continue
		}
		start := child.StartPosition()
		if start.Row < uint(row) || (start.Row == uint(row) && start.Column < uint(col)) {
			active++
		}
	}

	return &CallInfo{
		FuncName:    name,
		ActiveParam: active,
		Autoload:    ParseAutoloadRef(name),
	}
}

// FindReferences finds every identifier matching (name, scope). An Implicit
// query scope matches any scope; a non-Implicit query must match exactly.
// When includeDecl is false, declaration sites are excluded.
func FindReferences(tree *tree_sitter.Tree, source []byte, name string, scope VimScope, includeDecl bool) []RefLocation {
	refs := FindReferencesWithKind(tree, source, name, scope)
	locations := make([]RefLocation, 0, len(refs))
	for _, r := range refs {
		if !includeDecl && r.IsDeclaration {
			continue
		}
		locations = append(locations, r.Location)
	}
	return locations
}

// FindReferencesWithKind finds matching identifiers and classifies each as
// declaration or use.
func FindReferencesWithKind(tree *tree_sitter.Tree, source []byte, name string, scope VimScope) []RefWithKind {
	var refs []RefWithKind
	collectReferences(tree.RootNode(), source, name, scope, &refs)
	return refs
}

func collectReferences(node *tree_sitter.Node, source []byte, name string, scope VimScope, refs *[]RefWithKind) {
	switch node.Kind() {
	case "identifier":
		// Identifiers inside scoped_identifiers are handled by their parent
		if p := node.Parent(); p != nil && p.Kind() == "scoped_identifier" {
			break
		}
		if node.Utf8Text(source) == name && (scope == Implicit) {
			*refs = append(*refs, RefWithKind{
				Location:      NodeRange(node),
				IsDeclaration: isDeclarationSite(node),
			})
		}
	case "scoped_identifier":
		scopeNode, identNode := scopedIdentifierParts(node)
		if scopeNode == nil || identNode == nil {
			break
		}
		nodeScope := ScopeFromString(scopeNode.Utf8Text(source))
		if identNode.Utf8Text(source) != name {
			break
		}
		if scope != Implicit && nodeScope != scope {
			break
		}
		*refs = append(*refs, RefWithKind{
			Location:      NodeRange(identNode),
			IsDeclaration: isDeclarationSite(node),
		})
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectReferences(node.Child(i), source, name, scope, refs)
	}
}

// isDeclarationSite reports whether node is the declared name of a
// definition rather than a use.
func isDeclarationSite(node *tree_sitter.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case "function_declaration", "function_definition", "parameters":
		return true
	case "let_statement", "const_statement":
		// Only the left-hand side is a declaration; the assigned value may
		// reference the same name.
		for i := uint(0); i < parent.NamedChildCount(); i++ {
			child := parent.NamedChild(i)
			kind := child.Kind()
			if kind == "identifier" || kind == "scoped_identifier" {
				return child.StartByte() == node.StartByte() && child.EndByte() == node.EndByte()
			}
		}
	}
	return false
}
