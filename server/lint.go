package server

import (
	"fmt"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

// Correctness lints: autoload-file-missing, arity mismatch, scope
// violations, undefined functions.

func nodeRange(node *tree_sitter.Node) transport.Range {
	start := node.StartPosition()
	end := node.EndPosition()
	return transport.Range{
		Start: transport.Position{Line: uint32(start.Row), Character: uint32(start.Column)},
		End:   transport.Position{Line: uint32(end.Row), Character: uint32(end.Column)},
	}
}

// findAutoloadFile resolves an autoload reference to an existing file.
// Search order: directory of the current document, each workspace root,
// the Vim runtime path.
func (s *Server) findAutoloadFile(ref *parser.AutoloadRef, docURI util.URI) (util.Path, bool) {
	relative := filepath.FromSlash(ref.FilePath())

	if docURI != "" {
		if docPath, err := util.URI2Path(docURI); err == nil {
			candidate := filepath.Join(filepath.Dir(docPath), relative)
			if util.IsValidPath(candidate) {
				return candidate, true
			}
		}
	}

	for _, root := range s.Workspace.Roots() {
		candidate := filepath.Join(root, relative)
		if util.IsValidPath(candidate) {
			return candidate, true
		}
	}

	if s.vimruntime != "" {
		candidate := filepath.Join(s.vimruntime, relative)
		if util.IsValidPath(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// collectAutoloadWarnings flags autoload calls whose expected file does not
// resolve anywhere.
func (s *Server) collectAutoloadWarnings(node *tree_sitter.Node, source []byte, docURI util.URI, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "call_expression" {
		if callee := node.Child(0); callee != nil {
			name := callee.Utf8Text(source)
			if ref := parser.ParseAutoloadRef(name); ref != nil {
				if _, ok := s.findAutoloadFile(ref, docURI); !ok {
					*diagnostics = append(*diagnostics, transport.Diagnostic{
						Range:    nodeRange(callee),
						Severity: transport.Warning,
						Source:   "hjkls",
						Code:     "hjkls/autoload_missing",
						Message:  "Autoload file not found: " + ref.FilePath(),
					})
				}
			}
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		s.collectAutoloadWarnings(node.Child(i), source, docURI, diagnostics)
	}
}

// collectArityWarnings checks call argument counts against signatures from
// the builtin table or local function symbols. Autoload callees are handled
// by the autoload lint.
func collectArityWarnings(node *tree_sitter.Node, source []byte, symbols []parser.Symbol, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "call_expression" {
		if callee := node.Child(0); callee != nil {
			name := callee.Utf8Text(source)
			if name != "" && !strings.Contains(name, "#") {
				if sig, ok := lookupSignature(name, symbols); ok {
					minArgs, maxArgs := paramCountRange(sig)
					actual := countCallArguments(node)

					var message string
					if actual < minArgs {
						message = fmt.Sprintf(
							"Too few arguments: %s requires at least %d argument(s), got %d",
							name, minArgs, actual)
					} else if maxArgs >= 0 && actual > maxArgs {
						message = fmt.Sprintf(
							"Too many arguments: %s accepts at most %d argument(s), got %d",
							name, maxArgs, actual)
					}

					if message != "" {
						start := callee.StartPosition()
						end := node.EndPosition()
						*diagnostics = append(*diagnostics, transport.Diagnostic{
							Range: transport.Range{
								Start: transport.Position{Line: uint32(start.Row), Character: uint32(start.Column)},
								End:   transport.Position{Line: uint32(end.Row), Character: uint32(end.Column)},
							},
							Severity: transport.Warning,
							Source:   "hjkls",
							Code:     "hjkls/arity_mismatch",
							Message:  message,
						})
					}
				}
			}
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectArityWarnings(node.Child(i), source, symbols, diagnostics)
	}
}

func lookupSignature(name string, symbols []parser.Symbol) (string, bool) {
	if builtin, ok := LookupBuiltinFunction(name); ok {
		return builtin.Signature, true
	}
	for _, sym := range symbols {
		if sym.Kind == parser.Function && sym.FullName() == name && sym.Signature != "" {
			return sym.Signature, true
		}
	}
	return "", false
}

// collectScopeViolations flags l: identifiers and a: nodes outside any
// function definition.
func collectScopeViolations(node *tree_sitter.Node, source []byte, insideFunction bool, diagnostics *[]transport.Diagnostic) {
	inFunc := insideFunction || node.Kind() == "function_definition"

	if node.Kind() == "scoped_identifier" && !inFunc {
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child.Kind() != "scope" {
				continue
			}
			scopeText := child.Utf8Text(source)
			if scopeText == "l:" || scopeText == "a:" {
				name := node.Utf8Text(source)
				*diagnostics = append(*diagnostics, transport.Diagnostic{
					Range:    nodeRange(node),
					Severity: transport.Warning,
					Source:   "hjkls",
					Code:     "hjkls/scope_violation",
					Message: fmt.Sprintf(
						"Scope violation: '%s' is only valid inside a function", name),
				})
			}
		}
	}

	// The grammar produces a bare "a:" node for argument references.
	if node.Kind() == "a:" && !inFunc {
		*diagnostics = append(*diagnostics, transport.Diagnostic{
			Range:    nodeRange(node),
			Severity: transport.Warning,
			Source:   "hjkls",
			Code:     "hjkls/scope_violation",
			Message:  "Scope violation: 'a:' is only valid inside a function",
		})
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectScopeViolations(node.Child(i), source, inFunc, diagnostics)
	}
}

// collectUndefinedFunctionWarnings flags calls to functions that are not
// builtin, not defined locally, and not defined in any indexed file. Dynamic
// callees cannot be checked statically and are skipped.
func (s *Server) collectUndefinedFunctionWarnings(tree *tree_sitter.Tree, source []byte, uri util.URI, diagnostics *[]transport.Diagnostic) {
	localSymbols := s.Store.GetSymbols(uri, string(source))

	// Workspace-visible functions; skipped entirely until indexing is done.
	var workspaceFunctions map[string]struct{}
	if s.Workspace.IndexingComplete() {
		workspaceFunctions = make(map[string]struct{})
		for fileURI, sf := range s.Store.Snapshot() {
			if fileURI == uri {
				continue
			}
			for _, sym := range sf.symbols {
				if sym.Kind != parser.Function || sym.Scope == parser.Script {
					continue
				}
				workspaceFunctions[sym.FullName()] = struct{}{}
			}
		}
	}

	s.collectUndefinedRecursive(tree.RootNode(), source, localSymbols, workspaceFunctions, diagnostics)
}

func (s *Server) collectUndefinedRecursive(node *tree_sitter.Node, source []byte, localSymbols []parser.Symbol, workspaceFunctions map[string]struct{}, diagnostics *[]transport.Diagnostic) {
	if node.Kind() == "call_expression" {
		if callee := node.Child(0); callee != nil {
			name := callee.Utf8Text(source)
			kind := callee.Kind()

			// Dynamic callees: dictionary methods, subscripted lookups,
			// argument references and function-local variables.
			isDynamic := kind == "field_expression" ||
				kind == "index_expression" ||
				kind == "argument" ||
				(kind == "scoped_identifier" && strings.HasPrefix(name, "l:"))

			// Lambdas and funcrefs stored in variables look like plain
			// identifier calls.
			isVariableCall := false
			if kind == "identifier" {
				for _, sym := range localSymbols {
					if sym.Kind == parser.Variable && sym.Name == name {
						isVariableCall = true
						break
					}
				}
			}

			if name != "" && !strings.Contains(name, "#") && !isDynamic && !isVariableCall {
				if isFunctionUndefined(name, localSymbols, workspaceFunctions) {
					*diagnostics = append(*diagnostics, transport.Diagnostic{
						Range:    nodeRange(callee),
						Severity: transport.Warning,
						Source:   "hjkls",
						Code:     "hjkls/undefined_function",
						Message:  "Undefined function: " + name,
					})
				}
			}
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		s.collectUndefinedRecursive(node.Child(i), source, localSymbols, workspaceFunctions, diagnostics)
	}
}

func isFunctionUndefined(name string, localSymbols []parser.Symbol, workspaceFunctions map[string]struct{}) bool {
	if IsBuiltinFunction(name) {
		return false
	}

	definedLocally := func() bool {
		for _, sym := range localSymbols {
			if sym.Kind == parser.Function && sym.FullName() == name {
				return true
			}
		}
		return false
	}

	inWorkspace := func() bool {
		_, ok := workspaceFunctions[name]
		return ok
	}

	// s:Name must be defined in the same file.
	if strings.HasPrefix(name, "s:") {
		return !definedLocally()
	}

	// g:Name and everything else may come from the workspace too.
	if definedLocally() {
		return false
	}
	return !inWorkspace()
}
