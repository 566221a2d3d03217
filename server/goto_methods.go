package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

func refLocationRange(loc parser.RefLocation) transport.Range {
	return transport.Range{
		Start: transport.Position{Line: loc.Start.Row, Character: loc.Start.Column},
		End:   transport.Position{Line: loc.End.Row, Character: loc.End.Column},
	}
}

func symbolRange(sym parser.Symbol) transport.Range {
	return transport.Range{
		Start: transport.Position{Line: sym.Start.Row, Character: sym.Start.Column},
		End:   transport.Position{Line: sym.End.Row, Character: sym.End.Column},
	}
}

// referenceAtPosition is the shared front half of the reference-based
// handlers: document lookup plus identifier detection.
func (s *Server) referenceAtPosition(uri util.URI, pos transport.Position) (*Document, *parser.Reference, bool) {
	doc, ok := s.Documents.Get(uri)
	if !ok {
		logging.Logger.Error("document not in store", "uri", uri)
		return nil, nil, false
	}
	ref := parser.FindIdentifierAtPosition(doc.Tree, []byte(doc.Text), pos.Line, pos.Character)
	if ref == nil {
		return doc, nil, false
	}
	return doc, ref, true
}

// isCrossFileVisible gates workspace-wide reference search and rename.
func isCrossFileVisible(ref *parser.Reference) bool {
	return ref.Autoload != nil ||
		ref.Scope == parser.Global ||
		(ref.Scope == parser.Implicit && strings.Contains(ref.Name, "#"))
}

// Definition resolves go-to-definition. Autoload callees resolve through
// the file system; everything else through the current file's symbols.
func Definition(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.DefinitionParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ref, ok := s.referenceAtPosition(uri, params.Position)
	if !ok {
		return null, nil
	}

	if ref.Autoload != nil {
		path, found := s.findAutoloadFile(ref.Autoload, uri)
		if !found {
			return null, nil
		}

		// Read and index the file on demand; it may not be indexed yet.
		fileURI := util.Path2URI(path)
		content, err := os.ReadFile(path)
		if err != nil {
			return null, nil
		}
		symbols := s.Store.GetSymbols(fileURI, string(content))

		// Autoload files define functions under their full name.
		for _, sym := range symbols {
			if sym.Kind == parser.Function && sym.Name == ref.Autoload.FullName {
				return marshalResult(transport.Location{
					URI:   fileURI,
					Range: symbolRange(sym),
				})
			}
		}
		return null, nil
	}

	symbols := s.Store.GetSymbols(uri, doc.Text)
	for _, sym := range symbols {
		if sym.Name != ref.Name {
			continue
		}
		if ref.Scope != parser.Implicit && sym.Scope != ref.Scope {
			continue
		}
		if ref.IsCall != (sym.Kind == parser.Function) && !(!ref.IsCall && sym.Kind == parser.Variable) {
			continue
		}
		return marshalResult(transport.Location{URI: uri, Range: symbolRange(sym)})
	}

	return null, nil
}

// Hover shows autoload info, builtin signatures, or user symbol details.
func Hover(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.HoverParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ref, ok := s.referenceAtPosition(uri, params.Position)
	if !ok {
		return null, nil
	}

	if ref.Autoload != nil {
		contents := fmt.Sprintf(
			"```vim\n%s()\n```\n\n*autoload function*\n\nExpected file: `%s`",
			ref.Autoload.FullName, ref.Autoload.FilePath())
		return marshalResult(transport.Hover{
			Contents: transport.MarkupContent{Kind: transport.Markdown, Value: contents},
		})
	}

	if ref.IsCall {
		if builtin, ok := LookupBuiltinFunction(ref.Name); ok {
			contents := fmt.Sprintf("```vim\n%s\n```\n\n%s", builtin.Signature, builtin.Description)
			return marshalResult(transport.Hover{
				Contents: transport.MarkupContent{Kind: transport.Markdown, Value: contents},
			})
		}
	}

	symbols := s.Store.GetSymbols(uri, doc.Text)
	for _, sym := range symbols {
		if sym.Name != ref.Name {
			continue
		}
		if ref.Scope != parser.Implicit && sym.Scope != ref.Scope {
			continue
		}

		kindStr := "variable"
		switch sym.Kind {
		case parser.Function:
			kindStr = "function"
		case parser.Parameter:
			kindStr = "parameter"
		}

		var contents string
		if sym.Signature != "" {
			contents = fmt.Sprintf("```vim\n%s\n```\n\n*%s*", sym.Signature, kindStr)
		} else {
			contents = fmt.Sprintf("```vim\n%s\n```\n\n*%s*", sym.FullName(), kindStr)
		}
		return marshalResult(transport.Hover{
			Contents: transport.MarkupContent{Kind: transport.Markdown, Value: contents},
		})
	}

	return null, nil
}

// References finds all references; the cross-file pass runs only for
// workspace-visible symbols once indexing has completed.
func References(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.ReferenceParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ref, ok := s.referenceAtPosition(uri, params.Position)
	if !ok {
		return null, nil
	}

	includeDecl := params.Context.IncludeDeclaration
	locations := parser.FindReferences(doc.Tree, []byte(doc.Text), ref.Name, ref.Scope, includeDecl)

	var result []transport.Location
	for _, loc := range locations {
		result = append(result, transport.Location{URI: uri, Range: refLocationRange(loc)})
	}

	if isCrossFileVisible(ref) && s.Workspace.IndexingComplete() {
		for fileURI, sf := range s.Store.Snapshot() {
			if fileURI == uri {
				continue
			}
			tree := parser.ParseTree([]byte(sf.Content))
			if tree == nil {
				continue
			}
			locations := parser.FindReferences(tree, []byte(sf.Content), ref.Name, ref.Scope, includeDecl)
			tree.Close()
			for _, loc := range locations {
				result = append(result, transport.Location{URI: fileURI, Range: refLocationRange(loc)})
			}
		}
	}

	if len(result) == 0 {
		return null, nil
	}
	return marshalResult(result)
}

// DocumentHighlight marks every same-file reference, writes for
// declarations, reads for uses.
func DocumentHighlight(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.DocumentHighlightParams
	json.Unmarshal(par, &params)

	doc, ref, ok := s.referenceAtPosition(params.TextDocument.URI, params.Position)
	if !ok {
		return null, nil
	}

	refs := parser.FindReferencesWithKind(doc.Tree, []byte(doc.Text), ref.Name, ref.Scope)
	if len(refs) == 0 {
		return null, nil
	}

	highlights := make([]transport.DocumentHighlight, 0, len(refs))
	for _, r := range refs {
		kind := transport.ReadHighlight
		if r.IsDeclaration {
			kind = transport.WriteHighlight
		}
		highlights = append(highlights, transport.DocumentHighlight{
			Range: refLocationRange(r.Location),
			Kind:  kind,
		})
	}

	return marshalResult(highlights)
}

// PrepareRename refuses builtin functions so the client never attempts the
// edit.
func PrepareRename(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.TextDocumentPositionParams
	json.Unmarshal(par, &params)

	_, ref, ok := s.referenceAtPosition(params.TextDocument.URI, params.Position)
	if !ok {
		return null, nil
	}

	if ref.IsCall && IsBuiltinFunction(ref.Name) {
		return null, nil
	}

	name := ref.Scope.Prefix() + ref.Name
	if ref.Autoload != nil {
		name = ref.Autoload.FullName
	}

	return marshalResult(transport.PrepareRenameResult{
		Range: transport.Range{
			Start: params.Position,
			End: transport.Position{
				Line:      params.Position.Line,
				Character: params.Position.Character + uint32(len(name)),
			},
		},
		Placeholder: name,
	})
}

// Rename shares the reference-finding core with References; declarations
// are always included.
func Rename(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.RenameParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ref, ok := s.referenceAtPosition(uri, params.Position)
	if !ok {
		return null, nil
	}

	changes := make(map[transport.DocumentURI][]transport.TextEdit)

	locations := parser.FindReferences(doc.Tree, []byte(doc.Text), ref.Name, ref.Scope, true)
	if len(locations) > 0 {
		edits := make([]transport.TextEdit, 0, len(locations))
		for _, loc := range locations {
			edits = append(edits, transport.TextEdit{
				Range:   refLocationRange(loc),
				NewText: params.NewName,
			})
		}
		changes[uri] = edits
	}

	if isCrossFileVisible(ref) && s.Workspace.IndexingComplete() {
		for fileURI, sf := range s.Store.Snapshot() {
			if fileURI == uri {
				continue
			}
			tree := parser.ParseTree([]byte(sf.Content))
			if tree == nil {
				continue
			}
			locations := parser.FindReferences(tree, []byte(sf.Content), ref.Name, ref.Scope, true)
			tree.Close()
			if len(locations) == 0 {
				continue
			}
			edits := make([]transport.TextEdit, 0, len(locations))
			for _, loc := range locations {
				edits = append(edits, transport.TextEdit{
					Range:   refLocationRange(loc),
					NewText: params.NewName,
				})
			}
			changes[fileURI] = edits
		}
	}

	if len(changes) == 0 {
		return null, nil
	}

	logging.Logger.Info("rename", "name", ref.Name, "newName", params.NewName, "files", len(changes))
	return marshalResult(transport.WorkspaceEdit{Changes: changes})
}
