package server

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
)

func lspSymbolKind(kind parser.SymbolKind) transport.SymbolKind {
	if kind == parser.Function {
		return transport.FunctionSymbol
	}
	return transport.VariableSymbol
}

// DocumentSymbols lists the current file's symbols.
func DocumentSymbols(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.DocumentSymbolParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ok := s.Documents.Get(uri)
	if !ok {
		return null, nil
	}

	symbols := s.Store.GetSymbols(uri, doc.Text)
	result := make([]transport.DocumentSymbol, 0, len(symbols))
	for _, sym := range symbols {
		r := symbolRange(sym)
		result = append(result, transport.DocumentSymbol{
			Name:           sym.FullName(),
			Detail:         sym.Signature,
			Kind:           lspSymbolKind(sym.Kind),
			Range:          r,
			SelectionRange: r,
		})
	}

	return marshalResult(result)
}

// maxWorkspaceSymbols bounds the result size so huge workspaces do not
// overwhelm the client.
const maxWorkspaceSymbols = 500

// WorkspaceSymbols queries every indexed file. Returns an explicitly empty
// list while indexing is still running rather than blocking.
func WorkspaceSymbols(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.WorkspaceSymbolParams
	json.Unmarshal(par, &params)

	if !s.Workspace.IndexingComplete() {
		logging.Logger.Info("workspace symbols requested before indexing completed")
		return marshalResult([]transport.SymbolInformation{})
	}

	query := strings.ToLower(params.Query)
	results := []transport.SymbolInformation{}

	for fileURI, sf := range s.Store.Snapshot() {
		if len(results) >= maxWorkspaceSymbols {
			break
		}
		for _, sym := range sf.symbols {
			// Empty query returns everything; otherwise case-insensitive
			// substring match on the full name.
			if query != "" && !strings.Contains(strings.ToLower(sym.FullName()), query) {
				continue
			}
			results = append(results, transport.SymbolInformation{
				Name: sym.FullName(),
				Kind: lspSymbolKind(sym.Kind),
				Location: transport.Location{
					URI:   fileURI,
					Range: symbolRange(sym),
				},
				ContainerName: sym.Signature,
			})
			if len(results) >= maxWorkspaceSymbols {
				break
			}
		}
	}

	return marshalResult(results)
}
