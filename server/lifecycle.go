package server

import (
	"context"
	"encoding/json"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

// Initialize Handler
func Initialize(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	s.Status = Initializing
	var params transport.InitializeParams
	json.Unmarshal(par, &params)

	// Workspace folders first (LSP 3.6+), rootUri as fallback.
	var roots []util.Path
	for _, folder := range params.WorkspaceFolders {
		if path, err := util.URI2Path(folder.URI); err == nil {
			roots = append(roots, path)
		}
	}
	if len(roots) == 0 && params.RootURI != "" {
		if path, err := util.URI2Path(params.RootURI); err == nil {
			roots = append(roots, path)
		}
	}
	s.Workspace.SetRoots(roots)
	logging.Logger.Info("got workspace roots", "roots", roots)

	s.setConfig(FindConfig(roots))

	// Columns are byte offsets throughout, so offer UTF-8 when the client
	// understands it; clients that don't will assume UTF-16.
	encoding := ""
	for _, enc := range params.Capabilities.General.PositionEncodings {
		if enc == "utf-8" {
			encoding = "utf-8"
			break
		}
	}

	result := transport.InitializeResult{
		Capabilities: transport.ServerCapabilities{
			PositionEncoding: encoding,
			TextDocumentSync: &transport.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    transport.Full,
				Save:      &transport.SaveOptions{IncludeText: true},
			},
			CompletionProvider:         &transport.CompletionOptions{},
			SignatureHelpProvider:      &transport.SignatureHelpOptions{TriggerCharacters: []string{"(", ","}},
			DefinitionProvider:         true,
			HoverProvider:              true,
			ReferencesProvider:         true,
			DocumentSymbolProvider:     true,
			WorkspaceSymbolProvider:    true,
			RenameProvider:             &transport.RenameOptions{PrepareProvider: true},
			DocumentHighlightProvider:  true,
			FoldingRangeProvider:       true,
			SelectionRangeProvider:     true,
			CodeActionProvider:         true,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &transport.ServerInfo{Name: "hjkls", Version: Version},
	}
	s.Capabilities = result.Capabilities

	return marshalResult(result)
}

// Initialized Handler
func Initialized(ctx context.Context, s *Server, par json.RawMessage) error {
	s.Status = Running

	go s.PublishDiagnostics(ctx)

	// Background indexing runs once per session to completion, then the
	// watcher keeps the store fresh.
	go func() {
		s.Workspace.Index(&s.Store)
		s.Workspace.Watch(ctx, &s.Store)
	}()

	logging.Logger.Info("initialized, indexing started")
	return nil
}

// Shutdown Handler
func ShutdownEnd(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	s.Status = Shutdown
	return null, nil
}

// Exit Handler
func ExitEnd(ctx context.Context, s *Server, par json.RawMessage) error {
	if s.Status == Shutdown {
		s.Status = Exit
	} else {
		s.Status = ExitError
	}
	return nil
}
