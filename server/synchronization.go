package server

import (
	"context"
	"encoding/json"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/transport"
)

func TextDocumentOpen(ctx context.Context, s *Server, par json.RawMessage) error {
	var params transport.DidOpenTextDocumentParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	if !s.Documents.Open(uri, params.TextDocument.Text) {
		return nil
	}
	logging.Logger.Info("opened document", "uri", uri)

	s.publishDiagnostics(uri)
	return nil
}

func TextDocumentChange(ctx context.Context, s *Server, par json.RawMessage) error {
	var params transport.DidChangeTextDocumentParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	// Sync is FULL, so only the last change matters.
	if len(params.ContentChanges) == 0 {
		return nil
	}
	text := params.ContentChanges[len(params.ContentChanges)-1].Text

	if !s.Documents.Change(uri, text) {
		// Parser returned no tree; keep the previous document and report
		// nothing for this version.
		return nil
	}

	s.publishDiagnostics(uri)
	return nil
}

func TextDocumentClose(ctx context.Context, s *Server, par json.RawMessage) error {
	var params transport.DidCloseTextDocumentParams
	json.Unmarshal(par, &params)

	s.Documents.Close(params.TextDocument.URI)
	return nil
}

func TextDocumentSave(ctx context.Context, s *Server, par json.RawMessage) error {
	var params transport.DidSaveTextDocumentParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI

	// Forward the saved text (or the last known document text) to the
	// incremental store so on-disk and in-memory views reconverge.
	var text string
	if params.Text != nil {
		text = *params.Text
	} else if doc, ok := s.Documents.Get(uri); ok {
		text = doc.Text
	} else {
		return nil
	}

	s.Store.GetSymbols(uri, text)
	logging.Logger.Info("updated index on save", "uri", uri)
	return nil
}
