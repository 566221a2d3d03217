package server

import (
	"context"
	"encoding/json"

	"github.com/kawarimidoll/hjkls/transport"
)

// Formatting runs the formatter over the active document.
func Formatting(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.DocumentFormattingParams
	json.Unmarshal(par, &params)

	doc, ok := s.Documents.Get(params.TextDocument.URI)
	if !ok {
		return null, nil
	}

	config := s.Config()
	edits := Format(doc.Text, doc.Tree, config.Format)

	if len(edits) == 0 {
		return null, nil
	}
	return marshalResult(edits)
}
