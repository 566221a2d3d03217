package server

import (
	"context"
	"encoding/json"

	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
)

// SignatureHelp reports the signature of the call enclosing the cursor,
// with the active parameter derived from comma counting.
func SignatureHelp(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.SignatureHelpParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ok := s.Documents.Get(uri)
	if !ok {
		return null, nil
	}

	call := parser.FindCallAtPosition(doc.Tree, []byte(doc.Text), params.Position.Line, params.Position.Character)
	if call == nil {
		return null, nil
	}

	if builtin, ok := LookupBuiltinFunction(call.FuncName); ok {
		return marshalResult(signatureHelpFor(builtin.Signature, builtin.Description, call.ActiveParam))
	}

	for _, sym := range s.Store.GetSymbols(uri, doc.Text) {
		if sym.Kind != parser.Function {
			continue
		}
		matches := sym.Name == call.FuncName || sym.FullName() == call.FuncName ||
			(call.Autoload != nil && call.Autoload.FullName == sym.Name)
		if !matches {
			continue
		}
		sig := sym.Signature
		if sig == "" {
			sig = sym.FullName() + "()"
		}
		return marshalResult(signatureHelpFor(sig, "", call.ActiveParam))
	}

	return null, nil
}

func signatureHelpFor(signature, documentation string, activeParam uint32) transport.SignatureHelp {
	params := parseSignatureParams(signature)
	info := transport.SignatureInformation{
		Label:           signature,
		Documentation:   documentation,
		ActiveParameter: activeParam,
	}
	for _, p := range params {
		info.Parameters = append(info.Parameters, transport.ParameterInformation{Label: p})
	}
	return transport.SignatureHelp{
		Signatures:      []transport.SignatureInformation{info},
		ActiveSignature: 0,
		ActiveParameter: activeParam,
	}
}
