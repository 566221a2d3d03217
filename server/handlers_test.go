package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawarimidoll/hjkls/transport"
)

func openDocument(t *testing.T, s *Server, uri, text string) {
	t.Helper()
	require.True(t, s.Documents.Open(uri, text))
}

func TestDefinitionLocalFunction(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "function! s:Helper() abort\nendfunction\ncall s:Helper()\n")

	params := transport.DefinitionParams{}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 2, Character: 8}

	result, rpcErr := Definition(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)
	require.NotEqual(t, "null", string(result))

	var location transport.Location
	require.NoError(t, json.Unmarshal(result, &location))
	assert.Equal(t, uri, location.URI)
	assert.Equal(t, uint32(0), location.Range.Start.Line)
}

func TestHoverBuiltinFunction(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "echo strlen('abc')\n")

	params := transport.HoverParams{}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 0, Character: 7}

	result, rpcErr := Hover(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)
	require.NotEqual(t, "null", string(result))

	var hover transport.Hover
	require.NoError(t, json.Unmarshal(result, &hover))
	assert.Contains(t, hover.Contents.Value, "strlen({string})")
}

func TestHoverAutoloadFunction(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "call foo#bar#baz()\n")

	params := transport.HoverParams{}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 0, Character: 8}

	result, rpcErr := Hover(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var hover transport.Hover
	require.NoError(t, json.Unmarshal(result, &hover))
	assert.Contains(t, hover.Contents.Value, "autoload/foo/bar.vim")
}

func TestReferencesCurrentFile(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "let s:count = 0\nlet s:count = s:count + 1\n")

	params := transport.ReferenceParams{}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 0, Character: 7}
	params.Context.IncludeDeclaration = true

	result, rpcErr := References(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var locations []transport.Location
	require.NoError(t, json.Unmarshal(result, &locations))
	assert.Len(t, locations, 3)
}

func TestDocumentHighlightKinds(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "function! s:Go()\nendfunction\ncall s:Go()\n")

	params := transport.DocumentHighlightParams{}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 2, Character: 8}

	result, rpcErr := DocumentHighlight(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var highlights []transport.DocumentHighlight
	require.NoError(t, json.Unmarshal(result, &highlights))
	require.Len(t, highlights, 2)

	var writes, reads int
	for _, h := range highlights {
		switch h.Kind {
		case transport.WriteHighlight:
			writes++
		case transport.ReadHighlight:
			reads++
		}
	}
	assert.Equal(t, 1, writes)
	assert.Equal(t, 1, reads)
}

func TestPrepareRenameRefusesBuiltin(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "echo strlen('abc')\n")

	params := transport.TextDocumentPositionParams{}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 0, Character: 7}

	result, rpcErr := PrepareRename(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)
	assert.Equal(t, "null", string(result))
}

func TestRenameCurrentFile(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "let s:old = 0\nlet s:old = s:old + 1\n")

	params := transport.RenameParams{NewName: "fresh"}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 0, Character: 7}

	result, rpcErr := Rename(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var edit transport.WorkspaceEdit
	require.NoError(t, json.Unmarshal(result, &edit))
	require.Len(t, edit.Changes, 1)
	assert.Len(t, edit.Changes[uri], 3)
	for _, e := range edit.Changes[uri] {
		assert.Equal(t, "fresh", e.NewText)
	}
}

func TestFoldingRangesMultiLineBlocks(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "function! Test()\n  if v:true\n    let x = 1\n  endif\nendfunction\n")

	params := transport.FoldingRangeParams{}
	params.TextDocument.URI = uri

	result, rpcErr := FoldingRanges(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var ranges []transport.FoldingRange
	require.NoError(t, json.Unmarshal(result, &ranges))
	require.Len(t, ranges, 2)
	assert.Equal(t, uint32(0), ranges[0].StartLine)
	assert.Equal(t, uint32(4), ranges[0].EndLine)
}

func TestSelectionRangeChain(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "function! Test()\n  let x = strlen('abc')\nendfunction\n")

	params := transport.SelectionRangeParams{}
	params.TextDocument.URI = uri
	params.Positions = []transport.Position{{Line: 1, Character: 18}}

	result, rpcErr := SelectionRanges(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var ranges []transport.SelectionRange
	require.NoError(t, json.Unmarshal(result, &ranges))
	require.Len(t, ranges, 1)

	// The chain walks outward and never repeats a range.
	seen := map[transport.Range]bool{}
	for sel := &ranges[0]; sel != nil; sel = sel.Parent {
		assert.False(t, seen[sel.Range], "duplicate range in chain")
		seen[sel.Range] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDocumentSymbolsHandler(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "function! s:Helper(x) abort\nendfunction\nlet g:flag = 1\n")

	params := transport.DocumentSymbolParams{}
	params.TextDocument.URI = uri

	result, rpcErr := DocumentSymbols(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var symbols []transport.DocumentSymbol
	require.NoError(t, json.Unmarshal(result, &symbols))
	require.Len(t, symbols, 2)
	assert.Equal(t, "s:Helper", symbols[0].Name)
	assert.Equal(t, "Helper(x)", symbols[0].Detail)
	assert.Equal(t, transport.FunctionSymbol, symbols[0].Kind)
	assert.Equal(t, "g:flag", symbols[1].Name)
}

func TestSignatureHelpBuiltin(t *testing.T) {
	s := newTestServer()
	uri := "file:///a.vim"
	openDocument(t, s, uri, "echo substitute('a', 'b', 'c')\n")

	params := transport.SignatureHelpParams{}
	params.TextDocument.URI = uri
	params.Position = transport.Position{Line: 0, Character: 26}

	result, rpcErr := SignatureHelp(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var help transport.SignatureHelp
	require.NoError(t, json.Unmarshal(result, &help))
	require.Len(t, help.Signatures, 1)
	assert.Equal(t, "substitute({string}, {pat}, {sub}, {flags})", help.Signatures[0].Label)
	assert.Equal(t, uint32(2), help.ActiveParameter)
	assert.Len(t, help.Signatures[0].Parameters, 4)
}
