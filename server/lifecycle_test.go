package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawarimidoll/hjkls/transport"
)

func TestInitializeCapabilities(t *testing.T) {
	s := newTestServer()
	s.Status = Created

	params := transport.InitializeParams{
		RootURI: "file:///tmp/project",
		Capabilities: transport.ClientCapabilities{
			General: transport.ClientGeneralCapabilities{
				PositionEncodings: []string{"utf-8", "utf-16"},
			},
		},
	}

	result, rpcErr := Initialize(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)

	var init transport.InitializeResult
	require.NoError(t, json.Unmarshal(result, &init))

	caps := init.Capabilities
	assert.Equal(t, "utf-8", caps.PositionEncoding)
	require.NotNil(t, caps.TextDocumentSync)
	assert.True(t, caps.TextDocumentSync.OpenClose)
	assert.Equal(t, transport.Full, caps.TextDocumentSync.Change)
	require.NotNil(t, caps.TextDocumentSync.Save)
	assert.True(t, caps.TextDocumentSync.Save.IncludeText)
	assert.NotNil(t, caps.CompletionProvider)
	require.NotNil(t, caps.SignatureHelpProvider)
	assert.Equal(t, []string{"(", ","}, caps.SignatureHelpProvider.TriggerCharacters)
	assert.True(t, caps.DefinitionProvider)
	assert.True(t, caps.HoverProvider)
	assert.True(t, caps.ReferencesProvider)
	assert.True(t, caps.DocumentSymbolProvider)
	assert.True(t, caps.WorkspaceSymbolProvider)
	require.NotNil(t, caps.RenameProvider)
	assert.True(t, caps.RenameProvider.PrepareProvider)
	assert.True(t, caps.DocumentHighlightProvider)
	assert.True(t, caps.FoldingRangeProvider)
	assert.True(t, caps.SelectionRangeProvider)
	assert.True(t, caps.CodeActionProvider)
	assert.True(t, caps.DocumentFormattingProvider)

	require.NotNil(t, init.ServerInfo)
	assert.Equal(t, "hjkls", init.ServerInfo.Name)

	assert.Equal(t, []string{"/tmp/project"}, s.Workspace.Roots())
}

func TestInitializeWorkspaceFolders(t *testing.T) {
	s := newTestServer()

	params := transport.InitializeParams{
		RootURI: "file:///tmp/ignored",
		WorkspaceFolders: []transport.WorkspaceFolder{
			{URI: "file:///tmp/a", Name: "a"},
			{URI: "file:///tmp/b", Name: "b"},
		},
	}

	_, rpcErr := Initialize(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)
	assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, s.Workspace.Roots())
}

func TestShutdownExitTransitions(t *testing.T) {
	s := newTestServer()
	s.Status = Running

	_, rpcErr := ShutdownEnd(t.Context(), s, nil)
	require.Nil(t, rpcErr)
	assert.Equal(t, ServerState(Shutdown), s.Status)

	require.NoError(t, ExitEnd(t.Context(), s, nil))
	assert.Equal(t, ServerState(Exit), s.Status)
}

func TestExitWithoutShutdownIsError(t *testing.T) {
	s := newTestServer()
	s.Status = Running

	require.NoError(t, ExitEnd(t.Context(), s, nil))
	assert.Equal(t, ServerState(ExitError), s.Status)
}

func TestValidateMethod(t *testing.T) {
	s := newTestServer()

	s.Status = Created
	assert.Error(t, s.ValidateMethod("textDocument/hover"))
	assert.NoError(t, s.ValidateMethod("initialize"))

	s.Status = Shutdown
	assert.Error(t, s.ValidateMethod("textDocument/hover"))
	assert.NoError(t, s.ValidateMethod("exit"))

	s.Status = Running
	assert.NoError(t, s.ValidateMethod("textDocument/hover"))
}
