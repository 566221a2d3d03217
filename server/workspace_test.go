package server

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	cp "github.com/otiai10/copy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

// buildFixtureWorkspace lays out a small plugin tree and returns its root.
func buildFixtureWorkspace(t *testing.T) string {
	t.Helper()
	src := t.TempDir()

	files := map[string]string{
		"plugin/main.vim":          "function! Entry() abort\n  call foo#bar#baz()\nendfunction\n",
		"autoload/foo/bar.vim":     "function! foo#bar#baz() abort\n  return 1\nendfunction\n",
		"autoload/helpers.vim":     "function! helpers#greet(name) abort\n  echo a:name\nendfunction\n",
		".hidden/skipped.vim":      "let g:should_not_index = 1\n",
		"node_modules/dep/mod.vim": "let g:should_not_index = 2\n",
	}
	for path, content := range files {
		full := filepath.Join(src, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}

	// Replicate the fixture so tests never mutate the original layout.
	root := t.TempDir()
	require.NoError(t, cp.Copy(src, root))
	return root
}

func TestWorkspaceIndex(t *testing.T) {
	root := buildFixtureWorkspace(t)

	s := newTestServer()
	s.Workspace.SetRoots([]string{root})

	assert.False(t, s.Workspace.IndexingComplete())
	s.Workspace.Index(&s.Store)
	assert.True(t, s.Workspace.IndexingComplete())

	assert.True(t, s.Store.Contains(util.Path2URI(filepath.Join(root, "plugin/main.vim"))))
	assert.True(t, s.Store.Contains(util.Path2URI(filepath.Join(root, "autoload/foo/bar.vim"))))

	// Hidden and node_modules directories are skipped.
	assert.False(t, s.Store.Contains(util.Path2URI(filepath.Join(root, ".hidden/skipped.vim"))))
	assert.False(t, s.Store.Contains(util.Path2URI(filepath.Join(root, "node_modules/dep/mod.vim"))))
}

func TestWorkspaceSymbolsAfterIndexing(t *testing.T) {
	root := buildFixtureWorkspace(t)

	s := newTestServer()
	s.Workspace.SetRoots([]string{root})

	// Before indexing completes: explicitly empty.
	result, rpcErr := WorkspaceSymbols(t.Context(), s, marshalParams(t, transport.WorkspaceSymbolParams{Query: ""}))
	require.Nil(t, rpcErr)
	var symbols []transport.SymbolInformation
	require.NoError(t, json.Unmarshal(result, &symbols))
	assert.Empty(t, symbols)

	s.Workspace.Index(&s.Store)

	result, rpcErr = WorkspaceSymbols(t.Context(), s, marshalParams(t, transport.WorkspaceSymbolParams{Query: "baz"}))
	require.Nil(t, rpcErr)
	require.NoError(t, json.Unmarshal(result, &symbols))
	require.Len(t, symbols, 1)
	assert.Equal(t, "foo#bar#baz", symbols[0].Name)
}

func marshalParams(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestAutoloadFileResolution(t *testing.T) {
	root := buildFixtureWorkspace(t)

	s := newTestServer()
	s.Workspace.SetRoots([]string{root})

	ref := mustAutoloadRef(t, "foo#bar#baz")
	path, found := s.findAutoloadFile(ref, "")
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "autoload", "foo", "bar.vim"), path)

	missing := mustAutoloadRef(t, "no#such#plugin")
	_, found = s.findAutoloadFile(missing, "")
	assert.False(t, found)
}

func TestAutoloadResolutionRelativeToDocument(t *testing.T) {
	root := buildFixtureWorkspace(t)

	// No workspace roots: resolution falls back to the document's dir.
	s := newTestServer()
	docURI := util.Path2URI(filepath.Join(root, "anything.vim"))

	ref := mustAutoloadRef(t, "helpers#greet")
	path, found := s.findAutoloadFile(ref, docURI)
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "autoload", "helpers.vim"), path)
}

func TestGotoDefinitionAutoload(t *testing.T) {
	root := buildFixtureWorkspace(t)

	s := newTestServer()
	s.Workspace.SetRoots([]string{root})

	uri := util.Path2URI(filepath.Join(root, "plugin", "main.vim"))
	content, err := os.ReadFile(filepath.Join(root, "plugin", "main.vim"))
	require.NoError(t, err)
	require.True(t, s.Documents.Open(uri, string(content)))

	params := transport.DefinitionParams{}
	params.TextDocument.URI = uri
	// Position on "foo#bar#baz" in "  call foo#bar#baz()"
	params.Position = transport.Position{Line: 1, Character: 10}

	result, rpcErr := Definition(t.Context(), s, marshalParams(t, params))
	require.Nil(t, rpcErr)
	require.NotEqual(t, "null", string(result))

	var location transport.Location
	require.NoError(t, json.Unmarshal(result, &location))
	assert.Equal(t, util.Path2URI(filepath.Join(root, "autoload", "foo", "bar.vim")), location.URI)
	assert.Equal(t, uint32(0), location.Range.Start.Line)
}

func TestWatchPicksUpNewFiles(t *testing.T) {
	root := t.TempDir()

	s := newTestServer()
	s.Workspace.SetRoots([]string{root})
	s.Workspace.Index(&s.Store)

	ctx := t.Context()
	go s.Workspace.Watch(ctx, &s.Store)
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(root, "new.vim")
	require.NoError(t, os.WriteFile(path, []byte("let g:fresh = 1\n"), 0644))

	uri := util.Path2URI(path)
	assert.Eventually(t, func() bool {
		return s.Store.Contains(uri)
	}, 3*time.Second, 50*time.Millisecond)
}
