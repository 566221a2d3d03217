package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawarimidoll/hjkls/parser"
)

func init() {
	parser.Init()
}

// newTestServer builds a server with stores initialized but no transport.
func newTestServer() *Server {
	s := &Server{}
	s.mode = Both
	s.config = DefaultConfig()
	s.Documents.Init()
	s.Store.Init()
	return s
}

func mustAutoloadRef(t *testing.T, name string) *parser.AutoloadRef {
	t.Helper()
	ref := parser.ParseAutoloadRef(name)
	require.NotNil(t, ref)
	return ref
}
