package server

import (
	"crypto/sha256"
	"sync"

	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/util"
)

// SourceFile is one node of the incremental database: a file's content plus
// the symbols derived from it. The derivation is memoized by content hash
// and recomputed exactly when the content changes.
type SourceFile struct {
	URI     util.URI
	Content string

	hash    [sha256.Size]byte
	symbols []parser.Symbol
}

// Store is the incremental symbol database. Entries are created on first
// mention (open or indexer), updated on content change, and never deleted
// during a session.
type Store struct {
	files map[util.URI]*SourceFile
	mu    sync.Mutex
}

func (s *Store) Init() {
	s.files = make(map[util.URI]*SourceFile)
}

// GetSymbols upserts the SourceFile for uri. Equal content returns the
// cached symbols; new content invalidates the cache and re-extracts.
func (s *Store) GetSymbols(uri util.URI, content string) []parser.Symbol {
	hash := sha256.Sum256([]byte(content))

	s.mu.Lock()
	defer s.mu.Unlock()

	if sf, ok := s.files[uri]; ok && sf.hash == hash {
		return sf.symbols
	}

	symbols := extractSymbols(content)
	s.files[uri] = &SourceFile{
		URI:     uri,
		Content: content,
		hash:    hash,
		symbols: symbols,
	}
	return symbols
}

// Contains reports whether uri has been indexed.
func (s *Store) Contains(uri util.URI) bool {
	s.mu.Lock()
	_, ok := s.files[uri]
	s.mu.Unlock()
	return ok
}

// Snapshot returns a copy of the file map for iteration without holding the
// store lock across per-file work.
func (s *Store) Snapshot() map[util.URI]*SourceFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[util.URI]*SourceFile, len(s.files))
	for uri, sf := range s.files {
		snapshot[uri] = sf
	}
	return snapshot
}

// Symbols returns the cached symbols of an already-indexed file.
func (s *Store) Symbols(uri util.URI) ([]parser.Symbol, bool) {
	s.mu.Lock()
	sf, ok := s.files[uri]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	return sf.symbols, true
}

func extractSymbols(content string) []parser.Symbol {
	tree := parser.ParseTree([]byte(content))
	if tree == nil {
		return nil
	}
	defer tree.Close()
	return parser.ExtractSymbols(tree, []byte(content))
}
