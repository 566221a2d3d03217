package server

import (
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/util"
)

// Document is the live state of an open file: its text and the syntax tree
// parsed from exactly that text. The pair is replaced atomically on change.
type Document struct {
	Text string
	Tree *tree_sitter.Tree
}

// Documents maps open URIs to their Document. Every update is a full
// replace; incremental edits intersected poorly with rename-undo flows, so
// the whole tree is re-derived each change.
type Documents struct {
	docs map[util.URI]*Document
	mu   sync.Mutex
}

func (d *Documents) Init() {
	d.docs = make(map[util.URI]*Document)
}

// Open installs a fresh (text, tree) pair. Empty text becomes a single
// newline to satisfy the parser pre-condition. Returns false when the parser
// produced no tree; the previous document, if any, stays in place.
func (d *Documents) Open(uri util.URI, text string) bool {
	if text == "" {
		text = "\n"
	}
	tree := parser.ParseTree([]byte(text))
	if tree == nil {
		logging.Logger.Error("parser returned no tree", "uri", uri)
		return false
	}

	d.mu.Lock()
	if old, ok := d.docs[uri]; ok && old.Tree != nil {
		old.Tree.Close()
	}
	d.docs[uri] = &Document{Text: text, Tree: tree}
	d.mu.Unlock()
	return true
}

// Change replaces the document's content. Full replace only.
func (d *Documents) Change(uri util.URI, text string) bool {
	return d.Open(uri, text)
}

// Get returns a snapshot of the document. The returned text is safe to use
// outside the lock; the tree must not be used after Close(uri).
func (d *Documents) Get(uri util.URI) (*Document, bool) {
	d.mu.Lock()
	doc, ok := d.docs[uri]
	d.mu.Unlock()
	return doc, ok
}

func (d *Documents) Close(uri util.URI) {
	d.mu.Lock()
	if doc, ok := d.docs[uri]; ok && doc.Tree != nil {
		doc.Tree.Close()
	}
	delete(d.docs, uri)
	d.mu.Unlock()
}
