package parser

import (
	"sync"

	tree_sitter_vim "github.com/tree-sitter-grammars/tree-sitter-vim/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

type TSParser struct {
	language *tree_sitter.Language
	parser   *tree_sitter.Parser
	mu       sync.Mutex
}

var tsParser TSParser

// Init loads the Vim grammar into the shared parser. Must run before any
// ParseTree call.
func Init() {
	tsParser.language = tree_sitter.NewLanguage(tree_sitter_vim.Language())
	tsParser.parser = tree_sitter.NewParser()
	tsParser.parser.SetLanguage(tsParser.language)
}

// ParseTree parses code into a fresh syntax tree. Trees are independent of
// the shared parser; callers own them.
func ParseTree(code []byte) *tree_sitter.Tree {
	tsParser.mu.Lock()
	tree := tsParser.parser.Parse(code, nil)
	tsParser.parser.Reset()
	tsParser.mu.Unlock()
	return tree
}

// Language returns the loaded Vim grammar.
func Language() *tree_sitter.Language {
	return tsParser.language
}

func Close() {
	if tsParser.parser != nil {
		tsParser.parser.Close()
	}
}
