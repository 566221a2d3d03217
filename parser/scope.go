package parser

import "strings"

// VimScope is the scope tag of a Vim script identifier.
type VimScope int

const (
	// Global scope (g:)
	Global VimScope = iota
	// Script-local scope (s:)
	Script
	// Function-local scope (l:)
	Local
	// Buffer-local scope (b:)
	Buffer
	// Window-local scope (w:)
	Window
	// Tab-local scope (t:)
	Tab
	// Vim predefined scope (v:)
	Vim
	// Function argument (a:)
	Argument
	// No explicit scope (defaults to local in functions, global otherwise)
	Implicit
)

// ScopeFromString parses a scope node's text. Unknown prefixes become
// Implicit, so parsing is total.
func ScopeFromString(s string) VimScope {
	switch s {
	case "g:":
		return Global
	case "s:":
		return Script
	case "l:":
		return Local
	case "b:":
		return Buffer
	case "w:":
		return Window
	case "t:":
		return Tab
	case "v:":
		return Vim
	case "a:":
		return Argument
	default:
		return Implicit
	}
}

// Prefix returns the two-character scope prefix, or "" for Implicit.
func (s VimScope) Prefix() string {
	switch s {
	case Global:
		return "g:"
	case Script:
		return "s:"
	case Local:
		return "l:"
	case Buffer:
		return "b:"
	case Window:
		return "w:"
	case Tab:
		return "t:"
	case Vim:
		return "v:"
	case Argument:
		return "a:"
	default:
		return ""
	}
}

// SymbolKind classifies an extracted symbol.
type SymbolKind int

const (
	Function SymbolKind = iota
	Variable
	Parameter
)

// Point is a (row, column) source position, zero-based, byte columns.
type Point struct {
	Row    uint32
	Column uint32
}

// Symbol is a declaration extracted from a syntax tree. Start/End cover the
// name token only, not the whole definition.
type Symbol struct {
	// Name without the scope prefix
	Name  string
	Scope VimScope
	Kind  SymbolKind
	Start Point
	End   Point
	// Signature like "name(a, b)", set for functions
	Signature string
}

// FullName returns the name including the scope prefix.
func (s Symbol) FullName() string {
	return s.Scope.Prefix() + s.Name
}

// AutoloadRef is a parsed autoload function name like "myplugin#util#helper".
type AutoloadRef struct {
	// The full autoload name
	FullName string
	// Path components, e.g. ["myplugin", "util"]
	PathParts []string
	// Final component, e.g. "helper"
	FuncName string
}

// ParseAutoloadRef parses an autoload function name. Returns nil if the name
// contains no '#'.
func ParseAutoloadRef(name string) *AutoloadRef {
	if !strings.Contains(name, "#") {
		return nil
	}
	parts := strings.Split(name, "#")
	if len(parts) < 2 {
		return nil
	}
	return &AutoloadRef{
		FullName:  name,
		PathParts: parts[:len(parts)-1],
		FuncName:  parts[len(parts)-1],
	}
}

// FilePath returns the expected file path relative to the runtimepath,
// e.g. "myplugin#util#helper" -> "autoload/myplugin/util.vim".
func (a *AutoloadRef) FilePath() string {
	return "autoload/" + strings.Join(a.PathParts, "/") + ".vim"
}

// Reference is the identifier found at a source position.
type Reference struct {
	// Name without scope prefix (full name for autoload calls)
	Name  string
	Scope VimScope
	// True iff the enclosing node is a call_expression
	IsCall bool
	// Set only for autoload function calls
	Autoload *AutoloadRef
}
