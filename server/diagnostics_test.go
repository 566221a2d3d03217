package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
)

func computeDiagnostics(t *testing.T, s *Server, text string) []transport.Diagnostic {
	t.Helper()
	tree := parser.ParseTree([]byte(text))
	require.NotNil(t, tree)
	defer tree.Close()
	return s.ComputeDiagnostics("file:///test.vim", tree, text)
}

func diagnosticsWithCode(diagnostics []transport.Diagnostic, code string) []transport.Diagnostic {
	var matched []transport.Diagnostic
	for _, d := range diagnostics {
		if d.Code == code {
			matched = append(matched, d)
		}
	}
	return matched
}

func TestUndefinedScriptLocalFunction(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "call s:Missing()\n")

	undefined := diagnosticsWithCode(diagnostics, "hjkls/undefined_function")
	require.Len(t, undefined, 1)
	d := undefined[0]
	assert.Equal(t, transport.Warning, d.Severity)
	assert.Equal(t, "Undefined function: s:Missing", d.Message)
	assert.Equal(t, uint32(0), d.Range.Start.Line)
	assert.Equal(t, uint32(5), d.Range.Start.Character)
	assert.Equal(t, uint32(14), d.Range.End.Character)
}

func TestDefinedScriptLocalFunctionNotReported(t *testing.T) {
	s := newTestServer()
	code := "function! s:Helper() abort\nendfunction\ncall s:Helper()\n"
	diagnostics := computeDiagnostics(t, s, code)
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/undefined_function"))
}

func TestBuiltinFunctionNotReported(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "echo strlen('abc')\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/undefined_function"))
}

func TestVariableCallNotReported(t *testing.T) {
	s := newTestServer()
	code := "let Fn = function('strlen')\necho Fn('abc')\n"
	diagnostics := computeDiagnostics(t, s, code)
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/undefined_function"))
}

func TestArityTooFew(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "echo substitute('a', 'b', 'c')\n")

	arity := diagnosticsWithCode(diagnostics, "hjkls/arity_mismatch")
	require.Len(t, arity, 1)
	assert.Contains(t, arity[0].Message, "at least 4")
	assert.Contains(t, arity[0].Message, "got 3")
}

func TestArityTooMany(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "echo strlen('a', 'b')\n")

	arity := diagnosticsWithCode(diagnostics, "hjkls/arity_mismatch")
	require.Len(t, arity, 1)
	assert.Contains(t, arity[0].Message, "at most 1")
	assert.Contains(t, arity[0].Message, "got 2")
}

func TestArityVarargsNoUpperBound(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "echo printf('%s %s %s', 'a', 'b', 'c')\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/arity_mismatch"))
}

func TestScopeViolationOutsideFunction(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "let l:tmp = 1\n")
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/scope_violation"))
}

func TestScopeValidInsideFunction(t *testing.T) {
	s := newTestServer()
	code := "function! s:F() abort\n  let l:tmp = 1\nendfunction\n"
	diagnostics := computeDiagnostics(t, s, code)
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/scope_violation"))
}

func TestNormalBangWarning(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "normal j\n")

	warnings := diagnosticsWithCode(diagnostics, "hjkls/normal_bang")
	require.Len(t, warnings, 1)
	assert.Equal(t, transport.Warning, warnings[0].Severity)
	assert.Contains(t, warnings[0].Message, "normal!")
}

func TestNormalWithBangOk(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "normal! j\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/normal_bang"))
}

func TestMatchCaseWarning(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "if 'abc' =~ 'b'\nendif\n")
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/match_case"))

	diagnostics = computeDiagnostics(t, s, "if 'abc' =~# 'b'\nendif\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/match_case"))
}

func TestAutocmdOutsideAugroup(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "autocmd BufRead *.txt echo 'hi'\n")
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/autocmd_group"))
}

func TestAutocmdInsideAugroup(t *testing.T) {
	s := newTestServer()
	code := "augroup MyGroup\n  autocmd!\n  autocmd BufRead *.txt echo 'hi'\naugroup END\n"
	diagnostics := computeDiagnostics(t, s, code)
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/autocmd_group"))
}

func TestSetCompatibleWarning(t *testing.T) {
	s := newTestServer()
	diagnostics := computeDiagnostics(t, s, "set compatible\n")
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/set_compatible"))

	diagnostics = computeDiagnostics(t, s, "set nocompatible\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/set_compatible"))
}

func TestStyleHintsDisabledByDefault(t *testing.T) {
	s := newTestServer()
	code := "function! s:F()\nendfunction\n"
	diagnostics := computeDiagnostics(t, s, code)
	// abort and function_bang are style rules, off by default.
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/abort"))
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/function_bang"))
}

func TestStyleHintsWhenEnabled(t *testing.T) {
	s := newTestServer()
	enabled := true
	s.config.Lint.Style = &enabled

	code := "function! s:F()\nendfunction\n"
	diagnostics := computeDiagnostics(t, s, code)
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/abort"))
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/function_bang"))
}

func TestSingleQuoteHint(t *testing.T) {
	s := newTestServer()
	enabled := true
	s.config.Lint.Style = &enabled

	diagnostics := computeDiagnostics(t, s, "let x = \"plain\"\n")
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/single_quote"))

	// Escape sequences need double quotes.
	diagnostics = computeDiagnostics(t, s, "let x = \"tab\\there\"\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/single_quote"))
}

func TestIgnoreNextLineDirective(t *testing.T) {
	s := newTestServer()
	code := "\" hjkls:ignore-next-line suspicious#normal_bang\nnormal j\n"
	diagnostics := computeDiagnostics(t, s, code)
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/normal_bang"))
}

func TestIgnoreToEndOfFileDirective(t *testing.T) {
	s := newTestServer()
	code := "\" hjkls:ignore\nnormal j\nnormal k\n"
	diagnostics := computeDiagnostics(t, s, code)
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/normal_bang"))
}

func TestIgnoreDoesNotAffectOtherLines(t *testing.T) {
	s := newTestServer()
	code := "normal j\n\" hjkls:ignore-next-line normal_bang\nnormal k\nnormal l\n"
	diagnostics := computeDiagnostics(t, s, code)
	warnings := diagnosticsWithCode(diagnostics, "hjkls/normal_bang")
	require.Len(t, warnings, 2)
	assert.Equal(t, uint32(0), warnings[0].Range.Start.Line)
	assert.Equal(t, uint32(3), warnings[1].Range.Start.Line)
}

func TestConfigDisablesRule(t *testing.T) {
	s := newTestServer()
	s.config.Lint.Rules["suspicious"] = map[string]bool{"normal_bang": false}

	diagnostics := computeDiagnostics(t, s, "normal j\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/normal_bang"))
}

func TestConfigDisablesCategory(t *testing.T) {
	s := newTestServer()
	disabled := false
	s.config.Lint.Suspicious = &disabled

	diagnostics := computeDiagnostics(t, s, "normal j\nif 'a' =~ 'b'\nendif\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/normal_bang"))
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/match_case"))
}

func TestSyntaxErrorsAlwaysPass(t *testing.T) {
	s := newTestServer()
	disabled := false
	s.config.Lint.Correctness = &disabled
	s.config.Lint.Suspicious = &disabled

	diagnostics := computeDiagnostics(t, s, "function! s:Broken(\n")
	var syntax int
	for _, d := range diagnostics {
		if d.Code == "" && strings.HasPrefix(d.Message, "Syntax error") || strings.HasPrefix(d.Message, "Missing") {
			syntax++
		}
	}
	assert.Greater(t, syntax, 0)
}

func TestDiagnosticsDeterministic(t *testing.T) {
	s := newTestServer()
	code := "normal j\ncall s:Missing()\nset compatible\n"
	first := computeDiagnostics(t, s, code)
	second := computeDiagnostics(t, s, code)
	assert.Equal(t, first, second)
}

func TestGlobalFunctionVisibleFromWorkspace(t *testing.T) {
	s := newTestServer()

	// Another indexed file defines the global function.
	s.Store.GetSymbols("file:///other.vim", "function! g:Shared() abort\nendfunction\n")

	// Workspace lookup is skipped entirely until indexing completes.
	diagnostics := computeDiagnostics(t, s, "call g:Shared()\n")
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/undefined_function"))

	s.Workspace.indexingComplete.Store(true)
	diagnostics = computeDiagnostics(t, s, "call g:Shared()\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/undefined_function"))
}

func TestScriptLocalNotVisibleFromWorkspace(t *testing.T) {
	s := newTestServer()
	s.Store.GetSymbols("file:///other.vim", "function! s:Hidden() abort\nendfunction\n")
	s.Workspace.indexingComplete.Store(true)

	diagnostics := computeDiagnostics(t, s, "call s:Hidden()\n")
	assert.NotEmpty(t, diagnosticsWithCode(diagnostics, "hjkls/undefined_function"))
}

func TestPlugNoremapHint(t *testing.T) {
	s := newTestServer()
	enabled := true
	s.config.Lint.Style = &enabled

	diagnostics := computeDiagnostics(t, s, "nmap <Plug>(my-action) :call s:Act()<CR>\n")
	hints := diagnosticsWithCode(diagnostics, "hjkls/plug_noremap")
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0].Message, "nnoremap")

	// Using a <Plug> mapping needs a recursive map; no hint.
	diagnostics = computeDiagnostics(t, s, "nmap gx <Plug>(my-action)\n")
	assert.Empty(t, diagnosticsWithCode(diagnostics, "hjkls/plug_noremap"))
}
