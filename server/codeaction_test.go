package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawarimidoll/hjkls/transport"
)

func quickFix(t *testing.T, code, line string, startCol, endCol int) (string, transport.TextEdit, bool) {
	t.Helper()
	diag := transport.Diagnostic{
		Range: transport.Range{
			Start: transport.Position{Line: 0, Character: uint32(startCol)},
			End:   transport.Position{Line: 0, Character: uint32(endCol)},
		},
		Code: code,
	}
	return quickFixFor(diag, []string{line})
}

func TestQuickFixDoubleDot(t *testing.T) {
	line := "let x = 'a' . 'b'"
	_, edit, ok := quickFix(t, "hjkls/double_dot", line, 8, 17)
	require.True(t, ok)
	assert.Equal(t, "'a' .. 'b'", edit.NewText)
}

func TestQuickFixDoubleDotLeavesDoubleAlone(t *testing.T) {
	line := "let x = 'a' .. 'b'"
	_, _, ok := quickFix(t, "hjkls/double_dot", line, 8, 18)
	assert.False(t, ok)
}

func TestQuickFixSingleQuote(t *testing.T) {
	line := "let x = \"plain\""
	_, edit, ok := quickFix(t, "hjkls/single_quote", line, 8, 15)
	require.True(t, ok)
	assert.Equal(t, "'plain'", edit.NewText)
}

func TestQuickFixKeyNotation(t *testing.T) {
	line := "nnoremap <cr> :w<CR>"
	_, edit, ok := quickFix(t, "hjkls/key_notation", line, 9, 13)
	require.True(t, ok)
	assert.Equal(t, "<CR>", edit.NewText)
}

func TestQuickFixNormalBang(t *testing.T) {
	line := "normal j"
	_, edit, ok := quickFix(t, "hjkls/normal_bang", line, 0, 8)
	require.True(t, ok)
	assert.Equal(t, "normal!", edit.NewText)
	assert.Equal(t, uint32(0), edit.Range.Start.Character)
	assert.Equal(t, uint32(6), edit.Range.End.Character)
}

func TestQuickFixFunctionBang(t *testing.T) {
	line := "function! s:Helper() abort"
	_, edit, ok := quickFix(t, "hjkls/function_bang", line, 0, len(line))
	require.True(t, ok)
	assert.Equal(t, "function", edit.NewText)
	assert.Equal(t, uint32(0), edit.Range.Start.Character)
	assert.Equal(t, uint32(9), edit.Range.End.Character)
}

func TestQuickFixMatchCase(t *testing.T) {
	line := "if 'a' =~ 'b'"
	_, edit, ok := quickFix(t, "hjkls/match_case", line, 3, 13)
	require.True(t, ok)
	assert.Equal(t, "=~#", edit.NewText)
	assert.Equal(t, uint32(7), edit.Range.Start.Character)
	assert.Equal(t, uint32(9), edit.Range.End.Character)
}

func TestQuickFixAbort(t *testing.T) {
	line := "function! s:Helper()"
	_, edit, ok := quickFix(t, "hjkls/abort", line, 0, len(line))
	require.True(t, ok)
	assert.Equal(t, " abort", edit.NewText)
	assert.Equal(t, uint32(len(line)), edit.Range.Start.Character)
	assert.Equal(t, edit.Range.Start, edit.Range.End)
}

func TestQuickFixPlugNoremap(t *testing.T) {
	line := "nmap <Plug>(my-action) :call s:Act()<CR>"
	_, edit, ok := quickFix(t, "hjkls/plug_noremap", line, 0, 4)
	require.True(t, ok)
	assert.Equal(t, "nnoremap", edit.NewText)
}

func TestQuickFixUnknownCode(t *testing.T) {
	_, _, ok := quickFix(t, "hjkls/arity_mismatch", "echo strlen()", 0, 13)
	assert.False(t, ok)
}

func TestReplaceSingleDotWithDouble(t *testing.T) {
	assert.Equal(t, "'a' .. 'b'", replaceSingleDotWithDouble("'a' . 'b'"))
	assert.Equal(t, "'a' .. 'b'", replaceSingleDotWithDouble("'a' .. 'b'"))
	assert.Equal(t, "a..b..c", replaceSingleDotWithDouble("a.b.c"))
}

func TestApplyQuickFixProducesValidLine(t *testing.T) {
	line := "normal j"
	_, edit, ok := quickFix(t, "hjkls/normal_bang", line, 0, 8)
	require.True(t, ok)

	fixed := line[:edit.Range.Start.Character] + edit.NewText + line[edit.Range.End.Character:]
	assert.True(t, strings.HasPrefix(fixed, "normal! "))
}
