package server

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/parser"
)

func parseVim(t *testing.T, source string) *tree_sitter.Tree {
	t.Helper()
	tree := parser.ParseTree([]byte(source))
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)
	return tree
}

func formatToString(t *testing.T, source string, config FormatConfig) string {
	t.Helper()
	tree := parseVim(t, source)
	edits := Format(source, tree, config)
	return ApplyEdits(source, edits)
}

func TestFormatBasic(t *testing.T) {
	source := "function! Test()\nlet x = 1\nendfunction"
	result := formatToString(t, source, DefaultConfig().Format)

	assert.Contains(t, result, "  let x = 1")
	assert.True(t, strings.HasSuffix(result, "\n"))
}

func TestFormatTrailingWhitespace(t *testing.T) {
	source := "let x = 1   \nlet y = 2\n"
	result := formatToString(t, source, DefaultConfig().Format)

	assert.NotContains(t, result, "1   ")
	assert.Contains(t, result, "let x = 1\n")
}

func TestFormatNestedBlocks(t *testing.T) {
	source := "function! Test()\nif a==1\nlet x=1\nendif\nendfunction\n"
	result := formatToString(t, source, DefaultConfig().Format)

	want := "function! Test()\n  if a==1\n    let x=1\n  endif\nendfunction\n"
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("formatted output mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatIdempotent(t *testing.T) {
	sources := []string{
		"function! Test()\nif a==1\nlet x=1\nendif\nendfunction\n",
		"augroup MyGroup\nautocmd!\naugroup END\n",
		"let x = [\n\\ 'a',\n\\ 'b',\n\\ ]\n",
		"try\nlet x = 1\ncatch\nlet y = 2\nfinally\nlet z = 3\nendtry\n",
	}
	config := DefaultConfig().Format
	for _, source := range sources {
		once := formatToString(t, source, config)
		twice := formatToString(t, once, config)
		assert.Equal(t, once, twice, "format must be idempotent for %q", source)
	}
}

func TestFormatPreservesStrings(t *testing.T) {
	source := "let msg = 'hello     world'\n"
	result := formatToString(t, source, DefaultConfig().Format)
	assert.Contains(t, result, "'hello     world'")
}

func TestFormatPreservesComments(t *testing.T) {
	source := "\" This   is   a   comment\nlet x = 1\n"
	result := formatToString(t, source, DefaultConfig().Format)
	assert.Contains(t, result, "\" This   is   a   comment")
}

func TestFormatNormalizeSpaces(t *testing.T) {
	source := "echo       'hello   world'  ..          a:name\n"
	result := formatToString(t, source, DefaultConfig().Format)
	assert.Contains(t, result, "echo 'hello   world' .. a:name")
}

func TestIndentLevelsFunction(t *testing.T) {
	source := "function! Test()\nlet x = 1\nendfunction\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)

	assert.Equal(t, 0, levels[0])
	assert.Equal(t, 2, levels[1])
	assert.Equal(t, 0, levels[2])
}

func TestIndentLevelsElse(t *testing.T) {
	source := "if a == 1\nlet x = 1\nelseif a == 2\nlet x = 2\nelse\nlet x = 3\nendif\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)

	want := []int{0, 2, 0, 2, 0, 2, 0}
	assert.Equal(t, want, levels[:7])
}

func TestIndentLevelsTryCatch(t *testing.T) {
	source := "try\nlet x = 1\ncatch\nlet y = 2\nfinally\nlet z = 3\nendtry\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)

	want := []int{0, 2, 0, 2, 0, 2, 0}
	assert.Equal(t, want, levels[:7])
}

func TestIndentLevelsAugroup(t *testing.T) {
	source := "augroup MyGroup\nautocmd!\naugroup END\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)

	assert.Equal(t, 0, levels[0])
	assert.Equal(t, 2, levels[1])
	assert.Equal(t, 0, levels[2])
}

func TestIndentLevelsNestedAugroups(t *testing.T) {
	source := "augroup Outer\naugroup Inner\nautocmd!\naugroup END\naugroup END\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)

	assert.Equal(t, 0, levels[0])
	assert.Equal(t, 2, levels[1])
	assert.Equal(t, 4, levels[2])
	assert.Equal(t, 2, levels[3])
	assert.Equal(t, 0, levels[4])
}

func TestIndentLevelsLineContinuation(t *testing.T) {
	source := "let x = [\n\\ 'a',\n\\ 'b',\n\\ ]\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)

	assert.Equal(t, 0, levels[0])
	assert.Equal(t, 6, levels[1])
	assert.Equal(t, 6, levels[2])
	assert.Equal(t, 6, levels[3])
}

func TestIndentMonotonicity(t *testing.T) {
	source := "function! Test()\nif a == 1\nlet x = 1\nendif\nendfunction\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)

	// Body lines indent strictly more than their headers.
	assert.Greater(t, levels[1], levels[0])
	assert.Greater(t, levels[2], levels[1])
}

func TestIndentSingleLineFunction(t *testing.T) {
	source := "function! Test() | endfunction\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)
	assert.Equal(t, 0, levels[0])
}

func TestIndentCommentKeywordIgnored(t *testing.T) {
	source := "\" function! This is a comment\nlet x = 1\n"
	tree := parseVim(t, source)
	levels := computeIndentLevels(source, tree, DefaultConfig().Format)
	assert.Equal(t, 0, levels[0])
	assert.Equal(t, 0, levels[1])
}

func TestFormatUseTabs(t *testing.T) {
	config := DefaultConfig().Format
	config.UseTabs = true
	source := "function! Test()\nlet x = 1\nendfunction\n"
	result := formatToString(t, source, config)
	assert.Contains(t, result, "\tlet x = 1")
}

func TestFormatInsertFinalNewline(t *testing.T) {
	source := "let x = 1"
	result := formatToString(t, source, DefaultConfig().Format)
	assert.Equal(t, "let x = 1\n", result)
}

func TestFormatEmptySource(t *testing.T) {
	result := formatToString(t, "\n", DefaultConfig().Format)
	assert.Equal(t, "\n", result)
}

func TestFormatDisabledRules(t *testing.T) {
	config := DefaultConfig().Format
	config.TrimTrailingWhitespace = false
	config.InsertFinalNewline = false
	config.NormalizeSpaces = false

	source := "let x = 1   "
	tree := parseVim(t, source)
	edits := Format(source, tree, config)
	assert.Empty(t, edits)
}

func TestFormatUnicodeStrings(t *testing.T) {
	source := "let x = '日本語'   \n"
	result := formatToString(t, source, DefaultConfig().Format)
	assert.Contains(t, result, "'日本語'")
	assert.NotContains(t, result, "   \n")
}
