package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNotationAlreadyCanonical(t *testing.T) {
	for _, key := range []string{"<CR>", "<Esc>", "<Up>", "<F1>", "<C-a>", "<C-A>", "<Leader>"} {
		_, changed := NormalizeKeyNotation(key)
		assert.False(t, changed, key)
	}
}

func TestKeyNotationNormalized(t *testing.T) {
	tests := map[string]string{
		"<cr>":     "<CR>",
		"<return>": "<CR>",
		"<enter>":  "<CR>",
		"<esc>":    "<Esc>",
		"<ESC>":    "<Esc>",
		"<up>":     "<Up>",
		"<UP>":     "<Up>",
		"<f1>":     "<F1>",
		"<tab>":    "<Tab>",
		"<TAB>":    "<Tab>",
		"<space>":  "<Space>",
		"<sp>":     "<Space>",
		"<bs>":     "<BS>",
		"<pu>":     "<PageUp>",
		"<pd>":     "<PageDown>",
		"<leader>": "<Leader>",
		"<plug>":   "<Plug>",
		"<sid>":    "<SID>",
		"<c-a>":    "<C-a>",
		"<s-tab>":  "<S-Tab>",
		"<c-s-f1>": "<C-S-F1>",
		"<kplus>":  "<kPlus>",
		"<kenter>": "<kEnter>",
		"<K1>":     "<k1>",
	}
	for input, want := range tests {
		got, changed := NormalizeKeyNotation(input)
		assert.True(t, changed, input)
		assert.Equal(t, want, got, input)
	}
}

func TestKeyNotationKeypadCanonical(t *testing.T) {
	_, changed := NormalizeKeyNotation("<kPlus>")
	assert.False(t, changed)
}

func TestKeyNotationUnknownKeys(t *testing.T) {
	for _, key := range []string{"<unknown>", "<x>", "notakey", "<>"} {
		_, changed := NormalizeKeyNotation(key)
		assert.False(t, changed, key)
	}
}

func TestKeyNotationUnknownKeyWithModifiers(t *testing.T) {
	// Modifier casing is still normalized for unknown keys.
	got, changed := NormalizeKeyNotation("<c-unknownkey>")
	assert.True(t, changed)
	assert.Equal(t, "<C-unknownkey>", got)
}
