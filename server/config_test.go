package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IsRuleEnabled("correctness", "undefined_function"))
	assert.True(t, cfg.IsRuleEnabled("suspicious", "normal_bang"))
	assert.False(t, cfg.IsRuleEnabled("style", "double_dot"))

	assert.Equal(t, 2, cfg.Format.IndentWidth)
	assert.Equal(t, 6, cfg.Format.EffectiveLineContinuationIndent())
	assert.True(t, cfg.Format.TrimTrailingWhitespace)
	assert.True(t, cfg.Format.InsertFinalNewline)
}

func TestLoadConfigCategorySettings(t *testing.T) {
	path := writeConfig(t, `
[lint]
correctness = true
suspicious = false
style = true
`)
	cfg := LoadConfig(path)

	assert.True(t, cfg.IsRuleEnabled("correctness", "undefined_function"))
	assert.False(t, cfg.IsRuleEnabled("suspicious", "normal_bang"))
	assert.True(t, cfg.IsRuleEnabled("style", "double_dot"))
}

func TestLoadConfigRuleOverrides(t *testing.T) {
	path := writeConfig(t, `
[lint]
suspicious = true
style = false

[lint.rules.suspicious]
normal_bang = "off"

[lint.rules.style]
double_dot = "warn"
`)
	cfg := LoadConfig(path)

	// Category enabled, rule disabled.
	assert.False(t, cfg.IsRuleEnabled("suspicious", "normal_bang"))
	assert.True(t, cfg.IsRuleEnabled("suspicious", "match_case"))

	// Category disabled, rule enabled.
	assert.True(t, cfg.IsRuleEnabled("style", "double_dot"))
	assert.False(t, cfg.IsRuleEnabled("style", "function_bang"))
}

func TestLoadConfigFormatSection(t *testing.T) {
	path := writeConfig(t, `
[format]
indent_width = 4
use_tabs = true
line_continuation_indent = 8
trim_trailing_whitespace = false
`)
	cfg := LoadConfig(path)

	assert.Equal(t, 4, cfg.Format.IndentWidth)
	assert.True(t, cfg.Format.UseTabs)
	assert.Equal(t, 8, cfg.Format.EffectiveLineContinuationIndent())
	assert.False(t, cfg.Format.TrimTrailingWhitespace)
	// Untouched keys keep defaults.
	assert.True(t, cfg.Format.InsertFinalNewline)
}

func TestLoadConfigUnknownKeysIgnored(t *testing.T) {
	path := writeConfig(t, `
[lint]
nonsense = true

[unknown_section]
foo = "bar"
`)
	cfg := LoadConfig(path)
	assert.True(t, cfg.IsRuleEnabled("correctness", "undefined_function"))
}

func TestLoadConfigBrokenFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "this is [not toml")
	cfg := LoadConfig(path)
	assert.Equal(t, 2, cfg.Format.IndentWidth)
	assert.True(t, cfg.IsRuleEnabled("suspicious", "normal_bang"))
}

func TestFindConfigPicksFirstRootWithFile(t *testing.T) {
	empty := t.TempDir()
	withConfig := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(withConfig, ConfigFileName),
		[]byte("[format]\nindent_width = 3\n"), 0644))

	cfg := FindConfig([]string{empty, withConfig})
	assert.Equal(t, 3, cfg.Format.IndentWidth)
}

func TestFindConfigNoFileAnywhere(t *testing.T) {
	cfg := FindConfig([]string{t.TempDir()})
	assert.Equal(t, 2, cfg.Format.IndentWidth)
}

func TestRuleCategoryTable(t *testing.T) {
	assert.Equal(t, "suspicious", RuleCategory("hjkls/normal_bang"))
	assert.Equal(t, "style", RuleCategory("hjkls/double_dot"))
	assert.Equal(t, "correctness", RuleCategory("hjkls/undefined_function"))
	assert.Equal(t, "", RuleCategory("hjkls/unknown_rule"))
	assert.Equal(t, "suspicious", RuleCategory("normal_bang"))
}
