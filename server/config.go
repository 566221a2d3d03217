package server

import (
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/util"
)

// ConfigFileName is discovered in the first workspace root that contains it.
const ConfigFileName = ".hjkls.toml"

// FormatConfig controls the formatter.
type FormatConfig struct {
	IndentWidth int
	UseTabs     bool
	// When nil, the effective value is IndentWidth * 3.
	LineContinuationIndent *int
	TrimTrailingWhitespace bool
	InsertFinalNewline     bool
	NormalizeSpaces        bool
	// Reserved: parsed but not applied by the default composition path.
	SpaceAroundOperators bool
	SpaceAfterComma      bool
}

// EffectiveLineContinuationIndent returns the configured continuation
// indent, defaulting to three times the indent width.
func (f FormatConfig) EffectiveLineContinuationIndent() int {
	if f.LineContinuationIndent != nil {
		return *f.LineContinuationIndent
	}
	return f.IndentWidth * 3
}

// LintConfig holds category toggles and per-rule overrides. A nil category
// toggle means "use the default" (correctness/suspicious on, style off).
type LintConfig struct {
	Correctness *bool
	Suspicious  *bool
	Style       *bool
	// category -> rule name -> enabled
	Rules map[string]map[string]bool
}

type Config struct {
	Lint   LintConfig
	Format FormatConfig
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Lint: LintConfig{Rules: map[string]map[string]bool{}},
		Format: FormatConfig{
			IndentWidth:            2,
			TrimTrailingWhitespace: true,
			InsertFinalNewline:     true,
			NormalizeSpaces:        true,
			SpaceAroundOperators:   true,
			SpaceAfterComma:        true,
		},
	}
}

// IsRuleEnabled decides whether a rule fires. Priority: per-rule override,
// then category toggle, then the category default.
func (c *Config) IsRuleEnabled(category, rule string) bool {
	if overrides, ok := c.Lint.Rules[category]; ok {
		if enabled, ok := overrides[rule]; ok {
			return enabled
		}
	}

	switch category {
	case "correctness":
		if c.Lint.Correctness != nil {
			return *c.Lint.Correctness
		}
		return true
	case "suspicious":
		if c.Lint.Suspicious != nil {
			return *c.Lint.Suspicious
		}
		return true
	case "style":
		if c.Lint.Style != nil {
			return *c.Lint.Style
		}
		return false
	}
	return true
}

var formatDefaults = map[string]interface{}{
	"format.indent_width":             2,
	"format.use_tabs":                 false,
	"format.trim_trailing_whitespace": true,
	"format.insert_final_newline":     true,
	"format.normalize_spaces":         true,
	"format.space_around_operators":   true,
	"format.space_after_comma":        true,
}

// LoadConfig reads a .hjkls.toml file. Unknown keys are ignored. Any read
// or parse failure returns the defaults; users will notice when their
// config has no effect.
func LoadConfig(path util.Path) Config {
	cfg := DefaultConfig()

	k := koanf.New(".")
	k.Load(confmap.Provider(formatDefaults, "."), nil)
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		logging.Logger.Error("config load failed, using defaults", "path", path, "error", err)
		return cfg
	}

	if k.Exists("lint.correctness") {
		v := k.Bool("lint.correctness")
		cfg.Lint.Correctness = &v
	}
	if k.Exists("lint.suspicious") {
		v := k.Bool("lint.suspicious")
		cfg.Lint.Suspicious = &v
	}
	if k.Exists("lint.style") {
		v := k.Bool("lint.style")
		cfg.Lint.Style = &v
	}

	for _, category := range []string{"correctness", "suspicious", "style"} {
		rules := k.StringMap("lint.rules." + category)
		if len(rules) == 0 {
			continue
		}
		overrides := make(map[string]bool, len(rules))
		for rule, state := range rules {
			// "warn" enables, "off" disables; anything else is ignored.
			switch state {
			case "warn":
				overrides[rule] = true
			case "off":
				overrides[rule] = false
			}
		}
		cfg.Lint.Rules[category] = overrides
	}

	cfg.Format.IndentWidth = k.Int("format.indent_width")
	cfg.Format.UseTabs = k.Bool("format.use_tabs")
	cfg.Format.TrimTrailingWhitespace = k.Bool("format.trim_trailing_whitespace")
	cfg.Format.InsertFinalNewline = k.Bool("format.insert_final_newline")
	cfg.Format.NormalizeSpaces = k.Bool("format.normalize_spaces")
	cfg.Format.SpaceAroundOperators = k.Bool("format.space_around_operators")
	cfg.Format.SpaceAfterComma = k.Bool("format.space_after_comma")
	if k.Exists("format.line_continuation_indent") {
		v := k.Int("format.line_continuation_indent")
		cfg.Format.LineContinuationIndent = &v
	}

	return cfg
}

// FindConfig loads .hjkls.toml from the first workspace root containing it.
func FindConfig(roots []util.Path) Config {
	for _, root := range roots {
		path := filepath.Join(root, ConfigFileName)
		if util.IsValidPath(path) {
			return LoadConfig(path)
		}
	}
	return DefaultConfig()
}
