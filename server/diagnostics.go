package server

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

// ruleCategories is the closed rule -> category table used by the config
// filter and by documentation in .hjkls.toml.
var ruleCategories = map[string]string{
	"autoload_missing":    "correctness",
	"arity_mismatch":      "correctness",
	"scope_violation":     "correctness",
	"undefined_function":  "correctness",
	"normal_bang":         "suspicious",
	"match_case":          "suspicious",
	"autocmd_group":       "suspicious",
	"set_compatible":      "suspicious",
	"vim9script_position": "suspicious",
	"double_dot":          "style",
	"function_bang":       "style",
	"abort":               "style",
	"single_quote":        "style",
	"key_notation":        "style",
	"plug_noremap":        "style",
}

// RuleCategory maps a diagnostic code like "hjkls/normal_bang" to its
// category; unknown codes return "".
func RuleCategory(code string) string {
	return ruleCategories[strings.TrimPrefix(code, "hjkls/")]
}

// ComputeDiagnostics runs the full pipeline for one document version, in a
// fixed order: syntax errors, correctness lints, suspicious lints, style
// hints, then the ignore-directive and config filters.
func (s *Server) ComputeDiagnostics(uri util.URI, tree *tree_sitter.Tree, text string) []transport.Diagnostic {
	source := []byte(text)

	diagnostics := parser.SyntaxErrors(tree, source)

	root := tree.RootNode()
	s.collectAutoloadWarnings(root, source, uri, &diagnostics)

	symbols := s.Store.GetSymbols(uri, text)
	collectArityWarnings(root, source, symbols, &diagnostics)

	collectScopeViolations(root, source, false, &diagnostics)
	s.collectUndefinedFunctionWarnings(tree, source, uri, &diagnostics)

	diagnostics = append(diagnostics, collectSuspiciousWarnings(tree, source)...)
	diagnostics = append(diagnostics, collectStyleHints(tree, source)...)

	directives := ParseIgnoreDirectives(text)
	diagnostics = FilterIgnored(diagnostics, directives)

	config := s.Config()
	diagnostics = FilterByConfig(diagnostics, &config)

	return diagnostics
}

// FilterByConfig drops diagnostics whose rule is disabled. Diagnostics
// without a code (syntax errors) and unknown rules always pass.
func FilterByConfig(diagnostics []transport.Diagnostic, config *Config) []transport.Diagnostic {
	filtered := diagnostics[:0]
	for _, diag := range diagnostics {
		if diag.Code == "" {
			filtered = append(filtered, diag)
			continue
		}
		category := RuleCategory(diag.Code)
		if category == "" {
			filtered = append(filtered, diag)
			continue
		}
		rule := strings.TrimPrefix(diag.Code, "hjkls/")
		if config.IsRuleEnabled(category, rule) {
			filtered = append(filtered, diag)
		}
	}
	return filtered
}

// publishDiagnostics recomputes and queues diagnostics for an open
// document. Queued after the text update, so version ordering holds.
func (s *Server) publishDiagnostics(uri util.URI) {
	doc, ok := s.Documents.Get(uri)
	if !ok {
		return
	}

	diagnostics := s.ComputeDiagnostics(uri, doc.Tree, doc.Text)
	if diagnostics == nil {
		diagnostics = []transport.Diagnostic{}
	}
	s.diagChan <- transport.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	}
}
