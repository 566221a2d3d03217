package server

import (
	"strings"
	"unicode"

	"github.com/kawarimidoll/hjkls/transport"
)

// Diagnostic suppression via inline comments:
//
//	" hjkls:ignore <rules>            ignore to end of file
//	" hjkls:ignore-next-line <rules>  ignore the next line only
//
// Rules are comma-separated, each bare or category#rule. An empty rule list
// matches everything. Both `"` (legacy) and `#` (Vim9) comments work.

type IgnoreKind int

const (
	ToEndOfFile IgnoreKind = iota
	NextLine
)

type IgnoreDirective struct {
	// Zero-based line of the directive
	Line uint32
	// Empty means all rules
	Rules []string
	Kind  IgnoreKind
}

// ParseIgnoreDirectives scans source for ignore directives, once per
// document version.
func ParseIgnoreDirectives(source string) []IgnoreDirective {
	var directives []IgnoreDirective

	for lineNum, line := range strings.Split(source, "\n") {
		commentPos, ok := findCommentStart(line)
		if !ok {
			continue
		}
		comment := line[commentPos:]

		// Longer match first.
		if idx := strings.Index(comment, "hjkls:ignore-next-line"); idx >= 0 {
			directives = append(directives, IgnoreDirective{
				Line:  uint32(lineNum),
				Rules: parseRuleList(comment[idx+len("hjkls:ignore-next-line"):]),
				Kind:  NextLine,
			})
		} else if idx := strings.Index(comment, "hjkls:ignore"); idx >= 0 {
			directives = append(directives, IgnoreDirective{
				Line:  uint32(lineNum),
				Rules: parseRuleList(comment[idx+len("hjkls:ignore"):]),
				Kind:  ToEndOfFile,
			})
		}
	}

	return directives
}

// findCommentStart locates a `"` or `#` comment marker at line start or
// preceded by whitespace. Heuristic: these characters inside strings are
// false positives, but "hjkls:ignore" is an unusual string to appear in
// code.
func findCommentStart(line string) (int, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "\"") || strings.HasPrefix(trimmed, "#") {
		return len(line) - len(trimmed), true
	}

	for i, c := range line {
		if c != '"' && c != '#' {
			continue
		}
		if i == 0 {
			return i, true
		}
		prev := rune(line[i-1])
		if unicode.IsSpace(prev) {
			return i, true
		}
	}
	return 0, false
}

func parseRuleList(text string) []string {
	var rules []string
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			rules = append(rules, token)
		}
	}
	return rules
}

// FilterIgnored drops diagnostics addressed by a directive.
func FilterIgnored(diagnostics []transport.Diagnostic, directives []IgnoreDirective) []transport.Diagnostic {
	if len(directives) == 0 {
		return diagnostics
	}

	filtered := diagnostics[:0]
	for _, diag := range diagnostics {
		if !shouldIgnore(diag, directives) {
			filtered = append(filtered, diag)
		}
	}
	return filtered
}

func shouldIgnore(diag transport.Diagnostic, directives []IgnoreDirective) bool {
	line := diag.Range.Start.Line
	for _, directive := range directives {
		switch directive.Kind {
		case NextLine:
			if directive.Line+1 == line && matchesRules(directive.Rules, diag.Code) {
				return true
			}
		case ToEndOfFile:
			if directive.Line < line && matchesRules(directive.Rules, diag.Code) {
				return true
			}
		}
	}
	return false
}

// matchesRules matches a diagnostic code against directive tokens. Tokens
// may be bare rule names or category#rule; matching is on the rule-name
// side. Empty rule lists match everything; codeless diagnostics only match
// empty lists.
func matchesRules(rules []string, code string) bool {
	if len(rules) == 0 {
		return true
	}
	if code == "" {
		return false
	}
	ruleName := strings.TrimPrefix(code, "hjkls/")

	for _, rule := range rules {
		if _, name, found := strings.Cut(rule, "#"); found {
			if name == ruleName {
				return true
			}
		} else if rule == ruleName {
			return true
		}
	}
	return false
}
