package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawarimidoll/hjkls/transport"
)

func makeDiagnostic(line uint32, code string) transport.Diagnostic {
	return transport.Diagnostic{
		Range: transport.Range{
			Start: transport.Position{Line: line, Character: 0},
			End:   transport.Position{Line: line, Character: 10},
		},
		Source:  "hjkls",
		Code:    code,
		Message: "test",
	}
}

func TestParseIgnoreDirectivesLegacyComment(t *testing.T) {
	source := "\" hjkls:ignore suspicious#normal_bang\nnormal j"
	directives := ParseIgnoreDirectives(source)
	require.Len(t, directives, 1)
	assert.Equal(t, uint32(0), directives[0].Line)
	assert.Equal(t, []string{"suspicious#normal_bang"}, directives[0].Rules)
	assert.Equal(t, ToEndOfFile, directives[0].Kind)
}

func TestParseIgnoreDirectivesVim9Comment(t *testing.T) {
	source := "vim9script\n# hjkls:ignore-next-line suspicious#normal_bang\nnormal j"
	directives := ParseIgnoreDirectives(source)
	require.Len(t, directives, 1)
	assert.Equal(t, uint32(1), directives[0].Line)
	assert.Equal(t, NextLine, directives[0].Kind)
}

func TestParseIgnoreDirectivesMultipleRules(t *testing.T) {
	source := "\" hjkls:ignore suspicious#normal_bang, style#double_dot"
	directives := ParseIgnoreDirectives(source)
	require.Len(t, directives, 1)
	assert.Equal(t, []string{"suspicious#normal_bang", "style#double_dot"}, directives[0].Rules)
}

func TestParseIgnoreDirectivesNoRules(t *testing.T) {
	source := "\" hjkls:ignore"
	directives := ParseIgnoreDirectives(source)
	require.Len(t, directives, 1)
	assert.Empty(t, directives[0].Rules)
}

func TestFilterIgnoredNextLine(t *testing.T) {
	directives := []IgnoreDirective{{
		Line:  0,
		Rules: []string{"suspicious#normal_bang"},
		Kind:  NextLine,
	}}

	diagnostics := []transport.Diagnostic{
		makeDiagnostic(1, "hjkls/normal_bang"), // suppressed
		makeDiagnostic(2, "hjkls/normal_bang"), // kept, wrong line
		makeDiagnostic(1, "hjkls/double_dot"),  // kept, different rule
	}

	filtered := FilterIgnored(diagnostics, directives)
	require.Len(t, filtered, 2)
	assert.Equal(t, uint32(2), filtered[0].Range.Start.Line)
	assert.Equal(t, "hjkls/double_dot", filtered[1].Code)
}

func TestFilterIgnoredToEndOfFile(t *testing.T) {
	directives := []IgnoreDirective{{
		Line:  5,
		Rules: []string{"suspicious#normal_bang"},
		Kind:  ToEndOfFile,
	}}

	diagnostics := []transport.Diagnostic{
		makeDiagnostic(3, "hjkls/normal_bang"),  // before directive, kept
		makeDiagnostic(10, "hjkls/normal_bang"), // suppressed
		makeDiagnostic(10, "hjkls/double_dot"),  // different rule, kept
	}

	filtered := FilterIgnored(diagnostics, directives)
	assert.Len(t, filtered, 2)
}

func TestFilterIgnoredAllRules(t *testing.T) {
	directives := []IgnoreDirective{{Line: 0, Kind: ToEndOfFile}}

	diagnostics := []transport.Diagnostic{
		makeDiagnostic(5, "hjkls/normal_bang"),
		makeDiagnostic(5, "hjkls/double_dot"),
	}

	assert.Empty(t, FilterIgnored(diagnostics, directives))
}

func TestFilterIgnoredBareRuleName(t *testing.T) {
	directives := []IgnoreDirective{{
		Line:  0,
		Rules: []string{"normal_bang"},
		Kind:  NextLine,
	}}

	diagnostics := []transport.Diagnostic{makeDiagnostic(1, "hjkls/normal_bang")}
	assert.Empty(t, FilterIgnored(diagnostics, directives))
}

func TestFindCommentStart(t *testing.T) {
	tests := []struct {
		line  string
		want  int
		found bool
	}{
		{"\" comment", 0, true},
		{"# vim9 comment", 0, true},
		{"  \" indented", 2, true},
		{"code \" comment", 5, true},
		{"no comment here", 0, false},
	}
	for _, tt := range tests {
		got, found := findCommentStart(tt.line)
		assert.Equal(t, tt.found, found, tt.line)
		if found {
			assert.Equal(t, tt.want, got, tt.line)
		}
	}
}
