package server

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

// CodeActions synthesizes one quick fix per diagnostic that carries a
// supported code.
func CodeActions(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.CodeActionParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ok := s.Documents.Get(uri)
	if !ok {
		return null, nil
	}
	lines := strings.Split(doc.Text, "\n")

	var actions []transport.CodeAction
	for _, diag := range params.Context.Diagnostics {
		if diag.Code == "" {
			continue
		}
		title, edit, ok := quickFixFor(diag, lines)
		if !ok {
			continue
		}
		actions = append(actions, transport.CodeAction{
			Title:       title,
			Kind:        transport.QuickFix,
			Diagnostics: []transport.Diagnostic{diag},
			IsPreferred: true,
			Edit: &transport.WorkspaceEdit{
				Changes: map[util.URI][]transport.TextEdit{uri: {edit}},
			},
		})
	}

	if len(actions) == 0 {
		return null, nil
	}
	return marshalResult(actions)
}

// quickFixFor builds the textual transform for one diagnostic.
func quickFixFor(diag transport.Diagnostic, lines []string) (string, transport.TextEdit, bool) {
	startLine := int(diag.Range.Start.Line)
	if startLine >= len(lines) {
		return "", transport.TextEdit{}, false
	}
	line := lines[startLine]
	startCol := int(diag.Range.Start.Character)
	endCol := len(line)
	if diag.Range.Start.Line == diag.Range.End.Line {
		endCol = int(diag.Range.End.Character)
	}
	if startCol > len(line) || endCol > len(line) || startCol > endCol {
		return "", transport.TextEdit{}, false
	}
	text := line[startCol:endCol]

	switch diag.Code {
	case "hjkls/double_dot":
		newText := replaceSingleDotWithDouble(text)
		if newText == text {
			return "", transport.TextEdit{}, false
		}
		return "Use `..` for string concatenation",
			transport.TextEdit{Range: diag.Range, NewText: newText}, true

	case "hjkls/single_quote":
		if !strings.HasPrefix(text, "\"") || !strings.HasSuffix(text, "\"") || len(text) < 2 {
			return "", transport.TextEdit{}, false
		}
		inner := text[1 : len(text)-1]
		return "Use single quotes",
			transport.TextEdit{Range: diag.Range, NewText: "'" + inner + "'"}, true

	case "hjkls/key_notation":
		normalized, ok := NormalizeKeyNotation(text)
		if !ok {
			return "", transport.TextEdit{}, false
		}
		return "Normalize key notation",
			transport.TextEdit{Range: diag.Range, NewText: normalized}, true

	case "hjkls/normal_bang":
		after := line[startCol:]
		pos := strings.Index(strings.ToLower(after), "normal")
		if pos < 0 {
			return "", transport.TextEdit{}, false
		}
		normalStart := startCol + pos
		normalEnd := normalStart + len("normal")
		if normalEnd > len(line) || strings.HasPrefix(line[normalEnd:], "!") {
			return "", transport.TextEdit{}, false
		}
		original := line[normalStart:normalEnd]
		return "Use `normal!` to ignore user mappings",
			transport.TextEdit{
				Range: transport.Range{
					Start: transport.Position{Line: diag.Range.Start.Line, Character: uint32(normalStart)},
					End:   transport.Position{Line: diag.Range.Start.Line, Character: uint32(normalEnd)},
				},
				NewText: original + "!",
			}, true

	case "hjkls/function_bang":
		after := line[startCol:]
		pos := strings.Index(strings.ToLower(after), "function!")
		if pos < 0 {
			return "", transport.TextEdit{}, false
		}
		funcStart := startCol + pos
		funcEnd := funcStart + len("function!")
		original := line[funcStart:funcEnd]
		return "Remove unnecessary `!` from s: function",
			transport.TextEdit{
				Range: transport.Range{
					Start: transport.Position{Line: diag.Range.Start.Line, Character: uint32(funcStart)},
					End:   transport.Position{Line: diag.Range.Start.Line, Character: uint32(funcEnd)},
				},
				NewText: original[:len("function")],
			}, true

	case "hjkls/match_case":
		pos := strings.Index(text, "=~")
		if pos < 0 {
			return "", transport.TextEdit{}, false
		}
		after := text[pos+2:]
		if strings.HasPrefix(after, "#") || strings.HasPrefix(after, "?") {
			return "", transport.TextEdit{}, false
		}
		opStart := startCol + pos
		return "Use `=~#` for case-sensitive match",
			transport.TextEdit{
				Range: transport.Range{
					Start: transport.Position{Line: diag.Range.Start.Line, Character: uint32(opStart)},
					End:   transport.Position{Line: diag.Range.Start.Line, Character: uint32(opStart + 2)},
				},
				NewText: "=~#",
			}, true

	case "hjkls/abort":
		// Append ` abort` at the end of the function header line.
		pos := transport.Position{Line: diag.Range.Start.Line, Character: uint32(len(line))}
		return "Add `abort` attribute",
			transport.TextEdit{
				Range:   transport.Range{Start: pos, End: pos},
				NewText: " abort",
			}, true

	case "hjkls/plug_noremap":
		noremap, ok := NoremapEquivalent(text)
		if !ok {
			return "", transport.TextEdit{}, false
		}
		return "Use noremap for <Plug> mapping",
			transport.TextEdit{Range: diag.Range, NewText: noremap}, true
	}

	return "", transport.TextEdit{}, false
}

// replaceSingleDotWithDouble turns lone dots into `..`, leaving existing
// `..` operators alone.
func replaceSingleDotWithDouble(text string) string {
	var result strings.Builder
	chars := []byte(text)
	for i := 0; i < len(chars); i++ {
		if chars[i] == '.' {
			prevIsDot := i > 0 && chars[i-1] == '.'
			nextIsDot := i+1 < len(chars) && chars[i+1] == '.'
			if !prevIsDot && !nextIsDot {
				result.WriteString("..")
				continue
			}
		}
		result.WriteByte(chars[i])
	}
	return result.String()
}
