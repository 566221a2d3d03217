package server

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// parseSignatureParams splits the parameter list out of a signature string,
// e.g. "substitute({string}, {pat}, {sub}, {flags})" ->
// ["{string}", "{pat}", "{sub}", "{flags}"]. Commas inside brackets do not
// split.
func parseSignatureParams(signature string) []string {
	start := strings.Index(signature, "(")
	end := strings.LastIndex(signature, ")")
	if start < 0 || end < 0 || start+1 >= end {
		return nil
	}
	args := signature[start+1 : end]

	var params []string
	depth := 0
	var current strings.Builder
	for _, ch := range args {
		switch ch {
		case '[', '{':
			depth++
			current.WriteRune(ch)
		case ']', '}':
			depth--
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				if p := strings.TrimSpace(current.String()); p != "" {
					params = append(params, p)
				}
				current.Reset()
				continue
			}
			current.WriteRune(ch)
		default:
			current.WriteRune(ch)
		}
	}
	if p := strings.TrimSpace(current.String()); p != "" {
		params = append(params, p)
	}
	return params
}

// paramCountRange derives (min, max) argument counts from a signature.
// max < 0 means unlimited (varargs). Rules:
//   - "..." makes max unlimited
//   - "[" opens an optional region; arguments inside count toward max only
//   - "{name}" placeholders each count once
//   - user-style parameters with "=default" count toward max only
func paramCountRange(signature string) (int, int) {
	if strings.Contains(signature, "...") {
		minArgs := 0
		for _, p := range parseSignatureParams(signature) {
			if !strings.HasPrefix(p, "[") && !strings.Contains(p, "=") && !strings.Contains(p, "...") {
				minArgs++
			}
		}
		return minArgs, -1
	}

	start := strings.Index(signature, "(")
	end := strings.LastIndex(signature, ")")
	if start < 0 || end < 0 || start+1 >= end {
		return 0, 0
	}
	args := signature[start+1 : end]

	minArgs, maxArgs := 0, 0
	inOptional := false
	depth := 0
	var current strings.Builder

	countUserParam := func() {
		trimmed := strings.TrimSpace(current.String())
		if trimmed != "" && !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
			maxArgs++
			if !strings.Contains(trimmed, "=") {
				minArgs++
			}
		}
		current.Reset()
	}

	for _, ch := range args {
		switch ch {
		case '[':
			if depth == 0 {
				inOptional = true
			}
			depth++
		case ']':
			depth--
		case '{':
			current.Reset()
		case '}':
			if current.Len() > 0 {
				maxArgs++
				if !inOptional {
					minArgs++
				}
			}
			current.Reset()
		case ',':
			if depth == 0 {
				countUserParam()
				continue
			}
			current.WriteRune(ch)
		default:
			current.WriteRune(ch)
		}
	}
	countUserParam()

	return minArgs, maxArgs
}

// countCallArguments counts the argument children of a call_expression,
// ignoring the callee and punctuation.
func countCallArguments(node *tree_sitter.Node) int {
	count := 0
	for i := uint(1); i < node.ChildCount(); i++ {
		switch node.Child(i).Kind() {
		case "(", ")", ",":
		default:
			count++
		}
	}
	return count
}
