package server

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
)

// CompletionContext classifies the cursor position into the kind of
// candidates to offer.
type CompletionContext int

const (
	// Line start or command position -> Ex commands
	CommandContext CompletionContext = iota
	// After autocmd -> event names
	AutocmdEventContext
	// After set/setlocal -> option names
	OptionContext
	// After a map command, typing <... -> map options
	MapOptionContext
	// Inside has('...') -> feature names
	HasFeatureContext
	// Expression/function call context -> functions and variables
	FunctionContext
)

var mapCommands = []string{
	"map", "nmap", "vmap", "xmap", "smap", "imap", "cmap", "omap", "lmap", "tmap",
	"noremap", "nnoremap", "vnoremap", "xnoremap", "snoremap", "inoremap",
	"cnoremap", "onoremap", "lnoremap", "tnoremap",
}

// GetCompletionContext determines the completion kind from the prefix of
// the line up to the cursor.
func GetCompletionContext(line string, col int) CompletionContext {
	if col > len(line) {
		col = len(line)
	}
	beforeCursor := line[:col]
	trimmed := strings.TrimLeft(beforeCursor, " \t")

	if trimmed == "" {
		return CommandContext
	}

	// autocmd [group] EVENT
	rest, found := strings.CutPrefix(trimmed, "autocmd")
	if !found {
		rest, found = strings.CutPrefix(trimmed, "au ")
	}
	if found {
		// With zero or one token after the command we are still typing the
		// event (or a group followed by the event).
		if len(strings.Fields(strings.TrimLeft(rest, " \t"))) <= 1 {
			return AutocmdEventContext
		}
	}

	for _, prefix := range []string{"set ", "setlocal ", "setglobal ", "se ", "setl ", "setg "} {
		if strings.HasPrefix(trimmed, prefix) {
			return OptionContext
		}
	}

	for _, cmd := range mapCommands {
		rest, found := strings.CutPrefix(trimmed, cmd)
		if !found || (rest != "" && !strings.HasPrefix(rest, " ")) {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		if strings.HasSuffix(rest, "<") {
			return MapOptionContext
		}
		fields := strings.Fields(rest)
		if len(fields) > 0 && strings.HasPrefix(fields[len(fields)-1], "<") {
			return MapOptionContext
		}
	}

	// has('... with an unclosed quote
	if pos := strings.LastIndex(beforeCursor, "has("); pos >= 0 {
		afterHas := beforeCursor[pos:]
		if strings.Count(afterHas, "'") == 1 || strings.Count(afterHas, "\"") == 1 {
			return HasFeatureContext
		}
	}

	// No = and no call pattern while still inside the first word: command.
	firstWord := ""
	if fields := strings.Fields(trimmed); len(fields) > 0 {
		firstWord = fields[0]
	}
	if !strings.Contains(trimmed, "=") && !strings.Contains(trimmed, "(") && firstWord != "" {
		firstWordEnd := strings.IndexFunc(trimmed, unicode.IsSpace)
		if firstWordEnd < 0 {
			firstWordEnd = len(trimmed)
		}
		if col <= len(beforeCursor)-len(trimmed)+firstWordEnd {
			return CommandContext
		}
	}

	return FunctionContext
}

// FindCompletionTokenStart scans backward from the cursor over identifier
// characters (and '#') plus an optional two-character scope prefix, and
// returns the column the completion edit should replace from.
func FindCompletionTokenStart(line string, cursorCol int) int {
	chars := []rune(line)
	col := cursorCol
	if col > len(chars) {
		col = len(chars)
	}
	if col == 0 {
		return 0
	}

	start := col
	for start > 0 {
		ch := chars[start-1]
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '#' {
			start--
		} else {
			break
		}
	}

	// Include a scope prefix like s: or g: directly before the identifier.
	if start >= 2 && chars[start-1] == ':' {
		switch chars[start-2] {
		case 's', 'g', 'l', 'a', 'b', 'w', 't', 'v':
			if start < 3 || !(unicode.IsLetter(chars[start-3]) || unicode.IsDigit(chars[start-3])) {
				start -= 2
			}
		}
	}

	return start
}

// Builders

func (s *Server) buildCommandCompletions(editRange transport.Range) []transport.CompletionItem {
	var items []transport.CompletionItem
	for _, cmd := range BuiltinCommands {
		if !cmd.Availability.Compatible(s.mode) {
			continue
		}
		items = append(items, transport.CompletionItem{
			Label:         cmd.Name,
			Kind:          transport.KeywordCompletion,
			Documentation: availabilityDoc(cmd.Availability, cmd.Description),
			TextEdit:      &transport.TextEdit{Range: editRange, NewText: cmd.Name},
		})
	}
	return items
}

func (s *Server) buildAutocmdEventCompletions(editRange transport.Range) []transport.CompletionItem {
	var items []transport.CompletionItem
	for _, event := range AutocmdEvents {
		if !event.Availability.Compatible(s.mode) {
			continue
		}
		items = append(items, transport.CompletionItem{
			Label:         event.Name,
			Kind:          transport.EventCompletion,
			Documentation: availabilityDoc(event.Availability, event.Description),
			TextEdit:      &transport.TextEdit{Range: editRange, NewText: event.Name},
		})
	}
	return items
}

func (s *Server) buildOptionCompletions(editRange transport.Range) []transport.CompletionItem {
	var items []transport.CompletionItem
	for _, opt := range BuiltinOptions {
		if !opt.Availability.Compatible(s.mode) {
			continue
		}
		doc := availabilityDoc(opt.Availability, opt.Description)
		item := transport.CompletionItem{
			Label:         opt.Name,
			Kind:          transport.PropertyCompletion,
			Documentation: doc,
			TextEdit:      &transport.TextEdit{Range: editRange, NewText: opt.Name},
		}
		if opt.Short != "" {
			item.Detail = "short: " + opt.Short
		}
		items = append(items, item)

		if opt.Short != "" {
			items = append(items, transport.CompletionItem{
				Label:         opt.Short,
				Kind:          transport.PropertyCompletion,
				Detail:        "long: " + opt.Name,
				Documentation: doc,
				TextEdit:      &transport.TextEdit{Range: editRange, NewText: opt.Short},
			})
		}
	}
	return items
}

func (s *Server) buildMapOptionCompletions(editRange transport.Range) []transport.CompletionItem {
	var items []transport.CompletionItem
	for _, opt := range MapOptions {
		items = append(items, transport.CompletionItem{
			Label:         opt.Name,
			Kind:          transport.KeywordCompletion,
			Documentation: opt.Description,
			TextEdit:      &transport.TextEdit{Range: editRange, NewText: opt.Name},
		})
	}
	return items
}

func (s *Server) buildHasFeatureCompletions(editRange transport.Range) []transport.CompletionItem {
	var items []transport.CompletionItem
	for _, feat := range HasFeatures {
		if !feat.Availability.Compatible(s.mode) {
			continue
		}
		items = append(items, transport.CompletionItem{
			Label:         feat.Name,
			Kind:          transport.ConstantCompletion,
			Documentation: availabilityDoc(feat.Availability, feat.Description),
			TextEdit:      &transport.TextEdit{Range: editRange, NewText: feat.Name},
		})
	}
	return items
}

func (s *Server) buildFunctionCompletions(editRange transport.Range, uri, content string, inputHasScope bool) []transport.CompletionItem {
	var items []transport.CompletionItem

	// 1. Builtin functions
	for _, fn := range BuiltinFunctions {
		if !fn.Availability.Compatible(s.mode) {
			continue
		}
		items = append(items, transport.CompletionItem{
			Label:         fn.Name,
			Kind:          transport.FunctionCompletion,
			Detail:        fn.Signature,
			Documentation: availabilityDoc(fn.Availability, fn.Description),
			TextEdit:      &transport.TextEdit{Range: editRange, NewText: fn.Name},
		})
	}

	// 2. User symbols from the current document
	for _, sym := range s.Store.GetSymbols(uri, content) {
		if sym.Kind == parser.Parameter || sym.Name == "" {
			continue
		}
		kind := transport.FunctionCompletion
		detail := sym.Signature
		if sym.Kind == parser.Variable {
			kind = transport.VariableCompletion
			if prefix := sym.Scope.Prefix(); prefix != "" {
				detail = strings.TrimSuffix(prefix, ":") + " variable"
			}
		}
		fullName := sym.FullName()

		// When the typed token has no scope prefix, filter on the bare
		// name so "Priv" still matches "s:Private".
		filterText := ""
		if sym.Scope.Prefix() != "" && !inputHasScope {
			filterText = sym.Name
		}

		items = append(items, transport.CompletionItem{
			Label:      fullName,
			Kind:       kind,
			Detail:     detail,
			FilterText: filterText,
			TextEdit:   &transport.TextEdit{Range: editRange, NewText: fullName},
		})
	}

	// 3. Builtin variables
	for _, v := range BuiltinVariables {
		if !v.Availability.Compatible(s.mode) {
			continue
		}
		items = append(items, transport.CompletionItem{
			Label:         v.Name,
			Kind:          transport.VariableCompletion,
			Detail:        "predefined variable",
			Documentation: availabilityDoc(v.Availability, v.Description),
			TextEdit:      &transport.TextEdit{Range: editRange, NewText: v.Name},
		})
	}

	return items
}

func availabilityDoc(a Availability, description string) string {
	suffix := a.LabelSuffix()
	if suffix == "" {
		return description
	}
	return strings.TrimSpace(suffix) + "\n" + description
}

// Completion handler
func Completion(ctx context.Context, s *Server, par json.RawMessage) (json.RawMessage, *transport.ResponseError) {
	var params transport.CompletionParams
	json.Unmarshal(par, &params)

	uri := params.TextDocument.URI
	doc, ok := s.Documents.Get(uri)
	if !ok {
		return marshalResult([]transport.CompletionItem{})
	}

	line := ""
	lines := strings.Split(doc.Text, "\n")
	if int(params.Position.Line) < len(lines) {
		line = lines[params.Position.Line]
	}
	col := int(params.Position.Character)

	tokenStart := FindCompletionTokenStart(line, col)
	currentInput := ""
	if tokenStart <= col && col <= len(line) {
		currentInput = line[tokenStart:col]
	}
	inputHasScope := strings.Contains(currentInput, ":")

	editRange := transport.Range{
		Start: transport.Position{Line: params.Position.Line, Character: uint32(tokenStart)},
		End:   params.Position,
	}

	var items []transport.CompletionItem
	switch GetCompletionContext(line, col) {
	case CommandContext:
		items = s.buildCommandCompletions(editRange)
	case AutocmdEventContext:
		items = s.buildAutocmdEventCompletions(editRange)
	case OptionContext:
		items = s.buildOptionCompletions(editRange)
	case MapOptionContext:
		items = s.buildMapOptionCompletions(editRange)
	case HasFeatureContext:
		items = s.buildHasFeatureCompletions(editRange)
	default:
		items = s.buildFunctionCompletions(editRange, uri, doc.Text, inputHasScope)
	}

	if items == nil {
		items = []transport.CompletionItem{}
	}
	return marshalResult(items)
}
