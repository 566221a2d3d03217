package server

import (
	"strconv"
	"strings"
)

// NormalizeKeyNotation canonicalizes a <...> key token per :h key-notation.
// Returns ("", false) when the token is already canonical, or when its key
// is unknown and it has no modifiers; an unknown key keeps its name but still
// gets its modifiers normalized.
func NormalizeKeyNotation(key string) (string, bool) {
	if !strings.HasPrefix(key, "<") || !strings.HasSuffix(key, ">") {
		return "", false
	}
	inner := key[1 : len(key)-1]
	if inner == "" {
		return "", false
	}

	parts := strings.Split(inner, "-")
	var modifiers []string
	keyName := inner

	if len(parts) > 1 {
		// The last part is always the key; leading single-letter parts
		// from the modifier set count as modifiers.
		modEnd := 0
		for i, part := range parts[:len(parts)-1] {
			if len(part) == 1 && strings.ContainsRune("CSMADTcsmadt", rune(part[0])) {
				modEnd = i + 1
			} else {
				break
			}
		}
		if modEnd > 0 {
			for _, m := range parts[:modEnd] {
				modifiers = append(modifiers, strings.ToUpper(m))
			}
			keyName = strings.Join(parts[modEnd:], "-")
		}
	}

	assemble := func(normalizedKey string) (string, bool) {
		var result string
		if len(modifiers) > 0 {
			result = "<" + strings.Join(modifiers, "-") + "-" + normalizedKey + ">"
		} else {
			result = "<" + normalizedKey + ">"
		}
		if result == key {
			return "", false
		}
		return result, true
	}

	lower := strings.ToLower(keyName)

	// Function keys: F + number.
	if strings.HasPrefix(lower, "f") && len(lower) > 1 {
		if _, err := strconv.Atoi(lower[1:]); err == nil {
			return assemble("F" + keyName[1:])
		}
	}

	// Keypad keys.
	if strings.HasPrefix(lower, "k") && len(lower) > 1 {
		suffix := lower[1:]
		if normalized, ok := keypadKeys[suffix]; ok {
			return assemble(normalized)
		}
		if len(suffix) == 1 && suffix[0] >= '0' && suffix[0] <= '9' {
			return assemble("k" + suffix)
		}
	}

	if normalized, ok := specialKeys[lower]; ok {
		return assemble(normalized)
	}

	// Unknown key: keep its name but still normalize modifier casing.
	if len(modifiers) == 0 {
		return "", false
	}
	return assemble(keyName)
}

var specialKeys = map[string]string{
	"cr":       "CR",
	"return":   "CR",
	"enter":    "CR",
	"nl":       "NL",
	"newline":  "NL",
	"linefeed": "NL",
	"lf":       "NL",
	"tab":      "Tab",
	"esc":      "Esc",
	"escape":   "Esc",
	"space":    "Space",
	"sp":       "Space",
	"bs":       "BS",
	"backspace": "BS",
	"del":      "Del",
	"delete":   "Del",
	"insert":   "Insert",
	"ins":      "Insert",
	"home":     "Home",
	"end":      "End",
	"pageup":   "PageUp",
	"pu":       "PageUp",
	"pagedown": "PageDown",
	"pd":       "PageDown",
	"nul":      "Nul",
	"null":     "Nul",
	"bar":      "Bar",
	"bslash":   "Bslash",
	"lt":       "lt",

	"up":    "Up",
	"down":  "Down",
	"left":  "Left",
	"right": "Right",

	"leader":      "Leader",
	"localleader": "LocalLeader",
	"plug":        "Plug",
	"sid":         "SID",
	"snr":         "SNR",
	"cmd":         "Cmd",

	"scrollwheelup":    "ScrollWheelUp",
	"scrollwheeldown":  "ScrollWheelDown",
	"scrollwheelleft":  "ScrollWheelLeft",
	"scrollwheelright": "ScrollWheelRight",

	"leftmouse":     "LeftMouse",
	"rightmouse":    "RightMouse",
	"middlemouse":   "MiddleMouse",
	"leftdrag":      "LeftDrag",
	"rightdrag":     "RightDrag",
	"leftrelease":   "LeftRelease",
	"rightrelease":  "RightRelease",
	"middlerelease": "MiddleRelease",
	"x1mouse":       "X1Mouse",
	"x2mouse":       "X2Mouse",
	"x1drag":        "X1Drag",
	"x2drag":        "X2Drag",
	"x1release":     "X1Release",
	"x2release":     "X2Release",

	"help":        "Help",
	"undo":        "Undo",
	"ignore":      "Ignore",
	"drop":        "Drop",
	"focusgained": "FocusGained",
	"focuslost":   "FocusLost",
	"cursorhold":  "CursorHold",
}

var keypadKeys = map[string]string{
	"plus":     "kPlus",
	"add":      "kPlus",
	"minus":    "kMinus",
	"subtract": "kMinus",
	"multiply": "kMultiply",
	"divide":   "kDivide",
	"enter":    "kEnter",
	"point":    "kPoint",
	"decimal":  "kPoint",
	"home":     "kHome",
	"end":      "kEnd",
	"pageup":   "kPageUp",
	"pagedown": "kPageDown",
	"insert":   "kInsert",
	"del":      "kDel",
	"delete":   "kDel",
}
