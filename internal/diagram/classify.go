package diagram

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var fenceMarkers = []string{"```", "~~~"}

// IsFence reports whether line delimits a fenced block and returns the
// lower-cased first word of its info string.
func IsFence(line string) (bool, string) {
	trimmed := strings.TrimSpace(line)
	for _, marker := range fenceMarkers {
		rest, ok := strings.CutPrefix(trimmed, marker)
		if !ok {
			continue
		}
		if fields := strings.Fields(strings.ToLower(rest)); len(fields) > 0 {
			return true, fields[0]
		}
		return true, ""
	}
	return false, ""
}

// IsDiagramBlock reports whether lines look like a box diagram: at least
// three lines open with a border rune and at least one horizontal-rule rune
// appears somewhere.
func IsDiagramBlock(lines []string) bool {
	borders := 0
	hasRule := false
	for _, line := range lines {
		body := trimLeft(line)
		if body == "" {
			continue
		}
		if isLeftBorder(firstRune(body)) {
			borders++
		}
		if !hasRule && strings.ContainsAny(body, ruleChars) {
			hasRule = true
		}
	}
	return borders >= 3 && hasRule
}

func trimLeft(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }

func trimRight(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }

// splitIndent splits line into its leading whitespace and the rest.
func splitIndent(line string) (indent, body string) {
	body = trimLeft(line)
	return line[:len(line)-len(body)], body
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
