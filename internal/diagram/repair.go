package diagram

import "strings"

// FixGroup rewrites every line of g so that all of them end at the same
// column with the right border matching their left border. Boxes nested in
// the group's content lines are repaired afterwards.
func FixGroup(g Group) Group {
	return fixGroup(g, 0)
}

func fixGroup(g Group, depth int) Group {
	width := targetWidth(g)
	fixed := make(Group, len(g))
	for i, ln := range g {
		fixed[i] = Line{Index: ln.Index, Text: fixLine(ln.Text, width)}
	}
	return fixNested(fixed, depth)
}

// targetWidth is the widest right-trimmed line in g, counting one extra rune
// for every line that still lacks its right border.
func targetWidth(g Group) int {
	width := 0
	for _, ln := range g {
		body := trimLeft(ln.Text)
		if body == "" {
			continue
		}
		trimmed := trimRight(ln.Text)
		w := runeLen(trimmed)
		if right, ok := rightBorder[firstRune(body)]; ok && !hasRightBorder(trimRight(body), right) {
			w++
		}
		width = max(width, w)
	}
	return width
}

// hasRightBorder reports whether body already ends with right. A lone
// border rune is the left border, never the right one.
func hasRightBorder(body string, right rune) bool {
	r := []rune(body)
	return len(r) > 1 && r[len(r)-1] == right
}

// fixLine rewrites line to exactly width runes, keeping its indentation.
func fixLine(line string, width int) string {
	indent, body := splitIndent(line)
	if body == "" {
		return line
	}
	left := firstRune(body)
	right, ok := rightBorder[left]
	if !ok {
		return line
	}
	inner := width - runeLen(indent)
	if isRuleLeft(left) {
		return indent + fixRule(body, inner, right)
	}
	// Content lines and any other border-prefixed line.
	return indent + fixContent(body, inner, right)
}

// fixRule extends a horizontal rule to width. Runes up to and including the
// last interior junction stay in place; the run after it is re-filled.
func fixRule(body string, width int, right rune) string {
	r := stripRight(body, right)
	fill := fillRune(r)
	for p := len(r) - 1; p > 0; p-- {
		if isJunction(r[p]) {
			r = r[:p+1]
			break
		}
	}
	return pad(r, width-1, fill) + string(right)
}

// fixContent pads a content line with spaces to width. Content is never cut.
func fixContent(body string, width int, right rune) string {
	return pad(stripRight(body, right), width-1, ' ') + string(right)
}

// stripRight right-trims body and drops its right border if present.
func stripRight(body string, right rune) []rune {
	trimmed := trimRight(body)
	r := []rune(trimmed)
	if hasRightBorder(trimmed, right) {
		r = r[:len(r)-1]
	}
	return r
}

func pad(r []rune, width int, fill rune) string {
	if n := width - len(r); n > 0 {
		return string(r) + strings.Repeat(string(fill), n)
	}
	return string(r)
}
