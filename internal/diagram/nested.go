package diagram

import (
	"slices"
	"strings"
)

// maxNestingDepth bounds recursion into boxes drawn inside boxes.
const maxNestingDepth = 256

// minNestedRun is the number of consecutive content lines an inner box needs.
const minNestedRun = 3

// fixNested looks for runs of content lines sharing one outer border rune and
// repairs any diagram drawn inside them without changing the outer width.
func fixNested(g Group, depth int) Group {
	if depth >= maxNestingDepth {
		return g
	}
	out := slices.Clone(g)
	for i := 0; i < len(out); {
		outer, ok := contentBorder(out[i].Text)
		if !ok {
			i++
			continue
		}
		start := i
		for i < len(out) {
			if b, ok := contentBorder(out[i].Text); !ok || b != outer {
				break
			}
			i++
		}
		if i-start >= minNestedRun {
			rewrapRun(out[start:i], outer, depth)
		}
	}
	return out
}

// rewrapRun repairs the diagram inside run in place. Inner lines that would
// no longer fit between the outer borders are left alone.
func rewrapRun(run Group, outer rune, depth int) {
	right := rightBorder[outer]
	inner := make([]string, len(run))
	for k, ln := range run {
		inner[k] = stripOuter(ln.Text, right)
	}
	if !IsDiagramBlock(inner) {
		return
	}
	for _, g := range SplitGroups(inner) {
		for _, ln := range fixGroup(g, depth+1) {
			target := &run[ln.Index]
			indent, _ := splitIndent(target.Text)
			width := runeLen(target.Text) - runeLen(indent) - 2
			n := runeLen(ln.Text)
			if n > width {
				continue
			}
			target.Text = indent + string(outer) + ln.Text + strings.Repeat(" ", width-n) + string(right)
		}
	}
}

// contentBorder returns the left border of a content line.
func contentBorder(line string) (rune, bool) {
	body := trimLeft(line)
	if body == "" {
		return 0, false
	}
	r := firstRune(body)
	return r, isContentLeft(r)
}

// stripOuter removes the indentation, the outer left border and, when
// present, the outer right border from line.
func stripOuter(line string, right rune) string {
	_, body := splitIndent(line)
	r := []rune(body)[1:]
	if n := len(r); n > 0 && r[n-1] == right {
		r = r[:n-1]
	}
	return string(r)
}
