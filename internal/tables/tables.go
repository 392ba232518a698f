// Package tables normalizes the column widths of markdown pipe tables.
package tables

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/sokinpui/raggedy/internal/parser"
)

// minColumnWidth keeps narrow columns readable.
const minColumnWidth = 3

var separatorCellRegex = regexp.MustCompile(`^\s*:?-+:?\s*$`)

type alignment int

const (
	alignDefault alignment = iota
	alignLeft
	alignCenter
	alignRight
)

// Fix rebuilds every markdown table in text so each column has one width.
// Rows inside fenced code blocks are left alone.
func Fix(text string) string {
	lines := strings.Split(text, "\n")
	endsWithNewline := strings.HasSuffix(text, "\n")
	fenced := fencedLines(text, len(lines))

	isRow := func(i int) bool { return !fenced[i] && isTableRow(lines[i]) }

	for i := 0; i < len(lines); {
		if !isRow(i) {
			i++
			continue
		}
		start := i
		for i < len(lines) && isRow(i) {
			i++
		}
		if i-start < 2 {
			continue
		}
		rebuildTable(lines[start:i])
	}

	out := strings.Join(lines, "\n")
	switch {
	case endsWithNewline && !strings.HasSuffix(out, "\n"):
		out += "\n"
	case !endsWithNewline && strings.HasSuffix(out, "\n"):
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// fencedLines marks the lines that belong to fenced code block content.
func fencedLines(text string, n int) []bool {
	fenced := make([]bool, n)
	regions, err := parser.FencedRegions([]byte(text))
	if err != nil {
		return fenced
	}
	for _, r := range regions {
		for i := r.Start; i < r.End && i < n; i++ {
			fenced[i] = true
		}
	}
	return fenced
}

// rebuildTable rewrites rows in place. Rows without a separator row are not
// a table.
func rebuildTable(rows []string) {
	sep := -1
	for j, row := range rows {
		if isSeparatorRow(row) {
			sep = j
			break
		}
	}
	if sep < 0 {
		return
	}

	cells := make([][]string, len(rows))
	columns := 0
	for j, row := range rows {
		cells[j] = parseCells(row)
		columns = max(columns, len(cells[j]))
	}
	for j := range cells {
		for len(cells[j]) < columns {
			cells[j] = append(cells[j], "")
		}
	}

	widths := make([]int, columns)
	for j, row := range cells {
		if j == sep {
			continue
		}
		for k, cell := range row {
			widths[k] = max(widths[k], runewidth.StringWidth(cell))
		}
	}
	for k := range widths {
		widths[k] = max(widths[k], minColumnWidth)
	}

	aligns := make([]alignment, columns)
	for k, cell := range cells[sep] {
		aligns[k] = detectAlignment(cell)
	}

	for j, row := range cells {
		parts := make([]string, columns)
		for k, w := range widths {
			if j == sep {
				parts[k] = separatorCell(w, aligns[k])
			} else {
				parts[k] = padRight(row[k], w)
			}
		}
		rows[j] = "| " + strings.Join(parts, " | ") + " |"
	}
}

func isTableRow(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "|") && strings.HasSuffix(s, "|") && strings.Count(s, "|") >= 2
}

func isSeparatorRow(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "|") {
		return false
	}
	for _, cell := range strings.Split(strings.Trim(s, "|"), "|") {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if !separatorCellRegex.MatchString(cell) {
			return false
		}
	}
	return true
}

// parseCells splits a row into trimmed cells without the outer pipes.
func parseCells(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func detectAlignment(cell string) alignment {
	cell = strings.TrimSpace(cell)
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return alignCenter
	case right:
		return alignRight
	case left:
		return alignLeft
	default:
		return alignDefault
	}
}

// separatorCell is always w+2 runes wide.
func separatorCell(w int, a alignment) string {
	switch a {
	case alignCenter:
		return ":" + strings.Repeat("-", w) + ":"
	case alignRight:
		return strings.Repeat("-", w+1) + ":"
	case alignLeft:
		return ":" + strings.Repeat("-", w+1)
	default:
		return strings.Repeat("-", w+2)
	}
}

func padRight(s string, w int) string {
	if n := w - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
