package diagram

// Line is a diagram line together with its index in the enclosing block.
type Line struct {
	Index int
	Text  string
}

// Group is a maximal run of consecutive lines that open with a border rune.
type Group []Line

// SplitGroups partitions lines into groups. Blank lines and lines that do not
// open with a border rune end the current group and belong to none.
func SplitGroups(lines []string) []Group {
	var groups []Group
	var current Group
	for i, line := range lines {
		body := trimLeft(line)
		if body != "" && isLeftBorder(firstRune(body)) {
			current = append(current, Line{Index: i, Text: line})
			continue
		}
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
