package raggedy

import "github.com/sokinpui/raggedy/internal/tables"

// Config for using raggedy as a library.
type Config struct {
	// Also normalize markdown table column widths.
	Tables bool
	// Extra fence tags that may hold a diagram.
	DiagramTags []string
	// Extra fence tags whose blocks are never touched.
	CodeTags []string
}

// Fix repairs the box diagrams in content and, when config.Tables is set,
// its markdown tables. Diagrams are fixed first.
func Fix(content string, config Config) string {
	fixed := newFixer(config.DiagramTags, config.CodeTags).Fix(content)
	if config.Tables {
		fixed = tables.Fix(fixed)
	}
	return fixed
}
