// Package diagram repairs ragged right edges of box diagrams drawn inside
// fenced blocks of a markdown document.
//
// A block is repaired only when its tag may hold a diagram, is not a known
// programming-language tag and its content passes IsDiagramBlock. Within a
// block every group of consecutive border lines is widened to a common
// width, and boxes drawn inside boxes are repaired recursively without
// changing the width of the box that contains them. Lines are only ever
// replaced, never inserted or removed.
package diagram

import "strings"

// Report counts what a Fix pass touched.
type Report struct {
	// Blocks is the number of closed fenced blocks seen.
	Blocks int
	// Diagrams is the number of blocks that were treated as diagrams.
	Diagrams int
	// Groups is the number of line groups repaired.
	Groups int
	// Lines is the number of lines whose text changed.
	Lines int
}

// Fixer repairs diagrams using a fixed set of fence tags.
type Fixer struct {
	diagramTags map[string]struct{}
	codeTags    map[string]struct{}
}

// Option configures a Fixer.
type Option func(*Fixer)

// WithDiagramTags adds fence tags that may hold a diagram.
func WithDiagramTags(tags ...string) Option {
	return func(f *Fixer) { addTags(f.diagramTags, tags) }
}

// WithCodeTags adds fence tags whose blocks are never touched. They win over
// diagram tags.
func WithCodeTags(tags ...string) Option {
	return func(f *Fixer) { addTags(f.codeTags, tags) }
}

// New returns a Fixer with the built-in tag lists extended by opts.
func New(opts ...Option) *Fixer {
	f := &Fixer{
		diagramTags: make(map[string]struct{}, len(diagramTags)),
		codeTags:    make(map[string]struct{}, len(codeTags)),
	}
	addTags(f.diagramTags, diagramTags)
	addTags(f.codeTags, codeTags)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func addTags(set map[string]struct{}, tags []string) {
	for _, t := range tags {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
}

var defaultFixer = New()

// Fix repairs every diagram in doc with the built-in tag lists.
func Fix(doc string) string {
	return defaultFixer.Fix(doc)
}

// Fix repairs every diagram in doc.
func (f *Fixer) Fix(doc string) string {
	out, _ := f.FixReport(doc)
	return out
}

// ShouldProcess reports whether a fenced block with the given tag and
// content lines is repaired.
func (f *Fixer) ShouldProcess(tag string, lines []string) bool {
	if _, ok := f.codeTags[tag]; ok {
		return false
	}
	if _, ok := f.diagramTags[tag]; !ok {
		return false
	}
	return IsDiagramBlock(lines)
}

// FixReport repairs every diagram in doc and reports what changed. An
// unterminated fence leaves the rest of the document untouched.
func (f *Fixer) FixReport(doc string) (string, Report) {
	var rep Report
	lines := strings.Split(doc, "\n")
	endsWithNewline := strings.HasSuffix(doc, "\n")

	inFence := false
	tag := ""
	start := -1
	for i, line := range lines {
		isFence, t := IsFence(line)
		if !isFence {
			continue
		}
		if !inFence {
			inFence, tag, start = true, t, i
			continue
		}
		rep.Blocks++
		f.fixBlock(lines[start+1:i], tag, &rep)
		inFence, tag, start = false, "", -1
	}

	out := strings.Join(lines, "\n")
	switch {
	case endsWithNewline && !strings.HasSuffix(out, "\n"):
		out += "\n"
	case !endsWithNewline && strings.HasSuffix(out, "\n"):
		out = strings.TrimSuffix(out, "\n")
	}
	return out, rep
}

// fixBlock repairs block in place.
func (f *Fixer) fixBlock(block []string, tag string, rep *Report) {
	if !f.ShouldProcess(tag, block) {
		return
	}
	rep.Diagrams++
	for _, g := range SplitGroups(block) {
		rep.Groups++
		for _, ln := range FixGroup(g) {
			if block[ln.Index] != ln.Text {
				block[ln.Index] = ln.Text
				rep.Lines++
			}
		}
	}
}
