package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/sokinpui/raggedy/model"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldNoColor := Out, color.NoColor
	Out, color.NoColor = &buf, true
	t.Cleanup(func() { Out, color.NoColor = oldOut, oldNoColor })
	return &buf
}

func TestPrintSummary(t *testing.T) {
	t.Run("in-place run", func(t *testing.T) {
		buf := capture(t)
		PrintSummary(model.Summary{
			Modified:  []string{"docs/a.md"},
			Unchanged: []string{"b.md", "c.md"},
		})
		out := buf.String()
		for _, want := range []string{"Fixed 1 file(s):", "  - docs/a.md", "2 file(s) already aligned."} {
			if !strings.Contains(out, want) {
				t.Errorf("summary %q does not contain %q", out, want)
			}
		}
	})

	t.Run("dry run", func(t *testing.T) {
		buf := capture(t)
		PrintSummary(model.Summary{Modified: []string{"a.md"}, DryRun: true})
		if !strings.Contains(buf.String(), "Would fix 1 file(s):") {
			t.Errorf("summary %q should use the dry-run verb", buf.String())
		}
	})

	t.Run("failures", func(t *testing.T) {
		buf := capture(t)
		PrintSummary(model.Summary{Failed: []string{"missing.md"}})
		if !strings.Contains(buf.String(), "Failed to process 1 file(s):\n  - missing.md\n") {
			t.Errorf("summary %q should list failures", buf.String())
		}
	})
}
