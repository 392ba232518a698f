// Package diff renders unified diffs between an original and a fixed document.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines matches the default of `diff -u`.
const contextLines = 3

// Unified returns a unified diff from original to fixed with "a/" and "b/"
// prefixed headers. It is empty when the two are equal.
func Unified(path, original, fixed string) (string, error) {
	if original == fixed {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(original),
		B:        splitLines(fixed),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	})
}

// splitLines splits s after every newline. Unlike difflib.SplitLines it does
// not invent a newline after the last line.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
