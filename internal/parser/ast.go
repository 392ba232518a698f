package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock represents a parsed fenced code block from markdown content.
type CodeBlock struct {
	// Lang is the first word of the info string (e.g., "text", "go").
	Lang string
	// Content is the raw text inside the code block.
	Content string
	// Region is the line range of the block content.
	Region Region
}

// Region is a 0-based, half-open range of lines [Start, End).
type Region struct {
	Start int
	End   int
}

// Contains reports whether line falls inside r.
func (r Region) Contains(line int) bool {
	return line >= r.Start && line < r.End
}

// ExtractCodeBlocks uses a markdown AST to find all fenced code blocks.
func ExtractCodeBlocks(source []byte) ([]CodeBlock, error) {
	var blocks []CodeBlock
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fencedCodeBlock, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var block CodeBlock
		if lang := fencedCodeBlock.Language(source); lang != nil {
			block.Lang = strings.ToLower(string(lang))
		}

		var content bytes.Buffer
		lines := fencedCodeBlock.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			content.Write(line.Value(source))
		}
		block.Content = content.String()
		block.Region = contentRegion(source, fencedCodeBlock)

		blocks = append(blocks, block)
		return ast.WalkSkipChildren, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}

	return blocks, nil
}

// FencedRegions returns the line ranges covered by fenced code block content.
func FencedRegions(source []byte) ([]Region, error) {
	blocks, err := ExtractCodeBlocks(source)
	if err != nil {
		return nil, err
	}
	regions := make([]Region, 0, len(blocks))
	for _, b := range blocks {
		if b.Region.End > b.Region.Start {
			regions = append(regions, b.Region)
		}
	}
	return regions, nil
}

// contentRegion maps the byte segments of a code block to line numbers.
func contentRegion(source []byte, block *ast.FencedCodeBlock) Region {
	lines := block.Lines()
	if lines.Len() == 0 {
		return Region{}
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	start := bytes.Count(source[:first.Start], []byte("\n"))
	end := bytes.Count(source[:last.Start], []byte("\n")) + 1
	return Region{Start: start, End: end}
}
