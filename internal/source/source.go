package source

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/sokinpui/raggedy/internal/fs"
)

// Stdin is the path argument that stands for standard input.
const Stdin = "-"

// SourceProvider reads documents from files, stdin or the clipboard and
// writes them back.
type SourceProvider struct {
	stdin  io.Reader
	stdout io.Writer
}

// New creates a SourceProvider bound to the process's stdin and stdout.
func New() *SourceProvider {
	return NewWithStreams(os.Stdin, os.Stdout)
}

// NewWithStreams creates a SourceProvider bound to the given streams.
func NewWithStreams(stdin io.Reader, stdout io.Writer) *SourceProvider {
	return &SourceProvider{stdin: stdin, stdout: stdout}
}

// Read returns the content at path, or stdin when path is Stdin.
func (sp *SourceProvider) Read(path string) (string, error) {
	if path != Stdin {
		return fs.ReadFile(path)
	}
	content, err := io.ReadAll(sp.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(content), nil
}

// Write replaces the content at path, or prints it when path is Stdin.
func (sp *SourceProvider) Write(path, content string) error {
	if path != Stdin {
		return fs.WriteFile(path, content)
	}
	if _, err := io.WriteString(sp.stdout, content); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

// ReadClipboard returns the clipboard content.
func (sp *SourceProvider) ReadClipboard() (string, error) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	return content, nil
}

// WriteClipboard replaces the clipboard content.
func (sp *SourceProvider) WriteClipboard(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
