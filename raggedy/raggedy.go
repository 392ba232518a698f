package raggedy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/sokinpui/raggedy/cli"
	"github.com/sokinpui/raggedy/internal/diagram"
	"github.com/sokinpui/raggedy/internal/diff"
	"github.com/sokinpui/raggedy/internal/fs"
	"github.com/sokinpui/raggedy/internal/logging"
	"github.com/sokinpui/raggedy/internal/source"
	"github.com/sokinpui/raggedy/internal/tables"
	"github.com/sokinpui/raggedy/model"
)

// ErrChangesNeeded is returned in check mode when at least one input would
// change.
var ErrChangesNeeded = errors.New("changes needed")

// FileError reports an input that could not be read or written.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// App orchestrates the entire application logic.
type App struct {
	cfg            *cli.Config
	fixer          *diagram.Fixer
	sourceProvider *source.SourceProvider
	stdout         io.Writer
}

// New creates a new App instance bound to the process's stdin and stdout.
func New(cfg *cli.Config) (*App, error) {
	return NewWithStreams(cfg, os.Stdin, os.Stdout)
}

// NewWithStreams creates a new App instance reading "-" from stdin and
// printing diffs and piped results to stdout.
func NewWithStreams(cfg *cli.Config, stdin io.Reader, stdout io.Writer) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	return &App{
		cfg:            cfg,
		fixer:          newFixer(cfg.DiagramTags, cfg.CodeTags),
		sourceProvider: source.NewWithStreams(stdin, stdout),
		stdout:         stdout,
	}, nil
}

func newFixer(diagramTags, codeTags []string) *diagram.Fixer {
	return diagram.New(diagram.WithDiagramTags(diagramTags...), diagram.WithCodeTags(codeTags...))
}

// Execute executes the main application logic based on parsed flags.
func (a *App) Execute(ctx context.Context) (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	if a.cfg.Clipboard {
		return a.fixClipboard(ctx)
	}
	return a.fixFiles(ctx)
}

// fix runs the diagram engine and, when enabled, the table engine.
func (a *App) fix(content string) (string, diagram.Report) {
	fixed, rep := a.fixer.FixReport(content)
	if a.cfg.MDTable {
		fixed = tables.Fix(fixed)
	}
	return fixed, rep
}

// process reads and fixes every path concurrently. Results keep the order
// of paths.
func (a *App) process(ctx context.Context, paths []string) ([]model.FileResult, error) {
	logger := logging.FromContext(ctx)
	results := make([]model.FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := model.FileResult{Path: path}
			content, err := a.sourceProvider.Read(path)
			if err != nil {
				res.Err = err
				results[i] = res
				return nil
			}
			res.Original = content
			fixed, rep := a.fix(content)
			res.Fixed = fixed
			res.Diagrams = rep.Diagrams
			res.Lines = rep.Lines
			results[i] = res
			logger.Debug("processed", "path", path, "blocks", rep.Blocks, "diagrams", rep.Diagrams, "lines", rep.Lines)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fixFiles handles check, diff and in-place modes. Inputs are handled in
// argument order and the first unreadable one stops the run.
func (a *App) fixFiles(ctx context.Context) (model.Summary, error) {
	logger := logging.FromContext(ctx)
	progress := logging.NewProgress(logger)

	results, err := a.process(ctx, a.cfg.Files)
	if err != nil {
		return model.Summary{}, err
	}

	summary := model.Summary{DryRun: a.cfg.Check || a.cfg.Diff}
	for _, res := range results {
		if res.Err != nil {
			summary.Failed = append(summary.Failed, res.Path)
			return summary, &FileError{Path: res.Path, Err: res.Err}
		}
		if res.Changed() {
			summary.Modified = append(summary.Modified, res.Path)
		} else {
			summary.Unchanged = append(summary.Unchanged, res.Path)
		}

		switch {
		case a.cfg.Check:
			continue
		case a.cfg.Diff:
			if err := a.printDiff(res); err != nil {
				return summary, err
			}
		default:
			if err := a.writeResult(logger, res); err != nil {
				summary.Failed = append(summary.Failed, res.Path)
				return summary, &FileError{Path: res.Path, Err: err}
			}
		}
	}
	progress.Done(fmt.Sprintf("Processed %d file(s)", len(results)))

	if a.cfg.Check && len(summary.Modified) > 0 {
		return summary, ErrChangesNeeded
	}
	return summary, nil
}

func (a *App) printDiff(res model.FileResult) error {
	d, err := diff.Unified(res.Path, res.Original, res.Fixed)
	if err != nil {
		return fmt.Errorf("failed to diff %s: %w", res.Path, err)
	}
	_, err = io.WriteString(a.stdout, d)
	return err
}

// writeResult writes a changed file back. Stdin input is always echoed to
// stdout, changed or not.
func (a *App) writeResult(logger *log.Logger, res model.FileResult) error {
	if res.Path == source.Stdin {
		return a.sourceProvider.Write(res.Path, res.Fixed)
	}
	if !res.Changed() {
		return nil
	}
	if a.cfg.Backup {
		if err := fs.Backup(res.Path); err != nil {
			return err
		}
		logger.Debug("backup written", "path", res.Path+fs.BackupSuffix)
	}
	if err := a.sourceProvider.Write(res.Path, res.Fixed); err != nil {
		return err
	}
	logger.Info("fixed", "path", res.Path, "lines", res.Lines)
	return nil
}

// fixClipboard fixes the clipboard content in place.
func (a *App) fixClipboard(ctx context.Context) (model.Summary, error) {
	const name = "clipboard"
	logger := logging.FromContext(ctx)

	content, err := a.sourceProvider.ReadClipboard()
	if err != nil {
		return model.Summary{}, err
	}
	if content == "" {
		return model.Summary{Message: "Clipboard is empty. Nothing to process."}, nil
	}

	fixed, rep := a.fix(content)
	res := model.FileResult{Path: name, Original: content, Fixed: fixed, Diagrams: rep.Diagrams, Lines: rep.Lines}
	summary := model.Summary{DryRun: a.cfg.Check || a.cfg.Diff}
	if !res.Changed() {
		summary.Unchanged = []string{name}
		return summary, nil
	}
	summary.Modified = []string{name}

	switch {
	case a.cfg.Check:
		return summary, ErrChangesNeeded
	case a.cfg.Diff:
		return summary, a.printDiff(res)
	}
	if err := a.sourceProvider.WriteClipboard(fixed); err != nil {
		return summary, err
	}
	logger.Info("fixed", "path", name, "lines", rep.Lines)
	return summary, nil
}
