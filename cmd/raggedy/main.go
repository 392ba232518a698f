package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/sokinpui/raggedy/cli"
	"github.com/sokinpui/raggedy/internal/logging"
	"github.com/sokinpui/raggedy/internal/source"
	"github.com/sokinpui/raggedy/internal/tui"
	"github.com/sokinpui/raggedy/internal/ui"
	"github.com/sokinpui/raggedy/model"
	"github.com/sokinpui/raggedy/raggedy"
)

const (
	exitChanges = 1
	exitError   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		var usage *cli.ErrUsage
		var conf *cli.ConfigError
		if errors.As(err, &usage) || errors.As(err, &conf) {
			ui.Error("raggedy: error: %v", err)
		}
		// pflag already prints its own parse errors.
		return exitError
	}

	logger := logging.New(os.Stderr, logging.Level(cfg.Verbose))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	app, err := raggedy.New(cfg)
	if err != nil {
		ui.Error("Failed to initialize application: %v", err)
		return exitError
	}

	if useTUI(cfg) {
		m, runErr := tea.NewProgram(tui.New(ctx, app), tea.WithOutput(os.Stderr)).Run()
		if runErr != nil {
			ui.Error("Error running program: %v", runErr)
			return exitError
		}
		_, err = m.(tui.Model).Result()
	} else {
		var summary model.Summary
		summary, err = app.Execute(ctx)
		if !cfg.Diff && !isStdin(cfg) {
			ui.PrintSummary(summary)
		}
	}

	return exitCode(err)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, raggedy.ErrChangesNeeded) {
		return exitChanges
	}
	var fileErr *raggedy.FileError
	if errors.As(err, &fileErr) {
		ui.Error("raggedy: error: %s: %v", fileErr.Path, fileErr.Err)
		return exitError
	}
	ui.Error("raggedy: error: %v", err)
	return exitError
}

// useTUI reports whether the spinner view can own the terminal. Modes that
// write results to stdout keep it out of the way.
func useTUI(cfg *cli.Config) bool {
	if cfg.NoAnimation || cfg.Diff || cfg.Check || cfg.Clipboard || isStdin(cfg) {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func isStdin(cfg *cli.Config) bool {
	for _, f := range cfg.Files {
		if f == source.Stdin {
			return true
		}
	}
	return false
}
