package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/sokinpui/raggedy/internal/config"
)

// Config holds all the command-line flag values.
type Config struct {
	Files       []string
	Backup      bool
	MDTable     bool
	Check       bool
	Diff        bool
	Clipboard   bool
	Verbose     bool
	NoAnimation bool
	Jobs        int
	ConfigPath  string
	DiagramTags []string
	CodeTags    []string
}

// ErrUsage is returned when the arguments cannot be acted on.
type ErrUsage struct {
	Msg string
}

func (e *ErrUsage) Error() string { return e.Msg }

// ConfigError is returned when the config file cannot be found or decoded.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config: %v", e.Err) }

func (e *ConfigError) Unwrap() error { return e.Err }

// ParseFlags defines and parses command-line flags using pflag. Values from
// the config file fill in every flag that was not given explicitly.
func ParseFlags(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	flags := pflag.NewFlagSet("raggedy", pflag.ContinueOnError)
	flags.SetOutput(output)

	// Define flags
	flags.BoolVarP(&cfg.Backup, "backup", "b", false, "Create a .bak backup before editing a file.")
	flags.BoolVar(&cfg.MDTable, "mdtable", false, "Also fix markdown table column widths.")
	flags.BoolVar(&cfg.Check, "check", false, "Exit 1 if changes are needed, without modifying anything (for CI).")
	flags.BoolVar(&cfg.Diff, "diff", false, "Print a unified diff instead of modifying files.")
	flags.BoolVar(&cfg.Clipboard, "clipboard", false, "Fix the clipboard content instead of files.")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging.")
	flags.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the progress spinner and summary view.")
	flags.IntVarP(&cfg.Jobs, "jobs", "j", runtime.NumCPU(), "Number of files processed concurrently.")
	flags.StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to a config file (default: nearest "+config.FileName+").")

	flags.Usage = func() {
		fmt.Fprintln(output, "Usage: raggedy [flags] FILE...")
		fmt.Fprintln(output, "\nFix ragged right edges in ASCII/Unicode box diagrams inside markdown code fences.")
		fmt.Fprintln(output, "\nExample: raggedy --check docs/*.md")
		fmt.Fprintln(output, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	cfg.Files = flags.Args()

	if len(cfg.Files) == 0 && !cfg.Clipboard {
		flags.Usage()
		return nil, &ErrUsage{Msg: "the following arguments are required: FILE"}
	}
	if cfg.Clipboard && len(cfg.Files) > 0 {
		return nil, &ErrUsage{Msg: "--clipboard does not take FILE arguments"}
	}
	if cfg.Jobs < 1 {
		return nil, &ErrUsage{Msg: fmt.Sprintf("--jobs must be at least 1, got %d", cfg.Jobs)}
	}

	if err := applyConfigFile(cfg, flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyConfigFile(cfg *Config, flags *pflag.FlagSet) error {
	var (
		file *config.File
		err  error
	)
	if cfg.ConfigPath != "" {
		file, err = config.Load(cfg.ConfigPath)
	} else {
		file, err = config.Discover(".")
	}
	if err != nil {
		return &ConfigError{Err: err}
	}

	if file.MDTable != nil && !flags.Changed("mdtable") {
		cfg.MDTable = *file.MDTable
	}
	if file.Backup != nil && !flags.Changed("backup") {
		cfg.Backup = *file.Backup
	}
	cfg.DiagramTags = file.Tags.Diagram
	cfg.CodeTags = file.Tags.Code
	return nil
}
