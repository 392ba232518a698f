package raggedy_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sokinpui/raggedy/cli"
	"github.com/sokinpui/raggedy/internal/fs"
	"github.com/sokinpui/raggedy/raggedy"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	return string(data)
}

// raggedFile copies ragged.md into a temp dir and returns its path.
func raggedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ragged.md")
	if err := os.WriteFile(path, []byte(readFixture(t, "ragged.md")), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func run(t *testing.T, cfg *cli.Config, stdin string) (string, error) {
	t.Helper()
	if cfg.Jobs == 0 {
		cfg.Jobs = 2
	}
	var stdout bytes.Buffer
	app, err := raggedy.NewWithStreams(cfg, strings.NewReader(stdin), &stdout)
	if err != nil {
		t.Fatalf("NewWithStreams() error = %v", err)
	}
	_, err = app.Execute(context.Background())
	return stdout.String(), err
}

func TestCheck(t *testing.T) {
	t.Run("changes needed", func(t *testing.T) {
		path := raggedFile(t)
		before := readFile(t, path)

		_, err := run(t, &cli.Config{Files: []string{path}, Check: true}, "")
		if !errors.Is(err, raggedy.ErrChangesNeeded) {
			t.Errorf("Execute() error = %v, want ErrChangesNeeded", err)
		}
		if readFile(t, path) != before {
			t.Error("check mode modified the file")
		}
	})

	t.Run("no changes after fixing", func(t *testing.T) {
		path := raggedFile(t)
		if _, err := run(t, &cli.Config{Files: []string{path}}, ""); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if _, err := run(t, &cli.Config{Files: []string{path}, Check: true}, ""); err != nil {
			t.Errorf("Execute() error = %v, want nil", err)
		}
	})
}

func TestDiff(t *testing.T) {
	path := raggedFile(t)
	before := readFile(t, path)

	out, err := run(t, &cli.Config{Files: []string{path}, Diff: true}, "")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"--- a/" + path, "+++ b/" + path, "+│ Gateway                     │"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output does not contain %q:\n%s", want, out)
		}
	}
	if readFile(t, path) != before {
		t.Error("diff mode modified the file")
	}
}

func TestInPlace(t *testing.T) {
	t.Run("edits in place", func(t *testing.T) {
		path := raggedFile(t)
		if _, err := run(t, &cli.Config{Files: []string{path}}, ""); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got, want := readFile(t, path), readFixture(t, "expected.md"); got != want {
			t.Errorf("fixed file mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
		if _, err := os.Stat(path + fs.BackupSuffix); !os.IsNotExist(err) {
			t.Error("backup written without --backup")
		}
	})

	t.Run("backup", func(t *testing.T) {
		path := raggedFile(t)
		original := readFile(t, path)
		if _, err := run(t, &cli.Config{Files: []string{path}, Backup: true}, ""); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got := readFile(t, path+fs.BackupSuffix); got != original {
			t.Error("backup does not hold the original content")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		path := raggedFile(t)
		if _, err := run(t, &cli.Config{Files: []string{path}}, ""); err != nil {
			t.Fatal(err)
		}
		first := readFile(t, path)
		if _, err := run(t, &cli.Config{Files: []string{path}}, ""); err != nil {
			t.Fatal(err)
		}
		if second := readFile(t, path); second != first {
			t.Error("second run changed the file")
		}
	})

	t.Run("mdtable", func(t *testing.T) {
		path := raggedFile(t)
		if _, err := run(t, &cli.Config{Files: []string{path}, MDTable: true}, ""); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got, want := readFile(t, path), readFixture(t, "expected_mdtable.md"); got != want {
			t.Errorf("fixed file mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("stdin to stdout", func(t *testing.T) {
		out, err := run(t, &cli.Config{Files: []string{"-"}}, readFixture(t, "ragged.md"))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if want := readFixture(t, "expected.md"); out != want {
			t.Errorf("stdout mismatch:\ngot:\n%s\nwant:\n%s", out, want)
		}
	})
}

func TestSummary(t *testing.T) {
	dir := t.TempDir()
	clean := filepath.Join(dir, "clean.md")
	if err := os.WriteFile(clean, []byte("no diagrams\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ragged := raggedFile(t)

	app, err := raggedy.NewWithStreams(&cli.Config{Files: []string{ragged, clean}, Jobs: 1}, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	summary, err := app.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(summary.Modified) != 1 || summary.Modified[0] != ragged {
		t.Errorf("Modified = %v, want [%s]", summary.Modified, ragged)
	}
	if len(summary.Unchanged) != 1 || summary.Unchanged[0] != clean {
		t.Errorf("Unchanged = %v, want [%s]", summary.Unchanged, clean)
	}
	if summary.DryRun {
		t.Error("in-place run reported as dry run")
	}
}

func TestMissingFile(t *testing.T) {
	first := raggedFile(t)
	missing := filepath.Join(t.TempDir(), "nonexistent.md")
	last := raggedFile(t)
	before := readFile(t, last)

	_, err := run(t, &cli.Config{Files: []string{first, missing, last}}, "")
	var fileErr *raggedy.FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("Execute() error = %v, want *FileError", err)
	}
	if fileErr.Path != missing || !errors.Is(err, fs.ErrNotFound) {
		t.Errorf("FileError = %v, want not-found for %s", fileErr, missing)
	}
	if readFile(t, first) != readFixture(t, "expected.md") {
		t.Error("file before the missing one should have been fixed")
	}
	if readFile(t, last) != before {
		t.Error("file after the missing one should be untouched")
	}
}

func TestLibraryFix(t *testing.T) {
	ragged := readFixture(t, "ragged.md")

	if got := raggedy.Fix(ragged, raggedy.Config{}); got != readFixture(t, "expected.md") {
		t.Error("Fix() without tables does not match expected.md")
	}
	if got := raggedy.Fix(ragged, raggedy.Config{Tables: true}); got != readFixture(t, "expected_mdtable.md") {
		t.Error("Fix() with tables does not match expected_mdtable.md")
	}

	box := "```python\n┌──┐\n│ x\n└──┘\n```\n"
	if got := raggedy.Fix(box, raggedy.Config{}); got != box {
		t.Error("python block should be left alone")
	}
	mermaid := strings.Replace(box, "python", "mermaid", 1)
	if got := raggedy.Fix(mermaid, raggedy.Config{DiagramTags: []string{"mermaid"}}); got == mermaid {
		t.Error("extra diagram tag should be processed")
	}
	if got := raggedy.Fix(ragged, raggedy.Config{CodeTags: []string{"", "text", "ascii", "diagram"}}); got != ragged {
		t.Error("denying every diagram tag should leave the document unchanged")
	}
}
