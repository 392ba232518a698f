// Package config loads the optional .raggedy.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = ".raggedy.toml"

// File is the decoded content of a config file. Pointer fields are nil
// when the key is absent.
type File struct {
	Path    string `toml:"-"`
	MDTable *bool  `toml:"mdtable"`
	Backup  *bool  `toml:"backup"`
	Tags    Tags   `toml:"tags"`
}

// Tags extends the built-in fence tag lists.
type Tags struct {
	Diagram []string `toml:"diagram"`
	Code    []string `toml:"code"`
}

// Find walks up from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the config file at path.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	f.Path = path
	return &f, nil
}

// Discover loads the config file found from startDir. It returns an empty
// File when there is none.
func Discover(startDir string) (*File, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &File{}, nil
	}
	return Load(path)
}
