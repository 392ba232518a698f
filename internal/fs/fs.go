package fs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// BackupSuffix is appended to a file's path to name its backup copy.
const BackupSuffix = ".bak"

// ErrNotFound is returned by ReadFile when the path does not exist.
var ErrNotFound = errors.New("no such file")

// ReadFile returns the content of path as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Backup copies path to path+BackupSuffix, keeping its permission bits.
func Backup(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s for backup: %w", path, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("could not stat %s: %w", path, err)
	}

	backupPath := path + BackupSuffix
	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("could not create backup %s: %w", backupPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("could not write backup %s: %w", backupPath, err)
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return os.Chtimes(backupPath, info.ModTime(), info.ModTime())
}

// WriteFile replaces the content of path, keeping its permission bits.
func WriteFile(path, content string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
