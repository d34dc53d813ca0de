package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend keeps the score in a plain text file.
type FileBackend struct {
	Path string
}

// NewFile returns a TextStore over the file at path. A leading ~ expands to
// the home directory.
func NewFile(path string) (*TextStore, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return NewTextStore(FileBackend{Path: p}), nil
}

// Read returns the file contents.
func (f FileBackend) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

// Write replaces the file contents, creating parent directories.
func (f FileBackend) Write(data []byte) error {
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, data, 0o644)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
