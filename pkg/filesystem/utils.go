// Package filesystem provides file system helpers shared by the build and
// config layers.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDirNotFound indicates a directory that could not be created.
var ErrDirNotFound = errors.New("directory not found")

// GetDefaultPath returns a path for filename in the executable's directory.
// Used to resolve relative config paths when the working directory has no
// match.
func GetDefaultPath(filename string) (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}

	return filepath.Join(filepath.Dir(exePath), filename), nil
}

// EnsureDirectoryExists creates the parent directory of filePath if it does
// not exist.
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// WriteFile writes data to path, creating the parent directory first.
func WriteFile(path string, data []byte) error {
	if err := EnsureDirectoryExists(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
