package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		filePath string
	}{
		{
			name:     "current directory",
			filePath: "test.txt",
		},
		{
			name:     "single directory",
			filePath: filepath.Join(tempDir, "subdir", "test.txt"),
		},
		{
			name:     "nested directories",
			filePath: filepath.Join(tempDir, "a", "b", "c", "test.txt"),
		},
		{
			name:     "existing directory",
			filePath: filepath.Join(tempDir, "test.txt"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EnsureDirectoryExists(tt.filePath); err != nil {
				t.Errorf("EnsureDirectoryExists(%q) error: %v", tt.filePath, err)
			}

			dir := filepath.Dir(tt.filePath)
			if dir == "." {
				return
			}
			if _, err := os.Stat(dir); err != nil {
				t.Errorf("directory %s was not created: %v", dir, err)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog", "hello", "index.html")
	data := []byte("<html></html>")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("written content = %q, expected %q", got, data)
	}
}

func TestGetDefaultPath(t *testing.T) {
	path, err := GetDefaultPath("config.yaml")
	if err != nil {
		t.Fatalf("GetDefaultPath() error: %v", err)
	}

	if filepath.Base(path) != "config.yaml" {
		t.Errorf("GetDefaultPath() = %q, expected it to end in config.yaml", path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("GetDefaultPath() = %q, expected an absolute path", path)
	}
}
