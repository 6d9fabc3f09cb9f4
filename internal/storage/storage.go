// Package storage provides atomic file operations for JSON documents under
// ~/.config/ghp/.
//
// Documents written here may carry hook commands with embedded secrets, so
// they are always left owner-only (0600) and their directory 0700.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	filePerm = 0o600
	dirPerm  = 0o700
)

// ConfigDir returns the path to ~/.config/ghp/ without creating it.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ghp"), nil
}

// SaveJSON atomically writes data as indented JSON to path.
// It writes a temp file in the destination directory, restricts it to the
// owner, then renames it over the final path. Readers never observe a
// partially written document.
func SaveJSON(path string, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	jsonData = append(jsonData, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(jsonData); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", filepath.Base(path), err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}

	// Rename keeps the temp file's mode, but an older file may have been
	// replaced on filesystems that ignore it.
	return os.Chmod(path, filePerm)
}

// LoadJSON reads JSON from the specified path into dest.
// Returns an error satisfying os.IsNotExist if the file doesn't exist
// (caller should handle).
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}
