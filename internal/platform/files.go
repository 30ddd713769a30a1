package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Scratch file naming
const (
	TempDirName       = "circular-loader"
	TempFilePrefix    = "download-"
	TempFileExtension = ".tmp"
)

// TempDownloadDir returns the directory used for in-flight downloads
func TempDownloadDir() string {
	return filepath.Join(os.TempDir(), TempDirName)
}

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// TempFilePath returns the scratch file path for a download id
func TempFilePath(dir, id string) string {
	return filepath.Join(dir, TempFilePrefix+id+TempFileExtension)
}

// CreateTempFile creates (or truncates) the scratch file for a download id,
// creating dir first if needed.
func CreateTempFile(dir, id string) (*os.File, error) {
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("creating temp directory %s: %w", dir, err)
	}
	path := TempFilePath(dir, id)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("opening %s for writing: %w", path, err)
	}
	return f, nil
}

// DiscardFile removes a scratch file. A file that is already gone is not an error.
func DiscardFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
