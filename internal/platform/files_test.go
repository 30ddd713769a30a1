package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestTempDownloadDir(t *testing.T) {
	dir := TempDownloadDir()
	if filepath.Base(dir) != TempDirName {
		t.Errorf("Expected directory to end with %q, got: %s", TempDirName, dir)
	}
}

func TestTempFilePath(t *testing.T) {
	path := TempFilePath("/tmp/x", "abc")
	if path != filepath.Join("/tmp/x", "download-abc.tmp") {
		t.Errorf("Unexpected temp file path: %s", path)
	}
}

func TestCreateTempFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	f, err := CreateTempFile(dir, "id-1")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()

	if !strings.HasSuffix(f.Name(), "download-id-1.tmp") {
		t.Errorf("Unexpected temp file name: %s", f.Name())
	}

	if _, err := f.WriteString("payload"); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
}

func TestDiscardFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.tmp")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := DiscardFile(path); err != nil {
		t.Fatalf("Failed to discard file: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected file to be removed")
	}

	// Discarding twice is fine
	if err := DiscardFile(path); err != nil {
		t.Errorf("Expected no error for missing file, got %v", err)
	}
}
