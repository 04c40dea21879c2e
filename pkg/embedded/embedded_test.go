package embedded

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func reset() {
	dataFS = nil
	initialized = false
}

func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/experience.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestReadFileEmbedded(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/experience.yaml": {Data: []byte("character: {}")},
	})

	tests := []struct {
		name string
		path string
	}{
		{"plain", "data/experience.yaml"},
		{"dot prefix", "./data/experience.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) failed: %v", tt.path, err)
			}
			if string(data) != "character: {}" {
				t.Errorf("unexpected content %q", data)
			}
			if !Exists(tt.path) {
				t.Errorf("Exists(%q) = false, want true", tt.path)
			}
		})
	}

	if Exists("data/missing.yaml") {
		t.Error("Exists() should be false for a missing embedded file")
	}
	if _, err := ReadFile("data/missing.yaml"); err == nil {
		t.Error("Expected error for missing embedded file")
	}
}

func TestReadFileFromDisk(t *testing.T) {
	reset()

	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("spawner: {}"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile from disk failed: %v", err)
	}
	if string(data) != "spawner: {}" {
		t.Errorf("unexpected content %q", data)
	}
	if !Exists(path) {
		t.Error("Exists() should be true for a file on disk")
	}
}
