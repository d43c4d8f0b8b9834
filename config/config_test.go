package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig tests default values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != "" {
		t.Errorf("Expected empty input, got %q", cfg.Input)
	}
	if cfg.Chunks != 0 {
		t.Errorf("Expected 0 chunks (unset), got %d", cfg.Chunks)
	}
	if cfg.OutputDir != "" {
		t.Errorf("Expected empty output dir, got %q", cfg.OutputDir)
	}
	if cfg.Verbose || cfg.DryRun {
		t.Error("Expected behavioral flags off by default")
	}
}

// TestConfig_Copy tests that Copy is independent of the original
func TestConfig_Copy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "a.mp4"
	cfg.Chunks = 4

	cp := cfg.Copy()
	cp.Input = "b.mp4"
	cp.Chunks = 8

	if cfg.Input != "a.mp4" || cfg.Chunks != 4 {
		t.Error("Copy mutated the original config")
	}
}

// TestIsSupportedMedia tests the extension check
func TestIsSupportedMedia(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"video.mp4", true},
		{"video.MP4", true},
		{"/a/b/video.Mp4", true},
		{"video.mkv", false},
		{"video.avi", false},
		{"video", false},
		{"video.mp4.txt", false},
	}

	for _, tt := range tests {
		if got := IsSupportedMedia(tt.path); got != tt.expected {
			t.Errorf("IsSupportedMedia(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}

func writeTestMedia(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

// TestValidate_Valid tests a fully resolved configuration
func TestValidate_Valid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = writeTestMedia(t, "video.mp4")
	cfg.Chunks = 4

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

// TestValidate_MissingInput tests the required-input check
func TestValidate_MissingInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chunks = 4

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for missing input")
	}
}

// TestValidate_InputNotFound tests the existence check
func TestValidate_InputNotFound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "/nonexistent/video.mp4"
	cfg.Chunks = 4

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for nonexistent input")
	}
}

// TestValidate_UnsupportedType tests the container extension check
func TestValidate_UnsupportedType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = writeTestMedia(t, "video.mkv")
	cfg.Chunks = 4

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for unsupported container type")
	}
}

// TestValidate_InputIsDirectory tests that an unresolved directory fails
func TestValidate_InputIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = t.TempDir()
	cfg.Chunks = 4

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for directory input")
	}
}

// TestValidate_InvalidChunks tests the chunk count check
func TestValidate_InvalidChunks(t *testing.T) {
	for _, n := range []int{0, -1} {
		cfg := DefaultConfig()
		cfg.Input = writeTestMedia(t, "video.mp4")
		cfg.Chunks = n

		if err := cfg.Validate(); err == nil {
			t.Errorf("Expected validation error for %d chunks", n)
		}
	}
}
