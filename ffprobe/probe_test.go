package ffprobe

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeRunner returns scripted output and records the requested arguments
type fakeRunner struct {
	output   string
	err      error
	lastName string
	lastArgs []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.lastName = name
	f.lastArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.output), nil
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	return nil
}

// TestDuration tests parsing of the plain-text duration output
func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected float64
	}{
		{"plain integer", "100\n", 100.0},
		{"fractional", "95.504000\n", 95.504},
		{"no trailing newline", "12.5", 12.5},
		{"surrounding whitespace", "  3600.25  \n", 3600.25},
		{"zero", "0.000000\n", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{output: tt.output}
			got, err := Duration(context.Background(), runner, "/videos/video.mp4")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

// TestDuration_Args verifies the minimal metadata mode is requested
func TestDuration_Args(t *testing.T) {
	runner := &fakeRunner{output: "100.0\n"}
	if _, err := Duration(context.Background(), runner, "/videos/video.mp4"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if runner.lastName != "ffprobe" {
		t.Errorf("Expected ffprobe binary, got %s", runner.lastName)
	}

	expected := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"/videos/video.mp4",
	}
	if len(runner.lastArgs) != len(expected) {
		t.Fatalf("Expected %d args, got %d: %v", len(expected), len(runner.lastArgs), runner.lastArgs)
	}
	for i, arg := range expected {
		if runner.lastArgs[i] != arg {
			t.Errorf("Arg %d: expected %q, got %q", i, arg, runner.lastArgs[i])
		}
	}
}

// TestDuration_NonNumeric tests that garbage output is a probe failure
func TestDuration_NonNumeric(t *testing.T) {
	runner := &fakeRunner{output: "N/A\n"}
	_, err := Duration(context.Background(), runner, "/videos/video.mp4")
	if !errors.Is(err, ErrProbe) {
		t.Errorf("Expected ErrProbe, got %v", err)
	}
}

// TestDuration_EngineFailure tests that a failing ffprobe is a probe failure
func TestDuration_EngineFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("ffprobe failed: exit status 1")}
	_, err := Duration(context.Background(), runner, "/videos/video.mp4")
	if !errors.Is(err, ErrProbe) {
		t.Errorf("Expected ErrProbe, got %v", err)
	}
}

// TestDuration_EmptyPath tests the empty source path guard
func TestDuration_EmptyPath(t *testing.T) {
	runner := &fakeRunner{output: "100.0\n"}
	_, err := Duration(context.Background(), runner, "")
	if !errors.Is(err, ErrProbe) {
		t.Errorf("Expected ErrProbe for empty path, got %v", err)
	}
}

// TestInspect tests parsing of the JSON metadata output
func TestInspect(t *testing.T) {
	runner := &fakeRunner{output: `{
		"streams": [
			{"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080},
			{"index": 1, "codec_name": "aac", "codec_type": "audio", "channels": 2},
			{"index": 2, "codec_name": "mov_text", "codec_type": "subtitle"}
		],
		"format": {
			"filename": "/videos/video.mp4",
			"format_long_name": "QuickTime / MOV",
			"duration": "100.000000"
		}
	}`}

	result, err := Inspect(context.Background(), runner, "/videos/video.mp4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.CountStreams("video") != 1 {
		t.Errorf("Expected 1 video stream, got %d", result.CountStreams("video"))
	}
	if result.CountStreams("audio") != 1 {
		t.Errorf("Expected 1 audio stream, got %d", result.CountStreams("audio"))
	}
	if result.CountStreams("subtitle") != 1 {
		t.Errorf("Expected 1 subtitle stream, got %d", result.CountStreams("subtitle"))
	}
	if result.Format.FormatLongName != "QuickTime / MOV" {
		t.Errorf("Unexpected format name: %s", result.Format.FormatLongName)
	}
}

// TestInspect_InvalidJSON tests error handling for malformed output
func TestInspect_InvalidJSON(t *testing.T) {
	runner := &fakeRunner{output: "{ broken"}
	_, err := Inspect(context.Background(), runner, "/videos/video.mp4")
	if err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
