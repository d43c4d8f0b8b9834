// Package ffprobe queries media metadata using the ffprobe command-line tool.
package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcdnew/mp4-splitter/engine"
)

// ErrProbe indicates that the duration probe failed: ffprobe was
// unreachable, exited non-zero, or produced output that does not parse as a
// number of seconds.
var ErrProbe = errors.New("duration probe failed")

// Duration returns the total container duration of the media file in
// seconds.
//
// It runs ffprobe in its minimal metadata mode, asking for the format-level
// duration only, printed as a bare decimal on stdout:
//
//	ffprobe -v error -show_entries format=duration \
//	        -of default=noprint_wrappers=1:nokey=1 input.mp4
//
// Probing is a one-shot, fast metadata read; there is no retry. Any failure
// is wrapped in ErrProbe so callers can abort before planning.
func Duration(ctx context.Context, r engine.Runner, sourcePath string) (float64, error) {
	if sourcePath == "" {
		return 0, fmt.Errorf("%w: source path cannot be empty", ErrProbe)
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		sourcePath,
	}

	out, err := r.Output(ctx, engine.FFprobe, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProbe, err)
	}

	text := strings.TrimSpace(string(out))
	duration, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse duration %q", ErrProbe, text)
	}

	if duration < 0 {
		return 0, fmt.Errorf("%w: negative duration %.2f", ErrProbe, duration)
	}

	return duration, nil
}

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Channels  int    `json:"channels,omitempty"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// ProbeResult holds stream and format metadata for a media file.
type ProbeResult struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// CountStreams returns the number of streams of the given codec type
// ("video", "audio", "subtitle").
func (pr *ProbeResult) CountStreams(codecType string) int {
	count := 0
	for _, stream := range pr.Streams {
		if stream.CodecType == codecType {
			count++
		}
	}
	return count
}

// Inspect extracts full stream and format metadata as JSON. It is used for
// the verbose status display only; the split planning itself depends solely
// on Duration.
func Inspect(ctx context.Context, r engine.Runner, sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		sourcePath,
	}

	out, err := r.Output(ctx, engine.FFprobe, args...)
	if err != nil {
		return nil, fmt.Errorf("ffprobe inspect failed: %w", err)
	}

	var result ProbeResult
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}

	return &result, nil
}
