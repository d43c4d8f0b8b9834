package splitter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrInvalidChunkCount is returned when the requested chunk count is
	// zero or negative. Validation happens before any external process is
	// spawned.
	ErrInvalidChunkCount = errors.New("chunk count must be greater than zero")

	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")
)

// Plan describes how one input file will be split: the probed duration, the
// target per-chunk duration, and the zero-padded output filename template
// that FFmpeg's segment muxer fills in.
//
// SecondsPerChunk is duration / chunkCount with no rounding applied; the
// value is rendered with six fractional digits when passed to FFmpeg so
// cumulative boundary error stays well under a millisecond. Actual cut
// points still snap to the nearest keyframe at or after each boundary,
// which is inherent to stream copy.
type Plan struct {
	Duration        float64
	ChunkCount      int
	SecondsPerChunk float64
	NamingDigits    int
	OutputDir       string
	OutputTemplate  string
}

// NamingDigits returns the zero-pad width for chunk indices: at least 2 for
// conventional sortability with small counts, widening so that the index of
// the last chunk never overflows the placeholder (e.g., 3 digits for
// counts of 100 and up, keeping "100" ordered after "099").
func NamingDigits(chunkCount int) int {
	digits := len(strconv.Itoa(chunkCount))
	if digits < 2 {
		digits = 2
	}
	return digits
}

// NewPlan computes a chunk plan for the given media duration.
//
// outputDir may be empty, in which case chunks are written beside the input
// file. The output filename template has the form
//
//	{base}_part%0{digits}d{ext}
//
// where base and ext come from the input path, so lexicographic order of
// the produced filenames matches chunk order.
func NewPlan(duration float64, chunkCount int, inputPath, outputDir string) (*Plan, error) {
	if chunkCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkCount, chunkCount)
	}

	if duration <= 0 {
		return nil, fmt.Errorf("invalid duration: %.2f seconds", duration)
	}

	if inputPath == "" {
		return nil, fmt.Errorf("input path cannot be empty")
	}

	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}

	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	digits := NamingDigits(chunkCount)
	template := filepath.Join(outputDir, fmt.Sprintf("%s_part%%0%dd%s", base, digits, ext))

	return &Plan{
		Duration:        duration,
		ChunkCount:      chunkCount,
		SecondsPerChunk: duration / float64(chunkCount),
		NamingDigits:    digits,
		OutputDir:       outputDir,
		OutputTemplate:  template,
	}, nil
}

// ChunkPath returns the output path for the chunk at the given 1-based
// index, i.e. the filename FFmpeg will produce for it. The template's
// %0Nd placeholder has the same meaning for fmt and for FFmpeg.
func (p *Plan) ChunkPath(index int) string {
	return fmt.Sprintf(p.OutputTemplate, index)
}

// ChunkPaths returns the full set of expected output paths, in order.
func (p *Plan) ChunkPaths() []string {
	paths := make([]string, 0, p.ChunkCount)
	for i := 1; i <= p.ChunkCount; i++ {
		paths = append(paths, p.ChunkPath(i))
	}
	return paths
}
