// Package splitter plans and drives lossless stream-copy splitting of one
// media file into N contiguous chunks via FFmpeg's segment muxer.
package splitter

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcdnew/mp4-splitter/engine"
	"github.com/mcdnew/mp4-splitter/ffprobe"
)

// EngineError reports that FFmpeg ran but exited non-zero. Any chunk files
// already written before the failure are left in place; no rollback is
// attempted.
type EngineError struct {
	ExitCode int
	Err      error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d: %v", e.ExitCode, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Splitter splits one input file into a fixed number of stream-copied
// chunks. All external processes go through the injected Runner.
type Splitter struct {
	runner     engine.Runner
	inputPath  string
	chunkCount int
	outputDir  string
}

// New creates a Splitter. outputDir may be empty to write chunks beside the
// input file.
func New(runner engine.Runner, inputPath string, chunkCount int, outputDir string) *Splitter {
	return &Splitter{
		runner:     runner,
		inputPath:  inputPath,
		chunkCount: chunkCount,
		outputDir:  outputDir,
	}
}

// Plan validates the inputs, probes the media duration, and computes the
// chunk plan. No filesystem writes and no segmenting happen here; the only
// side effect is the single ffprobe process.
//
// Validation order matters: the chunk count and input existence are checked
// before any external process is spawned.
func (s *Splitter) Plan(ctx context.Context) (*Plan, error) {
	if s.chunkCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkCount, s.chunkCount)
	}

	if _, err := os.Stat(s.inputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, s.inputPath)
	}

	duration, err := ffprobe.Duration(ctx, s.runner, s.inputPath)
	if err != nil {
		return nil, err
	}

	return NewPlan(duration, s.chunkCount, s.inputPath, s.outputDir)
}

// Run executes the segmenting invocation for a previously computed plan.
// It creates the output directory if needed, then blocks on a single FFmpeg
// child process and maps its exit status onto an error:
//
//   - nil: all chunks written
//   - *EngineError: FFmpeg ran but exited non-zero
//   - other: FFmpeg could not be invoked at all
func (s *Splitter) Run(ctx context.Context, plan *Plan) error {
	if err := os.MkdirAll(plan.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := buildArgs(s.inputPath, plan)
	if err := s.runner.Run(ctx, engine.FFmpeg, args...); err != nil {
		if code := engine.ExitCode(err); code >= 0 {
			return &EngineError{ExitCode: code, Err: err}
		}
		return fmt.Errorf("failed to invoke ffmpeg: %w", err)
	}

	return nil
}

// Split plans and runs in one call.
func (s *Splitter) Split(ctx context.Context) error {
	plan, err := s.Plan(ctx)
	if err != nil {
		return err
	}
	return s.Run(ctx, plan)
}

// DryRun returns the FFmpeg command line for a computed plan without
// executing it.
func (s *Splitter) DryRun(plan *Plan) string {
	args := buildArgs(s.inputPath, plan)
	return fmt.Sprintf("ffmpeg %s", strings.Join(args, " "))
}

// buildArgs constructs the FFmpeg arguments for stream-copy segmenting:
// map every input stream, copy without re-encoding, cut at the target
// segment duration, and reset/normalize timestamps so each chunk plays
// independently from time zero. Existing files matching the template are
// overwritten without prompting.
func buildArgs(inputPath string, plan *Plan) []string {
	return []string{
		"-hide_banner",
		"-y",
		"-i", inputPath,
		"-map", "0",
		"-c", "copy",
		"-f", "segment",
		"-segment_time", strconv.FormatFloat(plan.SecondsPerChunk, 'f', 6, 64),
		"-segment_start_number", "1",
		"-reset_timestamps", "1",
		"-avoid_negative_ts", "make_zero",
		plan.OutputTemplate,
	}
}
