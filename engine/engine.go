// Package engine abstracts the external FFmpeg/FFprobe processes behind a
// narrow Runner interface so the planning logic can be tested without
// spawning real media tools.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Binary names resolved on the execution search path.
const (
	FFmpeg  = "ffmpeg"
	FFprobe = "ffprobe"
)

// ErrMissingDependency is returned when a required external tool is not
// found on the PATH.
var ErrMissingDependency = errors.New("required external tool not found")

// Runner executes external commands. The production implementation is
// ExecRunner; tests substitute fakes that record arguments and return
// scripted output.
type Runner interface {
	// LookPath reports the absolute path of the named binary, or an error
	// if it is not on the execution search path.
	LookPath(name string) (string, error)

	// Output runs the command and returns its standard output. Used for
	// metadata probes where the output must be parsed.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run executes the command with stdout/stderr attached to the parent
	// process and blocks until it exits. Used for the segmenting
	// invocation so FFmpeg's own status output reaches the terminal.
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s failed: %w (output: %s)", name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}
	return out, nil
}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// CheckDependencies verifies that ffmpeg and ffprobe are resolvable on the
// execution search path. It is a fatal pre-flight check: splitting cannot
// proceed without both tools, so callers should abort before any other work.
func CheckDependencies(r Runner) error {
	var missing []string
	for _, name := range []string{FFmpeg, FFprobe} {
		if _, err := r.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (install FFmpeg and ensure it is on your PATH)",
			ErrMissingDependency, strings.Join(missing, ", "))
	}

	return nil
}

// ExitCode extracts the child process exit code from an error returned by
// Runner.Run. Returns -1 if the command never ran (e.g., binary not found).
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
