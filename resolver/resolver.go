// Package resolver turns partial configuration into the validated
// (input, chunk count, output dir) triple the splitter needs, prompting
// interactively for whatever is missing. It is the only place that talks to
// the terminal; the core stays free of UI concerns.
package resolver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mcdnew/mp4-splitter/config"
)

// Resolver prompts for missing configuration values. Reader and writer are
// injected so tests can script a session without a terminal.
type Resolver struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Resolver reading prompts' answers from in and writing
// prompt text to out.
func New(in io.Reader, out io.Writer) *Resolver {
	return &Resolver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Resolve fills the missing fields of cfg by prompting. Fields already set
// (by flags or config file) are left untouched, except that a directory
// input is narrowed down to one of its media files.
func (r *Resolver) Resolve(cfg *config.Config) error {
	if cfg.Input == "" {
		path, err := r.askLine("Enter path to your .mp4 file (or a folder): ")
		if err != nil {
			return err
		}
		cfg.Input = path
	}

	// A directory input means: let the user pick one of its media files.
	if info, err := os.Stat(cfg.Input); err == nil && info.IsDir() {
		chosen, err := r.ChooseFile(cfg.Input)
		if err != nil {
			return err
		}
		cfg.Input = chosen
	}

	if cfg.Chunks <= 0 {
		n, err := r.askInt("Enter number of chunks: ")
		if err != nil {
			return err
		}
		cfg.Chunks = n
	}

	if cfg.OutputDir == "" {
		dir, err := r.askLine("Output directory (leave blank for same folder): ")
		if err != nil {
			return err
		}
		cfg.OutputDir = dir
	}

	return nil
}

// ChooseFile lists the media files in dir and prompts the user to pick one.
func (r *Resolver) ChooseFile(dir string) (string, error) {
	files, err := ListMedia(dir)
	if err != nil {
		return "", err
	}

	if len(files) == 0 {
		return "", fmt.Errorf("no %s files found in %s", config.SupportedExtension, dir)
	}

	if len(files) == 1 {
		fmt.Fprintf(r.out, "Found one media file: %s\n", filepath.Base(files[0]))
		return files[0], nil
	}

	fmt.Fprintf(r.out, "Media files in %s:\n", dir)
	for i, f := range files {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, filepath.Base(f))
	}

	choice, err := r.askInt(fmt.Sprintf("Select a file [1-%d]: ", len(files)))
	if err != nil {
		return "", err
	}

	if choice < 1 || choice > len(files) {
		return "", fmt.Errorf("selection %d is out of range [1-%d]", choice, len(files))
	}

	return files[choice-1], nil
}

// ListMedia returns the supported media files directly inside dir, sorted
// by name.
func ListMedia(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if config.IsSupportedMedia(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

func (r *Resolver) askLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (r *Resolver) askInt(prompt string) (int, error) {
	line, err := r.askLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return n, nil
}
