package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// MergeFromFlags parses command-line flags and overrides config values
func (c *Config) MergeFromFlags() error {
	fs := flag.NewFlagSet("mp4split", flag.ContinueOnError)
	fs.Usage = printUsage

	input := fs.String("input", "", "Input .mp4 file (or a directory to pick from)")
	chunks := fs.Int("chunks", -1, "Number of chunks to split into")
	outputDir := fs.String("output-dir", "", "Output directory (default: same folder as input)")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	verbose := fs.Bool("verbose", false, "Show stream and format details before splitting")
	dryRun := fs.Bool("dry-run", false, "Print the FFmpeg command without running it")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Override with flag values (only if explicitly set)
	if *input != "" {
		c.Input = *input
	}
	if *chunks > 0 {
		c.Chunks = *chunks
	}
	if *outputDir != "" {
		c.OutputDir = *outputDir
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	// Positional form: mp4split INPUT CHUNKS [OUTPUT_DIR]
	return c.mergePositional(fs.Args())
}

// mergePositional applies bare arguments, mirroring the flag-less usage
// "mp4split video.mp4 4 /path/out". Positional values win over flags.
func (c *Config) mergePositional(args []string) error {
	if len(args) == 0 {
		return nil
	}

	c.Input = args[0]

	if len(args) >= 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid chunk count %q: must be an integer", args[1])
		}
		c.Chunks = n
	}

	if len(args) >= 3 {
		c.OutputDir = args[2]
	}

	if len(args) > 3 {
		return fmt.Errorf("too many arguments: expected INPUT CHUNKS [OUTPUT_DIR]")
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `mp4split - Split an MP4 into N chunks using FFmpeg stream copy (no re-encoding)

Splitting uses FFmpeg's stream copy mode (-c copy), so there is no quality
loss and no re-encoding. Cut points align to keyframes, which means chunk
durations may vary slightly.

USAGE:
  mp4split [OPTIONS] [INPUT CHUNKS [OUTPUT_DIR]]

  With no arguments and a terminal attached, mp4split prompts for the input
  file, chunk count, and output directory interactively.

ARGUMENTS:
  INPUT        Path to the .mp4 file (or a directory to pick a file from)
  CHUNKS       Number of chunks to split into
  OUTPUT_DIR   Where to write the chunks (default: same folder as input)

OPTIONS:
  -input string
        Input .mp4 file (or a directory to pick from)
  -chunks int
        Number of chunks to split into
  -output-dir string
        Output directory (default: same folder as input)
  -config string
        Path to config file (default: search ./mp4split.yaml, ~/.mp4split/config.yaml, /etc/mp4split/config.yaml)
  -verbose
        Show stream and format details before splitting
  -dry-run
        Print the FFmpeg command without running it

REQUIREMENTS:
  FFmpeg and FFprobe must be installed and on your PATH.

OUTPUT:
  Creates video_part01.mp4, video_part02.mp4, ... in the output directory.
  The index is zero-padded so lexicographic order matches chunk order.

EXAMPLES:
  # Interactive mode (prompts for file and chunk count)
  mp4split

  # Direct mode
  mp4split video.mp4 4

  # Specify output directory
  mp4split video.mp4 4 /path/to/output

  # Flag form
  mp4split -input video.mp4 -chunks 4 -output-dir /path/to/output

  # Preview the FFmpeg invocation
  mp4split -dry-run video.mp4 4

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./mp4split.yaml
    2. ~/.mp4split/config.yaml
    3. /etc/mp4split/config.yaml

  Priority: CLI flags > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Input:      %s\n", c.Input)
	fmt.Printf("Chunks:     %d\n", c.Chunks)
	if c.OutputDir != "" {
		fmt.Printf("Output dir: %s\n", c.OutputDir)
	} else {
		fmt.Println("Output dir: (same folder as input)")
	}
	fmt.Printf("Verbose:    %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
