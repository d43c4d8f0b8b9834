package config

// SupportedExtension is the only container type the splitter accepts.
// Stream-copy segmenting is container-sensitive, so the tool is scoped to
// MP4 inputs.
const SupportedExtension = ".mp4"

// Config holds all splitter configuration options
type Config struct {
	// Input is the path to the .mp4 file to split, or a directory to
	// choose a file from interactively.
	Input string `yaml:"input"`

	// Chunks is the number of pieces to split the input into.
	Chunks int `yaml:"chunks"`

	// OutputDir is where chunk files are written. Empty means the same
	// directory as the input file.
	OutputDir string `yaml:"output_dir"`

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Show stream/format details before splitting
	DryRun  bool `yaml:"dry_run"` // Print the FFmpeg command without running it
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user (flags, config file, or
		// interactive prompts)
		Input:  "",
		Chunks: 0,

		// Empty means: write chunks next to the input file
		OutputDir: "",

		Verbose: false,
		DryRun:  false,
	}
}

// Copy creates a copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	return &copy
}
