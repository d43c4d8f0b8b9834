package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.Input == "" {
		errors = append(errors, "input file is required")
	} else if info, err := os.Stat(c.Input); os.IsNotExist(err) {
		errors = append(errors, fmt.Sprintf("input file does not exist: %s", c.Input))
	} else if err == nil && info.IsDir() {
		errors = append(errors, fmt.Sprintf("input is a directory, not a file: %s", c.Input))
	} else if !IsSupportedMedia(c.Input) {
		errors = append(errors, fmt.Sprintf("unsupported input type %q: only %s files are supported",
			filepath.Ext(c.Input), SupportedExtension))
	}

	if c.Chunks <= 0 {
		errors = append(errors, "chunk count must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// IsSupportedMedia reports whether the path has the supported container
// extension. The comparison is case-insensitive.
func IsSupportedMedia(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SupportedExtension)
}
