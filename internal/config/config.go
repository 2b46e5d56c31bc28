// Package config provides runtime configuration for skytranslate.
package config

import (
	"os"
)

// OutputDirEnv overrides the default output directory when set.
const OutputDirEnv = "SKYTRANSLATE_OUTPUT_DIR"

// Config holds configuration for a translation run.
type Config struct {
	// OutputDir receives the translated files.
	// Defaults to the current working directory.
	OutputDir string

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns the default configuration.
// Uses SKYTRANSLATE_OUTPUT_DIR if set, otherwise "."
func DefaultConfig() *Config {
	outputDir := "."
	if dir := os.Getenv(OutputDirEnv); dir != "" {
		outputDir = dir
	}
	return &Config{
		OutputDir: outputDir,
	}
}

// EnsureOutputDir creates the output directory if it does not exist.
func (c *Config) EnsureOutputDir() error {
	if c.OutputDir == "" || c.OutputDir == "." {
		return nil
	}
	return os.MkdirAll(c.OutputDir, 0755)
}
