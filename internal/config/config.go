// Package config holds runtime configuration: defaults, layered loading
// (config file, .env, environment, flags) and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// OutputFormat selects the encoding of structured command output (plan).
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml" // Default.
	OutputJSON OutputFormat = "json"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [Load], and passed by pointer to the packages that need it.
type Config struct {
	// Paths.
	Outline   string `mapstructure:"outline"`    // Default: "outline.txt", relative to the working directory.
	OutputDir string `mapstructure:"output_dir"` // Default: "." (section folders are created here).

	// Behavior.
	DryRun bool `mapstructure:"dry_run"` // Classify and render only; create nothing.

	// Display and logging.
	Verbose      bool         `mapstructure:"verbose"`
	ColorMode    ColorMode    `mapstructure:"color"`   // Default: "auto".
	LogFile      string       `mapstructure:"log"`     // Optional log file path (append).
	OutputFormat OutputFormat `mapstructure:"output"` // Default: "yaml".
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Load] applies file, environment and flag overrides.
func DefaultConfig() Config {
	return Config{
		Outline:      "outline.txt",
		OutputDir:    ".",
		DryRun:       false,
		Verbose:      false,
		ColorMode:    ColorAuto,
		OutputFormat: OutputYAML,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and required paths, normalizing case on the
// enums and trailing slashes on the output directory.
func (c *Config) Validate() error {
	c.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(string(c.ColorMode))))
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	c.OutputFormat = OutputFormat(strings.ToLower(strings.TrimSpace(string(c.OutputFormat))))
	switch c.OutputFormat {
	case OutputYAML, OutputJSON:
		// valid
	default:
		return fmt.Errorf("invalid output format %q (use 'yaml' or 'json')", c.OutputFormat)
	}

	if strings.TrimSpace(c.Outline) == "" {
		return errors.New("outline path must not be empty")
	}
	c.OutputDir = NormalizeDirArg(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}
