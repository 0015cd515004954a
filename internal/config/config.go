// Package config holds runtime configuration: defaults, optional YAML
// config file overlay, and validation. Enum fields (header style, color
// mode) are validated exactly once here, before any file is processed.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivanmugu/fastasplit/internal/header"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by an optional config file, and then mutated by CLI flag
// parsing before being passed (by pointer) to packages that need it.
type Config struct {
	// Single-file mode: the input FASTA file.
	InputFile string

	// Batch mode: root directory scanned one level deep, and the target
	// filename looked up inside each subdirectory.
	RootDir    string
	TargetName string

	// Optional output directory. Empty means each record is written next
	// to its source file.
	OutputDir string

	// Header style applied to every header line of the run.
	Style header.HeaderStyle

	// Behavior flags.
	KeepGoing bool // Batch: continue past a failed target and report a summary.
	DryRun    bool // Report computed names without writing files.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string // Optional log file path.
}

// DefaultConfig returns a Config with the documented defaults: Unicycler
// header style, automatic color detection, outputs alongside sources.
func DefaultConfig() Config {
	return Config{
		Style:     header.StyleUnicycler,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the batch
// target filename, when set, is a bare name. Configuration errors are
// fatal before any file is processed.
func (c *Config) Validate() error {
	switch c.Style {
	case header.StyleUnicycler, header.StyleGenBank:
		// valid
	default:
		return fmt.Errorf("invalid header style %q (use 'unicycler' or 'genbank')", c.Style)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.ContainsAny(c.TargetName, `/\`) {
		return fmt.Errorf("target filename %q must not contain a path separator", c.TargetName)
	}
	return nil
}
