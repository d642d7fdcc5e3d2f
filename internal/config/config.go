// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. All defaults match the legacy checker script (v1.x) for parity.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it. Fields are grouped by concern.
type Config struct {
	// Paths.
	InputPath  string // Playlist to test. Default: "index.m3u".
	ReportPath string // Result report output. Default: "iptv-test-results.txt".
	CleanPath  string // Cleaned playlist output. Empty: derived from InputPath.

	// Probe settings.
	TimeoutSeconds int // Per-probe hard timeout. Default: 5.
	MaxStreams     int // Probe only the first N entries. 0 means unlimited.

	// Behavior flags.
	WriteClean bool // Write a cleaned playlist with dead entries removed.
	Silent     bool // Suppress per-stream progress output.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check playlist diagnostics and exit.
}

// DefaultConfig returns a Config with the defaults of the legacy checker.
// Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		InputPath:      "index.m3u",
		ReportPath:     "iptv-test-results.txt",
		CleanPath:      "",
		TimeoutSeconds: 5,
		MaxStreams:     0,
		WriteClean:     false,
		Silent:         false,
		Verbose:        false,
		ColorMode:      ColorAuto,
		CheckOnly:      false,
	}
}

// Validate checks flag values after parsing: paths must be non-empty, the
// timeout positive, and the stream cap non-negative.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.InputPath) == "" {
		return errors.New("input playlist path must not be empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be a positive number of seconds (got %d)", c.TimeoutSeconds)
	}
	if c.MaxStreams < 0 {
		return fmt.Errorf("max-streams must not be negative (got %d)", c.MaxStreams)
	}

	if c.CheckOnly {
		return nil
	}
	if strings.TrimSpace(c.ReportPath) == "" {
		return errors.New("report path must not be empty")
	}
	return nil
}
