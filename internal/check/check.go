// Package check provides the --check diagnostics mode: it inspects the input
// playlist without probing anything, so an operator can verify the file
// parses sensibly before spending minutes on network checks.
package check

import (
	"os"
	"strings"

	"github.com/backmassage/streamsweep/internal/config"
	"github.com/backmassage/streamsweep/internal/playlist"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the informational --check flow: file presence and size,
// line and entry counts, per-scheme breakdown, and entries missing a display
// name. Returns false only when the playlist cannot be read at all.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Playlist Check ===")

	fi, err := os.Stat(cfg.InputPath)
	if err != nil {
		log.Error("Playlist not found: %s", cfg.InputPath)
		return false
	}
	log.Success("File: %s (%d bytes)", cfg.InputPath, fi.Size())

	lines, err := playlist.ReadLines(cfg.InputPath)
	if err != nil {
		log.Error("Cannot read playlist: %v", err)
		return false
	}

	entries := playlist.Parse(lines)
	log.Info("Lines: %d", len(lines))
	if len(entries) == 0 {
		log.Warn("No stream URLs found")
		return true
	}
	log.Success("Streams: %d", len(entries))

	logSchemeBreakdown(log, entries)
	logUnnamed(cfg, log, entries)
	return true
}

// logSchemeBreakdown counts entries per URL scheme.
func logSchemeBreakdown(log Logger, entries []playlist.Entry) {
	counts := make(map[string]int)
	for _, e := range entries {
		scheme := "other"
		if idx := strings.Index(e.URL, "://"); idx > 0 {
			scheme = strings.ToLower(e.URL[:idx])
		}
		counts[scheme]++
	}
	for _, scheme := range []string{"http", "https", "rtmp"} {
		if counts[scheme] > 0 {
			log.Info("  %s: %d", scheme, counts[scheme])
		}
	}
}

// logUnnamed reports entries that no directive line named.
func logUnnamed(cfg *config.Config, log Logger, entries []playlist.Entry) {
	unnamed := 0
	for _, e := range entries {
		if e.Name == "" {
			unnamed++
			log.Debug(cfg.Verbose, "  unnamed: %s", e.URL)
		}
	}
	if unnamed > 0 {
		log.Warn("Entries without a display name: %d", unnamed)
	}
}
