// Package pipeline orchestrates the checking run: load the playlist, probe
// every stream in order, write the report, and optionally write a cleaned
// playlist with dead entries removed.
package pipeline

import (
	"context"
	"time"

	"github.com/backmassage/streamsweep/internal/config"
	"github.com/backmassage/streamsweep/internal/display"
	"github.com/backmassage/streamsweep/internal/logging"
	"github.com/backmassage/streamsweep/internal/naming"
	"github.com/backmassage/streamsweep/internal/playlist"
	"github.com/backmassage/streamsweep/internal/probe"
	"github.com/backmassage/streamsweep/internal/report"
)

// ProgressFunc receives the 1-based index and total entry count before each
// probe. It exists so progress display can be swapped out (or dropped
// entirely in silent mode) without touching the probe loop.
type ProgressFunc func(current, total int, entry playlist.Entry)

// Run executes the full check with logger-based progress output, suppressed
// when cfg.Silent is set. It returns aggregate stats; a non-nil error means
// a run-level I/O failure (unreadable playlist, unwritable output), never a
// dead stream.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var onProgress ProgressFunc
	if !cfg.Silent {
		onProgress = func(current, total int, entry playlist.Entry) {
			name := entry.Name
			if name == "" {
				name = entry.URL
			}
			log.Probe("[%d/%d] %s (%d%%)", current, total, name, current*100/total)
		}
	}
	return RunWithProgress(ctx, cfg, log, onProgress)
}

// RunWithProgress is [Run] with an explicit progress observer; nil disables
// progress reporting.
func RunWithProgress(ctx context.Context, cfg *config.Config, log *logging.Logger, onProgress ProgressFunc) (RunStats, error) {
	var stats RunStats

	lines, err := playlist.ReadLines(cfg.InputPath)
	if err != nil {
		return stats, err
	}

	entries := playlist.Parse(lines)
	stats.Total = len(entries)

	if cfg.MaxStreams > 0 && len(entries) > cfg.MaxStreams {
		log.Info("Limiting run to the first %d of %d streams", cfg.MaxStreams, len(entries))
		entries = entries[:cfg.MaxStreams]
	}

	logRunHeader(cfg, log, len(entries))

	prober := probe.New(time.Duration(cfg.TimeoutSeconds) * time.Second)
	results := make([]probe.Result, 0, len(entries))

	for i, entry := range entries {
		if ctx.Err() != nil {
			log.Warn("Interrupted, stopping after %d of %d streams", len(results), len(entries))
			break
		}

		if onProgress != nil {
			onProgress(i+1, len(entries), entry)
		}

		res := prober.Check(ctx, entry.URL)
		results = append(results, res)

		stats.Tested++
		if res.Available {
			stats.Available++
		} else {
			stats.Unavailable++
		}
		logResult(cfg, log, entry, res)
	}

	// An interrupted run reports only what was actually probed.
	probed := entries[:len(results)]

	if err := report.WriteFile(cfg.ReportPath, probed, results, time.Now()); err != nil {
		return stats, err
	}
	log.Info("Report written: %s", cfg.ReportPath)

	if cfg.WriteClean {
		if err := writeCleanPlaylist(cfg, log, lines, results); err != nil {
			return stats, err
		}
	}

	logSummary(log, &stats)
	return stats, nil
}

// writeCleanPlaylist filters the raw playlist by the dead URLs and writes it
// to the configured (or derived) clean path.
func writeCleanPlaylist(cfg *config.Config, log *logging.Logger, lines []string, results []probe.Result) error {
	unavailable := make(map[string]bool)
	for _, res := range results {
		if !res.Available {
			unavailable[res.URL] = true
		}
	}

	cleanPath := cfg.CleanPath
	if cleanPath == "" {
		cleanPath = naming.CleanPlaylistPath(cfg.InputPath)
	}

	cleaned := playlist.Filter(lines, unavailable)
	if err := playlist.WriteLines(cleanPath, cleaned); err != nil {
		return err
	}
	log.Info("Cleaned playlist written: %s (%d dead streams removed)", cleanPath, len(unavailable))
	return nil
}

// --- Logging helpers ---

func logRunHeader(cfg *config.Config, log *logging.Logger, count int) {
	log.Info("Found %d streams in %s", count, cfg.InputPath)
	log.Info("Timeout: %ds per stream", cfg.TimeoutSeconds)
	if cfg.WriteClean {
		log.Info("Clean playlist: enabled")
	}
}

func logResult(cfg *config.Config, log *logging.Logger, entry playlist.Entry, res probe.Result) {
	if cfg.Silent {
		return
	}
	name := entry.Name
	if name == "" {
		name = entry.URL
	}
	if res.Available {
		log.Success("  %s [%s, %s]", name, res.Detail, display.FormatLatency(res.Latency))
	} else {
		log.Warn("  %s [%s]", name, res.Detail)
	}
	log.Debug(cfg.Verbose, "  %s", entry.URL)
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d tested, %d available, %d unavailable",
		stats.Tested, stats.Available, stats.Unavailable)
	log.Info("Availability: %s", display.FormatPercent(stats.Available, stats.Tested))
}
