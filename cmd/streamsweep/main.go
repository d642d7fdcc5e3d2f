// Command streamsweep is the CLI entrypoint for the IPTV playlist checker.
//
// It parses flags, validates configuration, and either inspects the playlist
// (--check) or runs the full check: probe every stream, write the result
// report, and optionally write a cleaned playlist.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/streamsweep/internal/check"
	"github.com/backmassage/streamsweep/internal/config"
	"github.com/backmassage/streamsweep/internal/display"
	"github.com/backmassage/streamsweep/internal/logging"
	"github.com/backmassage/streamsweep/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "streamsweep: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "streamsweep: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "streamsweep: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	if !cfg.Silent {
		display.PrintBanner()
	}

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// The input file is the only precondition allowed to stop the run;
	// individual dead streams never do.
	if _, err := os.Stat(cfg.InputPath); err != nil {
		log.Error("Playlist not found: %s", cfg.InputPath)
		return 1
	}

	log.Info("=== StreamSweep v%s (%s) ===", version, commit)
	log.Info("Playlist: %s", cfg.InputPath)
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// probe loop can stop between streams and still write a partial report.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current stream…")
		cancel()
	}()

	// Phase 4: Run the check. Dead streams are data, not errors; only
	// run-level I/O failures (unwritable report or clean playlist) fail here.
	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
