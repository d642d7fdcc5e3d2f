package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into input/output, probing, behavior, display, and utility.
// Exit-triggering flags (--help, --version) are applied after Parse so Config
// defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, bad value).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("streamsweep", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var util utilityFlags

	defineInputOutputFlags(fs, cfg)
	defineProbeFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &util)
	defineUtilityFlags(fs, &util)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyUtilityFlags(cfg, &util)

	if util.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if util.showVersion {
		fmt.Fprintln(os.Stdout, "streamsweep v"+version)
		os.Exit(0)
	}

	// A bare positional argument is accepted as the input playlist,
	// so "streamsweep channels.m3u" works without -i.
	if args := fs.Args(); len(args) > 1 {
		return fmt.Errorf("expected at most one positional argument (playlist path), got %d", len(args))
	} else if len(args) == 1 {
		cfg.InputPath = args[0]
	}
	return nil
}

// utilityFlags holds boolean flags that are applied after Parse.
// These either override a default (forceColor/noColor) or trigger exit
// (showHelp, showVersion).
type utilityFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineInputOutputFlags registers -i/--input, -o/--report, --clean-out.
func defineInputOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.InputPath, "input", cfg.InputPath, "Playlist file to test")
	fs.StringVar(&cfg.InputPath, "i", cfg.InputPath, "Same as --input")
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "Result report output path")
	fs.StringVar(&cfg.ReportPath, "o", cfg.ReportPath, "Same as --report")
	fs.StringVar(&cfg.CleanPath, "clean-out", "", "Cleaned playlist path (default <input>-clean.m3u)")
}

// defineProbeFlags registers -t/--timeout and -n/--max-streams.
func defineProbeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.TimeoutSeconds, "timeout", cfg.TimeoutSeconds, "Per-stream probe timeout in seconds")
	fs.IntVar(&cfg.TimeoutSeconds, "t", cfg.TimeoutSeconds, "Same as --timeout")
	fs.IntVar(&cfg.MaxStreams, "max-streams", cfg.MaxStreams, "Test only the first N streams (0 = all)")
	fs.IntVar(&cfg.MaxStreams, "n", cfg.MaxStreams, "Same as --max-streams")
}

// defineBehaviorFlags registers --clean and -s/--silent.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.WriteClean, "clean", false, "Write a cleaned playlist without dead streams")
	fs.BoolVar(&cfg.Silent, "silent", false, "Suppress per-stream progress output")
	fs.BoolVar(&cfg.Silent, "s", false, "Same as --silent")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Inspect the playlist without probing and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, u *utilityFlags) {
	fs.BoolVar(&u.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&u.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&u.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&u.showHelp, "h", false, "Same as --help")
}

// applyUtilityFlags copies color override flags into cfg.
func applyUtilityFlags(cfg *Config, u *utilityFlags) {
	if u.noColor {
		cfg.ColorMode = ColorNever
	} else if u.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "StreamSweep v" + version + " - IPTV playlist availability checker"},
		{"", ""},
		{"  streamsweep [OPTIONS] [playlist]", ""},
		{"", ""},
		{"Input & output", ""},
		{"  -i, --input <path>", "Playlist file to test (default: index.m3u)"},
		{"  -o, --report <path>", "Result report path (default: iptv-test-results.txt)"},
		{"  --clean-out <path>", "Cleaned playlist path (default: <input>-clean.m3u)"},
		{"", ""},
		{"Probing", ""},
		{"  -t, --timeout <sec>", "Per-stream probe timeout (default: 5)"},
		{"  -n, --max-streams <n>", "Test only the first N streams (default: all)"},
		{"", ""},
		{"Behavior", ""},
		{"  --clean", "Write a cleaned playlist without dead streams"},
		{"  -s, --silent", "Suppress per-stream progress output"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Inspect the playlist without probing"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
