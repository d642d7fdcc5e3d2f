// Package report writes the plain-text result report: a header with the test
// date and count, one block per probed stream, and an availability summary.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/backmassage/streamsweep/internal/display"
	"github.com/backmassage/streamsweep/internal/playlist"
	"github.com/backmassage/streamsweep/internal/probe"
)

const separator = "========================================"

// Write renders the report for entries and their probe results to w.
// results[i] must correspond to entries[i]; both slices may be empty, in
// which case a zero-test report is written without erroring.
func Write(w io.Writer, entries []playlist.Entry, results []probe.Result, now time.Time) error {
	if len(entries) != len(results) {
		return fmt.Errorf("report: %d entries but %d results", len(entries), len(results))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "IPTV Stream Test Results")
	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "Date: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "Total Tests: %d\n", len(results))
	fmt.Fprintln(bw)

	available := 0
	for i, res := range results {
		name := entries[i].Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(bw, "%d. %s - %s\n", i+1, name, statusLabel(res))
		fmt.Fprintln(bw, entries[i].URL)
		fmt.Fprintln(bw)
		if res.Available {
			available++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "Available: %d\n", available)
	fmt.Fprintf(bw, "Unavailable: %d\n", len(results)-available)
	fmt.Fprintf(bw, "Availability: %s\n", display.FormatPercent(available, len(results)))

	return bw.Flush()
}

// WriteFile writes the report to path, creating or truncating the file.
func WriteFile(path string, entries []playlist.Entry, results []probe.Result, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %q: %w", path, err)
	}
	if err := Write(f, entries, results, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// statusLabel renders one result as "OK (HTTP 200)" or "FAILED (timeout)".
func statusLabel(res probe.Result) string {
	if res.Available {
		return "OK (" + res.Detail + ")"
	}
	return "FAILED (" + res.Detail + ")"
}
