package playlist

import "strings"

// Filter walks rawLines once and returns a new line sequence with every URL
// in unavailable removed, together with the single line directly above it
// (the directive that announced it). All other lines keep their relative
// order; with an empty unavailable set the input comes back unchanged.
//
// The preceding line is removed unconditionally, whatever it holds; standard
// playlists put exactly one directive line above each URL, and the legacy
// checker behaved the same way. When a dead URL is the very first line there
// is nothing above it and the removal is skipped rather than underflowing.
func Filter(rawLines []string, unavailable map[string]bool) []string {
	kept := make([]string, 0, len(rawLines))

	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)
		if IsStreamURL(line) && unavailable[line] {
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
			continue
		}
		kept = append(kept, raw)
	}
	return kept
}
