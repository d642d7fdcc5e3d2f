package playlist

import "strings"

// directivePrefix marks a metadata line declaring the next entry's name.
const directivePrefix = "#EXTINF:"

// Stream URL schemes recognized on standalone URL lines.
var streamSchemes = []string{"http://", "https://", "rtmp://"}

// Entry is one (name, URL) pair extracted from a playlist. Name is the
// display label from the most recent directive line and may be empty.
type Entry struct {
	Name string
	URL  string
}

// Parse scans lines once, top to bottom, and returns the stream entries in
// source order. A directive line sets the pending name; a URL line emits an
// entry with that name. The pending name is intentionally NOT cleared after
// a URL is consumed: consecutive URL lines under one directive all inherit
// its name, matching the legacy checker. An empty input yields no entries.
func Parse(lines []string) []Entry {
	var entries []Entry
	pending := ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case isDirective(line):
			pending = directiveName(line)
		case IsStreamURL(line):
			entries = append(entries, Entry{Name: pending, URL: line})
		}
	}
	return entries
}

// IsStreamURL reports whether line (already trimmed) is entirely a stream
// URL with an http, https or rtmp scheme. Scheme matching is
// case-insensitive for portability with playlists written on other systems.
func IsStreamURL(line string) bool {
	lower := strings.ToLower(line)
	for _, scheme := range streamSchemes {
		if strings.HasPrefix(lower, scheme) && len(line) > len(scheme) {
			return true
		}
	}
	return false
}

func isDirective(line string) bool {
	return strings.HasPrefix(line, directivePrefix) && strings.Contains(line, ",")
}

// directiveName extracts the display text after the last comma of a
// directive line. #EXTINF attribute values rarely contain commas, and the
// legacy checker split on the last one, so we do the same.
func directiveName(line string) string {
	idx := strings.LastIndex(line, ",")
	if idx < 0 || idx == len(line)-1 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}
