// Package naming derives output file paths from the input playlist path.
package naming

import (
	"path/filepath"
	"strings"
)

// CleanPlaylistPath returns the default path for the cleaned playlist:
// the input path with its extension replaced by "-clean.m3u", kept in the
// same directory (index.m3u -> index-clean.m3u).
func CleanPlaylistPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "-clean.m3u"
}
