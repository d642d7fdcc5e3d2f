// Package playlist parses line-oriented M3U playlists into stream entries
// and filters raw playlists by a set of dead URLs.
//
// The format is deliberately loose: #EXTINF directive lines declare the
// display name of the next stream, URL lines carry the stream address, and
// everything else (the #EXTM3U header, comments, blanks) passes through
// untouched. Parsing and filtering both work on the raw line sequence so the
// cleaned output preserves whatever structure the source file had.
package playlist
