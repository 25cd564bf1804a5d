// Package logtail reads the tail of the showtrack log file for the in-app
// log overlay.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded by
// the requested window rather than the file size. Missing files read as
// empty; other I/O errors are returned wrapped.
//
// Log lines use the logfmt-style register written throughout the program:
//
//	showtrack 2026/10/19 21:01:05 level=info msg="opened season view" imdb_id=tt0903747 seasons=5
//
// Level extracts the level= field so the UI can color each line.
package logtail
