package domain

import "time"

// Request describes a single cleanup run. It is built once by the CLI layer
// and never mutated afterwards.
type Request struct {
	// Root is the directory tree to scan. It must exist and be a directory
	// at scan time.
	Root string
	// Pattern is the shell-style glob (`*`, `?`, `[...]`) matched against
	// file base names.
	Pattern string
	// MaxAgeDays is the age threshold in days. Files modified strictly
	// before now minus this many days are eligible for cleanup.
	MaxAgeDays int
	// Delete switches from dry-run reporting to actual removal.
	Delete bool
}

// Candidate is a file selected for deletion: it matched the pattern, resolved
// to a regular file, and its last-modified time fell before the cutoff.
// Candidates are produced fresh on every run and never persisted.
type Candidate struct {
	// Path is the location of the file on disk.
	Path string
	// Size is the file size in bytes, used for reclaimed-space accounting.
	Size int64
	// ModTime is the file's last-modified timestamp at scan time.
	ModTime time.Time
}
