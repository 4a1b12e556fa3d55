// Package staleness decides whether a generated artifact must be rebuilt
// by comparing filesystem modification times.
package staleness

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MetadataError reports a source entry whose metadata could not be read
// while checking staleness. It aborts the whole check: an unreadable build
// input is an environment integrity problem, not an expected condition.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("reading metadata for %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// Mtime returns the last-modified time of path, or the Unix epoch if its
// metadata cannot be read. Callers only ever compare mtimes against each
// other, so "unknown" degrades to "infinitely old" instead of an error.
func Mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Unix(0, 0)
	}
	return info.ModTime()
}

// UpToDate reports whether destination is at least as new as the file or
// file tree rooted at source, i.e. whether regenerating it can be skipped.
//
// A missing destination is never up to date. A regular-file source is up
// to date when mtime(source) <= mtime(destination); a directory source
// additionally requires every entry in its tree to be strictly older than
// the destination. The asymmetry between the two comparisons is
// deliberate and matches established rebuild triggering.
func UpToDate(source, destination string) (bool, error) {
	if _, err := os.Stat(destination); err != nil {
		return false, nil
	}
	threshold := Mtime(destination)

	info, err := os.Stat(source)
	if err != nil {
		return false, &MetadataError{Path: source, Err: err}
	}
	if info.IsDir() {
		return dirUpToDate(source, threshold)
	}
	return !Mtime(source).After(threshold), nil
}

// dirUpToDate walks dir recursively, holding the threshold fixed, and
// reports whether every entry is strictly older than it.
func dirUpToDate(dir string, threshold time.Time) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, &MetadataError{Path: dir, Err: err}
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			ok, err := dirUpToDate(path, threshold)
			if err != nil || !ok {
				return ok, err
			}
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return false, &MetadataError{Path: path, Err: err}
		}
		if !info.ModTime().Before(threshold) {
			return false, nil
		}
	}
	return true, nil
}
