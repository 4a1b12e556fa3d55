// Package pathutil turns possibly-relative paths into absolute ones
// according to the pathname-resolution rules of the host platform.
package pathutil

import "errors"

// ErrEmptyPath is returned when an empty path is asked to be made absolute.
var ErrEmptyPath = errors.New("cannot make an empty path absolute")

// Absolute returns an absolute form of path. The path does not have to
// exist: on Unix-like systems resolution is purely lexical, and on Windows
// it is delegated to the OS full-path API. A trailing separator on the
// input is preserved on the output.
func Absolute(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	return absolute(path)
}
