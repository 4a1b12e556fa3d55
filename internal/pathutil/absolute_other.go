//go:build !unix && !windows

package pathutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// absolute has no lexical implementation on this platform. Fall back to
// canonicalizing the working directory and joining the input onto it,
// which only works while the working directory exists.
func absolute(path string) (string, error) {
	slog.Warn("path absolutization is not supported on this platform; falling back to filesystem canonicalization")

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(cwd)
	if err != nil {
		return "", fmt.Errorf("canonicalizing working directory: %w", err)
	}
	return filepath.Join(resolved, path), nil
}
