//go:build unix

package pathutil

import (
	"fmt"
	"os"
	"strings"
)

// absolute makes a POSIX path absolute without changing its semantics.
//
// Resolution is lexical and follows IEEE Std 1003.1-2017 §4.13 (Pathname
// Resolution): `.` and `..` stay literal components, repeated separators
// collapse, and a pathname beginning with exactly two slashes keeps its
// implementation-defined `//` prefix while three or more collapse to one.
func absolute(path string) (string, error) {
	var b strings.Builder

	switch {
	case strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "///"):
		b.WriteString("//")
	case path[0] == '/':
		b.WriteString("/")
	default:
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining working directory: %w", err)
		}
		b.WriteString(cwd)
	}

	for i, comp := range components(path) {
		if i > 0 || path[0] != '/' {
			b.WriteString("/")
		}
		b.WriteString(comp)
	}

	// A trailing separator is semantically meaningful in pathname
	// resolution, so the output keeps the one the input had.
	result := b.String()
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(result, "/") {
		result += "/"
	}
	return result, nil
}

// components splits path into its lexical components. Empty components
// vanish, `..` is always kept, and `.` survives only as the leading
// component of a relative path.
func components(path string) []string {
	var comps []string
	for i, c := range strings.Split(path, "/") {
		switch {
		case c == "":
		case c == "." && i != 0:
		default:
			comps = append(comps, c)
		}
	}
	return comps
}
