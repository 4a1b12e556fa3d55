//go:build windows

package pathutil

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// absolute resolves path through GetFullPathNameW. Windows path syntax
// (drive-relative paths, UNC shares, \\?\ prefixes) is not safely
// reproducible lexically, so the OS does the work.
func absolute(path string) (string, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", fmt.Errorf("encoding path %q: %w", path, err)
	}

	buf := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetFullPathName(p, uint32(len(buf)), &buf[0], nil)
		if err != nil {
			return "", fmt.Errorf("GetFullPathNameW(%q): %w", path, err)
		}
		if int(n) <= len(buf) {
			return windows.UTF16ToString(buf[:n]), nil
		}
		// n is the required buffer size, terminator included.
		buf = make([]uint16, n)
	}
}
