//go:build !windows

package aliasdir

import "os"

// linkDirectory creates a symbolic link at link pointing at target. The
// returned *os.LinkError carries the platform error code.
func linkDirectory(target, link string) error {
	return os.Symlink(target, link)
}
