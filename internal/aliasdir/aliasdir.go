// Package aliasdir materializes directory aliases: a symbolic link on
// Unix-like systems and an NTFS directory junction on Windows, so that one
// directory tree appears at a second path without copying.
package aliasdir

import (
	"context"
	"errors"
	"os"

	"github.com/vk/stagekit/internal/ctxlog"
)

// ErrTargetTooLong is returned on Windows when the encoded junction target
// does not fit inside a reparse-data buffer.
var ErrTargetTooLong = errors.New("junction target exceeds the maximum reparse data buffer size")

// Aliaser creates directory aliases. With DryRun set, LinkDirectory
// reports success without touching the filesystem, which lets a caller
// simulate a build plan.
type Aliaser struct {
	DryRun bool
}

// LinkDirectory makes link resolve to the contents of target.
//
// Whatever occupied link before is not consulted: an empty directory or a
// stale link at that path is removed first, so the final state depends
// only on target and link. The removal is best effort; the creation step
// below is authoritative and fails loudly if link is genuinely unusable.
// The context carries the logger only, the call itself is synchronous and
// runs to completion.
func (a *Aliaser) LinkDirectory(ctx context.Context, target, link string) error {
	logger := ctxlog.FromContext(ctx)
	if a.DryRun {
		logger.Debug("Dry run: directory alias not created.", "target", target, "link", link)
		return nil
	}

	_ = os.Remove(link)

	logger.Debug("Creating directory alias.", "target", target, "link", link)
	return linkDirectory(target, link)
}
