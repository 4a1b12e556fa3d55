//go:build windows

package aliasdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	// devicePathPrefix is the NT namespace marker a mount-point reparse
	// target must carry.
	devicePathPrefix = `\??\`
	// verbatimPrefix is the extended-length prefix filesystem
	// canonicalization may produce; it must be dropped before the device
	// marker is applied or the junction resolves to the wrong location.
	verbatimPrefix = `\\?\`

	// reparseHeaderBytes is the size of the fields preceding the target
	// path inside the reparse buffer.
	reparseHeaderBytes = 16
)

// reparseMountPointBuffer is the layout DeviceIoControl expects for a
// mount-point reparse point. The target path is written in place after
// the header fields.
type reparseMountPointBuffer struct {
	reparseTag          uint32
	reparseDataLength   uint32
	reserved            uint16
	reparseTargetLength uint16
	reparseTargetMaxLen uint16
	reserved1           uint16
	reparseTarget       [1]uint16
}

// linkDirectory creates an NTFS directory junction at link resolving into
// target. Directory symbolic links need elevated privileges on most
// Windows installations; junctions do not.
func linkDirectory(target, link string) error {
	// The kernel does not resolve forward slashes or relative components
	// inside a reparse target, so canonicalize first.
	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving junction target %q: %w", target, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fmt.Errorf("canonicalizing junction target %q: %w", target, err)
	}

	targetU16, err := windows.UTF16FromString(devicePathPrefix + strings.TrimPrefix(canonical, verbatimPrefix))
	if err != nil {
		return fmt.Errorf("encoding junction target %q: %w", canonical, err)
	}
	// Check the bound before writing anything: an oversized target must
	// fail cleanly, not overrun the buffer.
	if reparseHeaderBytes+2*len(targetU16) > windows.MAXIMUM_REPARSE_DATA_BUFFER_SIZE {
		return fmt.Errorf("%w: %s", ErrTargetTooLong, canonical)
	}

	if err := os.Mkdir(link, 0755); err != nil {
		return fmt.Errorf("creating junction directory: %w", err)
	}

	linkU16, err := windows.UTF16PtrFromString(link)
	if err != nil {
		return fmt.Errorf("encoding junction path %q: %w", link, err)
	}
	h, err := windows.CreateFile(
		linkU16,
		windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_OPEN_REPARSE_POINT|windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return fmt.Errorf("opening junction directory %q: %w", link, err)
	}
	defer windows.CloseHandle(h)

	var data [windows.MAXIMUM_REPARSE_DATA_BUFFER_SIZE]byte
	db := (*reparseMountPointBuffer)(unsafe.Pointer(&data[0]))
	db.reparseTag = windows.IO_REPARSE_TAG_MOUNT_POINT

	pathBuf := unsafe.Slice(&db.reparseTarget[0], len(targetU16))
	copy(pathBuf, targetU16)

	chars := uint16(len(targetU16)) // terminating NUL included
	db.reparseTargetMaxLen = chars * 2
	db.reparseTargetLength = (chars - 1) * 2
	db.reparseDataLength = uint32(db.reparseTargetLength) + 12

	var returned uint32
	if err := windows.DeviceIoControl(
		h,
		windows.FSCTL_SET_REPARSE_POINT,
		&data[0],
		db.reparseDataLength+8,
		nil,
		0,
		&returned,
		nil,
	); err != nil {
		return fmt.Errorf("attaching reparse point to %q: %w", link, err)
	}
	return nil
}
