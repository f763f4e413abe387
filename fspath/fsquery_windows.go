//go:build windows

package fspath

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"

	"github.com/northbound-labs/waitkit/timeutil"
	"github.com/northbound-labs/waitkit/waiterrors"
)

func platformTime(p Path, flags Flags, kind timeKind) (time.Time, error) {
	info, err := p.stat(flags)
	if err != nil {
		return time.Time{}, waiterrors.Wrap(waiterrors.NotFound, err, "fspath: stat failed")
	}
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, waiterrors.New(waiterrors.Unsupported, "fspath: platform stat unavailable")
	}
	switch kind {
	case timeAccess:
		return timeutil.FromFILETIME(int64(d.LastAccessTime.HighDateTime)<<32 | int64(d.LastAccessTime.LowDateTime)), nil
	case timeCreate:
		return timeutil.FromFILETIME(int64(d.CreationTime.HighDateTime)<<32 | int64(d.CreationTime.LowDateTime)), nil
	default:
		// Windows file attribute data records no status-change time.
		return time.Time{}, waiterrors.New(waiterrors.Unsupported, "fspath: status time unavailable on this platform")
	}
}

func platformID(p Path, flags Flags) (FileID, error) {
	h, err := windows.Open(p.native, windows.O_RDONLY, 0)
	if err != nil {
		return FileID{}, waiterrors.Wrap(waiterrors.NotFound, err, "fspath: open failed")
	}
	defer windows.CloseHandle(h)
	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return FileID{}, waiterrors.Wrap(waiterrors.Io, err, "fspath: GetFileInformationByHandle failed")
	}
	return FileID{
		Device: uint64(info.VolumeSerialNumber),
		Inode:  uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
	}, nil
}

// IsHidden reports Windows hidden/system attribute status rather than
// leading-dot convention.
func (p Path) IsHidden() bool {
	attrs, err := windows.GetFileAttributes(windows.StringToUTF16Ptr(p.native))
	if err != nil {
		return false
	}
	return attrs&(windows.FILE_ATTRIBUTE_HIDDEN|windows.FILE_ATTRIBUTE_SYSTEM) != 0
}

func setTimes(p Path, atime, mtime time.Time) error {
	return os.Chtimes(p.native, atime, mtime)
}
