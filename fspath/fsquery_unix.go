//go:build unix

package fspath

import (
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/northbound-labs/waitkit/waiterrors"
)

func statT(p Path, flags Flags) (*syscall.Stat_t, error) {
	info, err := p.stat(flags)
	if err != nil {
		return nil, err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, waiterrors.New(waiterrors.Unsupported, "fspath: platform stat unavailable")
	}
	return st, nil
}

func platformTime(p Path, flags Flags, kind timeKind) (time.Time, error) {
	st, err := statT(p, flags)
	if err != nil {
		return time.Time{}, waiterrors.Wrap(waiterrors.NotFound, err, "fspath: stat failed")
	}
	switch kind {
	case timeAccess:
		return time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)), nil
	case timeStatus:
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)), nil
	default:
		// POSIX stat has no creation time; report unsupported rather than
		// guessing at birthtime, which varies by filesystem.
		return time.Time{}, waiterrors.New(waiterrors.Unsupported, "fspath: create time unavailable on this platform")
	}
}

func platformID(p Path, flags Flags) (FileID, error) {
	st, err := statT(p, flags)
	if err != nil {
		return FileID{}, waiterrors.Wrap(waiterrors.NotFound, err, "fspath: stat failed")
	}
	return FileID{Device: uint64(st.Dev), Inode: st.Ino}, nil
}

// IsHidden reports dotfile status on POSIX: a leading '.' in the leaf name.
func (p Path) IsHidden() bool {
	_, leaf := p.SplitPath()
	return strings.HasPrefix(leaf, ".")
}

func setTimes(p Path, atime, mtime time.Time) error {
	return os.Chtimes(p.native, atime, mtime)
}
