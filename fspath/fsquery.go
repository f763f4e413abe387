package fspath

import (
	"io/fs"
	"os"
	"runtime"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/northbound-labs/waitkit/hashmix"
	"github.com/northbound-labs/waitkit/waiterrors"
)

// Kind classifies a filesystem entry.
type Kind int

const (
	NoEntry Kind = iota
	File
	Directory
	Symlink
	Special
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	case Special:
		return "special"
	default:
		return "none"
	}
}

func (p Path) stat(flags Flags) (os.FileInfo, error) {
	if flags.Has(NoFollow) {
		return os.Lstat(p.native)
	}
	return os.Stat(p.native)
}

// Exists reports whether the path resolves to anything.
func (p Path) Exists(flags Flags) bool {
	_, err := p.stat(flags)
	return err == nil
}

// IsDirectory reports whether the path resolves to a directory.
func (p Path) IsDirectory(flags Flags) bool {
	info, err := p.stat(flags)
	return err == nil && info.IsDir()
}

// IsFile reports whether the path resolves to a regular file.
func (p Path) IsFile(flags Flags) bool {
	info, err := p.stat(flags)
	return err == nil && info.Mode().IsRegular()
}

// IsSpecial reports whether the path resolves to a non-regular,
// non-directory, non-symlink entry (device, socket, named pipe, ...).
func (p Path) IsSpecial(flags Flags) bool {
	info, err := p.stat(flags)
	if err != nil {
		return false
	}
	mode := info.Mode()
	return mode&(fs.ModeDevice|fs.ModeNamedPipe|fs.ModeSocket|fs.ModeCharDevice) != 0
}

// IsSymlink reports whether the path itself (not its target) is a symlink.
func (p Path) IsSymlink() bool {
	info, err := os.Lstat(p.native)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// FileKind classifies the filesystem entry, or NoEntry if nothing resolves.
func (p Path) FileKind(flags Flags) Kind {
	info, err := p.stat(flags)
	if err != nil {
		return NoEntry
	}
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case info.IsDir():
		return Directory
	case mode.IsRegular():
		return File
	default:
		return Special
	}
}

// ModifyTime returns the last-modification timestamp.
func (p Path) ModifyTime(flags Flags) (time.Time, error) {
	info, err := p.stat(flags)
	if err != nil {
		return time.Time{}, waiterrors.Wrap(waiterrors.NotFound, err, "fspath: stat failed")
	}
	return info.ModTime(), nil
}

// AccessTime, CreateTime and StatusTime return platform-dependent
// timestamps; on platforms/filesystems that do not record them this
// returns an Unsupported error rather than a zero time, so callers can
// distinguish "unknown" from "epoch".
func (p Path) AccessTime(flags Flags) (time.Time, error) {
	return platformTime(p, flags, timeAccess)
}

func (p Path) CreateTime(flags Flags) (time.Time, error) {
	return platformTime(p, flags, timeCreate)
}

func (p Path) StatusTime(flags Flags) (time.Time, error) {
	return platformTime(p, flags, timeStatus)
}

// Size reports the entry's size in bytes; with Recurse set on a directory,
// it sums every regular file reachable beneath it, stat-ing files
// concurrently (bounded to GOMAXPROCS) since a deep tree is i/o-bound.
func (p Path) Size(flags Flags) (int64, error) {
	info, err := p.stat(flags)
	if err != nil {
		return 0, waiterrors.Wrap(waiterrors.NotFound, err, "fspath: stat failed")
	}
	if !info.IsDir() || !flags.Has(Recurse) {
		return info.Size(), nil
	}

	var total atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	it := p.DeepSearch(0)
	for it.Next() {
		child := it.Path()
		if !child.IsFile(flags) {
			continue
		}
		g.Go(func() error {
			if sz, err := child.Size(0); err == nil {
				total.Add(sz)
			}
			return nil
		})
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	_ = g.Wait()
	return total.Load(), nil
}

// FileID uniquely identifies the entry on its device, enabling same-file
// detection across differently-spelled paths.
type FileID struct {
	Device uint64
	Inode  uint64
}

// Fingerprint folds the FileID down to a single comparable word via the
// shared hash mixer, convenient as a map key or log field.
func (id FileID) Fingerprint() uint64 {
	return hashmix.MixWords(id.Device, id.Inode)
}

// ID returns the platform file identity; two paths naming the same entry
// (even through different spellings or hardlinks) return equal FileIDs.
func (p Path) ID(flags Flags) (FileID, error) {
	return platformID(p, flags)
}
