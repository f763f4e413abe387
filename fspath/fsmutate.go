package fspath

import (
	"io"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// MakeDirectory creates the directory named by the path. With Recurse, it
// also creates any missing parents; with Overwrite, a conflicting
// non-directory entry is removed first.
func (p Path) MakeDirectory(flags Flags) error {
	if flags.Has(Overwrite) {
		if info, err := os.Lstat(p.native); err == nil && !info.IsDir() {
			if err := os.Remove(p.native); err != nil {
				return waiterrors.Wrap(waiterrors.Io, err, "fspath: overwrite remove failed")
			}
		}
	}
	var err error
	if flags.Has(Recurse) {
		err = os.MkdirAll(p.native, 0o755)
	} else {
		err = os.Mkdir(p.native, 0o755)
	}
	if os.IsExist(err) {
		if !flags.Has(Overwrite) {
			return waiterrors.Wrap(waiterrors.AlreadyExists, err, "fspath: directory exists")
		}
		return nil
	}
	if err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: mkdir failed")
	}
	return nil
}

// CopyTo copies the entry to dst. Copying a directory requires Recurse;
// symlinks are resolved (the target's content is copied, not the link);
// Overwrite replaces a conflicting destination.
func (p Path) CopyTo(dst Path, flags Flags) error {
	info, err := os.Stat(p.native)
	if err != nil {
		return waiterrors.Wrap(waiterrors.NotFound, err, "fspath: source missing")
	}
	if info.IsDir() {
		if !flags.Has(Recurse) {
			return waiterrors.New(waiterrors.InvalidArgument, "fspath: copying a directory requires Recurse")
		}
		return copyDir(p, dst, flags)
	}
	return copyFile(p, dst, flags, info.Mode())
}

func copyFile(src, dst Path, flags Flags, mode os.FileMode) error {
	if !flags.Has(Overwrite) {
		if _, err := os.Lstat(dst.native); err == nil {
			return waiterrors.New(waiterrors.AlreadyExists, "fspath: destination exists")
		}
	}
	in, err := os.Open(src.native)
	if err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: open source failed")
	}
	defer in.Close()
	out, err := os.OpenFile(dst.native, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: create destination failed")
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: copy failed")
	}
	return nil
}

func copyDir(src, dst Path, flags Flags) error {
	if err := dst.MakeDirectory(flags | Recurse); err != nil {
		return err
	}
	entries, err := os.ReadDir(src.native)
	if err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: readdir failed")
	}
	var errs error
	for _, e := range entries {
		childSrc := joinParentLeaf(src, e.Name())
		childDst := joinParentLeaf(dst, e.Name())
		if e.IsDir() {
			errs = multierr.Append(errs, copyDir(childSrc, childDst, flags))
			continue
		}
		info, err := e.Info()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		errs = multierr.Append(errs, copyFile(childSrc, childDst, flags, info.Mode()))
	}
	return errs
}

// MoveTo renames the entry to dst, falling back to copy-then-remove across
// devices only when MayCopy is set.
func (p Path) MoveTo(dst Path, flags Flags) error {
	if err := os.Rename(p.native, dst.native); err == nil {
		return nil
	} else if !flags.Has(MayCopy) {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: rename failed")
	}
	if err := p.CopyTo(dst, flags|Recurse); err != nil {
		return err
	}
	return p.Remove(flags | Recurse)
}

// Remove deletes the entry. With Recurse it deletes subtrees; it is
// idempotent on a non-existent target.
func (p Path) Remove(flags Flags) error {
	if !p.Exists(NoFollow) {
		return nil
	}
	var err error
	if flags.Has(Recurse) {
		err = os.RemoveAll(p.native)
	} else {
		err = os.Remove(p.native)
	}
	if err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: remove failed")
	}
	return nil
}

// MakeSymlink creates a symlink at the path pointing to target. On
// platforms without symlink support, falls back to a real copy when
// MayCopy is set, else returns Unsupported.
func (p Path) MakeSymlink(target Path, flags Flags) error {
	if flags.Has(Overwrite) {
		_ = p.Remove(0)
	}
	err := os.Symlink(target.native, p.native)
	if err == nil {
		return nil
	}
	if flags.Has(MayCopy) {
		return target.CopyTo(p, flags|Recurse)
	}
	return waiterrors.Wrap(waiterrors.Unsupported, err, "fspath: symlink unsupported")
}

// SetAccessTime and SetModifyTime mirror the getters, subject to the same
// platform caveats (POSIX has no settable creation time).
func (p Path) SetAccessTime(t time.Time) error {
	mtime, err := p.ModifyTime(0)
	if err != nil {
		mtime = t
	}
	if err := setTimes(p, t, mtime); err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: chtimes failed")
	}
	return nil
}

func (p Path) SetModifyTime(t time.Time) error {
	atime, err := p.AccessTime(0)
	if err != nil {
		atime = t
	}
	if err := setTimes(p, atime, t); err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: chtimes failed")
	}
	return nil
}
