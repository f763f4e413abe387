// Package fspath implements a cross-platform path/filesystem core:
// canonicalisation, form classification, traversal iterators and atomic
// file operations layered over os/filepath, golang.org/x/sys for
// platform-specific bits, and golang.org/x/text for the POSIX/Windows
// string-encoding boundary.
package fspath

import (
	"runtime"
	"strings"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// Form classifies a canonicalised path.
type Form int

const (
	Empty Form = iota
	Absolute
	Relative
	DriveAbsolute // Windows only: "C:\foo"
	DriveRelative // Windows only: "C:foo"
)

func (f Form) String() string {
	switch f {
	case Empty:
		return "empty"
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	case DriveAbsolute:
		return "drive-absolute"
	case DriveRelative:
		return "drive-relative"
	default:
		return "unknown"
	}
}

// Path wraps a canonicalised, native-encoded path string. The zero value is
// the empty path.
type Path struct {
	native string
}

// delim is the platform path delimiter this build canonicalises to.
const delim = "/"

var windows = runtime.GOOS == "windows"

// New canonicalises s and returns the resulting Path. If opts includes
// Legal, embedded NULs (and, on Windows, characters illegal in a filename
// component) are rejected.
func New(s string, opts Flags) (Path, error) {
	if opts.Has(Legal) {
		if strings.ContainsRune(s, 0) {
			return Path{}, waiterrors.New(waiterrors.InvalidArgument, "fspath: embedded NUL")
		}
		if windows {
			if err := checkWindowsLegal(s); err != nil {
				return Path{}, err
			}
		}
	}
	return Path{native: canonicalise(s)}, nil
}

// MustNew is New without the Legal check, panicking only on programmer
// error (never on malformed input, since canonicalise never fails).
func MustNew(s string) Path { return Path{native: canonicalise(s)} }

// String returns the canonicalised path string.
func (p Path) String() string { return p.native }

func canonicalise(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\\", delim)

	drive, rest, hasDrive := splitDrive(s)

	segments := strings.Split(rest, delim)
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" || seg == "." {
			continue
		}
		out = append(out, seg)
	}

	leadingSlash := strings.HasPrefix(rest, delim)
	body := strings.Join(out, delim)

	switch {
	case hasDrive && leadingSlash:
		return strings.ToUpper(drive) + delim + body
	case hasDrive:
		return strings.ToUpper(drive) + body
	case leadingSlash:
		return delim + body
	default:
		return body
	}
}

// splitDrive recognises a Windows "C:" drive prefix or "\\server\share" UNC
// prefix; on non-Windows builds it always reports no drive. UNC prefixes
// keep their trailing delimiter per the canonicalisation contract.
func splitDrive(s string) (drive, rest string, ok bool) {
	if !windows {
		return "", s, false
	}
	if len(s) >= 2 && isLetter(s[0]) && s[1] == ':' {
		return s[:2], s[2:], true
	}
	if strings.HasPrefix(s, `\\`) || strings.HasPrefix(s, "//") {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(s, `\\`), "//")
		parts := strings.SplitN(trimmed, delim, 3)
		if len(parts) >= 2 {
			prefix := delim + delim + parts[0] + delim + parts[1]
			remainder := ""
			if len(parts) == 3 {
				remainder = delim + parts[2]
			}
			return prefix + delim, remainder, true
		}
	}
	return "", s, false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func checkWindowsLegal(s string) error {
	const reserved = `<>:"|?*`
	// Drive-letter colon is legal; only check past any "X:" prefix.
	body := s
	if len(s) >= 2 && isLetter(s[0]) && s[1] == ':' {
		body = s[2:]
	}
	if strings.ContainsAny(body, reserved) {
		return waiterrors.New(waiterrors.InvalidArgument, "fspath: reserved character in path")
	}
	return nil
}

// IsEmpty reports whether the path has no content at all.
func (p Path) IsEmpty() bool { return p.native == "" }

// FormOf classifies the path.
func (p Path) FormOf() Form {
	if p.native == "" {
		return Empty
	}
	if windows {
		if len(p.native) >= 2 && isLetter(p.native[0]) && p.native[1] == ':' {
			if len(p.native) >= 3 && string(p.native[2]) == delim {
				return DriveAbsolute
			}
			return DriveRelative
		}
	}
	if strings.HasPrefix(p.native, delim) {
		return Absolute
	}
	return Relative
}

func (p Path) IsAbsolute() bool      { return p.FormOf() == Absolute || p.FormOf() == DriveAbsolute }
func (p Path) IsRelative() bool      { return p.FormOf() == Relative || p.FormOf() == DriveRelative }
func (p Path) IsDriveAbsolute() bool { return p.FormOf() == DriveAbsolute }
func (p Path) IsDriveRelative() bool { return p.FormOf() == DriveRelative }

// IsRoot reports whether the path is exactly a root (the "/" delimiter or a
// bare Windows drive-absolute prefix).
func (p Path) IsRoot() bool {
	if p.native == delim {
		return true
	}
	if windows && p.FormOf() == DriveAbsolute && len(p.native) == 3 {
		return true
	}
	return false
}

// IsLeaf reports whether the path has exactly one segment and no directory
// component (e.g. "name", not "a/name").
func (p Path) IsLeaf() bool {
	parent, _ := p.SplitPath()
	return parent.IsEmpty()
}

// IsLegal reports whether the path would have passed the Legal check at
// construction time.
func (p Path) IsLegal() bool {
	if strings.ContainsRune(p.native, 0) {
		return false
	}
	if windows {
		return checkWindowsLegal(p.native) == nil
	}
	return true
}
