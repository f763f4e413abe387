package fspath

import (
	"strings"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// SplitPath splits the path into its parent directory and final segment
// (the "leaf"). An empty or root path has an empty leaf.
func (p Path) SplitPath() (parent Path, leaf string) {
	root, tail := p.SplitRoot()
	if tail == "" {
		return Path{native: root}, ""
	}
	idx := strings.LastIndex(tail, delim)
	if idx < 0 {
		return Path{native: root}, tail
	}
	return Path{native: root + tail[:idx]}, tail[idx+1:]
}

// SplitLeaf splits the final segment into stem and extension (the final
// "." suffix, excluded); a leading-dot-only name (".bashrc") has no
// extension, matching the "dotfile" convention.
func SplitLeaf(leaf string) (stem, ext string) {
	if leaf == "" {
		return "", ""
	}
	idx := strings.LastIndex(leaf, ".")
	if idx <= 0 {
		return leaf, ""
	}
	return leaf[:idx], leaf[idx:]
}

// SplitLeaf is the method form of the package-level SplitLeaf, operating on
// this path's own final segment.
func (p Path) SplitLeaf() (stem, ext string) {
	_, leaf := p.SplitPath()
	return SplitLeaf(leaf)
}

// SplitRoot splits off the root prefix (delimiter and/or drive letter) from
// the remaining relative tail.
func (p Path) SplitRoot() (root, tail string) {
	s := p.native
	if windows {
		if drv, rest, ok := splitDrive(s); ok {
			s = rest
			if strings.HasPrefix(s, delim) {
				return drv + delim, strings.TrimPrefix(s, delim)
			}
			return drv, s
		}
	}
	if strings.HasPrefix(s, delim) {
		return delim, strings.TrimPrefix(s, delim)
	}
	return "", s
}

// Breakdown returns every path segment in order, root prefix excluded.
func (p Path) Breakdown() []string {
	_, tail := p.SplitRoot()
	if tail == "" {
		return nil
	}
	return strings.Split(tail, delim)
}

// ChangeExt replaces the final extension, preserving the directory and
// stem. newExt may include or omit its leading dot.
func (p Path) ChangeExt(newExt string) Path {
	if newExt != "" && !strings.HasPrefix(newExt, ".") {
		newExt = "." + newExt
	}
	parent, leaf := p.SplitPath()
	stem, _ := SplitLeaf(leaf)
	newLeaf := stem + newExt
	return joinParentLeaf(parent, newLeaf)
}

// WithExt is the Go-idiomatic alias for ChangeExt.
func (p Path) WithExt(newExt string) Path { return p.ChangeExt(newExt) }

// Stem is the Go-idiomatic alias for the stem half of SplitLeaf.
func (p Path) Stem() string {
	stem, _ := p.SplitLeaf()
	return stem
}

// Ext returns the final extension, including its leading dot.
func (p Path) Ext() string {
	_, ext := p.SplitLeaf()
	return ext
}

func joinParentLeaf(parent Path, leaf string) Path {
	if parent.IsEmpty() {
		return Path{native: leaf}
	}
	if parent.native == delim {
		return Path{native: delim + leaf}
	}
	return Path{native: parent.native + delim + leaf}
}

// Join performs a semantic join: if b is absolute (or drive-absolute), b
// wins outright, matching the filesystem convention that an absolute path
// replaces whatever came before it.
func Join(a, b Path) Path {
	if b.IsAbsolute() || b.IsEmpty() {
		return b
	}
	if a.IsEmpty() {
		return b
	}
	if a.native == delim {
		return Path{native: delim + mustTail(b)}
	}
	return Path{native: a.native + delim + mustTail(b)}
}

func mustTail(p Path) string {
	_, tail := p.SplitRoot()
	return tail
}

// Join is the method form of the package-level Join.
func (p Path) Join(b Path) Path { return Join(p, b) }

// Common returns the longest common ancestor of a and b.
func Common(a, b Path) Path {
	as, bs := a.Breakdown(), b.Breakdown()
	ra, _ := a.SplitRoot()
	rb, _ := b.SplitRoot()
	if ra != rb {
		return Path{}
	}
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	i := 0
	for i < n && as[i] == bs[i] {
		i++
	}
	return Path{native: ra + strings.Join(as[:i], delim)}
}

// RelativeTo computes the shortest relative path from base to p. Both must
// share the same root (form); noBacktrack forbids ".." segments in the
// result, failing instead when they would be required.
func (p Path) RelativeTo(base Path, noBacktrack bool) (Path, error) {
	pr, _ := p.SplitRoot()
	br, _ := base.SplitRoot()
	if pr != br {
		return Path{}, waiterrors.New(waiterrors.InvalidArgument, "fspath: relative_to requires matching path forms")
	}
	ps, bs := p.Breakdown(), base.Breakdown()
	i := 0
	for i < len(ps) && i < len(bs) && ps[i] == bs[i] {
		i++
	}
	ups := len(bs) - i
	if ups > 0 && noBacktrack {
		return Path{}, waiterrors.New(waiterrors.InvalidArgument, "fspath: relative_to would require backtracking")
	}
	segs := make([]string, 0, ups+len(ps)-i)
	for j := 0; j < ups; j++ {
		segs = append(segs, "..")
	}
	segs = append(segs, ps[i:]...)
	if len(segs) == 0 {
		return Path{native: "."}, nil
	}
	return Path{native: strings.Join(segs, delim)}, nil
}
