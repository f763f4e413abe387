package fspath

import (
	"os"
	"sort"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// iterState is the iterator's shared implementation block: a pointer field,
// so copying an Iterator value is cheap and every copy observes the same
// cursor and error state.
type iterState struct {
	entries []Path
	pos     int
	err     error
}

// Iterator walks a directory's children, or an entire subtree for
// DeepSearch. It is exhausted when Next returns false; check Err
// afterwards for anything other than clean exhaustion.
type Iterator struct {
	impl *iterState
}

// Next advances to the next entry, returning false once exhausted.
func (it Iterator) Next() bool {
	if it.impl == nil || it.impl.pos >= len(it.impl.entries) {
		return false
	}
	it.impl.pos++
	return true
}

// Path returns the current entry. Valid only after Next returned true.
func (it Iterator) Path() Path {
	if it.impl == nil || it.impl.pos == 0 || it.impl.pos > len(it.impl.entries) {
		return Path{}
	}
	return it.impl.entries[it.impl.pos-1]
}

// Err reports any error encountered while building the entry list.
func (it Iterator) Err() error {
	if it.impl == nil {
		return nil
	}
	return it.impl.err
}

// Directory produces the path's immediate children.
func (p Path) Directory(flags Flags) Iterator {
	entries, err := os.ReadDir(p.native)
	if err != nil {
		return Iterator{impl: &iterState{err: waiterrors.Wrap(waiterrors.Io, err, "fspath: readdir failed")}}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	out := make([]Path, 0, len(entries))
	for _, e := range entries {
		child := joinParentLeaf(p, e.Name())
		if skipEntry(child, flags) {
			continue
		}
		out = append(out, child)
	}
	return Iterator{impl: &iterState{entries: out}}
}

// DeepSearch enumerates the entire subtree rooted at the path. With
// BottomUp, a directory's contents are all visited before the directory
// itself, so callers can delete safely while iterating.
func (p Path) DeepSearch(flags Flags) Iterator {
	state := &iterState{}
	walkDeep(p, flags, state)
	return Iterator{impl: state}
}

func walkDeep(p Path, flags Flags, state *iterState) {
	if state.err != nil {
		return
	}
	entries, err := os.ReadDir(p.native)
	if err != nil {
		state.err = waiterrors.Wrap(waiterrors.Io, err, "fspath: readdir failed")
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	bottomUp := flags.Has(BottomUp)
	for _, e := range entries {
		child := joinParentLeaf(p, e.Name())
		if skipEntry(child, flags) {
			continue
		}
		if e.IsDir() {
			if bottomUp {
				walkDeep(child, flags, state)
				state.entries = append(state.entries, child)
			} else {
				state.entries = append(state.entries, child)
				walkDeep(child, flags, state)
			}
			continue
		}
		state.entries = append(state.entries, child)
	}
}

func skipEntry(p Path, flags Flags) bool {
	if flags.Has(NoHidden) && p.IsHidden() {
		return true
	}
	if flags.Has(UnicodeOnly) {
		_, leaf := p.SplitPath()
		if !isValidUTF8(leaf) {
			return true
		}
	}
	return false
}
