package fspath

import "path/filepath"

// Glob searches the subtree rooted at the path for entries whose leaf name
// matches pattern (filepath.Match syntax), built directly on DeepSearch.
func (p Path) Glob(pattern string, flags Flags) ([]Path, error) {
	it := p.DeepSearch(flags)
	var matches []Path
	for it.Next() {
		child := it.Path()
		_, leaf := child.SplitPath()
		ok, err := filepath.Match(pattern, leaf)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, child)
		}
	}
	return matches, it.Err()
}
