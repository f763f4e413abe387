package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeToLiteralScenario(t *testing.T) {
	t.Parallel()
	p := MustNew("/a/b/c/d")

	got, err := p.RelativeTo(MustNew("/a/b/e"), false)
	require.NoError(t, err)
	assert.Equal(t, "../c/d", got.String())

	same, err := p.RelativeTo(p, false)
	require.NoError(t, err)
	assert.Equal(t, ".", same.String())
}

func TestRelativeToRejectsMismatchedForms(t *testing.T) {
	t.Parallel()
	_, err := MustNew("/a/b").RelativeTo(MustNew("rel/b"), false)
	assert.Error(t, err)
}

func TestRelativeToNoBacktrackErrorsWhenNeeded(t *testing.T) {
	t.Parallel()
	_, err := MustNew("/a/b").RelativeTo(MustNew("/a/b/c"), true)
	assert.Error(t, err)
}

func TestSplitPathAndLeaf(t *testing.T) {
	t.Parallel()
	parent, leaf := MustNew("/a/b/c.tar.gz").SplitPath()
	assert.Equal(t, "/a/b", parent.String())
	assert.Equal(t, "c.tar.gz", leaf)

	stem, ext := SplitLeaf(leaf)
	assert.Equal(t, "c.tar", stem)
	assert.Equal(t, ".gz", ext)
}

func TestChangeExtPreservesDirAndStem(t *testing.T) {
	t.Parallel()
	p := MustNew("/a/b/report.txt")
	assert.Equal(t, "/a/b/report.md", p.ChangeExt(".md").String())
	assert.Equal(t, "/a/b/report.md", p.WithExt("md").String())
	assert.Equal(t, "report", p.Stem())
}

func TestBreakdown(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "c"}, MustNew("/a/b/c").Breakdown())
}

func TestJoinSemantics(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/a/b/c", Join(MustNew("/a/b"), MustNew("c")).String())
	assert.Equal(t, "/d/e", Join(MustNew("/a/b"), MustNew("/d/e")).String())
}

func TestCommonAncestor(t *testing.T) {
	t.Parallel()
	got := Common(MustNew("/a/b/c"), MustNew("/a/b/d/e"))
	assert.Equal(t, "/a/b", got.String())
}
