package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicaliseCollapsesAndStripsDotSegments(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"/a//b/./c/":   "/a/b/c",
		"a/./b":        "a/b",
		"/":            "/",
		"":             "",
		"a/b/.":        "a/b",
		"//a///b":      "/a/b",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustNew(in).String(), "input=%q", in)
	}
}

func TestCanonicalisationIsIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"/a//b/./c/", "a/b/../", "/x/y/z", ""}
	for _, in := range inputs {
		once := MustNew(in)
		twice := MustNew(once.String())
		assert.Equal(t, once, twice, "input=%q", in)
	}
}

func TestFormClassification(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Empty, MustNew("").FormOf())
	assert.Equal(t, Absolute, MustNew("/a/b").FormOf())
	assert.Equal(t, Relative, MustNew("a/b").FormOf())
}

func TestLegalRejectsEmbeddedNUL(t *testing.T) {
	t.Parallel()
	_, err := New("a\x00b", Legal)
	require.Error(t, err)
}

func TestIsLeafAndIsRoot(t *testing.T) {
	t.Parallel()
	assert.True(t, MustNew("name").IsLeaf())
	assert.False(t, MustNew("a/name").IsLeaf())
	assert.True(t, MustNew("/").IsRoot())
	assert.False(t, MustNew("/a").IsRoot())
}
