package fspath

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsAndKindClassification(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := MustNew(dir).Join(MustNew("a.txt"))
	require.NoError(t, file.Save([]byte("hi"), 0))

	assert.True(t, file.Exists(0))
	assert.True(t, file.IsFile(0))
	assert.False(t, file.IsDirectory(0))
	assert.Equal(t, File, file.FileKind(0))

	missing := MustNew(dir).Join(MustNew("nope.txt"))
	assert.False(t, missing.Exists(0))
	assert.Equal(t, NoEntry, missing.FileKind(0))
}

func TestMakeDirectoryRecurseIsIdempotent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	nested := MustNew(dir).Join(MustNew("x/y/z"))
	require.NoError(t, nested.MakeDirectory(Recurse))
	assert.True(t, nested.IsDirectory(0))

	err := nested.MakeDirectory(Recurse)
	assert.NoError(t, err, "mkdir -p on an existing directory is idempotent")
}

func TestMakeDirectoryFailsOnExistingWithoutOverwrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := MustNew(dir).Join(MustNew("d"))
	require.NoError(t, target.MakeDirectory(0))
	err := target.MakeDirectory(0)
	assert.True(t, err != nil)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := MustNew(dir).Join(MustNew("out.bin"))
	require.NoError(t, file.Save([]byte("payload"), 0))

	got, err := file.Load(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestSaveAppendVsOverwrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := MustNew(dir).Join(MustNew("log.txt"))
	require.NoError(t, file.Save([]byte("a"), 0))
	require.NoError(t, file.Save([]byte("b"), AppendData))

	got, err := file.Load(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(got))

	require.NoError(t, file.Save([]byte("c"), 0))
	got, err = file.Load(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "c", string(got))
}

func TestLoadMayFailReturnsEmptyInsteadOfError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	missing := MustNew(dir).Join(MustNew("absent.txt"))
	got, err := missing.Load(0, MayFail)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	missing := MustNew(dir).Join(MustNew("absent.txt"))
	assert.NoError(t, missing.Remove(0))
}

func TestCopyToRequiresRecurseForDirectories(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := MustNew(dir).Join(MustNew("src"))
	require.NoError(t, src.MakeDirectory(0))
	require.NoError(t, src.Join(MustNew("f.txt")).Save([]byte("v"), 0))

	dst := MustNew(dir).Join(MustNew("dst"))
	err := src.CopyTo(dst, 0)
	assert.Error(t, err)

	require.NoError(t, src.CopyTo(dst, Recurse))
	got, err := dst.Join(MustNew("f.txt")).Load(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestDirectoryIteratorListsChildren(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	root := MustNew(dir)
	require.NoError(t, root.Join(MustNew("b.txt")).Save([]byte("1"), 0))
	require.NoError(t, root.Join(MustNew("a.txt")).Save([]byte("2"), 0))

	it := root.Directory(0)
	var names []string
	for it.Next() {
		_, leaf := it.Path().SplitPath()
		names = append(names, leaf)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestDeepSearchBottomUpVisitsChildrenFirst(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	root := MustNew(dir)
	sub := root.Join(MustNew("sub"))
	require.NoError(t, sub.MakeDirectory(Recurse))
	require.NoError(t, sub.Join(MustNew("leaf.txt")).Save([]byte("v"), 0))

	it := root.DeepSearch(BottomUp)
	var order []string
	for it.Next() {
		_, leaf := it.Path().SplitPath()
		order = append(order, leaf)
	}
	require.NoError(t, it.Err())
	require.Len(t, order, 2)
	assert.Equal(t, "leaf.txt", order[0])
	assert.Equal(t, "sub", order[1])
}

func TestGlobFindsMatchingLeafNames(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	root := MustNew(dir)
	require.NoError(t, root.Join(MustNew("a.log")).Save([]byte("1"), 0))
	require.NoError(t, root.Join(MustNew("b.txt")).Save([]byte("2"), 0))

	matches, err := root.Glob("*.log", 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	_, leaf := matches[0].SplitPath()
	assert.Equal(t, "a.log", leaf)
}

func TestSizeRecursesOverDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	root := MustNew(dir)
	require.NoError(t, root.Join(MustNew("f1")).Save([]byte("1234"), 0))
	require.NoError(t, root.Join(MustNew("f2")).Save([]byte("12"), 0))

	total, err := root.Size(Recurse)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
}

func TestIDDetectsSameFileAcrossSpellings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := MustNew(dir).Join(MustNew("same.txt"))
	require.NoError(t, file.Save([]byte("x"), 0))

	aliased := MustNew(dir + string(os.PathSeparator) + "." + string(os.PathSeparator) + "same.txt")

	idA, err := file.ID(0)
	require.NoError(t, err)
	idB, err := aliased.ID(0)
	require.NoError(t, err)
	assert.Equal(t, idA, idB)
	assert.Equal(t, idA.Fingerprint(), idB.Fingerprint())
}
