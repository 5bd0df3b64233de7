package fstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(files []*File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name()
	}
	return out
}

func dirNames(dirs []*Dir) []string {
	out := make([]string, len(dirs))
	for i, d := range dirs {
		out[i] = d.Name()
	}
	return out
}

func TestNewTree_TrailingSeparator(t *testing.T) {
	assert.Equal(t, "/data/", NewTree("/data", nil).RootPath())
	assert.Equal(t, "/data/", NewTree("/data/", nil).RootPath())
}

func TestInsert_KeepsLexicographicOrder(t *testing.T) {
	tree := NewTree("/root", nil)
	require.True(t, tree.Insert("b", NewFile("z", 1)))
	require.True(t, tree.Insert("a", NewFile("y", 1)))
	require.True(t, tree.Insert("", NewFile("m", 1)))
	require.True(t, tree.Insert("", NewFile("c", 1)))

	root := tree.Root()
	assert.Equal(t, []string{"a", "b"}, dirNames(root.Dirs()))
	assert.Equal(t, []string{"c", "m"}, names(root.Files()))
	assert.Equal(t, []string{"c", "m", "y", "z"}, names(tree.AllFiles()))
	assert.Equal(t, 4, tree.NumFiles())
}

func TestInsert_DuplicateRejected(t *testing.T) {
	tree := NewTree("/root", nil)
	require.True(t, tree.Insert("a", NewFile("x", 1)))
	assert.False(t, tree.Insert("a", NewFile("x", 2)))
	assert.Equal(t, 1, tree.NumFiles())
	assert.Equal(t, int64(1), tree.File("a/x").Size)
}

func TestInsert_NilPanics(t *testing.T) {
	tree := NewTree("/root", nil)
	assert.Panics(t, func() { tree.Insert("", nil) })
}

func TestPaths(t *testing.T) {
	tree := NewTree("/root", nil)
	f := NewFile("leaf.txt", 10)
	require.True(t, tree.Insert("a/b/c", f))

	d := tree.Dir("a/b/c")
	require.NotNil(t, d)
	assert.Equal(t, "/root/a/b/c/", d.Path())
	assert.Equal(t, "b", d.Parent().Name())
	assert.Equal(t, "/root/a/b/c/leaf.txt", f.Path())
	assert.Same(t, d, f.Dir())

	assert.Same(t, f, tree.File("a/b/c/leaf.txt"))
	assert.Same(t, f, tree.File("/root/a/b/c/leaf.txt"))
	assert.Same(t, tree.Root(), tree.Dir(""))
	assert.Same(t, tree.Root(), tree.Dir("."))
	assert.Nil(t, tree.Root().Parent())
}

func TestLookup_NotFound(t *testing.T) {
	tree := NewTree("/root", nil)
	require.True(t, tree.Insert("a", NewFile("x", 1)))

	assert.Nil(t, tree.Dir("missing"))
	assert.Nil(t, tree.Dir("a/deeper"))
	assert.Nil(t, tree.File("a/nope"))
	assert.Nil(t, tree.File("missing/x"))
	assert.Nil(t, tree.Root().FindFile("x"))
	assert.Nil(t, tree.Root().FindDir("x"))
}

func TestAllFiles_OwnFilesThenSubdirs(t *testing.T) {
	tree := NewTree("/root", nil)
	require.True(t, tree.Insert("sub", NewFile("a", 1)))
	require.True(t, tree.Insert("sub/deep", NewFile("b", 1)))
	require.True(t, tree.Insert("", NewFile("z", 1)))

	assert.Equal(t, []string{"z", "a", "b"}, names(tree.Root().AllFiles()))
	assert.Equal(t, 3, tree.Root().NumAllFiles())
	assert.Equal(t, 2, tree.Dir("sub").NumAllFiles())
}

func TestAddFile_DiscoveryOrder(t *testing.T) {
	tree := NewTree("/root", nil)
	d := tree.Root()
	require.True(t, d.AddFile(NewFile("z", 1)))
	require.True(t, d.AddFile(NewFile("a", 1)))
	assert.False(t, d.AddFile(NewFile("a", 1)))

	assert.Equal(t, []string{"z", "a"}, names(d.Files()))
	assert.Equal(t, 2, tree.NumFiles())
}

func TestAddFile_MovesBetweenDirs(t *testing.T) {
	tree := NewTree("/root", nil)
	f := NewFile("x", 1)
	require.True(t, tree.Insert("a", f))
	b := tree.Root().AddDir("b")
	require.NotNil(t, b)

	require.True(t, b.AddFile(f))
	assert.Nil(t, tree.Dir("a").FindFile("x"))
	assert.Same(t, b, f.Dir())
	assert.Equal(t, 1, tree.NumFiles())
}

func TestAddDir_Duplicate(t *testing.T) {
	tree := NewTree("/root", nil)
	require.NotNil(t, tree.Root().AddDir("x"))
	assert.Nil(t, tree.Root().AddDir("x"))
}

func TestRemoveFile(t *testing.T) {
	tree := NewTree("/root", nil)
	require.True(t, tree.Insert("", NewFile("x", 1)))
	require.True(t, tree.Insert("", NewFile("y", 1)))

	f := tree.Root().RemoveFile("x")
	require.NotNil(t, f)
	assert.Nil(t, f.Dir())
	assert.Equal(t, "x", f.Path())
	assert.Equal(t, []string{"y"}, names(tree.Root().Files()))
	assert.Equal(t, 1, tree.NumFiles())
	assert.Nil(t, tree.Root().RemoveFile("x"))
}

func TestRemoveDir(t *testing.T) {
	tree := NewTree("/root", nil)
	require.True(t, tree.Insert("a", NewFile("x", 1)))
	require.True(t, tree.Insert("a/b", NewFile("y", 1)))
	require.True(t, tree.Insert("c", NewFile("z", 1)))

	d := tree.Root().RemoveDir("a")
	require.NotNil(t, d)
	assert.Nil(t, d.Parent())
	assert.Nil(t, tree.Dir("a"))
	assert.Equal(t, 1, tree.NumFiles())
	assert.Nil(t, tree.Root().RemoveDir("a"))
}

func TestRename(t *testing.T) {
	tree := NewTree("/root", nil)
	tree.EnsureDir("a")
	tree.EnsureDir("b")

	assert.False(t, tree.Dir("a").Rename("b"))
	assert.False(t, tree.Root().Rename("other"))
	require.True(t, tree.Dir("a").Rename("c"))
	assert.NotNil(t, tree.Dir("c"))
	assert.Equal(t, "/root/c/", tree.Dir("c").Path())
}
