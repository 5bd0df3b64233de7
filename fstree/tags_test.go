package fstree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "/a/b/.file.txt.tags", SidecarPath("/a/b/file.txt"))
	assert.Equal(t, ".x.tags", SidecarPath("x"))
}

func TestSidecarTarget(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "sidecar", in: ".file.txt.tags", want: "file.txt", wantOK: true},
		{name: "short sidecar", in: ".a.tags", want: "a", wantOK: true},
		{name: "bare suffix", in: ".tags", wantOK: false},
		{name: "not hidden", in: "file.tags", wantOK: false},
		{name: "plain file", in: "file.txt", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SidecarTarget(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, IsSidecar(tt.in))
		})
	}
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags(strings.NewReader("foo bar\n  baz\t\n\nqux"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz", "qux"}, tags)
}

func TestLoadTags_MissingFile(t *testing.T) {
	tags, err := LoadTags(filepath.Join(t.TempDir(), ".none.tags"))
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestFile_RebuildTags(t *testing.T) {
	dir := t.TempDir()
	tree := NewTree(filepath.ToSlash(dir), nil)
	f := NewFile("song.ogg", 100)
	require.True(t, tree.Insert("", f))

	sidecar := filepath.Join(dir, ".song.ogg.tags")
	require.NoError(t, os.WriteFile(sidecar, []byte("music loud\nfavorite\n"), 0o644))

	require.NoError(t, f.RebuildTags())
	assert.Equal(t, []string{"music", "loud", "favorite"}, f.Tags())
	assert.True(t, f.HasTag("loud"))
	assert.True(t, f.HasAnyTag([]string{"nope", "favorite"}))
	assert.False(t, f.HasAnyTag([]string{"nope"}))

	// Rebuilding again yields the same tags.
	require.NoError(t, f.RebuildTags())
	assert.Equal(t, []string{"music", "loud", "favorite"}, f.Tags())

	require.NoError(t, os.Remove(sidecar))
	got, err := tree.RebuildTags("song.ogg")
	require.NoError(t, err)
	assert.Same(t, f, got)
	assert.Empty(t, f.Tags())
}

func TestTree_RebuildTagsUnknownPath(t *testing.T) {
	tree := NewTree("/root", nil)
	f, err := tree.RebuildTags("nothing/here")
	assert.NoError(t, err)
	assert.Nil(t, f)
}

func TestSetTags_Copies(t *testing.T) {
	f := NewFile("x", 0)
	in := []string{"a", "b"}
	f.SetTags(in)
	in[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, f.Tags())
}
