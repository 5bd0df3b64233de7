package fstree

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root; keys are slash paths, a trailing
// slash creates an empty directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":           "hello",
		"sub/b.png":       "\x89PNG\r\n\x1a\n",
		"sub/.b.png.tags": "x y\n",
		".hidden":         "secret",
		".cache/c.txt":    "cached",
		"empty/":          "",
	})

	h := NewHandlerTable()
	h.Set("text/plain", "gedit")

	tree, err := Scan(context.Background(), root, ScanOptions{Handlers: h, SkipHidden: true})
	require.NoError(t, err)

	assert.Equal(t, 2, tree.NumFiles())
	assert.Equal(t, []string{"empty", "sub"}, dirNames(tree.Root().Dirs()))

	a := tree.File("a.txt")
	require.NotNil(t, a)
	assert.Equal(t, CategoryText, a.Category)
	assert.Equal(t, "gedit", a.Handler)
	assert.Equal(t, int64(5), a.Size)
	assert.NotNil(t, a.Info)

	b := tree.File("sub/b.png")
	require.NotNil(t, b)
	assert.Equal(t, CategoryImage, b.Category)
	assert.Equal(t, DefaultHandler, b.Handler)
	assert.Equal(t, []string{"x", "y"}, b.Tags())

	assert.Nil(t, tree.File(".hidden"))
	assert.Nil(t, tree.File("sub/.b.png.tags"))
	assert.Nil(t, tree.Dir(".cache"))
}

func TestScan_IncludesHidden(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":       "hello",
		".hidden":     "secret",
		".a.txt.tags": "t",
	})

	tree, err := Scan(context.Background(), root, ScanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, tree.NumFiles())
	assert.NotNil(t, tree.File(".hidden"))
	assert.Nil(t, tree.File(".a.txt.tags"))
	assert.Equal(t, []string{"t"}, tree.File("a.txt").Tags())
}

func TestScan_BadRoot(t *testing.T) {
	root := t.TempDir()
	_, err := Scan(context.Background(), filepath.Join(root, "missing"), ScanOptions{})
	assert.Error(t, err)

	writeTree(t, root, map[string]string{"file": "x"})
	_, err = Scan(context.Background(), filepath.Join(root, "file"), ScanOptions{})
	assert.ErrorContains(t, err, "not a directory")
}

func TestScan_Canceled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "hello"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, root, ScanOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
