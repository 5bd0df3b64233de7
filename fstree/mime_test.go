package fstree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		mime string
		want Category
	}{
		{"binary/octet", CategoryBinary},
		{"application/pdf", CategoryApplication},
		{"audio/ogg", CategoryAudio},
		{"image/png", CategoryImage},
		{"text/plain; charset=utf-8", CategoryText},
		{"video/mp4", CategoryVideo},
		{"chemical/x-pdb", CategoryUnknown},
		{"", CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(tt.mime))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "image", CategoryImage.String())
	assert.Equal(t, "unknown", Category(200).String())
}

func TestParseHandlerTable(t *testing.T) {
	src := "[Default Applications]\n" +
		"image/png=eog.desktop\n" +
		"text/plain=gedit.desktop;kate.desktop\n" +
		"# comment\n" +
		"bad line\n" +
		"=empty.desktop\n"
	h, err := ParseHandlerTable(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "eog", h.Lookup("image/png"))
	assert.Equal(t, "gedit", h.Lookup("text/plain"))
	assert.Equal(t, DefaultHandler, h.Lookup("video/mp4"))
}

func TestHandlerTable_NilLookup(t *testing.T) {
	var h *HandlerTable
	assert.Equal(t, DefaultHandler, h.Lookup("image/png"))
}

func TestLoadHandlerTable_Missing(t *testing.T) {
	h, err := LoadHandlerTable(filepath.Join(t.TempDir(), "defaults.list"))
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestDetectMime(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	got, err := DetectMime(write("notes.txt", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", got)

	got, err = DetectMime(write("README", "plain words\n"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", got)

	got, err = DetectMime(write("report", "%PDF-1.4\n"))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", got)

	_, err = DetectMime(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
