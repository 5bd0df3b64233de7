package fstree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TagSuffix is the extension of sidecar tag files.
const TagSuffix = ".tags"

// SidecarPath returns the sidecar tag file path for the file at p:
// "<dir>/.<name>.tags".
func SidecarPath(p string) string {
	dir, name := filepath.Split(p)
	return dir + "." + name + TagSuffix
}

// IsSidecar reports whether name looks like a sidecar tag file.
func IsSidecar(name string) bool {
	return len(name) > len(TagSuffix)+1 && strings.HasPrefix(name, ".") && strings.HasSuffix(name, TagSuffix)
}

// SidecarTarget returns the name of the file a sidecar belongs to, and
// whether name is a sidecar at all.
func SidecarTarget(name string) (string, bool) {
	if !IsSidecar(name) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(name, "."), TagSuffix), true
}

// LoadTags reads a sidecar tag file. A missing file yields no tags and no
// error.
func LoadTags(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("fstree: open tags %s: %w", path, err)
	}
	defer fh.Close()
	tags, err := ParseTags(fh)
	if err != nil {
		return nil, fmt.Errorf("fstree: read tags %s: %w", path, err)
	}
	return tags, nil
}

// ParseTags returns every whitespace-separated token of every line of r.
func ParseTags(r io.Reader) ([]string, error) {
	var tags []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tags = append(tags, strings.Fields(sc.Text())...)
	}
	return tags, sc.Err()
}
