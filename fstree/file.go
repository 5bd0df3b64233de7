package fstree

import (
	"io/fs"
	"slices"
	"time"
)

// File is a regular file in a Tree.
type File struct {
	name string
	dir  DirID
	tree *Tree
	tags []string

	// Size is the file size in bytes.
	Size int64
	// ModTime is the last modification time.
	ModTime time.Time
	// Info is the raw stat result, if the file was scanned from disk.
	Info fs.FileInfo
	// MimeType is the detected MIME type, e.g. "image/png".
	MimeType string
	// Category is the coarse MIME category derived from MimeType.
	Category Category
	// Handler is the program used to open the file.
	Handler string
}

// NewFile creates a detached file with the given name and size. MIME
// fields default to an unknown category and the fallback handler.
func NewFile(name string, size int64) *File {
	return &File{
		name:     name,
		dir:      NoParent,
		Size:     size,
		Category: CategoryUnknown,
		Handler:  DefaultHandler,
	}
}

// NewFileFromInfo creates a detached file from a stat result.
func NewFileFromInfo(info fs.FileInfo) *File {
	f := NewFile(info.Name(), info.Size())
	f.ModTime = info.ModTime()
	f.Info = info
	return f
}

// Name returns the file's base name.
func (f *File) Name() string { return f.name }

// Dir returns the directory holding the file, or nil if detached.
func (f *File) Dir() *Dir {
	if f.tree == nil {
		return nil
	}
	return f.tree.lookup(f.dir)
}

// Path returns the full path of the file. A detached file's path is its
// name.
func (f *File) Path() string {
	d := f.Dir()
	if d == nil {
		return f.name
	}
	return d.Path() + f.name
}

// Tags returns the file's tags. The slice must not be modified.
func (f *File) Tags() []string { return f.tags }

// SetTags replaces the file's tags.
func (f *File) SetTags(tags []string) {
	f.tags = slices.Clone(tags)
}

// HasTag reports whether the file carries tag.
func (f *File) HasTag(tag string) bool {
	return slices.Contains(f.tags, tag)
}

// HasAnyTag reports whether the file carries at least one of tags.
func (f *File) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if f.HasTag(t) {
			return true
		}
	}
	return false
}

// RebuildTags re-reads the file's sidecar tag file. A missing sidecar
// clears the tags without error. On a read error the tags are left as they
// were.
func (f *File) RebuildTags() error {
	tags, err := LoadTags(SidecarPath(f.Path()))
	if err != nil {
		return err
	}
	f.tags = tags
	return nil
}

func (f *File) attach(d *Dir) {
	f.tree = d.tree
	f.dir = d.id
}

// detach removes f from its current directory, if any.
func (f *File) detach() {
	if d := f.Dir(); d != nil {
		d.RemoveFile(f.name)
	}
	f.dir = NoParent
}
