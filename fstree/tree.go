// Package fstree holds the in-memory directory tree that galaxies are built
// from.
//
// Directories live in an arena owned by the [Tree]; a [Dir] or [File] refers
// to its parent through a [DirID] handle rather than a pointer, so ownership
// flows strictly from parent to child and parent links are lookup-only.
package fstree

import (
	"path"
	"strings"

	"go.uber.org/zap"
)

// DirID is a handle into a Tree's directory arena.
type DirID int32

// NoParent is the parent handle of the root directory and of detached
// directories.
const NoParent DirID = -1

// Separator is appended after every directory name when building paths.
const Separator = "/"

// Tree is a directory tree rooted at an absolute path.
type Tree struct {
	dirs     []*Dir
	root     *Dir
	numFiles int
	log      *zap.Logger
}

// NewTree creates an empty tree rooted at rootPath. A trailing separator is
// added to rootPath if missing. log may be nil.
func NewTree(rootPath string, log *zap.Logger) *Tree {
	if log == nil {
		log = zap.NewNop()
	}
	if !strings.HasSuffix(rootPath, Separator) {
		rootPath += Separator
	}
	t := &Tree{log: log}
	t.root = t.newDir(NoParent, rootPath)
	return t
}

func (t *Tree) newDir(parent DirID, name string) *Dir {
	d := &Dir{
		id:     DirID(len(t.dirs)),
		parent: parent,
		tree:   t,
		name:   name,
	}
	t.dirs = append(t.dirs, d)
	return d
}

// lookup resolves a handle. Returns nil for NoParent or an unknown id.
func (t *Tree) lookup(id DirID) *Dir {
	if id < 0 || int(id) >= len(t.dirs) {
		return nil
	}
	return t.dirs[id]
}

// Root returns the root directory.
func (t *Tree) Root() *Dir {
	return t.root
}

// RootPath returns the root directory's path (with trailing separator).
func (t *Tree) RootPath() string {
	return t.root.name
}

// NumFiles returns the number of files inserted through Insert.
func (t *Tree) NumFiles() int {
	return t.numFiles
}

// AllFiles returns every file in the tree.
func (t *Tree) AllFiles() []*File {
	return t.root.AllFiles()
}

// splitRel splits a root-relative directory path into its components.
func splitRel(rel string) []string {
	rel = path.Clean("/" + strings.ReplaceAll(rel, "\\", "/"))
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return nil
	}
	return strings.Split(rel, "/")
}

// EnsureDir returns the directory at the root-relative path rel, creating
// any missing directories in lexicographic position.
func (t *Tree) EnsureDir(rel string) *Dir {
	curr := t.root
	for _, name := range splitRel(rel) {
		curr = curr.ensureSortedDir(name)
	}
	return curr
}

// Insert places f into the directory at the root-relative path rel, creating
// intermediate directories as needed. Files are kept in name order. Returns
// false (and leaves the tree unchanged) if a file with the same name already
// exists there.
func (t *Tree) Insert(rel string, f *File) bool {
	if f == nil {
		panic("fstree: cannot insert nil file")
	}
	d := t.EnsureDir(rel)
	if !d.insertSortedFile(f) {
		t.log.Warn("file already present", zap.String("dir", d.Path()), zap.String("file", f.name))
		return false
	}
	t.numFiles++
	return true
}

// Dir returns the directory at the root-relative path rel, or nil if it does
// not exist. An empty rel (or ".") is the root. An absolute path under the
// root is accepted too.
func (t *Tree) Dir(rel string) *Dir {
	rel = strings.TrimPrefix(rel, t.root.name)
	curr := t.root
	for _, name := range splitRel(rel) {
		curr = curr.FindDir(name)
		if curr == nil {
			return nil
		}
	}
	return curr
}

// File returns the file at the root-relative (or absolute) path p, or nil.
func (t *Tree) File(p string) *File {
	p = strings.TrimPrefix(p, t.root.name)
	dir, name := path.Split(strings.ReplaceAll(p, "\\", "/"))
	d := t.Dir(dir)
	if d == nil {
		return nil
	}
	return d.FindFile(name)
}

// RebuildTags re-reads the sidecar tag file of the file at p. Returns nil and
// no error if p is not in the tree.
func (t *Tree) RebuildTags(p string) (*File, error) {
	f := t.File(p)
	if f == nil {
		return nil, nil
	}
	return f, f.RebuildTags()
}
