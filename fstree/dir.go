package fstree

import (
	"sort"

	"go.uber.org/zap"
)

// Dir is a directory in a Tree. It owns its child files and child
// directories; its parent is referenced by handle only.
type Dir struct {
	id     DirID
	parent DirID
	tree   *Tree
	name   string
	files  []*File
	dirs   []*Dir
}

// ID returns the directory's handle.
func (d *Dir) ID() DirID { return d.id }

// Name returns the directory's own name. The root's name is its full path.
func (d *Dir) Name() string { return d.name }

// Tree returns the tree the directory belongs to.
func (d *Dir) Tree() *Tree { return d.tree }

// Parent returns the parent directory, or nil for the root or a detached
// directory.
func (d *Dir) Parent() *Dir {
	return d.tree.lookup(d.parent)
}

// Path returns the directory's full path, ending with a separator.
func (d *Dir) Path() string {
	p := d.Parent()
	if p == nil {
		return d.name
	}
	return p.Path() + d.name + Separator
}

// Files returns the directory's own files in order. The slice must not be
// modified.
func (d *Dir) Files() []*File { return d.files }

// Dirs returns the directory's immediate subdirectories in order. The slice
// must not be modified.
func (d *Dir) Dirs() []*Dir { return d.dirs }

// AllFiles returns the directory's own files followed by each
// subdirectory's AllFiles, in order. The result is freshly built on every
// call.
func (d *Dir) AllFiles() []*File {
	out := make([]*File, 0, d.NumAllFiles())
	return d.appendAllFiles(out)
}

func (d *Dir) appendAllFiles(out []*File) []*File {
	out = append(out, d.files...)
	for _, sub := range d.dirs {
		out = sub.appendAllFiles(out)
	}
	return out
}

// NumAllFiles returns the number of files in the directory's subtree.
func (d *Dir) NumAllFiles() int {
	n := len(d.files)
	for _, sub := range d.dirs {
		n += sub.NumAllFiles()
	}
	return n
}

// FindFile returns the child file with the given name, or nil.
func (d *Dir) FindFile(name string) *File {
	for _, f := range d.files {
		if f.name == name {
			return f
		}
	}
	return nil
}

// FindDir returns the child directory with the given name, or nil.
func (d *Dir) FindDir(name string) *Dir {
	for _, sub := range d.dirs {
		if sub.name == name {
			return sub
		}
	}
	return nil
}

// AddFile appends f to the directory's files in discovery order. Returns
// false and logs a warning if a file with the same name is already present.
func (d *Dir) AddFile(f *File) bool {
	if f == nil {
		panic("fstree: cannot add nil file")
	}
	if d.FindFile(f.name) != nil {
		d.tree.log.Warn("file already present", zap.String("dir", d.Path()), zap.String("file", f.name))
		return false
	}
	f.detach()
	f.attach(d)
	d.files = append(d.files, f)
	d.tree.numFiles++
	return true
}

// AddDir creates and appends a new, empty subdirectory. Returns nil and
// logs a warning if a subdirectory with the same name already exists.
func (d *Dir) AddDir(name string) *Dir {
	if d.FindDir(name) != nil {
		d.tree.log.Warn("directory already present", zap.String("dir", d.Path()), zap.String("name", name))
		return nil
	}
	sub := d.tree.newDir(d.id, name)
	d.dirs = append(d.dirs, sub)
	return sub
}

// RemoveFile detaches the named file from the directory and returns it, or
// nil if not found.
func (d *Dir) RemoveFile(name string) *File {
	for i, f := range d.files {
		if f.name == name {
			d.files = append(d.files[:i], d.files[i+1:]...)
			f.dir = NoParent
			d.tree.numFiles--
			return f
		}
	}
	return nil
}

// RemoveDir detaches the named subdirectory (and its subtree) and returns
// it, or nil if not found.
func (d *Dir) RemoveDir(name string) *Dir {
	for i, sub := range d.dirs {
		if sub.name == name {
			d.dirs = append(d.dirs[:i], d.dirs[i+1:]...)
			sub.parent = NoParent
			d.tree.numFiles -= sub.NumAllFiles()
			return sub
		}
	}
	return nil
}

// Rename changes the directory's name. Returns false if a sibling already
// uses the name or the directory is the root.
func (d *Dir) Rename(name string) bool {
	p := d.Parent()
	if p == nil {
		return false
	}
	if other := p.FindDir(name); other != nil && other != d {
		d.tree.log.Warn("directory already present", zap.String("dir", p.Path()), zap.String("name", name))
		return false
	}
	d.name = name
	return true
}

// ensureSortedDir returns the child directory called name, inserting it in
// lexicographic position if it does not exist yet.
func (d *Dir) ensureSortedDir(name string) *Dir {
	i := sort.Search(len(d.dirs), func(i int) bool { return d.dirs[i].name >= name })
	if i < len(d.dirs) && d.dirs[i].name == name {
		return d.dirs[i]
	}
	sub := d.tree.newDir(d.id, name)
	d.dirs = append(d.dirs, nil)
	copy(d.dirs[i+1:], d.dirs[i:])
	d.dirs[i] = sub
	return sub
}

// insertSortedFile inserts f in lexicographic position. Returns false if
// the name is taken.
func (d *Dir) insertSortedFile(f *File) bool {
	i := sort.Search(len(d.files), func(i int) bool { return d.files[i].name >= f.name })
	if i < len(d.files) && d.files[i].name == f.name {
		return false
	}
	f.detach()
	f.attach(d)
	d.files = append(d.files, nil)
	copy(d.files[i+1:], d.files[i:])
	d.files[i] = f
	return true
}
