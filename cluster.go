package starnavi

import (
	"slices"
	"strings"

	"github.com/phanxgames/starnavi/fstree"
)

// LooseFilesSector names the hierarchy sector holding a directory's own
// files.
const LooseFilesSector = "./"

// filesSuffix is appended to a galaxy's name for its single hierarchy
// sector when it has no backing directory.
const filesSuffix = " [files]"

// group is a cluster before arcs are assigned.
type group struct {
	name  string
	dir   *fstree.Dir
	files []*fstree.File
	count int
}

func (gr group) sector() *Sector {
	if gr.dir != nil {
		return newDirSector(gr.dir, gr.name)
	}
	return newFileSector(gr.files, gr.name)
}

// clusterHierarchy groups a directory's own files, then each immediate
// subdirectory. Without a directory, every file lands in one group named
// after the galaxy.
func clusterHierarchy(dir *fstree.Dir, files []*fstree.File, name string) []group {
	if dir == nil {
		return []group{{name: name + filesSuffix, files: files, count: len(files)}}
	}
	own := dir.Files()
	groups := make([]group, 0, len(dir.Dirs())+1)
	groups = append(groups, group{name: LooseFilesSector, files: own, count: len(own)})
	for _, sub := range dir.Dirs() {
		groups = append(groups, group{name: sub.Name(), dir: sub, count: sub.NumAllFiles()})
	}
	return groups
}

// divergenceIndex returns the smallest index at which two consecutive
// names differ, and false if no such index exists (every name equals or
// prefixes the next). names must be sorted.
func divergenceIndex(names []string) (int, bool) {
	best, found := 0, false
	for i := 1; i < len(names); i++ {
		a, b := names[i-1], names[i]
		for l := 0; l < min(len(a), len(b)); l++ {
			if a[l] != b[l] {
				if !found || l < best {
					best, found = l, true
				}
				break
			}
		}
	}
	return best, found
}

// nameKey is the grouping key of name for divergence index l.
func nameKey(name string, l int) string {
	if len(name) > l+1 {
		return name[:l+1]
	}
	return name
}

// clusterByName sorts files by name and splits the run wherever the prefix
// up to and including the first divergent character changes.
func clusterByName(files []*fstree.File) []group {
	if len(files) == 0 {
		return nil
	}
	sorted := slices.Clone(files)
	slices.SortStableFunc(sorted, func(a, b *fstree.File) int {
		return strings.Compare(a.Name(), b.Name())
	})
	names := make([]string, len(sorted))
	for i, f := range sorted {
		names[i] = f.Name()
	}

	l, ok := divergenceIndex(names)
	if !ok {
		return []group{{name: names[0], files: sorted, count: len(sorted)}}
	}

	var groups []group
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && nameKey(names[i], l) == nameKey(names[start], l) {
			continue
		}
		run := sorted[start:i:i]
		groups = append(groups, group{name: nameKey(names[start], l), files: run, count: len(run)})
		start = i
	}
	return groups
}

// clusterByTags creates one group per vocabulary tag holding every file
// that carries it. A file with several tags appears in several groups.
func clusterByTags(files []*fstree.File, vocab []string) []group {
	groups := make([]group, 0, len(vocab))
	for _, tag := range vocab {
		var tagged []*fstree.File
		for _, f := range files {
			if f.HasTag(tag) {
				tagged = append(tagged, f)
			}
		}
		groups = append(groups, group{name: tag, files: tagged, count: len(tagged)})
	}
	return groups
}

// groupTotal sums group sizes.
func groupTotal(groups []group) int {
	n := 0
	for _, gr := range groups {
		n += gr.count
	}
	return n
}

// assignArcs turns groups into contiguous sectors whose widths are
// proportional to the group sizes and sum to 360. A zero total yields one
// empty full-circle sector named emptyName.
func assignArcs(groups []group, emptyName string) []*Sector {
	total := groupTotal(groups)
	if total == 0 {
		return []*Sector{{name: emptyName, arcWidth: 360}}
	}
	sectors := make([]*Sector, len(groups))
	begin := 0.0
	for i, gr := range groups {
		s := gr.sector()
		s.arcBegin = begin
		s.arcWidth = 360 * float64(gr.count) / float64(total)
		begin += s.arcWidth
		sectors[i] = s
	}
	return sectors
}

// dedupTags collects every tag of files in first-seen order.
func dedupTags(files []*fstree.File) []string {
	var vocab []string
	seen := make(map[string]struct{})
	for _, f := range files {
		for _, t := range f.Tags() {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			vocab = append(vocab, t)
		}
	}
	return vocab
}
