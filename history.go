package starnavi

import (
	"strings"

	"github.com/phanxgames/starnavi/fstree"
	"go.uber.org/zap"
)

// Activation reports what Activate did.
type Activation uint8

const (
	ActivateNone     Activation = iota // nothing selected
	ActivateStar                       // the selected star's file was launched
	ActivateNavigate                   // a new galaxy was pushed
)

func (a Activation) String() string {
	switch a {
	case ActivateStar:
		return "star"
	case ActivateNavigate:
		return "navigate"
	default:
		return "none"
	}
}

// History is the navigation history: an ordered list of galaxies and a
// cursor into it. The cursor always points at a valid entry. Pushing from a
// cursor before the tail discards every entry after the cursor.
type History struct {
	galaxies      []*Galaxy
	cursor        int
	starSelection bool
	opts          Options
}

// NewHistory creates a history whose only entry is root. opts is used for
// every galaxy the history builds.
func NewHistory(root *Galaxy, opts Options) *History {
	if root == nil {
		panic("starnavi: history needs a root galaxy")
	}
	return &History{
		galaxies: []*Galaxy{root},
		opts:     opts.withDefaults(),
	}
}

// Current returns the galaxy under the cursor.
func (h *History) Current() *Galaxy { return h.galaxies[h.cursor] }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.galaxies) }

// Cursor returns the index of the current entry.
func (h *History) Cursor() int { return h.cursor }

// Galaxies returns a copy of the entries in order.
func (h *History) Galaxies() []*Galaxy {
	out := make([]*Galaxy, len(h.galaxies))
	copy(out, h.galaxies)
	return out
}

// IsColliding updates the current galaxy's selection from the screen point
// (x, y). See Galaxy.IsColliding.
func (h *History) IsColliding(x, y float64) bool {
	return h.Current().IsColliding(x, y)
}

// StarSelectionMode reports whether activation launches stars instead of
// drilling into sectors.
func (h *History) StarSelectionMode() bool { return h.starSelection }

// SetStarSelectionMode turns star selection mode on or off.
func (h *History) SetStarSelectionMode(on bool) { h.starSelection = on }

// ToggleStarSelection flips star selection mode and returns the new state.
func (h *History) ToggleStarSelection() bool {
	h.starSelection = !h.starSelection
	return h.starSelection
}

// Activate acts on the current selection. With nothing selected it does
// nothing. If the current galaxy has a single sector or star selection mode
// is on, the selected star's file is launched. Otherwise the future is
// discarded and a galaxy over the selected sector is pushed: over its
// directory in the current cluster mode, or over its files in mode none,
// named after the current galaxy.
func (h *History) Activate() Activation {
	curr := h.Current()
	sel := curr.Selected()
	if sel == nil {
		return ActivateNone
	}

	if len(curr.Sectors()) == 1 || h.starSelection {
		star := sel.Selected()
		if star == nil {
			return ActivateNone
		}
		if err := h.opts.Launcher.Launch(star.File()); err != nil {
			h.opts.Logger.Warn("launch failed", zap.String("path", star.File().Path()), zap.Error(err))
		}
		return ActivateStar
	}

	var next *Galaxy
	if dir := sel.Directory(); dir != nil {
		next = NewDirGalaxy(dir, curr.Mode(), h.galaxyOptions())
	} else {
		next = NewFileGalaxy(curr.Name(), sel.Files(), ClusterNone, nil, h.galaxyOptions())
	}
	h.push(next)
	return ActivateNavigate
}

// Back moves the cursor one entry towards the start. Returns false at the
// first entry.
func (h *History) Back() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	h.opts.Logger.Debug("history back", zap.Int("cursor", h.cursor), zap.String("galaxy", h.Current().Name()))
	return true
}

// Forward moves the cursor one entry towards the end. Returns false at the
// last entry.
func (h *History) Forward() bool {
	if h.cursor == len(h.galaxies)-1 {
		return false
	}
	h.cursor++
	h.opts.Logger.Debug("history forward", zap.Int("cursor", h.cursor), zap.String("galaxy", h.Current().Name()))
	return true
}

// SetTagFilter discards the future and pushes a galaxy of the current
// galaxy's files that carry any of tags, clustered by tag with tags as the
// vocabulary. Empty tags is a no-op returning false.
func (h *History) SetTagFilter(tags []string) bool {
	if len(tags) == 0 {
		return false
	}
	curr := h.Current()
	var matched []*fstree.File
	for _, f := range curr.Files() {
		if f.HasAnyTag(tags) {
			matched = append(matched, f)
		}
	}

	var name strings.Builder
	name.WriteString(curr.Name())
	name.WriteString(" - ")
	for _, t := range tags {
		name.WriteString(t)
		name.WriteByte(' ')
	}

	h.push(NewFileGalaxy(name.String(), matched, ClusterTags, tags, h.galaxyOptions()))
	return true
}

// SetDirectoryMode moves the cursor back to the nearest hierarchy-mode
// galaxy, or to the first entry. Returns whether the cursor moved.
func (h *History) SetDirectoryMode() bool {
	start := h.cursor
	for h.cursor > 0 && h.Current().Mode() != ClusterHierarchy {
		h.cursor--
	}
	return h.cursor != start
}

// SetClusterMode discards the future and pushes a galaxy over the current
// scope clustered with mode. Returns false if the current galaxy already
// uses mode.
func (h *History) SetClusterMode(mode ClusterMode) bool {
	curr := h.Current()
	if curr.Mode() == mode {
		return false
	}
	var next *Galaxy
	if dir := curr.Directory(); dir != nil {
		next = NewDirGalaxy(dir, mode, h.galaxyOptions())
	} else {
		next = NewFileGalaxy(curr.Name(), curr.Files(), mode, curr.Tags(), h.galaxyOptions())
	}
	h.push(next)
	return true
}

// galaxyOptions returns the options for the next galaxy. Labels are
// measured at the current window size, without any transition zoom.
func (h *History) galaxyOptions() Options {
	opts := h.opts
	vp := h.Current().Viewport()
	vp.Zoom = 1
	if r := vp.DisplayRadius(); r > 0 {
		opts.DisplayRadius = r
	}
	return opts
}

// push discards the future, appends g after the cursor and moves to it.
// The new galaxy inherits the current viewport.
func (h *History) push(g *Galaxy) {
	h.truncateFuture()
	g.SetViewport(h.Current().Viewport())
	h.galaxies = append(h.galaxies, g)
	h.cursor++
	h.opts.Logger.Debug("history push",
		zap.Int("cursor", h.cursor),
		zap.String("galaxy", g.Name()),
		zap.Stringer("mode", g.Mode()))
}

// truncateFuture closes and drops every entry after the cursor.
func (h *History) truncateFuture() {
	for _, g := range h.galaxies[h.cursor+1:] {
		g.Close()
	}
	clear(h.galaxies[h.cursor+1:])
	h.galaxies = h.galaxies[:h.cursor+1]
}

// Close releases every galaxy. The history must not be used afterwards.
func (h *History) Close() {
	for _, g := range h.galaxies {
		g.Close()
	}
}
