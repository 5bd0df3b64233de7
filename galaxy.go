package starnavi

import (
	"math"
	"slices"

	"github.com/phanxgames/starnavi/fstree"
	"go.uber.org/zap"
)

// GalaxyDiameter returns the diameter of a galaxy holding n files:
// 64 * cbrt(3n / 4π).
func GalaxyDiameter(n int) float64 {
	return 64 * math.Cbrt(3*float64(n)/(4*math.Pi))
}

// Galaxy is a view over a directory's recursive file set, or over an
// explicit file list, partitioned into sectors.
type Galaxy struct {
	name  string
	mode  ClusterMode
	dir   *fstree.Dir
	files []*fstree.File
	tags  []string

	sectors  []*Sector
	selected *Sector

	diameter  float64
	radius    float64
	thickness float64

	rotation      float64
	rotationSpeed float64

	viewport      Viewport
	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	opts   Options
	closed bool
}

// NewDirGalaxy builds a galaxy over dir's recursive file set. The galaxy is
// named after the directory's path and its tag vocabulary is collected from
// the files.
func NewDirGalaxy(dir *fstree.Dir, mode ClusterMode, opts Options) *Galaxy {
	if dir == nil {
		panic("starnavi: cannot build a galaxy over a nil directory")
	}
	g := newGalaxy(dir.Path(), mode, dir.AllFiles(), opts)
	g.dir = dir
	g.init(nil)
	return g
}

// NewFileGalaxy builds a galaxy over an explicit file list. A nil tags
// slice makes the galaxy collect its vocabulary from the files.
func NewFileGalaxy(name string, files []*fstree.File, mode ClusterMode, tags []string, opts Options) *Galaxy {
	g := newGalaxy(name, mode, slices.Clone(files), opts)
	g.init(tags)
	return g
}

func newGalaxy(name string, mode ClusterMode, files []*fstree.File, opts Options) *Galaxy {
	opts = opts.withDefaults()
	g := &Galaxy{
		name:          name,
		mode:          mode,
		files:         files,
		rotationSpeed: opts.RotationSpeed,
		viewport:      Viewport{Zoom: 1, Alpha: 1},
		dirty:         true,
		opts:          opts,
	}
	g.diameter = GalaxyDiameter(len(files))
	g.radius = g.diameter / 2
	g.thickness = math.Sqrt(2 * g.radius)
	return g
}

func (g *Galaxy) init(tags []string) {
	if tags == nil {
		g.RebuildTags()
	} else {
		g.tags = slices.Clone(tags)
	}
	g.Rebuild()
}

// Name returns the galaxy's display name.
func (g *Galaxy) Name() string { return g.name }

// Label returns the text drawn for the galaxy.
func (g *Galaxy) Label() string { return g.name }

// Mode returns the cluster mode.
func (g *Galaxy) Mode() ClusterMode { return g.mode }

// Directory returns the backing directory, or nil for a file-list galaxy.
func (g *Galaxy) Directory() *fstree.Dir { return g.dir }

// Files returns the galaxy's files. The slice must not be modified.
func (g *Galaxy) Files() []*fstree.File { return g.files }

// Tags returns the tag vocabulary. The slice must not be modified.
func (g *Galaxy) Tags() []string { return g.tags }

// Sectors returns the sectors in arc order. The slice must not be
// modified.
func (g *Galaxy) Sectors() []*Sector { return g.sectors }

// Selected returns the sector under the pointer at the last IsColliding
// call, or nil.
func (g *Galaxy) Selected() *Sector { return g.selected }

// SelectedStar returns the star under the pointer at the last IsColliding
// call, or nil.
func (g *Galaxy) SelectedStar() *Star {
	if g.selected == nil {
		return nil
	}
	return g.selected.selected
}

// Diameter returns the galaxy diameter in galaxy units.
func (g *Galaxy) Diameter() float64 { return g.diameter }

// Radius returns half the diameter.
func (g *Galaxy) Radius() float64 { return g.radius }

// Thickness returns sqrt(2 * radius).
func (g *Galaxy) Thickness() float64 { return g.thickness }

// Rotation returns the current rotation in degrees [0, 360).
func (g *Galaxy) Rotation() float64 { return g.rotation }

// SetRotation sets the rotation in degrees.
func (g *Galaxy) SetRotation(deg float64) {
	g.rotation = normalizeDegrees(deg)
	g.dirty = true
}

// RotationSpeed returns the rotation advanced per frame, in degrees.
func (g *Galaxy) RotationSpeed() float64 { return g.rotationSpeed }

// SetRotationSpeed sets the rotation advanced per frame, in degrees.
func (g *Galaxy) SetRotationSpeed(deg float64) { g.rotationSpeed = deg }

// Advance moves the rotation on by one frame.
func (g *Galaxy) Advance() {
	g.SetRotation(g.rotation + g.rotationSpeed)
}

// Viewport returns the viewport the galaxy is mapped into.
func (g *Galaxy) Viewport() Viewport { return g.viewport }

// SetViewport sets the viewport used for hit testing and drawing.
func (g *Galaxy) SetViewport(v Viewport) {
	if v != g.viewport {
		g.viewport = v
		g.dirty = true
	}
}

// RebuildTags recollects the tag vocabulary from the galaxy's files, in
// first-seen order without duplicates. Sectors are left as they are.
func (g *Galaxy) RebuildTags() {
	g.tags = dedupTags(g.files)
}

// SetTags replaces the tag vocabulary. Sectors are left as they are.
func (g *Galaxy) SetTags(tags []string) {
	g.tags = slices.Clone(tags)
}

// SetClusterMode changes the cluster mode and rebuilds the sectors.
func (g *Galaxy) SetClusterMode(mode ClusterMode) {
	g.mode = mode
	g.Rebuild()
}

// Rebuild reclusters the files into sectors, places their stars and
// balances the sector widths. The sector list is replaced as a whole and
// the selection is cleared.
func (g *Galaxy) Rebuild() {
	g.selected = nil
	sectors := g.cluster()
	for _, s := range sectors {
		s.radius = g.radius
		s.thickness = g.thickness
		s.buildStars(g.opts.Rand, g.opts.StarScale)
	}
	balanceSectors(sectors, g.labelMeasurer(), g.opts.SectorMargin, g.opts.Rand, g.opts.Logger)
	g.sectors = sectors

	g.opts.Logger.Debug("galaxy built",
		zap.String("name", g.name),
		zap.Stringer("mode", g.mode),
		zap.Int("files", len(g.files)),
		zap.Int("sectors", len(sectors)))
}

// labelMeasurer returns the measurer the balancer sizes labels with: the
// label font scaled from pixels to galaxy units when a display radius is
// known, Options.Measurer otherwise.
func (g *Galaxy) labelMeasurer() LabelMeasurer {
	if g.opts.LabelFont == nil || g.radius <= 0 {
		return g.opts.Measurer
	}
	r := g.viewport.DisplayRadius()
	if r <= 0 {
		r = g.opts.DisplayRadius
	}
	if r <= 0 {
		return g.opts.Measurer
	}
	return ScaledMeasurer{Measurer: g.opts.LabelFont, Scale: g.radius / r}
}

// cluster produces the unbalanced sectors for the current mode.
func (g *Galaxy) cluster() []*Sector {
	switch g.mode {
	case ClusterDate, ClusterSize, ClusterType:
		return nil
	}
	if len(g.files) == 0 {
		return []*Sector{{name: g.name, arcWidth: 360}}
	}
	switch g.mode {
	case ClusterName:
		return assignArcs(clusterByName(g.files), g.name)
	case ClusterTags:
		groups := clusterByTags(g.files, g.tags)
		if len(groups) < 2 {
			g.RebuildTags()
		}
		return assignArcs(groups, g.name)
	default:
		return assignArcs(clusterHierarchy(g.dir, g.files, g.name), g.name)
	}
}

// Close releases the galaxy's sectors and stars. The galaxy must not be
// used afterwards.
func (g *Galaxy) Close() {
	g.sectors = nil
	g.selected = nil
	g.closed = true
}

// Closed reports whether Close has been called.
func (g *Galaxy) Closed() bool { return g.closed }

// --- Coordinate conversion ---

// displayScale returns pixels per galaxy unit.
func (g *Galaxy) displayScale() float64 {
	if g.radius <= 0 {
		return 0
	}
	return g.viewport.DisplayRadius() / g.radius
}

// computeViewMatrix recomputes the cached galaxy-to-screen matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(s, -s) * Rotate(rotation)
// where cx, cy = viewport centre and s = pixels per galaxy unit. The
// negative Y scale turns the galaxy's Y-up frame into screen space.
func (g *Galaxy) computeViewMatrix() [6]float64 {
	if !g.dirty {
		return g.viewMatrix
	}
	g.dirty = false
	cx, cy := g.viewport.Center()
	s := g.displayScale()
	g.viewMatrix = chainAffine(translateAffine(cx, cy), scaleAffine(s, -s), rotateAffine(g.rotation))
	g.invViewMatrix = invertAffine(g.viewMatrix)
	return g.viewMatrix
}

// GalaxyToScreen converts a galaxy-local point to screen coordinates.
func (g *Galaxy) GalaxyToScreen(x, y float64) (float64, float64) {
	return transformPoint(g.computeViewMatrix(), x, y)
}

// ScreenToGalaxy converts a screen point to galaxy-local coordinates with
// the rotation removed.
func (g *Galaxy) ScreenToGalaxy(sx, sy float64) (float64, float64) {
	g.computeViewMatrix()
	return transformPoint(g.invViewMatrix, sx, sy)
}

// --- Entity ---

// Position implements Entity; the galaxy is centred on the origin.
func (g *Galaxy) Position() Vec2 { return Vec2{} }

// Size implements Entity; it returns the diameter.
func (g *Galaxy) Size() float64 { return g.diameter }

// HitTest implements Entity.
func (g *Galaxy) HitTest(x, y float64) bool {
	return HitCircle{Radius: g.radius}.Contains(x, y)
}
