package starnavi

import (
	"math"
	"math/rand/v2"

	"github.com/phanxgames/starnavi/fstree"
)

// Sector is a wedge of a galaxy holding the stars of one directory or one
// group of files.
type Sector struct {
	name      string
	arcBegin  float64
	arcWidth  float64
	radius    float64
	thickness float64

	// Exactly one of dir or files backs the sector.
	dir   *fstree.Dir
	files []*fstree.File

	stars    []*Star
	single   bool
	selected *Star
}

// newDirSector creates a sector backed by a directory's recursive file set.
func newDirSector(dir *fstree.Dir, name string) *Sector {
	if name == "" {
		name = dir.Name()
	}
	return &Sector{name: name, dir: dir}
}

// newFileSector creates a sector over an explicit file list.
func newFileSector(files []*fstree.File, name string) *Sector {
	return &Sector{name: name, files: files}
}

// Name returns the sector's display name.
func (s *Sector) Name() string { return s.name }

// Label returns the text drawn for the sector.
func (s *Sector) Label() string { return s.name }

// Directory returns the backing directory, or nil for a file-list sector.
func (s *Sector) Directory() *fstree.Dir { return s.dir }

// Files returns the files the sector represents.
func (s *Sector) Files() []*fstree.File {
	if s.dir != nil {
		return s.dir.AllFiles()
	}
	return s.files
}

// NumFiles returns the number of files the sector represents.
func (s *Sector) NumFiles() int {
	if s.dir != nil {
		return s.dir.NumAllFiles()
	}
	return len(s.files)
}

// ArcBegin returns the start of the arc in degrees.
func (s *Sector) ArcBegin() float64 { return s.arcBegin }

// ArcWidth returns the arc width in degrees.
func (s *Sector) ArcWidth() float64 { return s.arcWidth }

// ArcEnd returns ArcBegin + ArcWidth.
func (s *Sector) ArcEnd() float64 { return s.arcBegin + s.arcWidth }

// Radius returns the sector radius in galaxy units.
func (s *Sector) Radius() float64 { return s.radius }

// Thickness returns the depth range of the sector's stars.
func (s *Sector) Thickness() float64 { return s.thickness }

// Stars returns the sector's stars. The slice must not be modified.
func (s *Sector) Stars() []*Star { return s.stars }

// Selected returns the star under the pointer at the last IsColliding
// call, or nil.
func (s *Sector) Selected() *Star { return s.selected }

// SingleSector reports whether the sector is the only one in its galaxy.
func (s *Sector) SingleSector() bool { return s.single }

// shape returns the sector's hit region.
func (s *Sector) shape() HitArc {
	return HitArc{Begin: s.arcBegin, Width: s.arcWidth, Radius: s.radius, Full: s.single}
}

// Contains reports whether angle (degrees, galaxy-local) falls in the
// half-open arc. A single sector contains every angle.
func (s *Sector) Contains(angle float64) bool {
	return s.shape().ContainsAngle(angle)
}

// Bisector returns the angle halfway through the arc.
func (s *Sector) Bisector() float64 {
	return s.arcBegin + s.arcWidth/2
}

// Position implements Entity; it is the label anchor at half radius along
// the bisector.
func (s *Sector) Position() Vec2 {
	return polarPoint(s.Bisector(), s.radius/2)
}

// Size implements Entity; it returns the arc width in degrees.
func (s *Sector) Size() float64 { return s.arcWidth }

// HitTest implements Entity.
func (s *Sector) HitTest(x, y float64) bool {
	return s.shape().Contains(x, y)
}

// StarAt returns the last star whose disc contains the galaxy-local point
// (x, y), or nil.
func (s *Sector) StarAt(x, y float64) *Star {
	var hit *Star
	for _, st := range s.stars {
		if st.HitTest(x, y) {
			hit = st
		}
	}
	return hit
}

// BiggestStarDiameter returns the largest star diameter in the sector.
func (s *Sector) BiggestStarDiameter() float64 {
	var d float64
	for _, st := range s.stars {
		d = math.Max(d, st.Size())
	}
	return d
}

// MinArcWidth returns the narrowest arc, in degrees, that fits both the
// sector's label (drawn at half radius) and its stars.
func (s *Sector) MinArcWidth(m LabelMeasurer) float64 {
	if s.radius <= 0 {
		return 0
	}
	var labelDeg float64
	if m != nil {
		w, _ := m.MeasureString(s.Label())
		labelDeg = degrees(w / (s.radius / 2))
	}
	starDeg := degrees(s.BiggestStarDiameter() * math.Sqrt(float64(len(s.stars))) / s.radius)
	return math.Max(labelDeg, starDeg)
}

// buildStars creates one star per file, placed uniformly inside the arc.
func (s *Sector) buildStars(rng *rand.Rand, scale float64) {
	files := s.Files()
	s.stars = make([]*Star, len(files))
	for i, f := range files {
		st := newStar(f, scale)
		s.place(st, rng)
		s.stars[i] = st
	}
}

func (s *Sector) place(st *Star, rng *rand.Rand) {
	st.randomPlacement(rng, s.arcBegin, s.arcBegin+s.arcWidth, 0, s.radius, -s.thickness, s.thickness)
}

// repositionStrays re-places every star whose angle is outside the arc.
func (s *Sector) repositionStrays(rng *rand.Rand) {
	for _, st := range s.stars {
		if st.angle < s.arcBegin || st.angle >= s.arcBegin+s.arcWidth {
			s.place(st, rng)
		}
	}
}
