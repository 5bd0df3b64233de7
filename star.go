package starnavi

import (
	"math"
	"math/rand/v2"

	"github.com/dustin/go-humanize"
	"github.com/phanxgames/starnavi/fstree"
)

// Star is the visual representation of one file.
type Star struct {
	file     *fstree.File
	angle    float64 // absolute degrees, galaxy-local
	distance float64 // from the galaxy centre
	depth    float64 // in [-thickness, thickness]
	radius   float64
	color    Color
}

// StarRadius returns the radius of a star for a file of size bytes:
// log10(size+1)/log10(1000) + 1.
func StarRadius(size int64) float64 {
	if size < 0 {
		size = 0
	}
	return math.Log10(float64(size)+1)/math.Log10(1000) + 1
}

// Star colors by MIME category.
var (
	ColorBinary      = Color{0, 0, 1, 1}
	ColorApplication = Color{0.5, 0.5, 1, 1}
	ColorAudio       = Color{1, 0, 0, 1}
	ColorImage       = Color{1, 1, 0, 1}
	ColorVideo       = Color{1, 0.25, 0, 1}
	ColorText        = Color{1, 1, 1, 1}
	ColorUnknown     = Color{0.5, 0.3, 0, 1}
)

// CategoryColor returns the star color for a MIME category.
func CategoryColor(c fstree.Category) Color {
	switch c {
	case fstree.CategoryBinary:
		return ColorBinary
	case fstree.CategoryApplication:
		return ColorApplication
	case fstree.CategoryAudio:
		return ColorAudio
	case fstree.CategoryImage:
		return ColorImage
	case fstree.CategoryVideo:
		return ColorVideo
	case fstree.CategoryText:
		return ColorText
	default:
		return ColorUnknown
	}
}

func newStar(f *fstree.File, scale float64) *Star {
	return &Star{
		file:   f,
		radius: StarRadius(f.Size) * scale,
		color:  CategoryColor(f.Category),
	}
}

// File returns the file the star represents.
func (s *Star) File() *fstree.File { return s.file }

// Name returns the file name.
func (s *Star) Name() string { return s.file.Name() }

// Label returns "name (size)" with a human-readable size.
func (s *Star) Label() string {
	size := s.file.Size
	if size < 0 {
		size = 0
	}
	return s.file.Name() + " (" + humanize.Bytes(uint64(size)) + ")"
}

// Angle returns the star's angle in degrees.
func (s *Star) Angle() float64 { return s.angle }

// Distance returns the star's distance from the galaxy centre.
func (s *Star) Distance() float64 { return s.distance }

// Depth returns the star's depth.
func (s *Star) Depth() float64 { return s.depth }

// Radius returns the star's radius in galaxy units.
func (s *Star) Radius() float64 { return s.radius }

// Color returns the star's color.
func (s *Star) Color() Color { return s.color }

// SetPlacement moves the star.
func (s *Star) SetPlacement(angle, distance, depth float64) {
	s.angle = angle
	s.distance = distance
	s.depth = depth
}

// randomPlacement places the star uniformly in the given ranges.
func (s *Star) randomPlacement(rng *rand.Rand, a1, a2, d1, d2, dep1, dep2 float64) {
	s.angle = a1 + rng.Float64()*(a2-a1)
	s.distance = d1 + rng.Float64()*(d2-d1)
	s.depth = dep1 + rng.Float64()*(dep2-dep1)
}

// localTransform maps the star's own frame (centre at the origin) into the
// galaxy-local frame: Rotate(angle) * Translate(distance, 0).
func (s *Star) localTransform() [6]float64 {
	return multiplyAffine(rotateAffine(s.angle), translateAffine(s.distance, 0))
}

// Position implements Entity.
func (s *Star) Position() Vec2 { return polarPoint(s.angle, s.distance) }

// Size implements Entity; it returns the diameter.
func (s *Star) Size() float64 { return 2 * s.radius }

// HitTest implements Entity. The point is moved into the star's rotated
// frame and tested against its radius.
func (s *Star) HitTest(x, y float64) bool {
	lx, ly := transformPoint(invertAffine(s.localTransform()), x, y)
	return HitCircle{Radius: s.radius}.Contains(lx, ly)
}
