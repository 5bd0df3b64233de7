package starnavi

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// arcStepDegrees is the angular resolution of wedge and disc outlines.
const arcStepDegrees = 5.0

// arcSegments returns the number of straight segments used to approximate
// an arc of width degrees.
func arcSegments(width float64) int {
	n := int(math.Ceil(math.Abs(width) / arcStepDegrees))
	return max(n, 2)
}

// wedgePoints returns the outline of a wedge centred on the origin: the
// centre followed by points along the arc from begin to begin+width. The
// centre comes first so buildPolygonFan fans from it, which also covers
// wedges wider than 180 degrees.
func wedgePoints(begin, width, radius float64) []Vec2 {
	segs := arcSegments(width)
	pts := make([]Vec2, 0, segs+2)
	pts = append(pts, Vec2{})
	for i := 0; i <= segs; i++ {
		pts = append(pts, polarPoint(begin+width*float64(i)/float64(segs), radius))
	}
	return pts
}

// circlePoints returns a polygon approximating the circle at (cx, cy).
func circlePoints(cx, cy, radius float64, segs int) []Vec2 {
	segs = max(segs, 3)
	pts := make([]Vec2, segs)
	for i := range pts {
		p := polarPoint(360*float64(i)/float64(segs), radius)
		pts[i] = Vec2{X: cx + p.X, Y: cy + p.Y}
	}
	return pts
}

// buildPolygonFan generates vertices and indices for a fan-triangulated
// polygon with a uniform color. N vertices, 3*(N-2) indices.
func buildPolygonFan(points []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)
	for i, p := range points {
		verts[i] = solidVertex(p.X, p.Y, c)
	}
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// buildLine generates a quad of the given width from (x0, y0) to (x1, y1),
// colored c0 at the start and c1 at the end.
func buildLine(x0, y0, x1, y1, width float64, c0, c1 Color) ([]ebiten.Vertex, []uint16) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil, nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	verts := []ebiten.Vertex{
		solidVertex(x0+nx, y0+ny, c0),
		solidVertex(x0-nx, y0-ny, c0),
		solidVertex(x1-nx, y1-ny, c1),
		solidVertex(x1+nx, y1+ny, c1),
	}
	return verts, []uint16{0, 1, 2, 0, 2, 3}
}

// solidVertex samples the centre of the white pixel so untextured geometry
// takes its color from the vertex alone.
func solidVertex(x, y float64, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}

// transformVertices applies an affine transform and alpha to src vertices in
// place.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func transformVertices(verts []ebiten.Vertex, transform [6]float64, alpha float64) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	fa := float32(alpha)
	for i := range verts {
		v := &verts[i]
		ox := float64(v.DstX)
		oy := float64(v.DstY)
		v.DstX = float32(a*ox + c*oy + tx)
		v.DstY = float32(b*ox + d*oy + ty)
		v.ColorR *= fa
		v.ColorG *= fa
		v.ColorB *= fa
		v.ColorA *= fa
	}
}

// meshBuffer accumulates triangles for a single DrawTriangles call.
type meshBuffer struct {
	verts []ebiten.Vertex
	inds  []uint16
}

// add appends a triangle list, rebasing its indices. Returns false if the
// buffer would exceed the 16-bit index range.
func (m *meshBuffer) add(verts []ebiten.Vertex, inds []uint16) bool {
	base := len(m.verts)
	if base+len(verts) > math.MaxUint16 {
		return false
	}
	m.verts = append(m.verts, verts...)
	for _, i := range inds {
		m.inds = append(m.inds, uint16(base)+i)
	}
	return true
}

func (m *meshBuffer) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

// flush draws the buffered triangles onto dst and empties the buffer.
func (m *meshBuffer) flush(dst, white *ebiten.Image) {
	if len(m.inds) > 0 {
		var triOp ebiten.DrawTrianglesOptions
		triOp.Blend = ebiten.BlendSourceOver
		dst.DrawTriangles(m.verts, m.inds, white, &triOp)
	}
	m.reset()
}

// newWhitePixel returns a 1x1 white image for untextured geometry.
func newWhitePixel() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}
