package starnavi

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- geometry ---

func TestArcSegments(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{0, 2},
		{5, 2},
		{90, 18},
		{92, 19},
		{360, 72},
		{-90, 18},
	}
	for _, tt := range tests {
		if got := arcSegments(tt.width); got != tt.want {
			t.Errorf("arcSegments(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestWedgePoints(t *testing.T) {
	pts := wedgePoints(0, 90, 10)
	if len(pts) != arcSegments(90)+2 {
		t.Fatalf("len = %d", len(pts))
	}
	if pts[0] != (Vec2{}) {
		t.Errorf("first point = %v, want the centre", pts[0])
	}
	assertNear(t, "start.x", pts[1].X, 10)
	assertNear(t, "start.y", pts[1].Y, 0)
	end := pts[len(pts)-1]
	assertNear(t, "end.x", end.X, 0)
	assertNear(t, "end.y", end.Y, 10)
	for _, p := range pts[1:] {
		assertNear(t, "radius", math.Hypot(p.X, p.Y), 10)
	}
}

func TestCirclePoints(t *testing.T) {
	pts := circlePoints(5, -5, 2, 8)
	if len(pts) != 8 {
		t.Fatalf("len = %d", len(pts))
	}
	for _, p := range pts {
		assertNear(t, "radius", math.Hypot(p.X-5, p.Y+5), 2)
	}
	if n := len(circlePoints(0, 0, 1, 1)); n != 3 {
		t.Errorf("minimum segments = %d, want 3", n)
	}
}

// --- vertex builders ---

func TestBuildPolygonFan(t *testing.T) {
	pts := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	verts, inds := buildPolygonFan(pts, Color{1, 0, 0, 0.5})
	if len(verts) != 4 || len(inds) != 6 {
		t.Fatalf("verts %d inds %d, want 4 and 6", len(verts), len(inds))
	}
	want := []uint16{0, 1, 2, 0, 2, 3}
	for i := range want {
		if inds[i] != want[i] {
			t.Fatalf("inds = %v, want %v", inds, want)
		}
	}
	// Colors are premultiplied.
	if !approxEqual(float64(verts[0].ColorR), 0.5, 1e-6) || !approxEqual(float64(verts[0].ColorA), 0.5, 1e-6) {
		t.Errorf("color = (%f, %f)", verts[0].ColorR, verts[0].ColorA)
	}
	if verts[0].SrcX != 0.5 || verts[0].SrcY != 0.5 {
		t.Error("solid vertices sample the pixel centre")
	}

	if v, i := buildPolygonFan(pts[:2], ColorWhite); v != nil || i != nil {
		t.Error("fewer than three points should build nothing")
	}
}

func TestBuildLine(t *testing.T) {
	verts, inds := buildLine(0, 0, 10, 0, 2, ColorWhite, Color{})
	if len(verts) != 4 || len(inds) != 6 {
		t.Fatalf("verts %d inds %d", len(verts), len(inds))
	}
	if !approxEqual(float64(verts[0].DstY), 1, 1e-6) || !approxEqual(float64(verts[1].DstY), -1, 1e-6) {
		t.Errorf("line half-width: %f %f", verts[0].DstY, verts[1].DstY)
	}
	if verts[0].ColorA != 1 || verts[2].ColorA != 0 {
		t.Error("line should fade from start to end color")
	}
	if v, _ := buildLine(3, 3, 3, 3, 1, ColorWhite, ColorWhite); v != nil {
		t.Error("zero-length line should build nothing")
	}
}

// --- transformVertices ---

func TestTransformVerticesTranslation(t *testing.T) {
	verts := []ebiten.Vertex{
		{DstX: 0, DstY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	// [a=1, b=0, c=0, d=1, tx=100, ty=200]
	transformVertices(verts, [6]float64{1, 0, 0, 1, 100, 200}, 1)

	if !approxEqual(float64(verts[0].DstX), 100, epsilon) || !approxEqual(float64(verts[0].DstY), 200, epsilon) {
		t.Errorf("translation: (%f,%f), want (100,200)", verts[0].DstX, verts[0].DstY)
	}
}

func TestTransformVerticesRotation90(t *testing.T) {
	verts := []ebiten.Vertex{{DstX: 1, DstY: 0, ColorA: 1}}
	transformVertices(verts, rotateAffine(90), 1)

	// (1,0) rotated 90° CCW → (0,1)
	if !approxEqual(float64(verts[0].DstX), 0, 0.001) || !approxEqual(float64(verts[0].DstY), 1, 0.001) {
		t.Errorf("rotation90: (%f,%f), want (0,1)", verts[0].DstX, verts[0].DstY)
	}
}

func TestTransformVerticesAlpha(t *testing.T) {
	verts := []ebiten.Vertex{
		{ColorR: 0.5, ColorG: 0.5, ColorB: 0.5, ColorA: 0.5, SrcX: 0.5, SrcY: 0.5},
	}
	transformVertices(verts, identityTransform, 0.5)

	if !approxEqual(float64(verts[0].ColorA), 0.25, 0.001) || !approxEqual(float64(verts[0].ColorR), 0.25, 0.001) {
		t.Errorf("color = (%f, %f), want 0.25", verts[0].ColorR, verts[0].ColorA)
	}
	if verts[0].SrcX != 0.5 || verts[0].SrcY != 0.5 {
		t.Error("UV changed")
	}
}

// --- meshBuffer ---

func TestMeshBufferRebasesIndices(t *testing.T) {
	var buf meshBuffer
	v1, i1 := buildPolygonFan([]Vec2{{0, 0}, {1, 0}, {1, 1}}, ColorWhite)
	v2, i2 := buildPolygonFan([]Vec2{{5, 5}, {6, 5}, {6, 6}}, ColorWhite)
	if !buf.add(v1, i1) || !buf.add(v2, i2) {
		t.Fatal("add failed")
	}
	want := []uint16{0, 1, 2, 3, 4, 5}
	for i := range want {
		if buf.inds[i] != want[i] {
			t.Fatalf("inds = %v, want %v", buf.inds, want)
		}
	}
	buf.reset()
	if len(buf.verts) != 0 || len(buf.inds) != 0 {
		t.Error("reset should empty the buffer")
	}
}

func TestMeshBufferRejectsOverflow(t *testing.T) {
	var buf meshBuffer
	big := make([]ebiten.Vertex, math.MaxUint16+1)
	if buf.add(big, nil) {
		t.Error("adding past the 16-bit index range should fail")
	}
	if len(buf.verts) != 0 {
		t.Error("a rejected add should leave the buffer unchanged")
	}
}
