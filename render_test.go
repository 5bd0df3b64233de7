package starnavi

import (
	"math"
	"testing"

	"github.com/phanxgames/starnavi/fstree"
)

func TestDepthFade(t *testing.T) {
	tests := []struct {
		name             string
		depth, thickness float64
		want             float64
	}{
		{"back", -2, 2, 0.5},
		{"middle", 0, 2, 0.75},
		{"front", 2, 2, 1},
		{"beyond front", 5, 2, 1},
		{"flat sector", 3, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "depthFade", depthFade(tt.depth, tt.thickness), tt.want)
		})
	}
}

func TestClampUnit(t *testing.T) {
	for in, want := range map[float64]float64{-3: -1, -0.5: -0.5, 0: 0, 0.25: 0.25, 7: 1} {
		assertNear(t, "clampUnit", clampUnit(in), want)
	}
}

func TestStarPixelRadius(t *testing.T) {
	st := newStar(fstree.NewFile("a", 0), 1)
	assertNear(t, "scaled", starPixelRadius(st, 10), 10)
	assertNear(t, "minimum", starPixelRadius(st, 0.1), minStarPixels)
}

func TestSectorLabelAnchor(t *testing.T) {
	g := letterGalaxy(t)
	x, y := sectorLabelAnchor(g, g.Sectors()[0])
	d := 97.5 / 2
	assertNear(t, "x", x, 100+d*math.Cos(math.Pi/4))
	assertNear(t, "y", y, 100-d*math.Sin(math.Pi/4))
}

func TestNewRendererWithoutFont(t *testing.T) {
	r := NewRenderer(nil)
	if r.Font() != nil {
		t.Error("Font should be nil")
	}
}
