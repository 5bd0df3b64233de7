package starnavi

import "testing"

func TestViewportDisplayRadius(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want float64
	}{
		{"square", NewViewport(200, 200), 97.5},
		{"wide uses height", NewViewport(400, 105), 50},
		{"zoomed", Viewport{Width: 205, Height: 205, Zoom: 0.5}, 50},
		{"zero zoom means one", Viewport{Width: 205, Height: 205}, 100},
		{"too small", NewViewport(3, 3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "DisplayRadius", tt.vp.DisplayRadius(), tt.want)
		})
	}
}

func TestViewportCenter(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 100, Height: 50}
	cx, cy := vp.Center()
	assertNear(t, "cx", cx, 60)
	assertNear(t, "cy", cy, 45)
	if vp.Rect() != (Rect{X: 10, Y: 20, Width: 100, Height: 50}) {
		t.Errorf("Rect = %+v", vp.Rect())
	}
}

func TestViewportOpacity(t *testing.T) {
	assertNear(t, "zero", Viewport{}.Opacity(), 1)
	assertNear(t, "half", Viewport{Alpha: 0.5}.Opacity(), 0.5)
	assertNear(t, "clamped", Viewport{Alpha: 3}.Opacity(), 1)
}

func TestViewportClampLabel(t *testing.T) {
	vp := NewViewport(100, 100)
	tests := []struct {
		name       string
		x, y, w, h float64
		wantX      float64
		wantY      float64
	}{
		{"inside", 10, 10, 20, 5, 10, 10},
		{"off right", 90, 10, 20, 5, 80, 10},
		{"off bottom", 10, 98, 20, 5, 10, 95},
		{"off left and top", -5, -5, 20, 5, 0, 0},
		{"wider than viewport", 50, 10, 150, 5, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := vp.ClampLabel(tt.x, tt.y, tt.w, tt.h)
			assertNear(t, "x", x, tt.wantX)
			assertNear(t, "y", y, tt.wantY)
		})
	}
}
