package starnavi

// viewportInset is the gap, in pixels, between the displayed disc and the
// edge of the viewport's shorter side.
const viewportInset = 5

// Viewport is the screen-space area a galaxy is drawn into.
type Viewport struct {
	// X, Y, Width and Height are the screen rectangle in pixels.
	X, Y, Width, Height float64
	// Zoom scales the displayed disc (1.0 = fit the viewport). Zero is
	// treated as 1.
	Zoom float64
	// Alpha fades the whole galaxy. Zero is treated as 1.
	Alpha float64
}

// NewViewport returns a viewport covering (0, 0, w, h) at zoom 1.
func NewViewport(w, h float64) Viewport {
	return Viewport{Width: w, Height: h, Zoom: 1, Alpha: 1}
}

// Rect returns the viewport's screen rectangle.
func (v Viewport) Rect() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// Center returns the screen-space centre.
func (v Viewport) Center() (float64, float64) {
	return v.X + v.Width/2, v.Y + v.Height/2
}

// Side returns the shorter of width and height.
func (v Viewport) Side() float64 {
	return min(v.Width, v.Height)
}

func (v Viewport) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

// Opacity returns Alpha with zero treated as fully opaque.
func (v Viewport) Opacity() float64 {
	if v.Alpha == 0 {
		return 1
	}
	return clamp01(v.Alpha)
}

// DisplayRadius returns the radius of the drawn disc in pixels.
func (v Viewport) DisplayRadius() float64 {
	r := (v.Side() - viewportInset) / 2 * v.zoom()
	if r < 0 {
		return 0
	}
	return r
}

// ClampLabel shifts a w×h box anchored at (x, y) so it lies inside the
// viewport where possible.
func (v Viewport) ClampLabel(x, y, w, h float64) (float64, float64) {
	if x+w > v.X+v.Width {
		x = v.X + v.Width - w
	}
	if y+h > v.Y+v.Height {
		y = v.Y + v.Height - h
	}
	if x < v.X {
		x = v.X
	}
	if y < v.Y {
		y = v.Y
	}
	return x, y
}
