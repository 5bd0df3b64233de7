package starnavi

// HitShape defines a custom hit testing region in an entity's local
// coordinates.
type HitShape interface {
	// Contains reports whether the local-space point (x, y) is inside the shape.
	Contains(x, y float64) bool
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitArc is an annular wedge centred on the origin: angles in
// [Begin, Begin+Width) degrees and magnitudes up to Radius. A Full arc
// contains every angle.
type HitArc struct {
	Begin, Width, Radius float64
	Full                 bool
}

// ContainsAngle reports whether angle (degrees, any range) falls within the
// arc.
func (a HitArc) ContainsAngle(angle float64) bool {
	if a.Full {
		return true
	}
	angle = normalizeDegrees(angle)
	return angle >= a.Begin && angle < a.Begin+a.Width
}

// Contains reports whether (x, y) lies inside the wedge.
func (a HitArc) Contains(x, y float64) bool {
	angle, mag := polar(x, y)
	return mag <= a.Radius && a.ContainsAngle(angle)
}

// Hit is the result of mapping a screen point onto a galaxy.
type Hit struct {
	// Inside is true when the point lies within the displayed disc.
	Inside bool
	// Angle is the galaxy-local angle in degrees [0, 360), rotation removed.
	Angle float64
	// Normalized is the distance from the centre over the displayed radius.
	Normalized float64
	// Local is the point in galaxy units, rotation removed.
	Local Vec2
	// Sector is the sector whose arc contains Angle, or nil.
	Sector *Sector
	// Star is the last star in Sector under the point, or nil.
	Star *Star
}

// Pick maps the screen point (sx, sy) through the galaxy's viewport and
// rotation into sector and star space. It does not change the selection.
func (g *Galaxy) Pick(sx, sy float64) Hit {
	vp := g.viewport
	cx, cy := vp.Center()
	dx := sx - cx
	dy := cy - sy

	var h Hit
	angle, mag := polar(dx, dy)
	h.Angle = normalizeDegrees(angle - g.rotation)

	r := vp.DisplayRadius()
	if r <= 0 {
		return h
	}
	h.Normalized = mag / r
	if h.Normalized > 1 {
		return h
	}
	h.Inside = true
	h.Local.X, h.Local.Y = g.ScreenToGalaxy(sx, sy)

	h.Sector = g.SectorAt(h.Angle)
	if h.Sector != nil {
		h.Star = h.Sector.StarAt(h.Local.X, h.Local.Y)
	}
	return h
}

// SectorAt returns the first sector whose arc contains angle (degrees,
// galaxy-local), or nil if there are no sectors.
func (g *Galaxy) SectorAt(angle float64) *Sector {
	angle = normalizeDegrees(angle)
	for _, s := range g.sectors {
		if s.Contains(angle) {
			return s
		}
	}
	// Accumulated arc ends can fall a rounding error short of 360.
	var last *Sector
	for _, s := range g.sectors {
		if s.arcWidth > 0 && s.arcBegin <= angle {
			last = s
		}
	}
	return last
}

// IsColliding maps the screen point (x, y) onto the galaxy and records the
// sector and star under it as the current selection. Returns whether the
// point is within the displayed disc. The selection is cleared first on
// every call.
func (g *Galaxy) IsColliding(x, y float64) bool {
	if g.selected != nil {
		g.selected.selected = nil
	}
	g.selected = nil

	h := g.Pick(x, y)
	if !h.Inside {
		return false
	}
	g.selected = h.Sector
	if h.Sector != nil {
		h.Sector.selected = h.Star
	}
	return true
}
