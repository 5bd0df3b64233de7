package starnavi

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// StarSelectionBanner is drawn while activation launches stars.
const StarSelectionBanner = " Star Selection Mode"

const (
	minStarPixels   = 1.5  // smallest drawn star radius
	divisionWidth   = 1.0  // sector division line width in pixels
	selectionAlpha  = 0.15 // selection mask opacity
	starLabelOffset = 4.0  // gap between a star and its label
	bannerPadding   = 4.0
)

// Renderer draws galaxies onto an ebiten image. It owns its GPU resources;
// create one per window.
type Renderer struct {
	font  *TTFMeasurer
	white *ebiten.Image
	buf   meshBuffer
	dst   *ebiten.Image // target of the Draw in progress

	// Background fills the viewport before drawing. Nil leaves the target
	// untouched.
	Background color.Color
}

// NewRenderer creates a renderer that draws labels with font. A nil font
// disables labels.
func NewRenderer(font *TTFMeasurer) *Renderer {
	return &Renderer{font: font}
}

// Font returns the label font, or nil.
func (r *Renderer) Font() *TTFMeasurer { return r.font }

// Draw renders g into its viewport on dst: stars, sector division lines,
// the selection mask and labels. starSelection draws the star selection
// banner, which is also shown for single-sector galaxies.
func (r *Renderer) Draw(dst *ebiten.Image, g *Galaxy, starSelection bool) {
	if r.white == nil {
		r.white = newWhitePixel()
	}
	r.dst = dst
	defer func() { r.dst = nil }()
	vp := g.Viewport()
	if r.Background != nil {
		dst.SubImage(vp.Rect().image()).(*ebiten.Image).Fill(r.Background)
	}

	view := g.computeViewMatrix()
	alpha := vp.Opacity()
	scale := g.displayScale()
	sectors := g.Sectors()
	single := len(sectors) == 1
	launching := starSelection || single

	// Stars.
	for _, s := range sectors {
		for _, st := range s.Stars() {
			p := st.Position()
			sx, sy := transformPoint(view, p.X, p.Y)
			rpx := starPixelRadius(st, scale)
			c := st.Color()
			c.A *= depthFade(st.Depth(), s.Thickness()) * alpha
			r.add(buildPolygonFan(circlePoints(sx, sy, rpx, arcSegments(360)), c))
		}
	}

	// Sector division lines fade from the centre outwards.
	if !single {
		cx, cy := transformPoint(view, 0, 0)
		for _, s := range sectors {
			edge := polarPoint(s.ArcBegin(), g.Radius())
			ex, ey := transformPoint(view, edge.X, edge.Y)
			r.add(buildLine(cx, cy, ex, ey, divisionWidth, ColorWhite.WithAlpha(alpha), Color{}))
		}
	}

	// Selection mask.
	sel := g.Selected()
	if sel != nil && !launching {
		verts, inds := buildPolygonFan(wedgePoints(sel.ArcBegin(), sel.ArcWidth(), g.Radius()), ColorWhite.WithAlpha(selectionAlpha))
		transformVertices(verts, view, alpha)
		r.add(verts, inds)
	}
	if star := g.SelectedStar(); star != nil && launching {
		p := star.Position()
		sx, sy := transformPoint(view, p.X, p.Y)
		ring := starPixelRadius(star, scale) + 2
		r.add(buildPolygonFan(circlePoints(sx, sy, ring, arcSegments(360)), ColorWhite.WithAlpha(0.4*alpha)))
	}
	r.buf.flush(dst, r.white)

	if r.font == nil {
		return
	}

	// Labels.
	if sel != nil && !launching {
		lx, ly := sectorLabelAnchor(g, sel)
		w, h := r.font.MeasureString(sel.Label())
		x, y := vp.ClampLabel(lx-w/2, ly-h/2, w, h)
		r.drawText(dst, sel.Label(), x, y, ColorWhite.WithAlpha(alpha))
	}
	if star := g.SelectedStar(); star != nil {
		p := star.Position()
		sx, sy := transformPoint(view, p.X, p.Y)
		label := star.Label()
		w, h := r.font.MeasureString(label)
		off := starPixelRadius(star, scale) + starLabelOffset
		x, y := vp.ClampLabel(sx+off, sy-h/2, w, h)
		r.drawText(dst, label, x, y, ColorWhite.WithAlpha(alpha))
	}

	_, h := r.font.MeasureString(g.Label())
	r.drawText(dst, g.Label(), vp.X+bannerPadding, vp.Y+vp.Height-h-bannerPadding, ColorWhite.WithAlpha(alpha))

	if launching {
		w, h := r.font.MeasureString(StarSelectionBanner)
		band := []Vec2{
			{X: vp.X, Y: vp.Y},
			{X: vp.X + w + 2*bannerPadding, Y: vp.Y},
			{X: vp.X + w + 2*bannerPadding, Y: vp.Y + h + 2*bannerPadding},
			{X: vp.X, Y: vp.Y + h + 2*bannerPadding},
		}
		r.add(buildPolygonFan(band, ColorWhite))
		r.buf.flush(dst, r.white)
		r.drawText(dst, StarSelectionBanner, vp.X+bannerPadding, vp.Y+bannerPadding, Color{0, 0, 0, 1})
	}
}

// add buffers a triangle list, flushing first if the buffer is full.
func (r *Renderer) add(verts []ebiten.Vertex, inds []uint16) {
	if len(verts) == 0 {
		return
	}
	if !r.buf.add(verts, inds) {
		r.buf.flush(r.dst, r.white)
		r.buf.add(verts, inds)
	}
}

func (r *Renderer) drawText(dst *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.LineSpacing = r.font.LineHeight()
	text.Draw(dst, s, r.font.Face(), op)
}

// starPixelRadius returns a star's drawn radius at scale pixels per galaxy
// unit.
func starPixelRadius(st *Star, scale float64) float64 {
	return max(st.Radius()*scale, minStarPixels)
}

// depthFade dims stars further back: 0.5 at -thickness up to 1 at
// +thickness.
func depthFade(depth, thickness float64) float64 {
	if thickness <= 0 {
		return 1
	}
	return 0.75 + 0.25*clampUnit(depth/thickness)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// sectorLabelAnchor returns the screen position of a sector's label: half
// the galaxy radius out along the arc's bisector.
func sectorLabelAnchor(g *Galaxy, s *Sector) (float64, float64) {
	p := polarPoint(s.Bisector(), g.Radius()/2)
	return g.GalaxyToScreen(p.X, p.Y)
}
