package starnavi

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default drill-in transition parameters.
const (
	DefaultTransitionDuration = 0.35 // seconds
	transitionStartZoom       = 0.2
	transitionStartAlpha      = 0.05
)

// Transition animates a galaxy's viewport zoom and alpha. Create one with
// NewTransition and call Update(dt) each frame; the values are written to
// the galaxy's viewport. If the galaxy is closed, the transition stops
// immediately.
type Transition struct {
	zoom   *gween.Tween
	alpha  *gween.Tween
	target *Galaxy
	Done   bool
}

// NewTransition tweens g's viewport from (fromZoom, fromAlpha) to zoom 1
// and full opacity over duration seconds using fn. A nil fn uses
// ease.OutCubic.
func NewTransition(g *Galaxy, fromZoom, fromAlpha float64, duration float32, fn ease.TweenFunc) *Transition {
	if fn == nil {
		fn = ease.OutCubic
	}
	t := &Transition{
		zoom:   gween.New(float32(fromZoom), 1, duration, fn),
		alpha:  gween.New(float32(fromAlpha), 1, duration, fn),
		target: g,
	}
	t.apply(fromZoom, fromAlpha)
	return t
}

// DrillIn returns the transition played when g is pushed onto the history:
// the galaxy grows out of the centre while fading in.
func DrillIn(g *Galaxy) *Transition {
	return NewTransition(g, transitionStartZoom, transitionStartAlpha, DefaultTransitionDuration, ease.OutCubic)
}

// Update advances the transition by dt seconds.
func (t *Transition) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target == nil || t.target.Closed() {
		t.Done = true
		return
	}
	z, zDone := t.zoom.Update(dt)
	a, aDone := t.alpha.Update(dt)
	t.apply(float64(z), float64(a))
	t.Done = zDone && aDone
}

// Finish jumps to the end state.
func (t *Transition) Finish() {
	if t.Done {
		return
	}
	t.Done = true
	if t.target != nil && !t.target.Closed() {
		t.apply(1, 1)
	}
}

// Zoom returns the viewport zoom last written.
func (t *Transition) Zoom() float64 { return t.target.Viewport().Zoom }

// Alpha returns the viewport alpha last written.
func (t *Transition) Alpha() float64 { return t.target.Viewport().Alpha }

func (t *Transition) apply(zoom, alpha float64) {
	if t.target == nil {
		return
	}
	vp := t.target.Viewport()
	vp.Zoom = zoom
	vp.Alpha = alpha
	t.target.SetViewport(vp)
}
