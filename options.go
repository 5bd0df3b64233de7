package starnavi

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// DefaultRotationSpeed is the galaxy rotation in degrees per frame.
const DefaultRotationSpeed = 0.02

// DefaultSectorMargin is added to every sector's computed minimum width, in
// degrees.
const DefaultSectorMargin = 4.0

// Options carries the collaborators and tunables shared by every galaxy in a
// session. The zero value is usable: nil fields are replaced by defaults.
type Options struct {
	// Logger receives construction and navigation events. Nil disables
	// logging.
	Logger *zap.Logger
	// Measurer sizes sector labels in galaxy units for the balancer.
	// Defaults to a CellMeasurer. It is only used when LabelFont is unset
	// or no display radius is known.
	Measurer LabelMeasurer
	// LabelFont measures labels in screen pixels, as the renderer draws
	// them. Each galaxy converts its sizes into galaxy units at its own
	// display scale.
	LabelFont LabelMeasurer
	// DisplayRadius is the on-screen galaxy radius in pixels used with
	// LabelFont while a galaxy has no viewport yet.
	DisplayRadius float64
	// Launcher opens files when a star is activated. Defaults to an
	// ExecLauncher.
	Launcher Launcher
	// Rand places stars. Defaults to a randomly seeded PCG source.
	Rand *rand.Rand

	// RotationSpeed in degrees per frame. Zero means DefaultRotationSpeed.
	RotationSpeed float64
	// StarScale multiplies every star's radius. Zero means 1.
	StarScale float64
	// SectorMargin in degrees. Zero means DefaultSectorMargin.
	SectorMargin float64
}

// withDefaults returns a copy of o with nil or zero fields filled in.
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Measurer == nil {
		o.Measurer = DefaultCellMeasurer()
	}
	if o.Launcher == nil {
		o.Launcher = &ExecLauncher{Logger: o.Logger}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.RotationSpeed == 0 {
		o.RotationSpeed = DefaultRotationSpeed
	}
	if o.StarScale <= 0 {
		o.StarScale = 1
	}
	if o.SectorMargin == 0 {
		o.SectorMargin = DefaultSectorMargin
	}
	return o
}

// Entity is anything placed in a galaxy's local frame: the galaxy itself,
// its sectors and its stars. Coordinates are galaxy units, Y up, with the
// galaxy's rotation removed.
type Entity interface {
	// Position is the entity's anchor point.
	Position() Vec2
	// Size is the entity's characteristic extent: diameter for galaxies and
	// stars, arc width in degrees for sectors.
	Size() float64
	// HitTest reports whether the galaxy-local point (x, y) lies on the
	// entity.
	HitTest(x, y float64) bool
}

var (
	_ Entity = (*Galaxy)(nil)
	_ Entity = (*Sector)(nil)
	_ Entity = (*Star)(nil)
)
