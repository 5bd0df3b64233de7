package starnavi

import (
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"
)

// balanceSectors widens sectors that are too thin for their label or stars,
// taking the difference from the wider sectors, then re-derives the arc
// starts in the original order and re-places stars that fell outside their
// arc.
//
// Sectors are visited once, narrowest first. A sector below its need
// (minimum width plus margin) is grown to it, and the deficit is taken from
// every other sector in proportion to how far it is above its own need, so
// no donor drops below its need. When the needs sum past a full circle they
// are scaled down to fit and every sector ends at its scaled need.
//
// One sector is put in single-sector mode instead; zero sectors is a no-op.
func balanceSectors(sectors []*Sector, m LabelMeasurer, margin float64, rng *rand.Rand, log *zap.Logger) {
	switch len(sectors) {
	case 0:
		return
	case 1:
		sectors[0].single = true
		return
	}

	need := make(map[*Sector]float64, len(sectors))
	var sum float64
	for _, s := range sectors {
		need[s] = s.MinArcWidth(m) + margin
		sum += need[s]
	}
	if sum > 360 {
		log.Debug("sector needs exceed a full circle",
			zap.Int("sectors", len(sectors)), zap.Float64("needs", sum))
		for s := range need {
			need[s] *= 360 / sum
		}
	}

	sorted := slices.Clone(sectors)
	slices.SortStableFunc(sorted, func(a, b *Sector) int {
		switch {
		case a.arcWidth < b.arcWidth:
			return -1
		case a.arcWidth > b.arcWidth:
			return 1
		}
		return 0
	})

	for _, s := range sorted {
		deficit := need[s] - s.arcWidth
		if deficit <= 0 {
			continue
		}
		var surplus float64
		for _, d := range sectors {
			if d != s && d.arcWidth > need[d] {
				surplus += d.arcWidth - need[d]
			}
		}
		if surplus <= 0 {
			continue
		}
		deficit = min(deficit, surplus)
		for _, d := range sectors {
			if d != s && d.arcWidth > need[d] {
				d.arcWidth -= deficit * (d.arcWidth - need[d]) / surplus
			}
		}
		s.arcWidth += deficit
	}

	begin := 0.0
	for _, s := range sectors {
		if s.arcWidth < 0 {
			log.Error("negative sector width after balancing",
				zap.String("sector", s.name), zap.Float64("width", s.arcWidth))
			s.arcWidth = 0
		}
		s.arcBegin = begin
		begin += s.arcWidth
	}

	for _, s := range sectors {
		s.repositionStrays(rng)
	}
}
