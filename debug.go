package starnavi

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// debugLogInterval is the number of frames between frame stat reports.
const debugLogInterval = 300

// frameStats accumulates per-frame timing. It is reported at debug level
// every debugLogInterval frames and then reset.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	frames     int
}

// log reports and resets the stats once enough frames have been counted.
func (s *frameStats) log(log *zap.Logger, g *Galaxy) {
	if s.frames < debugLogInterval {
		return
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		stars := 0
		for _, sec := range g.Sectors() {
			stars += len(sec.Stars())
		}
		n := time.Duration(s.frames)
		log.Debug("frame stats",
			zap.Int("frames", s.frames),
			zap.Duration("update", s.updateTime/n),
			zap.Duration("draw", s.drawTime/n),
			zap.String("galaxy", g.Name()),
			zap.Int("sectors", len(g.Sectors())),
			zap.Int("stars", stars))
	}
	*s = frameStats{}
}
