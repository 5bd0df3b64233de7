package starnavi

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFrameStatsLogsEveryInterval(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	g := letterGalaxy(t)

	var s frameStats
	for i := 0; i < debugLogInterval-1; i++ {
		s.frames++
		s.updateTime += time.Millisecond
		s.drawTime += 2 * time.Millisecond
		s.log(log, g)
	}
	if logs.Len() != 0 {
		t.Fatalf("logged after %d frames", s.frames)
	}

	s.frames++
	s.updateTime += time.Millisecond
	s.drawTime += 2 * time.Millisecond
	s.log(log, g)

	entries := logs.FilterMessage("frame stats").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["frames"] != int64(debugLogInterval) {
		t.Errorf("frames = %v", fields["frames"])
	}
	if fields["update"] != time.Millisecond || fields["draw"] != 2*time.Millisecond {
		t.Errorf("averages = %v / %v", fields["update"], fields["draw"])
	}
	if fields["sectors"] != int64(4) || fields["stars"] != int64(4) {
		t.Errorf("sectors = %v, stars = %v", fields["sectors"], fields["stars"])
	}
	if s != (frameStats{}) {
		t.Errorf("stats not reset: %+v", s)
	}
}

func TestFrameStatsResetsWhenDebugDisabled(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := frameStats{frames: debugLogInterval, drawTime: time.Second}
	s.log(zap.New(core), letterGalaxy(t))
	if logs.Len() != 0 {
		t.Error("nothing should be logged at info level")
	}
	if s.frames != 0 || s.drawTime != 0 {
		t.Errorf("stats not reset: %+v", s)
	}
}
