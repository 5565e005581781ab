package telemetry

import (
	"math"
	"testing"
)

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(4, 1.0/60)

	c.Record(TickSample{OnGround: true, Speed: 1, LiveParticles: 0})
	c.Record(TickSample{OnGround: true, Jumped: true, Speed: 2, LiveParticles: 10})
	c.RecordBurst()
	c.Record(TickSample{OnGround: false, Speed: 3, LiveParticles: 7})
	c.Record(TickSample{OnGround: false, Speed: 4, LiveParticles: 3})

	if c.ShouldFlush(3) {
		t.Error("ShouldFlush(3) = true, want false before the window ends")
	}
	if !c.ShouldFlush(4) {
		t.Fatal("ShouldFlush(4) = false, want true")
	}

	s := c.Flush(4, 1)

	if s.WindowStartTick != 0 || s.WindowEndTick != 4 {
		t.Errorf("window = [%d, %d], want [0, 4]", s.WindowStartTick, s.WindowEndTick)
	}
	if math.Abs(s.SimTimeSec-4.0/60) > 1e-9 {
		t.Errorf("SimTimeSec = %v, want %v", s.SimTimeSec, 4.0/60)
	}
	if s.GroundedFrac != 0.5 {
		t.Errorf("GroundedFrac = %v, want 0.5", s.GroundedFrac)
	}
	if s.Jumps != 1 || s.Bursts != 1 || s.Bloomed != 1 {
		t.Errorf("jumps/bursts/bloomed = %d/%d/%d, want 1/1/1", s.Jumps, s.Bursts, s.Bloomed)
	}
	if s.LiveParticlesMax != 10 {
		t.Errorf("LiveParticlesMax = %d, want 10", s.LiveParticlesMax)
	}
	if math.Abs(s.SpeedMean-2.5) > 1e-9 {
		t.Errorf("SpeedMean = %v, want 2.5", s.SpeedMean)
	}
}

func TestCollectorResetsAfterFlush(t *testing.T) {
	c := NewCollector(2, 1)
	c.Record(TickSample{OnGround: true, Jumped: true, Speed: 5, LiveParticles: 4})
	c.RecordBurst()
	c.Flush(2, 0)

	if c.ShouldFlush(3) {
		t.Error("ShouldFlush(3) = true right after a flush at 2")
	}

	s := c.Flush(4, 0)
	if s.WindowStartTick != 2 {
		t.Errorf("WindowStartTick = %d, want 2", s.WindowStartTick)
	}
	if s.Jumps != 0 || s.Bursts != 0 || s.LiveParticlesMax != 0 || s.SpeedMean != 0 || s.GroundedFrac != 0 {
		t.Errorf("counters not reset: %+v", s)
	}
}

func TestNewCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 1)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("WindowDurationTicks() = %d, want 1", c.WindowDurationTicks())
	}
}
