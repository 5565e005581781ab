package telemetry

// TickSample is the per-tick observation fed to the Collector.
type TickSample struct {
	OnGround      bool
	Jumped        bool
	Speed         float64 // |velocity|
	LiveParticles int
}

// Collector accumulates tick samples within windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Counters for current window
	ticks            int
	groundedTicks    int
	jumps            int
	bursts           int
	liveParticlesMax int
	speeds           []float64
}

// NewCollector creates a new stats collector.
// windowTicks: ticks per stats window
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: int64(windowTicks),
		dt:                  dt,
		speeds:              make([]float64, 0, windowTicks),
	}
}

// Record adds one tick's observation.
func (c *Collector) Record(s TickSample) {
	c.ticks++
	if s.OnGround {
		c.groundedTicks++
	}
	if s.Jumped {
		c.jumps++
	}
	if s.LiveParticles > c.liveParticlesMax {
		c.liveParticlesMax = s.LiveParticles
	}
	c.speeds = append(c.speeds, s.Speed)
}

// RecordBurst records a flower reaching full bloom.
func (c *Collector) RecordBurst() {
	c.bursts++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Pending reports whether ticks have been recorded since the last flush.
func (c *Collector) Pending(currentTick int64) bool {
	return currentTick > c.windowStartTick
}

// Flush produces a WindowStats and resets counters for the next window.
// bloomed is the number of flowers fully bloomed at currentTick.
func (c *Collector) Flush(currentTick int64, bloomed int) WindowStats {
	var groundedFrac float64
	if c.ticks > 0 {
		groundedFrac = float64(c.groundedTicks) / float64(c.ticks)
	}
	mean, std, p50, p90 := Summarize(c.speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		GroundedFrac: groundedFrac,
		Jumps:        c.jumps,
		SpeedMean:    mean,
		SpeedStd:     std,
		SpeedP50:     p50,
		SpeedP90:     p90,

		Bursts:           c.bursts,
		Bloomed:          bloomed,
		LiveParticlesMax: c.liveParticlesMax,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.ticks = 0
	c.groundedTicks = 0
	c.jumps = 0
	c.bursts = 0
	c.liveParticlesMax = 0
	c.speeds = c.speeds[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
