// Package telemetry collects timing, gameplay statistics and CSV output.
package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one timed section of a simulation tick.
type Phase uint8

// Tick phases in pipeline order.
const (
	PhasePhysics Phase = iota
	PhaseBloom
	PhaseParticles
	PhaseScenery
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"physics", "bloom", "particles", "scenery", "telemetry"}

// String returns the phase's log name.
func (p Phase) String() string {
	if p < numPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// noPhase marks that no phase is open.
const noPhase = numPhases

// tickSample is the timing of one tick.
type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times ticks and their phases over a ring of recent ticks.
// It does not allocate per tick.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	cur        tickSample
	tickStart  time.Time
	phaseStart time.Time
	open       Phase

	lastFrame time.Time
	frame     time.Duration

	scratch []float64
}

// NewPerfCollector creates a collector averaging over the last windowSize
// ticks (60 when windowSize < 1).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		ring:    make([]tickSample, windowSize),
		open:    noPhase,
		scratch: make([]float64, 0, windowSize),
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.cur = tickSample{}
	p.open = noPhase
}

// StartPhase closes the open phase, if any, and opens phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.open = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.open < numPhases {
		p.cur.phases[p.open] += now.Sub(p.phaseStart)
	}
	p.open = noPhase
}

// EndTick closes the tick and stores its sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.cur.total = now.Sub(p.tickStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
}

// RecordFrame marks a presented frame. Drivers call it once per frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarizes the collector's window.
type PerfStats struct {
	AvgTick time.Duration
	P50Tick time.Duration
	P90Tick time.Duration
	MaxTick time.Duration

	// PhasePct is each phase's share of the average tick, in percent.
	PhasePct [numPhases]float64

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats summarizes the ticks currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frame}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	var phaseSum [numPhases]time.Duration
	p.scratch = p.scratch[:0]
	for _, smp := range p.ring[:p.count] {
		p.scratch = append(p.scratch, float64(smp.total))
		s.MaxTick = max(s.MaxTick, smp.total)
		for i, d := range smp.phases {
			phaseSum[i] += d
		}
	}

	mean, _, p50, p90 := Summarize(p.scratch)
	s.AvgTick = time.Duration(mean)
	s.P50Tick = time.Duration(p50)
	s.P90Tick = time.Duration(p90)

	if s.AvgTick > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
		n := float64(p.count)
		for i, sum := range phaseSum {
			s.PhasePct[i] = float64(sum) / n / float64(s.AvgTick) * 100
		}
	}
	return s
}

// LogStats logs the summary, skipping phases under 0.1%.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTick.Microseconds(),
		"p90_tick_us", s.P90Tick.Microseconds(),
		"max_tick_us", s.MaxTick.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for i, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, Phase(i).String()+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("p50_tick_us", s.P50Tick.Microseconds()),
		slog.Int64("p90_tick_us", s.P90Tick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for i, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(Phase(i).String()+"_pct", pct))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int64   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	P50TickUS    int64   `csv:"p50_tick_us"`
	P90TickUS    int64   `csv:"p90_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	PhysicsPct   float64 `csv:"physics_pct"`
	BloomPct     float64 `csv:"bloom_pct"`
	ParticlesPct float64 `csv:"particles_pct"`
	SceneryPct   float64 `csv:"scenery_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTick.Microseconds(),
		P50TickUS:    s.P50Tick.Microseconds(),
		P90TickUS:    s.P90Tick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		PhysicsPct:   s.PhasePct[PhasePhysics],
		BloomPct:     s.PhasePct[PhaseBloom],
		ParticlesPct: s.PhasePct[PhaseParticles],
		SceneryPct:   s.PhasePct[PhaseScenery],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
