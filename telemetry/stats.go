package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Movement
	GroundedFrac float64 `csv:"grounded_frac"`
	Jumps        int     `csv:"jumps"`
	SpeedMean    float64 `csv:"speed_mean"`
	SpeedStd     float64 `csv:"speed_std"`
	SpeedP50     float64 `csv:"speed_p50"`
	SpeedP90     float64 `csv:"speed_p90"`

	// Flowers
	Bursts           int `csv:"bursts"`
	Bloomed          int `csv:"bloomed"`
	LiveParticlesMax int `csv:"live_particles_max"`
}

// Summarize returns mean, standard deviation and the 50th and 90th
// percentiles of values. It returns zeros for an empty slice.
func Summarize(values []float64) (mean, std, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std = stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("grounded_frac", s.GroundedFrac),
		slog.Int("jumps", s.Jumps),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Int("bursts", s.Bursts),
		slog.Int("bloomed", s.Bloomed),
		slog.Int("live_particles_max", s.LiveParticlesMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"grounded_frac", s.GroundedFrac,
		"jumps", s.Jumps,
		"speed_mean", s.SpeedMean,
		"speed_p90", s.SpeedP90,
		"bursts", s.Bursts,
		"bloomed", s.Bloomed,
	)
}
