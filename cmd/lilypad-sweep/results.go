package main

import (
	"log/slog"

	"github.com/pthm-cable/lilypad/telemetry"
)

// SeedResult is one row of sweep.csv.
type SeedResult struct {
	Seed           int64  `csv:"seed"`
	Ticks          int64  `csv:"ticks"`
	Bloomed        int    `csv:"bloomed"`
	Flowers        int    `csv:"flowers"`
	FirstBloomTick int64  `csv:"first_bloom_tick"`
	AllBloomedTick int64  `csv:"all_bloomed_tick"`
	Reason         string `csv:"reason"`
}

// Summary aggregates a sweep. Tick statistics cover only the runs that
// reached the event.
type Summary struct {
	Runs           int     `csv:"runs"`
	AnyBloomed     int     `csv:"any_bloomed"`
	AllBloomed     int     `csv:"all_bloomed"`
	BloomedMean    float64 `csv:"bloomed_mean"`
	FirstBloomMean float64 `csv:"first_bloom_mean"`
	FirstBloomStd  float64 `csv:"first_bloom_std"`
	FirstBloomP50  float64 `csv:"first_bloom_p50"`
	FirstBloomP90  float64 `csv:"first_bloom_p90"`
	AllBloomedMean float64 `csv:"all_bloomed_mean"`
	AllBloomedStd  float64 `csv:"all_bloomed_std"`
	AllBloomedP50  float64 `csv:"all_bloomed_p50"`
	AllBloomedP90  float64 `csv:"all_bloomed_p90"`
}

func summarize(rows []SeedResult) Summary {
	s := Summary{Runs: len(rows)}
	var first, all []float64
	var bloomed float64
	for _, r := range rows {
		bloomed += float64(r.Bloomed)
		if r.FirstBloomTick >= 0 {
			first = append(first, float64(r.FirstBloomTick))
		}
		if r.AllBloomedTick >= 0 {
			all = append(all, float64(r.AllBloomedTick))
		}
	}
	if len(rows) > 0 {
		s.BloomedMean = bloomed / float64(len(rows))
	}
	s.AnyBloomed = len(first)
	s.AllBloomed = len(all)
	s.FirstBloomMean, s.FirstBloomStd, s.FirstBloomP50, s.FirstBloomP90 = telemetry.Summarize(first)
	s.AllBloomedMean, s.AllBloomedStd, s.AllBloomedP50, s.AllBloomedP90 = telemetry.Summarize(all)
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("runs", s.Runs),
		slog.Int("any_bloomed", s.AnyBloomed),
		slog.Int("all_bloomed", s.AllBloomed),
		slog.Float64("bloomed_mean", s.BloomedMean),
		slog.Float64("first_bloom_p50", s.FirstBloomP50),
		slog.Float64("first_bloom_p90", s.FirstBloomP90),
		slog.Float64("all_bloomed_p50", s.AllBloomedP50),
		slog.Float64("all_bloomed_p90", s.AllBloomedP90),
	)
}
