package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/telemetry"
)

// recordTick feeds the stats collector and samples the trace.
func (g *Game) recordTick(in components.Input, jumped bool) {
	live := g.LiveParticles()
	g.collector.Record(telemetry.TickSample{
		OnGround:      g.actor.OnGround,
		Jumped:        jumped,
		Speed:         math.Hypot(g.actor.Vel.X, g.actor.Vel.Y),
		LiveParticles: live,
	})

	if g.outputManager == nil || g.traceEvery <= 0 || g.tick%g.traceEvery != 0 {
		return
	}
	rec := telemetry.TraceRecord{
		Tick:      g.tick,
		X:         g.actor.Pos.X,
		Y:         g.actor.Pos.Y,
		VX:        g.actor.Vel.X,
		VY:        g.actor.Vel.Y,
		OnGround:  g.actor.OnGround,
		Move:      in.Move(),
		Jump:      in.Jump,
		Bloomed:   g.bloomedCount,
		Particles: live,
	}
	if err := g.outputManager.WriteTrace(rec); err != nil {
		slog.Error("failed to write trace", "error", err)
	}
}

// recordBurst logs a flower reaching full bloom.
func (g *Game) recordBurst(i int, ev components.BurstEvent) {
	g.collector.RecordBurst()
	slog.Info("bloom_burst",
		"tick", g.tick,
		"bloom", i,
		"x", ev.Anchor.X,
		"y", ev.Anchor.Y,
		"bloomed", g.bloomedCount,
	)
	if err := g.outputManager.WriteBurst(telemetry.BurstRecord{
		Tick:    g.tick,
		Bloom:   i,
		AnchorX: ev.Anchor.X,
		AnchorY: ev.Anchor.Y,
	}); err != nil {
		slog.Error("failed to write burst", "error", err)
	}
}

// flushTelemetry writes the stats window once it is complete.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}
	g.writeWindow()
}

func (g *Game) writeWindow() {
	stats := g.collector.Flush(g.tick, g.bloomedCount)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
