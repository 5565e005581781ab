package game

import (
	"log/slog"

	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/telemetry"
)

// Step advances the simulation by one tick.
// Physics runs to completion before any flower reads the actor position, and
// particles spawned by a burst are advanced in the same tick.
func (g *Game) Step(in components.Input) {
	g.tick++
	g.lastInput = in
	g.perfCollector.StartTick()

	if !g.moved && in.Any() {
		g.moved = true
		slog.Info("first_move", "tick", g.tick)
		if g.onFirstMove != nil {
			g.onFirstMove()
		}
	}

	g.perfCollector.StartPhase(telemetry.PhasePhysics)
	jumped := g.physics.Update(&g.actor, in)

	g.perfCollector.StartPhase(telemetry.PhaseBloom)
	g.updateBlooms()

	g.perfCollector.StartPhase(telemetry.PhaseParticles)
	for i := range g.blooms {
		g.blooms[i].Particles = g.particles.Update(g.blooms[i].Particles)
	}

	if g.sky != nil {
		g.perfCollector.StartPhase(telemetry.PhaseScenery)
		g.sky.Update()
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordTick(in, jumped)
	g.perfCollector.EndTick()

	g.flushTelemetry()
}

// updateBlooms runs every flower's state machine against the actor and
// spawns the burst for each one that has just bloomed.
func (g *Game) updateBlooms() {
	g.lastGrew = false
	for i := range g.blooms {
		b := &g.blooms[i]
		before := b.Level

		ev, burst := g.bloom.Update(b, g.actor.Pos, g.actor.Radius)
		if b.Level != before {
			g.lastGrew = true
		}
		if !burst {
			continue
		}

		b.Particles = g.particles.Spawn(b.Particles, ev.Anchor, g.bloom.BurstCount())
		g.bloomedCount++
		if g.firstBloomTick < 0 {
			g.firstBloomTick = g.tick
		}
		if g.AllBloomed() {
			g.allBloomedTick = g.tick
		}
		g.recordBurst(i, ev)
	}
}
