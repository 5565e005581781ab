package game

import (
	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/scenery"
)

// ActorView is the actor pose a renderer needs.
type ActorView struct {
	X, Y     float64
	Radius   float64
	Phase    float64
	OnGround bool
}

// BloomView is one flower as seen by a renderer.
type BloomView struct {
	Anchor    components.Position
	Level     float64
	Bloomed   bool
	Particles []components.Particle
}

// Snapshot is a read-only copy of everything drawn in a frame.
type Snapshot struct {
	Tick          int64
	Width, Height float64
	Actor         ActorView
	Platforms     []components.Platform
	Blooms        []BloomView
	Clouds        []scenery.CloudView
}

// Snapshot returns a fresh copy of the drawable state.
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	g.SnapshotInto(&s)
	return s
}

// SnapshotInto fills s, reusing its slices. Drivers call it every frame.
func (g *Game) SnapshotInto(s *Snapshot) {
	s.Tick = g.tick
	s.Width = g.cfg.World.Width
	s.Height = g.cfg.World.Height
	s.Actor = ActorView{
		X:        g.actor.Pos.X,
		Y:        g.actor.Pos.Y,
		Radius:   g.actor.Radius,
		Phase:    g.actor.Phase,
		OnGround: g.actor.OnGround,
	}

	s.Platforms = s.Platforms[:0]
	for i := 0; i < g.platforms.Len(); i++ {
		s.Platforms = append(s.Platforms, g.platforms.At(i))
	}

	if cap(s.Blooms) < len(g.blooms) {
		s.Blooms = make([]BloomView, len(g.blooms))
	}
	s.Blooms = s.Blooms[:len(g.blooms)]
	for i := range g.blooms {
		b := &g.blooms[i]
		v := &s.Blooms[i]
		v.Anchor = b.Anchor
		v.Level = b.Level
		v.Bloomed = b.Triggered()
		v.Particles = append(v.Particles[:0], b.Particles...)
	}

	s.Clouds = s.Clouds[:0]
	if g.sky != nil {
		s.Clouds = g.sky.Clouds(s.Clouds)
	}
}
