// Package systems contains the per-tick simulation systems.
package systems

import (
	"math"

	"github.com/pthm-cable/lilypad/components"
)

const (
	// landingDamping scales vy when the actor lands on a platform.
	landingDamping = 0.2
	// restThreshold is the |vy| below which a landing comes to rest.
	restThreshold = 0.5
)

// Bounds represents the world extent.
type Bounds struct {
	Width, Height float64
}

// PhysicsSystem integrates the actor and resolves it against the platforms.
type PhysicsSystem struct {
	platforms *PlatformSet
	bounds    Bounds
}

// NewPhysicsSystem creates a physics system over a fixed platform set.
func NewPhysicsSystem(platforms *PlatformSet, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		platforms: platforms,
		bounds:    bounds,
	}
}

// Update advances the actor by one tick and reports whether it jumped.
// The horizontal pass must finish before the vertical pass starts: both share
// the same box and landing depends on the corrected x.
func (s *PhysicsSystem) Update(a *components.Actor, in components.Input) bool {
	t := &a.Tuning

	// Horizontal intent
	a.Vel.X += t.Accel * in.Move()

	// Friction and run clamp
	if a.OnGround {
		a.Vel.X *= t.FrictionGround
	} else {
		a.Vel.X *= t.FrictionAir
	}
	a.Vel.X = clamp(a.Vel.X, -t.MaxRun, t.MaxRun)

	// Gravity, capped downward only
	a.Vel.Y += t.Gravity
	if a.Vel.Y > t.MaxFall {
		a.Vel.Y = t.MaxFall
	}

	box := a.Box()
	s.resolveX(&box, &a.Vel.X)
	a.OnGround = s.resolveY(&box, &a.Vel.Y)

	// Write back, keeping the whole circle inside the world horizontally
	c := box.Center()
	a.Pos.X = clamp(c.X, a.Radius, s.bounds.Width-a.Radius)
	a.Pos.Y = c.Y

	jumped := in.Jump && Jump(a)

	a.Phase += t.PhaseSpeed
	return jumped
}

// Jump applies the jump impulse if the actor is grounded.
// It reports whether the jump happened.
func Jump(a *components.Actor) bool {
	if !a.OnGround {
		return false
	}
	a.Vel.Y = a.Tuning.JumpImpulse
	a.OnGround = false
	return true
}

// resolveX moves the box by vx and pushes it out of the first platform it
// hits, in collection order. That hit zeroes vx, so later overlaps only
// re-zero it and the box may be left overlapping them.
func (s *PhysicsSystem) resolveX(box *components.Rect, vx *float64) {
	box.X += *vx
	for i := 0; i < s.platforms.Len(); i++ {
		p := s.platforms.At(i)
		if !Overlaps(*box, p.Rect) {
			continue
		}
		if *vx > 0 {
			box.X = p.X - box.W
		} else if *vx < 0 {
			box.X = p.X + p.W
		}
		*vx = 0
	}
}

// resolveY moves the box by vy and lands it on, or bumps it under, the
// platforms it hits in collection order. A later overlap snaps the box
// again only while vy is still nonzero: a landing that leaves |vy| at or
// above the rest threshold lets the next landing win. It returns the new
// ground-contact flag.
func (s *PhysicsSystem) resolveY(box *components.Rect, vy *float64) bool {
	onGround := false
	box.Y += *vy
	for i := 0; i < s.platforms.Len(); i++ {
		p := s.platforms.At(i)
		if !Overlaps(*box, p.Rect) {
			continue
		}
		if *vy > 0 {
			box.Y = p.Y - box.H
			*vy *= landingDamping
			if math.Abs(*vy) < restThreshold {
				*vy = 0
			}
			onGround = true
		} else if *vy < 0 {
			box.Y = p.Y + p.H
			*vy = 0
		}
	}
	return onGround
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
