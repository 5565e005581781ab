package systems

import "github.com/pthm-cable/lilypad/components"

// RandSource is a uniform random source in [0, 1).
// *rand.Rand satisfies it; tests inject a seeded one.
type RandSource interface {
	Float64() float64
}

// uniform returns a value uniformly distributed in [lo, hi).
func uniform(rng RandSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// ParticleConfig holds the burst shape and fade parameters.
type ParticleConfig struct {
	StartAlpha float64 // alpha of a fresh particle
	FadeStep   float64 // alpha lost per tick
	Jitter     float64 // spawn offset range is [-Jitter, Jitter] on both axes
	DriftX     float64 // vx range is [-DriftX, DriftX]
	RiseMin    float64 // vy range is [RiseMin, RiseMax], both negative (upward)
	RiseMax    float64
}

// DefaultParticleConfig returns the reference burst parameters.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		StartAlpha: 255,
		FadeStep:   1.5,
		Jitter:     5,
		DriftX:     0.15,
		RiseMin:    -0.5,
		RiseMax:    -0.2,
	}
}

// ParticleSystem spawns and ages bloom motes. It holds no particles itself;
// every collection belongs to its BloomState.
type ParticleSystem struct {
	cfg ParticleConfig
	rng RandSource
}

// NewParticleSystem creates a particle system drawing jitter from rng.
func NewParticleSystem(cfg ParticleConfig, rng RandSource) *ParticleSystem {
	return &ParticleSystem{cfg: cfg, rng: rng}
}

// Spawn appends count fresh particles around anchor.
func (s *ParticleSystem) Spawn(ps []components.Particle, anchor components.Position, count int) []components.Particle {
	for i := 0; i < count; i++ {
		ps = append(ps, components.Particle{
			X:     anchor.X + uniform(s.rng, -s.cfg.Jitter, s.cfg.Jitter),
			Y:     anchor.Y + uniform(s.rng, -s.cfg.Jitter, s.cfg.Jitter),
			VX:    uniform(s.rng, -s.cfg.DriftX, s.cfg.DriftX),
			VY:    uniform(s.rng, s.cfg.RiseMin, s.cfg.RiseMax),
			Alpha: s.cfg.StartAlpha,
		})
	}
	return ps
}

// Update moves and fades every particle, then keeps only those still visible.
// The returned slice shares the input's backing array.
func (s *ParticleSystem) Update(ps []components.Particle) []components.Particle {
	alive := 0
	for i := range ps {
		p := &ps[i]
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= s.cfg.FadeStep
		if p.Alpha <= 0 {
			continue
		}
		ps[alive] = *p
		alive++
	}
	return ps[:alive]
}

// Lifetime returns the number of ticks a fresh particle stays alive.
func (s *ParticleSystem) Lifetime() int {
	if s.cfg.FadeStep <= 0 {
		return 0
	}
	n := int(s.cfg.StartAlpha / s.cfg.FadeStep)
	if float64(n)*s.cfg.FadeStep < s.cfg.StartAlpha {
		n++
	}
	return n
}
