// Package scenery holds decorative elements that drift independently of
// the simulation: they never collide and never affect the actor.
package scenery

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/config"
)

// Cloud is the ECS component for a drifting cloud.
type Cloud struct {
	Size  float64 // radius of the largest puff
	Speed float64 // world units per tick, rightward
}

// CloudView is a read-only copy of one cloud for renderers.
type CloudView struct {
	X, Y float64
	Size float64
}

// Sky owns the cloud world.
type Sky struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, Cloud]
	filter *ecs.Filter2[components.Position, Cloud]

	width float64
	count int
}

// NewSky scatters cfg.Clouds clouds across a width x height world.
func NewSky(cfg config.SceneryConfig, width, height float64, rng *rand.Rand) *Sky {
	world := ecs.NewWorld()
	s := &Sky{
		world:  world,
		mapper: ecs.NewMap2[components.Position, Cloud](world),
		filter: ecs.NewFilter2[components.Position, Cloud](world),
		width:  width,
	}

	for i := 0; i < cfg.Clouds; i++ {
		pos := components.Position{
			X: rng.Float64() * width,
			Y: height * between(rng, cfg.BandMin, cfg.BandMax),
		}
		cloud := Cloud{
			Size:  between(rng, cfg.SizeMin, cfg.SizeMax),
			Speed: between(rng, cfg.SpeedMin, cfg.SpeedMax),
		}
		s.mapper.NewEntity(&pos, &cloud)
		s.count++
	}
	return s
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Update drifts every cloud right and wraps it back to the left edge once it
// has fully left the world.
func (s *Sky) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, cloud := query.Get()
		pos.X += cloud.Speed
		if pos.X-cloud.Size > s.width {
			pos.X = -cloud.Size
		}
	}
}

// Clouds appends a view of every cloud to dst.
func (s *Sky) Clouds(dst []CloudView) []CloudView {
	query := s.filter.Query()
	for query.Next() {
		pos, cloud := query.Get()
		dst = append(dst, CloudView{X: pos.X, Y: pos.Y, Size: cloud.Size})
	}
	return dst
}

// Len returns the number of clouds.
func (s *Sky) Len() int {
	return s.count
}
