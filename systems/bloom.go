package systems

import (
	"math"

	"github.com/pthm-cable/lilypad/components"
)

// bloomEpsilon absorbs float drift when summing the level step.
const bloomEpsilon = 1e-9

// BloomConfig holds the flower interaction parameters.
type BloomConfig struct {
	Step          float64 // level gained per tick in range
	TriggerMargin float64 // added to the actor radius to form the trigger distance
	AnchorLift    float64 // anchor sits this far above the pad's top edge
	BurstCount    int     // particles released on full bloom
}

// DefaultBloomConfig returns the reference flower parameters.
func DefaultBloomConfig() BloomConfig {
	return BloomConfig{
		Step:          0.02,
		TriggerMargin: 14,
		AnchorLift:    5,
		BurstCount:    10,
	}
}

// BloomSystem advances flower state machines.
type BloomSystem struct {
	cfg BloomConfig
}

// NewBloomSystem creates a bloom system.
func NewBloomSystem(cfg BloomConfig) *BloomSystem {
	return &BloomSystem{cfg: cfg}
}

// NewBloomStates places one flower on each pad, centred on its top edge.
func (s *BloomSystem) NewBloomStates(platforms *PlatformSet) []components.BloomState {
	pads := platforms.Pads()
	blooms := make([]components.BloomState, 0, len(pads))
	for _, i := range pads {
		p := platforms.At(i)
		blooms = append(blooms, components.BloomState{
			Anchor:   components.Position{X: p.X + p.W/2, Y: p.Y - s.cfg.AnchorLift},
			Phase:    components.PhaseBlooming,
			Platform: i,
		})
	}
	return blooms
}

// Update grows b while the actor is within trigger range. Level never decays.
// The first time the level reaches 1 the flower becomes Bloomed and a burst is
// returned; every later call returns false.
func (s *BloomSystem) Update(b *components.BloomState, actor components.Position, actorRadius float64) (components.BurstEvent, bool) {
	if b.Phase == components.PhaseBloomed {
		return components.BurstEvent{}, false
	}

	d := math.Hypot(actor.X-b.Anchor.X, actor.Y-b.Anchor.Y)
	if d >= actorRadius+s.cfg.TriggerMargin {
		return components.BurstEvent{}, false
	}

	b.Level = math.Min(b.Level+s.cfg.Step, 1)
	if b.Level < 1-bloomEpsilon {
		return components.BurstEvent{}, false
	}

	b.Level = 1
	b.Phase = components.PhaseBloomed
	return components.BurstEvent{Anchor: b.Anchor}, true
}

// BurstCount returns the number of particles a burst releases.
func (s *BloomSystem) BurstCount() int {
	return s.cfg.BurstCount
}
