package components

// BloomPhase is the state of a flower's bloom state machine.
type BloomPhase uint8

const (
	// PhaseBlooming accumulates level while the actor is in range.
	PhaseBlooming BloomPhase = iota
	// PhaseBloomed is terminal; Level is 1.
	PhaseBloomed
)

// String returns a readable phase name.
func (p BloomPhase) String() string {
	if p == PhaseBloomed {
		return "bloomed"
	}
	return "blooming"
}

// Particle is a fading mote released by a bloom burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
}

// BloomState tracks one pad's flower.
type BloomState struct {
	Anchor Position
	Level  float64
	Phase  BloomPhase

	// Platform is the index of the pad in the platform set.
	Platform int

	Particles []Particle
}

// Triggered reports whether the flower has fully bloomed.
func (b *BloomState) Triggered() bool {
	return b.Phase == PhaseBloomed
}

// BurstEvent is emitted once when a flower first reaches full bloom.
type BurstEvent struct {
	Anchor Position
}
