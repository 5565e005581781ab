package components

// ActorTuning holds the movement constants of the actor.
type ActorTuning struct {
	Accel          float64 // added to vx per tick of held input
	MaxRun         float64 // |vx| limit
	Gravity        float64 // added to vy per tick
	JumpImpulse    float64 // vy on jump (negative = up)
	FrictionAir    float64 // vx multiplier while airborne
	FrictionGround float64 // vx multiplier while grounded
	MaxFall        float64 // vy upper bound
	PhaseSpeed     float64 // animation phase advance per tick
}

// Actor is the single controllable body. Pos is the centre of its circle.
type Actor struct {
	Pos      Position
	Vel      Velocity
	Radius   float64
	OnGround bool

	// Phase drives the breathing/wobble animation; it has no physical effect.
	Phase float64

	Tuning ActorTuning
}

// Box returns the collision box: the circle's bounding square.
func (a *Actor) Box() Rect {
	return Rect{
		X: a.Pos.X - a.Radius,
		Y: a.Pos.Y - a.Radius,
		W: a.Radius * 2,
		H: a.Radius * 2,
	}
}
