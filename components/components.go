// Package components defines the plain data types shared by the simulation.
package components

// Input is the movement intent for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool // edge event: set only on the tick the key went down
}

// Move returns the signed horizontal intent in {-1, 0, +1}.
func (in Input) Move() float64 {
	move := 0.0
	if in.Left {
		move--
	}
	if in.Right {
		move++
	}
	return move
}

// Any reports whether any intent is set.
func (in Input) Any() bool {
	return in.Left || in.Right || in.Jump
}
