// Package terminal runs the game in a text terminal through tcell.
package terminal

import "github.com/pthm-cable/lilypad/components"

// HoldLatch turns key-press events into held input. Terminals report
// presses and auto-repeats but no releases, so a direction stays held for
// a fixed number of ticks after its last event.
type HoldLatch struct {
	hold  int
	left  int
	right int
	jump  bool
}

// NewHoldLatch creates a latch that holds directions for hold ticks.
func NewHoldLatch(hold int) *HoldLatch {
	if hold < 1 {
		hold = 1
	}
	return &HoldLatch{hold: hold}
}

// PressLeft holds left and releases right.
func (l *HoldLatch) PressLeft() {
	l.left = l.hold
	l.right = 0
}

// PressRight holds right and releases left.
func (l *HoldLatch) PressRight() {
	l.right = l.hold
	l.left = 0
}

// PressJump queues a jump for the next tick.
func (l *HoldLatch) PressJump() {
	l.jump = true
}

// Release drops every held direction and any queued jump.
func (l *HoldLatch) Release() {
	*l = HoldLatch{hold: l.hold}
}

// Next returns the input for one tick and ages the latch.
func (l *HoldLatch) Next() components.Input {
	in := components.Input{
		Left:  l.left > 0,
		Right: l.right > 0,
		Jump:  l.jump,
	}
	if l.left > 0 {
		l.left--
	}
	if l.right > 0 {
		l.right--
	}
	l.jump = false
	return in
}
