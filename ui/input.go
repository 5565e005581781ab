package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/components"
)

// Key bindings.
var (
	leftKeys  = []int32{rl.KeyA, rl.KeyLeft}
	rightKeys = []int32{rl.KeyD, rl.KeyRight}
	jumpKeys  = []int32{rl.KeySpace, rl.KeyW, rl.KeyUp}
	helpKey   = int32(rl.KeyH)
	tuningKey = int32(rl.KeyF1)
)

// PollInput reads the movement intent for this frame. Directions are held
// state; jump fires only on the frame its key goes down.
func PollInput() components.Input {
	return components.Input{
		Left:  anyDown(leftKeys),
		Right: anyDown(rightKeys),
		Jump:  anyPressed(jumpKeys),
	}
}

// Toggles holds overlay visibility switched by keys.
type Toggles struct {
	Help   bool
	Tuning bool
}

// Update flips overlays whose key was pressed this frame.
func (t *Toggles) Update() {
	if rl.IsKeyPressed(helpKey) {
		t.Help = !t.Help
	}
	if rl.IsKeyPressed(tuningKey) {
		t.Tuning = !t.Tuning
	}
}

func anyDown(keys []int32) bool {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func anyPressed(keys []int32) bool {
	for _, k := range keys {
		if rl.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
