package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/components"
)

// LilypadColor is the soft green of floating pads.
var LilypadColor = rl.NewColor(120, 200, 140, 220)

// PlatformRenderer draws the level geometry.
type PlatformRenderer struct {
	cam *camera.Camera
}

// NewPlatformRenderer creates a new platform renderer.
func NewPlatformRenderer(cam *camera.Camera) *PlatformRenderer {
	return &PlatformRenderer{cam: cam}
}

// Draw renders ground as a rounded rectangle and pads as ellipses.
func (r *PlatformRenderer) Draw(platforms []components.Platform) {
	z := r.cam.Zoom()
	for _, p := range platforms {
		x, y := r.cam.WorldToScreen(float32(p.X), float32(p.Y))
		w, h := float32(p.W)*z, float32(p.H)*z

		switch p.Kind {
		case components.KindGround:
			// 8 world units of corner radius
			roundness := 16 * z / min(w, h)
			rl.DrawRectangleRounded(rl.NewRectangle(x, y, w, h), min(roundness, 1), 8, Sand)
		case components.KindPad:
			rl.DrawEllipse(int32(x+w/2), int32(y+h/2), w/2, h/2, LilypadColor)
		}
	}
}
