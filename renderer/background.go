// Package renderer draws game snapshots with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/scenery"
)

// Beach palette.
var (
	SkyTop    = rl.NewColor(200, 230, 255, 255)
	SkyBottom = rl.NewColor(255, 245, 230, 255)
	Water     = rl.NewColor(180, 220, 255, 255)
	Sand      = rl.NewColor(245, 230, 180, 255)
	CloudTint = rl.NewColor(255, 255, 255, 250)
)

// Backdrop bands as fractions of world height.
const (
	skyEnd   = 0.35
	waterEnd = 0.85
)

// BackgroundRenderer draws the beach backdrop and the clouds.
type BackgroundRenderer struct {
	cam *camera.Camera
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(cam *camera.Camera) *BackgroundRenderer {
	return &BackgroundRenderer{cam: cam}
}

// Draw renders sky gradient, water and sand across the world area.
func (b *BackgroundRenderer) Draw() {
	x, y, w, h := b.cam.WorldRect()

	skyH := h * skyEnd
	waterH := h*waterEnd - skyH
	rl.DrawRectangleGradientV(int32(x), int32(y), int32(w), int32(skyH)+1, SkyTop, SkyBottom)
	rl.DrawRectangle(int32(x), int32(y+skyH), int32(w), int32(waterH)+1, Water)
	rl.DrawRectangle(int32(x), int32(y+h*waterEnd), int32(w), int32(h-h*waterEnd)+1, Sand)
}

// DrawClouds renders each cloud as three overlapping puffs.
func (b *BackgroundRenderer) DrawClouds(clouds []scenery.CloudView) {
	z := b.cam.Zoom()
	for _, c := range clouds {
		size := float32(c.Size)
		cx, cy := float32(c.X), float32(c.Y)
		puffs := [3][4]float32{
			// dx, dy, width, height (in cloud sizes / world units)
			{0, 0, 0.6, 0.4},
			{0.3 * size, 5, 0.5, 0.3},
			{-0.3 * size, 2, 0.4, 0.3},
		}
		for _, p := range puffs {
			sx, sy := b.cam.WorldToScreen(cx+p[0], cy+p[1])
			rl.DrawEllipse(int32(sx), int32(sy), size*p[2]/2*z, size*p[3]/2*z, CloudTint)
		}
	}
}
