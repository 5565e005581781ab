package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/game"
)

var (
	petalColor = rl.NewColor(255, 220, 235, 255)
	heartColor = rl.NewColor(255, 200, 120, 255)
	moteColor  = rl.NewColor(255, 255, 180, 255)
)

// moteRadius is the world-unit radius of a burst particle.
const moteRadius = 2

// FlowerRenderer draws flowers and their burst particles.
type FlowerRenderer struct {
	cam *camera.Camera
}

// NewFlowerRenderer creates a new flower renderer.
func NewFlowerRenderer(cam *camera.Camera) *FlowerRenderer {
	return &FlowerRenderer{cam: cam}
}

// Draw renders every flower scaled by its level, then its particles.
// Flowers that have not started blooming are invisible.
func (r *FlowerRenderer) Draw(blooms []game.BloomView) {
	z := r.cam.Zoom()
	for i := range blooms {
		b := &blooms[i]
		if b.Level <= 0 {
			continue
		}
		s := float32(b.Level)
		ax, ay := float32(b.Anchor.X), float32(b.Anchor.Y)

		r.circle(ax, ay, 10*s, z, petalColor)
		r.circle(ax-9*s, ay, 7*s, z, petalColor)
		r.circle(ax+9*s, ay, 7*s, z, petalColor)
		r.circle(ax, ay-9*s, 7*s, z, petalColor)
		r.circle(ax, ay+9*s, 7*s, z, petalColor)
		r.circle(ax, ay, 4*s, z, heartColor)

		for _, p := range b.Particles {
			c := moteColor
			c.A = uint8(min(p.Alpha, 255))
			r.circle(float32(p.X), float32(p.Y), moteRadius, z, c)
		}
	}
}

func (r *FlowerRenderer) circle(wx, wy, radius, zoom float32, c rl.Color) {
	x, y := r.cam.WorldToScreen(wx, wy)
	rl.DrawCircleV(rl.NewVector2(x, y), radius*zoom, c)
}
