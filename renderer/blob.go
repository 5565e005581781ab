package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/game"
	"github.com/pthm-cable/lilypad/systems"
)

// BlobColor is the pastel purple of the actor.
var BlobColor = rl.NewColor(200, 180, 240, 255)

// BlobRenderer draws the actor as a breathing, wobbling polygon.
type BlobRenderer struct {
	cam   *camera.Camera
	shape *systems.BlobShape

	// Reused between frames
	outline []components.Position
	fan     []rl.Vector2
}

// NewBlobRenderer creates a new blob renderer.
func NewBlobRenderer(cam *camera.Camera, shape *systems.BlobShape) *BlobRenderer {
	return &BlobRenderer{
		cam:     cam,
		shape:   shape,
		outline: make([]components.Position, 0, shape.Points()),
		fan:     make([]rl.Vector2, 0, shape.Points()+2),
	}
}

// Draw renders the actor.
func (r *BlobRenderer) Draw(a game.ActorView) {
	r.outline = r.shape.Outline(r.outline[:0], a.X, a.Y, a.Radius, a.Phase)

	// Fan from the centre; raylib wants counter-clockwise on screen, which is
	// decreasing angle with y pointing down.
	cx, cy := r.cam.WorldToScreen(float32(a.X), float32(a.Y))
	r.fan = append(r.fan[:0], rl.NewVector2(cx, cy))
	for i := len(r.outline) - 1; i >= 0; i-- {
		r.fan = append(r.fan, r.toScreen(r.outline[i]))
	}
	r.fan = append(r.fan, r.toScreen(r.outline[len(r.outline)-1]))

	rl.DrawTriangleFan(r.fan, BlobColor)
}

func (r *BlobRenderer) toScreen(p components.Position) rl.Vector2 {
	x, y := r.cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.NewVector2(x, y)
}
