package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/game"
	"github.com/pthm-cable/lilypad/systems"
)

// LetterboxColor fills the viewport outside the world.
var LetterboxColor = rl.NewColor(20, 24, 32, 255)

// Scene composes the renderers in draw order.
type Scene struct {
	cam        *camera.Camera
	background *BackgroundRenderer
	platforms  *PlatformRenderer
	blob       *BlobRenderer
	flowers    *FlowerRenderer
}

// NewScene creates a scene drawing through cam.
func NewScene(cam *camera.Camera, shape *systems.BlobShape) *Scene {
	return &Scene{
		cam:        cam,
		background: NewBackgroundRenderer(cam),
		platforms:  NewPlatformRenderer(cam),
		blob:       NewBlobRenderer(cam, shape),
		flowers:    NewFlowerRenderer(cam),
	}
}

// Draw renders one frame. Call between rl.BeginDrawing and rl.EndDrawing.
func (s *Scene) Draw(snap *game.Snapshot) {
	rl.ClearBackground(LetterboxColor)

	x, y, w, h := s.cam.WorldRect()
	rl.BeginScissorMode(int32(x), int32(y), int32(w), int32(h))

	s.background.Draw()
	s.background.DrawClouds(snap.Clouds)
	s.platforms.Draw(snap.Platforms)
	s.blob.Draw(snap.Actor)
	s.flowers.Draw(snap.Blooms)

	rl.EndScissorMode()
}
