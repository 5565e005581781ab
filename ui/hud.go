package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/game"
)

// ControlsText is the one-line key legend.
const ControlsText = "Move: A/D or ←/→  •  Jump: Space/W/↑  •  Land on platforms"

// HUD renders the key legend and the bloom counter.
type HUD struct {
	renderer *Renderer
	font     rl.Font
}

// NewHUD creates a new HUD renderer drawing the legend in font. Glyphs the
// font lacks, such as the arrows in raylib's default font, draw as '?'.
func NewHUD(font rl.Font) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		font:     font,
	}
}

// Draw renders the HUD at the top-left of the world area.
func (h *HUD) Draw(x, y int32, snap *game.Snapshot, fps int32) {
	t := h.renderer.Theme
	rl.DrawTextEx(h.font, ControlsText, rl.NewVector2(float32(x+10), float32(y+8)), float32(t.FontSize), 1, t.HUDText)

	bloomed := 0
	for i := range snap.Blooms {
		if snap.Blooms[i].Bloomed {
			bloomed++
		}
	}
	status := fmt.Sprintf("Flowers %d/%d   FPS %d   [H] help  [F1] tuning", bloomed, len(snap.Blooms), fps)
	rl.DrawText(status, x+10, y+8+t.LineHeight, t.FontSize-2, t.HUDText)
}

// HelpOverlay shows the controls and per-flower progress.
type HelpOverlay struct {
	renderer *Renderer
	width    int32
}

// NewHelpOverlay creates a help overlay.
func NewHelpOverlay(width int32) *HelpOverlay {
	return &HelpOverlay{renderer: NewRenderer(), width: width}
}

// Draw renders the overlay centred in the screen.
func (o *HelpOverlay) Draw(screenW, screenH int32, snap *game.Snapshot) {
	r := o.renderer
	pad := r.Theme.Padding

	lines := []struct{ label, value string }{
		{"Move", "A / D or Left / Right"},
		{"Jump", "Space, W or Up (on the ground)"},
		{"Help", "H"},
		{"Tuning", "F1"},
	}
	height := pad*2 + r.Theme.HeaderFontSize + 6 +
		int32(len(lines))*r.Theme.LineHeight + 8 +
		r.Theme.HeaderFontSize + 6 + int32(len(snap.Blooms))*r.Theme.LineHeight

	x := (screenW - o.width) / 2
	y := (screenH - height) / 2
	r.DrawPanel(x, y, o.width, height)

	cy := y + pad
	cy = r.DrawSectionHeader(x+pad, cy, "Controls")
	for _, l := range lines {
		cy = r.DrawLabelValue(x+pad, cy, l.label, l.value)
	}
	cy += 8

	cy = r.DrawSectionHeader(x+pad, cy, "Flowers")
	for i := range snap.Blooms {
		b := &snap.Blooms[i]
		cy = r.DrawBar(x+pad, cy, fmt.Sprintf("Lilypad %d", i+1), float32(b.Level), o.width-pad*2)
	}
}
