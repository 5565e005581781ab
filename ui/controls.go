package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/game"
)

// slider is one tunable field of the actor.
type slider struct {
	label    string
	min, max float32
	format   string
	get      func(*components.ActorTuning) *float64
}

var tuningSliders = []slider{
	{"Ground friction", 0.5, 1.0, "%.3f", func(t *components.ActorTuning) *float64 { return &t.FrictionGround }},
	{"Gravity", 0.05, 1.0, "%.2f", func(t *components.ActorTuning) *float64 { return &t.Gravity }},
	{"Jump impulse", -12, -1, "%.1f", func(t *components.ActorTuning) *float64 { return &t.JumpImpulse }},
	{"Max run", 0.2, 6, "%.2f", func(t *components.ActorTuning) *float64 { return &t.MaxRun }},
}

// TuningPanel edits the actor's movement constants live.
type TuningPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewTuningPanel creates a new tuning panel.
func NewTuningPanel(x, y, width int32) *TuningPanel {
	return &TuningPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the panel and returns the edited tuning and whether any
// control changed it this frame.
func (p *TuningPanel) Draw(current components.ActorTuning) (components.ActorTuning, bool) {
	r := p.renderer
	pad := r.Theme.Padding
	rowH := r.Theme.LineHeight + 24
	height := pad*2 + r.Theme.HeaderFontSize + 6 + int32(len(tuningSliders))*rowH + 34

	r.DrawPanel(p.x, p.y, p.width, height)

	px := float32(p.x + pad)
	y := r.DrawSectionHeader(p.x+pad, p.y+pad, "Tuning")

	t := current
	changed := false
	for _, s := range tuningSliders {
		v := s.get(&t)
		rl.DrawText(s.label, p.x+pad, y, r.Theme.FontSize-2, r.Theme.LabelColor)
		rl.DrawText(fmt.Sprintf(s.format, *v), p.x+p.width-pad-60, y, r.Theme.FontSize-2, r.Theme.ValueColor)
		y += r.Theme.LineHeight

		nv := gui.SliderBar(
			rl.Rectangle{X: px, Y: float32(y), Width: float32(p.width - pad*2), Height: 16},
			"", "",
			float32(*v), s.min, s.max,
		)
		if nv != float32(*v) {
			*v = float64(nv)
			changed = true
		}
		y += rowH - r.Theme.LineHeight
	}

	bw := float32(p.width-pad*3) / 2
	for i, preset := range game.Presets {
		label := fmt.Sprintf("%s (%.2f)", titleCase(preset.Name), preset.FrictionGround)
		rect := rl.Rectangle{X: px + float32(i)*(bw+float32(pad)), Y: float32(y), Width: bw, Height: 26}
		if gui.Button(rect, label) {
			t = preset.Apply(t)
			changed = true
		}
	}

	return t, changed
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
