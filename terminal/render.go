package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/game"
)

// Band boundaries as fractions of world height.
const (
	skyEnd   = 0.35
	waterEnd = 0.85
)

// Cell glyphs.
const (
	glyphBlob    = '█'
	glyphGround  = '▒'
	glyphPad     = '▬'
	glyphCloud   = '~'
	glyphBud     = '.'
	glyphOpening = 'o'
	glyphFlower  = '✿'
	glyphMote    = '·'
)

// HUDText is the key legend shown on the top row.
const HUDText = "Move: a/d or ←/→  •  Jump: space/w/↑  •  q quit"

var (
	styleLetterbox = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleSky       = tcell.StyleDefault.Background(tcell.NewRGBColor(150, 200, 240))
	styleWater     = tcell.StyleDefault.Background(tcell.NewRGBColor(70, 130, 180))
	styleSand      = tcell.StyleDefault.Background(tcell.NewRGBColor(230, 205, 150))
	colorGround    = tcell.NewRGBColor(190, 160, 100)
	colorPad       = tcell.NewRGBColor(60, 160, 80)
	colorCloud     = tcell.ColorWhite
	colorBlob      = tcell.NewRGBColor(120, 90, 200)
	colorFlower    = tcell.NewRGBColor(255, 150, 200)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// CellRenderer draws a snapshot into a character grid.
type CellRenderer struct {
	cam *camera.Camera
}

// NewCellRenderer creates a renderer that maps the world through cam.
func NewCellRenderer(cam *camera.Camera) *CellRenderer {
	return &CellRenderer{cam: cam}
}

// Draw renders the frame. The caller shows the screen.
func (r *CellRenderer) Draw(s tcell.Screen, snap *game.Snapshot) {
	w, h := s.Size()
	s.Fill(' ', styleLetterbox)

	r.drawBackground(s, w, h, snap)
	for i := range snap.Clouds {
		c := &snap.Clouds[i]
		r.fillRect(s, w, h, c.X-c.Size, c.Y-c.Size*0.3, c.Size*2, c.Size*0.6, glyphCloud, colorCloud)
	}
	for _, p := range snap.Platforms {
		glyph, fg := glyphPad, colorPad
		if p.Kind == components.KindGround {
			glyph, fg = glyphGround, colorGround
		}
		r.fillRect(s, w, h, p.X, p.Y, p.W, p.H, glyph, fg)
	}
	for i := range snap.Blooms {
		r.drawBloom(s, w, h, &snap.Blooms[i])
	}
	r.drawActor(s, w, h, &snap.Actor)
	r.drawHUD(s, w, snap)
}

func (r *CellRenderer) drawBackground(s tcell.Screen, w, h int, snap *game.Snapshot) {
	x0, y0, x1, y1 := r.cellBounds(0, 0, snap.Width, snap.Height, w, h)
	for cy := y0; cy < y1; cy++ {
		_, wy := r.cam.ScreenToWorld(0, float32(cy)+0.5)
		style := styleSand
		switch frac := float64(wy) / snap.Height; {
		case frac < skyEnd:
			style = styleSky
		case frac < waterEnd:
			style = styleWater
		}
		for cx := x0; cx < x1; cx++ {
			s.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (r *CellRenderer) drawBloom(s tcell.Screen, w, h int, b *game.BloomView) {
	if b.Level > 0 {
		glyph := glyphBud
		switch {
		case b.Bloomed:
			glyph = glyphFlower
		case b.Level >= 0.5:
			glyph = glyphOpening
		}
		r.plot(s, w, h, b.Anchor.X, b.Anchor.Y, glyph, colorFlower)
	}
	for _, p := range b.Particles {
		a := int32(math.Max(0, math.Min(p.Alpha, 255)))
		r.plot(s, w, h, p.X, p.Y, glyphMote, tcell.NewRGBColor(255, 200+a*55/255, 220))
	}
}

// drawActor fills every cell whose centre lies inside the blob's circle,
// and at least the cell under its centre.
func (r *CellRenderer) drawActor(s tcell.Screen, w, h int, a *game.ActorView) {
	x0, y0, x1, y1 := r.cellBounds(a.X-a.Radius, a.Y-a.Radius, 2*a.Radius, 2*a.Radius, w, h)
	r2 := a.Radius * a.Radius
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			wx, wy := r.cam.ScreenToWorld(float32(cx)+0.5, float32(cy)+0.5)
			dx, dy := float64(wx)-a.X, float64(wy)-a.Y
			if dx*dx+dy*dy <= r2 {
				r.setFg(s, cx, cy, glyphBlob, colorBlob)
			}
		}
	}
	r.plot(s, w, h, a.X, a.Y, glyphBlob, colorBlob)
}

func (r *CellRenderer) drawHUD(s tcell.Screen, w int, snap *game.Snapshot) {
	bloomed := 0
	for i := range snap.Blooms {
		if snap.Blooms[i].Bloomed {
			bloomed++
		}
	}
	line := fmt.Sprintf("%s  •  flowers %d/%d", HUDText, bloomed, len(snap.Blooms))
	x := 0
	for _, ch := range line {
		if x >= w {
			break
		}
		s.SetContent(x, 0, ch, nil, styleHUD)
		x++
	}
}

// fillRect draws glyph over every cell the world rectangle touches.
func (r *CellRenderer) fillRect(s tcell.Screen, w, h int, x, y, rw, rh float64, glyph rune, fg tcell.Color) {
	x0, y0, x1, y1 := r.cellBounds(x, y, rw, rh, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r.setFg(s, cx, cy, glyph, fg)
		}
	}
}

func (r *CellRenderer) plot(s tcell.Screen, w, h int, x, y float64, glyph rune, fg tcell.Color) {
	sx, sy := r.cam.WorldToScreen(float32(x), float32(y))
	cx, cy := int(math.Floor(float64(sx))), int(math.Floor(float64(sy)))
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}
	r.setFg(s, cx, cy, glyph, fg)
}

// setFg writes glyph in fg, keeping the cell's background.
func (r *CellRenderer) setFg(s tcell.Screen, cx, cy int, glyph rune, fg tcell.Color) {
	_, _, style, _ := s.GetContent(cx, cy)
	s.SetContent(cx, cy, glyph, nil, style.Foreground(fg))
}

// cellBounds returns the half-open cell range covering a world rectangle,
// clipped to the screen.
func (r *CellRenderer) cellBounds(x, y, rw, rh float64, w, h int) (x0, y0, x1, y1 int) {
	sx0, sy0 := r.cam.WorldToScreen(float32(x), float32(y))
	sx1, sy1 := r.cam.WorldToScreen(float32(x+rw), float32(y+rh))
	x0 = max(0, int(math.Floor(float64(sx0))))
	y0 = max(0, int(math.Floor(float64(sy0))))
	x1 = min(w, int(math.Ceil(float64(sx1))))
	y1 = min(h, int(math.Ceil(float64(sy1))))
	return x0, y0, x1, y1
}
