// Package ui draws the HUD, help overlay and tuning panel, and maps raylib
// key state to game input.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	HUDText        rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillDone    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Color{R: 255, G: 220, B: 235, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		HUDText:        rl.Black,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 120, G: 200, B: 140, A: 255},
		BarFillDone:    rl.Color{R: 255, G: 200, B: 120, A: 255},
		Padding:        10,
		LineHeight:     20,
		LabelWidth:     130,
		BarHeight:      12,
		FontSize:       16,
		HeaderFontSize: 20,
	}
}
