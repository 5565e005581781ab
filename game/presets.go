package game

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/lilypad/components"
)

// Preset is a named ground feel.
type Preset struct {
	Name           string
	FrictionGround float64
}

// Ground feel presets offered by the tuning panel.
var (
	PresetIce  = Preset{Name: "ice", FrictionGround: 0.95}
	PresetSand = Preset{Name: "sand", FrictionGround: 0.80}
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetIce, PresetSand}

// Apply returns t with the preset's ground friction.
func (p Preset) Apply(t components.ActorTuning) components.ActorTuning {
	t.FrictionGround = p.FrictionGround
	return t
}

// PresetByName looks up a preset case-insensitively.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
