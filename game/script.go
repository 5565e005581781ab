package game

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/lilypad/components"
)

// InputSource supplies one Input per tick. ok is false once it is exhausted.
type InputSource interface {
	Next() (in components.Input, ok bool)
}

// ScriptStep holds a set of keys for a number of ticks.
// Jump fires on the first tick of the step only.
type ScriptStep struct {
	Ticks int  `yaml:"ticks"`
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
	Jump  bool `yaml:"jump"`
}

// Script is a recorded input sequence for headless replay.
type Script struct {
	Steps []ScriptStep
}

// LoadScript reads a YAML list of steps.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML list of steps.
func ParseScript(data []byte) (*Script, error) {
	var steps []ScriptStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	s := &Script{Steps: steps}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects empty scripts and steps without duration.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	var errs []error
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			errs = append(errs, fmt.Errorf("step %d: ticks must be positive, got %d", i, st.Ticks))
		}
	}
	return errors.Join(errs...)
}

// Ticks returns the total length of the script.
func (s *Script) Ticks() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// Player returns a fresh InputSource replaying the script.
func (s *Script) Player() *ScriptPlayer {
	return &ScriptPlayer{steps: s.Steps}
}

// ScriptPlayer replays a Script one tick at a time.
type ScriptPlayer struct {
	steps []ScriptStep
	step  int
	tick  int // ticks consumed in the current step
}

// Next returns the input for the next tick.
func (p *ScriptPlayer) Next() (components.Input, bool) {
	for p.step < len(p.steps) && p.tick >= p.steps[p.step].Ticks {
		p.step++
		p.tick = 0
	}
	if p.step >= len(p.steps) {
		return components.Input{}, false
	}

	st := p.steps[p.step]
	in := components.Input{
		Left:  st.Left,
		Right: st.Right,
		Jump:  st.Jump && p.tick == 0,
	}
	p.tick++
	return in, true
}

// RandomWalk is an endless seeded input source: it holds a random direction
// for a random number of ticks and sometimes jumps when it changes.
type RandomWalk struct {
	rng      *rand.Rand
	minHold  int
	maxHold  int
	jumpProb float64

	left      int // ticks left in the current segment
	move      int
	jumpReady bool
}

// NewRandomWalk creates a random input source.
func NewRandomWalk(seed int64) *RandomWalk {
	return &RandomWalk{
		rng:      rand.New(rand.NewSource(seed)),
		minHold:  10,
		maxHold:  60,
		jumpProb: 0.35,
	}
}

// Next returns the input for the next tick. It never runs out.
func (w *RandomWalk) Next() (components.Input, bool) {
	if w.left <= 0 {
		w.left = w.minHold + w.rng.Intn(w.maxHold-w.minHold+1)
		// Bias toward the right so the walk crosses the level
		switch r := w.rng.Float64(); {
		case r < 0.3:
			w.move = -1
		case r < 0.45:
			w.move = 0
		default:
			w.move = 1
		}
		w.jumpReady = w.rng.Float64() < w.jumpProb
	}
	w.left--

	in := components.Input{
		Left:  w.move < 0,
		Right: w.move > 0,
		Jump:  w.jumpReady,
	}
	w.jumpReady = false
	return in, true
}
