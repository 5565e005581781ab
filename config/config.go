// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/lilypad/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig     `yaml:"screen"`
	World     WorldConfig      `yaml:"world"`
	Actor     ActorConfig      `yaml:"actor"`
	Bloom     BloomConfig      `yaml:"bloom"`
	Particles ParticlesConfig  `yaml:"particles"`
	Layout    []PlatformConfig `yaml:"layout"`
	Scenery   SceneryConfig    `yaml:"scenery"`
	Audio     AudioConfig      `yaml:"audio"`
	Terminal  TerminalConfig   `yaml:"terminal"`
	Telemetry TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the fixed world extent in world units.
// The window letterboxes this area; it does not grow with the window.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig holds the blob's body and movement tuning.
type ActorConfig struct {
	Radius    float64 `yaml:"radius"`
	StartX    float64 `yaml:"start_x"`
	StartLift float64 `yaml:"start_lift"` // gap between the blob and the ground at start

	Accel          float64 `yaml:"accel"`
	MaxRun         float64 `yaml:"max_run"`
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"` // negative = up
	FrictionAir    float64 `yaml:"friction_air"`
	FrictionGround float64 `yaml:"friction_ground"`
	MaxFall        float64 `yaml:"max_fall"`
	PhaseSpeed     float64 `yaml:"phase_speed"`

	// Rendering only
	Points     int     `yaml:"points"`      // outline vertices
	Wobble     float64 `yaml:"wobble"`      // edge deformation amplitude
	WobbleFreq float64 `yaml:"wobble_freq"` // noise sampling radius
}

// BloomConfig holds flower interaction parameters.
type BloomConfig struct {
	Step          float64 `yaml:"step"`           // level gained per tick in range
	TriggerMargin float64 `yaml:"trigger_margin"` // added to actor radius
	AnchorLift    float64 `yaml:"anchor_lift"`    // flower sits this far above the pad
	BurstCount    int     `yaml:"burst_count"`
}

// ParticlesConfig holds bloom mote parameters.
type ParticlesConfig struct {
	StartAlpha float64 `yaml:"start_alpha"`
	FadeStep   float64 `yaml:"fade_step"`
	Jitter     float64 `yaml:"jitter"`
	DriftX     float64 `yaml:"drift_x"`
	RiseMin    float64 `yaml:"rise_min"`
	RiseMax    float64 `yaml:"rise_max"`
}

// PlatformConfig is one rectangle of the level layout.
type PlatformConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
	Kind string  `yaml:"kind"` // ground|pad (sand|lilypad accepted)
}

// SceneryConfig holds decorative cloud parameters.
type SceneryConfig struct {
	Clouds   int     `yaml:"clouds"`
	BandMin  float64 `yaml:"band_min"` // fraction of world height
	BandMax  float64 `yaml:"band_max"`
	SizeMin  float64 `yaml:"size_min"`
	SizeMax  float64 `yaml:"size_max"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
}

// AudioConfig holds ambient music parameters.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	Volume        float64 `yaml:"volume"`          // target gain after fade
	FadeSeconds   float64 `yaml:"fade_seconds"`    // fade-in length
	StartDelayMax float64 `yaml:"start_delay_max"` // random delay before the fade, seconds
}

// TerminalConfig holds terminal driver parameters.
type TerminalConfig struct {
	TargetFPS int `yaml:"target_fps"`
	HoldTicks int `yaml:"hold_ticks"` // ticks a direction stays held after its last key event
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	TraceEvery  int `yaml:"trace_every"`  // write a trace row every N ticks
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Platforms []components.Platform
	Tuning    components.ActorTuning
	PadCount  int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse merges a YAML document over the embedded defaults.
// A nil document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if len(data) > 0 {
		// Unmarshal into same struct - only overwrites fields present in file.
		// A layout list in the file replaces the default layout wholesale.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every problem that would break the simulation's
// preconditions. The core does not check these at runtime.
func (c *Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Actor.Radius <= 0 {
		errs = append(errs, fmt.Errorf("actor.radius must be positive, got %v", c.Actor.Radius))
	}
	if c.World.Width > 0 && c.Actor.Radius*2 > c.World.Width {
		errs = append(errs, fmt.Errorf("actor diameter %v wider than world %v", c.Actor.Radius*2, c.World.Width))
	}
	if c.Actor.MaxRun < 0 {
		errs = append(errs, fmt.Errorf("actor.max_run must not be negative, got %v", c.Actor.MaxRun))
	}
	if c.Bloom.Step <= 0 {
		errs = append(errs, fmt.Errorf("bloom.step must be positive, got %v", c.Bloom.Step))
	}
	if c.Bloom.BurstCount < 0 {
		errs = append(errs, fmt.Errorf("bloom.burst_count must not be negative, got %d", c.Bloom.BurstCount))
	}
	if c.Particles.FadeStep <= 0 {
		errs = append(errs, fmt.Errorf("particles.fade_step must be positive, got %v", c.Particles.FadeStep))
	}
	if c.Particles.RiseMin > c.Particles.RiseMax {
		errs = append(errs, fmt.Errorf("particles.rise_min %v above rise_max %v", c.Particles.RiseMin, c.Particles.RiseMax))
	}

	if len(c.Layout) == 0 {
		errs = append(errs, errors.New("layout is empty"))
	}
	hasGround := false
	for i, p := range c.Layout {
		kind, err := components.ParsePlatformKind(p.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("layout[%d]: %w", i, err))
		}
		if kind == components.KindGround && err == nil {
			hasGround = true
		}
		if p.W <= 0 || p.H <= 0 {
			errs = append(errs, fmt.Errorf("layout[%d]: size must be positive, got %vx%v", i, p.W, p.H))
		}
	}
	if len(c.Layout) > 0 && !hasGround {
		errs = append(errs, errors.New("layout has no ground platform"))
	}

	if c.Telemetry.TraceEvery < 0 || c.Telemetry.StatsWindow < 0 {
		errs = append(errs, errors.New("telemetry intervals must not be negative"))
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
// Validate must have passed.
func (c *Config) computeDerived() {
	c.Derived.Platforms = make([]components.Platform, 0, len(c.Layout))
	c.Derived.PadCount = 0
	for _, p := range c.Layout {
		kind, _ := components.ParsePlatformKind(p.Kind)
		if kind == components.KindPad {
			c.Derived.PadCount++
		}
		c.Derived.Platforms = append(c.Derived.Platforms, components.Platform{
			Rect: components.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H},
			Kind: kind,
		})
	}
	c.Derived.Tuning = c.Actor.Tuning()
}

// Tuning returns the actor movement constants.
func (a ActorConfig) Tuning() components.ActorTuning {
	return components.ActorTuning{
		Accel:          a.Accel,
		MaxRun:         a.MaxRun,
		Gravity:        a.Gravity,
		JumpImpulse:    a.JumpImpulse,
		FrictionAir:    a.FrictionAir,
		FrictionGround: a.FrictionGround,
		MaxFall:        a.MaxFall,
		PhaseSpeed:     a.PhaseSpeed,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
