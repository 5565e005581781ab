// Package game owns the simulation root: the actor, the platform set and
// the flowers, stepped once per frame by a driver.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/lilypad/components"
	"github.com/pthm-cable/lilypad/config"
	"github.com/pthm-cable/lilypad/scenery"
	"github.com/pthm-cable/lilypad/systems"
	"github.com/pthm-cable/lilypad/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed      int64
	Config    *config.Config // nil = config.Cfg()
	OutputDir string         // CSV and config snapshot directory (empty = disabled)
	LogStats  bool           // log window stats via slog

	// Scenery enables the decorative sky. Headless runs leave it off.
	Scenery bool

	// OnFirstMove is called once, on the first tick with any input.
	// It must not block.
	OnFirstMove func()
}

// Game is the simulation root.
type Game struct {
	cfg *config.Config

	platforms *systems.PlatformSet
	actor     components.Actor
	blooms    []components.BloomState

	physics   *systems.PhysicsSystem
	bloom     *systems.BloomSystem
	particles *systems.ParticleSystem
	rng       *rand.Rand

	sky *scenery.Sky

	tick      int64
	lastInput components.Input
	lastGrew  bool // some flower grew during the last tick

	moved       bool
	onFirstMove func()

	firstBloomTick int64
	allBloomedTick int64
	bloomedCount   int

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	traceEvery    int64
}

// NewGame creates a game with the actor resting on the ground platform.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	platforms := systems.NewPlatformSet(cfg.Derived.Platforms)
	ground, ok := platforms.Ground()
	if !ok {
		return nil, fmt.Errorf("layout has no ground platform")
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	bloom := systems.NewBloomSystem(systems.BloomConfig{
		Step:          cfg.Bloom.Step,
		TriggerMargin: cfg.Bloom.TriggerMargin,
		AnchorLift:    cfg.Bloom.AnchorLift,
		BurstCount:    cfg.Bloom.BurstCount,
	})

	r := cfg.Actor.Radius
	g := &Game{
		cfg:       cfg,
		platforms: platforms,
		actor: components.Actor{
			Pos:    components.Position{X: cfg.Actor.StartX, Y: ground.Y - r - cfg.Actor.StartLift},
			Radius: r,
			Tuning: cfg.Derived.Tuning,
		},
		physics: systems.NewPhysicsSystem(platforms, systems.Bounds{
			Width:  cfg.World.Width,
			Height: cfg.World.Height,
		}),
		bloom: bloom,
		particles: systems.NewParticleSystem(systems.ParticleConfig{
			StartAlpha: cfg.Particles.StartAlpha,
			FadeStep:   cfg.Particles.FadeStep,
			Jitter:     cfg.Particles.Jitter,
			DriftX:     cfg.Particles.DriftX,
			RiseMin:    cfg.Particles.RiseMin,
			RiseMax:    cfg.Particles.RiseMax,
		}, rng),
		rng:            rng,
		blooms:         bloom.NewBloomStates(platforms),
		onFirstMove:    opts.OnFirstMove,
		firstBloomTick: -1,
		allBloomedTick: -1,
		logStats:       opts.LogStats,
		traceEvery:     int64(cfg.Telemetry.TraceEvery),
	}

	if opts.Scenery {
		// Separate stream so particle jitter does not depend on the sky
		g.sky = scenery.NewSky(cfg.Scenery, cfg.World.Width, cfg.World.Height, rand.New(rand.NewSource(opts.Seed+1)))
	}

	dt := 1.0 / 60
	if cfg.Screen.TargetFPS > 0 {
		dt = 1.0 / float64(cfg.Screen.TargetFPS)
	}
	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, dt)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.StatsWindow)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	if om != nil {
		slog.Info("output enabled", "dir", om.Dir())
	}

	return g, nil
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Actor returns a copy of the actor.
func (g *Game) Actor() components.Actor {
	return g.actor
}

// Bloom returns a copy of flower i. The particle slice is shared.
func (g *Game) Bloom(i int) components.BloomState {
	return g.blooms[i]
}

// BloomCount returns the number of flowers.
func (g *Game) BloomCount() int {
	return len(g.blooms)
}

// BloomedCount returns the number of fully bloomed flowers.
func (g *Game) BloomedCount() int {
	return g.bloomedCount
}

// AllBloomed reports whether every flower has bloomed.
func (g *Game) AllBloomed() bool {
	return g.bloomedCount == len(g.blooms)
}

// FirstBloomTick returns the tick of the first burst, or -1.
func (g *Game) FirstBloomTick() int64 {
	return g.firstBloomTick
}

// AllBloomedTick returns the tick the last flower bloomed, or -1.
func (g *Game) AllBloomedTick() int64 {
	return g.allBloomedTick
}

// Tuning returns the actor's current movement constants.
func (g *Game) Tuning() components.ActorTuning {
	return g.actor.Tuning
}

// SetTuning replaces the actor's movement constants. Call between ticks.
func (g *Game) SetTuning(t components.ActorTuning) {
	g.actor.Tuning = t
	slog.Debug("tuning_changed",
		"tick", g.tick,
		"friction_ground", t.FrictionGround,
		"gravity", t.Gravity,
		"jump_impulse", t.JumpImpulse,
		"max_run", t.MaxRun,
	)
}

// LiveParticles returns the number of particles across all flowers.
func (g *Game) LiveParticles() int {
	n := 0
	for i := range g.blooms {
		n += len(g.blooms[i].Particles)
	}
	return n
}

// Perf returns the performance collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perfCollector
}

// Close flushes the partial stats window and closes output files.
func (g *Game) Close() error {
	if g.collector.Pending(g.tick) {
		g.writeWindow()
	}
	return g.outputManager.Close()
}
