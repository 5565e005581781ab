package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/lilypad/audio"
	"github.com/pthm-cable/lilypad/config"
	"github.com/pthm-cable/lilypad/game"
	"github.com/pthm-cable/lilypad/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, driven by -script")
	tui := flag.Bool("tui", false, "Play in the terminal")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	scriptPath := flag.String("script", "", "Input script YAML for headless runs (empty = stand still)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// stdout belongs to the screen in terminal mode
	if *tui {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		Config:    cfg,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	var err error
	switch {
	case *headless:
		err = runHeadless(opts, *scriptPath, *maxTicks)
	case *tui:
		err = runTerminal(opts)
	default:
		err = runWindow(opts, *maxTicks)
	}
	if err != nil {
		slog.Error("exiting", "error", err)
		os.Exit(1)
	}
}

// runHeadless replays a script with no graphics or audio.
func runHeadless(opts game.Options, scriptPath string, maxTicks int64) error {
	script := &game.Script{}
	if scriptPath != "" {
		var err error
		if script, err = game.LoadScript(scriptPath); err != nil {
			return err
		}
	}

	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"script_ticks", script.Ticks(),
		"max_ticks", maxTicks,
	)
	res := g.Run(ctx, script.Player(), maxTicks)
	slog.Info("headless simulation ended",
		"reason", res.Reason,
		"ticks", res.Ticks,
		"bloomed", res.Bloomed,
		"first_bloom_tick", res.FirstBloomTick,
		"all_bloomed_tick", res.AllBloomedTick,
	)
	return nil
}

// runTerminal plays the game in a tcell screen.
func runTerminal(opts game.Options) error {
	cfg := opts.Config

	ambience := audio.NewAmbience(cfg.Audio, opts.Seed, nil)
	defer ambience.Close()
	opts.Scenery = true
	opts.OnFirstMove = ambience.Start

	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := terminal.NewDriver(screen, g, cfg.Terminal).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
