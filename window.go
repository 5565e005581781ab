package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lilypad/audio"
	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/game"
	"github.com/pthm-cable/lilypad/renderer"
	"github.com/pthm-cable/lilypad/systems"
	"github.com/pthm-cable/lilypad/ui"
)

// runWindow plays the game in a raylib window.
func runWindow(opts game.Options, maxTicks int64) error {
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

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Lilypad")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	cam := camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), float32(cfg.World.Width), float32(cfg.World.Height))
	shape := systems.NewBlobShape(cfg.Actor.Points, cfg.Actor.Wobble, cfg.Actor.WobbleFreq, opts.Seed)
	scene := renderer.NewScene(cam, shape)

	hud := ui.NewHUD(rl.GetFontDefault())
	help := ui.NewHelpOverlay(380)
	tuning := ui.NewTuningPanel(12, 60, 300)
	var toggles ui.Toggles
	var snap game.Snapshot

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}
		toggles.Update()

		g.Step(ui.PollInput())
		g.SnapshotInto(&snap)

		rl.BeginDrawing()
		scene.Draw(&snap)

		wx, wy, _, _ := cam.WorldRect()
		hud.Draw(int32(wx), int32(wy), &snap, rl.GetFPS())
		if toggles.Help {
			help.Draw(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), &snap)
		}
		if toggles.Tuning {
			// Applied between ticks: the next Step sees the new constants
			if t, changed := tuning.Draw(g.Tuning()); changed {
				g.SetTuning(t)
			}
		}
		rl.EndDrawing()
		g.Perf().RecordFrame()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
	return nil
}
