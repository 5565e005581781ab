package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/lilypad/camera"
	"github.com/pthm-cable/lilypad/config"
	"github.com/pthm-cable/lilypad/game"
)

// cellAspect is the height of a terminal cell over its width.
const cellAspect = 2

// action is what a key event asks the driver to do.
type action uint8

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionJump
	actionQuit
)

// keyAction maps a key event to an action.
func keyAction(key tcell.Key, r rune, mod tcell.ModMask) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyUp:
		return actionJump
	case tcell.KeyRune:
		if mod&tcell.ModCtrl != 0 {
			return actionNone
		}
		switch r {
		case 'a', 'A':
			return actionLeft
		case 'd', 'D':
			return actionRight
		case ' ', 'w', 'W':
			return actionJump
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// Driver steps a game at a fixed rate and draws it into a tcell screen.
type Driver struct {
	screen   tcell.Screen
	game     *game.Game
	cam      *camera.Camera
	renderer *CellRenderer
	latch    *HoldLatch
	interval time.Duration
	snap     game.Snapshot
}

// NewDriver creates a driver for an initialised screen.
func NewDriver(screen tcell.Screen, g *game.Game, cfg config.TerminalConfig) *Driver {
	w, h := screen.Size()
	world := g.Config().World
	cam := camera.NewWithAspect(float32(w), float32(h), float32(world.Width), float32(world.Height), cellAspect)

	fps := cfg.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	return &Driver{
		screen:   screen,
		game:     g,
		cam:      cam,
		renderer: NewCellRenderer(cam),
		latch:    NewHoldLatch(cfg.HoldTicks),
		interval: time.Second / time.Duration(fps),
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch keyAction(ev.Key(), ev.Rune(), ev.Modifiers()) {
		case actionQuit:
			return false
		case actionLeft:
			d.latch.PressLeft()
		case actionRight:
			d.latch.PressRight()
		case actionJump:
			d.latch.PressJump()
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		d.cam.Resize(float32(w), float32(h))
		d.screen.Sync()
	case *tcell.EventFocus:
		if !ev.Focused {
			d.latch.Release()
		}
	}
	return true
}

// Frame advances the game one tick and redraws.
func (d *Driver) Frame() {
	d.game.Step(d.latch.Next())
	d.game.SnapshotInto(&d.snap)
	d.renderer.Draw(d.screen, &d.snap)
	d.screen.Show()
	d.game.Perf().RecordFrame()
}

// pumpEvents forwards screen events until the screen is finalised or done
// is closed. It closes events on return.
func (d *Driver) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Run loops until the context ends or the user quits.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go d.pumpEvents(events, done)

	slog.Info("terminal_started", "interval", d.interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !d.HandleEvent(ev) {
				slog.Info("terminal_quit", "tick", d.game.Tick(), "bloomed", d.game.BloomedCount())
				return nil
			}
		case <-ticker.C:
			d.Frame()
		}
	}
}
