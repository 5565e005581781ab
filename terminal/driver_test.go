package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/lilypad/config"
	"github.com/pthm-cable/lilypad/game"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func newDriver(t *testing.T, w, h int) (*Driver, *game.Game, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.Default()
	g, err := game.NewGame(game.Options{Seed: 1, Config: cfg})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	screen := newScreen(t, w, h)
	return NewDriver(screen, g, cfg.Terminal), g, screen
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want action
	}{
		{"a", tcell.KeyRune, 'a', tcell.ModNone, actionLeft},
		{"A", tcell.KeyRune, 'A', tcell.ModShift, actionLeft},
		{"left arrow", tcell.KeyLeft, 0, tcell.ModNone, actionLeft},
		{"d", tcell.KeyRune, 'd', tcell.ModNone, actionRight},
		{"right arrow", tcell.KeyRight, 0, tcell.ModNone, actionRight},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, actionJump},
		{"w", tcell.KeyRune, 'w', tcell.ModNone, actionJump},
		{"up arrow", tcell.KeyUp, 0, tcell.ModNone, actionJump},
		{"q", tcell.KeyRune, 'q', tcell.ModNone, actionQuit},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, actionQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, tcell.ModCtrl, actionQuit},
		{"ctrl rune", tcell.KeyRune, 'a', tcell.ModCtrl, actionNone},
		{"other", tcell.KeyRune, 'x', tcell.ModNone, actionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyAction(tt.key, tt.r, tt.mod); got != tt.want {
				t.Errorf("keyAction = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDriver_FrameAdvancesAndDraws(t *testing.T) {
	d, g, screen := newDriver(t, 80, 24)

	d.Frame()
	if g.Tick() != 1 {
		t.Fatalf("tick = %d, want 1", g.Tick())
	}

	var found bool
	w, h := screen.Size()
	for y := 0; y < h && !found; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == glyphBlob {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("blob not drawn")
	}

	line := make([]rune, 0, len(HUDText))
	for x := 0; x < len([]rune(HUDText)) && x < w; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		line = append(line, r)
	}
	if want := []rune(HUDText); string(line) != string(want[:len(line)]) {
		t.Errorf("HUD row = %q", string(line))
	}
}

func TestDriver_HeldKeyMovesActor(t *testing.T) {
	d, g, _ := newDriver(t, 80, 24)
	x0 := g.Actor().Pos.X

	d.latch.PressRight()
	for i := 0; i < 8; i++ {
		d.Frame()
	}
	if g.Actor().Pos.X <= x0 {
		t.Errorf("actor x = %.2f, want > %.2f", g.Actor().Pos.X, x0)
	}
}

func TestDriver_HandleResize(t *testing.T) {
	d, _, _ := newDriver(t, 80, 24)
	before := d.cam.Zoom()

	if !d.HandleEvent(tcell.NewEventResize(160, 48)) {
		t.Fatal("resize should not quit")
	}
	if d.cam.ViewportW != 160 || d.cam.ViewportH != 48 {
		t.Errorf("viewport = %.0fx%.0f, want 160x48", d.cam.ViewportW, d.cam.ViewportH)
	}
	if d.cam.Zoom() <= before {
		t.Errorf("zoom %.3f should grow from %.3f", d.cam.Zoom(), before)
	}
}

func TestDriver_BlurReleasesKeys(t *testing.T) {
	d, _, _ := newDriver(t, 80, 24)
	d.latch.PressLeft()
	d.HandleEvent(tcell.NewEventFocus(false))
	if d.latch.Next().Any() {
		t.Error("focus loss should release held keys")
	}
}

func TestDriver_PumpStopsWhenDone(t *testing.T) {
	d, _, screen := newDriver(t, 80, 24)

	// Nobody reads events, as after Run has returned.
	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		d.pumpEvents(events, done)
		close(exited)
	}()

	close(done)
	if err := screen.PostEvent(tcell.NewEventResize(100, 30)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump blocked after done was closed")
	}
	if _, ok := <-events; ok {
		t.Error("events should be closed when the pump exits")
	}
}
