package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/lilypad/components"
)

func testTuning() components.ActorTuning {
	return components.ActorTuning{
		Accel:          0.3,
		MaxRun:         1.8,
		Gravity:        0.28,
		JumpImpulse:    -6.0,
		FrictionAir:    0.995,
		FrictionGround: 0.92,
		MaxFall:        4.5,
		PhaseSpeed:     0.01,
	}
}

var testGround = components.Platform{
	Rect: components.Rect{X: 0, Y: 306, W: 640, H: 54},
	Kind: components.KindGround,
}

// newTestWorld returns a physics system over the given platforms and an actor
// of radius 21 resting exactly on the ground's top edge.
func newTestWorld(platforms ...components.Platform) (*PhysicsSystem, *components.Actor) {
	set := NewPlatformSet(platforms)
	sys := NewPhysicsSystem(set, Bounds{Width: 640, Height: 360})
	a := &components.Actor{
		Pos:    components.Position{X: 40, Y: testGround.Y - 21},
		Radius: 21,
		Tuning: testTuning(),
	}
	return sys, a
}

// TestRestOnGround covers an actor touching the ground with no input.
func TestRestOnGround(t *testing.T) {
	sys, a := newTestWorld(testGround)

	sys.Update(a, components.Input{})

	if !a.OnGround {
		t.Error("OnGround = false, want true")
	}
	if a.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0", a.Vel.Y)
	}
	if a.Pos.Y != testGround.Y-21 {
		t.Errorf("Pos.Y = %v, want %v", a.Pos.Y, testGround.Y-21)
	}
}

// TestLandingSettles drops the actor from height and checks it comes to rest
// and stays there.
func TestLandingSettles(t *testing.T) {
	sys, a := newTestWorld(testGround)
	a.Pos.Y = 100

	landed := -1
	for i := 0; i < 200; i++ {
		sys.Update(a, components.Input{})
		if a.OnGround && landed < 0 {
			landed = i
		}
	}
	if landed < 0 {
		t.Fatal("actor never landed")
	}
	for i := 0; i < 5; i++ {
		sys.Update(a, components.Input{})
		if !a.OnGround || a.Vel.Y != 0 {
			t.Fatalf("tick %d after settle: OnGround=%v Vel.Y=%v, want true and 0", i, a.OnGround, a.Vel.Y)
		}
	}
	if got, want := a.Pos.Y+a.Radius, testGround.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("bottom = %v, want %v", got, want)
	}
}

// TestLandingDamping checks the soft-landing branch keeps a fraction of a
// fast fall.
func TestLandingDamping(t *testing.T) {
	sys, a := newTestWorld(testGround)
	a.Pos.Y = testGround.Y - 21 - 2
	a.Vel.Y = 4.5 - 0.28 // reaches MaxFall after gravity

	sys.Update(a, components.Input{})

	if !a.OnGround {
		t.Fatal("OnGround = false, want true")
	}
	if math.Abs(a.Vel.Y-0.9) > 1e-9 {
		t.Errorf("Vel.Y = %v, want 0.9 (4.5 * 0.2)", a.Vel.Y)
	}
}

func TestRunSpeedClamped(t *testing.T) {
	sys, a := newTestWorld(testGround)

	for i := 0; i < 300; i++ {
		in := components.Input{Right: i < 150, Left: i >= 150}
		sys.Update(a, in)
		if math.Abs(a.Vel.X) > a.Tuning.MaxRun {
			t.Fatalf("tick %d: |Vel.X| = %v exceeds MaxRun %v", i, math.Abs(a.Vel.X), a.Tuning.MaxRun)
		}
	}
}

func TestFallSpeedClamped(t *testing.T) {
	sys, a := newTestWorld()
	a.Pos.Y = -10000

	for i := 0; i < 100; i++ {
		sys.Update(a, components.Input{})
		if a.Vel.Y > a.Tuning.MaxFall {
			t.Fatalf("tick %d: Vel.Y = %v exceeds MaxFall", i, a.Vel.Y)
		}
	}
	if a.Vel.Y != a.Tuning.MaxFall {
		t.Errorf("terminal Vel.Y = %v, want %v", a.Vel.Y, a.Tuning.MaxFall)
	}
}

func TestWallStopsHorizontal(t *testing.T) {
	wall := components.Platform{Rect: components.Rect{X: 100, Y: 200, W: 20, H: 106}, Kind: components.KindPad}
	sys, a := newTestWorld(testGround, wall)
	a.Pos.X = 100 - 21 - 0.5
	a.Vel.X = 1.8
	a.OnGround = true

	sys.Update(a, components.Input{Right: true})

	if a.Vel.X != 0 {
		t.Errorf("Vel.X = %v, want 0", a.Vel.X)
	}
	box := a.Box()
	if Overlaps(box, wall.Rect) {
		t.Errorf("box %+v still overlaps wall %+v", box, wall.Rect)
	}
	if got, want := box.Right(), wall.X; math.Abs(got-want) > 1e-9 {
		t.Errorf("box right = %v, want %v", got, want)
	}
}

func TestWallStopsMovingLeft(t *testing.T) {
	wall := components.Platform{Rect: components.Rect{X: 100, Y: 200, W: 20, H: 106}, Kind: components.KindPad}
	sys, a := newTestWorld(testGround, wall)
	a.Pos.X = 120 + 21 + 0.5
	a.Vel.X = -1.8
	a.OnGround = true

	sys.Update(a, components.Input{Left: true})

	if a.Vel.X != 0 {
		t.Errorf("Vel.X = %v, want 0", a.Vel.X)
	}
	if got := a.Box().X; math.Abs(got-120) > 1e-9 {
		t.Errorf("box left = %v, want 120", got)
	}
}

// TestFallingPastPadLands covers an actor drifting toward a pad while
// falling, whose path clears the pad's top edge on the x pass.
func TestFallingPastPadLands(t *testing.T) {
	pad := components.Platform{Rect: components.Rect{X: 100, Y: 245, W: 100, H: 18}, Kind: components.KindPad}
	sys, a := newTestWorld(testGround, pad)

	// Bottom 2 units above the pad top, right edge 1 unit short of the pad.
	a.Pos.X = 100 - 21 - 1
	a.Pos.Y = 245 - 21 - 2
	a.Vel.X = 1.5
	a.Vel.Y = 3

	sys.Update(a, components.Input{Right: true})

	if !a.OnGround {
		t.Fatal("OnGround = false, want landing on pad")
	}
	if a.Vel.X == 0 {
		t.Error("Vel.X = 0, want horizontal motion kept (no side collision)")
	}
	if got, want := a.Pos.Y+a.Radius, pad.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("bottom = %v, want pad top %v", got, want)
	}
	if a.Vel.Y >= 3+0.28 {
		t.Errorf("Vel.Y = %v, want damped", a.Vel.Y)
	}
}

func TestHeadBumpStopsRise(t *testing.T) {
	pad := components.Platform{Rect: components.Rect{X: 0, Y: 100, W: 200, H: 18}, Kind: components.KindPad}
	sys, a := newTestWorld(pad)
	a.Pos.X = 60
	a.Pos.Y = 118 + 21 + 1
	a.Vel.Y = -6

	sys.Update(a, components.Input{})

	if a.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0", a.Vel.Y)
	}
	if got := a.Box().Y; math.Abs(got-118) > 1e-9 {
		t.Errorf("box top = %v, want pad bottom 118", got)
	}
	if a.OnGround {
		t.Error("OnGround = true after head bump")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	t.Run("grounded", func(t *testing.T) {
		sys, a := newTestWorld(testGround)
		sys.Update(a, components.Input{Jump: true})
		if a.Vel.Y != a.Tuning.JumpImpulse {
			t.Errorf("Vel.Y = %v, want %v", a.Vel.Y, a.Tuning.JumpImpulse)
		}
		if a.OnGround {
			t.Error("OnGround = true after jump")
		}

		startY := a.Pos.Y
		sys.Update(a, components.Input{})
		if a.Pos.Y >= startY {
			t.Errorf("Pos.Y = %v after jump tick, want above %v", a.Pos.Y, startY)
		}
	})

	t.Run("airborne", func(t *testing.T) {
		sys, a := newTestWorld(testGround)
		a.Pos.Y = 100
		sys.Update(a, components.Input{Jump: true})
		if a.Vel.Y != a.Tuning.Gravity {
			t.Errorf("Vel.Y = %v, want %v (gravity only)", a.Vel.Y, a.Tuning.Gravity)
		}
	})
}

func TestHorizontalWorldClamp(t *testing.T) {
	sys, a := newTestWorld(testGround)
	a.Pos.X = 21.5
	a.Vel.X = -1.8

	for i := 0; i < 10; i++ {
		sys.Update(a, components.Input{Left: true})
	}
	if a.Pos.X != a.Radius {
		t.Errorf("Pos.X = %v, want %v", a.Pos.X, a.Radius)
	}

	a.Pos.X = 640 - 21.5
	for i := 0; i < 200; i++ {
		sys.Update(a, components.Input{Right: true})
	}
	if a.Pos.X != 640-a.Radius {
		t.Errorf("Pos.X = %v, want %v", a.Pos.X, 640-a.Radius)
	}
}

func TestNoVerticalClamp(t *testing.T) {
	sys, a := newTestWorld()
	a.Pos.Y = 0
	for i := 0; i < 200; i++ {
		sys.Update(a, components.Input{})
	}
	if a.Pos.Y < 360 {
		t.Errorf("Pos.Y = %v, want actor to fall below the world", a.Pos.Y)
	}
}

func TestPhaseAdvances(t *testing.T) {
	sys, a := newTestWorld(testGround)
	for i := 0; i < 100; i++ {
		sys.Update(a, components.Input{})
	}
	if math.Abs(a.Phase-1.0) > 1e-9 {
		t.Errorf("Phase = %v, want 1.0", a.Phase)
	}
}

func TestResolveX_MultipleOverlaps(t *testing.T) {
	a := components.Platform{Rect: components.Rect{X: 100, Y: 200, W: 20, H: 106}, Kind: components.KindPad}
	b := components.Platform{Rect: components.Rect{X: 90, Y: 200, W: 40, H: 106}, Kind: components.KindPad}

	tests := []struct {
		name         string
		platforms    []components.Platform
		wantRight    float64
		wantOverlapB bool
	}{
		// The first hit stops the motion; B is then only re-zeroed.
		{"narrow wall first", []components.Platform{a, b}, 100, true},
		{"wide wall first", []components.Platform{b, a}, 90, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewPhysicsSystem(NewPlatformSet(tt.platforms), Bounds{Width: 640, Height: 360})
			box := components.Rect{X: 57.5, Y: 264, W: 42, H: 42}
			vx := 1.8

			sys.resolveX(&box, &vx)

			if vx != 0 {
				t.Errorf("vx = %v, want 0", vx)
			}
			if math.Abs(box.Right()-tt.wantRight) > 1e-9 {
				t.Errorf("box right = %v, want %v", box.Right(), tt.wantRight)
			}
			if got := Overlaps(box, b.Rect); got != tt.wantOverlapB {
				t.Errorf("overlaps B = %v, want %v", got, tt.wantOverlapB)
			}
		})
	}
}

func TestResolveY_StackedLandings(t *testing.T) {
	lower := components.Platform{Rect: components.Rect{X: 0, Y: 300, W: 200, H: 20}, Kind: components.KindPad}
	upper := components.Platform{Rect: components.Rect{X: 0, Y: 290, W: 200, H: 40}, Kind: components.KindPad}
	set := NewPlatformSet([]components.Platform{lower, upper})
	sys := NewPhysicsSystem(set, Bounds{Width: 640, Height: 360})

	tests := []struct {
		name       string
		startY     float64
		vy         float64
		wantBottom float64
	}{
		// 4.5 damps to 0.9, still moving, so the second landing snaps again.
		{"fast fall second landing wins", 255, 4.5, 290},
		// 2.0 damps to 0.4 and rests, so the second overlap cannot snap.
		{"slow fall first landing rests", 258.5, 2.0, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := components.Rect{X: 50, Y: tt.startY, W: 42, H: 42}
			vy := tt.vy

			onGround := sys.resolveY(&box, &vy)

			if !onGround {
				t.Error("onGround = false, want true")
			}
			if vy != 0 {
				t.Errorf("vy = %v, want 0", vy)
			}
			if math.Abs(box.Bottom()-tt.wantBottom) > 1e-9 {
				t.Errorf("box bottom = %v, want %v", box.Bottom(), tt.wantBottom)
			}
		})
	}
}
