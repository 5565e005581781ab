package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/lilypad/components"
)

func TestSpawnRanges(t *testing.T) {
	sys := NewParticleSystem(DefaultParticleConfig(), rand.New(rand.NewSource(42)))
	anchor := components.Position{X: 150, Y: 240}

	ps := sys.Spawn(nil, anchor, 500)

	if len(ps) != 500 {
		t.Fatalf("len = %d, want 500", len(ps))
	}
	for i, p := range ps {
		if p.X < anchor.X-5 || p.X > anchor.X+5 || p.Y < anchor.Y-5 || p.Y > anchor.Y+5 {
			t.Errorf("particle %d at (%v,%v) outside jitter box", i, p.X, p.Y)
		}
		if p.VX < -0.15 || p.VX > 0.15 {
			t.Errorf("particle %d VX = %v, want in [-0.15, 0.15]", i, p.VX)
		}
		if p.VY < -0.5 || p.VY > -0.2 {
			t.Errorf("particle %d VY = %v, want in [-0.5, -0.2]", i, p.VY)
		}
		if p.Alpha != 255 {
			t.Errorf("particle %d Alpha = %v, want 255", i, p.Alpha)
		}
	}
}

func TestSpawnIsDeterministicForSeed(t *testing.T) {
	anchor := components.Position{X: 10, Y: 10}
	a := NewParticleSystem(DefaultParticleConfig(), rand.New(rand.NewSource(3))).Spawn(nil, anchor, 10)
	b := NewParticleSystem(DefaultParticleConfig(), rand.New(rand.NewSource(3))).Spawn(nil, anchor, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestUpdateMovesAndFades(t *testing.T) {
	sys := NewParticleSystem(DefaultParticleConfig(), rand.New(rand.NewSource(1)))
	ps := []components.Particle{{X: 1, Y: 2, VX: 0.1, VY: -0.3, Alpha: 255}}

	ps = sys.Update(ps)

	if len(ps) != 1 {
		t.Fatalf("len = %d, want 1", len(ps))
	}
	p := ps[0]
	if math.Abs(p.X-1.1) > 1e-9 || math.Abs(p.Y-1.7) > 1e-9 || p.Alpha != 253.5 {
		t.Errorf("particle = %+v, want X=1.1 Y=1.7 Alpha=253.5", p)
	}
}

// TestBurstFadesOut checks a burst lives exactly ceil(255/1.5) ticks.
func TestBurstFadesOut(t *testing.T) {
	sys := NewParticleSystem(DefaultParticleConfig(), rand.New(rand.NewSource(9)))
	ps := sys.Spawn(nil, components.Position{X: 50, Y: 50}, 10)

	if got := sys.Lifetime(); got != 170 {
		t.Fatalf("Lifetime() = %d, want 170", got)
	}

	for i := 0; i < 169; i++ {
		ps = sys.Update(ps)
	}
	if len(ps) != 10 {
		t.Errorf("after 169 ticks len = %d, want 10", len(ps))
	}
	ps = sys.Update(ps)
	if len(ps) != 0 {
		t.Errorf("after 170 ticks len = %d, want 0", len(ps))
	}
}

func TestUpdateRetainsOnlyLiving(t *testing.T) {
	sys := NewParticleSystem(DefaultParticleConfig(), rand.New(rand.NewSource(1)))
	ps := []components.Particle{
		{X: 0, Alpha: 1},
		{X: 1, Alpha: 100},
		{X: 2, Alpha: 1.5},
		{X: 3, Alpha: 2},
	}

	ps = sys.Update(ps)

	if len(ps) != 2 {
		t.Fatalf("len = %d, want 2", len(ps))
	}
	if ps[0].X != 1 || ps[1].X != 3 {
		t.Errorf("survivors = %+v, want X=1 and X=3 in order", ps)
	}
	for _, p := range ps {
		if p.Alpha <= 0 {
			t.Errorf("dead particle retained: %+v", p)
		}
	}
}
