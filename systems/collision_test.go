package systems

import (
	"testing"

	"github.com/pthm-cable/lilypad/components"
)

// TestOverlaps verifies strict AABB intersection.
func TestOverlaps(t *testing.T) {
	base := components.Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other components.Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", components.Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial corner", components.Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", components.Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"touching bottom edge", components.Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"touching corner", components.Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"separate on x", components.Rect{X: 20, Y: 0, W: 5, H: 5}, false},
		{"separate on y", components.Rect{X: 0, Y: -20, W: 5, H: 5}, false},
		{"overlap x only", components.Rect{X: 2, Y: 11, W: 5, H: 5}, false},
		{"sliver", components.Rect{X: 9.999, Y: 0, W: 5, H: 10}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(base, tc.other); got != tc.want {
				t.Errorf("Overlaps(base, %+v) = %v, want %v", tc.other, got, tc.want)
			}
			if got := Overlaps(tc.other, base); got != tc.want {
				t.Errorf("Overlaps(%+v, base) = %v, want %v (symmetry)", tc.other, got, tc.want)
			}
		})
	}
}

// TestOverlapsSymmetric checks symmetry over a grid of offsets.
func TestOverlapsSymmetric(t *testing.T) {
	a := components.Rect{X: 3, Y: 4, W: 7, H: 5}
	for dx := -12.0; dx <= 12; dx += 0.5 {
		for dy := -12.0; dy <= 12; dy += 0.5 {
			b := components.Rect{X: a.X + dx, Y: a.Y + dy, W: 4, H: 6}
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Fatalf("asymmetric result for a=%+v b=%+v", a, b)
			}
		}
	}
}

func TestPlatformSetIsACopy(t *testing.T) {
	layout := []components.Platform{
		{Rect: components.Rect{X: 0, Y: 300, W: 640, H: 60}, Kind: components.KindGround},
		{Rect: components.Rect{X: 100, Y: 240, W: 100, H: 18}, Kind: components.KindPad},
	}
	set := NewPlatformSet(layout)

	layout[0].Y = 0
	if got := set.At(0).Y; got != 300 {
		t.Errorf("platform moved with caller's slice: Y = %v, want 300", got)
	}

	pads := set.Pads()
	pads[0] = 99
	if got := set.Pads()[0]; got != 1 {
		t.Errorf("Pads() exposed internal state: got %d, want 1", got)
	}

	g, ok := set.Ground()
	if !ok || g.Kind != components.KindGround {
		t.Errorf("Ground() = %+v, %v; want ground platform", g, ok)
	}
}
