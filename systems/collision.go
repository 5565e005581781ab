package systems

import "github.com/pthm-cable/lilypad/components"

// Overlaps reports whether a and b intersect on both axes.
// Comparisons are strict, so rectangles that only share an edge do not overlap.
func Overlaps(a, b components.Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// PlatformSet is the static collision geometry. It is copied on construction
// and never modified afterwards.
type PlatformSet struct {
	platforms []components.Platform
	pads      []int
}

// NewPlatformSet copies the layout into an immutable set.
// Platforms must have positive width and height.
func NewPlatformSet(layout []components.Platform) *PlatformSet {
	s := &PlatformSet{
		platforms: make([]components.Platform, len(layout)),
	}
	copy(s.platforms, layout)
	for i, p := range s.platforms {
		if p.Kind == components.KindPad {
			s.pads = append(s.pads, i)
		}
	}
	return s
}

// Len returns the number of platforms.
func (s *PlatformSet) Len() int {
	return len(s.platforms)
}

// At returns the platform at index i in collection order.
func (s *PlatformSet) At(i int) components.Platform {
	return s.platforms[i]
}

// Pads returns the indices of pad platforms in collection order.
func (s *PlatformSet) Pads() []int {
	out := make([]int, len(s.pads))
	copy(out, s.pads)
	return out
}

// Ground returns the first ground platform, if any.
func (s *PlatformSet) Ground() (components.Platform, bool) {
	for _, p := range s.platforms {
		if p.Kind == components.KindGround {
			return p, true
		}
	}
	return components.Platform{}, false
}
