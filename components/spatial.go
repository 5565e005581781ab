package components

// Position represents a world position in world units.
type Position struct {
	X, Y float64
}

// Velocity represents a per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward, so Y is the top edge and Y+H the bottom edge.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() Position {
	return Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
