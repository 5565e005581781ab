// Package camera maps the fixed-size world into a viewport.
package camera

// Camera fits the whole world into the viewport at the largest scale that
// preserves its aspect ratio, centring it between letterbox bars.
type Camera struct {
	// Viewport dimensions (window pixels or terminal cells)
	ViewportW, ViewportH float32

	// World dimensions
	WorldW, WorldH float32

	// CellAspect is the height of one viewport unit over its width.
	// 1 for pixels; about 2 for terminal cells.
	CellAspect float32

	// Derived on Resize
	scaleX, scaleY float32
	offX, offY     float32
}

// New creates a camera for square viewport units.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	return NewWithAspect(viewportW, viewportH, worldW, worldH, 1)
}

// NewWithAspect creates a camera whose viewport units are cellAspect times
// taller than they are wide.
func NewWithAspect(viewportW, viewportH, worldW, worldH, cellAspect float32) *Camera {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	c := &Camera{
		WorldW:     worldW,
		WorldH:     worldH,
		CellAspect: cellAspect,
	}
	c.fit(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and refits the world.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.fit(viewportW, viewportH)
}

func (c *Camera) fit(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	// Scale in horizontal units per world unit; vertical units are taller
	sx := viewportW / c.WorldW
	sy := viewportH * c.CellAspect / c.WorldH
	scale := sx
	if sy < scale {
		scale = sy
	}
	c.scaleX = scale
	c.scaleY = scale / c.CellAspect

	c.offX = (viewportW - c.WorldW*c.scaleX) / 2
	c.offY = (viewportH - c.WorldH*c.scaleY) / 2
}

// Zoom returns the horizontal viewport units per world unit.
func (c *Camera) Zoom() float32 {
	return c.scaleX
}

// ZoomY returns the vertical viewport units per world unit.
func (c *Camera) ZoomY() float32 {
	return c.scaleY
}

// WorldToScreen converts world coordinates to viewport coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.offX + wx*c.scaleX, c.offY + wy*c.scaleY
}

// ScreenToWorld converts viewport coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.offX) / c.scaleX, (sy - c.offY) / c.scaleY
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// overlaps the world area (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.WorldW &&
		wy+radius >= 0 && wy-radius <= c.WorldH
}

// WorldRect returns the viewport rectangle covered by the world.
// Everything outside it is letterbox.
func (c *Camera) WorldRect() (x, y, w, h float32) {
	return c.offX, c.offY, c.WorldW * c.scaleX, c.WorldH * c.scaleY
}
