// Package camera maps the fixed-size court onto a resizable screen.
package camera

// Viewport letterboxes the court into the screen, preserving its aspect ratio.
// Court units map to screen units with a uniform scale; terminals whose cells
// are taller than wide correct for that with PixelAspect.
type Viewport struct {
	// Screen dimensions in pixels (or cells)
	ScreenW, ScreenH float32

	// Court dimensions in court units
	CourtW, CourtH float32

	// Height of one screen unit relative to its width (1 for pixels, ~2 for terminal cells)
	PixelAspect float32

	// Derived on every resize
	ScaleX, ScaleY   float32
	OffsetX, OffsetY float32
}

// New creates a viewport for square pixels.
func New(screenW, screenH, courtW, courtH float32) *Viewport {
	return NewWithAspect(screenW, screenH, courtW, courtH, 1)
}

// NewWithAspect creates a viewport for screen units with the given aspect.
func NewWithAspect(screenW, screenH, courtW, courtH, pixelAspect float32) *Viewport {
	if pixelAspect <= 0 {
		pixelAspect = 1
	}
	v := &Viewport{
		CourtW:      courtW,
		CourtH:      courtH,
		PixelAspect: pixelAspect,
	}
	v.Resize(screenW, screenH)
	return v
}

// Resize updates the screen dimensions and recomputes scale and offsets.
func (v *Viewport) Resize(screenW, screenH float32) {
	v.ScreenW = screenW
	v.ScreenH = screenH

	// Largest scale at which the whole court fits
	s := screenW / v.CourtW
	if sy := screenH * v.PixelAspect / v.CourtH; sy < s {
		s = sy
	}
	if s <= 0 {
		s = 1
	}
	v.ScaleX = s
	v.ScaleY = s / v.PixelAspect

	v.OffsetX = (screenW - v.CourtW*v.ScaleX) / 2
	v.OffsetY = (screenH - v.CourtH*v.ScaleY) / 2
}

// CourtToScreen converts court coordinates to screen coordinates.
func (v *Viewport) CourtToScreen(cx, cy float32) (sx, sy float32) {
	return v.OffsetX + cx*v.ScaleX, v.OffsetY + cy*v.ScaleY
}

// ScreenToCourt converts screen coordinates to court coordinates.
// Points outside the letterboxed court map outside [0, CourtW] x [0, CourtH];
// callers clamp as needed.
func (v *Viewport) ScreenToCourt(sx, sy float32) (cx, cy float32) {
	return (sx - v.OffsetX) / v.ScaleX, (sy - v.OffsetY) / v.ScaleY
}

// CourtLen converts horizontal and vertical court lengths to screen lengths.
func (v *Viewport) CourtLen(w, h float32) (sw, sh float32) {
	return w * v.ScaleX, h * v.ScaleY
}

// CourtRect returns the screen rectangle occupied by the court.
func (v *Viewport) CourtRect() (x, y, w, h float32) {
	w, h = v.CourtLen(v.CourtW, v.CourtH)
	return v.OffsetX, v.OffsetY, w, h
}

// Contains reports whether a screen point lies inside the court rectangle.
func (v *Viewport) Contains(sx, sy float32) bool {
	cx, cy := v.ScreenToCourt(sx, sy)
	return cx >= 0 && cx <= v.CourtW && cy >= 0 && cy <= v.CourtH
}
