// Package core provides shared types for the HUD subsystem.
// This package breaks import cycles between the renderer, the frame
// buffer and the widgets.
package core

// Pixel values with a fixed meaning in the compositing buffer.
const (
	// Shade marks a pixel that composites as a 50% darkening of the
	// frame underneath (glyph outlines).
	Shade byte = 0

	// Untouched marks a pixel the rasterizer never wrote.
	Untouched byte = 251
)

// Default screen geometry, matching the classic 320x200 layout drawn at
// double resolution.
const (
	OriginalWidth  = 320
	OriginalHeight = 200
	DefaultScale   = 2
)

// Rect is a rectangle in screen pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// ContainsRow returns true if row y lies within the vertical span.
func (r Rect) ContainsRow(y int) bool {
	return y >= r.Y && y < r.Bottom()
}

// IsEmpty returns true if the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Geometry describes the screen and the active game viewport.
type Geometry struct {
	// Width and Height are the frame dimensions in pixels.
	Width, Height int

	// Scale is the integer factor between logical HUD coordinates and
	// screen pixels.
	Scale int

	// Viewport is the area the 3D view is drawn into. It equals the whole
	// screen when the view is full size.
	Viewport Rect
}

// DefaultGeometry returns a 640x400 screen with a full-screen viewport.
func DefaultGeometry() Geometry {
	w := OriginalWidth * DefaultScale
	h := OriginalHeight * DefaultScale
	return Geometry{
		Width:    w,
		Height:   h,
		Scale:    DefaultScale,
		Viewport: Rect{Width: w, Height: h},
	}
}

// Bounds returns the full screen rectangle.
func (g Geometry) Bounds() Rect {
	return Rect{Width: g.Width, Height: g.Height}
}

// Inset returns true if the viewport does not reach the left screen edge,
// meaning border strips are visible around it.
func (g Geometry) Inset() bool {
	return g.Viewport.X != 0
}

// Plane identifies one of the frame buffer's byte planes.
type Plane uint8

const (
	// FullPlane is the visible frame everything is drawn into.
	FullPlane Plane = iota

	// ViewLimitedPlane holds the background the border is restored from
	// and the blend source when the view is reduced.
	ViewLimitedPlane
)

// String returns the plane name.
func (p Plane) String() string {
	switch p {
	case FullPlane:
		return "full"
	case ViewLimitedPlane:
		return "view-limited"
	default:
		return "unknown"
	}
}

// FullScreenSize is the first screen size setting at which the view fills
// the screen horizontally.
const FullScreenSize = 7

// State is the game state the HUD consults while drawing. It is owned by
// the caller and only read by the HUD.
type State struct {
	// Automap is true while the automap replaces the 3D view.
	Automap bool

	// Widescreen is true when the display uses the wide layout.
	Widescreen bool

	// Translucency enables 33% blending of HUD text.
	Translucency bool

	// ScreenSize is the view size setting; values below FullScreenSize
	// shrink the view.
	ScreenSize int
}

// Reduced returns true if the view is drawn smaller than the screen.
func (s State) Reduced() bool {
	return s.ScreenSize < FullScreenSize
}

// BlendPlane returns the plane text is blended against.
func (s State) BlendPlane() Plane {
	if s.Reduced() && !s.Automap {
		return ViewLimitedPlane
	}
	return FullPlane
}

// NarrowAutomap returns true if the automap is shown in the narrow layout.
func (s State) NarrowAutomap() bool {
	return s.Automap && !s.Widescreen
}
