// Package video provides the paletted frame buffer the HUD draws into.
package video

import (
	"errors"
	"fmt"

	"github.com/dshills/hudtext/internal/hud/core"
)

// Errors returned by frame construction.
var (
	// ErrInvalidGeometry indicates non-positive screen dimensions or scale.
	ErrInvalidGeometry = errors.New("invalid screen geometry")

	// ErrViewportOutside indicates the viewport does not fit on screen.
	ErrViewportOutside = errors.New("viewport outside screen")
)

// Frame holds the byte planes of one screen. The full plane is what gets
// displayed; the view-limited plane holds the background the border is
// restored from.
type Frame struct {
	geom   core.Geometry
	planes [2][]byte
}

// NewFrame allocates a frame for the given geometry.
func NewFrame(geom core.Geometry) (*Frame, error) {
	if err := validate(geom); err != nil {
		return nil, err
	}
	f := &Frame{geom: geom}
	for i := range f.planes {
		f.planes[i] = make([]byte, geom.Width*geom.Height)
	}
	return f, nil
}

func validate(geom core.Geometry) error {
	if geom.Width <= 0 || geom.Height <= 0 || geom.Scale <= 0 {
		return fmt.Errorf("%w: %dx%d scale %d", ErrInvalidGeometry, geom.Width, geom.Height, geom.Scale)
	}
	vp := geom.Viewport
	if vp.X < 0 || vp.Y < 0 || vp.Width <= 0 || vp.Height <= 0 ||
		vp.Right() > geom.Width || vp.Bottom() > geom.Height {
		return fmt.Errorf("%w: %+v", ErrViewportOutside, vp)
	}
	return nil
}

// Geometry returns the frame geometry.
func (f *Frame) Geometry() core.Geometry {
	return f.geom
}

// SetViewport moves the game viewport. The planes are kept.
func (f *Frame) SetViewport(vp core.Rect) error {
	geom := f.geom
	geom.Viewport = vp
	if err := validate(geom); err != nil {
		return err
	}
	f.geom = geom
	return nil
}

// Plane returns the raw row-major bytes of plane p.
func (f *Frame) Plane(p core.Plane) []byte {
	if p == core.ViewLimitedPlane {
		return f.planes[1]
	}
	return f.planes[0]
}

// Pixel returns a pixel of plane p, 0 when out of range.
func (f *Frame) Pixel(p core.Plane, x, y int) byte {
	if !f.inside(x, y) {
		return 0
	}
	return f.Plane(p)[y*f.geom.Width+x]
}

// SetPixel writes a pixel of plane p. Out-of-range writes are dropped.
func (f *Frame) SetPixel(p core.Plane, x, y int, c byte) {
	if !f.inside(x, y) {
		return
	}
	f.Plane(p)[y*f.geom.Width+x] = c
}

// Fill fills a rectangle of plane p.
func (f *Frame) Fill(p core.Plane, r core.Rect, c byte) {
	r = r.Intersect(f.geom.Bounds())
	plane := f.Plane(p)
	for y := r.Y; y < r.Bottom(); y++ {
		row := plane[y*f.geom.Width+r.X : y*f.geom.Width+r.Right()]
		for i := range row {
			row[i] = c
		}
	}
}

// EraseSpan restores n pixels of row y starting at x from the background
// plane. It returns the span actually restored after clipping.
func (f *Frame) EraseSpan(y, x, n int) core.Rect {
	span := core.Rect{X: x, Y: y, Width: n, Height: 1}.Intersect(f.geom.Bounds())
	if span.IsEmpty() {
		return span
	}
	off := y*f.geom.Width + span.X
	copy(f.planes[0][off:off+span.Width], f.planes[1][off:off+span.Width])
	return span
}

// SnapshotBackground copies the full plane into the background plane.
func (f *Frame) SnapshotBackground() {
	copy(f.planes[1], f.planes[0])
}

func (f *Frame) inside(x, y int) bool {
	return x >= 0 && x < f.geom.Width && y >= 0 && y < f.geom.Height
}
