package video

import (
	"errors"
	"testing"

	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/font"
)

func smallGeometry() core.Geometry {
	return core.Geometry{
		Width:    20,
		Height:   10,
		Scale:    2,
		Viewport: core.Rect{X: 4, Y: 2, Width: 12, Height: 6},
	}
}

func TestNewFrameValidation(t *testing.T) {
	tests := []struct {
		name string
		geom core.Geometry
		want error
	}{
		{"zero size", core.Geometry{Scale: 1}, ErrInvalidGeometry},
		{"zero scale", core.Geometry{Width: 10, Height: 10, Viewport: core.Rect{Width: 1, Height: 1}}, ErrInvalidGeometry},
		{"viewport too wide", core.Geometry{Width: 10, Height: 10, Scale: 1, Viewport: core.Rect{X: 5, Width: 6, Height: 1}}, ErrViewportOutside},
		{"empty viewport", core.Geometry{Width: 10, Height: 10, Scale: 1}, ErrViewportOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrame(tt.geom)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewFrame error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewFrame(smallGeometry()); err != nil {
		t.Errorf("valid geometry failed: %v", err)
	}
}

func TestFramePixelBounds(t *testing.T) {
	f, _ := NewFrame(smallGeometry())

	f.SetPixel(core.FullPlane, -1, 0, 9)
	f.SetPixel(core.FullPlane, 20, 0, 9)
	f.SetPixel(core.FullPlane, 3, 4, 9)

	if f.Pixel(core.FullPlane, 3, 4) != 9 {
		t.Error("in-range pixel should be written")
	}
	if f.Pixel(core.FullPlane, 20, 0) != 0 {
		t.Error("out-of-range pixel should read 0")
	}
	if f.Pixel(core.ViewLimitedPlane, 3, 4) != 0 {
		t.Error("planes should be independent")
	}
}

func TestFrameEraseSpan(t *testing.T) {
	f, _ := NewFrame(smallGeometry())
	f.Fill(core.ViewLimitedPlane, f.Geometry().Bounds(), 5)
	f.Fill(core.FullPlane, f.Geometry().Bounds(), 7)

	got := f.EraseSpan(3, 18, 10)
	if want := (core.Rect{X: 18, Y: 3, Width: 2, Height: 1}); got != want {
		t.Errorf("EraseSpan = %+v, want %+v", got, want)
	}
	if f.Pixel(core.FullPlane, 18, 3) != 5 || f.Pixel(core.FullPlane, 19, 3) != 5 {
		t.Error("span should be restored from background")
	}
	if f.Pixel(core.FullPlane, 17, 3) != 7 {
		t.Error("pixels before the span should be kept")
	}

	if !f.EraseSpan(-1, 0, 5).IsEmpty() {
		t.Error("off-screen row should erase nothing")
	}
}

func TestFrameSetViewport(t *testing.T) {
	f, _ := NewFrame(smallGeometry())

	if err := f.SetViewport(core.Rect{X: 0, Y: 0, Width: 20, Height: 10}); err != nil {
		t.Fatalf("SetViewport: %v", err)
	}
	if f.Geometry().Inset() {
		t.Error("full viewport should not be inset")
	}
	if err := f.SetViewport(core.Rect{X: 10, Width: 20, Height: 1}); err == nil {
		t.Error("viewport past the edge should fail")
	}
}

type halfShader struct{}

func (halfShader) Shade(c byte) byte { return c / 2 }

func TestPatchPainterShadow(t *testing.T) {
	f, _ := NewFrame(smallGeometry())
	f.Fill(core.FullPlane, f.Geometry().Bounds(), 40)

	// A single opaque pixel of color 90.
	pixels := make([]byte, font.GlyphRows)
	for i := range pixels {
		pixels[i] = font.Skip
	}
	pixels[0] = 90
	g := font.NewGlyph(pixels)

	NewPatchPainter(f, halfShader{}).DrawPatchWithShadow(1, 1, g)

	if f.Pixel(core.FullPlane, 2, 2) != 90 || f.Pixel(core.FullPlane, 3, 3) != 90 {
		t.Error("patch pixel should cover a scale-sized block")
	}
	if f.Pixel(core.FullPlane, 4, 4) != 20 {
		t.Errorf("shadow pixel = %d, want 20", f.Pixel(core.FullPlane, 4, 4))
	}
	if f.Pixel(core.FullPlane, 6, 6) != 40 {
		t.Error("pixels outside the patch should be untouched")
	}
}
