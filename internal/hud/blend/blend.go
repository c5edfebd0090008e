// Package blend provides the precomputed translucency tables the HUD
// composites text with.
package blend

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Table sizes.
const (
	Tint50Size = 256
	Tint33Size = 256 * 256
)

// Opacities the tables are built with.
const (
	// ShadeOpacity is the weight of black in Tint50.
	ShadeOpacity = 0.5

	// TextOpacity is the weight of the new pixel in Tint33. Text is 33%
	// translucent.
	TextOpacity = 2.0 / 3.0
)

// ErrPaletteSize is returned when a palette does not have 256 entries.
var ErrPaletteSize = errors.New("palette must have 256 colors")

// Tables holds the lookup tables.
type Tables struct {
	// Tint50 maps a color to itself darkened by 50%.
	Tint50 [Tint50Size]byte

	// Tint33 maps (existing<<8 | new) to new drawn 33% translucent over
	// existing.
	Tint33 []byte
}

// Shade returns c darkened by 50%.
func (t *Tables) Shade(c byte) byte {
	return t.Tint50[c]
}

// Translucent returns fg drawn translucent over bg.
func (t *Tables) Translucent(bg, fg byte) byte {
	return t.Tint33[int(bg)<<8|int(fg)]
}

// FromBytes wraps raw table lumps.
func FromBytes(tint50, tint33 []byte) (*Tables, error) {
	if len(tint50) < Tint50Size {
		return nil, fmt.Errorf("tint50 table: %d bytes, want %d", len(tint50), Tint50Size)
	}
	if len(tint33) < Tint33Size {
		return nil, fmt.Errorf("tint33 table: %d bytes, want %d", len(tint33), Tint33Size)
	}
	t := &Tables{Tint33: make([]byte, Tint33Size)}
	copy(t.Tint50[:], tint50)
	copy(t.Tint33, tint33)
	return t, nil
}

// Build computes both tables for a 256-color palette, matching each
// blended color back to the nearest palette entry.
func Build(pal color.Palette) (*Tables, error) {
	if len(pal) != 256 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteSize, len(pal))
	}

	colors := make([]colorful.Color, len(pal))
	for i, c := range pal {
		cc, _ := colorful.MakeColor(c)
		colors[i] = cc
	}
	m := newMatcher(colors)

	t := &Tables{Tint33: make([]byte, Tint33Size)}
	black := colorful.Color{}
	for i, c := range colors {
		t.Tint50[i] = m.nearest(c.BlendRgb(black, ShadeOpacity))
	}
	for bg, bc := range colors {
		for fg, fc := range colors {
			t.Tint33[bg<<8|fg] = m.nearest(bc.BlendRgb(fc, TextOpacity))
		}
	}
	return t, nil
}

// matcher finds nearest palette entries. Colors are rounded to 24-bit
// RGB before matching, so the cache returns the same entry whatever
// order colors are looked up in.
type matcher struct {
	colors []colorful.Color
	cache  map[uint32]byte
}

func newMatcher(colors []colorful.Color) *matcher {
	return &matcher{colors: colors, cache: make(map[uint32]byte, 1<<12)}
}

func (m *matcher) nearest(c colorful.Color) byte {
	r, g, b := c.Clamped().RGB255()
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if idx, ok := m.cache[key]; ok {
		return idx
	}

	c = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, -1.0
	for i, p := range m.colors {
		dr, dg, db := p.R-c.R, p.G-c.G, p.B-c.B
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	m.cache[key] = byte(best)
	return byte(best)
}
