package render

import (
	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
)

// Capability identifies how glyphs are put on screen.
type Capability uint8

const (
	// SoftwareGlyphs rasterizes the built-in charset into the compositing
	// buffer and blends the buffer onto the frame.
	SoftwareGlyphs Capability = iota

	// AssetPatches hands each glyph of the line's font to a PatchDrawer.
	AssetPatches
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case SoftwareGlyphs:
		return "software-glyph"
	case AssetPatches:
		return "asset-patch"
	default:
		return "unknown"
	}
}

// PatchDrawer draws a font patch with a drop shadow at logical (x, y).
type PatchDrawer interface {
	DrawPatchWithShadow(x, y int, p font.Patch)
}

// strategy draws the glyphs a layout placed.
type strategy interface {
	capability() Capability
	advance(p Placement, l *line.Line) int
	draw(p Placement, l *line.Line)
}

// softwareStrategy rasterizes built-in glyphs into the scratch buffer at
// the screen scale.
type softwareStrategy struct {
	charset *font.Charset
	scratch []byte
	geom    core.Geometry
}

func (s *softwareStrategy) capability() Capability { return SoftwareGlyphs }

func (s *softwareStrategy) advance(p Placement, _ *line.Line) int {
	g := s.charset.Slot(p.Slot)
	if g == nil {
		return 0
	}
	return g.Width() - 1
}

// draw writes the glyph one logical row above the cursor: outline pixels
// become core.Shade, skipped pixels are left alone and every other value
// is copied into a scale x scale block.
func (s *softwareStrategy) draw(p Placement, _ *line.Line) {
	g := s.charset.Slot(p.Slot)
	if g == nil {
		return
	}
	scale := s.geom.Scale
	w := g.Width()
	for y1 := 0; y1 < font.GlyphRows; y1++ {
		for x1 := 0; x1 < w; x1++ {
			src := g.Pixel(x1, y1)
			if src == font.Skip {
				continue
			}
			if src == font.Outline {
				src = core.Shade
			}
			s.block((p.X+x1)*scale, (p.Y-1+y1)*scale, src)
		}
	}
}

// block fills a scale x scale block of the scratch buffer, clipped to the
// screen.
func (s *softwareStrategy) block(x, y int, c byte) {
	scale := s.geom.Scale
	for dy := 0; dy < scale; dy++ {
		py := y + dy
		if py < 0 || py >= s.geom.Height {
			continue
		}
		for dx := 0; dx < scale; dx++ {
			px := x + dx
			if px < 0 || px >= s.geom.Width {
				continue
			}
			s.scratch[py*s.geom.Width+px] = c
		}
	}
}

// patchStrategy draws glyphs from the line's own font through a
// PatchDrawer.
type patchStrategy struct {
	drawer PatchDrawer
}

func (s *patchStrategy) capability() Capability { return AssetPatches }

func (s *patchStrategy) patch(p Placement, l *line.Line) font.Patch {
	if l.Font() == nil {
		return nil
	}
	return l.Font().Glyph(int(p.Char) - int(l.StartChar()))
}

func (s *patchStrategy) advance(p Placement, l *line.Line) int {
	if g := s.patch(p, l); g != nil {
		return g.Width()
	}
	return 0
}

func (s *patchStrategy) draw(p Placement, l *line.Line) {
	if g := s.patch(p, l); g != nil {
		s.drawer.DrawPatchWithShadow(p.X, p.Y, g)
	}
}
