package video

import (
	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/font"
)

// Shader darkens a color for drop shadows.
type Shader interface {
	Shade(c byte) byte
}

// PatchPainter draws font patches onto the full plane, scaled to the
// screen, with a drop shadow one logical pixel down and right.
type PatchPainter struct {
	frame  *Frame
	shader Shader
}

// NewPatchPainter creates a painter for frame.
func NewPatchPainter(frame *Frame, shader Shader) *PatchPainter {
	return &PatchPainter{frame: frame, shader: shader}
}

// DrawPatchWithShadow draws p with its top-left corner at logical (x, y).
func (pp *PatchPainter) DrawPatchWithShadow(x, y int, p font.Patch) {
	if p == nil {
		return
	}
	if pp.shader != nil {
		pp.draw(x+1, y+1, p, true)
	}
	pp.draw(x, y, p, false)
}

func (pp *PatchPainter) draw(x, y int, p font.Patch, shadow bool) {
	s := pp.frame.geom.Scale
	for py := 0; py < p.Height(); py++ {
		for px := 0; px < p.Width(); px++ {
			c, ok := p.At(px, py)
			if !ok {
				continue
			}
			for dy := 0; dy < s; dy++ {
				for dx := 0; dx < s; dx++ {
					sx, sy := (x+px)*s + dx, (y+py)*s + dy
					if shadow {
						c = pp.shader.Shade(pp.frame.Pixel(core.FullPlane, sx, sy))
					}
					pp.frame.SetPixel(core.FullPlane, sx, sy, c)
				}
			}
		}
	}
}
