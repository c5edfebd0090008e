package blend

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette returns a 256-color palette of sixteen 16-shade ramps:
// ramp 0 is gray from black to white, the others sweep the hue circle
// from dark to light.
func DefaultPalette() color.Palette {
	pal := make(color.Palette, 256)
	for ramp := 0; ramp < 16; ramp++ {
		for shade := 0; shade < 16; shade++ {
			v := float64(shade) / 15
			var c colorful.Color
			if ramp == 0 {
				c = colorful.Color{R: v, G: v, B: v}
			} else {
				c = colorful.Hsv(float64(ramp-1)*24, 0.85-0.4*v, 0.15+0.85*v)
			}
			r, g, b := c.Clamped().RGB255()
			pal[ramp*16+shade] = color.RGBA{R: r, G: g, B: b, A: 0xff}
		}
	}
	return pal
}
