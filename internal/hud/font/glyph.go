package font

// Built-in glyph dimensions.
const (
	// GlyphRows is the number of source rows in every built-in glyph.
	GlyphRows = 10

	// BitmapRows is the number of rows of the glyph body; the remaining
	// rows hold the outline.
	BitmapRows = 7
)

// Glyph is a built-in glyph: GlyphRows rows of source pixels stored row
// major, using Skip and Outline as markers.
type Glyph struct {
	pixels []byte
}

// NewGlyph creates a glyph from raw row-major pixels. The pixel count must
// be a multiple of GlyphRows.
func NewGlyph(pixels []byte) *Glyph {
	return &Glyph{pixels: pixels}
}

// Width returns the glyph width, derived from the pixel count.
func (g *Glyph) Width() int {
	return len(g.pixels) / GlyphRows
}

// Height returns GlyphRows.
func (g *Glyph) Height() int {
	return GlyphRows
}

// Pixel returns the raw source value at (x, y), Skip when out of range.
func (g *Glyph) Pixel(x, y int) byte {
	w := g.Width()
	if x < 0 || x >= w || y < 0 || y >= GlyphRows {
		return Skip
	}
	return g.pixels[y*w+x]
}

// At implements Patch. Outline pixels report color 0.
func (g *Glyph) At(x, y int) (byte, bool) {
	switch p := g.Pixel(x, y); p {
	case Skip:
		return 0, false
	case Outline:
		return 0, true
	default:
		return p, true
	}
}

// outlined turns a bitmap mask into marker pixels: set cells take the
// color of their row, clear cells touching a set cell become Outline and
// everything else is Skip. The mask is offset by (ox, oy) inside a w x h
// grid.
func outlined(mask [][]bool, w, h, ox, oy int, color func(row int) byte) []byte {
	set := func(x, y int) bool {
		my, mx := y-oy, x-ox
		if my < 0 || my >= len(mask) || mx < 0 || mx >= len(mask[my]) {
			return false
		}
		return mask[my][mx]
	}

	pixels := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch {
			case set(x, y):
				pixels[i] = color(y - oy)
			case touches(set, x, y):
				pixels[i] = Outline
			default:
				pixels[i] = Skip
			}
		}
	}
	return pixels
}

func touches(set func(x, y int) bool, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && set(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// parseMask converts rows of '#' and '.' into a mask.
func parseMask(rows []string) [][]bool {
	mask := make([][]bool, len(rows))
	for y, row := range rows {
		mask[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			mask[y][x] = row[x] == '#'
		}
	}
	return mask
}
