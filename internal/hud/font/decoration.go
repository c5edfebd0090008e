package font

import "github.com/dshills/hudtext/internal/hud/core"

// DecorationRows is the height of an underscore pattern in source pixels.
const DecorationRows = 4

// Span is a horizontal run of source columns.
type Span struct {
	X, Width int
}

// Decoration holds the two underscore patterns stamped under a message.
// Each pattern is DecorationRows rows of core.OriginalWidth source pixels
// using the Skip and Outline markers.
type Decoration struct {
	Wide   []byte
	Narrow []byte
}

// Pattern returns the narrow pattern when narrow is set and the wide one
// otherwise.
func (d *Decoration) Pattern(narrow bool) []byte {
	if narrow {
		return d.Narrow
	}
	return d.Wide
}

// NewUnderscorePattern builds a pattern with a two-row underline of color
// under each span, outlined like the glyphs.
func NewUnderscorePattern(spans []Span, color byte) []byte {
	w := core.OriginalWidth
	mask := make([][]bool, 2)
	for y := range mask {
		mask[y] = make([]bool, w)
		for _, s := range spans {
			for x := max(s.X, 0); x < min(s.X+s.Width, w); x++ {
				mask[y][x] = true
			}
		}
	}
	return outlined(mask, w, DecorationRows, 0, 1, func(int) byte { return color })
}
