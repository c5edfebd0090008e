package render

import (
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
)

// Layout constants in logical pixels.
const (
	// LinePitch is the vertical distance between rows of a multi-row line.
	LinePitch = 9

	// SpaceWidth is the advance of a space.
	SpaceWidth = 3

	// SentenceSpaceWidth is the advance of a space after '.', '!' or '?'.
	SentenceSpaceWidth = 5
)

// kernPair adjusts the cursor when second follows first.
type kernPair struct {
	first, second byte
	adjust        int
}

var kerning = []kernPair{
	{'.', '1', -1},
	{'.', '7', -1},
	{',', '1', -1},
	{',', '7', -1},
	{',', 'Y', -1},
	{'T', '.', -1},
	{'T', ',', -1},
	{'Y', '.', -1},
	{'Y', ',', -1},
}

// kern returns the cursor adjustment for c drawn after prev.
func kern(prev, c byte) int {
	adjust := 0
	for _, k := range kerning {
		if prev == k.first && c == k.second {
			adjust += k.adjust
		}
	}
	return adjust
}

// Placement is one glyph positioned by the layout pass.
type Placement struct {
	// X and Y are the logical cursor position the glyph is drawn at.
	X, Y int

	// Char is the case-folded character.
	Char byte

	// Slot is the built-in charset slot, with opening quotes resolved.
	Slot int
}

// Layout is the result of laying out one line.
type Layout struct {
	Glyphs []Placement

	// Width is the total cursor advance.
	Width int

	// Bottom is the logical y of the last row.
	Bottom int
}

// advanceFunc returns how far the cursor moves after drawing p.
type advanceFunc func(p Placement, l *line.Line) int

// layoutLine positions every drawable character of l. Kerning state is
// scoped to this call.
func layoutLine(l *line.Line, kerned bool, advance advanceFunc) Layout {
	lay := Layout{Bottom: l.Y()}
	x, y := l.X(), l.Y()
	var prev byte

	for i := 0; i < l.Len(); i++ {
		raw := l.At(i)
		c := upper(raw)
		if c == '\n' {
			x = l.X()
			y += LinePitch
			lay.Bottom = y
			continue
		}

		var w int
		if c != ' ' && c >= l.StartChar() && c <= font.LastChar {
			p := Placement{Char: c, Slot: int(c) - font.FirstChar}
			if i == 0 || l.At(i-1) == ' ' {
				switch c {
				case '"':
					p.Slot = font.OpenDoubleQuote
				case '\'':
					p.Slot = font.OpenSingleQuote
				}
			}
			if kerned {
				x += kern(prev, c)
			}
			p.X, p.Y = x, y
			w = advance(p, l)
			lay.Glyphs = append(lay.Glyphs, p)
			x += w
			prev = c
		} else {
			w = SpaceWidth
			switch l.At(i - 1) {
			case '.', '!', '?':
				w = SentenceSpaceWidth
			}
			x += w
		}
		lay.Width += w
	}
	return lay
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// DisplayText returns the text of l with the case folding applied when it
// is drawn.
func DisplayText(l *line.Line) string {
	b := make([]byte, l.Len())
	for i := range b {
		b[i] = upper(l.At(i))
	}
	return string(b)
}
