package render

import (
	"testing"

	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
)

func newTestLine(x, y int, text string) *line.Line {
	l := &line.Line{}
	l.Init(x, y, font.NewCharset(font.DefaultRamp), '!')
	l.AppendString(text)
	return l
}

func softwareLayout(l *line.Line) Layout {
	s := &softwareStrategy{charset: font.NewCharset(font.DefaultRamp)}
	return layoutLine(l, true, s.advance)
}

func glyphAdvance(c byte) int {
	return font.NewCharset(font.DefaultRamp).Slot(int(c)-font.FirstChar).Width() - 1
}

func TestLayoutKerning(t *testing.T) {
	kerned := softwareLayout(newTestLine(10, 0, "T."))
	plain := softwareLayout(newTestLine(10, 0, "TA"))

	if len(kerned.Glyphs) != 2 || len(plain.Glyphs) != 2 {
		t.Fatalf("expected two glyphs each, got %d and %d", len(kerned.Glyphs), len(plain.Glyphs))
	}
	want := 10 + glyphAdvance('T')
	if plain.Glyphs[1].X != want {
		t.Errorf("unkerned X = %d, want %d", plain.Glyphs[1].X, want)
	}
	if kerned.Glyphs[1].X != want-1 {
		t.Errorf("kerned X = %d, want %d", kerned.Glyphs[1].X, want-1)
	}
}

func TestLayoutKernTable(t *testing.T) {
	tests := []struct {
		prev, c byte
		want    int
	}{
		{'.', '1', -1},
		{'.', '7', -1},
		{',', 'Y', -1},
		{'T', ',', -1},
		{'Y', '.', -1},
		{'T', 'T', 0},
		{0, '.', 0},
	}

	for _, tt := range tests {
		if got := kern(tt.prev, tt.c); got != tt.want {
			t.Errorf("kern(%q, %q) = %d, want %d", tt.prev, tt.c, got, tt.want)
		}
	}
}

func TestLayoutKerningScopedToLine(t *testing.T) {
	s := &softwareStrategy{charset: font.NewCharset(font.DefaultRamp)}
	layoutLine(newTestLine(0, 0, "T"), true, s.advance)

	lay := layoutLine(newTestLine(0, 0, "."), true, s.advance)
	if lay.Glyphs[0].X != 0 {
		t.Errorf("X = %d, want 0; kerning must not carry across lines", lay.Glyphs[0].X)
	}
}

func TestLayoutSpaces(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"word space", "A B", 10 + glyphAdvance('A') + SpaceWidth},
		{"sentence space", "A. B", 10 + glyphAdvance('A') + glyphAdvance('.') + SentenceSpaceWidth},
		{"after bang", "!  B", 10 + glyphAdvance('!') + SentenceSpaceWidth + SpaceWidth},
		{"unsupported char", "A{B", 10 + glyphAdvance('A') + SpaceWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lay := softwareLayout(newTestLine(10, 0, tt.text))
			last := lay.Glyphs[len(lay.Glyphs)-1]
			if last.Char != 'B' {
				t.Fatalf("last glyph = %q, want 'B'", last.Char)
			}
			if last.X != tt.want {
				t.Errorf("X = %d, want %d", last.X, tt.want)
			}
		})
	}
}

func TestLayoutWidth(t *testing.T) {
	lay := softwareLayout(newTestLine(0, 0, "AB C"))
	want := glyphAdvance('A') + glyphAdvance('B') + SpaceWidth + glyphAdvance('C')
	if lay.Width != want {
		t.Errorf("Width = %d, want %d", lay.Width, want)
	}
}

func TestLayoutCaseFolding(t *testing.T) {
	lay := softwareLayout(newTestLine(0, 0, "picked up a clip."))

	var got []byte
	for _, g := range lay.Glyphs {
		got = append(got, g.Char)
	}
	if string(got) != "PICKEDUPACLIP." {
		t.Errorf("glyphs = %q, want %q", got, "PICKEDUPACLIP.")
	}
}

func TestLayoutOpeningQuotes(t *testing.T) {
	lay := softwareLayout(newTestLine(0, 0, `"HI" 'A'`))

	slots := make([]int, len(lay.Glyphs))
	for i, g := range lay.Glyphs {
		slots[i] = g.Slot
	}
	want := []int{
		font.OpenDoubleQuote, 'H' - font.FirstChar, 'I' - font.FirstChar, '"' - font.FirstChar,
		font.OpenSingleQuote, 'A' - font.FirstChar, '\'' - font.FirstChar,
	}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d = %d, want %d", i, slots[i], want[i])
		}
	}
}

func TestLayoutNewline(t *testing.T) {
	lay := softwareLayout(newTestLine(10, 20, "AB\nC"))

	c := lay.Glyphs[2]
	if c.X != 10 || c.Y != 20+LinePitch {
		t.Errorf("C at (%d, %d), want (10, %d)", c.X, c.Y, 20+LinePitch)
	}
	if lay.Bottom != 20+LinePitch {
		t.Errorf("Bottom = %d, want %d", lay.Bottom, 20+LinePitch)
	}
}

func TestLayoutStartChar(t *testing.T) {
	l := &line.Line{}
	l.Init(0, 0, font.NewCharset(font.DefaultRamp), 'A')
	l.AppendString("1A")

	lay := softwareLayout(l)
	if len(lay.Glyphs) != 1 || lay.Glyphs[0].X != SpaceWidth {
		t.Errorf("characters below the start char should advance like spaces: %+v", lay.Glyphs)
	}
}
