package font

// Slot layout of the built-in character set. Slot i holds character
// '!'+i; the two slots past '_' hold the opening curly quotes.
const (
	FirstChar = '!'
	LastChar  = '_'

	OpenDoubleQuote = 64
	OpenSingleQuote = 65

	Slots = 66
)

// Ramp holds one palette color per glyph body row, top to bottom.
type Ramp [BitmapRows]byte

// DefaultRamp is a light gray gradient in DefaultPalette.
var DefaultRamp = Ramp{15, 15, 14, 14, 13, 12, 11}

// Charset is the built-in small font.
type Charset struct {
	glyphs [Slots]*Glyph
}

// NewCharset builds the built-in font colored with ramp. Ramp colors
// must not collide with the Skip or Outline markers.
func NewCharset(ramp Ramp) *Charset {
	cs := &Charset{}
	for slot, rows := range smallBitmaps {
		mask := parseMask(rows[:])
		w := len(rows[0]) + 2
		cs.glyphs[slot] = NewGlyph(outlined(mask, w, GlyphRows, 1, 1, func(row int) byte {
			return ramp[row]
		}))
	}
	return cs
}

// Slot returns the glyph in slot i, or nil.
func (cs *Charset) Slot(i int) *Glyph {
	if i < 0 || i >= Slots {
		return nil
	}
	return cs.glyphs[i]
}

// Height implements Set.
func (cs *Charset) Height() int {
	return GlyphRows
}

// Glyph implements Set; index 0 is '!'.
func (cs *Charset) Glyph(i int) Patch {
	g := cs.Slot(i)
	if g == nil {
		return nil
	}
	return g
}

var smallBitmaps = map[int][BitmapRows]string{
	'!' - FirstChar:  {"#", "#", "#", "#", "#", ".", "#"},
	'"' - FirstChar:  {"#.#", "#.#", "...", "...", "...", "...", "..."},
	'#' - FirstChar:  {".#.#.", ".#.#.", "#####", ".#.#.", "#####", ".#.#.", ".#.#."},
	'$' - FirstChar:  {"..#..", ".####", "#.#..", ".###.", "..#.#", "####.", "..#.."},
	'%' - FirstChar:  {"##...", "##..#", "...#.", "..#..", ".#...", "#..##", "...##"},
	'&' - FirstChar:  {".##..", "#..#.", "#.#..", ".#...", "#.#.#", "#..#.", ".##.#"},
	'\'' - FirstChar: {"#", "#", ".", ".", ".", ".", "."},
	'(' - FirstChar:  {".#", "#.", "#.", "#.", "#.", "#.", ".#"},
	')' - FirstChar:  {"#.", ".#", ".#", ".#", ".#", ".#", "#."},
	'*' - FirstChar:  {".....", "#.#.#", ".###.", "#####", ".###.", "#.#.#", "....."},
	'+' - FirstChar:  {".....", "..#..", "..#..", "#####", "..#..", "..#..", "....."},
	',' - FirstChar:  {"..", "..", "..", "..", ".#", ".#", "#."},
	'-' - FirstChar:  {"...", "...", "...", "###", "...", "...", "..."},
	'.' - FirstChar:  {".", ".", ".", ".", ".", ".", "#"},
	'/' - FirstChar:  {"....#", "...#.", "...#.", "..#..", ".#...", ".#...", "#...."},
	'0' - FirstChar:  {".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."},
	'1' - FirstChar:  {".#.", "##.", ".#.", ".#.", ".#.", ".#.", "###"},
	'2' - FirstChar:  {".###.", "#...#", "....#", "..##.", ".#...", "#....", "#####"},
	'3' - FirstChar:  {".###.", "#...#", "....#", "..##.", "....#", "#...#", ".###."},
	'4' - FirstChar:  {"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#."},
	'5' - FirstChar:  {"#####", "#....", "####.", "....#", "....#", "#...#", ".###."},
	'6' - FirstChar:  {"..##.", ".#...", "#....", "####.", "#...#", "#...#", ".###."},
	'7' - FirstChar:  {"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#..."},
	'8' - FirstChar:  {".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."},
	'9' - FirstChar:  {".###.", "#...#", "#...#", ".####", "....#", "...#.", ".##.."},
	':' - FirstChar:  {".", "#", ".", ".", ".", "#", "."},
	';' - FirstChar:  {"..", ".#", "..", "..", ".#", ".#", "#."},
	'<' - FirstChar:  {"...#", "..#.", ".#..", "#...", ".#..", "..#.", "...#"},
	'=' - FirstChar:  {"....", "....", "####", "....", "####", "....", "...."},
	'>' - FirstChar:  {"#...", ".#..", "..#.", "...#", "..#.", ".#..", "#..."},
	'?' - FirstChar:  {".###.", "#...#", "....#", "..##.", "..#..", ".....", "..#.."},
	'@' - FirstChar:  {".###.", "#...#", "#.###", "#.#.#", "#.###", "#....", ".###."},
	'A' - FirstChar:  {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B' - FirstChar:  {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C' - FirstChar:  {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	'D' - FirstChar:  {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	'E' - FirstChar:  {"####", "#...", "#...", "###.", "#...", "#...", "####"},
	'F' - FirstChar:  {"####", "#...", "#...", "###.", "#...", "#...", "#..."},
	'G' - FirstChar:  {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".####"},
	'H' - FirstChar:  {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I' - FirstChar:  {"###", ".#.", ".#.", ".#.", ".#.", ".#.", "###"},
	'J' - FirstChar:  {"...#", "...#", "...#", "...#", "...#", "#..#", ".##."},
	'K' - FirstChar:  {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L' - FirstChar:  {"#...", "#...", "#...", "#...", "#...", "#...", "####"},
	'M' - FirstChar:  {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N' - FirstChar:  {"#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#", "#...#"},
	'O' - FirstChar:  {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P' - FirstChar:  {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q' - FirstChar:  {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R' - FirstChar:  {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S' - FirstChar:  {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T' - FirstChar:  {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U' - FirstChar:  {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V' - FirstChar:  {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W' - FirstChar:  {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "##.##", "#...#"},
	'X' - FirstChar:  {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y' - FirstChar:  {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z' - FirstChar:  {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},
	'[' - FirstChar:  {"###", "#..", "#..", "#..", "#..", "#..", "###"},
	'\\' - FirstChar: {"#....", ".#...", ".#...", "..#..", "...#.", "...#.", "....#"},
	']' - FirstChar:  {"###", "..#", "..#", "..#", "..#", "..#", "###"},
	'^' - FirstChar:  {"..#..", ".#.#.", "#...#", ".....", ".....", ".....", "....."},
	'_' - FirstChar:  {".....", ".....", ".....", ".....", ".....", ".....", "#####"},
	OpenDoubleQuote:  {".#.#", "#.#.", "#.#.", "....", "....", "....", "...."},
	OpenSingleQuote:  {".#", "#.", "#.", "..", "..", "..", ".."},
}
