// Package line provides the fixed-capacity text line the HUD widgets are
// built from.
package line

import "github.com/dshills/hudtext/internal/hud/font"

// MaxLength is the capacity of a line in bytes.
const MaxLength = 256

// MaxUpdate is the value NeedsUpdate is set to when the text changes.
// Erase passes count it down, so a changed line keeps being erased for a
// few frames after it was last modified.
const MaxUpdate = 4

// Line is a bounded character buffer positioned on screen.
type Line struct {
	buf [MaxLength + 1]byte
	n   int

	x, y      int
	set       font.Set
	startChar byte

	// NeedsUpdate is nonzero while the line must be erased and redrawn.
	NeedsUpdate int
}

// Init positions the line, assigns its font and clears it.
func (l *Line) Init(x, y int, set font.Set, startChar byte) {
	l.x = x
	l.y = y
	l.set = set
	l.startChar = startChar
	l.Clear()
}

// Clear empties the line and marks it for update.
func (l *Line) Clear() {
	l.n = 0
	l.buf[0] = 0
	l.NeedsUpdate = 1
}

// Append adds c to the end of the line. It returns false when the line is
// full.
func (l *Line) Append(c byte) bool {
	if l.n == MaxLength {
		return false
	}
	l.buf[l.n] = c
	l.n++
	l.buf[l.n] = 0
	l.NeedsUpdate = MaxUpdate
	return true
}

// AppendString appends the bytes of s until the line is full and returns
// how many were appended.
func (l *Line) AppendString(s string) int {
	for i := 0; i < len(s); i++ {
		if !l.Append(s[i]) {
			return i
		}
	}
	return len(s)
}

// DeleteLast removes the last byte. It returns false when the line is
// empty.
func (l *Line) DeleteLast() bool {
	if l.n == 0 {
		return false
	}
	l.n--
	l.buf[l.n] = 0
	l.NeedsUpdate = MaxUpdate
	return true
}

// Touch forces the line to be erased and redrawn.
func (l *Line) Touch() {
	l.NeedsUpdate = MaxUpdate
}

// Decay counts NeedsUpdate down by one, stopping at zero.
func (l *Line) Decay() {
	if l.NeedsUpdate > 0 {
		l.NeedsUpdate--
	}
}

// Len returns the number of bytes in the line.
func (l *Line) Len() int { return l.n }

// Cap returns MaxLength.
func (l *Line) Cap() int { return MaxLength }

// Bytes returns the line content. The slice aliases the line.
func (l *Line) Bytes() []byte { return l.buf[:l.n] }

// String returns the line content as stored, without case folding.
func (l *Line) String() string { return string(l.buf[:l.n]) }

// At returns byte i, or 0 when i is out of range.
func (l *Line) At(i int) byte {
	if i < 0 || i >= l.n {
		return 0
	}
	return l.buf[i]
}

// X returns the logical x origin.
func (l *Line) X() int { return l.x }

// Y returns the logical y origin.
func (l *Line) Y() int { return l.y }

// Font returns the line's glyph set.
func (l *Line) Font() font.Set { return l.set }

// StartChar returns the lowest character the font supports.
func (l *Line) StartChar() byte { return l.startChar }
