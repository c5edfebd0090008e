package widget

import (
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
)

// InputLine is an editable line whose leading prefix cannot be deleted.
type InputLine struct {
	l      line.Line
	margin int
	lastOn bool
	on     *bool
}

// Init positions the line and clears it with no protected prefix.
func (in *InputLine) Init(x, y int, set font.Set, startChar byte, on *bool) {
	in.margin = 0
	in.on = on
	in.lastOn = true
	in.l.Init(x, y, set, startChar)
}

// AddPrefix appends s and moves the left margin past it.
func (in *InputLine) AddPrefix(s string) {
	in.l.AppendString(s)
	in.margin = in.l.Len()
}

// DeleteChar removes the last typed character. It reports false when
// only the prefix is left.
func (in *InputLine) DeleteChar() bool {
	if in.l.Len() == in.margin {
		return false
	}
	return in.l.DeleteLast()
}

// EraseLine removes everything typed after the prefix.
func (in *InputLine) EraseLine() {
	for in.l.Len() > in.margin {
		if !in.l.DeleteLast() {
			break
		}
	}
}

// Reset clears the line including its prefix.
func (in *InputLine) Reset() {
	in.margin = 0
	in.l.Clear()
}

// HandleKey applies a raw key code and reports whether it was consumed.
// Letters are folded to upper case. Printable keys append, backspace
// deletes back to the margin and enter is swallowed without effect.
// Any other key is left for the caller.
func (in *InputLine) HandleKey(k byte) bool {
	if k >= 'a' && k <= 'z' {
		k -= 'a' - 'A'
	}
	switch {
	case k >= ' ' && k <= '_':
		in.l.Append(k)
	case k == KeyBackspace:
		in.DeleteChar()
	case k == KeyEnter:
	default:
		return false
	}
	return true
}

// Draw paints the line while it is visible.
func (in *InputLine) Draw(p Painter) {
	if !visible(in.on) {
		return
	}
	p.DrawTextLine(&in.l)
}

// Erase clears the border pixels under the line.
func (in *InputLine) Erase(p Painter) {
	on := visible(in.on)
	if in.lastOn && !on {
		in.l.Touch()
	}
	p.EraseTextLine(&in.l)
	in.lastOn = on
}

// Text returns what was typed after the prefix.
func (in *InputLine) Text() string {
	return string(in.l.Bytes()[in.margin:])
}

// Margin returns the length of the protected prefix.
func (in *InputLine) Margin() int { return in.margin }

// Line exposes the underlying text line.
func (in *InputLine) Line() *line.Line { return &in.l }
