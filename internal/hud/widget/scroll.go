package widget

import (
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
)

// MaxScrollLines is the largest number of lines a ScrollLog can hold.
const MaxScrollLines = 4

// ScrollLog is a ring of text lines showing the most recent messages.
// The newest line sits at the log's origin and older lines stack upward.
type ScrollLog struct {
	lines  [MaxScrollLines]line.Line
	h      int
	cursor int
	lastOn bool
	on     *bool
}

// Init lays out h slots with the newest at (x, y). h is clamped to
// [1, MaxScrollLines]. on is the externally owned visibility flag.
func (s *ScrollLog) Init(x, y, h int, set font.Set, startChar byte, on *bool) {
	h = max(1, min(h, MaxScrollLines))
	s.h = h
	s.on = on
	s.lastOn = true
	s.cursor = 0

	pitch := font.GlyphRows
	if set != nil {
		pitch = set.Height()
	}
	for i := 0; i < h; i++ {
		s.lines[i].Init(x, y-i*(pitch+1), set, startChar)
	}
}

// AddLine advances the cursor to the oldest slot and clears it. Every
// slot is marked for update because the visible order changed.
func (s *ScrollLog) AddLine() {
	s.cursor++
	if s.cursor == s.h {
		s.cursor = 0
	}
	s.lines[s.cursor].Clear()

	for i := 0; i < s.h; i++ {
		s.lines[i].Touch()
	}
}

// AddMessage starts a new line holding prefix followed by msg. Text past
// the line capacity is dropped.
func (s *ScrollLog) AddMessage(prefix, msg string) {
	s.AddLine()
	l := &s.lines[s.cursor]
	l.AppendString(prefix)
	l.AppendString(msg)
}

// Draw paints every slot starting from the newest. It does nothing while
// the log is hidden.
func (s *ScrollLog) Draw(p Painter) {
	if !visible(s.on) {
		return
	}
	for i := 0; i < s.h; i++ {
		idx := s.cursor - i
		if idx < 0 {
			idx += s.h
		}
		p.DrawTextLine(&s.lines[idx])
	}
}

// Erase clears the border pixels under every slot. When the log was just
// hidden the slots are forced dirty so their last image is removed.
func (s *ScrollLog) Erase(p Painter) {
	on := visible(s.on)
	for i := 0; i < s.h; i++ {
		if s.lastOn && !on {
			s.lines[i].Touch()
		}
		p.EraseTextLine(&s.lines[i])
	}
	s.lastOn = on
}

// Newest returns the line most recently added.
func (s *ScrollLog) Newest() *line.Line { return &s.lines[s.cursor] }

// Line returns slot i, counted back from the newest line.
func (s *ScrollLog) Line(i int) *line.Line {
	if i < 0 || i >= s.h {
		return nil
	}
	idx := s.cursor - i
	if idx < 0 {
		idx += s.h
	}
	return &s.lines[idx]
}

// Cursor returns the slot index of the newest line.
func (s *ScrollLog) Cursor() int { return s.cursor }

// Height returns the number of slots.
func (s *ScrollLog) Height() int { return s.h }
