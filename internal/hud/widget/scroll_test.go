package widget

import (
	"strings"
	"testing"

	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
	"github.com/dshills/hudtext/internal/hud/render"
)

// recorder is a Painter that remembers what it was asked to do.
type recorder struct {
	drawn  []string
	erased []*line.Line
}

func (r *recorder) DrawTextLine(l *line.Line, _ ...render.DrawOption) {
	r.drawn = append(r.drawn, l.String())
}

func (r *recorder) EraseTextLine(l *line.Line) {
	r.erased = append(r.erased, l)
	l.Decay()
}

func newLog(h int, on *bool) *ScrollLog {
	s := &ScrollLog{}
	s.Init(10, 100, h, font.NewCharset(font.DefaultRamp), '!', on)
	return s
}

func TestScrollLogInit(t *testing.T) {
	tests := []struct {
		name  string
		h     int
		wantH int
	}{
		{"within range", 3, 3},
		{"zero", 0, 1},
		{"too many", MaxScrollLines + 5, MaxScrollLines},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLog(tt.h, nil)
			if s.Height() != tt.wantH {
				t.Errorf("Height() = %d, want %d", s.Height(), tt.wantH)
			}
			if s.Cursor() != 0 {
				t.Errorf("Cursor() = %d, want 0", s.Cursor())
			}
		})
	}
}

func TestScrollLogSlotsStackUpward(t *testing.T) {
	s := newLog(3, nil)

	// The built-in charset is 10 rows high, so slots are 11 rows apart.
	for i, want := range []int{100, 89, 78} {
		if got := s.lines[i].Y(); got != want {
			t.Errorf("slot %d y = %d, want %d", i, got, want)
		}
		if got := s.lines[i].X(); got != 10 {
			t.Errorf("slot %d x = %d, want 10", i, got)
		}
	}
}

func TestScrollLogWraparound(t *testing.T) {
	for h := 1; h <= MaxScrollLines; h++ {
		s := newLog(h, nil)
		s.AddLine()
		afterOne := s.Cursor()
		for i := 0; i < h; i++ {
			s.AddLine()
		}
		if s.Cursor() != afterOne {
			t.Errorf("h=%d: cursor after %d adds = %d, want %d", h, h+1, s.Cursor(), afterOne)
		}
		if s.Cursor() < 0 || s.Cursor() >= h {
			t.Errorf("h=%d: cursor %d out of range", h, s.Cursor())
		}
	}
}

func TestScrollLogOverwritesOldest(t *testing.T) {
	s := newLog(3, nil)
	for _, msg := range []string{"one", "two", "three", "four"} {
		s.AddMessage("", msg)
	}

	want := []string{"four", "three", "two"}
	for i, w := range want {
		if got := s.Line(i).String(); got != w {
			t.Errorf("Line(%d) = %q, want %q", i, got, w)
		}
	}
	if s.Line(3) != nil {
		t.Error("Line(3) should be nil for a three line log")
	}
}

func TestScrollLogAddLineMarksAll(t *testing.T) {
	s := newLog(3, nil)
	for i := 0; i < 3; i++ {
		s.lines[i].NeedsUpdate = 0
	}

	s.AddLine()
	for i := 0; i < 3; i++ {
		if s.lines[i].NeedsUpdate != line.MaxUpdate {
			t.Errorf("slot %d NeedsUpdate = %d, want %d", i, s.lines[i].NeedsUpdate, line.MaxUpdate)
		}
	}
	if s.Newest().Len() != 0 {
		t.Errorf("new slot length = %d, want 0", s.Newest().Len())
	}
}

func TestScrollLogAddMessage(t *testing.T) {
	s := newLog(4, nil)
	s.AddMessage("Picked up ", "a clip.")

	newest := s.Newest()
	if newest.String() != "Picked up a clip." {
		t.Errorf("stored text = %q, want raw case", newest.String())
	}

	if got := render.DisplayText(newest); got != "PICKED UP A CLIP." {
		t.Errorf("rendered text = %q, want %q", got, "PICKED UP A CLIP.")
	}
}

func TestScrollLogAddMessageTruncates(t *testing.T) {
	s := newLog(2, nil)
	long := strings.Repeat("X", line.MaxLength)
	s.AddMessage("PREFIX ", long)

	if s.Newest().Len() != line.MaxLength {
		t.Errorf("Len() = %d, want %d", s.Newest().Len(), line.MaxLength)
	}
	if !strings.HasPrefix(s.Newest().String(), "PREFIX X") {
		t.Errorf("text should keep the prefix, got %q", s.Newest().String()[:10])
	}
}

func TestScrollLogDrawOrder(t *testing.T) {
	s := newLog(3, nil)
	s.AddMessage("", "A")
	s.AddMessage("", "B")

	rec := &recorder{}
	s.Draw(rec)

	want := []string{"B", "A", ""}
	if strings.Join(rec.drawn, ",") != strings.Join(want, ",") {
		t.Errorf("draw order = %q, want %q", rec.drawn, want)
	}
}

func TestScrollLogVisibility(t *testing.T) {
	on := true
	s := newLog(2, &on)
	s.AddMessage("", "HELLO")

	rec := &recorder{}
	on = false
	s.Draw(rec)
	if len(rec.drawn) != 0 {
		t.Errorf("hidden log drew %d lines", len(rec.drawn))
	}

	for i := 0; i < 2; i++ {
		s.lines[i].NeedsUpdate = 0
	}
	s.Erase(rec)
	if len(rec.erased) != 2 {
		t.Fatalf("erased %d lines, want 2", len(rec.erased))
	}
	for i := 0; i < 2; i++ {
		// Forced to MaxUpdate on the transition, then decayed once.
		if got := s.lines[i].NeedsUpdate; got != line.MaxUpdate-1 {
			t.Errorf("slot %d NeedsUpdate = %d, want %d", i, got, line.MaxUpdate-1)
		}
	}

	// Still hidden: no second transition.
	s.Erase(rec)
	for i := 0; i < 2; i++ {
		if got := s.lines[i].NeedsUpdate; got != line.MaxUpdate-2 {
			t.Errorf("slot %d NeedsUpdate = %d, want %d", i, got, line.MaxUpdate-2)
		}
	}
}
