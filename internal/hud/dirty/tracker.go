package dirty

import (
	"slices"
	"sync"

	"github.com/dshills/hudtext/internal/hud/core"
)

// Tracker accumulates dirty row spans. It is safe for concurrent use: the
// HUD marks rows on the frame goroutine while a presenter may read them
// from its own.
type Tracker struct {
	mu sync.RWMutex

	spans      []Span
	fullRedraw bool
	height     int

	// maxSpans is the span count above which everything is redrawn.
	maxSpans int

	// fullThreshold is the dirty share of the screen that triggers a full
	// redraw.
	fullThreshold float64
}

// NewTracker creates a tracker for a screen of the given height.
// Negative heights are treated as zero.
func NewTracker(height int) *Tracker {
	return &Tracker{
		spans:         make([]Span, 0, 16),
		height:        max(height, 0),
		maxSpans:      32,
		fullThreshold: 0.75,
	}
}

// SetHeight changes the screen height and forces a full redraw.
func (t *Tracker) SetHeight(height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.height = max(height, 0)
	t.fullRedraw = true
	t.spans = t.spans[:0]
}

// MarkFull marks every row dirty.
func (t *Tracker) MarkFull() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.fullRedraw = true
	t.spans = t.spans[:0]
}

// MarkRows marks rows start through end dirty.
func (t *Tracker) MarkRows(start, end int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fullRedraw {
		return
	}
	t.add(NewSpan(start, end))
}

// MarkRect marks the rows a rectangle covers.
func (t *Tracker) MarkRect(r core.Rect) {
	if r.IsEmpty() {
		return
	}
	t.MarkRows(r.Y, r.Bottom()-1)
}

func (t *Tracker) add(s Span) {
	if t.height == 0 {
		return
	}
	s = s.Clamp(t.height)
	if s.IsEmpty() {
		return
	}

	for i := range t.spans {
		if merged, ok := t.spans[i].Merge(s); ok {
			t.spans[i] = merged
			t.coalesce()
			t.checkThreshold()
			return
		}
	}

	t.spans = append(t.spans, s)
	if len(t.spans) > t.maxSpans {
		t.fullRedraw = true
		t.spans = t.spans[:0]
		return
	}
	t.checkThreshold()
}

// coalesce merges spans that grew into each other.
func (t *Tracker) coalesce() {
	slices.SortFunc(t.spans, func(a, b Span) int { return a.Start - b.Start })
	out := t.spans[:0]
	for _, s := range t.spans {
		if n := len(out); n > 0 {
			if merged, ok := out[n-1].Merge(s); ok {
				out[n-1] = merged
				continue
			}
		}
		out = append(out, s)
	}
	t.spans = out
}

func (t *Tracker) checkThreshold() {
	rows := 0
	for _, s := range t.spans {
		rows += s.Rows()
	}
	if float64(rows) > t.fullThreshold*float64(t.height) {
		t.fullRedraw = true
		t.spans = t.spans[:0]
	}
}

// IsDirty returns true if anything needs repainting.
func (t *Tracker) IsDirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.fullRedraw || len(t.spans) > 0
}

// NeedsFullRedraw returns true if every row must be repainted.
func (t *Tracker) NeedsFullRedraw() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.fullRedraw
}

// IsRowDirty returns true if row needs repainting.
func (t *Tracker) IsRowDirty(row int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.fullRedraw {
		return row >= 0 && row < t.height
	}
	for _, s := range t.spans {
		if s.Contains(row) {
			return true
		}
	}
	return false
}

// Spans returns a sorted copy of the dirty spans. A full redraw is
// reported as a single span over the screen.
func (t *Tracker) Spans() []Span {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.fullRedraw {
		if t.height == 0 {
			return nil
		}
		return []Span{{Start: 0, End: t.height - 1}}
	}
	out := slices.Clone(t.spans)
	slices.SortFunc(out, func(a, b Span) int { return a.Start - b.Start })
	return out
}

// Flush returns the dirty spans and clears the tracker.
func (t *Tracker) Flush() []Span {
	spans := t.Spans()
	t.Clear()
	return spans
}

// Clear forgets all dirty rows.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.spans = t.spans[:0]
	t.fullRedraw = false
}
