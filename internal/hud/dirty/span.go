// Package dirty tracks which screen rows changed since the last present,
// so a presenter only repaints rows the HUD actually touched. Adjacent
// and overlapping row spans are coalesced.
package dirty

// Span is an inclusive range of screen rows.
type Span struct {
	// Start is the first row (inclusive).
	Start int

	// End is the last row (inclusive).
	End int
}

// NewSpan creates a span, swapping the bounds if needed.
func NewSpan(start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

// IsEmpty returns true if the span covers no rows.
func (s Span) IsEmpty() bool {
	return s.Start > s.End
}

// Rows returns the number of rows covered.
func (s Span) Rows() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start + 1
}

// Contains returns true if the span covers row.
func (s Span) Contains(row int) bool {
	return row >= s.Start && row <= s.End
}

// Overlaps returns true if two spans share a row.
func (s Span) Overlaps(other Span) bool {
	return s.Start <= other.End && other.Start <= s.End
}

// Adjacent returns true if other begins right after s or ends right
// before it.
func (s Span) Adjacent(other Span) bool {
	return s.End+1 == other.Start || other.End+1 == s.Start
}

// Merge combines two spans that overlap or touch.
func (s Span) Merge(other Span) (Span, bool) {
	if !s.Overlaps(other) && !s.Adjacent(other) {
		return Span{}, false
	}
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}, true
}

// Clamp limits the span to rows [0, height).
func (s Span) Clamp(height int) Span {
	s.Start = max(s.Start, 0)
	s.End = min(s.End, height-1)
	return s
}
