package render

import (
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
)

// erasePadding is the number of logical rows erased beyond the font
// height.
const erasePadding = 4

// EraseTextLine restores the screen border under l from the background
// plane. It only acts while the automap is off, the view is inset from
// the screen edges and l still needs an update. Rows above or below the
// view are restored across the whole width; rows beside it only outside
// the view. Each call counts l.NeedsUpdate down by one, so a line keeps
// being erased for a few frames after its last change.
func (r *Renderer) EraseTextLine(l *line.Line) {
	geom := r.frame.Geometry()
	if !r.state.Automap && geom.Inset() && l.NeedsUpdate != 0 {
		h := font.GlyphRows
		if l.Font() != nil {
			h = l.Font().Height()
		}
		scale := geom.Scale
		top := (l.Y() - 1) * scale
		vp := geom.Viewport
		for y := top; y < top+(h+erasePadding)*scale; y++ {
			if !vp.ContainsRow(y) {
				r.eraseSpan(y, 0, geom.Width)
				continue
			}
			r.eraseSpan(y, 0, vp.X)
			r.eraseSpan(y, vp.Right(), geom.Width-vp.Right())
		}
	}
	l.Decay()
}

func (r *Renderer) eraseSpan(y, x, n int) {
	span := r.frame.EraseSpan(y, x, n)
	if r.tracker != nil {
		r.tracker.MarkRect(span)
	}
}
