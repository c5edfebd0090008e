// Package render draws HUD text lines onto the frame buffer and erases
// them again from the screen border.
//
// Drawing a line happens in two passes. The layout pass walks the
// characters, applying word spacing, opening-quote substitution and
// kerning. The glyph pass then either rasterizes built-in glyphs into a
// full-screen compositing buffer, which is blended onto the frame
// afterwards, or hands high-resolution font patches to a PatchDrawer.
// Which of the two happens is decided once, when the Renderer is built.
package render

import (
	"github.com/dshills/hudtext/internal/hud/blend"
	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/dirty"
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
	"github.com/dshills/hudtext/internal/hud/video"
)

// Palette entries that blend badly are shifted down by fixupShift after
// translucency is applied.
const (
	fixupFirst = 168
	fixupLast  = 175
	fixupShift = 144
)

// Renderer draws and erases text lines.
type Renderer struct {
	frame   *video.Frame
	tables  *blend.Tables
	state   *core.State
	tracker *dirty.Tracker

	charset  *font.Charset
	catalog  font.Catalog
	drawer   PatchDrawer
	strategy strategy

	scratch []byte
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTracker reports every composited or erased row to t.
func WithTracker(t *dirty.Tracker) Option {
	return func(r *Renderer) {
		r.tracker = t
	}
}

// WithCharset replaces the built-in charset used by software rendering.
func WithCharset(cs *font.Charset) Option {
	return func(r *Renderer) {
		if cs != nil {
			r.charset = cs
		}
	}
}

// WithPatches enables patch rendering when the catalog carries the
// high-resolution font sentinel.
func WithPatches(catalog font.Catalog, drawer PatchDrawer) Option {
	return func(r *Renderer) {
		r.catalog = catalog
		r.drawer = drawer
	}
}

// New creates a renderer for frame. The tables and state are read on
// every draw; state may be nil for a full-screen view without automap or
// translucency.
func New(frame *video.Frame, tables *blend.Tables, state *core.State, opts ...Option) *Renderer {
	if state == nil {
		state = &core.State{ScreenSize: core.FullScreenSize}
	}
	r := &Renderer{
		frame:  frame,
		tables: tables,
		state:  state,
	}
	for _, opt := range opts {
		opt(r)
	}

	if font.HighResolution(r.catalog) && r.drawer != nil {
		r.strategy = &patchStrategy{drawer: r.drawer}
		return r
	}

	if r.charset == nil {
		r.charset = font.NewCharset(font.DefaultRamp)
	}
	geom := frame.Geometry()
	r.scratch = make([]byte, geom.Width*geom.Height)
	r.strategy = &softwareStrategy{charset: r.charset, scratch: r.scratch, geom: geom}
	return r
}

// Capability reports the rendering path chosen at construction.
func (r *Renderer) Capability() Capability {
	return r.strategy.capability()
}

// DrawOption configures a single DrawTextLine call.
type DrawOption func(*drawConfig)

type drawConfig struct {
	decoration *font.Decoration
}

// WithDecoration stamps the decoration's underscore pattern under the
// line.
func WithDecoration(d *font.Decoration) DrawOption {
	return func(c *drawConfig) {
		c.decoration = d
	}
}

// Measure lays out l without drawing it.
func (r *Renderer) Measure(l *line.Line) Layout {
	return layoutLine(l, r.kerned(), r.strategy.advance)
}

func (r *Renderer) kerned() bool {
	return r.strategy.capability() == SoftwareGlyphs
}

// DrawTextLine draws l onto the full plane.
func (r *Renderer) DrawTextLine(l *line.Line, opts ...DrawOption) {
	var dc drawConfig
	for _, opt := range opts {
		opt(&dc)
	}

	software := r.kerned()
	if software {
		r.resetScratch()
	}

	lay := layoutLine(l, software, r.strategy.advance)
	for _, p := range lay.Glyphs {
		r.strategy.draw(p, l)
	}

	scale := r.frame.Geometry().Scale
	if !software {
		if r.tracker != nil && len(lay.Glyphs) > 0 {
			h := font.GlyphRows
			if l.Font() != nil {
				h = l.Font().Height()
			}
			r.tracker.MarkRows(l.Y()*scale, (lay.Bottom+h+1)*scale)
		}
		return
	}

	bottom := lay.Bottom + font.GlyphRows
	if dc.decoration != nil {
		r.stampDecoration(l, dc.decoration)
		bottom = max(bottom, l.Y()+8+font.DecorationRows)
	}

	top := l.Y() - 1
	r.composite(core.Rect{
		X:      l.X() * scale,
		Y:      top * scale,
		Width:  (lay.Width + 1) * scale,
		Height: (bottom - top) * scale,
	})
}

func (r *Renderer) resetScratch() {
	for i := range r.scratch {
		r.scratch[i] = core.Untouched
	}
}

// stampDecoration writes the underscore pattern across the screen width,
// starting eight logical rows below the line origin.
func (r *Renderer) stampDecoration(l *line.Line, d *font.Decoration) {
	pattern := d.Pattern(r.state.NarrowAutomap())
	w := core.OriginalWidth
	if len(pattern) < font.DecorationRows*w {
		return
	}
	sw := r.strategy.(*softwareStrategy)
	scale := r.frame.Geometry().Scale
	for y1 := 0; y1 < font.DecorationRows; y1++ {
		for x1 := 0; x1 < w; x1++ {
			src := pattern[y1*w+x1]
			if src == font.Skip {
				continue
			}
			if src == font.Outline {
				src = core.Shade
			}
			sw.block(x1*scale, (l.Y()+8+y1)*scale, src)
		}
	}
}

// composite blends the compositing buffer inside rect onto the full
// plane. Shade pixels darken the frame by half; other written pixels are
// copied, or blended translucently when translucency is on.
func (r *Renderer) composite(rect core.Rect) {
	geom := r.frame.Geometry()
	rect = rect.Intersect(geom.Bounds())
	if rect.IsEmpty() {
		return
	}

	full := r.frame.Plane(core.FullPlane)
	src := r.frame.Plane(r.state.BlendPlane())
	translucent := r.state.Translucency

	for y := rect.Y; y < rect.Bottom(); y++ {
		row := y * geom.Width
		for x := rect.X; x < rect.Right(); x++ {
			i := row + x
			switch s := r.scratch[i]; s {
			case core.Untouched:
			case core.Shade:
				full[i] = r.tables.Shade(src[i])
			default:
				c := s
				if translucent {
					c = r.tables.Translucent(src[i], c)
					if c >= fixupFirst && c <= fixupLast {
						c -= fixupShift
					}
				}
				full[i] = c
			}
		}
	}

	if r.tracker != nil {
		r.tracker.MarkRect(rect)
	}
}
