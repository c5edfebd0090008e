// Package widget provides the HUD text widgets: a scrolling message log
// and a single-line input editor with a protected prefix.
//
// Widgets only keep text and visibility state. Drawing and erasing go
// through a Painter, normally a *render.Renderer.
package widget

import (
	"github.com/dshills/hudtext/internal/hud/line"
	"github.com/dshills/hudtext/internal/hud/render"
)

// Painter draws and erases text lines.
type Painter interface {
	DrawTextLine(l *line.Line, opts ...render.DrawOption)
	EraseTextLine(l *line.Line)
}

// Raw key codes understood by InputLine.HandleKey.
const (
	KeyEnter     byte = 13
	KeyEscape    byte = 27
	KeyBackspace byte = 127
)

// visible reports the value behind an externally owned flag. A nil flag
// reads as visible.
func visible(on *bool) bool {
	return on == nil || *on
}
