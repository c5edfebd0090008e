package hud

import (
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/line"
	"github.com/dshills/hudtext/internal/hud/render"
	"github.com/dshills/hudtext/internal/hud/widget"
	"github.com/dshills/hudtext/internal/logging"
)

// Defaults for a HUD built without options.
const (
	DefaultMessageTics = 4 * 35
	DefaultLogLines    = 1
	ChatPrefix         = "SAY: "
	marginX            = 2
	marginY            = 2
)

// Painter is what the HUD draws through. *render.Renderer satisfies it.
type Painter interface {
	widget.Painter
	Capability() render.Capability
}

// HUD is the per-frame message and chat display.
type HUD struct {
	painter Painter
	logger  *logging.Logger

	messages  widget.ScrollLog
	messageOn bool
	counter   int
	tics      int
	logLines  int

	decoration *font.Decoration
	decorated  *line.Line

	chat   widget.InputLine
	chatOn bool
	onSend func(string)
}

// Option configures a HUD.
type Option func(*HUD)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logging.Logger) Option {
	return func(h *HUD) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMessageTics sets how many frames a message stays up.
func WithMessageTics(n int) Option {
	return func(h *HUD) {
		if n > 0 {
			h.tics = n
		}
	}
}

// WithLogLines sets how many messages are visible at once.
func WithLogLines(n int) Option {
	return func(h *HUD) { h.logLines = n }
}

// WithSendHandler is called with the text of every chat line sent.
func WithSendHandler(fn func(string)) Option {
	return func(h *HUD) { h.onSend = fn }
}

// New lays out the message log in the top left corner of the logical
// screen with the chat line below it.
func New(p Painter, set font.Set, startChar byte, opts ...Option) *HUD {
	h := &HUD{
		painter:  p,
		logger:   logging.Discard(),
		tics:     DefaultMessageTics,
		logLines: DefaultLogLines,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.WithComponent("hud")

	pitch := font.GlyphRows
	if set != nil {
		pitch = set.Height()
	}
	h.logLines = max(1, min(h.logLines, widget.MaxScrollLines))
	// Slots stack upward from logY and keep their positions; messages
	// rotate through them. The top slot sits at the margin.
	logY := marginY + (h.logLines-1)*(pitch+1)
	h.messages.Init(marginX, logY, h.logLines, set, startChar, &h.messageOn)
	h.chat.Init(marginX, logY+pitch+1, set, startChar, &h.chatOn)

	h.logger.Info("renderer uses %s glyphs", p.Capability())
	return h
}

// Post shows prefix followed by msg as the newest message and restarts
// the message timer.
func (h *HUD) Post(prefix, msg string) {
	h.messages.AddMessage(prefix, msg)
	h.decorated = nil
	h.messageOn = true
	h.counter = h.tics
	h.logger.Debug("message %q", prefix+msg)
}

// PostDecorated posts msg with a decoration drawn under it. The
// decoration is dropped by the next Post.
func (h *HUD) PostDecorated(msg string, d *font.Decoration) {
	h.Post("", msg)
	h.decoration = d
	h.decorated = h.messages.Newest()
}

// MessageVisible reports whether the message log is showing.
func (h *HUD) MessageVisible() bool { return h.messageOn }

// Messages returns the message log.
func (h *HUD) Messages() *widget.ScrollLog { return &h.messages }

// OpenChat shows the chat line with an empty entry after ChatPrefix.
func (h *HUD) OpenChat() {
	h.chat.Reset()
	h.chat.AddPrefix(ChatPrefix)
	h.chatOn = true
}

// CloseChat hides the chat line. Its text stays until the next OpenChat.
func (h *HUD) CloseChat() {
	h.chatOn = false
}

// ChatOpen reports whether the chat line is accepting keys.
func (h *HUD) ChatOpen() bool { return h.chatOn }

// Chat returns the chat input line.
func (h *HUD) Chat() *widget.InputLine { return &h.chat }

// Responder feeds a raw key to the chat line while it is open. Enter
// sends the typed text and escape discards it. It returns false for keys
// the HUD does not use.
func (h *HUD) Responder(k byte) bool {
	if !h.chatOn {
		return false
	}
	switch k {
	case widget.KeyEnter:
		text := h.chat.Text()
		h.chatOn = false
		if text == "" {
			return true
		}
		h.logger.Debug("chat sent %q", text)
		h.Post("", text)
		if h.onSend != nil {
			h.onSend(text)
		}
		return true
	case widget.KeyEscape:
		h.chatOn = false
		return true
	}
	return h.chat.HandleKey(k)
}

// Erase restores the screen border under both widgets.
func (h *HUD) Erase() {
	h.messages.Erase(h.painter)
	h.chat.Erase(h.painter)
}

// Draw paints the visible widgets.
func (h *HUD) Draw() {
	if h.decorated != nil {
		h.messages.Draw(decorating{Painter: h.painter, target: h.decorated, d: h.decoration})
	} else {
		h.messages.Draw(h.painter)
	}
	h.chat.Draw(h.painter)
}

// Ticker advances the message timer by one frame.
func (h *HUD) Ticker() {
	if h.counter > 0 {
		h.counter--
		if h.counter == 0 {
			h.messageOn = false
			h.decorated = nil
		}
	}
}

// decorating adds a decoration to the draw of one line.
type decorating struct {
	Painter
	target *line.Line
	d      *font.Decoration
}

func (p decorating) DrawTextLine(l *line.Line, opts ...render.DrawOption) {
	if l == p.target {
		opts = append(opts, render.WithDecoration(p.d))
	}
	p.Painter.DrawTextLine(l, opts...)
}
