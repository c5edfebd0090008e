// Package present shows a paletted frame in a terminal and turns terminal
// key presses into raw key codes.
//
// Each terminal cell shows two vertically stacked samples of the frame
// using an upper half block with a foreground and background color.
package present

import (
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/dirty"
	"github.com/dshills/hudtext/internal/hud/video"
)

// halfBlock is the upper half block; its foreground is the top sample.
const halfBlock = '▀'

// EventType identifies a terminal event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventQuit
)

// Event is a decoded terminal event.
type Event struct {
	Type EventType

	// Key is the raw key code for EventKey.
	Key byte

	// Width and Height are the new cell size for EventResize.
	Width, Height int
}

// Terminal presents frames through tcell.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	palette [256]tcell.Color
	full    bool

	// cols and rows are the size of the last presented screen.
	cols, rows int

	events chan Event
	wg     sync.WaitGroup
}

// NewTerminal opens the controlling terminal.
func NewTerminal(pal color.Palette) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, pal), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen, pal color.Palette) *Terminal {
	t := &Terminal{
		screen: screen,
		full:   true,
		events: make(chan Event, 64),
	}
	for i := range t.palette {
		t.palette[i] = tcell.ColorBlack
		if i < len(pal) {
			t.palette[i] = convertColor(pal[i])
		}
	}
	return t
}

func convertColor(c color.Color) tcell.Color {
	cc, _ := colorful.MakeColor(c)
	r, g, b := cc.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Init takes over the terminal and starts reading events.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()

	t.wg.Add(1)
	go t.poll()
	return nil
}

// Shutdown restores the terminal. Events is closed once the reader has
// stopped.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	t.screen.Fini()
	t.mu.Unlock()
	t.wg.Wait()
}

// Events returns decoded key, resize and quit events.
func (t *Terminal) Events() <-chan Event {
	return t.events
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) poll() {
	defer t.wg.Done()
	defer close(t.events)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		out := t.convertEvent(ev)
		if out.Type == EventNone {
			continue
		}
		select {
		case t.events <- out:
		default:
		}
	}
}

func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			return Event{Type: EventQuit}
		}
		k, ok := convertKey(e.Key(), e.Rune())
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: k}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey maps a tcell key to the raw codes the HUD reads.
func convertKey(k tcell.Key, r rune) (byte, bool) {
	switch k {
	case tcell.KeyRune:
		if r < 0x20 || r > 0x7e {
			return 0, false
		}
		return byte(r), true
	case tcell.KeyEnter:
		return 13, true
	case tcell.KeyEscape:
		return 27, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 127, true
	default:
		return 0, false
	}
}

// Invalidate makes the next Present redraw every cell.
func (t *Terminal) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.full = true
}

// Present draws f. With a tracker only cell rows sampling a dirty pixel
// row are redrawn, and the tracker is flushed.
func (t *Terminal) Present(f *video.Frame, tracker *dirty.Tracker) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	geom := f.Geometry()
	pixels := f.Plane(core.FullPlane)

	full := t.full || tracker == nil || cols != t.cols || rows != t.rows
	t.cols, t.rows = cols, rows
	var spans []dirty.Span
	if tracker != nil {
		full = full || tracker.NeedsFullRedraw()
		spans = tracker.Flush()
	}
	t.full = false

	for cy := 0; cy < rows; cy++ {
		top, bottom := sampleRows(cy, rows, geom.Height)
		if !full && !rowsDirty(spans, top, bottom) {
			continue
		}
		for cx := 0; cx < cols; cx++ {
			x := cx * geom.Width / cols
			fg := t.palette[pixels[top*geom.Width+x]]
			bg := t.palette[pixels[bottom*geom.Width+x]]
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			t.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// sampleRows returns the frame rows shown in the top and bottom half of
// cell row cy.
func sampleRows(cy, rows, height int) (int, int) {
	return (2 * cy) * height / (2 * rows), (2*cy + 1) * height / (2 * rows)
}

func rowsDirty(spans []dirty.Span, rows ...int) bool {
	for _, s := range spans {
		for _, r := range rows {
			if s.Contains(r) {
				return true
			}
		}
	}
	return false
}
