package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/dshills/hudtext/internal/config"
	"github.com/dshills/hudtext/internal/config/watcher"
	"github.com/dshills/hudtext/internal/hud"
	"github.com/dshills/hudtext/internal/hud/blend"
	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/dirty"
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/hud/render"
	"github.com/dshills/hudtext/internal/hud/video"
	"github.com/dshills/hudtext/internal/hud/widget"
	"github.com/dshills/hudtext/internal/logging"
	"github.com/dshills/hudtext/internal/present"
)

const (
	// ticRate is the game frame rate.
	ticRate = 35

	// startChar is the character drawn by glyph 0 of the charset.
	startChar = '!'

	// Headless runs post a message this often.
	headlessMessageTics = 2 * ticRate
)

// Canned pickup messages cycled by the message key.
var pickups = []string{
	"Picked up a clip.",
	"Picked up a stimpack.",
	"Picked up the armor.",
	"You got the shotgun!",
	"Picked up a box of rockets.",
	"Picked up a blue keycard.",
}

// demo owns the frame and everything drawing into it.
type demo struct {
	cfg *config.Config
	log *logging.Logger

	frame   *video.Frame
	tables  *blend.Tables
	tracker *dirty.Tracker
	state   core.State

	renderer   *render.Renderer
	hud        *hud.HUD
	decoration *font.Decoration

	tic    int
	pickup int
	sent   []string
}

func newDemo(cfg *config.Config, log *logging.Logger) (*demo, error) {
	scale := cfg.Screen.Scale
	geom := core.Geometry{
		Width:    core.OriginalWidth * scale,
		Height:   core.OriginalHeight * scale,
		Scale:    scale,
		Viewport: viewport(cfg.Screen.Size, scale),
	}
	frame, err := video.NewFrame(geom)
	if err != nil {
		return nil, fmt.Errorf("creating frame: %w", err)
	}
	tables, err := blend.Build(blend.DefaultPalette())
	if err != nil {
		return nil, fmt.Errorf("building blend tables: %w", err)
	}

	d := &demo{
		cfg:     cfg,
		log:     log.WithComponent("demo"),
		frame:   frame,
		tables:  tables,
		tracker: dirty.NewTracker(geom.Height),
		state:   cfg.State(),
	}

	charset := font.NewCharset(cfg.RampBytes())
	opts := []render.Option{
		render.WithTracker(d.tracker),
		render.WithCharset(charset),
	}
	if cfg.Font.HighResolution {
		opts = append(opts, render.WithPatches(
			font.LumpSet{font.SentinelLump: true},
			video.NewPatchPainter(frame, tables),
		))
	}
	d.renderer = render.New(frame, tables, &d.state, opts...)

	d.hud = hud.New(d.renderer, charset, startChar,
		hud.WithLogger(log),
		hud.WithMessageTics(cfg.HUD.MessageTics),
		hud.WithLogLines(cfg.HUD.LogLines),
		hud.WithSendHandler(func(text string) {
			d.sent = append(d.sent, text)
			d.log.Info("chat: %s", text)
		}),
	)

	underline := byte(16*10 + 12)
	d.decoration = &font.Decoration{
		Wide:   font.NewUnderscorePattern([]font.Span{{X: 2, Width: 140}}, underline),
		Narrow: font.NewUnderscorePattern([]font.Span{{X: 2, Width: 100}}, underline),
	}

	fillBorder(frame)
	d.tracker.MarkFull()
	d.log.Info("frame %dx%d, view size %d", geom.Width, geom.Height, d.state.ScreenSize)
	return d, nil
}

// step draws one frame: the HUD is erased, the scene redrawn and the HUD
// drawn on top.
func (d *demo) step() {
	d.hud.Erase()

	var changed core.Rect
	if d.state.Automap {
		changed = drawAutomap(d.frame, d.tic)
	} else {
		changed = drawView(d.frame, d.tic)
	}
	d.tracker.MarkRect(changed)

	d.hud.Draw()
	d.hud.Ticker()
	d.tic++
}

// handleKey applies a raw key code. It returns true when the demo should
// quit.
func (d *demo) handleKey(k byte) bool {
	if d.hud.Responder(k) {
		return false
	}
	switch k {
	case 'q', widget.KeyEscape:
		return true
	case 't':
		d.hud.OpenChat()
	case 'm':
		d.postPickup()
	case 'c':
		d.hud.PostDecorated("Level complete", d.decoration)
	case 'a':
		d.setAutomap(!d.state.Automap)
	case '+', '=':
		d.setSize(d.state.ScreenSize + 1)
	case '-':
		d.setSize(d.state.ScreenSize - 1)
	case 'l':
		d.state.Translucency = !d.state.Translucency
		d.log.Debug("translucency %t", d.state.Translucency)
	}
	return false
}

func (d *demo) postPickup() {
	d.hud.Post("", pickups[d.pickup%len(pickups)])
	d.pickup++
}

func (d *demo) setAutomap(on bool) {
	if d.state.Automap == on {
		return
	}
	d.state.Automap = on
	if !on {
		// The automap covered the border.
		fillBorder(d.frame)
	}
	d.tracker.MarkFull()
}

// setSize moves the viewport for a new screen size setting, clamped to
// the configured limits.
func (d *demo) setSize(size int) {
	size = max(config.MinScreenSize, min(size, config.MaxScreenSize))
	if size == d.state.ScreenSize {
		return
	}
	if err := d.frame.SetViewport(viewport(size, d.frame.Geometry().Scale)); err != nil {
		d.log.Warn("view size %d: %v", size, err)
		return
	}
	d.state.ScreenSize = size
	fillBorder(d.frame)
	d.tracker.MarkFull()
	d.log.Debug("view size %d", size)
}

// applyConfig takes over the settings that can change while running and
// reports the rest.
func (d *demo) applyConfig(cfg *config.Config) {
	d.log.SetLevel(cfg.LogLevel())
	d.setSize(cfg.Screen.Size)
	d.state.Translucency = cfg.Render.Translucency
	d.state.Widescreen = cfg.Screen.Widescreen

	old := d.cfg
	if old.Screen.Scale != cfg.Screen.Scale ||
		old.HUD != cfg.HUD ||
		old.Font.HighResolution != cfg.Font.HighResolution ||
		!slices.Equal(old.Font.Ramp, cfg.Font.Ramp) {
		d.log.Warn("scale, hud and font settings take effect after a restart")
	}
	d.cfg = cfg
	d.log.Info("configuration reloaded")
}

func (d *demo) reload(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		d.log.Error("reloading %s: %v", path, err)
		return
	}
	d.applyConfig(cfg)
}

// runHeadless draws frames without a terminal, posting a message every
// two seconds and sending one chat line.
func (d *demo) runHeadless(frames int) {
	chat := "HELLO"
	rows := 0
	for i := 0; i < frames; i++ {
		switch {
		case i%headlessMessageTics == 0:
			d.postPickup()
		case i == ticRate:
			d.handleKey('t')
			for j := 0; j < len(chat); j++ {
				d.handleKey(chat[j])
			}
		case i == ticRate+len(chat):
			d.handleKey(widget.KeyEnter)
		}
		d.step()
		for _, s := range d.tracker.Flush() {
			rows += s.Rows()
		}
	}
	d.log.Info("rendered %d frames, %d dirty rows, %s glyphs", frames, rows, d.renderer.Capability())
}

// run draws at ticRate into term until quit, a signal or the end of the
// terminal's events. Changes to the config file at path are applied as
// they are saved.
func (d *demo) run(term *present.Terminal, path string, signals <-chan os.Signal) error {
	var reload <-chan struct{}
	if path != "" {
		w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
			d.log.Warn("config watcher: %v", err)
		}))
		if err != nil {
			return fmt.Errorf("creating config watcher: %w", err)
		}
		defer w.Close()

		changes := make(chan struct{}, 1)
		w.OnChange(func(ev watcher.Event) {
			if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
				return
			}
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		if err := w.Watch(path); err != nil {
			d.log.Warn("not watching %s: %v", path, err)
		} else {
			reload = changes
		}
	}

	frameTicker := time.NewTicker(time.Second / ticRate)
	defer frameTicker.Stop()

	term.Present(d.frame, d.tracker)
	events := term.Events()
	for {
		select {
		case <-signals:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Type {
			case present.EventQuit:
				return nil
			case present.EventKey:
				if d.handleKey(ev.Key) {
					return nil
				}
			case present.EventResize:
				d.log.Debug("terminal resized to %dx%d", ev.Width, ev.Height)
			}

		case <-reload:
			d.reload(path)

		case <-frameTicker.C:
			d.step()
			term.Present(d.frame, d.tracker)
		}
	}
}
