package config

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/hudtext/internal/config/loader"
	"github.com/dshills/hudtext/internal/hud/core"
	"github.com/dshills/hudtext/internal/hud/font"
	"github.com/dshills/hudtext/internal/logging"
)

// EnvPrefix starts every environment variable read by Load.
const EnvPrefix = "HUDTEXT_"

// Config holds every hudtext setting.
type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	HUD     HUDConfig     `toml:"hud"`
	Font    FontConfig    `toml:"font"`
	Render  RenderConfig  `toml:"render"`
	Logging LoggingConfig `toml:"logging"`
}

// ScreenConfig sizes the frame buffer and the game view.
type ScreenConfig struct {
	// Scale multiplies the 320x200 logical screen.
	Scale int `toml:"scale"`
	// Size is the view size setting. Below 7 the view is inset.
	Size       int  `toml:"size"`
	Widescreen bool `toml:"widescreen"`
}

// HUDConfig controls the message log.
type HUDConfig struct {
	// MessageTics is how many frames a message stays visible.
	MessageTics int `toml:"messageTics"`
	LogLines    int `toml:"logLines"`
}

// FontConfig selects glyph colors and the glyph strategy.
type FontConfig struct {
	// Ramp holds the palette index of each glyph row, top to bottom.
	Ramp []int `toml:"ramp"`
	// HighResolution registers the patch font so the renderer draws
	// shadowed patches instead of composited glyphs.
	HighResolution bool `toml:"highResolution"`
}

// RenderConfig holds compositing flags.
type RenderConfig struct {
	Translucency bool `toml:"translucency"`
}

// LoggingConfig sets the log level and destination.
type LoggingConfig struct {
	Level string `toml:"level"`
	// File receives log output. Empty means stderr.
	File string `toml:"file"`
}

// Limits on numeric settings.
const (
	MinScale      = 1
	MaxScale      = 4
	MinScreenSize = 0
	MaxScreenSize = 8
)

// Default returns the built-in settings.
func Default() *Config {
	ramp := make([]int, len(font.DefaultRamp))
	for i, c := range font.DefaultRamp {
		ramp[i] = int(c)
	}
	return &Config{
		Screen:  ScreenConfig{Scale: core.DefaultScale, Size: core.FullScreenSize},
		HUD:     HUDConfig{MessageTics: 4 * 35, LogLines: 1},
		Font:    FontConfig{Ramp: ramp},
		Render:  RenderConfig{Translucency: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Loader combines the configuration layers.
type Loader struct {
	fs  loader.FileSystem
	env *loader.EnvLoader
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS reads config files through fsys.
func WithFS(fsys loader.FileSystem) LoaderOption {
	return func(l *Loader) { l.fs = fsys }
}

// WithEnv replaces the environment layer. A nil loader disables it.
func WithEnv(env *loader.EnvLoader) LoaderOption {
	return func(l *Loader) { l.env = env }
}

// NewLoader creates a loader reading the OS file system and HUDTEXT_
// variables.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(EnvPrefix),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges defaults, the file at path and the environment, then
// validates the result. An empty path or a missing file leaves the
// defaults in place.
func (l *Loader) Load(path string) (*Config, error) {
	merged, err := Default().toMap()
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := loader.ForPath(l.fs, path).Load()
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merged = loader.DeepMerge(merged, file)
	}

	if l.env != nil {
		env, err := l.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	cfg, err := decode(path, merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path with the default loader.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

func (c *Config) toMap() (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	return m, nil
}

// decode converts merged settings to a Config by way of TOML, so file,
// environment and default values go through one set of conversions.
func decode(source string, m map[string]any) (*Config, error) {
	if source == "" {
		source = "defaults"
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, &TypeError{Source: source, Err: err}
	}
	cfg := &Config{}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, &TypeError{Source: source, Err: err}
	}
	return cfg, nil
}

// Validate checks every setting and returns the problems joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, v any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v, Code: code})
	}

	if c.Screen.Scale < MinScale || c.Screen.Scale > MaxScale {
		add("screen.scale", fmt.Sprintf("must be between %d and %d", MinScale, MaxScale), c.Screen.Scale, ErrCodeOutOfRange)
	}
	if c.Screen.Size < MinScreenSize || c.Screen.Size > MaxScreenSize {
		add("screen.size", fmt.Sprintf("must be between %d and %d", MinScreenSize, MaxScreenSize), c.Screen.Size, ErrCodeOutOfRange)
	}
	if c.HUD.MessageTics < 1 {
		add("hud.messageTics", "must be positive", c.HUD.MessageTics, ErrCodeOutOfRange)
	}
	if c.HUD.LogLines < 1 || c.HUD.LogLines > 4 {
		add("hud.logLines", "must be between 1 and 4", c.HUD.LogLines, ErrCodeOutOfRange)
	}

	if len(c.Font.Ramp) != len(font.DefaultRamp) {
		add("font.ramp", fmt.Sprintf("must have %d colors", len(font.DefaultRamp)), c.Font.Ramp, ErrCodeLength)
	}
	for i, v := range c.Font.Ramp {
		path := fmt.Sprintf("font.ramp[%d]", i)
		switch {
		case v < 0 || v > 255:
			add(path, "must be a palette index", v, ErrCodeOutOfRange)
		case reservedColor(byte(v)):
			add(path, "is reserved by the compositor", v, ErrCodeReservedColor)
		}
	}

	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level, ErrCodeInvalidEnum)
	}
	return errors.Join(errs...)
}

// reservedColor reports palette indexes the glyph pipeline uses as
// markers.
func reservedColor(c byte) bool {
	return c == core.Shade || c == core.Untouched || c == font.Skip || c == font.Outline
}

// RampBytes returns the ramp as a font.Ramp. Call after Validate.
func (c *Config) RampBytes() font.Ramp {
	var r font.Ramp
	for i := range r {
		if i < len(c.Font.Ramp) {
			r[i] = byte(c.Font.Ramp[i])
		}
	}
	return r
}

// State returns the renderer flags described by the settings.
func (c *Config) State() core.State {
	return core.State{
		Widescreen:   c.Screen.Widescreen,
		Translucency: c.Render.Translucency,
		ScreenSize:   c.Screen.Size,
	}
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}
