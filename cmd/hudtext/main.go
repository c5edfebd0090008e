// Package main is the entry point for the hudtext demo. It draws a
// scrolling view with the message log and chat line on top and shows
// the frame in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/hudtext/internal/config"
	"github.com/dshills/hudtext/internal/hud/blend"
	"github.com/dshills/hudtext/internal/logging"
	"github.com/dshills/hudtext/internal/present"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the command line.
type options struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Headless   bool
	Frames     int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}

	out, closeLog, err := openLog(cfg.Logging.File, opts.Headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: out,
		Prefix: "hudtext",
	})

	d, err := newDemo(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if opts.Headless {
		d.runHeadless(opts.Frames)
		return 0
	}

	term, err := present.NewTerminal(blend.DefaultPalette())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	if err := d.run(term, opts.ConfigPath, signals); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// openLog returns the log destination. Without a file, output goes to
// stderr in headless mode and nowhere while the terminal is taken over.
func openLog(path string, headless bool) (io.Writer, func(), error) {
	if path == "" {
		if headless {
			return os.Stderr, func() {}, nil
		}
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml or .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write log output to this file")
	flag.BoolVar(&opts.Headless, "headless", false, "Render without a terminal")
	flag.IntVar(&opts.Frames, "frames", 350, "Frames to render in headless mode")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hudtext - HUD message and chat renderer demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hudtext [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  t      open chat (Enter sends, Esc cancels)\n")
		fmt.Fprintf(os.Stderr, "  m      post a message\n")
		fmt.Fprintf(os.Stderr, "  c      post an underlined message\n")
		fmt.Fprintf(os.Stderr, "  a      toggle automap\n")
		fmt.Fprintf(os.Stderr, "  + -    change view size\n")
		fmt.Fprintf(os.Stderr, "  l      toggle translucency\n")
		fmt.Fprintf(os.Stderr, "  q      quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("hudtext %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		if _, ok := logging.ParseLevel(opts.LogLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}
	if opts.Frames < 0 {
		fmt.Fprintf(os.Stderr, "Error: -frames must not be negative\n")
		os.Exit(1)
	}

	return opts
}
