// Package main is the entry point for the viewlines browser.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dshills/viewlines/internal/app"
	"github.com/dshills/viewlines/internal/config"
	"github.com/dshills/viewlines/internal/logging"
	"github.com/dshills/viewlines/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	dump       bool
	width      int
	watch      bool
	logLevel   string
	logFile    string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	text, err := readInput(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := openLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	application := app.New(app.Options{
		Filename: opts.file,
		Text:     text,
		Config:   configSources(opts.configPath),
		Watch:    opts.watch && !opts.dump,
		Logger:   log,
		LogLevel: opts.logLevel,
	})
	defer application.Shutdown()

	if opts.dump {
		if err := application.Dump(os.Stdout, opts.width); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to a configuration file (shorthand)")
	flag.BoolVar(&opts.dump, "dump", false, "Print the view lines instead of opening the browser")
	flag.IntVar(&opts.width, "width", 80, "Viewport width used by -dump")
	flag.BoolVar(&opts.watch, "watch", true, "Reload the configuration when it changes")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the configuration")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "viewlines - browse a file through the view line projection\n\n")
		fmt.Fprintf(os.Stderr, "Usage: viewlines [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  arrows, Home, End, PgUp, PgDn   move\n")
		fmt.Fprintf(os.Stderr, "  f / u / U                       fold block, unfold, unfold all\n")
		fmt.Fprintf(os.Stderr, "  w                               toggle word wrap\n")
		fmt.Fprintf(os.Stderr, "  g / G                           first / last line\n")
		fmt.Fprintf(os.Stderr, "  q, Esc                          quit\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  viewlines main.go                     Browse a file\n")
		fmt.Fprintf(os.Stderr, "  viewlines -c viewlines.toml main.go   Browse with a configuration file\n")
		fmt.Fprintf(os.Stderr, "  viewlines -dump -width 60 main.go     Print wrapped view lines\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("viewlines %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file may be given\n")
		os.Exit(1)
	}
	opts.file = flag.Arg(0)
	return opts
}

// readInput reads the file to browse, or stdin when no file is given.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// configSources maps the -config flag to TOML or YAML by extension. Files
// without an extension are treated as TOML.
func configSources(path string) config.Sources {
	src := config.Sources{EnvPrefix: config.DefaultEnvPrefix}
	if path == "" {
		return src
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		src.YAMLPath = path
	default:
		src.TOMLPath = path
	}
	return src
}

// openLogger logs to -log-file. Without one, logging is discarded while
// the terminal is in use and goes to stderr for -dump.
func openLogger(opts options) (*logging.Logger, func(), error) {
	cfg := logging.DefaultConfig()
	if opts.logLevel != "" {
		cfg.Level = logging.ParseLevel(opts.logLevel)
	}

	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		cfg.Output = f
		return logging.New(cfg), func() { _ = f.Close() }, nil
	case opts.dump:
		return logging.New(cfg), func() {}, nil
	default:
		return logging.Discard, func() {}, nil
	}
}
