// Command resizable draws a box in the terminal whose edges and corners
// can be dragged with the mouse to resize it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rlapin92/ngext-resizable/internal/app"
	"github.com/rlapin92/ngext-resizable/internal/renderer/backend"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const usageFooter = `
Keys:
  q, Esc, Ctrl-C   quit
  r, Ctrl-R        reload the configuration
  Ctrl-L           redraw

Environment:
  RESIZABLE_EDGE_OFFSET, RESIZABLE_BORDER_ENABLED, RESIZABLE_ALLOWED_DIRECTIONS,
  RESIZABLE_MIN_WIDTH, RESIZABLE_MIN_HEIGHT, RESIZABLE_LOG_LEVEL, RESIZABLE_LOG_FILE
`

func main() {
	opts, code, ok := parseFlags(os.Args[1:])
	if !ok {
		os.Exit(code)
	}
	os.Exit(run(opts))
}

func run(opts app.Options) int {
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resizable: %v\n", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "resizable: %v\n", err)
		}
	}()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resizable: creating terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "resizable: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "resizable: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags returns the application options. When ok is false the
// program exits with code instead of running.
func parseFlags(args []string) (opts app.Options, code int, ok bool) {
	fs := flag.NewFlagSet("resizable", flag.ContinueOnError)
	var showVersion bool

	fs.StringVar(&opts.ConfigPath, "config", "", "configuration file (.toml, .yaml or .yml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "shorthand for -config")
	fs.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error; overrides logging.level")
	fs.StringVar(&opts.LogFile, "log-file", "", "append logs to this file; overrides logging.file")
	fs.BoolVar(&opts.Watch, "watch", true, "reload the configuration file when it changes")
	fs.BoolVar(&showVersion, "version", false, "print version information")
	fs.BoolVar(&showVersion, "v", false, "shorthand for -version")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: resizable [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprint(out, usageFooter)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, false
		}
		return opts, 2, false
	}

	if showVersion {
		fmt.Printf("resizable %s (commit %s, built %s)\n", version, commit, date)
		return opts, 0, false
	}

	if opts.LogLevel != "" {
		if _, ok := app.LookupLogLevel(opts.LogLevel); !ok {
			fmt.Fprintf(os.Stderr, "resizable: invalid log level %q\n", opts.LogLevel)
			return opts, 2, false
		}
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "resizable: unexpected arguments: %v\n", fs.Args())
		return opts, 2, false
	}
	return opts, 0, true
}
