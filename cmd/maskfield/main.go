// Package main is the entry point for the maskfield demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/maskfield/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	application.SetScreen(screen)

	// Restore the terminal on SIGINT/SIGTERM.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Fini()
		application.Shutdown()
		os.Exit(0)
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Format, "format", "", "Mask format (monthYear, dayMonthYear, monthDayYear, hourMinute)")
	flag.StringVar(&opts.Format, "f", "", "Mask format (shorthand)")
	sep := flag.String("separator", "", "Segment separator (may be empty)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "maskfield - masked date/time input demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: maskfield [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  maskfield                        Date field with defaults\n")
		fmt.Fprintf(os.Stderr, "  maskfield -f monthDayYear        US-style date order\n")
		fmt.Fprintf(os.Stderr, "  maskfield -separator /           Slash-separated segments\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("maskfield %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "separator" {
			opts.Separator = *sep
			opts.SeparatorSet = true
		}
	})

	return opts
}
