// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")

	// Game setup
	startFEN = flag.String("fen", "", "Starting position for lines without a fen: prefix")

	// Modes
	interactive = flag.Bool("i", false, "Interactive mode: read commands from stdin")
	stopOnError = flag.Bool("stop", false, "Stop at the first game with an illegal move")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0=silent, 1=summary, 2=per game")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 0, "Work queue size (0 = twice the worker count)")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies command-line flags to the configuration. Only flags
// given explicitly override values loaded from the environment.
func applyFlags(cfg *config.Config, set map[string]bool) {
	if set["workers"] {
		cfg.Workers = *workers
	}
	if set["buffer"] {
		cfg.BufferSize = *bufferSize
	}
	if set["fen"] {
		cfg.StartFEN = *startFEN
	}
	if set["i"] {
		cfg.Interactive = *interactive
	}
	if set["stop"] {
		cfg.StopOnError = *stopOnError
	}
	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	if set["l"] {
		cfg.LogPath = *logFile
	}

	if *quiet {
		cfg.Verbosity = config.Silent
	}
}
