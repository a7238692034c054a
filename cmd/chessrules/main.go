// chessrules replays chess games given as coordinate move lists and reports
// how each one ends, or plays a game interactively.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	if cfg.Interactive {
		if err := runInteractive(os.Stdin, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := runBatch(context.Background(), flag.Args(), os.Stdin, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity >= config.Summary {
		reportStatistics(cfg, stats)
	}
	if stats.Failed > 0 {
		closeOutput()
		closeLog()
		os.Exit(1)
	}
}

// setupLogFile configures the log file from -l, -L or CHESSRULES_LOG_PATH.
// The returned function closes any file it opened.
func setupLogFile(cfg *config.Config) func() {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	case cfg.LogPath != "":
		file, err = os.Create(cfg.LogPath)
	default:
		return func() {}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return closeOnce(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return closeOnce(file)
}

func closeOnce(c io.Closer) func() {
	closed := false
	return func() {
		if !closed {
			closed = true
			c.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats batchStats) {
	cfg.Logger().Printf("%d game(s) replayed, %d ended, %d with errors.", stats.Games, stats.Ended, stats.Failed)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games and reports the final position and status.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput format (one game per line):\n")
	fmt.Fprintf(os.Stderr, "  e2e4 e7e5 g1f3          moves in coordinate notation\n")
	fmt.Fprintf(os.Stderr, "  e7e8q                   promotion piece as a trailing letter\n")
	fmt.Fprintf(os.Stderr, "  fen:<FEN>| e1g1         start from a given position\n")
	fmt.Fprintf(os.Stderr, "  # comment               ignored\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment: CHESSRULES_WORKERS, CHESSRULES_BUFFER_SIZE, CHESSRULES_VERBOSITY,\n")
	fmt.Fprintf(os.Stderr, "  CHESSRULES_START_FEN, CHESSRULES_LOG_PATH, CHESSRULES_INTERACTIVE, CHESSRULES_STOP_ON_ERROR\n")
}
