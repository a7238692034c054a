// Package config provides runtime configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // errors only
	Summary    = 1 // totals at the end of a run
	Commentary = 2 // one log line per game
)

// MaxVerbosity is the highest accepted verbosity level.
const MaxVerbosity = Commentary

// Settings are the values that may be overridden from the environment.
// Each field is read from CHESSRULES_<env tag> by LoadEnv.
type Settings struct {
	// Processing
	Workers     int  `env:"WORKERS"`     // 0 = one per CPU
	BufferSize  int  `env:"BUFFER_SIZE"` // 0 = twice the worker count
	StopOnError bool `env:"STOP_ON_ERROR"`

	// Game setup
	StartFEN string `env:"START_FEN"` // empty = standard starting position

	// Interaction
	Interactive bool `env:"INTERACTIVE"`

	// Logging
	Verbosity int    `env:"VERBOSITY"` // 0=nothing, 1=summary, 2=running commentary
	LogPath   string `env:"LOG_PATH"`  // empty = stderr
}

// Config holds all program configuration.
type Config struct {
	Settings

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Settings: Settings{
			Verbosity: Summary,
		},
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Logger returns a logger writing to LogFile.
func (c *Config) Logger() *log.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return log.New(w, "chessrules: ", 0)
}

// WorkerCount returns the number of workers to start.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// QueueSize returns the capacity of the work and result queues.
func (c *Config) QueueSize() int {
	if c.BufferSize > 0 {
		return c.BufferSize
	}
	return c.WorkerCount() * 2
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers %d must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size %d must not be negative: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity %d not in 0..%d: %w", c.Verbosity, MaxVerbosity, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewGameFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start FEN: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}
