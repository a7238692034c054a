package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_OnlySetFlagsOverride(t *testing.T) {
	defer saveRestoreInt(workers, 6)()
	defer saveRestoreInt(bufferSize, 12)()

	cfg := config.NewConfig()
	cfg.Workers = 3 // from the environment
	cfg.BufferSize = 9

	applyFlags(cfg, map[string]bool{"workers": true})

	if cfg.Workers != 6 {
		t.Errorf("Workers = %d; want 6", cfg.Workers)
	}
	if cfg.BufferSize != 9 {
		t.Errorf("BufferSize = %d; want 9 (flag not given)", cfg.BufferSize)
	}
}

func TestApplyFlags_All(t *testing.T) {
	defer saveRestoreInt(workers, 2)()
	defer saveRestoreInt(bufferSize, 4)()
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreBool(interactive, true)()
	defer saveRestoreBool(stopOnError, true)()
	defer saveRestoreInt(verbosity, config.Commentary)()
	defer saveRestoreString(logFile, "run.log")()

	cfg := config.NewConfig()
	applyFlags(cfg, map[string]bool{
		"workers": true, "buffer": true, "fen": true, "i": true,
		"stop": true, "v": true, "l": true,
	})

	if cfg.Workers != 2 || cfg.BufferSize != 4 {
		t.Errorf("Workers, BufferSize = %d, %d; want 2, 4", cfg.Workers, cfg.BufferSize)
	}
	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if !cfg.Interactive || !cfg.StopOnError {
		t.Error("Interactive and StopOnError should be set")
	}
	if cfg.Verbosity != config.Commentary {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Commentary)
	}
	if cfg.LogPath != "run.log" {
		t.Errorf("LogPath = %q; want run.log", cfg.LogPath)
	}
}

func TestApplyFlags_QuietWins(t *testing.T) {
	defer saveRestoreBool(quiet, true)()
	defer saveRestoreInt(verbosity, config.Commentary)()

	cfg := config.NewConfig()
	applyFlags(cfg, map[string]bool{"v": true, "s": true})

	if cfg.Verbosity != config.Silent {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Silent)
	}
}
