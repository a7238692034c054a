package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/replay"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// batchStats counts the outcome of a batch run.
type batchStats struct {
	Games  int // Results written
	Ended  int // Games that reached a terminal status
	Failed int // Games with an illegal move or invalid start
}

// runBatch loads every game line from the named files (or stdin when none
// are given), replays them in parallel and writes one result line per game
// in input order.
func runBatch(ctx context.Context, names []string, stdin io.Reader, cfg *config.Config) (batchStats, error) {
	var lines []replay.Line
	var err error
	if len(names) == 0 {
		lines, err = replay.ReadLines(stdin, 1, cfg.StartFEN)
	} else {
		lines, err = loadFiles(ctx, names, cfg)
	}
	if err != nil {
		return batchStats{}, err
	}

	results, firstFailure := replayLines(lines, cfg)
	return writeResults(results, firstFailure, cfg), nil
}

// loadFiles reads the input files concurrently. Lines are numbered from 1
// across all files in argument order.
func loadFiles(ctx context.Context, names []string, cfg *config.Config) ([]replay.Line, error) {
	perFile := make([][]replay.Line, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.WorkerCount())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				return errors.Wrapf(err, "open %s", name)
			}
			defer file.Close() //nolint:errcheck

			lines, err := replay.ReadLines(file, 0, cfg.StartFEN)
			if err != nil {
				return errors.Wrap(err, name)
			}
			perFile[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []replay.Line
	for _, lines := range perFile {
		for _, line := range lines {
			line.Index = len(all) + 1
			all = append(all, line)
		}
	}
	if cfg.Verbosity >= config.Commentary {
		cfg.Logger().Printf("loaded %d game(s) from %d file(s)", len(all), len(names))
	}
	return all, nil
}

// replayLines replays every line on a worker pool. The returned slice is in
// input order; with StopOnError, entries the pool skipped after a failure
// are left unset (Index 0). firstFailure is the position of the earliest
// failed game, or -1.
//
// Workers replay independently, but results are consumed by this single
// goroutine, so the results slice needs no locking.
func replayLines(lines []replay.Line, cfg *config.Config) (results []replay.Result, firstFailure int) {
	results = make([]replay.Result, len(lines))
	firstFailure = -1
	if len(lines) == 0 {
		return results, firstFailure
	}

	pool := worker.NewPoolWithOptions(worker.ReplayFunc,
		worker.WithWorkers(cfg.WorkerCount()),
		worker.WithBufferSize(cfg.QueueSize()),
	)
	if cfg.Verbosity >= config.Commentary {
		cfg.Logger().Printf("replaying %d game(s) on %d worker(s)", len(lines), pool.NumWorkers())
	}
	pool.Start()

	go func() {
		for i, line := range lines {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Line: line, Index: i})
		}
		pool.Close()
	}()

	for res := range pool.Results() {
		results[res.Index] = res.Result
		if !res.Failed {
			continue
		}
		if firstFailure < 0 || res.Index < firstFailure {
			firstFailure = res.Index
		}
		if cfg.StopOnError {
			pool.Stop()
		}
	}
	return results, firstFailure
}

// writeResults prints results in order. With StopOnError output ends after
// the first failed game, or at the first game that was never replayed; a
// failure beyond that gap is still counted.
func writeResults(results []replay.Result, firstFailure int, cfg *config.Config) batchStats {
	var stats batchStats
	logger := cfg.Logger()

	for i, res := range results {
		if res.Index == 0 {
			if firstFailure > i {
				stats.Failed++
			}
			break
		}
		fmt.Fprintln(cfg.OutputFile, res.String())

		stats.Games++
		if res.Status.IsTerminal() {
			stats.Ended++
		}
		if res.Err != nil {
			stats.Failed++
		}
		if cfg.Verbosity >= config.Commentary {
			logger.Printf("game %d: %s after %d plies", res.Index, res.StatusText(), res.Plies)
		}
		if res.Err != nil && cfg.StopOnError {
			break
		}
	}
	return stats
}
