// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// NewTestGame creates a game from a FEN string, or from the standard
// starting position when fen is empty. Returns nil if the FEN is rejected.
func NewTestGame(fen string) *engine.Game {
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil
	}
	return g
}

// MustGame creates a game like NewTestGame.
// It calls t.Fatal if the FEN is rejected.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g := NewTestGame(fen)
	if g == nil {
		t.Fatalf("failed to create game from FEN %q", fen)
	}
	return g
}

// MustPlay submits each move in coordinate notation in order.
// It calls t.Fatal on the first move the game rejects.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for i, m := range moves {
		if err := g.MakeMoveText(m); err != nil {
			t.Fatalf("move %d (%s) rejected: %v", i+1, m, err)
		}
	}
}

// PlayAll submits moves until one is rejected and returns that error, or
// nil if every move was accepted.
func PlayAll(g *engine.Game, moves ...string) error {
	for _, m := range moves {
		if err := g.MakeMoveText(m); err != nil {
			return err
		}
	}
	return nil
}
