// Package session provides concurrency-safe access to chess games.
package session

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Game wraps engine.Game with mutex protection for concurrent access.
// Mutations take the write lock; queries share the read lock.
type Game struct {
	game *engine.Game
	mu   sync.RWMutex
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	return &Game{game: engine.NewGame()}
}

// NewGameFromFEN creates a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{game: g}, nil
}

// MakeMove atomically validates and applies a move.
func (g *Game) MakeMove(from, to chess.Square) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.game.MakeMove(from, to)
}

// MakeMoveWithPromotion atomically validates and applies a move with an
// explicit promotion piece.
func (g *Game) MakeMoveWithPromotion(from, to chess.Square, promotion chess.Kind) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.game.MakeMoveWithPromotion(from, to, promotion)
}

// MakeMoveText atomically parses, validates and applies a move.
func (g *Game) MakeMoveText(text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.game.MakeMoveText(text)
}

// UndoMove takes back the last move.
func (g *Game) UndoMove() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.game.UndoMove()
}

// LegalMoves returns the legal destinations of the piece on sq.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.LegalMoves(sq)
}

// AllLegalMoves returns every legal move of the side to move.
func (g *Game) AllLegalMoves() []engine.Move {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.AllLegalMoves()
}

// Status returns the state of the game for the side to move.
func (g *Game) Status() engine.Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.Status()
}

// IsCheck returns true if colour's king is attacked.
func (g *Game) IsCheck(colour chess.Colour) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.IsCheck(colour)
}

// IsCheckmate returns true if colour is checkmated.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.IsCheckmate(colour)
}

// IsStalemate returns true if colour is stalemated.
func (g *Game) IsStalemate(colour chess.Colour) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.IsStalemate(colour)
}

// IsDraw returns true if any draw rule applies.
func (g *Game) IsDraw() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.IsDraw()
}

// DrawReason returns the draw rule that applies, if any.
func (g *Game) DrawReason() engine.DrawReason {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.DrawReason()
}

// ExportNotation returns the position as a FEN string.
func (g *Game) ExportNotation() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.ExportNotation()
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.Board()
}

// History returns a copy of the moves played so far.
func (g *Game) History() []chess.MoveRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.History()
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.game.ToMove()
}

// Snapshot is a consistent view of a game taken under one lock.
type Snapshot struct {
	FEN        string
	Status     engine.Status
	DrawReason engine.DrawReason
	ToMove     chess.Colour
	Ply        int
}

// Snapshot returns the position, status and side to move read atomically.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Snapshot{
		FEN:        g.game.ExportNotation(),
		Status:     g.game.Status(),
		DrawReason: g.game.DrawReason(),
		ToMove:     g.game.ToMove(),
		Ply:        g.game.Ply(),
	}
}
