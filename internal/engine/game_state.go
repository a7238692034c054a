package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Status is the state of a game after the last accepted move.
type Status int

const (
	Active Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"active", "check", "checkmate", "stalemate", "draw"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// IsTerminal returns true for checkmate, stalemate and draw.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// Game is the authoritative state of one chess game. It is mutated only
// through MakeMove and UndoMove; everything else is a query.
//
// A Game is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call, see package session.
type Game struct {
	board    *chess.Board
	toMove   chess.Colour
	castling chess.CastlingRights

	// Target square of a possible en passant capture, valid for one move.
	enPassant chess.Square

	// The half-move clock since the last pawn move or capture.
	halfmoveClock uint

	// The current move number, incremented after Black moves.
	moveNumber uint

	history     []chess.MoveRecord
	repetitions *hashing.RepetitionTable
	status      Status
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	g, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		panic("engine: initial FEN rejected: " + err.Error())
	}
	return g
}

// newGame wires up a game around an already populated board and records
// the starting position as its first occurrence.
func newGame(board *chess.Board, toMove chess.Colour, castling chess.CastlingRights, enPassant chess.Square, halfmove, moveNumber uint) *Game {
	g := &Game{
		board:         board,
		toMove:        toMove,
		castling:      castling,
		enPassant:     enPassant,
		halfmoveClock: halfmove,
		moveNumber:    moveNumber,
		repetitions:   hashing.NewRepetitionTable(),
	}
	g.repetitions.Add(hashing.NewKey(g.positionKey()))
	g.status = g.evaluateStatus()
	return g
}

// MakeMove submits a move from one square to another. A pawn reaching the
// last rank promotes to a queen. Illegal moves return a *errors.MoveError
// wrapping one of the move sentinels and leave the game unchanged.
func (g *Game) MakeMove(from, to chess.Square) error {
	return g.MakeMoveWithPromotion(from, to, chess.NoKind)
}

// MakeMoveWithPromotion is MakeMove with an explicit promotion piece.
// NoKind selects the default queen.
func (g *Game) MakeMoveWithPromotion(from, to chess.Square, promotion chess.Kind) error {
	if err := g.makeMove(from, to, promotion); err != nil {
		return &errors.MoveError{
			Err:  err,
			From: from.String(),
			To:   to.String(),
			Ply:  len(g.history) + 1,
		}
	}
	return nil
}

// MakeMoveText submits a move in coordinate notation such as "e2e4" or "e7e8n".
func (g *Game) MakeMoveText(text string) error {
	from, to, promotion, err := ParseMoveText(text)
	if err == nil {
		err = g.makeMove(from, to, promotion)
	}
	if err != nil {
		return &errors.MoveError{
			Err:  err,
			From: from.String(),
			To:   to.String(),
			Ply:  len(g.history) + 1,
			Text: text,
		}
	}
	return nil
}

func (g *Game) makeMove(from, to chess.Square, promotion chess.Kind) error {
	if g.status.IsTerminal() {
		return errors.ErrGameOver
	}

	p, ok := g.board.Get(from)
	if !ok {
		return errors.ErrNoPieceAtSource
	}
	if p.Colour != g.toMove {
		return errors.ErrWrongTurn
	}
	if !containsSquare(g.candidates(from, p), to) {
		return errors.ErrIllegalDestination
	}

	class := classifyMove(g.board, from, to, p, g.enPassant)
	promoted, err := resolvePromotion(class, promotion)
	if err != nil {
		return err
	}

	if !g.keepsKingSafe(from, to, p) {
		return errors.ErrLeavesKingInCheck
	}

	g.commit(from, to, p, class, promoted)
	return nil
}

// commit applies an accepted move to the live state.
func (g *Game) commit(from, to chess.Square, p chess.Piece, class chess.MoveClass, promotion chess.Kind) {
	rec := chess.MoveRecord{
		From:              from,
		To:                to,
		Class:             class,
		Piece:             p,
		Promotion:         promotion,
		PrevCastling:      g.castling,
		PrevEnPassant:     g.enPassant,
		PrevHalfmoveClock: g.halfmoveClock,
	}

	captured := applyMove(g.board, from, to, class, promotion)
	if captured.ok {
		rec.Captured = captured.piece
		rec.HasCapture = true
		rec.CaptureSquare = captured.square
	}

	g.castling = updateCastlingRights(g.castling, from, to, p)
	g.enPassant = enPassantTarget(from, to, p)

	if p.Kind == chess.Pawn || captured.ok {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if p.Colour == chess.Black {
		g.moveNumber++
	}
	g.toMove = p.Colour.Opposite()

	rec.PositionKey = g.positionKey()
	g.repetitions.Add(hashing.NewKey(rec.PositionKey))
	g.history = append(g.history, rec)

	g.status = g.evaluateStatus()
}

// UndoMove takes back the last move. It returns false, changing nothing,
// when there is no move to take back.
func (g *Game) UndoMove() bool {
	if len(g.history) == 0 {
		return false
	}

	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.repetitions.Remove(hashing.NewKey(rec.PositionKey))
	unapplyMove(g.board, rec)

	g.castling = rec.PrevCastling
	g.enPassant = rec.PrevEnPassant
	g.halfmoveClock = rec.PrevHalfmoveClock
	g.toMove = rec.Piece.Colour
	if rec.Piece.Colour == chess.Black {
		g.moveNumber--
	}

	g.status = g.evaluateStatus()
	return true
}

// evaluateStatus classifies the position for the side to move.
func (g *Game) evaluateStatus() Status {
	inCheck := g.IsCheck(g.toMove)
	if !g.HasLegalMoves(g.toMove) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if g.IsDraw() {
		return Draw
	}
	if inCheck {
		return Check
	}
	return Active
}

// Status returns the state of the game for the side to move.
func (g *Game) Status() Status {
	return g.status
}

// IsCheck returns true if the given colour's king is attacked.
// It panics if the board does not hold exactly one king of that colour.
func (g *Game) IsCheck(colour chess.Colour) bool {
	return IsInCheck(g.board, colour)
}

// IsCheckmate returns true if colour is in check and has no legal move.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	return g.IsCheck(colour) && !g.HasLegalMoves(colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func (g *Game) IsStalemate(colour chess.Colour) bool {
	return !g.IsCheck(colour) && !g.HasLegalMoves(colour)
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// CastlingRights returns the remaining castling rights.
func (g *Game) CastlingRights() chess.CastlingRights {
	return g.castling
}

// EnPassant returns the current en passant target, or chess.NoSquare.
func (g *Game) EnPassant() chess.Square {
	return g.enPassant
}

// HalfmoveClock returns the plies since the last capture or pawn move.
func (g *Game) HalfmoveClock() uint {
	return g.halfmoveClock
}

// MoveNumber returns the full-move number.
func (g *Game) MoveNumber() uint {
	return g.moveNumber
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Clone()
}

// History returns a copy of the moves played so far, oldest first.
func (g *Game) History() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), g.history...)
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// PositionCount returns how many times the current position has occurred.
func (g *Game) PositionCount() int {
	return g.repetitions.Count(hashing.NewKey(g.positionKey()))
}
