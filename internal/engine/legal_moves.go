package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Move is a source-destination square pair.
type Move struct {
	From chess.Square
	To   chess.Square
}

// String returns the move in coordinate notation, e.g. "g1f3".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// LegalMoves returns the destinations the piece on sq may legally move to,
// sorted a1..h8. An empty square yields nil. Pieces of the side not on move
// are evaluated as if it were their turn, without en passant.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	p, ok := g.board.Get(sq)
	if !ok {
		return nil
	}

	var legal []chess.Square
	for _, to := range g.candidates(sq, p) {
		if g.keepsKingSafe(sq, to, p) {
			legal = append(legal, to)
		}
	}
	sortSquares(legal)
	return legal
}

// AllLegalMoves returns every legal move of the side to move.
func (g *Game) AllLegalMoves() []Move {
	var moves []Move
	g.board.Each(func(from chess.Square, p chess.Piece) {
		if p.Colour != g.toMove {
			return
		}
		for _, to := range g.LegalMoves(from) {
			moves = append(moves, Move{From: from, To: to})
		}
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (g *Game) HasLegalMoves(colour chess.Colour) bool {
	found := false
	g.board.Each(func(from chess.Square, p chess.Piece) {
		if found || p.Colour != colour {
			return
		}
		for _, to := range g.candidates(from, p) {
			if g.keepsKingSafe(from, to, p) {
				found = true
				return
			}
		}
	})
	return found
}

// candidates returns the piece's pseudo-legal destinations augmented with
// the moves that depend on game history: en passant and castling.
func (g *Game) candidates(from chess.Square, p chess.Piece) []chess.Square {
	moves := PseudoLegalMoves(g.board, from)

	if ep := enPassantDestination(g.board, from, p, g.enPassantFor(p.Colour)); ep.IsValid() {
		moves = append(moves, ep)
	}
	if p.Kind == chess.King {
		moves = append(moves, castlingDestinations(g.board, from, p, g.castling)...)
	}
	return moves
}

// keepsKingSafe plays the move on a cloned board and reports whether the
// mover's king is left unattacked. The live board is never touched.
func (g *Game) keepsKingSafe(from, to chess.Square, p chess.Piece) bool {
	class := classifyMove(g.board, from, to, p, g.enPassantFor(p.Colour))

	// The promotion piece cannot affect the mover's own king safety.
	promotion := chess.NoKind
	if class == chess.PawnMoveWithPromotion {
		promotion = chess.Queen
	}

	trial := g.board.Clone()
	applyMove(trial, from, to, class, promotion)
	return !IsInCheck(trial, p.Colour)
}

// enPassantFor returns the en passant target usable by colour. Only the
// side to move may capture en passant.
func (g *Game) enPassantFor(colour chess.Colour) chess.Square {
	if colour != g.toMove {
		return chess.NoSquare
	}
	return g.enPassant
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func sortSquares(squares []chess.Square) {
	sort.Slice(squares, func(i, j int) bool {
		return squares[i].Less(squares[j])
	})
}
