package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// capture describes what a move removed from the board.
type capture struct {
	piece  chess.Piece
	square chess.Square
	ok     bool
}

// classifyMove works out the special-move context of a pseudo-legal move:
// en passant, promotion, castling or a plain pawn/piece move.
func classifyMove(board *chess.Board, from, to chess.Square, p chess.Piece, enPassant chess.Square) chess.MoveClass {
	switch p.Kind {
	case chess.Pawn:
		if to == enPassant && to.File != from.File && board.IsEmpty(to) {
			return chess.EnPassantPawnMove
		}
		if int(to.Rank) == chess.PromotionRank(p.Colour) {
			return chess.PawnMoveWithPromotion
		}
		return chess.PawnMove
	case chess.King:
		switch int(to.File) - int(from.File) {
		case 2:
			return chess.KingsideCastle
		case -2:
			return chess.QueensideCastle
		}
	}
	return chess.PieceMove
}

// applyMove mutates board for a move of the given class and returns what was
// captured. It is used both for trial moves on a cloned board and for the
// committed move on the live board, so both see identical effects.
func applyMove(board *chess.Board, from, to chess.Square, class chess.MoveClass, promotion chess.Kind) capture {
	p, _ := board.Get(from)

	captureSq := to
	if class == chess.EnPassantPawnMove {
		// The captured pawn sits beside the mover, behind the target square.
		captureSq = to.Offset(0, -chess.ForwardDirection(p.Colour))
	}
	captured, ok := board.Get(captureSq)
	if class == chess.EnPassantPawnMove {
		board.Remove(captureSq)
	}

	board.MovePiece(from, to)

	moved := p
	moved.Moved = true
	if class == chess.PawnMoveWithPromotion {
		moved.Kind = promotion
	}
	board.Set(to, moved)

	if class == chess.KingsideCastle || class == chess.QueensideCastle {
		rookFrom, rookTo := castleRookSquares(p.Colour, class == chess.KingsideCastle)
		rook, _ := board.Get(rookFrom)
		rook.Moved = true
		board.Remove(rookFrom)
		board.Set(rookTo, rook)
	}

	return capture{piece: captured, square: captureSq, ok: ok}
}

// unapplyMove reverses applyMove for a recorded move on the live board.
func unapplyMove(board *chess.Board, rec chess.MoveRecord) {
	board.Remove(rec.To)
	board.Set(rec.From, rec.Piece)

	if rec.HasCapture {
		board.Set(rec.CaptureSquare, rec.Captured)
	}

	if rec.IsCastle() {
		rookFrom, rookTo := castleRookSquares(rec.Piece.Colour, rec.Class == chess.KingsideCastle)
		rook, _ := board.Get(rookTo)
		// Castling requires an unmoved rook, so the flag always goes back to false.
		rook.Moved = false
		board.Remove(rookTo)
		board.Set(rookFrom, rook)
	}
}
