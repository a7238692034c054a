package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// enPassantDestination returns the en passant target if the pawn on from
// can capture onto it, or NoSquare.
func enPassantDestination(board *chess.Board, from chess.Square, pawn chess.Piece, target chess.Square) chess.Square {
	if pawn.Kind != chess.Pawn || !target.IsValid() {
		return chess.NoSquare
	}
	dir := chess.ForwardDirection(pawn.Colour)
	if int(target.Rank) != int(from.Rank)+dir || abs(int(target.File)-int(from.File)) != 1 {
		return chess.NoSquare
	}
	// The pawn that double-stepped stands beside the capturer.
	victim, ok := board.Get(chess.NewSquare(int(target.File), int(from.Rank)))
	if !ok || !victim.Is(pawn.Colour.Opposite(), chess.Pawn) || !board.IsEmpty(target) {
		return chess.NoSquare
	}
	return target
}

// enPassantTarget returns the square skipped by a pawn double step, or
// NoSquare for any other move.
func enPassantTarget(from, to chess.Square, mover chess.Piece) chess.Square {
	if mover.Kind != chess.Pawn || abs(int(to.Rank)-int(from.Rank)) != 2 {
		return chess.NoSquare
	}
	return from.Offset(0, chess.ForwardDirection(mover.Colour))
}

// resolvePromotion picks the promotion piece for a move of the given class.
// Promotions default to a queen; a requested kind on a non-promoting move,
// or a promotion to pawn or king, is rejected.
func resolvePromotion(class chess.MoveClass, requested chess.Kind) (chess.Kind, error) {
	if class != chess.PawnMoveWithPromotion {
		if requested != chess.NoKind {
			return chess.NoKind, errors.ErrInvalidPromotion
		}
		return chess.NoKind, nil
	}
	if requested == chess.NoKind {
		return chess.Queen, nil
	}
	if !requested.IsPromotionTarget() {
		return chess.NoKind, errors.ErrInvalidPromotion
	}
	return requested, nil
}
