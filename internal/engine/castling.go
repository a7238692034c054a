package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Files involved in castling.
const (
	kingFile          = 4 // e
	kingsideRookFile  = 7 // h
	queensideRookFile = 0 // a
	kingsideKingTo    = 6 // g
	queensideKingTo   = 2 // c
	kingsideRookTo    = 5 // f
	queensideRookTo   = 3 // d
)

// castleRookSquares returns the rook's source and destination for a castle.
func castleRookSquares(colour chess.Colour, kingside bool) (chess.Square, chess.Square) {
	rank := chess.HomeRank(colour)
	if kingside {
		return chess.NewSquare(kingsideRookFile, rank), chess.NewSquare(kingsideRookTo, rank)
	}
	return chess.NewSquare(queensideRookFile, rank), chess.NewSquare(queensideRookTo, rank)
}

// castlingDestinations returns the king destinations (g- or c-file) for
// every castle currently available to the king on from. A castle is
// available when the right is held, neither king nor rook has moved, the
// squares between them are empty, and the king is not in check and does
// not pass over an attacked square. Whether the landing square is safe is
// left to the king-safety filter.
func castlingDestinations(board *chess.Board, from chess.Square, king chess.Piece, rights chess.CastlingRights) []chess.Square {
	rank := chess.HomeRank(king.Colour)
	if king.Kind != chess.King || king.Moved || from != chess.NewSquare(kingFile, rank) {
		return nil
	}

	enemy := king.Colour.Opposite()
	if IsAttacked(board, from, enemy) {
		return nil
	}

	var moves []chess.Square
	for _, kingside := range []bool{true, false} {
		if !rights.Has(chess.CastlingRight(king.Colour, kingside)) {
			continue
		}

		rookFrom, rookTo := castleRookSquares(king.Colour, kingside)
		rook, ok := board.Get(rookFrom)
		if !ok || !rook.Is(king.Colour, chess.Rook) || rook.Moved {
			continue
		}
		if !pathEmpty(board, from, rookFrom) {
			continue
		}

		// The king passes over the rook's destination square.
		if IsAttacked(board, rookTo, enemy) {
			continue
		}

		kingTo := queensideKingTo
		if kingside {
			kingTo = kingsideKingTo
		}
		moves = append(moves, chess.NewSquare(kingTo, rank))
	}
	return moves
}

// pathEmpty reports whether every square strictly between a and b on the
// same rank is empty.
func pathEmpty(board *chess.Board, a, b chess.Square) bool {
	step := sign(int(b.File) - int(a.File))
	for sq := a.Offset(step, 0); sq != b; sq = sq.Offset(step, 0) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// updateCastlingRights removes rights lost by a move: any king move loses
// both of its colour's rights, and any move from or onto a rook's home
// corner loses the right tied to that corner.
func updateCastlingRights(rights chess.CastlingRights, from, to chess.Square, mover chess.Piece) chess.CastlingRights {
	if mover.Kind == chess.King {
		rights = rights.Without(chess.ForColour(mover.Colour))
	}
	for _, sq := range []chess.Square{from, to} {
		rights = rights.Without(cornerRight(sq))
	}
	return rights
}

// cornerRight returns the right tied to a rook home corner, or NoCastling.
func cornerRight(sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.NewSquare(kingsideRookFile, 0):
		return chess.WhiteKingSide
	case chess.NewSquare(queensideRookFile, 0):
		return chess.WhiteQueenSide
	case chess.NewSquare(kingsideRookFile, 7):
		return chess.BlackKingSide
	case chess.NewSquare(queensideRookFile, 7):
		return chess.BlackQueenSide
	}
	return chess.NoCastling
}
