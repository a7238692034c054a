package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// generator produces the pseudo-legal destinations of piece p standing on from.
type generator func(board *chess.Board, from chess.Square, p chess.Piece) []chess.Square

// generators maps each piece kind to its move shape.
var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs        = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	pawnCaptureDfs = []int{-1, 1}
)

// PseudoLegalMoves returns the destinations the piece on sq could move to
// by its movement pattern and board occupancy alone. It ignores king
// safety, en passant and castling. An empty square yields nil.
func PseudoLegalMoves(board *chess.Board, sq chess.Square) []chess.Square {
	p, ok := board.Get(sq)
	if !ok {
		return nil
	}
	gen := generators[p.Kind]
	if gen == nil {
		return nil
	}
	return gen(board, sq, p)
}

// pawnMoves: single and double pushes onto empty squares, diagonal captures
// onto enemy pieces.
func pawnMoves(board *chess.Board, from chess.Square, p chess.Piece) []chess.Square {
	var moves []chess.Square
	dir := chess.ForwardDirection(p.Colour)

	one := from.Offset(0, dir)
	if board.IsEmpty(one) {
		moves = append(moves, one)

		// Double push from starting rank
		if !p.Moved && int(from.Rank) == chess.PawnStartRank(p.Colour) {
			two := from.Offset(0, 2*dir)
			if board.IsEmpty(two) {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range pawnCaptureDfs {
		to := from.Offset(df, dir)
		if target, ok := board.Get(to); ok && target.Colour != p.Colour {
			moves = append(moves, to)
		}
	}
	return moves
}

func knightMoves(board *chess.Board, from chess.Square, p chess.Piece) []chess.Square {
	return stepMoves(board, from, p.Colour, knightOffsets)
}

func kingMoves(board *chess.Board, from chess.Square, p chess.Piece) []chess.Square {
	return stepMoves(board, from, p.Colour, kingOffsets)
}

func bishopMoves(board *chess.Board, from chess.Square, p chess.Piece) []chess.Square {
	return slidingMoves(board, from, p.Colour, diagonalDirs)
}

func rookMoves(board *chess.Board, from chess.Square, p chess.Piece) []chess.Square {
	return slidingMoves(board, from, p.Colour, straightDirs)
}

func queenMoves(board *chess.Board, from chess.Square, p chess.Piece) []chess.Square {
	return slidingMoves(board, from, p.Colour, allDirs)
}

// stepMoves checks each fixed offset for knight and king.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.IsValid() {
			continue
		}
		if target, ok := board.Get(to); ok && target.Colour == colour {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// slidingMoves casts rays for bishop, rook and queen. Each ray stops at the
// first occupied square, which is included only if it holds an enemy piece.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.IsValid() {
			if target, ok := board.Get(to); ok {
				if target.Colour != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
