package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsInCheck returns true if the given colour's king is attacked.
// It panics unless the board holds exactly one king of that colour: a
// missing or extra king means the position was corrupted upstream.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsAttacked(board, kingSquare(board, colour), colour.Opposite())
}

// kingSquare finds the king of the given colour on the board.
func kingSquare(board *chess.Board, colour chess.Colour) chess.Square {
	kings := board.FindKings(colour)
	if len(kings) != 1 {
		panic(fmt.Sprintf("engine: board has %d %s kings, want exactly 1", len(kings), colour))
	}
	return kings[0]
}

// IsAttacked returns true if sq is attacked by any piece of byColour.
// The square itself may be empty or occupied.
func IsAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: a pawn attacks diagonally forward, so look one
	// rank behind sq from the attacker's point of view.
	pawnDir := -chess.ForwardDirection(byColour)
	for _, df := range pawnCaptureDfs {
		if p, ok := board.Get(sq.Offset(df, pawnDir)); ok && p.Is(byColour, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, offset := range knightOffsets {
		if p, ok := board.Get(sq.Offset(offset[0], offset[1])); ok && p.Is(byColour, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, offset := range kingOffsets {
		if p, ok := board.Get(sq.Offset(offset[0], offset[1])); ok && p.Is(byColour, chess.King) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	if rayAttacked(board, sq, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return rayAttacked(board, sq, byColour, straightDirs, chess.Rook)
}

// rayAttacked walks each direction from sq to the first occupant and reports
// whether it is a slider (or queen) of byColour.
func rayAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour, dirs [][2]int, slider chess.Kind) bool {
	for _, dir := range dirs {
		c := sq.Offset(dir[0], dir[1])
		for c.IsValid() {
			if p, ok := board.Get(c); ok {
				if p.Colour == byColour && (p.Kind == slider || p.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			c = c.Offset(dir[0], dir[1])
		}
	}
	return false
}
