package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Draw rule thresholds.
const (
	// FiftyMoveLimit is the half-move clock value (100 plies, 50 full moves)
	// at which the game is drawn.
	FiftyMoveLimit = 100

	// RepetitionLimit is the number of occurrences of one position that
	// draws the game.
	RepetitionLimit = 3
)

// DrawReason identifies which draw rule applies.
type DrawReason int

const (
	NoDraw DrawReason = iota
	InsufficientMaterial
	ThreefoldRepetition
	FiftyMoveRule
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FiftyMoveRule:
		return "fifty-move rule"
	default:
		return "none"
	}
}

// IsDraw returns true if any draw rule applies to the current position.
func (g *Game) IsDraw() bool {
	return g.DrawReason() != NoDraw
}

// DrawReason returns the first draw rule that applies, checking material,
// then repetition, then the fifty-move rule.
func (g *Game) DrawReason() DrawReason {
	switch {
	case HasInsufficientMaterial(g.board):
		return InsufficientMaterial
	case g.repetitions.Max() >= RepetitionLimit:
		return ThreefoldRepetition
	case g.halfmoveClock >= FiftyMoveLimit:
		return FiftyMoveRule
	default:
		return NoDraw
	}
}

// HasInsufficientMaterial returns true if neither side has enough material
// to force mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.Each(func(sq chess.Square, p chess.Piece) {
		switch p.Kind {
		case chess.King:
			// Kings don't count for material
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			// Any pawn, rook, or queen means sufficient material
			sufficient = true
			return
		}

		if p.Colour == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}
