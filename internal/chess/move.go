package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// MoveRecord describes an executed move. Records are created when a move is
// committed and never modified afterwards; undo pops them off the history.
type MoveRecord struct {
	From Square
	To   Square

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The piece that moved, as it stood before the move. Its Moved field is
	// the flag to restore on undo.
	Piece Piece

	// The piece captured, if any. For en passant CaptureSquare differs from To.
	Captured      Piece
	HasCapture    bool
	CaptureSquare Square

	// The piece promoted to (NoKind if not a promotion).
	Promotion Kind

	// State before the move, restored on undo.
	PrevCastling      CastlingRights
	PrevEnPassant     Square
	PrevHalfmoveClock uint

	// Canonical key of the position reached by this move.
	PositionKey string
}

// IsCapture returns true if this move captured a piece.
func (m MoveRecord) IsCapture() bool {
	return m.HasCapture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m MoveRecord) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true if this move was an en passant capture.
func (m MoveRecord) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsCastle returns true if this move is a castling move.
func (m MoveRecord) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Text returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m MoveRecord) Text() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}
