package chess

import "strings"

// Board is an 8x8 grid of optional occupants. It holds no rule knowledge:
// turn order, castling rights and move legality belong to the engine.
type Board struct {
	// squares[file][rank]; a zero Piece (Kind == NoKind) is an empty square.
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[file][0] = W(backRank[file])
		b.squares[file][1] = W(Pawn)
		b.squares[file][6] = B(Pawn)
		b.squares[file][7] = B(backRank[file])
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the occupant of sq. Off-board squares read as empty.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return Piece{}, false
	}
	p := b.squares[sq.File][sq.Rank]
	return p, p.Kind != NoKind
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.IsValid() && b.squares[sq.File][sq.Rank].Kind == NoKind
}

// Set places a piece on sq, replacing any occupant. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	b.squares[sq.File][sq.Rank] = p
}

// Remove empties sq. Off-board squares are ignored.
func (b *Board) Remove(sq Square) {
	b.Set(sq, Piece{})
}

// MovePiece relocates the occupant of from onto to, dropping whatever stood
// on to. The moved flag is left untouched.
func (b *Board) MovePiece(from, to Square) {
	if !from.IsValid() || !to.IsValid() {
		return
	}
	b.squares[to.File][to.Rank] = b.squares[from.File][from.Rank]
	b.squares[from.File][from.Rank] = Piece{}
}

// Clone creates an independent copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Each calls fn for every occupied square, a1 to h8.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[file][rank]; p.Kind != NoKind {
				fn(NewSquare(file, rank), p)
			}
		}
	}
}

// FindKings returns every square holding a king of the given colour.
func (b *Board) FindKings(colour Colour) []Square {
	var kings []Square
	b.Each(func(sq Square, p Piece) {
		if p.Is(colour, King) {
			kings = append(kings, sq)
		}
	})
	return kings
}

// String renders the board as an 8x8 diagram, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(RankBase + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			p := b.squares[file][rank]
			if p.Kind == NoKind {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
