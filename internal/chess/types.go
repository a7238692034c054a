// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// Returns NoKind for anything that is not one of PNBRQK.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionTarget() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Piece is the occupant of a board square.
type Piece struct {
	Colour Colour
	Kind   Kind

	// Moved records whether this piece has made a move of its own.
	// It drives pawn double steps and castling eligibility.
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// Is reports whether the piece has the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Colour == colour && p.Kind == kind
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// ForwardDirection returns +1 for White, -1 for Black (for pawn direction).
func ForwardDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank index pawns of the given colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which pawns of the given colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 1 << iota // K
	WhiteQueenSide                            // Q
	BlackKingSide                             // k
	BlackQueenSide                            // q

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// CastlingRight returns the single right for a colour and side.
func CastlingRight(colour Colour, kingSide bool) CastlingRights {
	switch {
	case colour == White && kingSide:
		return WhiteKingSide
	case colour == White:
		return WhiteQueenSide
	case kingSide:
		return BlackKingSide
	default:
		return BlackQueenSide
	}
}

// Has reports whether all of the given rights are present.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r && r != NoCastling
}

// Without returns the rights with r removed.
func (cr CastlingRights) Without(r CastlingRights) CastlingRights {
	return cr &^ r
}

// ForColour returns both rights belonging to one colour.
func ForColour(colour Colour) CastlingRights {
	return CastlingRight(colour, true) | CastlingRight(colour, false)
}

// String returns the FEN castling rights field.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSide != 0 {
		s += "K"
	}
	if cr&WhiteQueenSide != 0 {
		s += "Q"
	}
	if cr&BlackKingSide != 0 {
		s += "k"
	}
	if cr&BlackQueenSide != 0 {
		s += "q"
	}
	return s
}
