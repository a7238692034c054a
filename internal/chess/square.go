package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is an immutable board coordinate. File 0 is the a-file and
// rank 0 is White's back rank.
type Square struct {
	File int8
	Rank int8
}

// NoSquare marks an absent square, e.g. no en passant target.
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare creates a square from file and rank indices. The result may be
// off the board; use IsValid before indexing with it.
func NewSquare(file, rank int) Square {
	return Square{File: int8(file), Rank: int8(rank)}
}

// ParseSquare converts algebraic notation ("a1".."h8") to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	f, r := s[0], s[1]
	if f < FileBase || f > FileBase+BoardSize-1 || r < RankBase || r > RankBase+BoardSize-1 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	return NewSquare(int(f-FileBase), int(r-RankBase)), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// IsValid reports whether both coordinates lie within the board.
func (s Square) IsValid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away.
func (s Square) Offset(df, dr int) Square {
	return NewSquare(int(s.File)+df, int(s.Rank)+dr)
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.File)+int(s.Rank))%2 == 1
}

// String returns the algebraic notation, or "-" for an off-board square.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// Less orders squares a1, b1, ..., h8 for stable output.
func (s Square) Less(o Square) bool {
	if s.Rank != o.Rank {
		return s.Rank < o.Rank
	}
	return s.File < o.File
}
