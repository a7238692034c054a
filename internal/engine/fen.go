// Package engine provides chess move validation and game state management.
package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. Missing trailing fields
// default to "w - - 0 1". The position must hold exactly one king per side,
// and the side not on move must not be in check.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}
	if len(parts) > 6 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%d fields, want at most 6", len(parts))
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := validateKings(board); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	if IsInCheck(board, toMove.Opposite()) {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%s to move but %s is in check", toMove, toMove.Opposite())
	}
	castling, err := parseCastlingRights(board, parts)
	if err != nil {
		return nil, err
	}
	enPassant, err := parseEnPassant(parts, toMove)
	if err != nil {
		return nil, err
	}
	halfmove, moveNumber, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}

	markMovedPieces(board, castling)
	return newGame(board, toMove, castling, enPassant, halfmove, moveNumber), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "%d ranks, want 8", len(ranks))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c > unicode.MaxASCII:
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
				}
				if file >= chess.BoardSize {
					return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", rank+1)
				}
				if kind == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
					return errors.Wrap(errors.ErrInvalidFEN, "pawn on back rank")
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.NewPiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

// validateKings checks that each side has exactly one king.
func validateKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := len(board.FindKings(colour)); n != 1 {
			return errors.Wrapf(errors.ErrInvalidFEN, "%d %s kings, want 1", n, colour)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
	}
}

// parseCastlingRights parses the castling availability field. Rights whose
// king or rook is not on its home square are dropped.
func parseCastlingRights(board *chess.Board, parts []string) (chess.CastlingRights, error) {
	if len(parts) < 3 || parts[2] == "-" {
		return chess.NoCastling, nil
	}

	rights := chess.NoCastling
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights |= chess.WhiteKingSide
		case 'Q':
			rights |= chess.WhiteQueenSide
		case 'k':
			rights |= chess.BlackKingSide
		case 'q':
			rights |= chess.BlackQueenSide
		default:
			return chess.NoCastling, errors.Wrapf(errors.ErrInvalidFEN, "invalid castling character: %c", c)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := chess.HomeRank(colour)
		if king, ok := board.Get(chess.NewSquare(kingFile, rank)); !ok || !king.Is(colour, chess.King) {
			rights = rights.Without(chess.ForColour(colour))
			continue
		}
		for _, kingside := range []bool{true, false} {
			rookFrom, _ := castleRookSquares(colour, kingside)
			if rook, ok := board.Get(rookFrom); !ok || !rook.Is(colour, chess.Rook) {
				rights = rights.Without(chess.CastlingRight(colour, kingside))
			}
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(parts []string, toMove chess.Colour) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.NoSquare, errors.Wrapf(errors.ErrInvalidFEN, "en passant square %q", parts[3])
	}
	// The target lies behind a pawn the opponent just advanced two squares.
	want := chess.PawnStartRank(toMove.Opposite()) + chess.ForwardDirection(toMove.Opposite())
	if int(sq.Rank) != want {
		return chess.NoSquare, errors.Wrapf(errors.ErrInvalidFEN, "en passant square %s on wrong rank", sq)
	}
	return sq, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (uint, uint, error) {
	var halfmove, moveNumber uint64 = 0, 1
	var err error
	if len(parts) >= 5 {
		if halfmove, err = strconv.ParseUint(parts[4], 10, 32); err != nil {
			return 0, 0, errors.Wrapf(errors.ErrInvalidFEN, "halfmove clock %q", parts[4])
		}
	}
	if len(parts) >= 6 {
		if moveNumber, err = strconv.ParseUint(parts[5], 10, 32); err != nil || moveNumber == 0 {
			return 0, 0, errors.Wrapf(errors.ErrInvalidFEN, "move number %q", parts[5])
		}
	}
	return uint(halfmove), uint(moveNumber), nil
}

// markMovedPieces infers each piece's moved flag from its square: pawns off
// their start rank have moved, and kings and rooks keep an unmoved flag
// only while a castling right vouches for them.
func markMovedPieces(board *chess.Board, castling chess.CastlingRights) {
	board.Each(func(sq chess.Square, p chess.Piece) {
		switch p.Kind {
		case chess.Pawn:
			p.Moved = int(sq.Rank) != chess.PawnStartRank(p.Colour)
		case chess.King:
			p.Moved = !castling.Has(chess.CastlingRight(p.Colour, true)) &&
				!castling.Has(chess.CastlingRight(p.Colour, false))
		case chess.Rook:
			right := cornerRight(sq)
			p.Moved = right == chess.NoCastling || !castling.Has(right) ||
				right&chess.ForColour(p.Colour) == 0
		default:
			return
		}
		board.Set(sq, p)
	})
}

// ExportNotation returns the position as a FEN string.
func (g *Game) ExportNotation() string {
	var sb strings.Builder

	writePositionKey(&sb, g)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(g.halfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(g.moveNumber), 10))

	return sb.String()
}

// FEN is an alias for ExportNotation.
func (g *Game) FEN() string {
	return g.ExportNotation()
}

// positionKey returns the canonical text used for repetition detection:
// the first four FEN fields.
func (g *Game) positionKey() string {
	var sb strings.Builder
	writePositionKey(&sb, g)
	return sb.String()
}

func writePositionKey(sb *strings.Builder, g *Game) {
	writePiecePositions(sb, g.board)
	sb.WriteByte(' ')
	writeSideToMove(sb, g.toMove)
	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := board.Get(chess.NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
