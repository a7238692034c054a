package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ParseMoveText parses a move in coordinate notation: source square,
// destination square and an optional promotion letter, e.g. "e2e4" or
// "e7e8n". Letters are case-insensitive and an "=" before the promotion
// letter is accepted. On error both squares are chess.NoSquare.
func ParseMoveText(text string) (from, to chess.Square, promotion chess.Kind, err error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Replace(s, "=", "", 1)

	if len(s) != 4 && len(s) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoKind,
			errors.Wrapf(errors.ErrInvalidNotation, "move %q", text)
	}

	if from, err = chess.ParseSquare(s[0:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if to, err = chess.ParseSquare(s[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}

	if len(s) == 5 {
		promotion = chess.KindFromLetter(s[4])
		if !promotion.IsPromotionTarget() {
			return chess.NoSquare, chess.NoSquare, chess.NoKind,
				errors.Wrapf(errors.ErrInvalidNotation, "promotion letter %q", s[4])
		}
	}
	return from, to, promotion, nil
}
