// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates malformed square or move text.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrNoPieceAtSource indicates a move from an empty square.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongTurn indicates a move of the side not on move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrIllegalDestination indicates a destination the piece cannot reach.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrLeavesKingInCheck indicates a move that exposes the mover's own king.
	ErrLeavesKingInCheck = errors.New("move leaves king in check")

	// ErrInvalidPromotion indicates a promotion to a pawn or king.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameOver indicates a move submitted after checkmate, stalemate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownGame indicates a lookup of a game id that is not registered.
	ErrUnknownGame = errors.New("unknown game")
)

// MoveError wraps a rejected move with its context: the squares involved,
// the ply it was attempted at and the original text if the move was parsed.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying sentinel
	From string // Source square in algebraic notation (if known)
	To   string // Destination square in algebraic notation (if known)
	Ply  int    // 1-based ply the move would have been (0 if not applicable)
	Text string // The move text as submitted (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	switch {
	case e.Text != "":
		parts = append(parts, fmt.Sprintf("move %q", e.Text))
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err == nil {
		if context == "" {
			return "move rejected"
		}
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
