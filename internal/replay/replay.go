// Package replay plays recorded move lists against fresh games.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// FENPrefix introduces a per-line starting position, terminated by FENSeparator.
const (
	FENPrefix    = "fen:"
	FENSeparator = "|"
	CommentMark  = "#"
)

// Line is one game to replay: an optional starting position and the moves
// in coordinate notation.
type Line struct {
	Index    int    // Position in the input, used to restore order
	StartFEN string // Empty means the standard starting position
	Moves    []string
}

// Result summarises a replayed line.
type Result struct {
	Index      int
	Plies      int // Moves accepted before the end or the first rejection
	FEN        string
	Status     engine.Status
	DrawReason engine.DrawReason
	Err        error // First rejected move or invalid starting position
}

// Play replays the line on a new game. Replay stops at the first rejected
// move; the result then describes the position before that move.
func Play(line Line) Result {
	res := Result{Index: line.Index}

	g, err := newGame(line.StartFEN)
	if err != nil {
		res.Err = err
		return res
	}

	for _, m := range line.Moves {
		if err := g.MakeMoveText(m); err != nil {
			res.Err = err
			break
		}
	}

	res.Plies = g.Ply()
	res.FEN = g.ExportNotation()
	res.Status = g.Status()
	res.DrawReason = g.DrawReason()
	return res
}

func newGame(fen string) (*engine.Game, error) {
	if fen == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(fen)
}

// ParseLine parses one input line. Blank lines and comment lines report
// ok=false. A line may start with "fen:<FEN>|" to set its starting
// position; otherwise defaultFEN is used.
func ParseLine(text string, index int, defaultFEN string) (line Line, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, CommentMark) {
		return Line{}, false
	}

	line = Line{Index: index, StartFEN: defaultFEN}
	if strings.HasPrefix(text, FENPrefix) {
		rest := strings.TrimPrefix(text, FENPrefix)
		fen, moves, _ := strings.Cut(rest, FENSeparator)
		line.StartFEN = strings.TrimSpace(fen)
		text = moves
	}
	line.Moves = strings.Fields(text)
	return line, true
}

// ReadLines parses every game line from r. Indices continue from
// firstIndex so that lines from several inputs stay distinct.
func ReadLines(r io.Reader, firstIndex int, defaultFEN string) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	index := firstIndex
	for scanner.Scan() {
		if line, ok := ParseLine(scanner.Text(), index, defaultFEN); ok {
			lines = append(lines, line)
			index++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// String formats the result as one tab-separated output line:
// index, status, FEN and the rejection if any.
func (r Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\t%s", r.Index, r.StatusText())
	if r.FEN != "" {
		sb.WriteByte('\t')
		sb.WriteString(r.FEN)
	}
	if r.Err != nil {
		sb.WriteString("\terror: ")
		sb.WriteString(r.Err.Error())
	}
	return sb.String()
}

// StatusText returns the status, naming the draw rule for drawn games.
func (r Result) StatusText() string {
	if r.FEN == "" && r.Err != nil {
		return "invalid"
	}
	if r.Status == engine.Draw {
		return fmt.Sprintf("%s (%s)", r.Status, r.DrawReason)
	}
	return r.Status.String()
}
