package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const prompt = "> "

// interactiveSession holds the state of the interactive prompt: the games
// registry and the id of the game being played. Games started with "new"
// stay registered until dropped.
type interactiveSession struct {
	cfg      *config.Config
	out      io.Writer
	registry *session.Registry
	id       string
	game     *session.Game
}

// runInteractive reads commands from r until quit or end of input.
func runInteractive(r io.Reader, cfg *config.Config) error {
	s := &interactiveSession{
		cfg:      cfg,
		out:      cfg.OutputFile,
		registry: session.NewRegistry(registryLogger(cfg)),
	}
	if err := s.newGame(cfg.StartFEN); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	fmt.Fprint(s.out, prompt)
	for scanner.Scan() {
		if !s.execute(scanner.Text()) {
			return nil
		}
		fmt.Fprint(s.out, prompt)
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

func registryLogger(cfg *config.Config) *log.Logger {
	if cfg.Verbosity < config.Commentary {
		return nil
	}
	return cfg.Logger()
}

// execute runs one command line. It returns false when the session ends.
func (s *interactiveSession) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		s.printHelp()
	case "board":
		fmt.Fprint(s.out, s.game.Board().String())
	case "fen":
		fmt.Fprintln(s.out, s.game.ExportNotation())
	case "status":
		s.printStatus()
	case "undo":
		if s.game.UndoMove() {
			fmt.Fprintln(s.out, s.game.ExportNotation())
		} else {
			fmt.Fprintln(s.out, "nothing to undo")
		}
	case "moves":
		s.printMoves(args)
	case "history":
		s.printHistory()
	case "new":
		if err := s.newGame(strings.Join(args, " ")); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return true
		}
		fmt.Fprintf(s.out, "%s\n%s\n", s.id, s.game.ExportNotation())
	case "games":
		s.printGames()
	case "switch":
		s.switchGame(args)
	case "drop":
		s.dropGame(args)
	default:
		s.play(fields[0])
	}
	return true
}

// newGame registers a game from fen, or from the configured start position
// when fen is empty, and makes it current.
func (s *interactiveSession) newGame(fen string) error {
	if fen == "" {
		fen = s.cfg.StartFEN
	}

	var id string
	var g *session.Game
	if fen == "" {
		id, g = s.registry.Create()
	} else {
		var err error
		if id, g, err = s.registry.CreateFromFEN(fen); err != nil {
			return err
		}
	}

	s.id, s.game = id, g
	return nil
}

func (s *interactiveSession) printGames() {
	for _, id := range s.registry.IDs() {
		marker := " "
		if id == s.id {
			marker = "*"
		}
		g, err := s.registry.Get(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(s.out, "%s %s %s\n", marker, id, g.ExportNotation())
	}
}

func (s *interactiveSession) switchGame(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "error: usage: switch <id>")
		return
	}
	g, err := s.registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.id, s.game = args[0], g
	fmt.Fprintln(s.out, g.ExportNotation())
}

func (s *interactiveSession) dropGame(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "error: usage: drop <id>")
		return
	}
	if args[0] == s.id {
		fmt.Fprintln(s.out, "error: cannot drop the current game")
		return
	}
	if err := s.registry.Delete(args[0]); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func (s *interactiveSession) play(text string) {
	if err := s.game.MakeMoveText(text); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	if st := s.game.Status(); st != engine.Active {
		s.printStatus()
	}
}

func (s *interactiveSession) printStatus() {
	snap := s.game.Snapshot()
	switch snap.Status {
	case engine.Draw:
		fmt.Fprintf(s.out, "draw (%s)\n", snap.DrawReason)
	case engine.Checkmate:
		fmt.Fprintf(s.out, "checkmate, %s wins\n", snap.ToMove.Opposite())
	default:
		fmt.Fprintf(s.out, "%s, %s to move\n", snap.Status, snap.ToMove)
	}
}

func (s *interactiveSession) printMoves(args []string) {
	var moves []string
	if len(args) == 0 {
		for _, m := range s.game.AllLegalMoves() {
			moves = append(moves, m.String())
		}
	} else {
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		for _, to := range s.game.LegalMoves(sq) {
			moves = append(moves, to.String())
		}
	}

	if len(moves) == 0 {
		fmt.Fprintln(s.out, "(none)")
		return
	}
	fmt.Fprintln(s.out, strings.Join(moves, " "))
}

func (s *interactiveSession) printHistory() {
	history := s.game.History()
	if len(history) == 0 {
		fmt.Fprintln(s.out, "(none)")
		return
	}
	texts := make([]string, len(history))
	for i, rec := range history {
		texts[i] = rec.Text()
	}
	fmt.Fprintln(s.out, strings.Join(texts, " "))
}

func (s *interactiveSession) printHelp() {
	fmt.Fprint(s.out, `commands:
  <move>       play a move, e.g. e2e4 or e7e8n
  undo         take back the last move
  moves [sq]   legal moves of the side to move, or destinations from sq
  history      moves played so far
  fen          current position as FEN
  board        current position as a diagram
  status       game status and side to move
  new [fen]    start a new game and make it current
  games        list games, * marks the current one
  switch <id>  make another game current
  drop <id>    discard a game other than the current one
  quit         leave
`)
}
