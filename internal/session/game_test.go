package session

import (
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestGame_MakeMoveText(t *testing.T) {
	g := NewGame()

	testutil.AssertNoError(t, g.MakeMoveText("e2e4"))
	testutil.AssertEqual(t, g.ToMove(), chess.Black)
	testutil.AssertEqual(t, len(g.History()), 1)

	err := g.MakeMoveText("e2e4")
	testutil.AssertTrue(t, stderrors.Is(err, chesserrors.ErrNoPieceAtSource))

	testutil.AssertTrue(t, g.UndoMove())
	testutil.AssertEqual(t, g.ExportNotation(), engine.InitialFEN)
}

func TestNewGameFromFEN_Invalid(t *testing.T) {
	g, err := NewGameFromFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	testutil.AssertNil(t, g)
	testutil.AssertTrue(t, stderrors.Is(err, chesserrors.ErrInvalidFEN))
}

func TestGame_Snapshot(t *testing.T) {
	g := NewGame()
	g.MakeMove(chess.MustParseSquare("g1"), chess.MustParseSquare("f3"))

	want := Snapshot{
		FEN:        "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		Status:     engine.Active,
		DrawReason: engine.NoDraw,
		ToMove:     chess.Black,
		Ply:        1,
	}
	testutil.AssertEqual(t, g.Snapshot(), want)
}

// TestGame_ConcurrentMoves races both sides submitting the same knight
// shuffle. Exactly the moves that match the side to move are accepted and
// the game never reaches an inconsistent state.
func TestGame_ConcurrentMoves(t *testing.T) {
	g := NewGame()
	white := []string{"g1f3", "f3g1"}
	black := []string{"g8f6", "f6g8"}

	const rounds = 50
	var accepted int64
	var wg sync.WaitGroup
	for _, moves := range [][]string{white, black} {
		wg.Add(1)
		go func(moves []string) {
			defer wg.Done()
			i := 0
			for n := 0; n < rounds*20 && i < rounds; n++ {
				if g.MakeMoveText(moves[i%2]) == nil {
					atomic.AddInt64(&accepted, 1)
					i++
				}
			}
		}(moves)
	}

	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for i := 0; i < 200; i++ {
			s := g.Snapshot()
			if _, err := engine.NewGameFromFEN(s.FEN); err != nil {
				t.Errorf("snapshot FEN %q invalid: %v", s.FEN, err)
				return
			}
		}
	}()

	wg.Wait()
	readers.Wait()

	testutil.AssertEqual(t, int64(len(g.History())), atomic.LoadInt64(&accepted))
}

func TestGame_Queries(t *testing.T) {
	g := NewGame()
	for _, move := range []string{"f2f3", "e7e6", "g2g4"} {
		testutil.AssertNoError(t, g.MakeMoveText(move))
	}
	testutil.AssertFalse(t, g.IsCheck(chess.White))
	testutil.AssertEqual(t, len(g.LegalMoves(chess.MustParseSquare("d8"))), 4)

	testutil.AssertNoError(t, g.MakeMoveText("d8h4"))
	testutil.AssertTrue(t, g.IsCheck(chess.White))
	testutil.AssertTrue(t, g.IsCheckmate(chess.White))
	testutil.AssertFalse(t, g.IsStalemate(chess.White))
	testutil.AssertFalse(t, g.IsDraw())
	testutil.AssertEqual(t, len(g.AllLegalMoves()), 0)

	k, err := NewGameFromFEN("7k/8/8/8/8/8/8/K7 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, k.IsDraw())
	testutil.AssertEqual(t, k.DrawReason(), engine.InsufficientMaterial)
}
