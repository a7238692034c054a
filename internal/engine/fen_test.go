package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewGameFromFEN(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		wantErr      bool
		wantToMove   chess.Colour
		wantCastling chess.CastlingRights
		wantEP       chess.Square
		wantHalfmove uint
		wantMove     uint
	}{
		{
			name:         "initial position",
			fen:          InitialFEN,
			wantToMove:   chess.White,
			wantCastling: chess.AllCastling,
			wantEP:       chess.NoSquare,
			wantMove:     1,
		},
		{
			name:         "after 1.e4",
			fen:          "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantToMove:   chess.Black,
			wantCastling: chess.AllCastling,
			wantEP:       chess.MustParseSquare("e3"),
			wantMove:     1,
		},
		{
			name:         "placement only",
			fen:          "4k3/8/8/8/8/8/8/4K3",
			wantToMove:   chess.White,
			wantCastling: chess.NoCastling,
			wantEP:       chess.NoSquare,
			wantMove:     1,
		},
		{
			name:         "clocks",
			fen:          "4k3/8/8/8/8/8/8/R3K3 b Q - 37 52",
			wantToMove:   chess.Black,
			wantCastling: chess.WhiteQueenSide,
			wantEP:       chess.NoSquare,
			wantHalfmove: 37,
			wantMove:     52,
		},
		{
			name:         "rights without rook are dropped",
			fen:          "4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1",
			wantToMove:   chess.White,
			wantCastling: chess.NoCastling,
			wantEP:       chess.NoSquare,
			wantMove:     1,
		},
		{
			name:       "side to move in check",
			fen:        "4k3/8/8/8/8/8/4R3/4K3 b - - 0 1",
			wantToMove: chess.Black,
			wantEP:     chess.NoSquare,
			wantMove:   1,
		},
		{name: "empty", fen: "", wantErr: true},
		{name: "side not to move in check", fen: "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1", wantErr: true},
		{name: "non-ASCII piece", fen: "4k3/8/8/8/8/8/ŐŐŐŐŐŐŐŐ/4K3 w - - 0 1", wantErr: true},
		{name: "non-ASCII lowercase piece", fen: "4k3/8/8/8/8/8/8/űűűűK3 w - - 0 1", wantErr: true},
		{name: "seven ranks", fen: "8/8/8/8/8/8/4K2k w - - 0 1", wantErr: true},
		{name: "rank too long", fen: "4k4/8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "rank too short", fen: "4k2/8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "bad piece", fen: "4k3/8/8/8/8/8/8/4K2X w - - 0 1", wantErr: true},
		{name: "no white king", fen: "4k3/8/8/8/8/8/8/8 w - - 0 1", wantErr: true},
		{name: "two black kings", fen: "4k2k/8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "pawn on first rank", fen: "4k3/8/8/8/8/8/8/P3K3 w - - 0 1", wantErr: true},
		{name: "bad side", fen: "4k3/8/8/8/8/8/8/4K3 x - - 0 1", wantErr: true},
		{name: "bad castling", fen: "4k3/8/8/8/8/8/8/4K3 w X - 0 1", wantErr: true},
		{name: "bad en passant", fen: "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", wantErr: true},
		{name: "en passant wrong rank", fen: "4k3/8/8/8/8/8/8/4K3 w - e3 0 1", wantErr: true},
		{name: "bad halfmove", fen: "4k3/8/8/8/8/8/8/4K3 w - - x 1", wantErr: true},
		{name: "zero move number", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 0", wantErr: true},
		{name: "extra field", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1 x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			if tt.wantErr {
				if !stderrors.Is(err, chesserrors.ErrInvalidFEN) {
					t.Fatalf("NewGameFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGameFromFEN(%q) unexpected error: %v", tt.fen, err)
			}
			if g.ToMove() != tt.wantToMove {
				t.Errorf("ToMove() = %v, want %v", g.ToMove(), tt.wantToMove)
			}
			if g.CastlingRights() != tt.wantCastling {
				t.Errorf("CastlingRights() = %v, want %v", g.CastlingRights(), tt.wantCastling)
			}
			if g.EnPassant() != tt.wantEP {
				t.Errorf("EnPassant() = %v, want %v", g.EnPassant(), tt.wantEP)
			}
			if g.HalfmoveClock() != tt.wantHalfmove {
				t.Errorf("HalfmoveClock() = %d, want %d", g.HalfmoveClock(), tt.wantHalfmove)
			}
			if g.MoveNumber() != tt.wantMove {
				t.Errorf("MoveNumber() = %d, want %d", g.MoveNumber(), tt.wantMove)
			}
		})
	}
}

func TestExportNotation_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 12 40",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g, err := NewGameFromFEN(fen)
			if err != nil {
				t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
			}
			if got := g.ExportNotation(); got != fen {
				t.Errorf("ExportNotation() = %q, want %q", got, fen)
			}
			if got := g.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestPositionKey(t *testing.T) {
	g, err := NewGameFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 7 9")
	if err != nil {
		t.Fatal(err)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3"
	if got := g.positionKey(); got != want {
		t.Errorf("positionKey() = %q, want %q", got, want)
	}
}

func TestMarkMovedPieces(t *testing.T) {
	g, err := NewGameFromFEN("r3k2r/8/8/8/8/4P3/P7/R3K2R w Kq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		square    string
		wantMoved bool
	}{
		{"a2", false}, // pawn on start rank
		{"e3", true},  // pawn off start rank
		{"e1", false}, // king with a right
		{"h1", false}, // rook covered by K
		{"a1", true},  // rook without Q
		{"a8", false}, // rook covered by q
		{"h8", true},  // rook without k
		{"e8", false},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			p, ok := g.board.Get(chess.MustParseSquare(tt.square))
			if !ok {
				t.Fatalf("no piece on %s", tt.square)
			}
			if p.Moved != tt.wantMoved {
				t.Errorf("%s Moved = %v, want %v", tt.square, p.Moved, tt.wantMoved)
			}
		})
	}

	g, err = NewGameFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if king, _ := g.board.Get(chess.MustParseSquare("e1")); !king.Moved {
		t.Error("king without castling rights should be marked moved")
	}
}

func TestParseMoveText(t *testing.T) {
	tests := []struct {
		text          string
		wantFrom      string
		wantTo        string
		wantPromotion chess.Kind
		wantErr       bool
	}{
		{"e2e4", "e2", "e4", chess.NoKind, false},
		{"E2E4", "e2", "e4", chess.NoKind, false},
		{" g1f3 ", "g1", "f3", chess.NoKind, false},
		{"e7e8q", "e7", "e8", chess.Queen, false},
		{"a2a1N", "a2", "a1", chess.Knight, false},
		{"b7b8=r", "b7", "b8", chess.Rook, false},
		{"", "", "", chess.NoKind, true},
		{"e2", "", "", chess.NoKind, true},
		{"e2e4e5", "", "", chess.NoKind, true},
		{"i2i4", "", "", chess.NoKind, true},
		{"e0e4", "", "", chess.NoKind, true},
		{"e7e8k", "", "", chess.NoKind, true},
		{"e7e8p", "", "", chess.NoKind, true},
		{"e7e8x", "", "", chess.NoKind, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			from, to, promotion, err := ParseMoveText(tt.text)
			if tt.wantErr {
				if !stderrors.Is(err, chesserrors.ErrInvalidNotation) {
					t.Fatalf("ParseMoveText(%q) error = %v, want ErrInvalidNotation", tt.text, err)
				}
				if from != chess.NoSquare || to != chess.NoSquare {
					t.Errorf("ParseMoveText(%q) squares = %v, %v, want NoSquare", tt.text, from, to)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoveText(%q) unexpected error: %v", tt.text, err)
			}
			if from.String() != tt.wantFrom || to.String() != tt.wantTo {
				t.Errorf("ParseMoveText(%q) = %s%s, want %s%s", tt.text, from, to, tt.wantFrom, tt.wantTo)
			}
			if promotion != tt.wantPromotion {
				t.Errorf("ParseMoveText(%q) promotion = %v, want %v", tt.text, promotion, tt.wantPromotion)
			}
		})
	}
}
