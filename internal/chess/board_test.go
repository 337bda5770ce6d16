package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/donessie94/terminalChessAI/internal/errors"
)

func TestInitialState(t *testing.T) {
	s := InitialState()

	t.Run("turn flag", func(t *testing.T) {
		if s[TurnIndex] != 1 {
			t.Errorf("s[TurnIndex] = %d; want 1", s[TurnIndex])
		}
		if s.Turn() != White {
			t.Errorf("Turn() = %v; want White", s.Turn())
		}
	})

	tests := []struct {
		name  string
		sq    int
		piece Piece
	}{
		{"black rook a8", 0, -5},
		{"black knight b8", 1, -3},
		{"black bishop c8", 2, -6},
		{"black queen d8", 3, -9},
		{"black king e8", 4, -127},
		{"black pawn a7", 8, -1},
		{"white pawn h2", 55, 1},
		{"white rook a1", 56, 5},
		{"white queen d1", 59, 9},
		{"white king e1", 60, 127},
		{"white rook h1", 63, 5},
		{"empty e4", 36, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.At(tt.sq); got != tt.piece {
				t.Errorf("At(%d) = %d; want %d", tt.sq, got, tt.piece)
			}
		})
	}

	if got := s.PieceCount(); got != 32 {
		t.Errorf("PieceCount() = %d; want 32", got)
	}
}

func TestPieceCodes(t *testing.T) {
	tests := []struct {
		piece  Piece
		kind   Kind
		colour Colour
		letter byte
	}{
		{W(Pawn), Pawn, White, 'P'},
		{B(Knight), Knight, Black, 'n'},
		{W(Rook), Rook, White, 'R'},
		{B(Bishop), Bishop, Black, 'b'},
		{W(Queen), Queen, White, 'Q'},
		{B(King), King, Black, 'k'},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if tt.piece.Kind() != tt.kind {
				t.Errorf("Kind() = %v; want %v", tt.piece.Kind(), tt.kind)
			}
			if tt.piece.Colour() != tt.colour {
				t.Errorf("Colour() = %v; want %v", tt.piece.Colour(), tt.colour)
			}
			if tt.piece.Letter() != tt.letter {
				t.Errorf("Letter() = %c; want %c", tt.piece.Letter(), tt.letter)
			}
			if !tt.piece.Is(tt.colour) || tt.piece.Is(tt.colour.Opposite()) {
				t.Errorf("Is(%v) wrong for %d", tt.colour, tt.piece)
			}
		})
	}

	if Empty.Is(White) || Empty.Is(Black) {
		t.Error("Empty.Is() = true; want false")
	}
	if Kind(2).Valid() {
		t.Error("Kind(2).Valid() = true; want false")
	}
}

func TestCoordinates(t *testing.T) {
	tests := []struct {
		sq       int
		row, col int
		name     string
	}{
		{0, 0, 0, "a8"},
		{7, 0, 7, "h8"},
		{36, 4, 4, "e4"},
		{52, 6, 4, "e2"},
		{63, 7, 7, "h1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Row(tt.sq) != tt.row || Col(tt.sq) != tt.col {
				t.Errorf("Row/Col(%d) = %d,%d; want %d,%d", tt.sq, Row(tt.sq), Col(tt.sq), tt.row, tt.col)
			}
			if SquareAt(tt.row, tt.col) != tt.sq {
				t.Errorf("SquareAt(%d, %d) = %d; want %d", tt.row, tt.col, SquareAt(tt.row, tt.col), tt.sq)
			}
			if SquareName(tt.sq) != tt.name {
				t.Errorf("SquareName(%d) = %q; want %q", tt.sq, SquareName(tt.sq), tt.name)
			}
		})
	}

	if got := (Move{From: 52, To: 36}).String(); got != "e2-e4" {
		t.Errorf("Move.String() = %q; want %q", got, "e2-e4")
	}
	if (Move{From: 52, To: 64}).Valid() {
		t.Error("Move{52, 64}.Valid() = true; want false")
	}
}

func TestTurnFlag(t *testing.T) {
	s := InitialState()
	s.FlipTurn()
	if s.Turn() != Black || s[TurnIndex] != -1 {
		t.Errorf("after FlipTurn: Turn() = %v, flag %d; want Black, -1", s.Turn(), s[TurnIndex])
	}
	s.FlipTurn()
	if s.Turn() != White {
		t.Errorf("after second FlipTurn: Turn() = %v; want White", s.Turn())
	}
}

func TestNewPosition(t *testing.T) {
	p := NewPosition()
	if p.King(White) != 60 || p.King(Black) != 4 {
		t.Errorf("Kings = %v; want [60 4]", p.Kings)
	}
	if !p.Rights.Has(White) || !p.Rights.Has(Black) {
		t.Errorf("Rights = %+v; want both", p.Rights)
	}
	if p.LastPiece != Empty {
		t.Errorf("LastPiece = %d; want Empty", p.LastPiece)
	}
	if PositionFromState(InitialState()) != p {
		t.Error("PositionFromState(InitialState()) differs from NewPosition()")
	}
}

func TestPositionFromState(t *testing.T) {
	s, err := ParseDiagram(`
		r...k...
		........
		........
		........
		........
		........
		........
		...K...R
	`, Black)
	if err != nil {
		t.Fatalf("ParseDiagram() error: %v", err)
	}

	p := PositionFromState(s)
	if p.King(White) != 59 || p.King(Black) != 4 {
		t.Errorf("Kings = %v; want [59 4]", p.Kings)
	}
	if p.Rights.White {
		t.Error("Rights.White = true; want false for displaced king")
	}
	if !p.Rights.Black {
		t.Error("Rights.Black = false; want true")
	}
	if p.Turn() != Black {
		t.Errorf("Turn() = %v; want Black", p.Turn())
	}
}

func TestCastlingRights(t *testing.T) {
	r := AllCastlingRights()
	r.Revoke(White)
	if r.Has(White) || !r.Has(Black) {
		t.Errorf("after Revoke(White): %+v", r)
	}
	r.Revoke(Black)
	if r.Has(Black) {
		t.Errorf("after Revoke(Black): %+v", r)
	}
}

func TestParseDiagram(t *testing.T) {
	initial := `
		rnbqkbnr
		pppppppp
		........
		........
		........
		........
		PPPPPPPP
		RNBQKBNR`

	s, err := ParseDiagram(initial, White)
	if err != nil {
		t.Fatalf("ParseDiagram() error: %v", err)
	}
	if s != InitialState() {
		t.Errorf("ParseDiagram(initial) =\n%v\nwant\n%v", s, InitialState())
	}

	errorCases := []struct {
		name    string
		diagram string
	}{
		{"short row", "rnbqkbn\n" + "pppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR"},
		{"bad letter", "rnbqkbnx\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR"},
		{"too few rows", "rnbqkbnr\npppppppp"},
		{"too many rows", initial + "\n........"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDiagram(tt.diagram, White); !errors.Is(err, chesserrors.ErrInvalidDiagram) {
				t.Errorf("ParseDiagram() error = %v; want ErrInvalidDiagram", err)
			}
		})
	}
}
