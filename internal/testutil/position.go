package testutil

import (
	"testing"

	"github.com/donessie94/terminalChessAI/internal/chess"
)

// MustState parses a board diagram and calls t.Fatal on failure.
func MustState(t testing.TB, diagram string, turn chess.Colour) chess.State {
	t.Helper()
	s, err := chess.ParseDiagram(diagram, turn)
	if err != nil {
		t.Fatalf("failed to parse diagram: %v\n%s", err, diagram)
	}
	return s
}

// MustPosition parses a board diagram into a position. Kings and castling
// rights are derived from the piece placement and no last move is set.
func MustPosition(t testing.TB, diagram string, turn chess.Colour) chess.Position {
	t.Helper()
	return chess.PositionFromState(MustState(t, diagram, turn))
}

// Moves builds a move list from square-name pairs, e.g. Moves("e2", "e4", "g1", "f3").
func Moves(t testing.TB, squares ...string) []chess.Move {
	t.Helper()
	if len(squares)%2 != 0 {
		t.Fatalf("Moves: odd number of squares %v", squares)
	}
	moves := make([]chess.Move, 0, len(squares)/2)
	for i := 0; i < len(squares); i += 2 {
		moves = append(moves, chess.Move{From: Square(t, squares[i]), To: Square(t, squares[i+1])})
	}
	return moves
}

// Square converts a square name such as "e4" to its index.
func Square(t testing.TB, name string) int {
	t.Helper()
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		t.Fatalf("Square: bad square name %q", name)
	}
	return chess.SquareAt(int('8'-name[1]), int(name[0]-'a'))
}
