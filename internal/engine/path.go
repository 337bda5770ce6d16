package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// direction is a unit step in rows and columns.
type direction struct {
	dRow, dCol int
}

var (
	rookDirections   = []direction{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections  = []direction{
		{-1, 0}, {1, 0}, {0, 1}, {0, -1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
)

// appendSlidingMoves walks each ray from sq until the board edge or the first
// occupied square, which is included only if it holds an enemy piece.
func appendSlidingMoves(moves []chess.Move, s *chess.State, sq int, colour chess.Colour, dirs []direction) []chess.Move {
	for _, dir := range dirs {
		row, col := chess.Row(sq)+dir.dRow, chess.Col(sq)+dir.dCol
		for chess.OnBoard(row, col) {
			to := chess.SquareAt(row, col)
			target := s[to]
			if target != chess.Empty {
				if !target.Is(colour) {
					moves = append(moves, chess.Move{From: sq, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: sq, To: to})
			row += dir.dRow
			col += dir.dCol
		}
	}
	return moves
}
