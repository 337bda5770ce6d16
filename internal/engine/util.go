package engine

import (
	"golang.org/x/exp/constraints"

	"github.com/donessie94/terminalChessAI/internal/chess"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// containsMove reports whether m is in moves.
func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
