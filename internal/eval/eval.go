// Package eval scores chess positions and moves for the search. Scores are
// from white's point of view: positive favours white, negative black.
package eval

import (
	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/engine"
)

const (
	// MateScore is the magnitude of a position where the side to move has
	// no legal move.
	MateScore = 9999.0

	// CastlingBonus is awarded to each colour that may still castle.
	CastlingBonus = 5.0
)

// Evaluator computes static evaluations.
type Evaluator struct {
	// DistinguishStalemate scores a stalemate as a draw (0) instead of a loss
	// for the side to move.
	DistinguishStalemate bool

	// BothSidesMobility also credits the side not to move for its mobility
	// and capture options. By default only the side to move is counted.
	BothSidesMobility bool
}

// Terminal scores a position in which the side to move has no legal move.
func (ev Evaluator) Terminal(pos *chess.Position) float64 {
	turn := pos.Turn()
	if ev.DistinguishStalemate && !engine.IsInCheck(pos, turn) {
		return 0
	}
	if turn == chess.White {
		return -MateScore
	}
	return MateScore
}

// Evaluate scores a position that still has legal moves. moves must be the
// legal moves of the side to move; they alone feed the mobility and capture
// terms unless BothSidesMobility is set.
func (ev Evaluator) Evaluate(pos *chess.Position, moves []chess.Move) float64 {
	s := &pos.State
	lists := [][]chess.Move{moves}
	if ev.BothSidesMobility {
		lists = append(lists, engine.ValidMovesFor(pos, pos.Turn().Opposite()))
	}

	var mobility, captures [chess.NumSquares]int
	for _, list := range lists {
		for _, m := range list {
			mobility[m.From]++
			if s[m.To] != chess.Empty {
				captures[m.From]++
			}
		}
	}

	pieceCount := s.PieceCount()
	score := 0.0
	for sq := 0; sq < chess.NumSquares; sq++ {
		piece := s[sq]
		if piece == chess.Empty || piece.Kind() == chess.King {
			continue
		}
		score += pieceScore(piece, sq, pieceCount, mobility[sq], captures[sq])
	}

	if pos.Rights.White {
		score += CastlingBonus
	}
	if pos.Rights.Black {
		score -= CastlingBonus
	}
	return score
}

// pieceScore values one non-king piece, signed by its colour.
func pieceScore(piece chess.Piece, sq, pieceCount, mobility, captures int) float64 {
	kind := piece.Kind()

	value := float64(kind)
	if kind == chess.Bishop {
		value /= 2
	}

	// Knights are worth more in crowded positions, bishops in open ones.
	if kind == chess.Knight && pieceCount > 20 || kind == chess.Bishop && pieceCount <= 20 {
		value += 0.3
	}

	row, col := chess.Row(sq), chess.Col(sq)
	switch {
	case (row == 3 || row == 4) && (col == 3 || col == 4):
		value += 1.0
	case row >= 2 && row <= 5 && col >= 2 && col <= 5:
		value += 0.5
	}

	value += float64(mobility)*0.1 + float64(captures)*0.1

	if onStartingFile(kind, col) {
		value -= 0.3
	}
	if mobility < 3 {
		value -= 0.3
	}

	if piece.Colour() == chess.Black {
		return -value
	}
	return value
}

// onStartingFile reports whether a piece stands on one of the files it
// starts the game on. Pawns and kings never count.
func onStartingFile(kind chess.Kind, col int) bool {
	switch kind {
	case chess.Rook:
		return col == 0 || col == 7
	case chess.Knight:
		return col == 1 || col == 6
	case chess.Bishop:
		return col == 2 || col == 5
	case chess.Queen:
		return col == 3
	}
	return false
}
