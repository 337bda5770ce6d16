package eval

import (
	"math"
	"sort"

	"github.com/donessie94/terminalChessAI/internal/chess"
)

// MoveScore rates how promising m looks for the side making it, before any
// search. It is only used to order moves; higher scores are tried first.
func MoveScore(m chess.Move, s *chess.State) float64 {
	piece := s[m.From]
	colour := piece.Colour()
	score := 0.0

	if victim := s[m.To]; victim != chess.Empty {
		score += float64(victim.Kind()) * 0.5
	}

	fromRow, fromCol := chess.Row(m.From), chess.Col(m.From)
	toRow, toCol := chess.Row(m.To), chess.Col(m.To)

	if toRow >= 2 && toRow <= 5 && toCol >= 2 && toCol <= 5 {
		score += 0.2
	}
	if toCol <= 1 || toCol >= 6 {
		score -= 0.2
	}

	dr, dc := float64(toRow-fromRow), float64(toCol-fromCol)
	score += math.Sqrt(dr*dr+dc*dc) * 0.05

	// Development of minor pieces off the back rank.
	switch piece.Kind() {
	case chess.Knight, chess.Bishop:
		home := chess.HomeRow(colour)
		if fromRow == home && toRow != home {
			score += 0.2
		}
	case chess.King:
		if fromRow == toRow && (toCol-fromCol == 2 || fromCol-toCol == 2) {
			score += 3
		}
	}

	// Moves into the opponent's half.
	if colour == chess.White && toRow < 4 || colour == chess.Black && toRow >= 4 {
		score += 0.15
	}

	return score
}

// Order sorts moves by descending MoveScore. Equal scores keep their
// generation order.
func Order(moves []chess.Move, s *chess.State) {
	scores := make(map[chess.Move]float64, len(moves))
	for _, m := range moves {
		scores[m] = MoveScore(m, s)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return scores[moves[i]] > scores[moves[j]]
	})
}
