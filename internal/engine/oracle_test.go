package engine

import (
	"math/rand"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/testutil"
)

// fromOracleSquare converts a square index with a1 = 0 into ours with a8 = 0.
func fromOracleSquare(sq notnil.Square) int {
	return (7-int(sq)/8)*8 + int(sq)%8
}

// isCastleMove reports whether m is a king moving two files.
func isCastleMove(s *chess.State, m chess.Move) bool {
	return s[m.From].Kind() == chess.King && abs(chess.Col(m.To)-chess.Col(m.From)) == 2
}

// oracleMoves returns the oracle's legal moves as de-duplicated square pairs
// with castling left out.
func oracleMoves(game *notnil.Game, s *chess.State) []chess.Move {
	seen := make(map[chess.Move]bool)
	var moves []chess.Move
	for _, om := range game.ValidMoves() {
		m := chess.Move{From: fromOracleSquare(om.S1()), To: fromOracleSquare(om.S2())}
		if seen[m] || isCastleMove(s, m) {
			continue
		}
		seen[m] = true
		moves = append(moves, m)
	}
	return moves
}

// TestLegalMoves_MatchOracle compares our legal moves with an independent
// implementation over random games.
func TestLegalMoves_MatchOracle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping oracle playouts in short mode")
	}

	rng := rand.New(rand.NewSource(42))
	for gameNum := 0; gameNum < 6; gameNum++ {
		e := NewEngine()
		game := notnil.NewGame()

		for ply := 0; ply < 150 && game.Outcome() == notnil.NoOutcome; ply++ {
			s := e.State()
			var ours []chess.Move
			for _, m := range e.ValidMoves() {
				if !isCastleMove(&s, m) {
					ours = append(ours, m)
				}
			}
			testutil.AssertSameMoves(t, ours, oracleMoves(game, &s), "game %d ply %d", gameNum, ply)
			if t.Failed() {
				t.Fatalf("position:\n%v", s)
			}

			moves := e.ValidMoves()
			m := moves[rng.Intn(len(moves))]
			if !playOracle(game, m) {
				t.Fatalf("game %d ply %d: oracle rejected %v", gameNum, ply, m)
			}
			e.Move(m)
		}
	}
}

// playOracle plays m in the oracle game, promoting to a queen when needed.
func playOracle(game *notnil.Game, m chess.Move) bool {
	for _, om := range game.ValidMoves() {
		if fromOracleSquare(om.S1()) != m.From || fromOracleSquare(om.S2()) != m.To {
			continue
		}
		if om.Promo() != notnil.NoPieceType && om.Promo() != notnil.Queen {
			continue
		}
		return game.Move(om) == nil
	}
	return false
}
