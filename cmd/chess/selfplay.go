package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/config"
	"github.com/donessie94/terminalChessAI/internal/engine"
	"github.com/donessie94/terminalChessAI/internal/search"
)

// randomOpeningPlies is how many plies are played at random before the
// engine takes over. The search is deterministic, so without them every
// self-play game would be the same.
const randomOpeningPlies = 2

// gameResult summarises one self-play game.
type gameResult struct {
	Moves  []chess.Move
	Status engine.GameStatus
	// Loser is the side to move when the game ended. Only meaningful for
	// checkmate.
	Loser chess.Colour
}

func (g gameResult) String() string {
	switch g.Status {
	case engine.Checkmate:
		return fmt.Sprintf("%s wins by checkmate after %d plies", g.Loser.Opposite(), len(g.Moves))
	case engine.Stalemate:
		return fmt.Sprintf("stalemate after %d plies", len(g.Moves))
	}
	return fmt.Sprintf("unfinished after %d plies", len(g.Moves))
}

// playGame plays the engine against itself. Game 0 starts from the initial
// position; later games open with random moves drawn from a seed derived
// from the game number.
func playGame(cfg *config.Config, logger *slog.Logger, game int) gameResult {
	e := engine.NewEngine(engine.WithLogger(logger))
	s := search.New(cfg.Search.Options(logger))

	if game > 0 {
		rng := rand.New(rand.NewSource(int64(game)))
		for i := 0; i < randomOpeningPlies && !e.NoLegalMoves(); i++ {
			moves := e.ValidMoves()
			e.Move(moves[rng.Intn(len(moves))])
		}
	}

	for len(e.MoveHistory()) < cfg.Bench.MaxPlies && !e.NoLegalMoves() {
		res := s.BestMove(e.Position(), cfg.Search.Depth)
		if !res.HasMove || !e.Move(res.Move) {
			logger.Error("search returned an unplayable move", "move", res.Move.String(), "game", game)
			break
		}
	}

	history := e.MoveHistory()
	result := gameResult{
		Moves:  make([]chess.Move, len(history)),
		Status: e.Status(),
		Loser:  e.TurnToMove(),
	}
	for i, rec := range history {
		result.Moves[i] = rec.Move
	}
	return result
}

// runSelfPlay plays the configured number of games and prints each one.
func runSelfPlay(cfg *config.Config, logger *slog.Logger) error {
	for game := 0; game < cfg.Bench.Games; game++ {
		result := playGame(cfg, logger, game)
		logger.Info("game finished", "game", game+1, "plies", len(result.Moves), "status", result.Status.String())
		fmt.Fprintf(cfg.Output, "Game %d: %s\n%s\n\n", game+1, result, formatMoves(result.Moves))
	}
	return nil
}

// formatMoves numbers the moves in pairs: "1. e2-e4 e7-e5 2. ...".
func formatMoves(moves []chess.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d.", i/2+1)
		}
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	return sb.String()
}
