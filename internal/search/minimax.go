package search

import (
	"math"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/engine"
	"github.com/donessie94/terminalChessAI/internal/eval"
)

// Minimax searches every line to depth with no pruning, ordering or caching.
// It is the reference BestMove must agree with and is far slower; only
// the evaluation options are honoured.
func Minimax(pos chess.Position, depth int, opts Options) Result {
	if depth < 0 {
		depth = 0
	}
	ev := opts.evaluator()
	res := Result{Depth: depth}

	moves := engine.GenerateAllValidMoves(&pos)
	switch {
	case len(moves) == 0:
		res.Eval = ev.Terminal(&pos)
		return res
	case depth == 0:
		res.Eval = ev.Evaluate(&pos, moves)
		eval.Order(moves, &pos.State)
		res.Move, res.HasMove = moves[0], true
		return res
	}

	var nodes int
	res.Eval, res.Move = minimax(&pos, moves, 0, depth, ev, &nodes)
	res.HasMove = true
	res.Stats.Nodes = nodes + 1
	return res
}

// minimax returns the value of pos and the first move reaching it.
// moves are the legal moves of pos, which is not at the depth limit.
func minimax(pos *chess.Position, moves []chess.Move, ply, depth int, ev eval.Evaluator, nodes *int) (float64, chess.Move) {
	maximizing := pos.Turn() == chess.White
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	var bestMove chess.Move

	for _, m := range moves {
		*nodes++
		child := *pos
		engine.Apply(&child, m)

		var v float64
		replies := engine.GenerateAllValidMoves(&child)
		switch {
		case len(replies) == 0:
			v = ev.Terminal(&child)
		case ply+1 >= depth:
			v = ev.Evaluate(&child, replies)
		default:
			v, _ = minimax(&child, replies, ply+1, depth, ev, nodes)
		}

		if maximizing && v > best || !maximizing && v < best {
			best, bestMove = v, m
		}
	}
	return best, bestMove
}
