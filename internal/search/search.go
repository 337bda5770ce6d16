// Package search picks moves with a depth-limited minimax search using
// alpha-beta pruning and heuristic move ordering.
package search

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/engine"
	"github.com/donessie94/terminalChessAI/internal/eval"
	"github.com/donessie94/terminalChessAI/internal/hashing"
)

// Options configures a Searcher.
type Options struct {
	// Ordering tries moves in descending heuristic order.
	Ordering bool
	// EvalCache memoises leaf evaluations for the duration of one search.
	EvalCache bool
	// CacheCapacity bounds the leaf cache (0 = unlimited).
	CacheCapacity int
	// DistinguishStalemate scores stalemate as 0 instead of a loss.
	DistinguishStalemate bool
	// BothSidesMobility credits the side not to move for mobility at leaves.
	BothSidesMobility bool
	// Trace keeps every expanded node so the tree can be inspected or exported.
	Trace bool
	// Logger receives a summary of each search. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the package-level BestMove.
func DefaultOptions() Options {
	return Options{Ordering: true, EvalCache: true}
}

func (o Options) evaluator() eval.Evaluator {
	return eval.Evaluator{
		DistinguishStalemate: o.DistinguishStalemate,
		BothSidesMobility:    o.BothSidesMobility,
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Nodes     int
	Leaves    int
	Cutoffs   int
	CacheHits int
	Elapsed   time.Duration
}

// Result is the outcome of a search.
type Result struct {
	// Move is the chosen move. It is only meaningful when HasMove is set,
	// which is whenever the root position has a legal move.
	Move    chess.Move
	HasMove bool
	// Eval is the backed-up score of the root, from white's point of view.
	Eval  float64
	Depth int
	Stats Stats
}

// Searcher runs searches. Each call to BestMove is independent; a Searcher
// must not be used from more than one goroutine at a time.
type Searcher struct {
	opts      Options
	evaluator eval.Evaluator
	cache     *hashing.EvalCache
	tree      *Tree
	maxDepth  int
	stats     Stats
	log       *slog.Logger
}

// New creates a Searcher.
func New(opts Options) *Searcher {
	s := &Searcher{
		opts:      opts,
		evaluator: opts.evaluator(),
		log:       opts.Logger,
	}
	if opts.EvalCache {
		s.cache = hashing.NewEvalCache(opts.CacheCapacity)
	}
	if s.log == nil {
		s.log = slog.Default().With("component", "search")
	}
	return s
}

// BestMove searches pos with the default options.
func BestMove(pos chess.Position, depth int) Result {
	return New(DefaultOptions()).BestMove(pos, depth)
}

// BestMove searches depth plies ahead of pos and returns the best move for
// the side to move. White maximizes the evaluation and black minimizes it.
// A depth of zero or less scores the root directly and returns the move
// the ordering heuristic ranks first.
func (s *Searcher) BestMove(pos chess.Position, depth int) Result {
	start := time.Now()
	if depth < 0 {
		depth = 0
	}
	s.maxDepth = depth
	s.stats = Stats{Nodes: 1}
	s.tree = newTree(s.opts.Trace)
	if s.cache != nil {
		s.cache.Reset()
	}

	root := s.tree.addRoot(pos)
	res := Result{Depth: depth}
	moves := engine.GenerateAllValidMoves(&pos)

	switch {
	case len(moves) == 0:
		res.Eval = s.settle(root, s.evaluator.Terminal(&pos))
	case depth == 0:
		res.Eval = s.settle(root, s.evaluator.Evaluate(&pos, moves))
		eval.Order(moves, &pos.State)
		res.Move, res.HasMove = moves[0], true
	default:
		res.Move, res.Eval = s.searchRoot(root, moves)
		res.HasMove = true
	}

	if res.HasMove {
		n := s.tree.Node(root)
		n.Best, n.HasBest = res.Move, true
	}
	s.stats.Elapsed = time.Since(start)
	res.Stats = s.stats

	s.log.Debug("search complete",
		"depth", depth,
		"move", res.Move.String(),
		"eval", res.Eval,
		"nodes", s.stats.Nodes,
		"cutoffs", s.stats.Cutoffs,
		"cacheHits", s.stats.CacheHits,
		"elapsed", s.stats.Elapsed)
	return res
}

// Tree returns the tree of the last search. Unless Trace is set it holds
// only the root.
func (s *Searcher) Tree() *Tree {
	return s.tree
}

// searchRoot scores every root move and returns the best one. Each child is
// searched with a window that opens just below the best score so far, so a
// move that ties it gets an exact score. Ties go to the move generated first,
// which makes the choice independent of the search order.
func (s *Searcher) searchRoot(root NodeID, moves []chess.Move) (chess.Move, float64) {
	pos := &s.tree.Node(root).Pos
	maximizing := pos.Turn() == chess.White

	order := make([]int, len(moves))
	for i := range order {
		order[i] = i
	}
	if s.opts.Ordering {
		scores := make([]float64, len(moves))
		for i, m := range moves {
			scores[i] = eval.MoveScore(m, &pos.State)
		}
		sort.SliceStable(order, func(a, b int) bool {
			return scores[order[a]] > scores[order[b]]
		})
	}

	best, bestIdx := math.Inf(-1), -1
	if !maximizing {
		best = math.Inf(1)
	}
	for _, i := range order {
		alpha, beta := math.Nextafter(best, math.Inf(-1)), math.Inf(1)
		if !maximizing {
			alpha, beta = math.Inf(-1), math.Nextafter(best, math.Inf(1))
		}

		mark := s.tree.Len()
		child := s.tree.expand(root, moves[i])
		v := s.search(child, alpha, beta)
		s.tree.Node(child).Status = BackedUp
		s.tree.release(mark)

		better := v > best
		if !maximizing {
			better = v < best
		}
		if bestIdx < 0 || better || (v == best && i < bestIdx) {
			best, bestIdx = v, i
		}
	}

	s.settle(root, best)
	return moves[bestIdx], best
}

// search scores the node with alpha-beta pruning and returns its value.
func (s *Searcher) search(id NodeID, alpha, beta float64) float64 {
	s.stats.Nodes++
	node := s.tree.Node(id)
	pos := node.Pos
	leaf := node.Ply >= s.maxDepth

	var key uint64
	if leaf && s.cache != nil {
		key = hashing.Key(&pos)
		if v, ok := s.cache.Lookup(key); ok {
			s.stats.CacheHits++
			return s.settle(id, v)
		}
	}

	moves := engine.GenerateAllValidMoves(&pos)
	switch {
	case len(moves) == 0:
		return s.settleLeaf(id, key, s.evaluator.Terminal(&pos))
	case leaf:
		s.stats.Leaves++
		return s.settleLeaf(id, key, s.evaluator.Evaluate(&pos, moves))
	}

	if s.opts.Ordering {
		eval.Order(moves, &pos.State)
	}

	maximizing := pos.Turn() == chess.White
	value := math.Inf(-1)
	if !maximizing {
		value = math.Inf(1)
	}
	for _, m := range moves {
		mark := s.tree.Len()
		child := s.tree.expand(id, m)
		v := s.search(child, alpha, beta)
		s.tree.Node(child).Status = BackedUp
		s.tree.release(mark)

		if maximizing && v > value || !maximizing && v < value {
			value = v
			n := s.tree.Node(id)
			n.Best, n.HasBest = m, true
		}
		if maximizing {
			alpha = math.Max(alpha, value)
		} else {
			beta = math.Min(beta, value)
		}
		if alpha >= beta {
			s.stats.Cutoffs++
			s.tree.Node(id).Cutoff = true
			break
		}
	}
	return s.settle(id, value)
}

// settleLeaf records a leaf score and caches it when the node is at the
// depth limit.
func (s *Searcher) settleLeaf(id NodeID, key uint64, v float64) float64 {
	if s.cache != nil && s.tree.Node(id).Ply >= s.maxDepth {
		s.cache.Store(key, v)
	}
	return s.settle(id, v)
}

func (s *Searcher) settle(id NodeID, v float64) float64 {
	n := s.tree.Node(id)
	n.Eval = v
	n.Status = Evaluated
	return v
}
