package worker

import (
	"github.com/donessie94/terminalChessAI/internal/errors"
	"github.com/donessie94/terminalChessAI/internal/search"
)

// SearchFunc returns a ProcessFunc that runs a fresh Searcher per item.
// With verify set, each result is compared against exhaustive minimax; the
// two must agree on both move and score.
func SearchFunc(opts search.Options, verify bool) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := search.New(opts).BestMove(item.Position, item.Depth)
		out := ProcessResult{Index: item.Index, Name: item.Name, Result: res}

		if !res.HasMove {
			out.Error = errors.Wrapf(errors.ErrNoLegalMoves, "position %q", item.Name)
		}
		if verify {
			ref := search.Minimax(item.Position, item.Depth, opts)
			out.Reference = &ref
			out.Mismatch = ref.HasMove != res.HasMove || ref.Move != res.Move || ref.Eval != res.Eval
		}
		return out
	}
}
