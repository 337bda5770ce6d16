package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"text/tabwriter"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/config"
	"github.com/donessie94/terminalChessAI/internal/errors"
	"github.com/donessie94/terminalChessAI/internal/worker"
)

// benchPositions are searched by -bench.
var benchPositions = []struct {
	name    string
	turn    chess.Colour
	diagram string
}{
	{"initial", chess.White, `
		rnbqkbnr
		pppppppp
		........
		........
		........
		........
		PPPPPPPP
		RNBQKBNR`},
	{"open game", chess.White, `
		r.bqkb.r
		pppp.ppp
		..n..n..
		....p...
		..B.P...
		.....N..
		PPPP.PPP
		RNBQK..R`},
	{"hanging queen", chess.White, `
		k.......
		........
		........
		...q....
		........
		........
		.......K
		...R....`},
	{"back rank", chess.White, `
		......k.
		.....ppp
		........
		........
		........
		........
		........
		R.....K.`},
	{"rook ending", chess.Black, `
		........
		.....k..
		........
		........
		........
		........
		.....K..
		....R...`},
}

// benchItems parses the benchmark positions into work items.
func benchItems(depth int) ([]worker.WorkItem, error) {
	items := make([]worker.WorkItem, 0, len(benchPositions))
	for i, bp := range benchPositions {
		s, err := chess.ParseDiagram(bp.diagram, bp.turn)
		if err != nil {
			return nil, errors.Wrapf(err, "bench position %q", bp.name)
		}
		items = append(items, worker.WorkItem{
			Position: chess.PositionFromState(s),
			Depth:    depth,
			Name:     bp.name,
			Index:    i,
		})
	}
	return items, nil
}

// runBench searches every benchmark position on the worker pool and prints
// a table of results. With verification on it fails if any search disagrees
// with exhaustive minimax. Cancelling ctx skips the searches not yet started.
func runBench(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	items, err := benchItems(cfg.Search.Depth)
	if err != nil {
		return err
	}

	opts := cfg.Search.Options(logger)
	opts.Trace = false
	n := cfg.Bench.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}
	logger.Info("bench started", "positions", len(items), "workers", n, "depth", cfg.Search.Depth)
	results := worker.RunAll(ctx, items, worker.SearchFunc(opts, cfg.Bench.Verify),
		worker.WithWorkers(n), worker.WithBufferSize(len(items)))

	tw := tabwriter.NewWriter(cfg.Output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tMOVE\tEVAL\tNODES\tCUTOFFS\tCACHE\tTIME\tVERIFY")
	mismatches, cancelled := 0, 0
	for _, r := range results {
		if r.Cancelled() {
			cancelled++
			fmt.Fprintf(tw, "%s\t(cancelled)\t\t\t\t\t\t\n", r.Name)
			continue
		}
		move := "-"
		if r.Result.HasMove {
			move = r.Result.Move.String()
		}
		check := "-"
		if r.Reference != nil {
			check = "ok"
			if r.Mismatch {
				check = fmt.Sprintf("MISMATCH (minimax %s %.2f)", r.Reference.Move, r.Reference.Eval)
				mismatches++
			}
		}
		st := r.Result.Stats
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%d\t%d\t%s\t%s\n",
			r.Name, move, r.Result.Eval, st.Nodes, st.Cutoffs, st.CacheHits, st.Elapsed, check)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "writing bench table")
	}

	if cancelled > 0 {
		return errors.Wrapf(errors.ErrSearchCancelled, "%d of %d searches", cancelled, len(results))
	}
	if mismatches > 0 {
		return errors.Wrapf(errors.ErrSearchMismatch, "%d of %d searches", mismatches, len(results))
	}
	return nil
}
