package main

import (
	"log/slog"
	"os"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/config"
	"github.com/donessie94/terminalChessAI/internal/errors"
	"github.com/donessie94/terminalChessAI/internal/search"
)

// writeSearchTree searches the initial position with tracing on and writes
// the whole tree to path as Graphviz DOT.
func writeSearchTree(cfg *config.Config, logger *slog.Logger, path string) error {
	opts := cfg.Search.Options(logger)
	opts.Trace = true
	s := search.New(opts)
	res := s.BestMove(chess.NewPosition(), cfg.Search.Depth)
	logger.Info("search traced", "move", res.Move.String(), "nodes", s.Tree().Len())

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := s.Tree().WriteDOT(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
