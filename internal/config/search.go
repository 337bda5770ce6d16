package config

import (
	"log/slog"

	"github.com/donessie94/terminalChessAI/internal/errors"
	"github.com/donessie94/terminalChessAI/internal/search"
)

// MaxSearchDepth bounds the configured search depth. The tree grows roughly
// thirty-fold per ply, so deeper searches are impractical.
const MaxSearchDepth = 8

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the number of plies searched. 0 scores the position directly.
	Depth int `json:"depth"`

	// Ordering tries moves in heuristic order so more branches are pruned.
	Ordering bool `json:"ordering"`

	// EvalCache memoises leaf evaluations within one search.
	EvalCache bool `json:"evalCache"`

	// CacheCapacity bounds the leaf cache (0 = unlimited).
	CacheCapacity int `json:"cacheCapacity"`

	// DistinguishStalemate scores stalemate as a draw instead of a loss.
	DistinguishStalemate bool `json:"distinguishStalemate"`

	// BothSidesMobility also credits the side not to move for mobility.
	BothSidesMobility bool `json:"bothSidesMobility"`

	// Trace keeps the whole search tree for DOT export.
	Trace bool `json:"trace"`
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:     4,
		Ordering:  true,
		EvalCache: true,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 || s.Depth > MaxSearchDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "search depth %d out of range 0-%d",
			s.Depth, MaxSearchDepth)
	}
	if s.CacheCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative cache capacity %d", s.CacheCapacity)
	}
	return nil
}

// Options converts the settings into search options logging to logger.
func (s *SearchConfig) Options(logger *slog.Logger) search.Options {
	return search.Options{
		Ordering:             s.Ordering,
		EvalCache:            s.EvalCache,
		CacheCapacity:        s.CacheCapacity,
		DistinguishStalemate: s.DistinguishStalemate,
		BothSidesMobility:    s.BothSidesMobility,
		Trace:                s.Trace,
		Logger:               logger,
	}
}
