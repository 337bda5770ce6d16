package config

import "github.com/donessie94/terminalChessAI/internal/errors"

// BenchConfig holds settings for self-play and batch analysis.
type BenchConfig struct {
	// Workers is the number of concurrent searches (0 = one per CPU).
	Workers int `json:"workers"`

	// Games is the number of self-play games.
	Games int `json:"games"`

	// MaxPlies ends a self-play game that has not finished.
	MaxPlies int `json:"maxPlies"`

	// Verify re-runs every search with exhaustive minimax and reports
	// any disagreement.
	Verify bool `json:"verify"`
}

// NewBenchConfig creates a BenchConfig with default values.
func NewBenchConfig() *BenchConfig {
	return &BenchConfig{
		Games:    1,
		MaxPlies: 200,
	}
}

// Validate checks that the bench configuration is valid.
func (b *BenchConfig) Validate() error {
	if b.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative worker count %d", b.Workers)
	}
	if b.Games < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative game count %d", b.Games)
	}
	if b.MaxPlies <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max plies must be positive, got %d", b.MaxPlies)
	}
	return nil
}
