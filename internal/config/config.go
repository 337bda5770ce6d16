// Package config holds the settings shared by the chess binary, the HTTP
// server and batch analysis.
package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/donessie94/terminalChessAI/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // warnings and errors only
	Normal  = 1 // progress
	Verbose = 2 // per-search debug output
)

// Config holds all program configuration.
type Config struct {
	Search SearchConfig `json:"search"`
	Server ServerConfig `json:"server"`
	Bench  BenchConfig  `json:"bench"`

	Verbosity int `json:"verbosity"`

	// Output receives reports such as self-play transcripts and bench results.
	Output io.Writer `json:"-"`
	// LogFile receives structured logs.
	LogFile io.Writer `json:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:    *NewSearchConfig(),
		Server:    *NewServerConfig(),
		Bench:     *NewBenchConfig(),
		Verbosity: Normal,
		Output:    os.Stdout,
		LogFile:   os.Stderr,
	}
}

// Load reads a JSON config file over the defaults and validates the result.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path) //nolint:gosec // G304: the path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	for _, err := range []error{
		c.Search.Validate(),
		c.Server.Validate(),
		c.Bench.Validate(),
	} {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		result = multierror.Append(result,
			errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range %d-%d", c.Verbosity, Quiet, Verbose))
	}
	return result.ErrorOrNil()
}

// SetOutput sets the report writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// LogLevel maps the verbosity to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity >= Verbose:
		return slog.LevelDebug
	case c.Verbosity == Normal:
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// Logger builds a text logger writing to LogFile at the configured level.
func (c *Config) Logger() *slog.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel()}))
}
