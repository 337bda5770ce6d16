package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithOrdering enables heuristic move ordering.
func (b *ConfigBuilder) WithOrdering(enabled bool) *ConfigBuilder {
	b.cfg.Search.Ordering = enabled
	return b
}

// WithEvalCache enables the leaf evaluation cache.
func (b *ConfigBuilder) WithEvalCache(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Search.EvalCache = enabled
	b.cfg.Search.CacheCapacity = capacity
	return b
}

// WithStalemateDraw scores stalemate as a draw.
func (b *ConfigBuilder) WithStalemateDraw(enabled bool) *ConfigBuilder {
	b.cfg.Search.DistinguishStalemate = enabled
	return b
}

// WithBothSidesMobility credits both sides for mobility at leaves.
func (b *ConfigBuilder) WithBothSidesMobility(enabled bool) *ConfigBuilder {
	b.cfg.Search.BothSidesMobility = enabled
	return b
}

// WithTrace keeps search trees for export.
func (b *ConfigBuilder) WithTrace(enabled bool) *ConfigBuilder {
	b.cfg.Search.Trace = enabled
	return b
}

// WithAddr sets the server listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithEngineColour sets the side the engine plays.
func (b *ConfigBuilder) WithEngineColour(colour string) *ConfigBuilder {
	b.cfg.Server.EngineColour = colour
	return b
}

// WithWorkers sets the number of concurrent searches.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Bench.Workers = n
	return b
}

// WithSelfPlay sets the number of self-play games.
func (b *ConfigBuilder) WithSelfPlay(games int) *ConfigBuilder {
	b.cfg.Bench.Games = games
	return b
}

// WithVerify cross-checks searches against exhaustive minimax.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Bench.Verify = enabled
	return b
}

// WithOutput sets the report writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
