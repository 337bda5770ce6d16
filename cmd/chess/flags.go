// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/donessie94/terminalChessAI/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "JSON configuration file (flags override its values)")

	// Search options
	depth         = flag.Int("depth", -1, "Search depth in plies (default from config: 4)")
	noOrdering    = flag.Bool("noorder", false, "Search moves in generation order")
	noCache       = flag.Bool("nocache", false, "Disable the leaf evaluation cache")
	stalemateDraw = flag.Bool("stalematedraw", false, "Score stalemate as a draw instead of a loss")

	// Server options
	addr         = flag.String("addr", "", "Listen address for the game server (default :8080)")
	engineColour = flag.String("engine", "", "Side the engine plays: white, black or none (default black)")

	// Batch modes
	selfPlay = flag.Int("selfplay", 0, "Play N engine-versus-engine games and exit")
	maxPlies = flag.Int("maxplies", 0, "Stop self-play games after N plies (default 200)")
	bench    = flag.Bool("bench", false, "Search the benchmark positions and exit")
	verify   = flag.Bool("verify", false, "Check every benchmark search against exhaustive minimax")
	workers  = flag.Int("workers", -1, "Concurrent benchmark searches (0 = one per CPU)")
	dotFile  = flag.String("dot", "", "Write the search tree of the initial position as Graphviz DOT")

	// Logging
	logFile = flag.String("l", "", "Write logs to file instead of stderr")
	verbose = flag.Bool("v", false, "Verbose logging, including per-search statistics")
	quiet   = flag.Bool("s", false, "Silent mode (warnings and errors only)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Flags left at
// their defaults keep the configured values.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyServerFlags(cfg)
	applyBenchFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// applySearchFlags configures the move search.
func applySearchFlags(cfg *config.Config) {
	if *depth >= 0 {
		cfg.Search.Depth = *depth
	}
	if *noOrdering {
		cfg.Search.Ordering = false
	}
	if *noCache {
		cfg.Search.EvalCache = false
	}
	if *stalemateDraw {
		cfg.Search.DistinguishStalemate = true
	}
	if *dotFile != "" {
		cfg.Search.Trace = true
	}
}

// applyServerFlags configures the game server.
func applyServerFlags(cfg *config.Config) {
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *engineColour != "" {
		cfg.Server.EngineColour = *engineColour
	}
}

// applyBenchFlags configures self-play and benchmarking.
func applyBenchFlags(cfg *config.Config) {
	if *selfPlay > 0 {
		cfg.Bench.Games = *selfPlay
	}
	if *maxPlies > 0 {
		cfg.Bench.MaxPlies = *maxPlies
	}
	if *workers >= 0 {
		cfg.Bench.Workers = *workers
	}
	if *verify {
		cfg.Bench.Verify = true
	}
}
