// chess plays chess against a depth-limited alpha-beta search. By default it
// serves a game over HTTP; it can also play the engine against itself,
// benchmark the search or export a search tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/donessie94/terminalChessAI/internal/config"
	"github.com/donessie94/terminalChessAI/internal/errors"
	"github.com/donessie94/terminalChessAI/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	closeLog, err := setupLogFile(cfg, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	err = run(cfg, logger)
	if err != nil {
		logger.Error("exiting", "error", err)
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the configuration from the optional file and the flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}
	applyFlags(cfg)
	return cfg, cfg.Validate()
}

// setupLogFile points the logs at path, if set. The returned function closes
// the file and must run before the process exits.
func setupLogFile(cfg *config.Config, path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating log file")
	}
	cfg.LogFile = file
	return func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file %s: %v\n", path, err)
		}
	}, nil
}

// run dispatches to the selected mode.
func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *dotFile != "":
		return writeSearchTree(cfg, logger, *dotFile)
	case *bench:
		return runBench(ctx, cfg, logger)
	case *selfPlay > 0:
		return runSelfPlay(cfg, logger)
	}

	srv := server.New(cfg, server.WithLogger(logger), server.WithAccessLog(cfg.LogFile))
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against an alpha-beta search engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)     serve a game on -addr (GET /api/state, POST /api/move, ...)\n")
	fmt.Fprintf(os.Stderr, "  -selfplay N   play N games engine against engine\n")
	fmt.Fprintf(os.Stderr, "  -bench        search the benchmark positions, -verify to cross-check\n")
	fmt.Fprintf(os.Stderr, "  -dot FILE     export the search tree of the initial position\n")
}
