// Package server exposes a live game over HTTP. Clients play moves through a
// small JSON API and receive the new state over a websocket after every
// change; the engine answers automatically when it owns the side to move.
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/config"
	"github.com/donessie94/terminalChessAI/internal/engine"
	"github.com/donessie94/terminalChessAI/internal/errors"
	"github.com/donessie94/terminalChessAI/internal/search"
)

// Server serves one game. All engine access is serialised by mu.
type Server struct {
	router *mux.Router

	mu       sync.Mutex
	game     *engine.Engine
	searcher *search.Searcher

	depth        int
	engineColour chess.Colour
	enginePlays  bool

	clients     map[*client]struct{}
	clientsLock sync.Mutex
	upgrader    websocket.Upgrader

	log       *slog.Logger
	accessLog io.Writer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.log = logger
	}
}

// WithAccessLog sets where HTTP requests are logged in Apache format.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) {
		s.accessLog = w
	}
}

// New creates a server for cfg. If the engine plays white it makes its first
// move immediately.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		depth:     cfg.Search.Depth,
		clients:   make(map[*client]struct{}),
		accessLog: os.Stdout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.engineColour, s.enginePlays = cfg.Server.Engine()
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default().With("component", "server")
	}
	s.searcher = search.New(cfg.Search.Options(s.log))

	s.routes()
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	return s
}

func (s *Server) routes() {
	s.router.NotFoundHandler = s.logRequests(http.HandlerFunc(notFoundHandler))
	s.router.Use(s.logRequests)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	api.HandleFunc("/move", s.handleMove).Methods(http.MethodPost)
	api.HandleFunc("/undo", s.handleUndo).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/bestmove", s.handleBestMove).Methods(http.MethodGet)
	api.HandleFunc("/ws", s.handleWebsocket)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return handlers.LoggingHandler(s.accessLog, next)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serving HTTP")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.closeClients()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	return nil
}

// resetLocked starts a new game. The caller must hold mu.
func (s *Server) resetLocked() {
	s.game = engine.NewEngine(engine.WithLogger(s.log))
	s.replyLocked()
}

// replyLocked lets the engine move while it owns the side to move.
// The caller must hold mu.
func (s *Server) replyLocked() (chess.Move, bool) {
	if !s.enginePlays || s.game.NoLegalMoves() || s.game.TurnToMove() != s.engineColour {
		return chess.Move{}, false
	}
	res := s.searcher.BestMove(s.game.Position(), s.depth)
	if !res.HasMove || !s.game.Move(res.Move) {
		s.log.Error("engine produced no playable move", "move", res.Move.String())
		return chess.Move{}, false
	}
	s.log.Info("engine moved", "move", res.Move.String(), "eval", res.Eval, "nodes", res.Stats.Nodes)
	return res.Move, true
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
