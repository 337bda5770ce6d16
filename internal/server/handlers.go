package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/config"
	"github.com/donessie94/terminalChessAI/internal/errors"
)

// BestMoveView answers a move suggestion request.
type BestMoveView struct {
	Move    *MoveView `json:"move,omitempty"`
	Eval    float64   `json:"eval"`
	Depth   int       `json:"depth"`
	Nodes   int       `json:"nodes"`
	Elapsed string    `json:"elapsed"`
}

type errorView struct {
	Error string `json:"error"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	v := viewState(s.game)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var m chess.Move
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding move"))
		return
	}

	s.mu.Lock()
	if !m.Valid() {
		s.mu.Unlock()
		s.writeError(w, http.StatusBadRequest, errors.Wrapf(errors.ErrInvalidSquare, "move %d-%d", m.From, m.To))
		return
	}
	if !s.game.Move(m) {
		s.mu.Unlock()
		s.writeError(w, http.StatusUnprocessableEntity, &errors.MoveError{Err: errors.ErrIllegalMove, Move: m.String()})
		return
	}
	reply, replied := s.replyLocked()
	v := viewState(s.game)
	s.mu.Unlock()

	if replied {
		rv := viewMove(reply)
		v.Reply = &rv
	}
	s.broadcast(v)
	s.writeJSON(w, http.StatusOK, v)
}

// handleUndo takes back one ply, and a second one when that would otherwise
// leave the engine to move.
func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if !s.game.UndoMove() {
		s.mu.Unlock()
		s.writeError(w, http.StatusConflict, errors.Wrap(errors.ErrEmptyHistory, "undo"))
		return
	}
	if s.enginePlays && s.game.TurnToMove() == s.engineColour && len(s.game.MoveHistory()) > 0 {
		s.game.UndoMove()
	}
	v := viewState(s.game)
	s.mu.Unlock()

	s.broadcast(v)
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.resetLocked()
	v := viewState(s.game)
	s.mu.Unlock()

	s.broadcast(v)
	s.writeJSON(w, http.StatusOK, v)
}

// handleBestMove suggests a move without playing it.
func (s *Server) handleBestMove(w http.ResponseWriter, r *http.Request) {
	depth := s.depth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 || d > config.MaxSearchDepth {
			s.writeError(w, http.StatusBadRequest,
				errors.Wrapf(errors.ErrInvalidConfig, "depth %q must be 0-%d", raw, config.MaxSearchDepth))
			return
		}
		depth = d
	}

	s.mu.Lock()
	pos := s.game.Position()
	res := s.searcher.BestMove(pos, depth)
	s.mu.Unlock()

	v := BestMoveView{
		Eval:    res.Eval,
		Depth:   res.Depth,
		Nodes:   res.Stats.Nodes,
		Elapsed: res.Stats.Elapsed.String(),
	}
	if res.HasMove {
		mv := viewMove(res.Move)
		v.Move = &mv
	}
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("writing response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Debug("request rejected", "status", status, "error", err)
	s.writeJSON(w, status, errorView{Error: err.Error()})
}
