package engine

import (
	"log/slog"

	"github.com/donessie94/terminalChessAI/internal/chess"
)

// MoveRecord is one entry of the undo stack. It holds everything needed to
// put the game back exactly as it was before Move was applied.
type MoveRecord struct {
	PriorState  chess.State
	Move        chess.Move
	PriorKings  [2]int
	PriorRights chess.CastlingRights

	// PriorLast and PriorLastPiece restore en passant eligibility.
	PriorLast      chess.Move
	PriorLastPiece chess.Piece

	MovedPiece chess.Piece
	// CapturedPiece is Empty if nothing was taken. For en passant it is the
	// pawn removed from beside the destination.
	CapturedPiece chess.Piece
}

// Engine owns a live game: the current position, the undo history and the
// legal moves of the side to move. It is not safe for concurrent use.
type Engine struct {
	pos          chess.Position
	history      []MoveRecord
	validMoves   []chess.Move
	noLegalMoves bool
	log          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for rejected and malformed requests.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// WithPosition starts the game from pos instead of the initial position.
func WithPosition(pos chess.Position) Option {
	return func(e *Engine) {
		e.pos = pos
	}
}

// NewEngine creates a game at the starting position with white to move.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{pos: chess.NewPosition()}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.Default().With("component", "engine")
	}
	e.refresh()
	return e
}

// Move applies m if it is legal for the side to move and reports whether it
// did. Illegal requests leave the game untouched.
func (e *Engine) Move(m chess.Move) bool {
	if !e.admissible(m) {
		e.log.Debug("move rejected", "move", m.String())
		return false
	}

	piece := e.pos.State[m.From]
	var applied bool
	switch piece.Kind() {
	case chess.Pawn:
		applied = e.movePawn(m)
	case chess.Knight:
		applied = e.moveKnight(m)
	case chess.Rook:
		applied = e.moveSliding(m, rookDirections)
	case chess.Bishop:
		applied = e.moveSliding(m, bishopDirections)
	case chess.Queen:
		applied = e.moveSliding(m, queenDirections)
	case chess.King:
		applied = e.moveKing(m)
	default:
		e.log.Warn("unknown piece code", "square", m.From, "code", int(piece))
		return false
	}

	if !applied {
		e.log.Debug("move rejected", "move", m.String(), "piece", piece.Kind().String())
	}
	return applied
}

// admissible performs the checks shared by every piece: both squares on the
// board, the source holding a piece of the side to move, and the destination
// not holding one of its own pieces.
func (e *Engine) admissible(m chess.Move) bool {
	if !m.Valid() {
		return false
	}
	turn := e.pos.Turn()
	return e.pos.State[m.From].Is(turn) && !e.pos.State[m.To].Is(turn)
}

// executeMove pushes the undo record, plays m and refreshes the legal moves.
// The caller has already established that m is legal.
func (e *Engine) executeMove(m chess.Move) {
	e.history = append(e.history, MoveRecord{
		PriorState:     e.pos.State,
		Move:           m,
		PriorKings:     e.pos.Kings,
		PriorRights:    e.pos.Rights,
		PriorLast:      e.pos.Last,
		PriorLastPiece: e.pos.LastPiece,
		MovedPiece:     e.pos.State[m.From],
	})
	e.history[len(e.history)-1].CapturedPiece = Apply(&e.pos, m)
	e.refresh()
}

// UndoMove reverts the most recent move. It returns false if there is
// nothing to undo.
func (e *Engine) UndoMove() bool {
	n := len(e.history)
	if n == 0 {
		return false
	}
	rec := e.history[n-1]
	e.history = e.history[:n-1]

	e.pos.State = rec.PriorState
	e.pos.Kings = rec.PriorKings
	e.pos.Rights = rec.PriorRights
	e.pos.Last = rec.PriorLast
	e.pos.LastPiece = rec.PriorLastPiece
	e.refresh()
	return true
}

// refresh recomputes the legal moves of the side to move.
func (e *Engine) refresh() {
	e.validMoves = GenerateAllValidMoves(&e.pos)
	e.noLegalMoves = len(e.validMoves) == 0
}

// State returns a copy of the board state.
func (e *Engine) State() chess.State {
	return e.pos.State
}

// Position returns a copy of the full position.
func (e *Engine) Position() chess.Position {
	return e.pos
}

// TurnToMove returns the colour to move.
func (e *Engine) TurnToMove() chess.Colour {
	return e.pos.Turn()
}

// MoveHistory returns a copy of the undo stack, oldest move first.
func (e *Engine) MoveHistory() []MoveRecord {
	return append([]MoveRecord(nil), e.history...)
}

// ValidMoves returns a copy of the legal moves of the side to move.
func (e *Engine) ValidMoves() []chess.Move {
	return append([]chess.Move(nil), e.validMoves...)
}

// NoLegalMoves reports whether the side to move is checkmated or stalemated.
func (e *Engine) NoLegalMoves() bool {
	return e.noLegalMoves
}

// Status classifies the current position.
func (e *Engine) Status() GameStatus {
	if !e.noLegalMoves {
		return Ongoing
	}
	if IsInCheck(&e.pos, e.pos.Turn()) {
		return Checkmate
	}
	return Stalemate
}

// KingSquare returns the square of the colour's king.
func (e *Engine) KingSquare(colour chess.Colour) int {
	return e.pos.King(colour)
}

// CastlingRights returns which colours may still castle.
func (e *Engine) CastlingRights() chess.CastlingRights {
	return e.pos.Rights
}

// GenerateMovesForPiece returns the pseudo-legal moves of the piece on sq in
// the current position.
func (e *Engine) GenerateMovesForPiece(sq int) []chess.Move {
	return GenerateMovesForPiece(&e.pos, sq)
}
