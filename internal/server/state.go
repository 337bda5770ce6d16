package server

import (
	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/engine"
)

// MoveView is a move as sent to clients.
type MoveView struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Name string `json:"name"`
}

func viewMove(m chess.Move) MoveView {
	return MoveView{From: m.From, To: m.To, Name: m.String()}
}

// StateView is the game state as sent to clients.
type StateView struct {
	// Cells is the raw 65-cell state including the turn flag.
	Cells []int `json:"cells"`
	// Board holds one string per row, black's back rank first.
	Board      []string   `json:"board"`
	Turn       string     `json:"turn"`
	Status     string     `json:"status"`
	InCheck    bool       `json:"inCheck"`
	ValidMoves []MoveView `json:"validMoves"`
	History    []MoveView `json:"history"`

	Castling chess.CastlingRights `json:"castling"`
	// Reply is the engine's answer to the move just played, if any.
	Reply *MoveView `json:"reply,omitempty"`
}

func viewState(e *engine.Engine) StateView {
	state := e.State()
	pos := e.Position()

	v := StateView{
		Cells:      make([]int, chess.StateSize),
		Board:      make([]string, chess.BoardSize),
		Turn:       e.TurnToMove().String(),
		Status:     e.Status().String(),
		InCheck:    engine.IsInCheck(&pos, pos.Turn()),
		ValidMoves: make([]MoveView, 0, len(e.ValidMoves())),
		Castling:   e.CastlingRights(),
	}
	for i, p := range state {
		v.Cells[i] = int(p)
	}
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, chess.BoardSize)
		for col := range line {
			line[col] = state[chess.SquareAt(row, col)].Letter()
		}
		v.Board[row] = string(line)
	}
	for _, m := range e.ValidMoves() {
		v.ValidMoves = append(v.ValidMoves, viewMove(m))
	}
	history := e.MoveHistory()
	v.History = make([]MoveView, 0, len(history))
	for _, rec := range history {
		v.History = append(v.History, viewMove(rec.Move))
	}
	return v
}
