package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// GameStatus describes whether the side to move can continue.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (g GameStatus) String() string {
	switch g {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.Turn()
	return IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.Turn()
	return !IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// Status classifies the position for the side to move.
func Status(pos *chess.Position) GameStatus {
	colour := pos.Turn()
	if HasLegalMoves(pos, colour) {
		return Ongoing
	}
	if IsInCheck(pos, colour) {
		return Checkmate
	}
	return Stalemate
}
