package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// GenerateAllValidMoves returns every legal move of the side to move, by
// ascending source square and then in each piece's generation order.
func GenerateAllValidMoves(pos *chess.Position) []chess.Move {
	return ValidMovesFor(pos, pos.Turn())
}

// ValidMovesFor returns the legal moves the given colour would have in pos,
// whether or not it is that colour's turn.
func ValidMovesFor(pos *chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	var buf [32]chess.Move
	for sq := 0; sq < chess.NumSquares; sq++ {
		if !pos.State[sq].Is(colour) {
			continue
		}
		for _, m := range appendPieceMoves(buf[:0], pos, sq, true) {
			if !CheckAfterMove(pos, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	var buf [32]chess.Move
	for sq := 0; sq < chess.NumSquares; sq++ {
		if !pos.State[sq].Is(colour) {
			continue
		}
		for _, m := range appendPieceMoves(buf[:0], pos, sq, true) {
			if !CheckAfterMove(pos, m) {
				return true
			}
		}
	}
	return false
}
