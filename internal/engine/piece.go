// Package engine implements the chess rules: pseudo-legal move generation,
// check detection, legal move filtering, move application with undo, and the
// Engine that owns a live game.
package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// knightJumps lists the square offsets a knight may jump by, each with the
// row and column change it must produce. A candidate whose deltas differ has
// wrapped around the board edge.
var knightJumps = []struct {
	offset     int
	dRow, dCol int
}{
	{-6, -1, 2}, {6, 1, -2}, {-10, -1, -2}, {10, 1, 2},
	{-15, -2, 1}, {15, 2, -1}, {-17, -2, -1}, {17, 2, 1},
}

// kingSteps lists the offsets to the eight neighbouring squares.
var kingSteps = []int{-9, -8, -7, -1, 1, 7, 8, 9}

// GenerateMovesForPiece returns the pseudo-legal moves of the piece on sq:
// moves that obey its movement pattern but may leave its own king in check.
// An empty or invalid square yields no moves.
func GenerateMovesForPiece(pos *chess.Position, sq int) []chess.Move {
	if !chess.ValidSquare(sq) {
		return nil
	}
	return appendPieceMoves(nil, pos, sq, true)
}

// appendPieceMoves appends the pseudo-legal moves of the piece on sq.
// Castling candidates are skipped when withCastling is false, which is how
// attack detection avoids recursing into its own check tests.
func appendPieceMoves(moves []chess.Move, pos *chess.Position, sq int, withCastling bool) []chess.Move {
	piece := pos.State[sq]
	colour := piece.Colour()

	switch piece.Kind() {
	case chess.Pawn:
		return appendPawnMoves(moves, pos, sq, colour)
	case chess.Knight:
		return appendKnightMoves(moves, &pos.State, sq, colour)
	case chess.Rook:
		return appendSlidingMoves(moves, &pos.State, sq, colour, rookDirections)
	case chess.Bishop:
		return appendSlidingMoves(moves, &pos.State, sq, colour, bishopDirections)
	case chess.Queen:
		return appendSlidingMoves(moves, &pos.State, sq, colour, queenDirections)
	case chess.King:
		moves = appendKingSteps(moves, &pos.State, sq, colour)
		if withCastling {
			moves = appendCastlingMoves(moves, pos, sq, colour)
		}
		return moves
	}
	return moves
}

func appendKnightMoves(moves []chess.Move, s *chess.State, sq int, colour chess.Colour) []chess.Move {
	row, col := chess.Row(sq), chess.Col(sq)
	for _, jump := range knightJumps {
		to := sq + jump.offset
		if !chess.ValidSquare(to) {
			continue
		}
		if chess.Row(to)-row != jump.dRow || chess.Col(to)-col != jump.dCol {
			continue
		}
		if s[to].Is(colour) {
			continue
		}
		moves = append(moves, chess.Move{From: sq, To: to})
	}
	return moves
}

func appendKingSteps(moves []chess.Move, s *chess.State, sq int, colour chess.Colour) []chess.Move {
	row, col := chess.Row(sq), chess.Col(sq)
	for _, step := range kingSteps {
		to := sq + step
		if !chess.ValidSquare(to) {
			continue
		}
		if abs(chess.Row(to)-row) > 1 || abs(chess.Col(to)-col) > 1 {
			continue
		}
		if s[to].Is(colour) {
			continue
		}
		moves = append(moves, chess.Move{From: sq, To: to})
	}
	return moves
}
