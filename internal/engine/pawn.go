package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// appendPawnMoves appends pushes, captures and en passant for the pawn on sq.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, sq int, colour chess.Colour) []chess.Move {
	s := &pos.State
	fwd := chess.Forward(colour)
	row, col := chess.Row(sq), chess.Col(sq)

	nextRow := row + fwd
	if nextRow < 0 || nextRow >= chess.BoardSize {
		return moves
	}

	one := chess.SquareAt(nextRow, col)
	if s[one] == chess.Empty {
		moves = append(moves, chess.Move{From: sq, To: one})
		if row == chess.PawnRow(colour) {
			two := chess.SquareAt(row+2*fwd, col)
			if s[two] == chess.Empty {
				moves = append(moves, chess.Move{From: sq, To: two})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		c := col + dc
		if c < 0 || c >= chess.BoardSize {
			continue
		}
		to := chess.SquareAt(nextRow, c)
		if s[to].Is(colour.Opposite()) {
			moves = append(moves, chess.Move{From: sq, To: to})
		}
	}

	if to, ok := enPassantTarget(pos, sq); ok {
		moves = append(moves, chess.Move{From: sq, To: to})
	}
	return moves
}

// enPassantTarget returns the square the pawn on sq may capture onto en
// passant. That requires the last move to have been a double step by an
// enemy pawn that now stands beside it.
func enPassantTarget(pos *chess.Position, sq int) (int, bool) {
	s := &pos.State
	colour := s[sq].Colour()
	last := pos.Last

	if pos.LastPiece != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
		return 0, false
	}
	if abs(chess.Row(last.To)-chess.Row(last.From)) != 2 || s[last.To] != pos.LastPiece {
		return 0, false
	}
	if chess.Row(last.To) != chess.Row(sq) || abs(chess.Col(last.To)-chess.Col(sq)) != 1 {
		return 0, false
	}

	target := last.To + chess.Forward(colour)*chess.BoardSize
	if s[target] != chess.Empty {
		return 0, false
	}
	return target, true
}

// isEnPassant reports whether m is a pawn capturing diagonally onto an empty
// square, which only en passant allows.
func isEnPassant(s *chess.State, m chess.Move) bool {
	return s[m.From].Kind() == chess.Pawn &&
		chess.Col(m.From) != chess.Col(m.To) &&
		s[m.To] == chess.Empty
}

// enPassantVictim returns the square of the pawn removed by an en passant capture.
func enPassantVictim(m chess.Move, colour chess.Colour) int {
	return m.To - chess.Forward(colour)*chess.BoardSize
}

// isPromotion reports whether piece landing on to promotes.
func isPromotion(piece chess.Piece, to int) bool {
	return piece.Kind() == chess.Pawn && chess.Row(to) == chess.HomeRow(piece.Colour().Opposite())
}
