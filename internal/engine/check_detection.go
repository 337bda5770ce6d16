package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.King(colour)

	// If the cache is stale or unset, search for the king
	if !chess.ValidSquare(king) || pos.State[king] != chess.MakeColouredPiece(colour, chess.King) {
		king = pos.State.FindKing(colour)
		if king == chess.NoSquare {
			return false // No king found
		}
	}

	return isSquareAttacked(pos, king, colour.Opposite())
}

// CheckAfterMove reports whether playing m would leave the mover's own king
// in check. The move is played on a copy of pos, so castling, en passant and
// promotion are all accounted for.
func CheckAfterMove(pos *chess.Position, m chess.Move) bool {
	colour := pos.State[m.From].Colour()
	scratch := *pos
	Apply(&scratch, m)
	return IsInCheck(&scratch, colour)
}

// isSquareAttacked regenerates the pseudo-legal moves of every byColour piece
// and reports whether any of them lands on sq.
func isSquareAttacked(pos *chess.Position, sq int, byColour chess.Colour) bool {
	var buf [32]chess.Move
	for from := 0; from < chess.NumSquares; from++ {
		if !pos.State[from].Is(byColour) {
			continue
		}
		for _, m := range appendPieceMoves(buf[:0], pos, from, false) {
			if m.To == sq {
				return true
			}
		}
	}
	return false
}
