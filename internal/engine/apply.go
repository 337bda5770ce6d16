package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// Apply plays m on pos without checking that it is legal and returns the
// captured piece (Empty if none). A king moving two files castles and brings
// its rook across, a pawn capturing onto an empty square takes en passant,
// and a pawn reaching the far rank becomes a queen. Castling rights, the king
// cache and the last move are updated and the turn passes to the opponent of
// the piece that moved.
func Apply(pos *chess.Position, m chess.Move) chess.Piece {
	s := &pos.State
	piece := s[m.From]
	colour := piece.Colour()
	captured := s[m.To]

	if c, ok := castleFor(m, piece); ok {
		s[c.rookTo] = s[c.rookFrom]
		s[c.rookFrom] = chess.Empty
	} else if isEnPassant(s, m) {
		victim := enPassantVictim(m, colour)
		captured = s[victim]
		s[victim] = chess.Empty
	}

	s[m.To] = piece
	s[m.From] = chess.Empty
	if isPromotion(piece, m.To) {
		s[m.To] = chess.MakeColouredPiece(colour, chess.Queen)
	}

	updateCastlingRights(pos, piece, m.From)
	if piece.Kind() == chess.King {
		pos.Kings[colour.Index()] = m.To
	}
	pos.Last = m
	pos.LastPiece = piece
	s.SetTurn(colour.Opposite())

	return captured
}
