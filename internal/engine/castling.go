package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// castle describes one of the four castling moves.
type castle struct {
	kingFrom, kingTo int
	rookFrom, rookTo int
	transit          int   // square the king crosses
	between          []int // squares that must be empty
}

var (
	whiteCastles = [2]castle{
		{kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61, transit: 61, between: []int{61, 62}},
		{kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59, transit: 59, between: []int{57, 58, 59}},
	}
	blackCastles = [2]castle{
		{kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5, transit: 5, between: []int{5, 6}},
		{kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3, transit: 3, between: []int{1, 2, 3}},
	}
)

// castlesFor returns the kingside and queenside castles of a colour.
func castlesFor(colour chess.Colour) *[2]castle {
	if colour == chess.White {
		return &whiteCastles
	}
	return &blackCastles
}

// castleFor returns the castle that a king move corresponds to, if any.
func castleFor(m chess.Move, piece chess.Piece) (castle, bool) {
	if piece.Kind() != chess.King {
		return castle{}, false
	}
	for _, c := range castlesFor(piece.Colour()) {
		if m.From == c.kingFrom && m.To == c.kingTo {
			return c, true
		}
	}
	return castle{}, false
}

// appendCastlingMoves appends the castling moves available to the king on sq.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position, sq int, colour chess.Colour) []chess.Move {
	if !pos.Rights.Has(colour) || sq != chess.KingHome(colour) {
		return moves
	}
	inCheck, checked := false, false
	for _, c := range castlesFor(colour) {
		if !castlePathClear(&pos.State, c, colour) {
			continue
		}
		if !checked {
			inCheck, checked = IsInCheck(pos, colour), true
		}
		if inCheck {
			return moves
		}
		if CheckAfterMove(pos, chess.Move{From: c.kingFrom, To: c.transit}) {
			continue
		}
		if CheckAfterMove(pos, chess.Move{From: c.kingFrom, To: c.kingTo}) {
			continue
		}
		moves = append(moves, chess.Move{From: c.kingFrom, To: c.kingTo})
	}
	return moves
}

// castlePathClear checks that king and rook stand on their home squares and
// nothing stands between them.
func castlePathClear(s *chess.State, c castle, colour chess.Colour) bool {
	if s[c.kingFrom] != chess.MakeColouredPiece(colour, chess.King) {
		return false
	}
	if s[c.rookFrom] != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}
	for _, sq := range c.between {
		if s[sq] != chess.Empty {
			return false
		}
	}
	return true
}

// updateCastlingRights revokes the mover's rights when its king moves or a
// rook leaves one of its home squares. Castling is a king move, so it revokes
// the right atomically.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, from int) {
	colour := piece.Colour()
	switch piece.Kind() {
	case chess.King:
		pos.Rights.Revoke(colour)
	case chess.Rook:
		kingside, queenside := chess.RookHomes(colour)
		if from == kingside || from == queenside {
			pos.Rights.Revoke(colour)
		}
	}
}
