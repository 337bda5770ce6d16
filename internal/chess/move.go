package chess

import "fmt"

// Move is a request to relocate the piece on From to To. Castling, en
// passant and promotion are implied by the position, not tagged on the move.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// String renders the move as from-to square names, e.g. "e2-e4".
func (m Move) String() string {
	return fmt.Sprintf("%s-%s", SquareName(m.From), SquareName(m.To))
}

// Valid reports whether both squares lie on the board.
func (m Move) Valid() bool {
	return ValidSquare(m.From) && ValidSquare(m.To)
}

// IsNull reports whether the move is the zero value, which the game uses to
// mean "no move yet".
func (m Move) IsNull() bool {
	return m.From == m.To
}

// SquareName returns the file-rank name of a square ("a8" for 0, "h1" for 63).
// Out of range squares render as "--".
func SquareName(sq int) string {
	if !ValidSquare(sq) {
		return "--"
	}
	return string([]byte{byte('a' + Col(sq)), byte('8' - Row(sq))})
}

// CastlingRights records whether each colour may still castle. A right is
// lost when that colour's king or either home-square rook moves and is never
// regained.
type CastlingRights struct {
	White bool `json:"white"`
	Black bool `json:"black"`
}

// AllCastlingRights returns rights with both colours still able to castle.
func AllCastlingRights() CastlingRights {
	return CastlingRights{White: true, Black: true}
}

// Has reports whether the colour may still castle.
func (r CastlingRights) Has(colour Colour) bool {
	if colour == White {
		return r.White
	}
	return r.Black
}

// Revoke removes the colour's right to castle.
func (r *CastlingRights) Revoke(colour Colour) {
	if colour == White {
		r.White = false
	} else {
		r.Black = false
	}
}
