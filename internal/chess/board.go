package chess

import "strings"

// State is the 65-cell board state. Cells 0-63 hold piece codes in row-major
// order starting from black's back rank (a8), cell 64 holds the turn flag.
type State [StateSize]Piece

// At returns the piece on a square.
func (s *State) At(sq int) Piece {
	return s[sq]
}

// Turn returns the colour to move.
func (s *State) Turn() Colour {
	if s[TurnIndex] < 0 {
		return Black
	}
	return White
}

// SetTurn sets the colour to move.
func (s *State) SetTurn(colour Colour) {
	s[TurnIndex] = Piece(colour)
}

// FlipTurn hands the move to the other side.
func (s *State) FlipTurn() {
	s.SetTurn(s.Turn().Opposite())
}

// FindKing scans the board for the king of the given colour.
// It returns NoSquare if there is none.
func (s *State) FindKing(colour Colour) int {
	king := MakeColouredPiece(colour, King)
	for sq := 0; sq < NumSquares; sq++ {
		if s[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// PieceCount returns the number of occupied squares, kings included.
func (s *State) PieceCount() int {
	n := 0
	for sq := 0; sq < NumSquares; sq++ {
		if s[sq] != Empty {
			n++
		}
	}
	return n
}

// String renders the board as an 8-line diagram followed by the side to move.
func (s State) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(s[SquareAt(row, col)].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(s.Turn().String())
	sb.WriteString(" to move")
	return sb.String()
}

// InitialState returns the standard starting position with white to move.
func InitialState() State {
	var s State
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		s[SquareAt(0, col)] = B(backRank[col])
		s[SquareAt(1, col)] = B(Pawn)
		s[SquareAt(6, col)] = W(Pawn)
		s[SquareAt(7, col)] = W(backRank[col])
	}
	s.SetTurn(White)
	return s
}

// Position is a State together with the context move generation needs that
// the 65 cells do not carry: where the kings are, who may still castle, and
// the last move played (for en passant).
type Position struct {
	State State

	// Kings caches each king's square, indexed by Colour.Index().
	Kings [2]int

	Rights CastlingRights

	// Last is the previous move and LastPiece the code of the piece that made
	// it. LastPiece is Empty when no move has been played.
	Last      Move
	LastPiece Piece
}

// NewPosition returns the starting position.
func NewPosition() Position {
	return Position{
		State:  InitialState(),
		Kings:  [2]int{WhiteKingHome, BlackKingHome},
		Rights: AllCastlingRights(),
	}
}

// PositionFromState builds a position from a bare state. Kings are located by
// scanning, and a colour keeps its castling right only while its king and at
// least one of its rooks stand on their home squares.
func PositionFromState(s State) Position {
	p := Position{State: s}
	for _, colour := range []Colour{White, Black} {
		p.Kings[colour.Index()] = s.FindKing(colour)
		if p.Kings[colour.Index()] != KingHome(colour) {
			continue
		}
		rook := MakeColouredPiece(colour, Rook)
		kingside, queenside := RookHomes(colour)
		if s[kingside] == rook || s[queenside] == rook {
			if colour == White {
				p.Rights.White = true
			} else {
				p.Rights.Black = true
			}
		}
	}
	return p
}

// Turn returns the colour to move.
func (p *Position) Turn() Colour {
	return p.State.Turn()
}

// King returns the cached square of the colour's king.
func (p *Position) King(colour Colour) int {
	return p.Kings[colour.Index()]
}
