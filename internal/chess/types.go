// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player. Its value doubles as
// the turn flag stored in the last cell of a State.
type Colour int8

const (
	Black Colour = -1
	White Colour = 1
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return -c
}

// Index maps a colour onto 0 (White) or 1 (Black) for per-colour arrays.
func (c Colour) Index() int {
	if c == White {
		return 0
	}
	return 1
}

// Kind is the colourless piece type. Its value is the magnitude of a cell code.
type Kind int8

const (
	None   Kind = 0
	Pawn   Kind = 1
	Knight Kind = 3
	Rook   Kind = 5
	Bishop Kind = 6
	Queen  Kind = 9
	King   Kind = 127
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// Valid reports whether k is one of the six piece kinds.
func (k Kind) Valid() bool {
	switch k {
	case Pawn, Knight, Rook, Bishop, Queen, King:
		return true
	}
	return false
}

// Piece is a signed cell code: the magnitude is the Kind, positive for
// white and negative for black, zero for an empty square.
type Piece int8

// Empty is the code of an unoccupied square.
const Empty Piece = 0

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, kind Kind) Piece {
	return Piece(int8(colour) * int8(kind))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakeColouredPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakeColouredPiece(Black, kind)
}

// Kind extracts the piece type from a coloured piece.
func (p Piece) Kind() Kind {
	if p < 0 {
		return Kind(-p)
	}
	return Kind(p)
}

// Colour extracts the colour from a coloured piece. Empty squares report White;
// callers check IsEmpty first.
func (p Piece) Colour() Colour {
	if p < 0 {
		return Black
	}
	return White
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Letter returns the piece letter, uppercase for white and lowercase for black.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	l := p.Kind().Letter()
	if p < 0 && l != '?' {
		l += 'a' - 'A'
	}
	return l
}

// Constants for board dimensions and the state layout.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
	TurnIndex  = NumSquares
	StateSize  = NumSquares + 1

	// NoSquare marks an unknown square, e.g. a missing king.
	NoSquare = -1
)

// Home squares. Row 0 is black's back rank, row 7 is white's.
const (
	BlackQueenRookHome = 0
	BlackKingHome      = 4
	BlackKingRookHome  = 7
	WhiteQueenRookHome = 56
	WhiteKingHome      = 60
	WhiteKingRookHome  = 63
)

// Row returns the row (0-7) of a square index.
func Row(sq int) int {
	return sq / BoardSize
}

// Col returns the column (0-7) of a square index.
func Col(sq int) int {
	return sq % BoardSize
}

// SquareAt converts a row and column into a square index.
func SquareAt(row, col int) int {
	return row*BoardSize + col
}

// OnBoard reports whether row and col both lie within the board.
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// ValidSquare reports whether sq indexes one of the 64 squares.
func ValidSquare(sq int) bool {
	return sq >= 0 && sq < NumSquares
}

// HomeRow returns the back-rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row a colour's pawns start on.
func PawnRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// Forward returns the row direction a colour's pawns advance in.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// KingHome returns the king's starting square for a colour.
func KingHome(colour Colour) int {
	if colour == White {
		return WhiteKingHome
	}
	return BlackKingHome
}

// RookHomes returns the kingside and queenside rook starting squares.
func RookHomes(colour Colour) (kingside, queenside int) {
	if colour == White {
		return WhiteKingRookHome, WhiteQueenRookHome
	}
	return BlackKingRookHome, BlackQueenRookHome
}
