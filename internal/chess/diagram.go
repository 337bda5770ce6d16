package chess

import (
	"fmt"
	"strings"

	chesserrors "github.com/donessie94/terminalChessAI/internal/errors"
)

// ParseDiagram builds a State from eight rows of piece letters, black's back
// rank first. Uppercase letters are white, lowercase black, '.' an empty
// square. Spaces and blank lines are ignored.
func ParseDiagram(diagram string, turn Colour) (State, error) {
	var s State
	row := 0
	for i, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row == BoardSize {
			return State{}, &chesserrors.ParseError{
				Err: chesserrors.ErrInvalidDiagram, Line: i + 1,
				Expected: "8 rows", Got: "more",
			}
		}
		if len(line) != BoardSize {
			return State{}, &chesserrors.ParseError{
				Err: chesserrors.ErrInvalidDiagram, Line: i + 1,
				Expected: "8 squares", Got: fmt.Sprintf("%d", len(line)),
			}
		}
		for col := 0; col < BoardSize; col++ {
			piece, ok := pieceFromLetter(line[col])
			if !ok {
				return State{}, &chesserrors.ParseError{
					Err: chesserrors.ErrInvalidDiagram, Line: i + 1, Column: col + 1,
					Got: fmt.Sprintf("%q", line[col]),
				}
			}
			s[SquareAt(row, col)] = piece
		}
		row++
	}
	if row != BoardSize {
		return State{}, &chesserrors.ParseError{
			Err:      chesserrors.ErrInvalidDiagram,
			Expected: "8 rows", Got: fmt.Sprintf("%d", row),
		}
	}
	s.SetTurn(turn)
	return s, nil
}

func pieceFromLetter(c byte) (Piece, bool) {
	if c == '.' {
		return Empty, true
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Kind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'R':
		kind = Rook
	case 'B':
		kind = Bishop
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Empty, false
	}
	return MakeColouredPiece(colour, kind), true
}
