package engine

import "github.com/donessie94/terminalChessAI/internal/chess"

// Per-piece move handlers. Each one checks the request against the piece's
// own movement pattern, rejects it if it would leave the king in check, and
// only then executes it.

func (e *Engine) movePawn(m chess.Move) bool {
	colour := e.pos.State[m.From].Colour()
	if !containsMove(appendPawnMoves(nil, &e.pos, m.From, colour), m) {
		return false
	}
	if isPromotion(e.pos.State[m.From], m.To) {
		e.log.Debug("pawn promotes", "square", chess.SquareName(m.To))
	}
	return e.commit(m)
}

func (e *Engine) moveKnight(m chess.Move) bool {
	colour := e.pos.State[m.From].Colour()
	if !containsMove(appendKnightMoves(nil, &e.pos.State, m.From, colour), m) {
		return false
	}
	return e.commit(m)
}

func (e *Engine) moveSliding(m chess.Move, dirs []direction) bool {
	colour := e.pos.State[m.From].Colour()
	if !containsMove(appendSlidingMoves(nil, &e.pos.State, m.From, colour, dirs), m) {
		return false
	}
	return e.commit(m)
}

func (e *Engine) moveKing(m chess.Move) bool {
	piece := e.pos.State[m.From]
	if c, ok := castleFor(m, piece); ok {
		return e.castle(m, c, piece.Colour())
	}
	if !containsMove(appendKingSteps(nil, &e.pos.State, m.From, piece.Colour()), m) {
		return false
	}
	return e.commit(m)
}

// castle executes m if the king and that rook are home with nothing between
// them, the king is not in check on its start, transit or landing square, and
// neither piece has ever left its home square during this game.
func (e *Engine) castle(m chess.Move, c castle, colour chess.Colour) bool {
	if !containsMove(appendCastlingMoves(nil, &e.pos, m.From, colour), m) {
		return false
	}
	if e.movedFrom(c.kingFrom, c.rookFrom) {
		return false
	}
	e.executeMove(m)
	return true
}

// movedFrom reports whether any recorded move started on one of the squares.
func (e *Engine) movedFrom(squares ...int) bool {
	for _, rec := range e.history {
		for _, sq := range squares {
			if rec.Move.From == sq {
				return true
			}
		}
	}
	return false
}

// commit executes m unless it leaves the mover in check.
func (e *Engine) commit(m chess.Move) bool {
	if CheckAfterMove(&e.pos, m) {
		return false
	}
	e.executeMove(m)
	return true
}
