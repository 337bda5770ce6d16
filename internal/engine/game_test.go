package engine

import (
	"testing"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/testutil"
)

// play applies moves given as square-name pairs and fails on the first rejection.
func play(t *testing.T, e *Engine, squares ...string) {
	t.Helper()
	for _, m := range testutil.Moves(t, squares...) {
		if !e.Move(m) {
			t.Fatalf("Move(%v) rejected in position:\n%v", m, e.State())
		}
	}
}

func TestEngine_NewEngine(t *testing.T) {
	e := NewEngine()

	testutil.AssertEqual(t, e.State(), chess.InitialState())
	testutil.AssertEqual(t, e.TurnToMove(), chess.White)
	testutil.AssertEqual(t, len(e.ValidMoves()), 20)
	testutil.AssertFalse(t, e.NoLegalMoves())
	testutil.AssertEqual(t, e.Status(), Ongoing)
	testutil.AssertEqual(t, e.KingSquare(chess.White), 60)
	testutil.AssertEqual(t, e.KingSquare(chess.Black), 4)
	testutil.AssertEqual(t, e.CastlingRights(), chess.AllCastlingRights())
	testutil.AssertEqual(t, len(e.MoveHistory()), 0)
}

func TestEngine_RejectsIllegalMoves(t *testing.T) {
	tests := []struct {
		name string
		move chess.Move
	}{
		{"source out of range", chess.Move{From: 64, To: 0}},
		{"negative source", chess.Move{From: -1, To: 5}},
		{"destination out of range", chess.Move{From: 52, To: 70}},
		{"empty source", chess.Move{From: 36, To: 28}},
		{"opponent piece", chess.Move{From: 12, To: 28}},
		{"capture own piece", chess.Move{From: 56, To: 48}},
		{"pawn triple step", chess.Move{From: 52, To: 28}},
		{"pawn diagonal without capture", chess.Move{From: 52, To: 43}},
		{"knight off pattern", chess.Move{From: 57, To: 41}},
		{"bishop through pawn", chess.Move{From: 61, To: 43}},
		{"queen through pawn", chess.Move{From: 59, To: 35}},
		{"king two squares without castling path", chess.Move{From: 60, To: 62}},
		{"null move", chess.Move{From: 52, To: 52}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := NewEngine()
			before := e.State()

			if e.Move(tt.move) {
				t.Errorf("Move(%v) = true, want false", tt.move)
			}
			testutil.AssertEqual(t, e.State(), before, "state after rejected move")
			testutil.AssertEqual(t, len(e.MoveHistory()), 0)
		})
	}
}

func TestEngine_MoveAndUndo(t *testing.T) {
	e := NewEngine()
	before := e.State()

	if !e.Move(chess.Move{From: 52, To: 36}) {
		t.Fatal("Move(e2-e4) = false, want true")
	}
	testutil.AssertEqual(t, e.TurnToMove(), chess.Black)
	testutil.AssertEqual(t, e.State()[36], chess.W(chess.Pawn))
	testutil.AssertEqual(t, e.State()[52], chess.Empty)

	history := e.MoveHistory()
	testutil.AssertEqual(t, history, []MoveRecord{{
		PriorState:  before,
		Move:        chess.Move{From: 52, To: 36},
		PriorKings:  [2]int{60, 4},
		PriorRights: chess.AllCastlingRights(),
		MovedPiece:  chess.W(chess.Pawn),
	}})

	if !e.UndoMove() {
		t.Fatal("UndoMove() = false, want true")
	}
	testutil.AssertEqual(t, e.State(), before)
	testutil.AssertEqual(t, e.Position(), chess.NewPosition())
	testutil.AssertEqual(t, len(e.ValidMoves()), 20, "legal moves recomputed after undo")

	if e.UndoMove() {
		t.Error("UndoMove() on empty history = true, want false")
	}
}

func TestEngine_Capture(t *testing.T) {
	e := NewEngine()
	play(t, e, "e2", "e4", "d7", "d5", "e4", "d5")

	history := e.MoveHistory()
	last := history[len(history)-1]
	testutil.AssertEqual(t, last.CapturedPiece, chess.B(chess.Pawn))
	st := e.State()
	testutil.AssertEqual(t, st.PieceCount(), 31)
}

func TestEngine_EnPassant(t *testing.T) {
	e := NewEngine()
	play(t, e, "e2", "e4", "a7", "a6", "e4", "e5", "d7", "d5")

	ep := chess.Move{From: testutil.Square(t, "e5"), To: testutil.Square(t, "d6")}
	testutil.AssertTrue(t, containsMove(e.ValidMoves(), ep), "en passant offered right after the double step")

	before := e.Position()
	if !e.Move(ep) {
		t.Fatal("Move(e5xd6 e.p.) = false, want true")
	}
	s := e.State()
	testutil.AssertEqual(t, s[testutil.Square(t, "d6")], chess.W(chess.Pawn))
	testutil.AssertEqual(t, s[testutil.Square(t, "d5")], chess.Empty, "captured pawn removed from its own square")
	testutil.AssertEqual(t, s[testutil.Square(t, "e5")], chess.Empty)

	history := e.MoveHistory()
	testutil.AssertEqual(t, history[len(history)-1].CapturedPiece, chess.B(chess.Pawn))

	e.UndoMove()
	testutil.AssertEqual(t, e.Position(), before, "undo restores en passant context")
	testutil.AssertTrue(t, containsMove(e.ValidMoves(), ep), "en passant offered again after undo")
}

func TestEngine_EnPassantExpires(t *testing.T) {
	e := NewEngine()
	play(t, e, "e2", "e4", "a7", "a6", "e4", "e5", "d7", "d5", "h2", "h3", "h7", "h6")

	ep := chess.Move{From: testutil.Square(t, "e5"), To: testutil.Square(t, "d6")}
	if containsMove(e.ValidMoves(), ep) {
		t.Error("en passant still offered one move pair later")
	}
	if e.Move(ep) {
		t.Error("Move(e5xd6) accepted after en passant expired")
	}
}

func TestEngine_Castling(t *testing.T) {
	tests := []struct {
		name     string
		move     []string
		king     string
		rookFrom string
		rookTo   string
	}{
		{"kingside", []string{"e1", "g1"}, "g1", "h1", "f1"},
		{"queenside", []string{"e1", "c1"}, "c1", "a1", "d1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, castlingDiagram, chess.White)
			e := NewEngine(WithPosition(pos))

			play(t, e, tt.move...)
			s := e.State()
			testutil.AssertEqual(t, s[testutil.Square(t, tt.king)], chess.W(chess.King))
			testutil.AssertEqual(t, s[testutil.Square(t, tt.rookTo)], chess.W(chess.Rook))
			testutil.AssertEqual(t, s[testutil.Square(t, tt.rookFrom)], chess.Empty)
			testutil.AssertEqual(t, s[testutil.Square(t, "e1")], chess.Empty)
			testutil.AssertEqual(t, e.KingSquare(chess.White), testutil.Square(t, tt.king))
			testutil.AssertFalse(t, e.CastlingRights().White, "castling revokes white's right")
			testutil.AssertTrue(t, e.CastlingRights().Black, "black keeps its right")

			e.UndoMove()
			testutil.AssertEqual(t, e.Position(), pos, "undo restores the castle completely")
		})
	}
}

func TestEngine_CastlingRightsLostForever(t *testing.T) {
	pos := testutil.MustPosition(t, castlingDiagram, chess.White)
	e := NewEngine(WithPosition(pos))

	// The h-rook leaves and comes back; the a-rook never moves.
	play(t, e, "h1", "g1", "a8", "b8", "g1", "h1", "b8", "a8")

	testutil.AssertEqual(t, e.State(), pos.State, "pieces are back home")
	testutil.AssertFalse(t, e.CastlingRights().White)
	testutil.AssertFalse(t, e.CastlingRights().Black)
	for _, m := range testutil.Moves(t, "e1", "g1", "e1", "c1") {
		if e.Move(m) {
			t.Errorf("Move(%v) accepted after the rook had moved", m)
		}
	}
}

func TestEngine_KingReturnsHomeCannotCastle(t *testing.T) {
	pos := testutil.MustPosition(t, castlingDiagram, chess.White)
	e := NewEngine(WithPosition(pos))

	play(t, e, "e1", "f1", "a7", "a6", "f1", "e1", "a6", "a5")

	testutil.AssertEqual(t, e.KingSquare(chess.White), testutil.Square(t, "e1"))
	testutil.AssertFalse(t, e.CastlingRights().White, "a king move forfeits both castles")
	testutil.AssertTrue(t, e.CastlingRights().Black)
	for _, m := range testutil.Moves(t, "e1", "g1", "e1", "c1") {
		if containsMove(e.ValidMoves(), m) {
			t.Errorf("%v offered after the king had moved", m)
		}
		if e.Move(m) {
			t.Errorf("Move(%v) accepted after the king had moved", m)
		}
	}
}

// The move history is consulted even when the rights flag says castling
// is still allowed.
func TestEngine_CastleRefusedByHistory(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		refused []string
		allowed []string
	}{
		{
			name:    "king went away and back",
			moves:   []string{"e1", "f1", "a7", "a6", "f1", "e1", "a6", "a5"},
			refused: []string{"e1", "g1", "e1", "c1"},
		},
		{
			name:    "h-rook went away and back",
			moves:   []string{"h1", "g1", "a7", "a6", "g1", "h1", "a6", "a5"},
			refused: []string{"e1", "g1"},
			allowed: []string{"e1", "c1"},
		},
		{
			name:    "a-rook went away and back",
			moves:   []string{"a1", "b1", "a7", "a6", "b1", "a1", "a6", "a5"},
			refused: []string{"e1", "c1"},
			allowed: []string{"e1", "g1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := NewEngine(WithPosition(testutil.MustPosition(t, castlingDiagram, chess.White)))
			play(t, e, tt.moves...)

			e.pos.Rights.White = true
			e.refresh()

			for _, m := range testutil.Moves(t, tt.refused...) {
				testutil.AssertTrue(t, containsMove(e.ValidMoves(), m), "rights alone offer the castle")
				c, ok := castleFor(m, chess.W(chess.King))
				testutil.AssertTrue(t, ok)
				testutil.AssertTrue(t, e.movedFrom(c.kingFrom, c.rookFrom))
				if e.Move(m) {
					t.Errorf("Move(%v) accepted though the history shows a home square was left", m)
				}
			}
			for _, m := range testutil.Moves(t, tt.allowed...) {
				if !e.Move(m) {
					t.Errorf("Move(%v) rejected though that rook never moved", m)
				}
			}
		})
	}
}

func TestEngine_Promotion(t *testing.T) {
	const (
		whitePawn = `
			.r..k...
			P.......
			........
			........
			........
			........
			........
			....K...`
		blackPawn = `
			....k...
			........
			........
			........
			........
			........
			.......p
			....K.R.`
	)

	tests := []struct {
		name     string
		diagram  string
		turn     chess.Colour
		move     []string
		pawn     chess.Piece
		queen    chess.Piece
		captured chess.Piece
	}{
		{"white push", whitePawn, chess.White, []string{"a7", "a8"}, chess.W(chess.Pawn), chess.W(chess.Queen), chess.Empty},
		{"white capture", whitePawn, chess.White, []string{"a7", "b8"}, chess.W(chess.Pawn), chess.W(chess.Queen), chess.B(chess.Rook)},
		{"black push", blackPawn, chess.Black, []string{"h2", "h1"}, chess.B(chess.Pawn), chess.B(chess.Queen), chess.Empty},
		{"black capture", blackPawn, chess.Black, []string{"h2", "g1"}, chess.B(chess.Pawn), chess.B(chess.Queen), chess.W(chess.Rook)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, tt.diagram, tt.turn)
			e := NewEngine(WithPosition(pos))

			play(t, e, tt.move...)
			to := testutil.Square(t, tt.move[1])
			testutil.AssertEqual(t, e.State()[to], tt.queen, "pawn becomes a queen")
			testutil.AssertEqual(t, e.State()[testutil.Square(t, tt.move[0])], chess.Empty)
			testutil.AssertEqual(t, e.TurnToMove(), tt.turn.Opposite())

			history := e.MoveHistory()
			testutil.AssertEqual(t, history[0].MovedPiece, tt.pawn)
			testutil.AssertEqual(t, history[0].CapturedPiece, tt.captured)

			e.UndoMove()
			testutil.AssertEqual(t, e.Position(), pos, "undo restores the pawn and any captured piece")
		})
	}
}

func TestEngine_PinnedPiece(t *testing.T) {
	pos := testutil.MustPosition(t, `
		k...r...
		........
		........
		........
		........
		........
		....B...
		....K...`, chess.White)
	e := NewEngine(WithPosition(pos))

	bishop := testutil.Square(t, "e2")
	if len(e.GenerateMovesForPiece(bishop)) == 0 {
		t.Fatal("pinned bishop has no pseudo-legal moves")
	}
	for _, m := range e.GenerateMovesForPiece(bishop) {
		if !CheckAfterMove(&pos, m) {
			t.Errorf("CheckAfterMove(%v) = false for pinned bishop", m)
		}
		if e.Move(m) {
			t.Errorf("Move(%v) accepted for pinned bishop", m)
		}
	}
}

func TestEngine_KingCannotApproachKing(t *testing.T) {
	pos := testutil.MustPosition(t, `
		........
		........
		....k...
		........
		....K...
		........
		........
		........`, chess.White)
	e := NewEngine(WithPosition(pos))

	for _, to := range []string{"d5", "e5", "f5"} {
		m := chess.Move{From: testutil.Square(t, "e4"), To: testutil.Square(t, to)}
		if e.Move(m) {
			t.Errorf("Move(%v) accepted next to the enemy king", m)
		}
	}
	testutil.AssertEqual(t, len(e.ValidMoves()), 5)
}

func TestEngine_Checkmate(t *testing.T) {
	e := NewEngine()
	play(t, e, "f2", "f3", "e7", "e5", "g2", "g4", "d8", "h4")

	testutil.AssertTrue(t, e.NoLegalMoves())
	testutil.AssertEqual(t, e.Status(), Checkmate)
	testutil.AssertEqual(t, len(e.ValidMoves()), 0)
	pos := e.Position()
	testutil.AssertTrue(t, IsCheckmate(&pos))
	testutil.AssertFalse(t, IsStalemate(&pos))
}

func TestEngine_Stalemate(t *testing.T) {
	pos := testutil.MustPosition(t, `
		k.......
		..Q.....
		.K......
		........
		........
		........
		........
		........`, chess.Black)
	e := NewEngine(WithPosition(pos))

	testutil.AssertTrue(t, e.NoLegalMoves())
	testutil.AssertEqual(t, e.Status(), Stalemate)
	testutil.AssertEqual(t, Status(&pos), Stalemate)
	testutil.AssertTrue(t, IsStalemate(&pos))
}

func TestEngine_UnknownPieceCode(t *testing.T) {
	pos := testutil.MustPosition(t, `
		....k...
		........
		........
		........
		........
		........
		........
		....K...`, chess.White)
	pos.State[36] = chess.Piece(2)
	e := NewEngine(WithPosition(pos))

	if e.Move(chess.Move{From: 36, To: 28}) {
		t.Error("Move() of unknown piece code = true, want false")
	}
	testutil.AssertEqual(t, e.State(), pos.State)
}
