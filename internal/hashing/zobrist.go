package hashing

import (
	"math/rand"

	"github.com/donessie94/terminalChessAI/internal/chess"
)

// zobristSeed fixes the key tables so hashes are reproducible across runs.
const zobristSeed = 0x5EED

var (
	// pieceKeys is indexed by pieceIndex(piece) and square.
	pieceKeys     [12][chess.NumSquares]uint64
	blackToMove   uint64
	castlingKeys  [2]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = rng.Uint64()
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// pieceIndex maps a coloured piece onto 0-11, or -1 for anything else.
func pieceIndex(p chess.Piece) int {
	var base int
	switch p.Kind() {
	case chess.Pawn:
		base = 0
	case chess.Knight:
		base = 1
	case chess.Rook:
		base = 2
	case chess.Bishop:
		base = 3
	case chess.Queen:
		base = 4
	case chess.King:
		base = 5
	default:
		return -1
	}
	if p.Colour() == chess.Black {
		base += 6
	}
	return base
}

// Key computes the Zobrist hash of a position. Two positions share a key when
// they have the same pieces, side to move, castling rights and en passant
// opportunity.
func Key(pos *chess.Position) uint64 {
	var key uint64
	s := &pos.State
	for sq := 0; sq < chess.NumSquares; sq++ {
		if idx := pieceIndex(s[sq]); idx >= 0 {
			key ^= pieceKeys[idx][sq]
		}
	}
	if pos.Turn() == chess.Black {
		key ^= blackToMove
	}
	if pos.Rights.White {
		key ^= castlingKeys[0]
	}
	if pos.Rights.Black {
		key ^= castlingKeys[1]
	}
	if pos.LastPiece.Kind() == chess.Pawn {
		last := pos.Last
		if d := chess.Row(last.To) - chess.Row(last.From); d == 2 || d == -2 {
			key ^= enPassantKeys[chess.Col(last.To)]
		}
	}
	return key
}
