package hashing

import (
	"testing"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/testutil"
)

var benchPositions = map[string]string{
	"Initial": `
		rnbqkbnr
		pppppppp
		........
		........
		........
		........
		PPPPPPPP
		RNBQKBNR`,
	"Endgame": `
		........
		.....k..
		........
		........
		........
		........
		.....K..
		....R...`,
}

func BenchmarkKey(b *testing.B) {
	for name, diagram := range benchPositions {
		b.Run(name, func(b *testing.B) {
			pos := testutil.MustPosition(b, diagram, chess.White)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Key(&pos)
			}
		})
	}
}

func BenchmarkEvalCache_StoreLookup(b *testing.B) {
	cache := NewEvalCache(0)
	for i := 0; i < b.N; i++ {
		key := uint64(i % 4096)
		if _, ok := cache.Lookup(key); !ok {
			cache.Store(key, float64(i))
		}
	}
}
