package algorithm

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// SourceFunc returns a fresh random source for one generation run.
type SourceFunc func() *rand.Rand

// NewRand returns a ChaCha8 backed source seeded from the operating system.
func NewRand() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// SeededSource returns a SourceFunc that makes every run reproducible. The
// k-th call returns a PCG source seeded with (seed, k), so consecutive runs
// still get independent sources.
func SeededSource(seed uint64) SourceFunc {
	var calls uint64
	return func() *rand.Rand {
		r := rand.New(rand.NewPCG(seed, calls))
		calls++
		return r
	}
}
