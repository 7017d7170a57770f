package algorithm

import "math/rand/v2"

// Generator produces the next version of a password being built.
//
// sequence is the zero-based position of the Generator in the current run,
// current is the value accumulated by all previous Generators and rnd is the
// random source shared by the whole run. Implementations must not fail: a
// Generator that cannot do its job degrades to a fallback value instead.
type Generator interface {
	Generate(sequence int, current string, rnd *rand.Rand) string
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(sequence int, current string, rnd *rand.Rand) string

// Generate calls f(sequence, current, rnd).
func (f GeneratorFunc) Generate(sequence int, current string, rnd *rand.Rand) string {
	return f(sequence, current, rnd)
}
