// Package shuffle provides the "shuffle" strategy, which randomly permutes
// the characters generated so far.
package shuffle

import (
	"context"
	"math/rand/v2"

	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input is empty because the strategy takes no arguments.
type Input struct{}

// Generator shuffles the runes of its input.
type Generator struct{}

// Generate implements algorithm.Generator.
func (Generator) Generate(_ int, current string, rnd *rand.Rand) string {
	runes := []rune(current)
	rnd.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy("shuffle", registry.NewStrategy(
		"Shuffles the characters generated so far.",
		func() *Input { return &Input{} },
		func(_ context.Context, _ *registry.Deps, _ *Input) (algorithm.Generator, error) {
			return Generator{}, nil
		},
	))
}
