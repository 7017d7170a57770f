// Package separator provides the "separator" strategy, which puts a fixed
// separator between the segments produced by other strategies.
package separator

import (
	"context"
	"math/rand/v2"

	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the separator strategy.
type Input struct {
	Value string `pw:"value,optional"`
}

// Generator appends Value unless it would lead the password.
type Generator struct {
	Value string
}

// Generate implements algorithm.Generator. Nothing is added at sequence 0 or
// to an empty value.
func (g Generator) Generate(sequence int, current string, _ *rand.Rand) string {
	if sequence == 0 || current == "" {
		return current
	}
	return current + g.Value
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy("separator", registry.NewStrategy(
		"Appends a separator after the segments generated so far.",
		func() *Input { return &Input{Value: "-"} },
		func(_ context.Context, _ *registry.Deps, in *Input) (algorithm.Generator, error) {
			return Generator{Value: in.Value}, nil
		},
	))
}
