package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/pwchain/internal/algorithm"
)

// RegisteredStrategy holds the compiled Go parts of a strategy type.
type RegisteredStrategy struct {
	Description string
	// NewInput returns a pointer to a fresh input struct pre-filled with the
	// defaults of optional arguments.
	NewInput func() any
	// Build turns a decoded input into a generator. Errors are configuration
	// errors; the returned generator itself never fails.
	Build func(ctx context.Context, deps *Deps, input any) (algorithm.Generator, error)
}

// NewStrategy builds a RegisteredStrategy from typed callbacks.
func NewStrategy[T any](
	description string,
	defaults func() *T,
	build func(ctx context.Context, deps *Deps, input *T) (algorithm.Generator, error),
) *RegisteredStrategy {
	return &RegisteredStrategy{
		Description: description,
		NewInput:    func() any { return defaults() },
		Build: func(ctx context.Context, deps *Deps, input any) (algorithm.Generator, error) {
			typed, ok := input.(*T)
			if !ok {
				return nil, fmt.Errorf("unexpected input type %T", input)
			}
			return build(ctx, deps, typed)
		},
	}
}

// RegisterStrategy registers a strategy type under name.
func (r *Registry) RegisterStrategy(name string, strategy *RegisteredStrategy) {
	if _, exists := r.strategies[name]; exists {
		panic(fmt.Sprintf("strategy with name '%s' already registered", name))
	}
	if strategy == nil || strategy.NewInput == nil || strategy.Build == nil {
		panic(fmt.Sprintf("strategy '%s' must provide NewInput and Build", name))
	}
	slog.Debug("Registering strategy.", "name", name)
	r.strategies[name] = strategy
}
