package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/ctxlog"
	"github.com/specialistvlad/pwchain/internal/recipe"
)

// Assemble builds the pipeline described by rc. Argument expressions are
// evaluated with the `length` variable set to averageLength. Generators are
// appended in recipe order.
func (r *Registry) Assemble(ctx context.Context, rc *recipe.Recipe, averageLength uint, opts ...algorithm.Option) (*algorithm.Algorithm, error) {
	logger := ctxlog.FromContext(ctx)
	converter := recipe.NewConverter()
	evalCtx := recipe.EvalContext(averageLength)

	alg := algorithm.New(opts...)
	for _, step := range rc.Steps {
		strategy, ok := r.Lookup(step.Type)
		if !ok {
			return nil, fmt.Errorf("strategy '%s': %w '%s'", step.Address(), ErrUnknownStrategy, step.Type)
		}

		input := strategy.NewInput()
		if err := converter.DecodeArguments(ctx, input, step.Arguments, evalCtx); err != nil {
			return nil, fmt.Errorf("strategy '%s' (%s): %w", step.Address(), step.File, err)
		}

		gen, err := strategy.Build(ctx, r.deps, input)
		if err != nil {
			return nil, fmt.Errorf("strategy '%s' (%s): %w", step.Address(), step.File, err)
		}
		if gen == nil {
			return nil, fmt.Errorf("strategy '%s' (%s): builder returned no generator", step.Address(), step.File)
		}

		alg.AddGenerator(gen)
		logger.Debug("Strategy added to pipeline.", "strategy", step.Address(), "sequence", alg.Len()-1)
	}

	logger.Debug("Pipeline assembled.", "strategies", alg.Len(), "average_length", averageLength)
	return alg, nil
}
