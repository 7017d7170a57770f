package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/specialistvlad/pwchain/internal/ctxlog"
	"github.com/specialistvlad/pwchain/internal/recipe"
)

// ValidateRecipe performs a strict parity check between a recipe and the
// registered Go strategies. It reports every problem it finds at once.
func (r *Registry) ValidateRecipe(ctx context.Context, rc *recipe.Recipe) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, step := range rc.Steps {
		where := fmt.Sprintf("strategy '%s' (%s)", step.Address(), step.File)

		strategy, ok := r.Lookup(step.Type)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: %s '%s', available: %s", where, ErrUnknownStrategy, step.Type, strings.Join(r.Names(), ", ")))
			continue
		}

		fields, err := recipe.Fields(reflect.TypeOf(strategy.NewInput()))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", where, err))
			continue
		}

		goFields := make(map[string]recipe.Field, len(fields))
		for _, f := range fields {
			goFields[f.Name] = f
		}

		// Presence checks.
		var argNames []string
		for name := range step.Arguments {
			argNames = append(argNames, name)
		}
		sort.Strings(argNames)
		for _, name := range argNames {
			if _, ok := goFields[name]; !ok {
				errs = append(errs, fmt.Sprintf("%s: argument '%s' is not supported", where, name))
			}
		}
		for _, f := range fields {
			if _, ok := step.Arguments[f.Name]; !ok && !f.Optional {
				errs = append(errs, fmt.Sprintf("%s: missing required argument '%s'", where, f.Name))
			}
		}

		// Type checks for values known before evaluation.
		for _, f := range fields {
			expr, ok := step.Arguments[f.Name]
			if !ok {
				continue
			}
			if err := recipe.CheckLiteral(expr, f.Type); err != nil {
				errs = append(errs, fmt.Sprintf("%s, argument '%s': %v", where, f.Name, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidRecipe, strings.Join(errs, "\n- "))
	}

	logger.Debug("Recipe validation passed.", "steps", rc.Len())
	return nil
}
