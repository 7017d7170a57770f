package recipe

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Recipe is the ordered list of strategies making up a pipeline.
type Recipe struct {
	Steps []*Step
}

// Step is one `strategy` block of a recipe.
type Step struct {
	Type      string
	Name      string
	Arguments map[string]hcl.Expression
	File      string
}

// Address returns the "type.name" identifier of the step.
func (s *Step) Address() string {
	return fmt.Sprintf("%s.%s", s.Type, s.Name)
}

// Len returns the number of steps.
func (r *Recipe) Len() int {
	return len(r.Steps)
}

// append adds steps and rejects a type and name pair seen before.
func (r *Recipe) append(steps ...*Step) error {
	for _, s := range steps {
		for _, existing := range r.Steps {
			if existing.Type == s.Type && existing.Name == s.Name {
				return fmt.Errorf("%w %q in %s, first declared in %s", ErrDuplicateStep, s.Address(), s.File, existing.File)
			}
		}
		r.Steps = append(r.Steps, s)
	}
	return nil
}
