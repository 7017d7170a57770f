package registry

import (
	"maps"
	"slices"

	"github.com/specialistvlad/pwchain/internal/wordstore"
)

// Module is the interface that all strategy modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Deps holds the shared dependencies handed to strategy builders.
type Deps struct {
	Words wordstore.Store
}

// Registry holds the registered strategies of a single application instance.
type Registry struct {
	strategies map[string]*RegisteredStrategy
	deps       *Deps
}

// New creates an empty Registry. A nil deps is replaced by Deps using the
// built-in word lists.
func New(deps *Deps) *Registry {
	if deps == nil {
		deps = &Deps{}
	}
	if deps.Words == nil {
		deps.Words = wordstore.Default()
	}
	return &Registry{
		strategies: make(map[string]*RegisteredStrategy),
		deps:       deps,
	}
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (*RegisteredStrategy, bool) {
	s, ok := r.strategies[name]
	return s, ok
}

// Names returns the sorted names of all registered strategies.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.strategies))
}

// Deps returns the dependencies handed to builders.
func (r *Registry) Deps() *Deps {
	return r.deps
}
