package wordstore

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

// MemoryStore serves word lists from memory. It is read-only once created.
type MemoryStore struct {
	lists map[string][]string
}

// NewMemoryStore creates a store holding copies of lists.
func NewMemoryStore(lists map[string][]string) *MemoryStore {
	m := &MemoryStore{lists: make(map[string][]string, len(lists))}
	for name, words := range lists {
		m.lists[name] = slices.Clone(words)
	}
	return m
}

// Default returns a store with the built-in dictionaries.
func Default() *MemoryStore {
	return NewMemoryStore(defaultWords)
}

// Words implements Store. The returned slice is a copy.
func (m *MemoryStore) Words(_ context.Context, list string) ([]string, error) {
	words, ok := m.lists[list]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, list)
	}
	return slices.Clone(words), nil
}

// Lists implements Store.
func (m *MemoryStore) Lists(_ context.Context) ([]string, error) {
	return slices.Sorted(maps.Keys(m.lists)), nil
}
