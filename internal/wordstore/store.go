package wordstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Store gives read access to named word lists.
type Store interface {
	// Words returns the words of list. Implementations return an error
	// matching ErrListNotFound for unknown lists.
	Words(ctx context.Context, list string) ([]string, error)

	// Lists returns the names of all lists, sorted.
	Lists(ctx context.Context) ([]string, error)
}

// ValidateName checks that name can be used as a list name.
func ValidateName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidListName, name)
	}
	return nil
}

// chain queries stores in order.
type chain []Store

// Chain returns a Store that answers Words from the first store holding the
// list and Lists with the sorted union of all stores.
func Chain(stores ...Store) Store {
	return chain(stores)
}

func (c chain) Words(ctx context.Context, list string) ([]string, error) {
	for _, s := range c {
		words, err := s.Words(ctx, list)
		if errors.Is(err, ErrListNotFound) {
			continue
		}
		return words, err
	}
	return nil, fmt.Errorf("%w: %q", ErrListNotFound, list)
}

func (c chain) Lists(ctx context.Context) ([]string, error) {
	var all []string
	for _, s := range c {
		names, err := s.Lists(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, names...)
	}
	slices.Sort(all)
	return slices.Compact(all), nil
}
