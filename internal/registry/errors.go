package registry

import "errors"

var (
	// ErrUnknownStrategy is returned when a recipe names a strategy type that is not registered.
	ErrUnknownStrategy = errors.New("unknown strategy type")

	// ErrInvalidRecipe is returned when a recipe does not match the registered strategies.
	ErrInvalidRecipe = errors.New("recipe validation failed")
)
