package recipe

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe path does not exist or holds no .hcl files.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrDuplicateStep is returned when two strategy blocks share a type and name.
	ErrDuplicateStep = errors.New("duplicate strategy block")

	// ErrInvalidRecipe is returned when a recipe file cannot be parsed or decoded.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrInvalidTarget is returned when arguments are decoded into something other than a struct pointer.
	ErrInvalidTarget = errors.New("decode target must be a non-nil pointer to a struct")
)
