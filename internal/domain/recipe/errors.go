package recipe

import "errors"

// Domain errors for recipe operations

var (
	// ErrInvalidServings is returned when a scale target is not a
	// positive serving count.
	ErrInvalidServings = errors.New("target servings must be greater than 0")

	// ErrUnscalableRecipe is returned when the source recipe carries a
	// non-positive serving count, which makes the scale factor
	// undefined.
	ErrUnscalableRecipe = errors.New("recipe servings must be greater than 0 to scale")
)
