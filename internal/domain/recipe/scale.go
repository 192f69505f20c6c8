package recipe

import "math"

// Scale returns a new Recipe adjusted to targetServings. Ingredient
// amounts are multiplied by targetServings/r.Servings and rounded to
// two decimal places; per-serving nutrition values are multiplied by
// the same factor and rounded to the nearest whole unit. Instructions,
// tags and all other metadata are copied unchanged.
//
// Repeated scale-then-scale-back is not guaranteed to restore the exact
// original amounts: each operation may lose up to one unit in the last
// rounded place.
func Scale(r Recipe, targetServings int) (Recipe, error) {
	if r.Servings <= 0 {
		return Recipe{}, ErrUnscalableRecipe
	}
	if targetServings <= 0 {
		return Recipe{}, ErrInvalidServings
	}

	factor := float64(targetServings) / float64(r.Servings)

	out := r.Clone()
	out.Servings = targetServings

	for i := range out.Ingredients {
		amount := out.Ingredients[i].Amount
		if amount <= 0 {
			// Unknown or legacy amounts pass through unscaled.
			continue
		}
		out.Ingredients[i].Amount = round2(amount * factor)
	}

	if out.Nutrition != nil {
		n := out.Nutrition
		n.Calories = int(math.Round(float64(n.Calories) * factor))
		n.Protein = math.Round(n.Protein * factor)
		n.Carbs = math.Round(n.Carbs * factor)
		n.Fat = math.Round(n.Fat * factor)
		n.Fiber = math.Round(n.Fiber * factor)
		n.Sugar = math.Round(n.Sugar * factor)
		n.Sodium = math.Round(n.Sodium * factor)
		n.Cholesterol = math.Round(n.Cholesterol * factor)
	}

	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
