// Package recipe contains the core domain model for generated recipes.
// Recipes are value objects: they are built by the generation paths,
// handed to the caller, and never mutated in place — serving-count
// changes produce a whole new Recipe via Scale.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a complete, ready-to-render recipe produced by either the
// model-backed generation path or the template fallback.
type Recipe struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Cuisine     CuisineType `json:"cuisine"`

	Servings         int             `json:"servings"`
	PrepTimeMinutes  int             `json:"prep_time_minutes"`
	CookTimeMinutes  int             `json:"cook_time_minutes"`
	TotalTimeMinutes int             `json:"total_time_minutes"`
	Difficulty       DifficultyLevel `json:"difficulty"`

	Ingredients  []Ingredient   `json:"ingredients"`
	Instructions []Instruction  `json:"instructions"`
	Tags         []string       `json:"tags,omitempty"`
	Dietary      DietaryInfo    `json:"dietary"`
	Nutrition    *NutritionInfo `json:"nutrition,omitempty"`
}

// Ingredient is one line of a recipe's ingredient list. Amount keeps
// fractional precision; Unit is free-form ("g", "cup", "portion").
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Instruction is one ordered cooking step. Duration and Temperature
// are optional.
type Instruction struct {
	StepNumber  int           `json:"step_number"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration,omitempty"`
	Temperature *Temperature  `json:"temperature,omitempty"`
}

// Temperature represents a cooking temperature.
type Temperature struct {
	Value float64         `json:"value"`
	Unit  TemperatureUnit `json:"unit"`
}

// ToCelsius converts the temperature to Celsius.
func (t Temperature) ToCelsius() float64 {
	switch t.Unit {
	case TemperatureUnitFahrenheit:
		return (t.Value - 32) * 5 / 9
	default:
		return t.Value
	}
}

// DietaryInfo carries the dietary classification of a recipe.
type DietaryInfo struct {
	Vegetarian bool     `json:"vegetarian"`
	Vegan      bool     `json:"vegan"`
	GlutenFree bool     `json:"gluten_free"`
	DairyFree  bool     `json:"dairy_free"`
	Allergens  []string `json:"allergens,omitempty"`
}

// NutritionInfo holds per-serving nutrition values. All fields are
// whole-unit display values: calories as kcal, macros in grams, sodium
// and cholesterol in milligrams.
type NutritionInfo struct {
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein_g"`
	Carbs       float64 `json:"carbs_g"`
	Fat         float64 `json:"fat_g"`
	Fiber       float64 `json:"fiber_g"`
	Sugar       float64 `json:"sugar_g"`
	Sodium      float64 `json:"sodium_mg"`
	Cholesterol float64 `json:"cholesterol_mg"`
}

// TemperatureUnit represents temperature units.
type TemperatureUnit string

const (
	TemperatureUnitCelsius    TemperatureUnit = "C"
	TemperatureUnitFahrenheit TemperatureUnit = "F"
)

// CuisineType represents a cuisine. CuisineAny is the wildcard used by
// generation requests that do not constrain the cuisine.
type CuisineType string

const (
	CuisineAny           CuisineType = "any"
	CuisineItalian       CuisineType = "italian"
	CuisineFrench        CuisineType = "french"
	CuisineChinese       CuisineType = "chinese"
	CuisineJapanese      CuisineType = "japanese"
	CuisineIndian        CuisineType = "indian"
	CuisineMexican       CuisineType = "mexican"
	CuisineAmerican      CuisineType = "american"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineThai          CuisineType = "thai"
	CuisineFusion        CuisineType = "fusion"
	CuisineOther         CuisineType = "other"
)

// Matches reports whether the cuisine satisfies a requested cuisine,
// treating CuisineAny (and the empty string) as matching everything.
func (c CuisineType) Matches(requested CuisineType) bool {
	if requested == CuisineAny || requested == "" {
		return true
	}
	return c == requested
}

// DifficultyLevel represents recipe difficulty.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
	DifficultyExpert DifficultyLevel = "expert"
)

// Clone returns a deep copy of the recipe, so callers can modify the
// result without aliasing the original's slices.
func (r Recipe) Clone() Recipe {
	out := r

	out.Ingredients = make([]Ingredient, len(r.Ingredients))
	copy(out.Ingredients, r.Ingredients)

	out.Instructions = make([]Instruction, len(r.Instructions))
	copy(out.Instructions, r.Instructions)
	for i, ins := range r.Instructions {
		if ins.Temperature != nil {
			t := *ins.Temperature
			out.Instructions[i].Temperature = &t
		}
	}

	out.Tags = make([]string, len(r.Tags))
	copy(out.Tags, r.Tags)

	out.Dietary.Allergens = make([]string, len(r.Dietary.Allergens))
	copy(out.Dietary.Allergens, r.Dietary.Allergens)

	if r.Nutrition != nil {
		n := *r.Nutrition
		out.Nutrition = &n
	}

	return out
}
