// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/pantry"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// IngredientFactory provides methods to create test pantry ingredients
type IngredientFactory struct {
	faker *gofakeit.Faker
}

// NewIngredientFactory creates a new ingredient factory with seeded faker
func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient creates a pantry ingredient with random but plausible data
func (f *IngredientFactory) Ingredient() pantry.Ingredient {
	categories := pantry.Categories()
	return pantry.Ingredient{
		Name:     f.faker.Vegetable(),
		Category: categories[f.faker.IntRange(0, len(categories)-1)],
		Quantity: float64(f.faker.IntRange(1, 10)),
		Unit:     f.faker.RandomString([]string{"g", "kg", "cup", "piece", "tbsp"}),
		Price:    f.faker.Float64Range(0.5, 20),
	}
}

// ExpiringIngredient creates an ingredient that expires within the
// urgency window relative to now
func (f *IngredientFactory) ExpiringIngredient(now time.Time) pantry.Ingredient {
	ing := f.Ingredient()
	expiry := now.Add(24 * time.Hour)
	ing.ExpiresAt = &expiry
	return ing
}

// Pantry creates n random ingredients
func (f *IngredientFactory) Pantry(n int) []pantry.Ingredient {
	out := make([]pantry.Ingredient, n)
	for i := range out {
		out[i] = f.Ingredient()
	}
	return out
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	recipe recipe.Recipe
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		recipe: recipe.Recipe{
			ID:               uuid.New(),
			Title:            faker.Sentence(3),
			Description:      faker.Sentence(8),
			Cuisine:          recipe.CuisineItalian,
			Servings:         4,
			PrepTimeMinutes:  15,
			CookTimeMinutes:  30,
			TotalTimeMinutes: 45,
			Difficulty:       recipe.DifficultyMedium,
			Ingredients: []recipe.Ingredient{
				{Name: "pasta", Amount: 400, Unit: "g"},
				{Name: "olive oil", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []recipe.Instruction{
				{StepNumber: 1, Description: "Boil the pasta."},
				{StepNumber: 2, Description: "Toss with oil and serve."},
			},
			Tags: []string{"test", "recipe"},
		},
	}
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.recipe.Title = title
	return rb
}

// WithServings sets the serving count
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.recipe.Servings = servings
	return rb
}

// WithCuisine sets the cuisine
func (rb *RecipeBuilder) WithCuisine(cuisine recipe.CuisineType) *RecipeBuilder {
	rb.recipe.Cuisine = cuisine
	return rb
}

// WithIngredients replaces the ingredient list
func (rb *RecipeBuilder) WithIngredients(ingredients ...recipe.Ingredient) *RecipeBuilder {
	rb.recipe.Ingredients = ingredients
	return rb
}

// WithNutrition sets the per-serving nutrition values
func (rb *RecipeBuilder) WithNutrition(n recipe.NutritionInfo) *RecipeBuilder {
	rb.recipe.Nutrition = &n
	return rb
}

// Build returns the constructed recipe
func (rb *RecipeBuilder) Build() recipe.Recipe {
	return rb.recipe
}
