package recipe

import (
	"testing"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/pantry"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func firstSelector(n int) int { return 0 }

func newTestGenerator() *Generator {
	return NewGeneratorWithSelector(zap.NewNop(), firstSelector)
}

func TestGenerateMatchesTemplateBySubstring(t *testing.T) {
	g := newTestGenerator()

	// "chicken" should match the template ingredient "chicken breast".
	r := g.Generate([]pantry.Ingredient{
		{Name: "chicken", Category: pantry.CategoryProtein},
	}, recipe.CuisineAmerican, 4)

	assert.Equal(t, "Herb-Crusted Lemon Chicken", r.Title)
	assert.Equal(t, 4, r.Servings)
}

func TestGenerateScalesMatchedTemplate(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate([]pantry.Ingredient{
		{Name: "pasta", Category: pantry.CategoryGrains},
	}, recipe.CuisineItalian, 2)

	require.Equal(t, "Creamy Garlic Herb Pasta", r.Title)
	assert.Equal(t, 2, r.Servings)
	// Base template uses 340g pasta for 4 servings.
	assert.Equal(t, 170.0, r.Ingredients[0].Amount)
	require.NotNil(t, r.Nutrition)
	// Nutrition scales by the same factor, rounded to whole units.
	assert.Equal(t, 243, r.Nutrition.Calories)
}

func TestGenerateCuisineFilter(t *testing.T) {
	g := newTestGenerator()

	// Pasta is an italian template essential; requesting thai must not
	// select it.
	r := g.Generate([]pantry.Ingredient{
		{Name: "pasta", Category: pantry.CategoryGrains},
	}, recipe.CuisineThai, 2)

	assert.NotEqual(t, "Creamy Garlic Herb Pasta", r.Title)
	assert.Equal(t, recipe.CuisineThai, r.Cuisine)
}

func TestGenerateAnyCuisineMatchesAllTemplates(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate([]pantry.Ingredient{
		{Name: "chickpeas", Category: pantry.CategoryPantry},
	}, recipe.CuisineAny, 4)

	// First matching template under the fixed selector.
	assert.Equal(t, "Mediterranean Quinoa Power Bowl", r.Title)
}

func TestGenerateSynthesizesWhenNothingMatches(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate([]pantry.Ingredient{
		{Name: "tomato", Category: pantry.CategoryVegetables},
	}, recipe.CuisineItalian, 4)

	assert.Contains(t, r.Title, "Tomato")
	assert.Contains(t, r.Title, "Italian")
	assert.Equal(t, 4, r.Servings)
	require.Len(t, r.Instructions, 8)
	for i, step := range r.Instructions {
		assert.Equal(t, i+1, step.StepNumber)
		assert.NotEmpty(t, step.Description)
	}
	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, "tomato", r.Ingredients[0].Name)
	assert.Equal(t, "portion", r.Ingredients[0].Unit)
}

func TestSynthesizeWithEmptyPantry(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate(nil, recipe.CuisineAny, 2)

	assert.NotEmpty(t, r.Title)
	assert.Contains(t, r.Title, "Home-Style")
	assert.Len(t, r.Instructions, 8)
	assert.Empty(t, r.Ingredients)
}

func TestSynthesizeCapsIngredients(t *testing.T) {
	g := newTestGenerator()

	// No template carries the fusion cuisine, so any pantry synthesizes.
	pantryItems := testutils.NewIngredientFactory(42).Pantry(12)

	r := g.Generate(pantryItems, recipe.CuisineFusion, 2)
	assert.Len(t, r.Ingredients, 8)
}

func TestGenerateNormalizesServings(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate(nil, recipe.CuisineAny, 0)
	assert.Equal(t, 1, r.Servings)
}

func TestIngredientNamesMatch(t *testing.T) {
	assert.True(t, ingredientNamesMatch("chicken", "Chicken Breast"))
	assert.True(t, ingredientNamesMatch("chicken breast", "chicken"))
	assert.False(t, ingredientNamesMatch("chicken", "beef"))
	assert.False(t, ingredientNamesMatch("", "beef"))
}

func TestCatalogReturnsCopies(t *testing.T) {
	first := Catalog()
	first[0].Title = "mutated"
	first[0].Ingredients[0].Amount = -1
	first[0].Instructions[0] = "mutated"
	first[0].Tags[0] = "mutated"
	first[0].Dietary.Allergens[0] = "mutated"
	first[0].Nutrition.Calories = -999

	second := Catalog()
	assert.NotEqual(t, "mutated", second[0].Title)
	assert.NotEqual(t, -1.0, second[0].Ingredients[0].Amount)
	assert.NotEqual(t, "mutated", second[0].Instructions[0])
	assert.NotEqual(t, "mutated", second[0].Tags[0])
	assert.NotEqual(t, "mutated", second[0].Dietary.Allergens[0])
	assert.NotEqual(t, -999, second[0].Nutrition.Calories)
}

func TestCatalogMutationDoesNotAffectGeneration(t *testing.T) {
	Catalog()[0].Nutrition.Calories = -999

	g := newTestGenerator()
	r := g.Generate([]pantry.Ingredient{
		{Name: "pasta", Category: pantry.CategoryGrains},
	}, recipe.CuisineItalian, 4)

	require.Equal(t, "Creamy Garlic Herb Pasta", r.Title)
	require.NotNil(t, r.Nutrition)
	assert.Equal(t, 485, r.Nutrition.Calories)
}

func TestTemplateToRecipe(t *testing.T) {
	tpl := Catalog()[0]
	r := tpl.ToRecipe()

	assert.NotEqual(t, r.ID, tpl.ToRecipe().ID)
	assert.Equal(t, tpl.BaseServings, r.Servings)
	assert.Equal(t, tpl.PrepTimeMinutes+tpl.CookTimeMinutes, r.TotalTimeMinutes)
	require.Len(t, r.Instructions, len(tpl.Instructions))
	assert.Equal(t, 1, r.Instructions[0].StepNumber)
}
