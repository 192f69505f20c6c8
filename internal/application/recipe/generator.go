package recipe

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/pantry"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Selector picks an index in [0, n). The generator takes it as a seam
// so tests can pin the otherwise random template choice.
type Selector func(n int) int

// Generator produces recipes without any AI provider, from the template
// catalog when a template matches the pantry and by synthesis otherwise.
type Generator struct {
	templates []Template
	selector  Selector
	logger    *zap.Logger
}

// NewGenerator builds a Generator over the built-in catalog with a
// uniform random selector.
func NewGenerator(logger *zap.Logger) *Generator {
	return NewGeneratorWithSelector(logger, rand.Intn)
}

// NewGeneratorWithSelector builds a Generator with a caller-supplied
// selector.
func NewGeneratorWithSelector(logger *zap.Logger, selector Selector) *Generator {
	return &Generator{
		templates: Catalog(),
		selector:  selector,
		logger:    logger.Named("template-generator"),
	}
}

// Generate returns a recipe for the given pantry, requested cuisine and
// serving count. It never fails: when no catalog template fits, it
// synthesizes a simple recipe from the available ingredients.
func (g *Generator) Generate(ingredients []pantry.Ingredient, cuisine recipe.CuisineType, servings int) recipe.Recipe {
	if servings <= 0 {
		servings = 1
	}

	candidates := g.matchingTemplates(ingredients, cuisine)
	if len(candidates) > 0 {
		tpl := candidates[g.selector(len(candidates))]
		g.logger.Debug("selected catalog template",
			zap.String("template_id", tpl.ID),
			zap.Int("candidates", len(candidates)),
		)
		r := tpl.ToRecipe()
		scaled, err := recipe.Scale(r, servings)
		if err != nil {
			// Catalog templates always have positive base servings,
			// so the only failure mode is servings<=0, handled above.
			return r
		}
		return scaled
	}

	g.logger.Debug("no catalog template matched, synthesizing recipe",
		zap.String("cuisine", string(cuisine)),
		zap.Int("ingredients", len(ingredients)),
	)
	return g.synthesize(ingredients, cuisine, servings)
}

// matchingTemplates filters the catalog to templates whose cuisine
// satisfies the request and which share at least one essential
// ingredient with the pantry.
func (g *Generator) matchingTemplates(ingredients []pantry.Ingredient, cuisine recipe.CuisineType) []Template {
	var out []Template
	for _, tpl := range g.templates {
		if !tpl.Cuisine.Matches(cuisine) {
			continue
		}
		if hasEssentialMatch(tpl, ingredients) {
			out = append(out, tpl)
		}
	}
	return out
}

func hasEssentialMatch(tpl Template, ingredients []pantry.Ingredient) bool {
	for _, essential := range tpl.EssentialIngredients() {
		for _, have := range ingredients {
			if ingredientNamesMatch(essential.Name, have.Name) {
				return true
			}
		}
	}
	return false
}

// ingredientNamesMatch compares ingredient names case-insensitively,
// treating either name containing the other as a match so that
// "chicken" finds "chicken breast" and vice versa.
func ingredientNamesMatch(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// synthesizeStepCount is the fixed length of a synthesized recipe's
// instruction list.
const synthesizeStepCount = 8

// synthesizeIngredientCap bounds how many pantry items a synthesized
// recipe includes.
const synthesizeIngredientCap = 8

// synthesize builds a generic skillet recipe around whatever the pantry
// holds. The title leads with the first ingredient so the dish reads as
// built around it.
func (g *Generator) synthesize(ingredients []pantry.Ingredient, cuisine recipe.CuisineType, servings int) recipe.Recipe {
	star := "Pantry"
	if len(ingredients) > 0 {
		star = titleCase(ingredients[0].Name)
	}

	cuisineLabel := titleCase(string(cuisine))
	if cuisine == recipe.CuisineAny || cuisine == "" {
		cuisineLabel = "Home-Style"
	}

	used := ingredients
	if len(used) > synthesizeIngredientCap {
		used = used[:synthesizeIngredientCap]
	}
	recipeIngredients := make([]recipe.Ingredient, 0, len(used))
	for _, ing := range used {
		recipeIngredients = append(recipeIngredients, recipe.Ingredient{
			Name:   ing.Name,
			Amount: 1,
			Unit:   "portion",
		})
	}

	steps := []string{
		"Gather and rinse all ingredients, then prepare a clean workspace.",
		fmt.Sprintf("Cut the %s and any vegetables into even, bite-size pieces.", strings.ToLower(star)),
		"Heat a large skillet over medium heat with a little oil.",
		fmt.Sprintf("Add the %s to the skillet and cook until it starts to color.", strings.ToLower(star)),
		"Add the remaining ingredients, starting with the firmest.",
		"Season with salt and pepper and stir everything together.",
		"Reduce the heat and cook until all ingredients are tender.",
		"Taste, adjust the seasoning, and serve hot.",
	}
	instructions := make([]recipe.Instruction, synthesizeStepCount)
	for i, step := range steps {
		instructions[i] = recipe.Instruction{StepNumber: i + 1, Description: step}
	}

	return recipe.Recipe{
		ID:               uuid.New(),
		Title:            fmt.Sprintf("%s %s Skillet", cuisineLabel, star),
		Description:      fmt.Sprintf("A simple one-pan dish built around %s and what the pantry has on hand.", strings.ToLower(star)),
		Cuisine:          cuisine,
		Servings:         servings,
		PrepTimeMinutes:  15,
		CookTimeMinutes:  25,
		TotalTimeMinutes: 40,
		Difficulty:       recipe.DifficultyEasy,
		Ingredients:      recipeIngredients,
		Instructions:     instructions,
		Tags:             []string{"pantry", "one-pan"},
		Dietary:          recipe.DietaryInfo{Vegetarian: true},
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
