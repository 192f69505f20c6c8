package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/pantry"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestBuildPromptMinimalRequest(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Cuisine:  recipe.CuisineItalian,
		Servings: 2,
		Now:      fixedNow(),
	})

	require.NotEmpty(t, prompt)

	sections := strings.Split(prompt, "\n\n")
	var requirements string
	for _, s := range sections {
		if strings.HasPrefix(s, "REQUIREMENTS:") {
			requirements = s
		}
	}
	require.NotEmpty(t, requirements, "requirements section must always be present")

	lines := strings.Split(requirements, "\n")
	require.Len(t, lines, 3, "empty preferences must contribute only cuisine and servings")
	assert.Equal(t, "- Cuisine: italian", lines[1])
	assert.Equal(t, "- Servings: 2", lines[2])

	assert.NotContains(t, prompt, "HARD CONSTRAINTS:")
	assert.NotContains(t, prompt, "COOK PROFILE:")
	assert.NotContains(t, prompt, "RECOMMENDED DISH CONTEXT:")
	assert.Contains(t, prompt, "OUTPUT FORMAT:")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	factory := testutils.NewIngredientFactory(7)
	req := PromptRequest{
		Ingredients: append(factory.Pantry(5), factory.ExpiringIngredient(fixedNow())),
		Cuisine:     recipe.CuisineChinese,
		Servings:    4,
		Preferences: &GenerationPreferences{
			Spice:      SpiceHot,
			HealthGoal: HealthGoalWeightLoss,
		},
		Now: fixedNow(),
	}

	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))
}

func TestBuildPromptGroupsIngredientsByCategory(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Ingredients: []pantry.Ingredient{
			{Name: "rice", Category: pantry.CategoryGrains, Quantity: 2, Unit: "cups"},
			{Name: "chicken thigh", Category: pantry.CategoryProtein},
			{Name: "mystery sauce", Category: "condiment"},
			{Name: "spinach", Category: pantry.CategoryVegetables},
		},
		Cuisine:  recipe.CuisineAny,
		Servings: 2,
		Now:      fixedNow(),
	})

	assert.Contains(t, prompt, "Proteins:\n- chicken thigh")
	assert.Contains(t, prompt, "Vegetables:\n- spinach")
	assert.Contains(t, prompt, "Grains:\n- rice (2 cups)")
	// Unknown categories land in Other rather than being dropped.
	assert.Contains(t, prompt, "Other:\n- mystery sauce")

	// Categories render in canonical order.
	proteins := strings.Index(prompt, "Proteins:")
	vegetables := strings.Index(prompt, "Vegetables:")
	grains := strings.Index(prompt, "Grains:")
	other := strings.Index(prompt, "Other:")
	assert.Less(t, proteins, vegetables)
	assert.Less(t, vegetables, grains)
	assert.Less(t, grains, other)
}

func TestBuildPromptFlagsExpiringIngredients(t *testing.T) {
	now := fixedNow()
	soon := now.Add(48 * time.Hour)
	later := now.Add(10 * 24 * time.Hour)

	prompt := BuildPrompt(PromptRequest{
		Ingredients: []pantry.Ingredient{
			{Name: "salmon", Category: pantry.CategoryProtein, ExpiresAt: &soon},
			{Name: "potatoes", Category: pantry.CategoryVegetables, ExpiresAt: &later},
		},
		Servings: 2,
		Now:      now,
	})

	assert.Contains(t, prompt, "- salmon [expires within 3 days - use first]")
	assert.Contains(t, prompt, "- potatoes")
	assert.NotContains(t, prompt, "- potatoes [expires")
}

func TestBuildPromptWithoutIngredients(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Cuisine:  recipe.CuisineMexican,
		Servings: 3,
		Now:      fixedNow(),
	})

	assert.Contains(t, prompt, "No pantry ingredients were provided.")
}

func TestBuildPromptRecommendedIngredientBecomesFocus(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Ingredients: []pantry.Ingredient{
			{Name: "rice", Category: pantry.CategoryGrains},
			{Name: "lamb shoulder", Category: pantry.CategoryProtein, Recommended: true},
		},
		Servings: 2,
		Now:      fixedNow(),
	})

	assert.Contains(t, prompt, "Priority: build the dish around lamb shoulder as the primary focus.")
	assert.NotContains(t, prompt, "use ingredients that expire soon first")
}

func TestBuildPromptHeartHealthTargets(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Cuisine:  recipe.CuisineMediterranean,
		Servings: 2,
		Preferences: &GenerationPreferences{
			HealthGoal: HealthGoalHeartHealth,
		},
		Now: fixedNow(),
	})

	assert.Contains(t, prompt, "- Health goal: Heart Health")
	assert.Contains(t, prompt, "Per-serving targets: under 450 kcal, at least 25g protein, at least 10g fiber, under 500mg sodium")
	assert.Contains(t, prompt, "Limit sodium and saturated fat; favor omega-3 rich fish, olive oil, leafy greens and whole grains.")
}

func TestBuildPromptUnknownHealthGoalIgnored(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Servings: 2,
		Preferences: &GenerationPreferences{
			HealthGoal: "Live Forever",
		},
		Now: fixedNow(),
	})

	assert.NotContains(t, prompt, "Health goal")
	assert.NotContains(t, prompt, "Per-serving targets")
}

func TestBuildPromptHardConstraints(t *testing.T) {
	t.Run("time cap and mild spice", func(t *testing.T) {
		prompt := BuildPrompt(PromptRequest{
			Servings: 2,
			Preferences: &GenerationPreferences{
				MaxTotalTimeMinutes: 30,
				Spice:               SpiceMild,
			},
			Now: fixedNow(),
		})

		assert.Contains(t, prompt, "HARD CONSTRAINTS:")
		assert.Contains(t, prompt, "- Total time must not exceed 30 minutes.")
		assert.Contains(t, prompt, "- Keep the dish strictly mild: no hot peppers, chili or other sources of heat.")
	})

	t.Run("medium spice does not trigger", func(t *testing.T) {
		prompt := BuildPrompt(PromptRequest{
			Servings: 2,
			Preferences: &GenerationPreferences{
				Spice: SpiceMedium,
			},
			Now: fixedNow(),
		})

		assert.NotContains(t, prompt, "HARD CONSTRAINTS:")
	})

	t.Run("extra hot triggers", func(t *testing.T) {
		prompt := BuildPrompt(PromptRequest{
			Servings: 2,
			Preferences: &GenerationPreferences{
				Spice: SpiceExtraHot,
			},
			Now: fixedNow(),
		})

		assert.Contains(t, prompt, "- The dish must be genuinely spicy; do not tone the heat down.")
	})
}

func TestBuildPromptExperienceBlocks(t *testing.T) {
	beginner := BuildPrompt(PromptRequest{
		Servings:    2,
		Preferences: &GenerationPreferences{Experience: ExperienceBeginner},
		Now:         fixedNow(),
	})
	assert.Contains(t, beginner, "COOK EXPERIENCE: beginner")

	// Unknown levels fall back to the intermediate block.
	unknown := BuildPrompt(PromptRequest{
		Servings:    2,
		Preferences: &GenerationPreferences{Experience: "grandmaster"},
		Now:         fixedNow(),
	})
	assert.Contains(t, unknown, "COOK EXPERIENCE: intermediate")
}

func TestBuildPromptSuggestedDish(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Servings:      2,
		SuggestedDish: "Shakshuka",
		Now:           fixedNow(),
	})

	assert.True(t, strings.HasPrefix(prompt, "RECOMMENDED DISH CONTEXT:"))
	assert.Contains(t, prompt, "Produce exactly this dish: Shakshuka.")
}

func TestBuildPromptHistorySection(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Servings: 2,
		History: &UserHistory{
			FavoriteTitles:      []string{"Pad Thai"},
			DislikedIngredients: []string{"cilantro"},
			CookingFrequency:    "daily",
			SkillRating:         7,
		},
		Now: fixedNow(),
	})

	assert.Contains(t, prompt, "COOK PROFILE:")
	assert.Contains(t, prompt, "- Past favorites: Pad Thai")
	assert.Contains(t, prompt, "- Disliked ingredients, avoid them: cilantro")
	assert.Contains(t, prompt, "- Self-rated skill: 7/10")

	empty := BuildPrompt(PromptRequest{
		Servings: 2,
		History:  &UserHistory{},
		Now:      fixedNow(),
	})
	assert.NotContains(t, empty, "COOK PROFILE:")
}

func TestBuildPromptSectionOrder(t *testing.T) {
	prompt := BuildPrompt(PromptRequest{
		Ingredients: []pantry.Ingredient{
			{Name: "eggs", Category: pantry.CategoryProtein},
		},
		Cuisine:  recipe.CuisineFrench,
		Servings: 2,
		Preferences: &GenerationPreferences{
			MaxTotalTimeMinutes: 20,
		},
		SuggestedDish: "Omelette",
		Now:           fixedNow(),
	})

	order := []string{
		"RECOMMENDED DISH CONTEXT:",
		"AVAILABLE INGREDIENTS:",
		"REQUIREMENTS:",
		"COOK EXPERIENCE:",
		"HARD CONSTRAINTS:",
		"OUTPUT FORMAT:",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(prompt, marker)
		require.GreaterOrEqual(t, idx, 0, marker)
		assert.Greater(t, idx, last, "section %s out of order", marker)
		last = idx
	}
}
