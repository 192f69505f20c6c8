// Package ai provides the application layer for AI recipe generation:
// the prompt encoder that renders a generation request into a model
// specification, and the service that drives the provider chain.
package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/pantry"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
)

// SpiceLevel describes the requested heat of the dish.
type SpiceLevel string

const (
	SpiceMild     SpiceLevel = "mild"
	SpiceMedium   SpiceLevel = "medium"
	SpiceHot      SpiceLevel = "hot"
	SpiceExtraHot SpiceLevel = "extra-hot"
)

// GenerationPreferences is the optional constraint set attached to a
// generation request. The zero value means "no constraints"; every
// populated field contributes exactly one requirement clause.
type GenerationPreferences struct {
	MaxTotalTimeMinutes int                    `json:"max_total_time_minutes,omitempty"`
	Difficulty          recipe.DifficultyLevel `json:"difficulty,omitempty"`
	Spice               SpiceLevel             `json:"spice,omitempty"`
	Dietary             []string               `json:"dietary,omitempty"`
	Allergens           []string               `json:"allergens,omitempty"`
	NutritionGoal       string                 `json:"nutrition_goal,omitempty"`
	HealthGoal          HealthGoal             `json:"health_goal,omitempty"`
	Experience          ExperienceLevel        `json:"experience,omitempty"`
	FamilyMode          bool                   `json:"family_mode,omitempty"`
	PantryOnly          bool                   `json:"pantry_only,omitempty"`
}

// UserHistory summarizes the cook's past behavior for prompt
// personalization. An empty history contributes nothing.
type UserHistory struct {
	FavoriteTitles      []string `json:"favorite_titles,omitempty"`
	DislikedIngredients []string `json:"disliked_ingredients,omitempty"`
	CookingFrequency    string   `json:"cooking_frequency,omitempty"`
	SkillRating         int      `json:"skill_rating,omitempty"` // 1-10 self assessment
}

func (h UserHistory) empty() bool {
	return len(h.FavoriteTitles) == 0 &&
		len(h.DislikedIngredients) == 0 &&
		h.CookingFrequency == "" &&
		h.SkillRating == 0
}

// PromptRequest is the full input to BuildPrompt.
type PromptRequest struct {
	Ingredients []pantry.Ingredient
	Cuisine     recipe.CuisineType
	Servings    int
	Preferences *GenerationPreferences
	History     *UserHistory

	// SuggestedDish names the exact dish to produce when the request
	// originates from an external recommendation.
	SuggestedDish string

	// Now anchors expiry-urgency checks. The zero value falls back to
	// the wall clock; tests inject a fixed time for determinism.
	Now time.Time
}

// BuildPrompt renders the request into the model specification string.
// It is a pure function of its input: sections are rendered
// independently, empty ones are dropped, and the survivors are joined
// with blank lines in a fixed order. It never fails; absent or
// malformed optional fields simply contribute nothing.
func BuildPrompt(req PromptRequest) string {
	if req.Now.IsZero() {
		req.Now = time.Now()
	}
	prefs := req.Preferences
	if prefs == nil {
		prefs = &GenerationPreferences{}
	}

	sections := []string{
		suggestionBanner(req.SuggestedDish),
		ingredientSection(req.Ingredients, req.Now),
		requirementsSection(req.Cuisine, req.Servings, prefs),
		experienceBlock(prefs.Experience),
		historySection(req.History),
		hardConstraintsSection(prefs),
		outputFormatSection,
	}

	nonEmpty := sections[:0]
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

// suggestionBanner renders the AI-context banner for requests that
// carry a dish picked by an external recommendation engine.
func suggestionBanner(dish string) string {
	if dish == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("RECOMMENDED DISH CONTEXT:\n")
	fmt.Fprintf(&b, "This request fulfills an external recommendation for %q.\n", dish)
	fmt.Fprintf(&b, "Produce exactly this dish: %s. Do not substitute a different dish.", dish)
	return b.String()
}

// categoryHeaders gives each category its prompt sub-header, rendered
// in pantry.Categories() order.
var categoryHeaders = map[pantry.Category]string{
	pantry.CategoryProtein:    "Proteins",
	pantry.CategoryVegetables: "Vegetables",
	pantry.CategoryFruits:     "Fruits",
	pantry.CategoryGrains:     "Grains",
	pantry.CategoryDairy:      "Dairy",
	pantry.CategorySpices:     "Spices",
	pantry.CategoryHerbs:      "Herbs",
	pantry.CategoryOils:       "Oils",
	pantry.CategoryPantry:     "Pantry Staples",
	pantry.CategoryOther:      "Other",
}

func ingredientSection(items []pantry.Ingredient, now time.Time) string {
	var b strings.Builder
	b.WriteString("AVAILABLE INGREDIENTS:")

	if len(items) == 0 {
		b.WriteString("\nNo pantry ingredients were provided. Choose sensible, widely available ingredients that suit the requested dish.")
	} else {
		groups := pantry.GroupByCategory(items)
		for _, category := range pantry.Categories() {
			group := groups[category]
			if len(group) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n%s:", categoryHeaders[category])
			for _, item := range group {
				b.WriteString("\n- ")
				b.WriteString(item.Name)
				if item.Quantity > 0 && item.Unit != "" {
					fmt.Fprintf(&b, " (%g %s)", item.Quantity, item.Unit)
				}
				if item.ExpiresSoon(now) {
					b.WriteString(" [expires within 3 days - use first]")
				}
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(priorityDirective(items))
	return b.String()
}

func priorityDirective(items []pantry.Ingredient) string {
	for _, item := range items {
		if item.Recommended {
			return fmt.Sprintf("Priority: build the dish around %s as the primary focus. "+
				"%s must define the dish, not garnish it; do not produce a generic dish "+
				"in which it plays a minor role.", item.Name, item.Name)
		}
	}
	return "Priority: use ingredients that expire soon first, and use as many of the " +
		"available ingredients as reasonably fit the dish."
}

func requirementsSection(cuisine recipe.CuisineType, servings int, prefs *GenerationPreferences) string {
	var b strings.Builder
	b.WriteString("REQUIREMENTS:")

	if cuisine == recipe.CuisineAny || cuisine == "" {
		b.WriteString("\n- Cuisine: any (cook's choice)")
	} else {
		fmt.Fprintf(&b, "\n- Cuisine: %s", cuisine)
	}
	fmt.Fprintf(&b, "\n- Servings: %d", servings)

	if prefs.MaxTotalTimeMinutes > 0 {
		fmt.Fprintf(&b, "\n- Maximum total time: %d minutes", prefs.MaxTotalTimeMinutes)
	}
	if prefs.Difficulty != "" {
		fmt.Fprintf(&b, "\n- Difficulty: %s", prefs.Difficulty)
	}
	if prefs.Spice != "" {
		fmt.Fprintf(&b, "\n- Spice level: %s", prefs.Spice)
	}
	if len(prefs.Dietary) > 0 {
		fmt.Fprintf(&b, "\n- Dietary: %s", strings.Join(prefs.Dietary, ", "))
	}
	if len(prefs.Allergens) > 0 {
		fmt.Fprintf(&b, "\n- Allergens to exclude completely: %s", strings.Join(prefs.Allergens, ", "))
	}
	if prefs.NutritionGoal != "" {
		fmt.Fprintf(&b, "\n- Nutrition goal: %s", prefs.NutritionGoal)
	}
	if prefs.FamilyMode {
		b.WriteString("\n- Family friendly: suitable for both adults and children")
	}
	if prefs.PantryOnly {
		b.WriteString("\n- Use only the listed pantry ingredients plus water, salt and pepper")
	}

	if target, ok := healthGoalTargets[prefs.HealthGoal]; ok {
		fmt.Fprintf(&b, "\n- Health goal: %s", prefs.HealthGoal)
		fmt.Fprintf(&b, "\n  Per-serving targets: under %d kcal, at least %dg protein, at least %dg fiber, under %dmg sodium",
			target.Calories, target.ProteinG, target.FiberG, target.SodiumMG)
		fmt.Fprintf(&b, "\n  %s", target.Guidance)
	}

	return b.String()
}

func historySection(history *UserHistory) string {
	if history == nil || history.empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("COOK PROFILE:")
	if len(history.FavoriteTitles) > 0 {
		fmt.Fprintf(&b, "\n- Past favorites: %s", strings.Join(history.FavoriteTitles, ", "))
	}
	if len(history.DislikedIngredients) > 0 {
		fmt.Fprintf(&b, "\n- Disliked ingredients, avoid them: %s", strings.Join(history.DislikedIngredients, ", "))
	}
	if history.CookingFrequency != "" {
		fmt.Fprintf(&b, "\n- Cooking frequency: %s", history.CookingFrequency)
	}
	if history.SkillRating > 0 {
		fmt.Fprintf(&b, "\n- Self-rated skill: %d/10", history.SkillRating)
	}
	return b.String()
}

// hardConstraintsSection emits the non-negotiable constraints. It is
// only rendered when at least one of the triggering conditions (time
// cap, spice extremity, named nutrition goal) applies.
func hardConstraintsSection(prefs *GenerationPreferences) string {
	var lines []string

	if prefs.MaxTotalTimeMinutes > 0 {
		lines = append(lines, fmt.Sprintf("- Total time must not exceed %d minutes.", prefs.MaxTotalTimeMinutes))
	}
	switch prefs.Spice {
	case SpiceMild:
		lines = append(lines, "- Keep the dish strictly mild: no hot peppers, chili or other sources of heat.")
	case SpiceExtraHot:
		lines = append(lines, "- The dish must be genuinely spicy; do not tone the heat down.")
	}
	if prefs.NutritionGoal != "" {
		lines = append(lines, fmt.Sprintf("- The recipe must serve the stated nutrition goal: %s.", prefs.NutritionGoal))
	}

	if len(lines) == 0 {
		return ""
	}
	return "HARD CONSTRAINTS:\n" + strings.Join(lines, "\n")
}

// outputFormatSection is the fixed closing block that shapes the model
// reply into the JSON the provider clients parse.
const outputFormatSection = `OUTPUT FORMAT:
Respond with ONLY a valid JSON object in exactly this shape, no other text:
{
  "title": "Recipe Name",
  "description": "Brief description of the dish",
  "cuisine": "cuisine name",
  "difficulty": "easy|medium|hard|expert",
  "prep_time_minutes": 15,
  "cook_time_minutes": 25,
  "servings": 4,
  "ingredients": [{"name": "ingredient", "amount": 1.5, "unit": "cups"}],
  "instructions": ["Step 1 ...", "Step 2 ..."],
  "tags": ["tag1", "tag2"],
  "dietary": {"vegetarian": false, "vegan": false, "gluten_free": false, "dairy_free": false, "allergens": []},
  "nutrition": {"calories": 350, "protein_g": 25, "carbs_g": 30, "fat_g": 15, "fiber_g": 5, "sugar_g": 6, "sodium_mg": 500, "cholesterol_mg": 40}
}
All nutrition values are per serving. Amounts must be numbers, not strings.`
