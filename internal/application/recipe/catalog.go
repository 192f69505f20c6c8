// Package recipe provides the application layer for recipe generation
// use cases: the offline template generator, and the service that
// orchestrates cache, AI providers and the fallback path.
package recipe

import (
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/google/uuid"
)

// Template is a hand-authored catalog recipe used by the offline
// generation path. Templates are immutable at runtime: the catalog is
// built once at init and only copies ever leave this package.
type Template struct {
	ID              string
	Title           string
	Description     string
	Cuisine         recipe.CuisineType
	BaseServings    int
	PrepTimeMinutes int
	CookTimeMinutes int
	Difficulty      recipe.DifficultyLevel
	Ingredients     []recipe.Ingredient
	Instructions    []string
	Tags            []string
	Dietary         recipe.DietaryInfo
	Nutrition       *recipe.NutritionInfo
}

// EssentialIngredientCount is how many leading template ingredients
// participate in ingredient matching.
const EssentialIngredientCount = 3

// EssentialIngredients returns the template's matching ingredients:
// the first three entries of its ingredient list.
func (t Template) EssentialIngredients() []recipe.Ingredient {
	if len(t.Ingredients) <= EssentialIngredientCount {
		return t.Ingredients
	}
	return t.Ingredients[:EssentialIngredientCount]
}

// ToRecipe materializes the template into a Recipe at its base serving
// count, with a fresh identity and numbered instruction steps.
func (t Template) ToRecipe() recipe.Recipe {
	r := recipe.Recipe{
		ID:               uuid.New(),
		Title:            t.Title,
		Description:      t.Description,
		Cuisine:          t.Cuisine,
		Servings:         t.BaseServings,
		PrepTimeMinutes:  t.PrepTimeMinutes,
		CookTimeMinutes:  t.CookTimeMinutes,
		TotalTimeMinutes: t.PrepTimeMinutes + t.CookTimeMinutes,
		Difficulty:       t.Difficulty,
		Ingredients:      make([]recipe.Ingredient, len(t.Ingredients)),
		Instructions:     make([]recipe.Instruction, len(t.Instructions)),
		Tags:             make([]string, len(t.Tags)),
		Dietary:          t.Dietary,
	}
	copy(r.Ingredients, t.Ingredients)
	copy(r.Tags, t.Tags)
	r.Dietary.Allergens = append([]string(nil), t.Dietary.Allergens...)
	for i, step := range t.Instructions {
		r.Instructions[i] = recipe.Instruction{StepNumber: i + 1, Description: step}
	}
	if t.Nutrition != nil {
		n := *t.Nutrition
		r.Nutrition = &n
	}
	return r
}

// Catalog returns a deep copy of the template catalog. Nested slices
// and nutrition are cloned so callers cannot reach the shared table.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	for i, t := range catalog {
		out[i] = t.clone()
	}
	return out
}

func (t Template) clone() Template {
	t.Ingredients = append([]recipe.Ingredient(nil), t.Ingredients...)
	t.Instructions = append([]string(nil), t.Instructions...)
	t.Tags = append([]string(nil), t.Tags...)
	t.Dietary.Allergens = append([]string(nil), t.Dietary.Allergens...)
	if t.Nutrition != nil {
		n := *t.Nutrition
		t.Nutrition = &n
	}
	return t
}

// catalog is the process-wide template table. Nutrition values are per
// serving at the template's base serving count.
var catalog = []Template{
	{
		ID:              "italian-creamy-garlic-pasta",
		Title:           "Creamy Garlic Herb Pasta",
		Description:     "A rich pasta dish with a creamy garlic herb sauce and blistered cherry tomatoes.",
		Cuisine:         recipe.CuisineItalian,
		BaseServings:    4,
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Difficulty:      recipe.DifficultyEasy,
		Ingredients: []recipe.Ingredient{
			{Name: "pasta", Amount: 340, Unit: "g"},
			{Name: "heavy cream", Amount: 1, Unit: "cup"},
			{Name: "parmesan cheese", Amount: 0.75, Unit: "cup"},
			{Name: "garlic", Amount: 4, Unit: "cloves"},
			{Name: "cherry tomatoes", Amount: 1, Unit: "cup"},
			{Name: "fresh basil", Amount: 0.25, Unit: "cup"},
			{Name: "olive oil", Amount: 2, Unit: "tbsp"},
			{Name: "butter", Amount: 2, Unit: "tbsp"},
		},
		Instructions: []string{
			"Cook pasta in salted water until al dente; reserve a cup of pasta water before draining.",
			"Heat olive oil and butter in a large skillet over medium heat.",
			"Saute the minced garlic for 1-2 minutes until fragrant.",
			"Add halved cherry tomatoes and cook until they begin to soften.",
			"Pour in the cream and simmer for 2-3 minutes to thicken.",
			"Toss the pasta through the sauce with the parmesan, loosening with pasta water as needed.",
			"Finish with torn basil and serve immediately.",
		},
		Tags:    []string{"pasta", "creamy", "comfort food"},
		Dietary: recipe.DietaryInfo{Vegetarian: true, Allergens: []string{"dairy", "gluten"}},
		Nutrition: &recipe.NutritionInfo{
			Calories: 485, Protein: 18, Carbs: 58, Fat: 20, Fiber: 3, Sugar: 7, Sodium: 680, Cholesterol: 55,
		},
	},
	{
		ID:              "american-herb-crusted-chicken",
		Title:           "Herb-Crusted Lemon Chicken",
		Description:     "Juicy baked chicken breast with a crisp herb crust and bright lemon finish.",
		Cuisine:         recipe.CuisineAmerican,
		BaseServings:    4,
		PrepTimeMinutes: 15,
		CookTimeMinutes: 25,
		Difficulty:      recipe.DifficultyMedium,
		Ingredients: []recipe.Ingredient{
			{Name: "chicken breast", Amount: 4, Unit: "pieces"},
			{Name: "panko breadcrumbs", Amount: 1, Unit: "cup"},
			{Name: "fresh parsley", Amount: 0.25, Unit: "cup"},
			{Name: "lemon", Amount: 1, Unit: "piece"},
			{Name: "dijon mustard", Amount: 2, Unit: "tbsp"},
			{Name: "olive oil", Amount: 3, Unit: "tbsp"},
			{Name: "garlic powder", Amount: 1, Unit: "tsp"},
		},
		Instructions: []string{
			"Preheat the oven to 200C and line a baking sheet with parchment.",
			"Pat the chicken dry and season both sides with salt and pepper.",
			"Mix breadcrumbs, chopped parsley, lemon zest and garlic powder; moisten with olive oil.",
			"Brush each breast with mustard and press the crumb mixture on firmly.",
			"Bake 20-25 minutes until the crust browns and the center reaches 74C.",
			"Rest 5 minutes, then serve with lemon wedges.",
		},
		Tags:    []string{"chicken", "baked", "weeknight"},
		Dietary: recipe.DietaryInfo{Allergens: []string{"gluten"}},
		Nutrition: &recipe.NutritionInfo{
			Calories: 320, Protein: 35, Carbs: 12, Fat: 15, Fiber: 2, Sugar: 2, Sodium: 580, Cholesterol: 95,
		},
	},
	{
		ID:              "mediterranean-quinoa-bowl",
		Title:           "Mediterranean Quinoa Power Bowl",
		Description:     "A colorful bowl of quinoa, chickpeas and crisp vegetables under a zesty tahini dressing.",
		Cuisine:         recipe.CuisineMediterranean,
		BaseServings:    4,
		PrepTimeMinutes: 20,
		CookTimeMinutes: 15,
		Difficulty:      recipe.DifficultyEasy,
		Ingredients: []recipe.Ingredient{
			{Name: "quinoa", Amount: 1, Unit: "cup"},
			{Name: "chickpeas", Amount: 1, Unit: "can"},
			{Name: "cucumber", Amount: 1, Unit: "piece"},
			{Name: "cherry tomatoes", Amount: 2, Unit: "cups"},
			{Name: "red onion", Amount: 0.25, Unit: "cup"},
			{Name: "feta cheese", Amount: 0.5, Unit: "cup"},
			{Name: "tahini", Amount: 3, Unit: "tbsp"},
			{Name: "lemon juice", Amount: 3, Unit: "tbsp"},
		},
		Instructions: []string{
			"Rinse the quinoa and cook it per package directions; cool completely.",
			"Dice the cucumber, halve the tomatoes and slice the onion thin.",
			"Whisk tahini, lemon juice and a splash of water into a pourable dressing.",
			"Fold quinoa, chickpeas and vegetables together in a large bowl.",
			"Dress, top with crumbled feta, and rest 15 minutes before serving.",
		},
		Tags:    []string{"vegetarian", "bowl", "meal prep"},
		Dietary: recipe.DietaryInfo{Vegetarian: true, GlutenFree: true, Allergens: []string{"dairy", "sesame"}},
		Nutrition: &recipe.NutritionInfo{
			Calories: 420, Protein: 16, Carbs: 52, Fat: 18, Fiber: 12, Sugar: 8, Sodium: 480, Cholesterol: 15,
		},
	},
	{
		ID:              "chinese-ginger-stirfry",
		Title:           "Ginger Soy Vegetable Stir-Fry",
		Description:     "Crisp vegetables glazed in a savory ginger-soy sauce, ready in minutes.",
		Cuisine:         recipe.CuisineChinese,
		BaseServings:    4,
		PrepTimeMinutes: 15,
		CookTimeMinutes: 10,
		Difficulty:      recipe.DifficultyEasy,
		Ingredients: []recipe.Ingredient{
			{Name: "broccoli", Amount: 2, Unit: "cups"},
			{Name: "bell pepper", Amount: 2, Unit: "pieces"},
			{Name: "carrot", Amount: 2, Unit: "pieces"},
			{Name: "fresh ginger", Amount: 2, Unit: "tbsp"},
			{Name: "garlic", Amount: 4, Unit: "cloves"},
			{Name: "soy sauce", Amount: 3, Unit: "tbsp"},
			{Name: "sesame oil", Amount: 1, Unit: "tbsp"},
			{Name: "cornstarch", Amount: 1, Unit: "tbsp"},
		},
		Instructions: []string{
			"Cut all vegetables into uniform bite-size pieces.",
			"Whisk soy sauce, sesame oil and cornstarch into a slurry.",
			"Heat a wok over high heat until just smoking and add oil.",
			"Stir-fry carrots 2 minutes, then broccoli and peppers until crisp-tender.",
			"Add ginger and garlic and fry 1 minute until fragrant.",
			"Pour in the sauce, toss until glossy, and serve over rice.",
		},
		Tags:    []string{"stir-fry", "quick", "vegetables"},
		Dietary: recipe.DietaryInfo{Vegetarian: true, Vegan: true, DairyFree: true, Allergens: []string{"soy", "sesame"}},
		Nutrition: &recipe.NutritionInfo{
			Calories: 145, Protein: 5, Carbs: 18, Fat: 8, Fiber: 5, Sugar: 8, Sodium: 580, Cholesterol: 0,
		},
	},
	{
		ID:              "mexican-black-bean-tacos",
		Title:           "Smoky Black Bean Tacos",
		Description:     "Charred corn tortillas with cumin-spiced black beans, avocado and quick-pickled onion.",
		Cuisine:         recipe.CuisineMexican,
		BaseServings:    4,
		PrepTimeMinutes: 15,
		CookTimeMinutes: 15,
		Difficulty:      recipe.DifficultyEasy,
		Ingredients: []recipe.Ingredient{
			{Name: "black beans", Amount: 2, Unit: "cans"},
			{Name: "corn tortillas", Amount: 8, Unit: "pieces"},
			{Name: "avocado", Amount: 2, Unit: "pieces"},
			{Name: "red onion", Amount: 1, Unit: "piece"},
			{Name: "lime", Amount: 2, Unit: "pieces"},
			{Name: "cumin", Amount: 2, Unit: "tsp"},
			{Name: "smoked paprika", Amount: 1, Unit: "tsp"},
		},
		Instructions: []string{
			"Slice the onion thin and steep it in lime juice with a pinch of salt.",
			"Simmer the beans with cumin, paprika and a splash of water, mashing a third of them.",
			"Char the tortillas directly over a flame or in a dry skillet.",
			"Fill tortillas with beans, sliced avocado and the pickled onion.",
			"Finish with lime and serve two tacos per person.",
		},
		Tags:    []string{"tacos", "beans", "weeknight"},
		Dietary: recipe.DietaryInfo{Vegetarian: true, Vegan: true, GlutenFree: true, DairyFree: true},
		Nutrition: &recipe.NutritionInfo{
			Calories: 390, Protein: 13, Carbs: 58, Fat: 14, Fiber: 16, Sugar: 4, Sodium: 520, Cholesterol: 0,
		},
	},
	{
		ID:              "indian-chickpea-curry",
		Title:           "Coconut Chickpea Curry",
		Description:     "Chickpeas simmered in a spiced tomato-coconut sauce, best over basmati rice.",
		Cuisine:         recipe.CuisineIndian,
		BaseServings:    4,
		PrepTimeMinutes: 10,
		CookTimeMinutes: 30,
		Difficulty:      recipe.DifficultyMedium,
		Ingredients: []recipe.Ingredient{
			{Name: "chickpeas", Amount: 2, Unit: "cans"},
			{Name: "coconut milk", Amount: 400, Unit: "ml"},
			{Name: "tomato", Amount: 3, Unit: "pieces"},
			{Name: "onion", Amount: 1, Unit: "piece"},
			{Name: "garlic", Amount: 4, Unit: "cloves"},
			{Name: "garam masala", Amount: 2, Unit: "tsp"},
			{Name: "turmeric", Amount: 1, Unit: "tsp"},
			{Name: "basmati rice", Amount: 1.5, Unit: "cups"},
		},
		Instructions: []string{
			"Cook the rice and hold it warm.",
			"Soften the diced onion in oil, then bloom the garlic and spices for a minute.",
			"Add chopped tomatoes and cook down into a thick base.",
			"Stir in chickpeas and coconut milk and simmer 15 minutes.",
			"Season, rest briefly off the heat, and serve over the rice.",
		},
		Tags:    []string{"curry", "one-pot", "pantry"},
		Dietary: recipe.DietaryInfo{Vegetarian: true, Vegan: true, GlutenFree: true, DairyFree: true},
		Nutrition: &recipe.NutritionInfo{
			Calories: 520, Protein: 15, Carbs: 68, Fat: 21, Fiber: 13, Sugar: 9, Sodium: 610, Cholesterol: 0,
		},
	},
	{
		ID:              "thai-basil-fried-rice",
		Title:           "Thai Basil Fried Rice",
		Description:     "Day-old rice tossed over high heat with egg, chili and a handful of thai basil.",
		Cuisine:         recipe.CuisineThai,
		BaseServings:    2,
		PrepTimeMinutes: 10,
		CookTimeMinutes: 10,
		Difficulty:      recipe.DifficultyMedium,
		Ingredients: []recipe.Ingredient{
			{Name: "cooked rice", Amount: 3, Unit: "cups"},
			{Name: "egg", Amount: 2, Unit: "pieces"},
			{Name: "thai basil", Amount: 1, Unit: "cup"},
			{Name: "fish sauce", Amount: 1.5, Unit: "tbsp"},
			{Name: "bird's eye chili", Amount: 2, Unit: "pieces"},
			{Name: "garlic", Amount: 3, Unit: "cloves"},
		},
		Instructions: []string{
			"Break up the cold rice so no clumps remain.",
			"Pound or mince the garlic and chilies together.",
			"Scramble the eggs hard in a screaming-hot wok and set aside.",
			"Fry the garlic-chili paste 30 seconds, add rice and toss constantly.",
			"Season with fish sauce, return the egg, and kill the heat.",
			"Fold in the basil off-heat until it just wilts.",
		},
		Tags:    []string{"fried rice", "spicy", "fast"},
		Dietary: recipe.DietaryInfo{GlutenFree: true, DairyFree: true, Allergens: []string{"egg", "fish"}},
		Nutrition: &recipe.NutritionInfo{
			Calories: 460, Protein: 15, Carbs: 68, Fat: 13, Fiber: 2, Sugar: 3, Sodium: 890, Cholesterol: 185,
		},
	},
}
