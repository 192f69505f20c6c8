// Package ai holds infrastructure shared by the AI provider clients,
// chiefly the decoder for the structured recipe JSON every provider is
// prompted to emit.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/google/uuid"
)

// recipePayload mirrors the JSON schema the prompt instructs models to
// emit.
type recipePayload struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Cuisine      string              `json:"cuisine"`
	Difficulty   string              `json:"difficulty"`
	PrepTime     int                 `json:"prep_time_minutes"`
	CookTime     int                 `json:"cook_time_minutes"`
	Servings     int                 `json:"servings"`
	Ingredients  []ingredientPayload `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Tags         []string            `json:"tags"`
	Dietary      *dietaryPayload     `json:"dietary,omitempty"`
	Nutrition    *nutritionPayload   `json:"nutrition,omitempty"`
}

type ingredientPayload struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type dietaryPayload struct {
	Vegetarian bool     `json:"vegetarian"`
	Vegan      bool     `json:"vegan"`
	GlutenFree bool     `json:"gluten_free"`
	DairyFree  bool     `json:"dairy_free"`
	Allergens  []string `json:"allergens,omitempty"`
}

type nutritionPayload struct {
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein_g"`
	Carbs       float64 `json:"carbs_g"`
	Fat         float64 `json:"fat_g"`
	Fiber       float64 `json:"fiber_g"`
	Sugar       float64 `json:"sugar_g"`
	Sodium      float64 `json:"sodium_mg"`
	Cholesterol float64 `json:"cholesterol_mg"`
}

// ParseRecipeJSON extracts and decodes the recipe JSON object from a
// model reply, tolerating stray text around the object.
func ParseRecipeJSON(response string) (*recipe.Recipe, error) {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no valid JSON found in response")
	}

	var payload recipePayload
	if err := json.Unmarshal([]byte(response[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse recipe JSON: %w", err)
	}
	if payload.Title == "" {
		return nil, fmt.Errorf("recipe JSON missing title")
	}
	if len(payload.Instructions) == 0 {
		return nil, fmt.Errorf("recipe JSON missing instructions")
	}

	r := &recipe.Recipe{
		ID:               uuid.New(),
		Title:            payload.Title,
		Description:      payload.Description,
		Cuisine:          recipe.CuisineType(payload.Cuisine),
		Servings:         payload.Servings,
		PrepTimeMinutes:  payload.PrepTime,
		CookTimeMinutes:  payload.CookTime,
		TotalTimeMinutes: payload.PrepTime + payload.CookTime,
		Difficulty:       recipe.DifficultyLevel(payload.Difficulty),
		Ingredients:      make([]recipe.Ingredient, len(payload.Ingredients)),
		Instructions:     make([]recipe.Instruction, len(payload.Instructions)),
		Tags:             payload.Tags,
	}
	if r.Servings <= 0 {
		r.Servings = 1
	}

	for i, ing := range payload.Ingredients {
		r.Ingredients[i] = recipe.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
	}
	for i, step := range payload.Instructions {
		r.Instructions[i] = recipe.Instruction{StepNumber: i + 1, Description: step}
	}
	if payload.Dietary != nil {
		r.Dietary = recipe.DietaryInfo{
			Vegetarian: payload.Dietary.Vegetarian,
			Vegan:      payload.Dietary.Vegan,
			GlutenFree: payload.Dietary.GlutenFree,
			DairyFree:  payload.Dietary.DairyFree,
			Allergens:  payload.Dietary.Allergens,
		}
	}
	if payload.Nutrition != nil {
		r.Nutrition = &recipe.NutritionInfo{
			Calories:    payload.Nutrition.Calories,
			Protein:     payload.Nutrition.Protein,
			Carbs:       payload.Nutrition.Carbs,
			Fat:         payload.Nutrition.Fat,
			Fiber:       payload.Nutrition.Fiber,
			Sugar:       payload.Nutrition.Sugar,
			Sodium:      payload.Nutrition.Sodium,
			Cholesterol: payload.Nutrition.Cholesterol,
		}
	}

	return r, nil
}
