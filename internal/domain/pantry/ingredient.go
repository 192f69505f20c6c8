// Package pantry contains the domain model for pantry inventory items.
// Pantry items are owned by the caller; this package only defines the
// value objects the generation core consumes.
package pantry

import (
	"strings"
	"time"
)

// Category classifies a pantry ingredient for prompt grouping and
// fallback ingredient selection.
type Category string

const (
	CategoryProtein    Category = "protein"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryGrains     Category = "grains"
	CategoryDairy      Category = "dairy"
	CategorySpices     Category = "spices"
	CategoryHerbs      Category = "herbs"
	CategoryOils       Category = "oils"
	CategoryPantry     Category = "pantry"
	CategoryOther      Category = "other"
)

// Categories returns all categories in their canonical display order.
func Categories() []Category {
	return []Category{
		CategoryProtein,
		CategoryVegetables,
		CategoryFruits,
		CategoryGrains,
		CategoryDairy,
		CategorySpices,
		CategoryHerbs,
		CategoryOils,
		CategoryPantry,
		CategoryOther,
	}
}

// ParseCategory maps a raw category string onto the closed enum.
// Unknown or empty values fall back to CategoryOther.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CategoryProtein, CategoryVegetables, CategoryFruits, CategoryGrains,
		CategoryDairy, CategorySpices, CategoryHerbs, CategoryOils,
		CategoryPantry, CategoryOther:
		return c
	default:
		return CategoryOther
	}
}

// ExpiryUrgencyWindow is how close to its expiry date an ingredient has
// to be before the generation prompt flags it for priority use.
const ExpiryUrgencyWindow = 3 * 24 * time.Hour

// Ingredient is a single pantry item. Quantity, unit, expiry and price
// are optional; their zero values mean "unknown".
type Ingredient struct {
	Name      string     `json:"name"`
	Category  Category   `json:"category,omitempty"`
	Quantity  float64    `json:"quantity,omitempty"`
	Unit      string     `json:"unit,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Price     float64    `json:"price,omitempty"`

	// Recommended marks items injected by an external recommendation
	// engine rather than entered by the user. A recommended item
	// becomes the primary focus of the generated dish.
	Recommended bool `json:"recommended,omitempty"`
}

// ExpiresSoon reports whether the ingredient expires within the urgency
// window relative to now. Items without an expiry date never expire.
func (i Ingredient) ExpiresSoon(now time.Time) bool {
	if i.ExpiresAt == nil {
		return false
	}
	return !i.ExpiresAt.After(now.Add(ExpiryUrgencyWindow))
}

// NormalizedCategory returns the ingredient's category clamped to the
// closed enum.
func (i Ingredient) NormalizedCategory() Category {
	return ParseCategory(string(i.Category))
}

// GroupByCategory buckets ingredients by their normalized category.
// Iteration order is up to the caller; use Categories() for the
// canonical ordering.
func GroupByCategory(items []Ingredient) map[Category][]Ingredient {
	groups := make(map[Category][]Ingredient)
	for _, item := range items {
		c := item.NormalizedCategory()
		groups[c] = append(groups[c], item)
	}
	return groups
}

// AnyRecommended reports whether at least one item carries the
// recommendation-engine marker.
func AnyRecommended(items []Ingredient) bool {
	for _, item := range items {
		if item.Recommended {
			return true
		}
	}
	return false
}
