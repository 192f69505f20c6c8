package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryProtein, ParseCategory("protein"))
	assert.Equal(t, CategoryProtein, ParseCategory("  Protein "))
	assert.Equal(t, CategoryOils, ParseCategory("OILS"))

	// Unknown and empty values fall back to other.
	assert.Equal(t, CategoryOther, ParseCategory("condiments"))
	assert.Equal(t, CategoryOther, ParseCategory(""))
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 10)
	assert.Equal(t, CategoryProtein, cats[0])
	assert.Equal(t, CategoryOther, cats[len(cats)-1])
}

func TestExpiresSoon(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	within := now.Add(48 * time.Hour)
	boundary := now.Add(ExpiryUrgencyWindow)
	beyond := now.Add(ExpiryUrgencyWindow + time.Minute)
	past := now.Add(-time.Hour)

	assert.True(t, Ingredient{Name: "milk", ExpiresAt: &within}.ExpiresSoon(now))
	assert.True(t, Ingredient{Name: "milk", ExpiresAt: &boundary}.ExpiresSoon(now))
	assert.True(t, Ingredient{Name: "milk", ExpiresAt: &past}.ExpiresSoon(now))
	assert.False(t, Ingredient{Name: "milk", ExpiresAt: &beyond}.ExpiresSoon(now))
	assert.False(t, Ingredient{Name: "rice"}.ExpiresSoon(now))
}

func TestGroupByCategory(t *testing.T) {
	items := []Ingredient{
		{Name: "chicken", Category: CategoryProtein},
		{Name: "beef", Category: CategoryProtein},
		{Name: "ketchup", Category: "condiment"},
	}

	groups := GroupByCategory(items)
	assert.Len(t, groups[CategoryProtein], 2)
	assert.Len(t, groups[CategoryOther], 1)
	assert.Equal(t, "ketchup", groups[CategoryOther][0].Name)
}

func TestAnyRecommended(t *testing.T) {
	assert.False(t, AnyRecommended([]Ingredient{{Name: "rice"}}))
	assert.True(t, AnyRecommended([]Ingredient{
		{Name: "rice"},
		{Name: "salmon", Recommended: true},
	}))
}
