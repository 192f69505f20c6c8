package recipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/application/ai"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/pantry"
	domainrecipe "github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/ports/outbound"
	"github.com/Totao923/pantry-buddy-pro-sub001/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	recipe *domainrecipe.Recipe
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) GenerateRecipe(ctx context.Context, prompt string) (*domainrecipe.Recipe, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.recipe, nil
}

func (p *stubProvider) HealthCheck(ctx context.Context) error { return nil }

type memoryCache struct {
	recipes map[string]*domainrecipe.Recipe
	drafts  map[string]*domainrecipe.Recipe
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		recipes: make(map[string]*domainrecipe.Recipe),
		drafts:  make(map[string]*domainrecipe.Recipe),
	}
}

func (c *memoryCache) GetRecipe(ctx context.Context, key string) (*domainrecipe.Recipe, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.recipes[key], nil
}

func (c *memoryCache) SetRecipe(ctx context.Context, key string, r *domainrecipe.Recipe, ttl time.Duration) error {
	c.recipes[key] = r
	return nil
}

func (c *memoryCache) SaveDraft(ctx context.Context, r *domainrecipe.Recipe) error {
	c.drafts[r.ID.String()] = r
	return nil
}

func (c *memoryCache) GetDraft(ctx context.Context, id string) (*domainrecipe.Recipe, error) {
	return c.drafts[id], nil
}

func (c *memoryCache) DeleteDraft(ctx context.Context, id string) error {
	delete(c.drafts, id)
	return nil
}

func newTestService(provider outbound.AIProvider, cache outbound.RecipeCache) *Service {
	log := zap.NewNop()
	var providers []outbound.AIProvider
	if provider != nil {
		providers = append(providers, provider)
	}
	return NewService(
		ai.NewService(providers, log),
		NewGeneratorWithSelector(log, firstSelector),
		cache,
		log,
	)
}

func generateRequest() ai.PromptRequest {
	return ai.PromptRequest{
		Ingredients: []pantry.Ingredient{
			{Name: "tomato", Category: pantry.CategoryVegetables},
		},
		Cuisine:  domainrecipe.CuisineItalian,
		Servings: 4,
		Now:      time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateUsesAIProvider(t *testing.T) {
	provider := &stubProvider{recipe: &domainrecipe.Recipe{Title: "Model Dish"}}
	s := newTestService(provider, newMemoryCache())

	result, err := s.Generate(context.Background(), generateRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceAI, result.Source)
	assert.Equal(t, "Model Dish", result.Recipe.Title)
}

func TestGenerateCachesAIResult(t *testing.T) {
	provider := &stubProvider{recipe: &domainrecipe.Recipe{Title: "Model Dish"}}
	cache := newMemoryCache()
	s := newTestService(provider, cache)

	req := generateRequest()

	first, err := s.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, SourceAI, first.Source)

	second, err := s.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, "Model Dish", second.Recipe.Title)
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateFallsBackToTemplates(t *testing.T) {
	provider := &stubProvider{err: errors.New("model offline")}
	s := newTestService(provider, newMemoryCache())

	result, err := s.Generate(context.Background(), generateRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, result.Source)
	assert.Contains(t, result.Recipe.Title, "Tomato")
	assert.Equal(t, 4, result.Recipe.Servings)
}

func TestGenerateWithNoProvidersStillSucceeds(t *testing.T) {
	s := newTestService(nil, nil)

	result, err := s.Generate(context.Background(), generateRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, result.Source)
}

func TestGenerateSurvivesCacheLookupFailure(t *testing.T) {
	provider := &stubProvider{recipe: &domainrecipe.Recipe{Title: "Model Dish"}}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	s := newTestService(provider, cache)

	result, err := s.Generate(context.Background(), generateRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceAI, result.Source)
}

func TestGenerateReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &stubProvider{err: errors.New("model offline")}
	s := newTestService(provider, nil)

	_, err := s.Generate(ctx, generateRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScaleDelegatesToDomain(t *testing.T) {
	s := newTestService(nil, nil)

	r := testutils.NewRecipeBuilder().
		WithServings(4).
		WithIngredients(domainrecipe.Ingredient{Name: "rice", Amount: 2, Unit: "cups"}).
		Build()

	scaled, err := s.Scale(context.Background(), r, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scaled.Ingredients[0].Amount)

	_, err = s.Scale(context.Background(), r, 0)
	assert.ErrorIs(t, err, domainrecipe.ErrInvalidServings)
}

func TestDraftRoundTrip(t *testing.T) {
	cache := newMemoryCache()
	s := newTestService(nil, cache)
	ctx := context.Background()

	draft := testutils.NewRecipeBuilder().WithTitle("Work In Progress").Build()
	require.NoError(t, s.SaveDraft(ctx, &draft))

	loaded, err := s.GetDraft(ctx, draft.ID.String())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Work In Progress", loaded.Title)

	require.NoError(t, s.DeleteDraft(ctx, draft.ID.String()))
	gone, err := s.GetDraft(ctx, draft.ID.String())
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDraftOperationsWithoutCache(t *testing.T) {
	s := newTestService(nil, nil)
	ctx := context.Background()

	assert.NoError(t, s.SaveDraft(ctx, &domainrecipe.Recipe{ID: uuid.New()}))
	loaded, err := s.GetDraft(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
	assert.NoError(t, s.DeleteDraft(ctx, "missing"))
}
