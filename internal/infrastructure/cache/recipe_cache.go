package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// draftTTL bounds how long an unsaved draft survives.
const draftTTL = 24 * time.Hour

// RecipeCache implements the outbound recipe cache port on Redis.
// Cache misses are not errors: lookups return (nil, nil) when the key
// is absent.
type RecipeCache struct {
	client *redis.Client
	logger *zap.Logger
}

var _ outbound.RecipeCache = (*RecipeCache)(nil)

// NewRecipeCache creates a Redis-backed recipe cache.
func NewRecipeCache(client *redis.Client, logger *zap.Logger) *RecipeCache {
	return &RecipeCache{
		client: client,
		logger: logger.Named("recipe-cache"),
	}
}

// GetRecipe loads a cached recipe by key.
func (c *RecipeCache) GetRecipe(ctx context.Context, key string) (*recipe.Recipe, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe from redis: %w", err)
	}

	var r recipe.Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached recipe: %w", err)
	}
	return &r, nil
}

// SetRecipe stores a recipe under the key for the given TTL.
func (c *RecipeCache) SetRecipe(ctx context.Context, key string, r *recipe.Recipe, ttl time.Duration) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache recipe: %w", err)
	}
	return nil
}

// SaveDraft stores an in-progress recipe under its ID.
func (c *RecipeCache) SaveDraft(ctx context.Context, r *recipe.Recipe) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	key := draftKey(r.ID.String())
	if err := c.client.Set(ctx, key, data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to redis: %w", err)
	}
	c.logger.Debug("draft saved", zap.String("key", key))
	return nil
}

// GetDraft loads a draft by recipe ID, or (nil, nil) when absent.
func (c *RecipeCache) GetDraft(ctx context.Context, id string) (*recipe.Recipe, error) {
	data, err := c.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from redis: %w", err)
	}

	var r recipe.Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &r, nil
}

// DeleteDraft removes a draft by recipe ID.
func (c *RecipeCache) DeleteDraft(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from redis: %w", err)
	}
	return nil
}

func draftKey(id string) string {
	return "recipe:draft:" + id
}
