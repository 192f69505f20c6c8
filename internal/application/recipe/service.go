package recipe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/application/ai"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/ports/outbound"
	"go.uber.org/zap"
)

// generatedRecipeTTL bounds how long a generated recipe stays cached
// under its prompt digest.
const generatedRecipeTTL = 24 * time.Hour

// Service is the recipe generation use case. It consults the cache,
// then the AI provider chain, and falls back to the offline template
// generator when no provider can serve the request.
type Service struct {
	ai        *ai.Service
	generator *Generator
	cache     outbound.RecipeCache
	logger    *zap.Logger
}

// NewService wires the recipe service. cache may be nil, in which case
// every request goes straight to generation.
func NewService(aiService *ai.Service, generator *Generator, cache outbound.RecipeCache, logger *zap.Logger) *Service {
	return &Service{
		ai:        aiService,
		generator: generator,
		cache:     cache,
		logger:    logger.Named("recipe-service"),
	}
}

// GenerationResult carries a generated recipe together with how it was
// produced.
type GenerationResult struct {
	Recipe *recipe.Recipe `json:"recipe"`
	Source string         `json:"source"`
}

// Generation sources.
const (
	SourceCache    = "cache"
	SourceAI       = "ai"
	SourceTemplate = "template"
)

// Generate produces a recipe for the request. Identical requests hit
// the cache; otherwise the AI provider chain runs, and if every
// provider fails the template generator guarantees a result.
func (s *Service) Generate(ctx context.Context, req ai.PromptRequest) (*GenerationResult, error) {
	prompt := ai.BuildPrompt(req)
	key := promptCacheKey(prompt)

	if s.cache != nil {
		cached, err := s.cache.GetRecipe(ctx, key)
		if err != nil {
			s.logger.Warn("recipe cache lookup failed", zap.Error(err))
		} else if cached != nil {
			s.logger.Debug("recipe served from cache", zap.String("key", key))
			return &GenerationResult{Recipe: cached, Source: SourceCache}, nil
		}
	}

	generated, err := s.ai.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("AI generation failed, using template generator", zap.Error(err))
		fallback := s.generator.Generate(req.Ingredients, req.Cuisine, req.Servings)
		return &GenerationResult{Recipe: &fallback, Source: SourceTemplate}, nil
	}

	if s.cache != nil {
		if err := s.cache.SetRecipe(ctx, key, generated, generatedRecipeTTL); err != nil {
			s.logger.Warn("failed to cache generated recipe", zap.Error(err))
		}
	}
	return &GenerationResult{Recipe: generated, Source: SourceAI}, nil
}

// Scale adjusts a recipe to a new serving count.
func (s *Service) Scale(ctx context.Context, r recipe.Recipe, targetServings int) (recipe.Recipe, error) {
	scaled, err := recipe.Scale(r, targetServings)
	if err != nil {
		return recipe.Recipe{}, err
	}
	s.logger.Debug("recipe scaled",
		zap.String("title", r.Title),
		zap.Int("from_servings", r.Servings),
		zap.Int("to_servings", targetServings),
	)
	return scaled, nil
}

// SaveDraft persists an in-progress recipe to the draft store.
func (s *Service) SaveDraft(ctx context.Context, r *recipe.Recipe) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.SaveDraft(ctx, r)
}

// GetDraft loads a previously saved draft, or (nil, nil) when absent.
func (s *Service) GetDraft(ctx context.Context, id string) (*recipe.Recipe, error) {
	if s.cache == nil {
		return nil, nil
	}
	return s.cache.GetDraft(ctx, id)
}

// DeleteDraft removes a draft from the store.
func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeleteDraft(ctx, id)
}

// promptCacheKey derives a stable cache key from the encoded prompt,
// so semantically identical requests share a cache entry.
func promptCacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "recipe:generated:" + hex.EncodeToString(sum[:])
}
