package ai

import (
	"context"
	"errors"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/ports/outbound"
	"go.uber.org/zap"
)

// ErrAllProvidersFailed is returned when every configured provider
// failed to produce a recipe. Callers are expected to fall back to the
// offline template generator.
var ErrAllProvidersFailed = errors.New("all AI providers failed")

// Service drives the configured AI providers with fallback: the
// primary provider is tried first, then the remaining providers in
// order. The service performs no offline fallback itself.
type Service struct {
	providers []outbound.AIProvider
	logger    *zap.Logger
}

// NewService creates an AI service. The first provider is the primary;
// the rest are fallbacks in order.
func NewService(providers []outbound.AIProvider, logger *zap.Logger) *Service {
	return &Service{
		providers: providers,
		logger:    logger.Named("ai-service"),
	}
}

// GenerateRecipe encodes the request and runs it through the provider
// chain.
func (s *Service) GenerateRecipe(ctx context.Context, req PromptRequest) (*recipe.Recipe, error) {
	return s.GenerateFromPrompt(ctx, BuildPrompt(req))
}

// GenerateFromPrompt sends an already-encoded prompt through the
// provider chain and returns the first successful recipe.
func (s *Service) GenerateFromPrompt(ctx context.Context, prompt string) (*recipe.Recipe, error) {
	if len(s.providers) == 0 {
		return nil, ErrAllProvidersFailed
	}

	for i, provider := range s.providers {
		start := time.Now()
		generated, err := provider.GenerateRecipe(ctx, prompt)
		if err == nil {
			s.logger.Info("recipe generated",
				zap.String("provider", provider.Name()),
				zap.String("title", generated.Title),
				zap.Duration("elapsed", time.Since(start)),
			)
			return generated, nil
		}

		if i < len(s.providers)-1 {
			s.logger.Warn("AI provider failed, trying fallback provider",
				zap.String("provider", provider.Name()),
				zap.Error(err),
			)
		} else {
			s.logger.Warn("last AI provider failed",
				zap.String("provider", provider.Name()),
				zap.Error(err),
			)
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, ErrAllProvidersFailed
}

// HealthCheck reports healthy when at least one provider is reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	lastErr := error(ErrAllProvidersFailed)
	for _, provider := range s.providers {
		err := provider.HealthCheck(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}
