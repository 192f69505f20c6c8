// Package outbound defines the interfaces for outbound ports
// (secondary/driven adapters): the external systems the application
// layer talks to without knowing their implementations.
package outbound

import (
	"context"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
)

// AIProvider is a text-generation backend capable of turning an
// encoded prompt into a complete recipe.
type AIProvider interface {
	// Name identifies the provider in logs and fallback decisions.
	Name() string

	// GenerateRecipe sends the prompt and parses the reply into a
	// Recipe. Implementations return an error on transport failures,
	// non-OK statuses and unparseable replies; they do not fall back
	// themselves — the application layer owns the fallback chain.
	GenerateRecipe(ctx context.Context, prompt string) (*recipe.Recipe, error)

	// HealthCheck verifies the provider is reachable.
	HealthCheck(ctx context.Context) error
}

// RecipeCache stores generated recipes and short-lived drafts.
type RecipeCache interface {
	GetRecipe(ctx context.Context, key string) (*recipe.Recipe, error)
	SetRecipe(ctx context.Context, key string, r *recipe.Recipe, ttl time.Duration) error

	SaveDraft(ctx context.Context, r *recipe.Recipe) error
	GetDraft(ctx context.Context, id string) (*recipe.Recipe, error)
	DeleteDraft(ctx context.Context, id string) error
}
