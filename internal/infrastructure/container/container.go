// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/application/ai"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/application/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/ai/deepseek"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/ai/ollama"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/cache"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/config"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/http/server"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/ports/outbound"
	"github.com/Totao923/pantry-buddy-pro-sub001/pkg/healthcheck"
	"github.com/Totao923/pantry-buddy-pro-sub001/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CacheModule,
	ProviderModule,
	ServiceModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// CacheModule provides the Redis client and the recipe cache built on
// it. A disabled Redis yields nil for both; the recipe service treats a
// nil cache as cache-off.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
		if !cfg.Redis.Enabled {
			log.Info("redis disabled, running without recipe cache")
			return nil, nil
		}

		return cache.NewRedisClient(cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			Database:     cfg.Redis.Database,
			MaxRetries:   cfg.Redis.MaxRetries,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}, log)
	},
	func(client *redis.Client, log *zap.Logger) outbound.RecipeCache {
		if client == nil {
			return nil
		}
		return cache.NewRecipeCache(client, log)
	},
)

// ProviderModule assembles the AI provider chain in priority order.
var ProviderModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) ([]outbound.AIProvider, error) {
		var providers []outbound.AIProvider

		if cfg.AI.DeepSeek.Enabled {
			client, err := deepseek.NewClient(deepseek.Config{
				APIKey:  cfg.AI.DeepSeek.APIKey,
				APIURL:  cfg.AI.DeepSeek.APIURL,
				Model:   cfg.AI.DeepSeek.Model,
				Timeout: cfg.AI.DeepSeek.Timeout,
			}, log)
			if err != nil {
				return nil, err
			}
			providers = append(providers, client)
		}

		if cfg.AI.Ollama.Enabled {
			providers = append(providers, ollama.NewClient(ollama.Config{
				BaseURL: cfg.AI.Ollama.Host,
				Model:   cfg.AI.Ollama.Model,
				Timeout: cfg.AI.Ollama.Timeout,
			}, log))
		}

		if len(providers) == 0 {
			log.Warn("no AI providers enabled, all generation will use the template fallback")
		}
		return providers, nil
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	ai.NewService,
	recipe.NewGenerator,
	recipe.NewService,
)

// HealthModule aggregates dependency checks for the readiness probe.
// Every dependency is non-critical: generation falls back to templates
// without providers and the recipe cache is optional.
var HealthModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger, client *redis.Client, providers []outbound.AIProvider) *healthcheck.HealthCheck {
		h := healthcheck.New(cfg.App.Version, log)

		if client != nil {
			h.Register("redis", false, func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			})
		}
		for _, provider := range providers {
			h.Register(provider.Name(), false, provider.HealthCheck)
		}
		return h
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger, recipes *recipe.Service, health *healthcheck.HealthCheck) *server.Server {
		return server.NewServer(cfg, log, recipes, health)
	},
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting PantryChef application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down PantryChef application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			_ = log.Sync()

			return nil
		},
	})
}
