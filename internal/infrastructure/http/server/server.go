// Package server provides the HTTP API server for recipe generation.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/application/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/config"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/http/middleware"
	"github.com/Totao923/pantry-buddy-pro-sub001/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the HTTP API server.
type Server struct {
	config     *config.Config
	logger     *zap.Logger
	recipes    *recipe.Service
	health     ReadinessReporter
	httpServer *http.Server
}

// ReadinessReporter aggregates dependency checks for the readiness probe.
type ReadinessReporter interface {
	Check(ctx context.Context) healthcheck.Response
}

// NewServer creates the API server.
func NewServer(cfg *config.Config, logger *zap.Logger, recipes *recipe.Service, health ReadinessReporter) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger.Named("http-server"),
		recipes: recipes,
		health:  health,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.setupRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// Start begins serving HTTP requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/recipes", func(r chi.Router) {
			r.Post("/generate", s.handleGenerate)
			r.Post("/scale", s.handleScale)

			r.Route("/drafts", func(r chi.Router) {
				r.Post("/", s.handleSaveDraft)
				r.Get("/{id}", s.handleGetDraft)
				r.Delete("/{id}", s.handleDeleteDraft)
			})
		})
	})

	return r
}
