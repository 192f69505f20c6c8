package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/application/ai"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/pantry"
	recipedomain "github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	"github.com/Totao923/pantry-buddy-pro-sub001/pkg/errors"
	"github.com/Totao923/pantry-buddy-pro-sub001/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// generateRequest is the payload for POST /api/v1/recipes/generate.
type generateRequest struct {
	Ingredients   []ingredientRequest       `json:"ingredients"`
	Cuisine       string                    `json:"cuisine"`
	Servings      int                       `json:"servings"`
	Preferences   *ai.GenerationPreferences `json:"preferences,omitempty"`
	History       *ai.UserHistory           `json:"history,omitempty"`
	SuggestedDish string                    `json:"suggested_dish,omitempty"`
}

type ingredientRequest struct {
	Name        string     `json:"name"`
	Category    string     `json:"category,omitempty"`
	Quantity    float64    `json:"quantity,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Price       float64    `json:"price,omitempty"`
	Recommended bool       `json:"recommended,omitempty"`
}

// scaleRequest is the payload for POST /api/v1/recipes/scale.
type scaleRequest struct {
	Recipe         recipedomain.Recipe `json:"recipe"`
	TargetServings int                 `json:"target_servings"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.NewBadRequestError("Invalid request body").WithCause(err))
		return
	}
	if req.Servings <= 0 {
		s.writeError(w, r, errors.NewInvalidServingsError(req.Servings))
		return
	}

	promptReq := req.toPromptRequest()
	result, err := s.recipes.Generate(r.Context(), promptReq)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
			s.writeError(w, r, errors.NewAppError(errors.CodeServiceUnavailable, "Generation timed out", "").WithCause(err))
			return
		}
		s.writeError(w, r, errors.NewGenerationFailedError(err))
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.NewBadRequestError("Invalid request body").WithCause(err))
		return
	}

	scaled, err := s.recipes.Scale(r.Context(), req.Recipe, req.TargetServings)
	if err != nil {
		switch {
		case stderrors.Is(err, recipedomain.ErrInvalidServings):
			s.writeError(w, r, errors.NewInvalidServingsError(req.TargetServings))
		case stderrors.Is(err, recipedomain.ErrUnscalableRecipe):
			s.writeError(w, r, errors.NewUnscalableRecipeError(req.Recipe.Servings))
		default:
			s.writeError(w, r, errors.Wrap(err, "Failed to scale recipe"))
		}
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"recipe": scaled})
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var draft recipedomain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeError(w, r, errors.NewBadRequestError("Invalid request body").WithCause(err))
		return
	}
	if draft.Title == "" {
		s.writeError(w, r, errors.NewValidationError("title is required"))
		return
	}

	if err := s.recipes.SaveDraft(r.Context(), &draft); err != nil {
		s.writeError(w, r, errors.Wrap(err, "Failed to save draft"))
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"id": draft.ID})
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	draft, err := s.recipes.GetDraft(r.Context(), id)
	if err != nil {
		s.writeError(w, r, errors.Wrap(err, "Failed to load draft"))
		return
	}
	if draft == nil {
		s.writeError(w, r, errors.NewRecipeNotFoundError(id))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"recipe": draft})
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.recipes.DeleteDraft(r.Context(), id); err != nil {
		s.writeError(w, r, errors.Wrap(err, "Failed to delete draft"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": s.config.App.Name,
		"version": s.config.App.Version,
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	// Dependency failures are reported but still answer 200: the
	// template fallback keeps generation usable without providers and
	// the recipe cache is optional.
	if s.health == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{"status": healthcheck.StatusHealthy})
		return
	}
	s.writeJSON(w, http.StatusOK, s.health.Check(r.Context()))
}

func (req generateRequest) toPromptRequest() ai.PromptRequest {
	out := ai.PromptRequest{
		Cuisine:       recipedomain.CuisineType(req.Cuisine),
		Servings:      req.Servings,
		Preferences:   req.Preferences,
		History:       req.History,
		SuggestedDish: req.SuggestedDish,
	}
	for _, ing := range req.Ingredients {
		out.Ingredients = append(out.Ingredients, ing.toDomain())
	}
	return out
}

func (ing ingredientRequest) toDomain() pantry.Ingredient {
	return pantry.Ingredient{
		Name:        ing.Name,
		Category:    pantry.ParseCategory(ing.Category),
		Quantity:    ing.Quantity,
		Unit:        ing.Unit,
		ExpiresAt:   ing.ExpiresAt,
		Price:       ing.Price,
		Recommended: ing.Recommended,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError) {
	requestID := chimiddleware.GetReqID(r.Context())
	if appErr.StatusCode() >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.Error(appErr),
		)
	}
	s.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
