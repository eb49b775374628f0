// Package handlers holds the HTTP surface. Handlers translate between the
// JSON API and the domain layer; they hold no business logic of their own.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"visionassist/internal/auth"
	"visionassist/internal/domain"
	"visionassist/internal/storage"
)

// PipelineRunner is the orchestrator surface the handlers depend on.
type PipelineRunner interface {
	Run(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error)
}

// App bundles handler dependencies.
type App struct {
	Users    domain.UserRepository
	Images   domain.ImageRepository
	Attempts domain.AttemptRepository
	Store    storage.Store
	Pipeline PipelineRunner
	Tokens   *auth.TokenIssuer
	Logger   zerolog.Logger

	// MaxUploadBytes caps multipart image uploads.
	MaxUploadBytes int64
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}

func errInvalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, msg)
}

// fail maps domain errors onto HTTP statuses.
func (a *App) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
	case errors.Is(err, domain.ErrDuplicateEmail):
		a.error(w, http.StatusConflict, "conflict", "email already registered")
	case errors.Is(err, domain.ErrInvalidRequest):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrConfiguration):
		a.Logger.Error().Err(err).Msg("configuration error")
		a.error(w, http.StatusInternalServerError, "internal", "service misconfigured")
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
