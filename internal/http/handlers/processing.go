package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"visionassist/internal/domain"
	"visionassist/internal/middleware"
)

type processRequest struct {
	Mode         string `json:"mode"`
	CustomPrompt string `json:"custom_prompt"`
}

type attemptResponse struct {
	ID               string    `json:"id"`
	ImageID          string    `json:"image_id"`
	Mode             string    `json:"mode"`
	Status           string    `json:"status"`
	FinalOutput      string    `json:"final_output,omitempty"`
	ConfidenceScore  float64   `json:"confidence_score,omitempty"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	VisionProvider   string    `json:"vision_provider,omitempty"`
	VisionModel      string    `json:"vision_model,omitempty"`
	VisionDurationMS int64     `json:"vision_duration_ms,omitempty"`
	LanguageProvider string    `json:"language_provider,omitempty"`
	LanguageModel    string    `json:"language_model,omitempty"`
	LanguageDuration int64     `json:"language_duration_ms,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toAttemptResponse(a *domain.ProcessingAttempt) attemptResponse {
	return attemptResponse{
		ID:               a.ID,
		ImageID:          a.ImageID,
		Mode:             string(a.Mode),
		Status:           string(a.Status),
		FinalOutput:      a.FinalOutput,
		ConfidenceScore:  a.ConfidenceScore,
		ErrorMessage:     a.ErrorMessage,
		VisionProvider:   a.VisionProvider,
		VisionModel:      a.VisionModel,
		VisionDurationMS: a.VisionDuration.Milliseconds(),
		LanguageProvider: a.LanguageProvider,
		LanguageModel:    a.LanguageModel,
		LanguageDuration: a.LanguageDuration.Milliseconds(),
		CreatedAt:        a.CreatedAt,
	}
}

// ProcessImage runs the pipeline synchronously against one of the caller's
// images and returns the terminal attempt.
func (a *App) ProcessImage(w http.ResponseWriter, r *http.Request) {
	img, err := a.ownedImage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		a.fail(w, err)
		return
	}
	attempt, err := a.Pipeline.Run(r.Context(), img, mode, req.CustomPrompt)
	if err != nil {
		// Invalid-request failures leave a queryable FAILED attempt behind;
		// the error response still reports the validation problem.
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, toAttemptResponse(attempt))
}

// GetResult returns one attempt by id, owner-scoped.
func (a *App) GetResult(w http.ResponseWriter, r *http.Request) {
	attempt, err := a.Attempts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}
	if attempt.UserID != middleware.UserIDFromContext(r.Context()) {
		a.fail(w, domain.ErrNotFound)
		return
	}
	a.json(w, http.StatusOK, toAttemptResponse(attempt))
}

// ListResultsByImage returns all attempts against one of the caller's images.
func (a *App) ListResultsByImage(w http.ResponseWriter, r *http.Request) {
	img, err := a.ownedImage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	attempts, err := a.Attempts.ListByImage(r.Context(), img.ID)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := make([]attemptResponse, 0, len(attempts))
	for i := range attempts {
		out = append(out, toAttemptResponse(&attempts[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"results": out})
}

type modeInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ListModes returns the supported processing modes with human labels.
func (a *App) ListModes(w http.ResponseWriter, r *http.Request) {
	titler := cases.Title(language.English)
	modes := domain.Modes()
	out := make([]modeInfo, 0, len(modes))
	for _, mode := range modes {
		label := titler.String(strings.ReplaceAll(string(mode), "_", " "))
		out = append(out, modeInfo{ID: string(mode), Label: label})
	}
	a.json(w, http.StatusOK, map[string]any{"modes": out})
}
