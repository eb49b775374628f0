package handlers

import (
	"net/http"

	"visionassist/internal/domain"
)

// SpecializedRoutes maps one-shot route names to their fixed processing mode.
// Each route uploads an image and processes it in a single request.
var SpecializedRoutes = map[string]domain.ProcessingMode{
	"currency":         domain.ModeCurrencyRecognition,
	"colors":           domain.ModeColorAnalysis,
	"objects":          domain.ModeObjectRecognition,
	"faces":            domain.ModeFaceRecognition,
	"products":         domain.ModeProductIdentification,
	"hazards":          domain.ModeHazardDetection,
	"transport":        domain.ModeTransportInformation,
	"medicine":         domain.ModeMedicineIdentification,
	"emotions":         domain.ModeEmotionalAnalysis,
	"document-summary": domain.ModeDocumentSummarization,
}

// Specialized returns a handler that uploads the image and immediately runs
// the pipeline in the given mode.
func (a *App) Specialized(mode domain.ProcessingMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, status, err := a.saveUpload(r)
		if err != nil {
			if status == http.StatusInternalServerError {
				a.fail(w, err)
				return
			}
			a.error(w, status, "bad_request", err.Error())
			return
		}
		attempt, err := a.Pipeline.Run(r.Context(), img, mode, "")
		if err != nil {
			a.fail(w, err)
			return
		}
		a.json(w, http.StatusOK, map[string]any{
			"image":  toImageResponse(img),
			"result": toAttemptResponse(attempt),
		})
	}
}
