package domain

import (
	"fmt"
	"time"
)

// ProcessingMode enumerates the supported analysis intents. Every mode except
// ModeCustom has a prompt pair registered at startup; ModeCustom takes the
// vision prompt from the caller and skips the rewrite stage.
type ProcessingMode string

const (
	ModeDescription            ProcessingMode = "description"
	ModeOCR                    ProcessingMode = "ocr"
	ModeSceneAnalysis          ProcessingMode = "scene_analysis"
	ModeDocumentReading        ProcessingMode = "document_reading"
	ModeAccessibility          ProcessingMode = "accessibility"
	ModeCustom                 ProcessingMode = "custom"
	ModeCurrencyRecognition    ProcessingMode = "currency_recognition"
	ModeColorAnalysis          ProcessingMode = "color_analysis"
	ModeObjectRecognition      ProcessingMode = "object_recognition"
	ModeFaceRecognition        ProcessingMode = "face_recognition"
	ModeProductIdentification  ProcessingMode = "product_identification"
	ModeHazardDetection        ProcessingMode = "hazard_detection"
	ModeTransportInformation   ProcessingMode = "transport_information"
	ModeMedicineIdentification ProcessingMode = "medicine_identification"
	ModeEmotionalAnalysis      ProcessingMode = "emotional_analysis"
	ModeImageComparison        ProcessingMode = "image_comparison"
	ModeDocumentSummarization  ProcessingMode = "document_summarization"
	ModeAudioDescription       ProcessingMode = "audio_description"
)

var allModes = []ProcessingMode{
	ModeDescription,
	ModeOCR,
	ModeSceneAnalysis,
	ModeDocumentReading,
	ModeAccessibility,
	ModeCustom,
	ModeCurrencyRecognition,
	ModeColorAnalysis,
	ModeObjectRecognition,
	ModeFaceRecognition,
	ModeProductIdentification,
	ModeHazardDetection,
	ModeTransportInformation,
	ModeMedicineIdentification,
	ModeEmotionalAnalysis,
	ModeImageComparison,
	ModeDocumentSummarization,
	ModeAudioDescription,
}

// Modes returns all supported processing modes in declaration order.
func Modes() []ProcessingMode {
	out := make([]ProcessingMode, len(allModes))
	copy(out, allModes)
	return out
}

// ParseMode validates a caller-supplied mode string.
func ParseMode(s string) (ProcessingMode, error) {
	mode := ProcessingMode(s)
	for _, m := range allModes {
		if m == mode {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: unknown processing mode %q", ErrInvalidRequest, s)
}

// ProcessingStatus is the attempt lifecycle state. Pending and Processing are
// transient; Completed and Failed are terminal and never left.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// Terminal reports whether the status is an end state.
func (s ProcessingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// ProcessingAttempt records one run of the two-stage pipeline against an
// image, including full provenance for both model calls.
type ProcessingAttempt struct {
	ID           string
	ImageID      string
	UserID       string
	Mode         ProcessingMode
	CustomPrompt string
	Status       ProcessingStatus

	// Vision stage provenance.
	PromptTemplate string
	VisionProvider string
	VisionModel    string
	VisionResponse string
	VisionDuration time.Duration

	// Language stage provenance. Unset for custom mode and when the vision
	// stage fails.
	LanguageProvider string
	LanguageModel    string
	LanguageResponse string
	LanguageDuration time.Duration

	FinalOutput string
	// ConfidenceScore is advisory only: a fixed placeholder meaning "the
	// model ran", not a computed metric.
	ConfidenceScore float64
	ErrorMessage    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
