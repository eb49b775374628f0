// Package pipeline drives the two-stage image processing flow: a vision
// model describes the image, then a language model rewrites that description
// for the listener. The orchestrator owns the attempt record for the
// duration of one run and always leaves it in a terminal state.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"visionassist/internal/domain"
	"visionassist/internal/metrics"
	"visionassist/internal/prompts"
	"visionassist/internal/providers/language"
	"visionassist/internal/providers/vision"
	"visionassist/internal/storage"
)

// ConfidenceScore set on successful attempts. Provider APIs do not return a
// usable confidence signal, so this is a fixed placeholder meaning "the
// model ran", nothing more.
const placeholderConfidence = 0.9

const (
	defaultVisionTimeout   = 60 * time.Second
	defaultLanguageTimeout = 30 * time.Second
)

// Options wires the orchestrator's collaborators.
type Options struct {
	Registry *prompts.Registry
	Vision   vision.Caller
	Language language.Caller
	Store    storage.Store
	Attempts domain.AttemptRepository
	Logger   zerolog.Logger

	// Per-call bounds for the two model stages. The vision call moves the
	// image payload and warrants the longer bound.
	VisionTimeout   time.Duration
	LanguageTimeout time.Duration
}

// Orchestrator runs processing attempts. Runs for different attempts share
// no mutable state and may execute concurrently.
type Orchestrator struct {
	registry        *prompts.Registry
	vision          vision.Caller
	language        language.Caller
	store           storage.Store
	attempts        domain.AttemptRepository
	logger          zerolog.Logger
	visionTimeout   time.Duration
	languageTimeout time.Duration
}

// New constructs an orchestrator.
func New(opts Options) *Orchestrator {
	visionTimeout := opts.VisionTimeout
	if visionTimeout <= 0 {
		visionTimeout = defaultVisionTimeout
	}
	languageTimeout := opts.LanguageTimeout
	if languageTimeout <= 0 {
		languageTimeout = defaultLanguageTimeout
	}
	return &Orchestrator{
		registry:        opts.Registry,
		vision:          opts.Vision,
		language:        opts.Language,
		store:           opts.Store,
		attempts:        opts.Attempts,
		logger:          opts.Logger,
		visionTimeout:   visionTimeout,
		languageTimeout: languageTimeout,
	}
}

// Run executes one processing attempt against the image and returns it in a
// terminal state. Model and storage failures come back as a FAILED attempt
// with a nil error. ErrInvalidRequest and ErrConfiguration are returned as
// errors alongside the persisted FAILED attempt, so callers can distinguish
// a bad request or a missing prompt template from a model failure.
// ErrPersistence is returned with a nil attempt: once the store stops
// accepting writes there is no trustworthy attempt state to hand back.
func (o *Orchestrator) Run(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error) {
	now := time.Now().UTC()
	attempt := &domain.ProcessingAttempt{
		ID:           uuid.NewString(),
		ImageID:      img.ID,
		UserID:       img.UserID,
		Mode:         mode,
		CustomPrompt: customPrompt,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Persist immediately so in-flight work is observable.
	if err := o.attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("%w: create attempt: %v", domain.ErrPersistence, err)
	}

	attempt.Status = domain.StatusProcessing
	if err := o.persist(ctx, attempt); err != nil {
		return nil, err
	}

	var pair prompts.Pair
	var visionPrompt string
	rewrite := false
	if mode == domain.ModeCustom {
		if strings.TrimSpace(customPrompt) == "" {
			err := fmt.Errorf("%w: custom mode requires a custom prompt", domain.ErrInvalidRequest)
			if perr := o.fail(ctx, attempt, err); perr != nil {
				return nil, perr
			}
			return attempt, err
		}
		visionPrompt = customPrompt
	} else {
		p, err := o.registry.Lookup(mode)
		if err != nil {
			if perr := o.fail(ctx, attempt, err); perr != nil {
				return nil, perr
			}
			return attempt, err
		}
		pair = p
		visionPrompt = p.Vision
		rewrite = true
	}
	attempt.PromptTemplate = visionPrompt

	data, err := o.store.Get(ctx, img.StorageKey)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrImageUnavailable, err)
		if perr := o.fail(ctx, attempt, err); perr != nil {
			return nil, perr
		}
		return attempt, nil
	}
	if len(data) == 0 {
		err := fmt.Errorf("%w: image %q is empty", domain.ErrInvalidRequest, img.ID)
		if perr := o.fail(ctx, attempt, err); perr != nil {
			return nil, perr
		}
		return attempt, err
	}

	visionCtx, cancelVision := context.WithTimeout(ctx, o.visionTimeout)
	start := time.Now()
	visionResp, visionErr := o.vision.Describe(visionCtx, data, visionPrompt)
	cancelVision()
	// Provenance is recorded even when the call fails.
	attempt.VisionProvider = o.vision.Provider()
	attempt.VisionModel = o.vision.Model()
	attempt.VisionDuration = time.Since(start)
	metrics.StageDuration.WithLabelValues("vision", o.vision.Provider()).Observe(attempt.VisionDuration.Seconds())
	if visionErr != nil {
		if perr := o.fail(ctx, attempt, visionErr); perr != nil {
			return nil, perr
		}
		return attempt, nil
	}
	attempt.VisionResponse = visionResp

	if rewrite {
		filled, slotFound := pair.Fill(visionResp)
		if !slotFound {
			o.logger.Warn().
				Str("attempt_id", attempt.ID).
				Str("mode", string(mode)).
				Msg("rewrite template has no {vlm_description} slot, sending it verbatim")
		}
		languageCtx, cancelLanguage := context.WithTimeout(ctx, o.languageTimeout)
		start = time.Now()
		languageResp, languageErr := o.language.Complete(languageCtx, filled)
		cancelLanguage()
		attempt.LanguageProvider = o.language.Provider()
		attempt.LanguageModel = o.language.Model()
		attempt.LanguageDuration = time.Since(start)
		metrics.StageDuration.WithLabelValues("language", o.language.Provider()).Observe(attempt.LanguageDuration.Seconds())
		if languageErr != nil {
			// Vision-stage provenance stays on the attempt.
			if perr := o.fail(ctx, attempt, languageErr); perr != nil {
				return nil, perr
			}
			return attempt, nil
		}
		attempt.LanguageResponse = languageResp
		attempt.FinalOutput = languageResp
	} else {
		// Custom prompts are self-contained: the vision response is the
		// final output and no language call happens.
		attempt.FinalOutput = visionResp
	}

	attempt.ConfidenceScore = placeholderConfidence
	attempt.Status = domain.StatusCompleted
	if err := o.persist(ctx, attempt); err != nil {
		return nil, err
	}
	metrics.AttemptsTotal.WithLabelValues(string(mode), string(domain.StatusCompleted)).Inc()
	o.logger.Info().
		Str("attempt_id", attempt.ID).
		Str("image_id", img.ID).
		Str("mode", string(mode)).
		Dur("vision_duration", attempt.VisionDuration).
		Dur("language_duration", attempt.LanguageDuration).
		Msg("processing attempt completed")
	return attempt, nil
}

func (o *Orchestrator) persist(ctx context.Context, attempt *domain.ProcessingAttempt) error {
	attempt.UpdatedAt = time.Now().UTC()
	if err := o.attempts.Update(ctx, attempt); err != nil {
		return fmt.Errorf("%w: update attempt %s: %v", domain.ErrPersistence, attempt.ID, err)
	}
	return nil
}

// fail drives the attempt to FAILED and persists it. The returned error is
// non-nil only when the failure itself could not be saved.
func (o *Orchestrator) fail(ctx context.Context, attempt *domain.ProcessingAttempt, cause error) error {
	attempt.Status = domain.StatusFailed
	attempt.ErrorMessage = cause.Error()
	if err := o.persist(ctx, attempt); err != nil {
		return err
	}
	metrics.AttemptsTotal.WithLabelValues(string(attempt.Mode), string(domain.StatusFailed)).Inc()
	o.logger.Error().
		Str("attempt_id", attempt.ID).
		Str("image_id", attempt.ImageID).
		Str("mode", string(attempt.Mode)).
		Err(cause).
		Msg("processing attempt failed")
	return nil
}
