package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"visionassist/internal/domain"
)

// AttemptRepositoryPG implements domain.AttemptRepository backed by
// PostgreSQL. Stage durations are stored as millisecond integers.
type AttemptRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository creates a new AttemptRepositoryPG.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepositoryPG {
	return &AttemptRepositoryPG{pool: pool}
}

const attemptColumns = `id, image_id, user_id, mode, custom_prompt, status,
prompt_template, vision_provider, vision_model, vision_response, vision_duration_ms,
language_provider, language_model, language_response, language_duration_ms,
final_output, confidence_score, error_message, created_at, updated_at`

// Create inserts a new attempt record.
func (r *AttemptRepositoryPG) Create(ctx context.Context, attempt *domain.ProcessingAttempt) error {
	query := `
INSERT INTO processing_attempts (id, image_id, user_id, mode, custom_prompt, status)
VALUES ($1, $2, $3, $4, $5, $6);
`
	_, err := r.pool.Exec(ctx, query,
		attempt.ID,
		attempt.ImageID,
		attempt.UserID,
		attempt.Mode,
		attempt.CustomPrompt,
		attempt.Status,
	)
	return err
}

// Update persists the attempt's status and provenance fields.
func (r *AttemptRepositoryPG) Update(ctx context.Context, attempt *domain.ProcessingAttempt) error {
	query := `
UPDATE processing_attempts
SET status = $2,
    prompt_template = $3,
    vision_provider = $4,
    vision_model = $5,
    vision_response = $6,
    vision_duration_ms = $7,
    language_provider = $8,
    language_model = $9,
    language_response = $10,
    language_duration_ms = $11,
    final_output = $12,
    confidence_score = $13,
    error_message = $14,
    updated_at = NOW()
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, query,
		attempt.ID,
		attempt.Status,
		attempt.PromptTemplate,
		attempt.VisionProvider,
		attempt.VisionModel,
		attempt.VisionResponse,
		attempt.VisionDuration.Milliseconds(),
		attempt.LanguageProvider,
		attempt.LanguageModel,
		attempt.LanguageResponse,
		attempt.LanguageDuration.Milliseconds(),
		attempt.FinalOutput,
		attempt.ConfidenceScore,
		attempt.ErrorMessage,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches an attempt by its identifier.
func (r *AttemptRepositoryPG) GetByID(ctx context.Context, id string) (*domain.ProcessingAttempt, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+attemptColumns+` FROM processing_attempts WHERE id = $1`, id)
	attempt, err := scanAttempt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return attempt, nil
}

// ListByImage returns all attempts against an image, newest first.
func (r *AttemptRepositoryPG) ListByImage(ctx context.Context, imageID string) ([]domain.ProcessingAttempt, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+attemptColumns+` FROM processing_attempts WHERE image_id = $1 ORDER BY created_at DESC`, imageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.ProcessingAttempt
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *attempt)
	}
	return attempts, rows.Err()
}

func scanAttempt(row pgx.Row) (*domain.ProcessingAttempt, error) {
	var a domain.ProcessingAttempt
	var visionMS, languageMS int64
	if err := row.Scan(
		&a.ID,
		&a.ImageID,
		&a.UserID,
		&a.Mode,
		&a.CustomPrompt,
		&a.Status,
		&a.PromptTemplate,
		&a.VisionProvider,
		&a.VisionModel,
		&a.VisionResponse,
		&visionMS,
		&a.LanguageProvider,
		&a.LanguageModel,
		&a.LanguageResponse,
		&languageMS,
		&a.FinalOutput,
		&a.ConfidenceScore,
		&a.ErrorMessage,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.VisionDuration = time.Duration(visionMS) * time.Millisecond
	a.LanguageDuration = time.Duration(languageMS) * time.Millisecond
	return &a, nil
}

var _ domain.AttemptRepository = (*AttemptRepositoryPG)(nil)
