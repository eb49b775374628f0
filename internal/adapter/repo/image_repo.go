package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"visionassist/internal/domain"
)

// ImageRepositoryPG implements domain.ImageRepository backed by PostgreSQL.
type ImageRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewImageRepository creates a new ImageRepositoryPG.
func NewImageRepository(pool *pgxpool.Pool) *ImageRepositoryPG {
	return &ImageRepositoryPG{pool: pool}
}

const imageColumns = "id, user_id, filename, storage_key, file_size, mime_type, width, height, image_type, description, tags, created_at, updated_at"

// Create inserts a new image metadata record.
func (r *ImageRepositoryPG) Create(ctx context.Context, image *domain.Image) error {
	query := `
INSERT INTO images (id, user_id, filename, storage_key, file_size, mime_type, width, height, image_type, description, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`
	_, err := r.pool.Exec(ctx, query,
		image.ID,
		image.UserID,
		image.Filename,
		image.StorageKey,
		image.FileSize,
		image.MimeType,
		image.Width,
		image.Height,
		image.ImageType,
		image.Description,
		image.Tags,
	)
	return err
}

// GetByID fetches an image by its identifier.
func (r *ImageRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Image, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+imageColumns+` FROM images WHERE id = $1`, id)
	return scanImage(row)
}

// ListByUser returns the user's images ordered by upload time, newest first.
func (r *ImageRepositoryPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Image, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+imageColumns+` FROM images WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.Image
	for rows.Next() {
		var img domain.Image
		if err := scanImageFields(rows, &img); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Delete removes an image record. Attempts against it cascade at the schema
// level.
func (r *ImageRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanImage(row pgx.Row) (*domain.Image, error) {
	var img domain.Image
	if err := scanImageFields(row, &img); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

func scanImageFields(row pgx.Row, img *domain.Image) error {
	return row.Scan(
		&img.ID,
		&img.UserID,
		&img.Filename,
		&img.StorageKey,
		&img.FileSize,
		&img.MimeType,
		&img.Width,
		&img.Height,
		&img.ImageType,
		&img.Description,
		&img.Tags,
		&img.CreatedAt,
		&img.UpdatedAt,
	)
}

var _ domain.ImageRepository = (*ImageRepositoryPG)(nil)
