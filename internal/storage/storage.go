// Package storage abstracts blob storage for uploaded images. Two backends
// ship: local filesystem for development and MinIO/S3 for deployments.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store persists and retrieves raw image bytes by storage key.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// NewKey derives a collision-free storage key from an original filename,
// keeping the extension so content type can be guessed later.
func NewKey(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString(), ext)
}
