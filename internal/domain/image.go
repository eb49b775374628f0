package domain

import "time"

// ImageType categorizes uploaded images.
type ImageType string

const (
	ImageTypeScene    ImageType = "scene"
	ImageTypeDocument ImageType = "document"
	ImageTypeProduct  ImageType = "product"
	ImageTypeChart    ImageType = "chart"
	ImageTypeText     ImageType = "text"
	ImageTypeOther    ImageType = "other"
)

// Image is the metadata record for an uploaded image. The bytes themselves
// live in blob storage under StorageKey.
type Image struct {
	ID          string
	UserID      string
	Filename    string
	StorageKey  string
	FileSize    int64
	MimeType    string
	Width       int
	Height      int
	ImageType   ImageType
	Description string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
