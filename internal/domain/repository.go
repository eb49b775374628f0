package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]User, error)
}

// ImageRepository defines persistence for image metadata records.
type ImageRepository interface {
	Create(ctx context.Context, image *Image) error
	GetByID(ctx context.Context, id string) (*Image, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Image, error)
	Delete(ctx context.Context, id string) error
}

// AttemptRepository is the result store for processing attempts. Updates to a
// single attempt id are applied atomically; one pipeline run is the only
// writer for its attempt.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *ProcessingAttempt) error
	Update(ctx context.Context, attempt *ProcessingAttempt) error
	GetByID(ctx context.Context, id string) (*ProcessingAttempt, error)
	ListByImage(ctx context.Context, imageID string) ([]ProcessingAttempt, error)
}
