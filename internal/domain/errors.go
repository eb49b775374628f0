package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrConfiguration       = errors.New("configuration error")
	ErrImageUnavailable    = errors.New("image unavailable")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProvider            = errors.New("provider error")
	ErrPersistence         = errors.New("persistence error")
	ErrDuplicateEmail      = errors.New("email already registered")
)
