// Package vision implements the image-understanding side of the model
// gateway. Each provider satisfies Caller; selection happens once at
// configuration time.
package vision

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"visionassist/internal/domain"
)

// Caller sends image bytes plus a prompt to a vision-language model and
// returns the raw text response. Implementations make exactly one outbound
// call per invocation and never retry.
type Caller interface {
	Describe(ctx context.Context, image []byte, prompt string) (string, error)
	Provider() string
	Model() string
}

// Options configures a vision caller.
type Options struct {
	Provider   string
	Model      string
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewCaller constructs the caller for the configured provider. Missing
// credentials fail here, before any network call is attempted.
func NewCaller(opts Options) (Caller, error) {
	switch opts.Provider {
	case "openai":
		return NewOpenAICaller(opts)
	case "google":
		return NewGoogleCaller(opts)
	case "huggingface":
		return NewHuggingFaceCaller(opts)
	default:
		return nil, fmt.Errorf("%w: unsupported vision provider %q", domain.ErrConfiguration, opts.Provider)
	}
}

func validateDescribeInput(image []byte, prompt string) error {
	if len(image) == 0 {
		return fmt.Errorf("%w: image bytes are empty", domain.ErrInvalidRequest)
	}
	if prompt == "" {
		return fmt.Errorf("%w: vision prompt is empty", domain.ErrInvalidRequest)
	}
	return nil
}

// mapTransportError classifies errors from http.Client.Do: deadline
// overruns become ErrProviderTimeout, everything else ErrProviderUnavailable.
func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrProviderTimeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrProviderTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
}
