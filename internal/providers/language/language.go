// Package language implements the text-rewrite side of the model gateway.
package language

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"visionassist/internal/domain"
)

// Caller sends a fully-substituted text prompt to a language model and
// returns the raw response. One outbound call per invocation, no retries.
type Caller interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Provider() string
	Model() string
}

// Options configures a language caller.
type Options struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
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
		return nil, fmt.Errorf("%w: unsupported language provider %q", domain.ErrConfiguration, opts.Provider)
	}
}

func validatePrompt(prompt string) error {
	if prompt == "" {
		return fmt.Errorf("%w: language prompt is empty", domain.ErrInvalidRequest)
	}
	return nil
}

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
