package language

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"visionassist/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestNewCallerUnknownProvider(t *testing.T) {
	if _, err := NewCaller(Options{Provider: "cohere", APIKey: "k"}); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("NewCaller error = %v, want ErrConfiguration", err)
	}
}

func TestOpenAICompleteSendsTemperatureAndMaxTokens(t *testing.T) {
	var captured openAIChatRequest
	caller, err := NewOpenAICaller(Options{
		APIKey:      "sk-test",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   1000,
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"rewritten text"}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAICaller returned error: %v", err)
	}
	text, err := caller.Complete(context.Background(), "rewrite this")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if text != "rewritten text" {
		t.Fatalf("Complete = %q, want %q", text, "rewritten text")
	}
	if captured.Temperature != 0.7 {
		t.Fatalf("Temperature = %v, want 0.7", captured.Temperature)
	}
	if captured.MaxTokens != 1000 {
		t.Fatalf("MaxTokens = %d, want 1000", captured.MaxTokens)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Content != "rewrite this" {
		t.Fatalf("unexpected messages: %+v", captured.Messages)
	}
}

func TestOpenAICompleteEmptyPrompt(t *testing.T) {
	caller, err := NewOpenAICaller(Options{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewOpenAICaller returned error: %v", err)
	}
	if _, err := caller.Complete(context.Background(), ""); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("Complete error = %v, want ErrInvalidRequest", err)
	}
}

func TestGoogleCompleteNon2xxIsProviderError(t *testing.T) {
	caller, err := NewGoogleCaller(Options{
		APIKey: "g-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusServiceUnavailable, `{"error":{"message":"overloaded"}}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGoogleCaller returned error: %v", err)
	}
	_, err = caller.Complete(context.Background(), "rewrite this")
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("Complete error = %v, want ErrProvider", err)
	}
	if !strings.Contains(err.Error(), "overloaded") {
		t.Fatalf("error should carry provider detail: %v", err)
	}
}

func TestGoogleCompleteTimeout(t *testing.T) {
	caller, err := NewGoogleCaller(Options{
		APIKey: "g-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			<-r.Context().Done()
			return nil, r.Context().Err()
		})},
	})
	if err != nil {
		t.Fatalf("NewGoogleCaller returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	if _, err := caller.Complete(ctx, "rewrite this"); !errors.Is(err, domain.ErrProviderTimeout) {
		t.Fatalf("Complete error = %v, want ErrProviderTimeout", err)
	}
}

func TestHuggingFaceCompleteParsesGeneratedText(t *testing.T) {
	caller, err := NewHuggingFaceCaller(Options{
		APIKey: "hf-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `[{"generated_text":"a tidy summary"}]`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewHuggingFaceCaller returned error: %v", err)
	}
	text, err := caller.Complete(context.Background(), "rewrite this")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if text != "a tidy summary" {
		t.Fatalf("Complete = %q, want %q", text, "a tidy summary")
	}
}
