package vision

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

// Tiny but valid PNG header so DetectContentType picks image/png.
var fakeImage = []byte("\x89PNG\r\n\x1a\n0123456789abcdef")

func TestNewCallerUnknownProvider(t *testing.T) {
	if _, err := NewCaller(Options{Provider: "anthropic", APIKey: "k"}); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("NewCaller error = %v, want ErrConfiguration", err)
	}
}

func TestNewCallerMissingKeyFailsFast(t *testing.T) {
	for _, provider := range []string{"openai", "google", "huggingface"} {
		if _, err := NewCaller(Options{Provider: provider}); !errors.Is(err, domain.ErrConfiguration) {
			t.Fatalf("NewCaller(%s) error = %v, want ErrConfiguration", provider, err)
		}
	}
}

func TestOpenAIDescribeSendsImageAndParsesContent(t *testing.T) {
	var captured map[string]any
	caller, err := NewOpenAICaller(Options{
		APIKey: "sk-test",
		Model:  "gpt-4o",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
				t.Fatalf("Authorization = %q", got)
			}
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"a red door"}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAICaller returned error: %v", err)
	}
	text, err := caller.Describe(context.Background(), fakeImage, "describe this")
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if text != "a red door" {
		t.Fatalf("Describe = %q, want %q", text, "a red door")
	}
	raw, _ := json.Marshal(captured)
	if !strings.Contains(string(raw), "data:image/png;base64,") {
		t.Fatalf("request missing base64 image data url: %s", raw)
	}
}

func TestOpenAIDescribeNon2xxIsProviderError(t *testing.T) {
	caller, err := NewOpenAICaller(Options{
		APIKey: "sk-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusBadRequest, `{"error":{"message":"bad image"}}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAICaller returned error: %v", err)
	}
	_, err = caller.Describe(context.Background(), fakeImage, "describe this")
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("Describe error = %v, want ErrProvider", err)
	}
	if !strings.Contains(err.Error(), "bad image") {
		t.Fatalf("error should carry provider detail: %v", err)
	}
}

func TestOpenAIDescribeTimeout(t *testing.T) {
	caller, err := NewOpenAICaller(Options{
		APIKey: "sk-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			<-r.Context().Done()
			return nil, r.Context().Err()
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAICaller returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	_, err = caller.Describe(ctx, fakeImage, "describe this")
	if !errors.Is(err, domain.ErrProviderTimeout) {
		t.Fatalf("Describe error = %v, want ErrProviderTimeout", err)
	}
}

func TestDescribeRejectsEmptyInputs(t *testing.T) {
	caller, err := NewOpenAICaller(Options{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewOpenAICaller returned error: %v", err)
	}
	if _, err := caller.Describe(context.Background(), nil, "p"); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("empty image error = %v, want ErrInvalidRequest", err)
	}
	if _, err := caller.Describe(context.Background(), fakeImage, ""); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("empty prompt error = %v, want ErrInvalidRequest", err)
	}
}

func TestGoogleDescribeParsesCandidates(t *testing.T) {
	caller, err := NewGoogleCaller(Options{
		APIKey: "g-test",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if got := r.Header.Get("x-goog-api-key"); got != "g-test" {
				t.Fatalf("x-goog-api-key = %q", got)
			}
			if !strings.Contains(r.URL.Path, "gemini-1.5-flash:generateContent") {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"a green bus"}]}}]}`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewGoogleCaller returned error: %v", err)
	}
	text, err := caller.Describe(context.Background(), fakeImage, "describe this")
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if text != "a green bus" {
		t.Fatalf("Describe = %q, want %q", text, "a green bus")
	}
}

func TestHuggingFaceDescribeParsesGeneratedText(t *testing.T) {
	caller, err := NewHuggingFaceCaller(Options{
		APIKey: "hf-test",
		Model:  "Salesforce/blip2-opt-2.7b",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if !strings.HasSuffix(r.URL.Path, "/models/Salesforce/blip2-opt-2.7b") {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			return jsonResponse(http.StatusOK, `[{"generated_text":"a dog on a sofa"}]`), nil
		})},
	})
	if err != nil {
		t.Fatalf("NewHuggingFaceCaller returned error: %v", err)
	}
	text, err := caller.Describe(context.Background(), fakeImage, "describe this")
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if text != "a dog on a sofa" {
		t.Fatalf("Describe = %q, want %q", text, "a dog on a sofa")
	}
}
