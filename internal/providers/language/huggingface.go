package language

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"visionassist/internal/domain"
)

const (
	huggingFaceProviderName   = "huggingface"
	huggingFaceDefaultModel   = "mistralai/Mistral-7B-Instruct-v0.2"
	huggingFaceDefaultTimeout = 30 * time.Second
)

// HuggingFaceCaller talks to the Hugging Face inference API in
// text-generation form.
type HuggingFaceCaller struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
	client      *http.Client
}

type hfTextRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	Temperature    float64 `json:"temperature,omitempty"`
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneratedText struct {
	GeneratedText string `json:"generated_text"`
}

func NewHuggingFaceCaller(opts Options) (*HuggingFaceCaller, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("%w: huggingface api key is not configured", domain.ErrConfiguration)
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = huggingFaceDefaultModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: huggingFaceDefaultTimeout}
	}
	return &HuggingFaceCaller{
		apiKey:      strings.TrimSpace(opts.APIKey),
		model:       model,
		baseURL:     baseURL,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		client:      client,
	}, nil
}

func (c *HuggingFaceCaller) Provider() string { return huggingFaceProviderName }

func (c *HuggingFaceCaller) Model() string { return c.model }

func (c *HuggingFaceCaller) Complete(ctx context.Context, prompt string) (string, error) {
	if err := validatePrompt(prompt); err != nil {
		return "", err
	}
	payload := hfTextRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			Temperature:    c.temperature,
			MaxNewTokens:   c.maxTokens,
			ReturnFullText: false,
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("%w: encode request: %v", domain.ErrProvider, err)
	}
	endpoint := fmt.Sprintf("%s/models/%s", c.baseURL, modelPathEscape(c.model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrProvider, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", mapTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: huggingface status %d", domain.ErrProvider, resp.StatusCode)
	}
	var out []hfGeneratedText
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrProvider, err)
	}
	for _, item := range out {
		if text := strings.TrimSpace(item.GeneratedText); text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: huggingface returned no text", domain.ErrProvider)
}

func modelPathEscape(model string) string {
	parts := strings.Split(model, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

var _ Caller = (*HuggingFaceCaller)(nil)
