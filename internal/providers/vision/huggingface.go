package vision

import (
	"bytes"
	"context"
	"encoding/base64"
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
	huggingFaceDefaultModel   = "Salesforce/blip2-opt-2.7b"
	huggingFaceDefaultTimeout = 60 * time.Second
)

// HuggingFaceCaller talks to the Hugging Face inference API in
// image-to-text / visual-question-answering form.
type HuggingFaceCaller struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type hfVisionRequest struct {
	Inputs hfVisionInputs `json:"inputs"`
}

type hfVisionInputs struct {
	Image    string `json:"image"`
	Question string `json:"question"`
}

type hfGeneratedText struct {
	GeneratedText string `json:"generated_text"`
	Answer        string `json:"answer"`
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
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

func (c *HuggingFaceCaller) Provider() string { return huggingFaceProviderName }

func (c *HuggingFaceCaller) Model() string { return c.model }

func (c *HuggingFaceCaller) Describe(ctx context.Context, image []byte, prompt string) (string, error) {
	if err := validateDescribeInput(image, prompt); err != nil {
		return "", err
	}
	payload := hfVisionRequest{Inputs: hfVisionInputs{
		Image:    base64.StdEncoding.EncodeToString(image),
		Question: prompt,
	}}
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
		if text := strings.TrimSpace(item.Answer); text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: huggingface returned no text", domain.ErrProvider)
}

// modelPathEscape escapes a model id while keeping the owner/name slash.
func modelPathEscape(model string) string {
	parts := strings.Split(model, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

var _ Caller = (*HuggingFaceCaller)(nil)
