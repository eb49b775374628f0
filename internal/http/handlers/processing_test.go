package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"visionassist/internal/domain"
	"visionassist/internal/middleware"
)

type fakeImageRepo struct {
	images map[string]*domain.Image
}

func (r *fakeImageRepo) Create(ctx context.Context, image *domain.Image) error {
	r.images[image.ID] = image
	return nil
}

func (r *fakeImageRepo) GetByID(ctx context.Context, id string) (*domain.Image, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return img, nil
}

func (r *fakeImageRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Image, error) {
	var out []domain.Image
	for _, img := range r.images {
		if img.UserID == userID {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *fakeImageRepo) Delete(ctx context.Context, id string) error {
	delete(r.images, id)
	return nil
}

type fakeRunner struct {
	run func(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error)
}

func (f *fakeRunner) Run(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error) {
	return f.run(ctx, img, mode, customPrompt)
}

type fakeBlobStore struct {
	blobs map[string][]byte
}

func (s *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	s.blobs[key] = data
	return key, nil
}

func (s *fakeBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (s *fakeBlobStore) Delete(ctx context.Context, key string) error {
	delete(s.blobs, key)
	return nil
}

func authedRequest(t *testing.T, method, target, imageID string, body *bytes.Buffer) *http.Request {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req = req.WithContext(middleware.ContextWithUser(req.Context(), "user-1", domain.RoleUser))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", imageID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newTestApp(images *fakeImageRepo, runner *fakeRunner) *App {
	return &App{
		Images:   images,
		Pipeline: runner,
		Store:    &fakeBlobStore{blobs: map[string][]byte{}},
		Logger:   zerolog.Nop(),
	}
}

func TestProcessImageReturnsAttempt(t *testing.T) {
	images := &fakeImageRepo{images: map[string]*domain.Image{
		"img-1": {ID: "img-1", UserID: "user-1", StorageKey: "img.jpg"},
	}}
	runner := &fakeRunner{run: func(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error) {
		if img.ID != "img-1" {
			t.Fatalf("image id = %q, want img-1", img.ID)
		}
		if mode != domain.ModeOCR {
			t.Fatalf("mode = %q, want %q", mode, domain.ModeOCR)
		}
		return &domain.ProcessingAttempt{
			ID:          "attempt-1",
			ImageID:     img.ID,
			UserID:      img.UserID,
			Mode:        mode,
			Status:      domain.StatusCompleted,
			FinalOutput: "The sign reads EXIT.",
		}, nil
	}}
	app := newTestApp(images, runner)

	body := bytes.NewBufferString(`{"mode":"ocr"}`)
	rec := httptest.NewRecorder()
	app.ProcessImage(rec, authedRequest(t, http.MethodPost, "/processing/img-1", "img-1", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp attemptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != string(domain.StatusCompleted) {
		t.Fatalf("Status = %q, want completed", resp.Status)
	}
	if resp.FinalOutput != "The sign reads EXIT." {
		t.Fatalf("FinalOutput = %q", resp.FinalOutput)
	}
}

func TestProcessImageRejectsUnknownMode(t *testing.T) {
	images := &fakeImageRepo{images: map[string]*domain.Image{
		"img-1": {ID: "img-1", UserID: "user-1"},
	}}
	runner := &fakeRunner{run: func(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error) {
		t.Fatal("pipeline must not run for an unknown mode")
		return nil, nil
	}}
	app := newTestApp(images, runner)

	body := bytes.NewBufferString(`{"mode":"telepathy"}`)
	rec := httptest.NewRecorder()
	app.ProcessImage(rec, authedRequest(t, http.MethodPost, "/processing/img-1", "img-1", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProcessImageHidesForeignImages(t *testing.T) {
	images := &fakeImageRepo{images: map[string]*domain.Image{
		"img-2": {ID: "img-2", UserID: "someone-else"},
	}}
	runner := &fakeRunner{run: func(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error) {
		t.Fatal("pipeline must not run for a foreign image")
		return nil, nil
	}}
	app := newTestApp(images, runner)

	body := bytes.NewBufferString(`{"mode":"ocr"}`)
	rec := httptest.NewRecorder()
	app.ProcessImage(rec, authedRequest(t, http.MethodPost, "/processing/img-2", "img-2", body))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestListModesIncludesLabels(t *testing.T) {
	app := newTestApp(&fakeImageRepo{images: map[string]*domain.Image{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/processing/modes", nil)
	rec := httptest.NewRecorder()
	app.ListModes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Modes []modeInfo `json:"modes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Modes) != len(domain.Modes()) {
		t.Fatalf("len(modes) = %d, want %d", len(resp.Modes), len(domain.Modes()))
	}
	byID := make(map[string]string, len(resp.Modes))
	for _, m := range resp.Modes {
		byID[m.ID] = m.Label
	}
	if byID["scene_analysis"] != "Scene Analysis" {
		t.Fatalf("scene_analysis label = %q, want %q", byID["scene_analysis"], "Scene Analysis")
	}
}

func TestSpecializedUploadsAndProcesses(t *testing.T) {
	images := &fakeImageRepo{images: map[string]*domain.Image{}}
	var gotMode domain.ProcessingMode
	runner := &fakeRunner{run: func(ctx context.Context, img *domain.Image, mode domain.ProcessingMode, customPrompt string) (*domain.ProcessingAttempt, error) {
		gotMode = mode
		return &domain.ProcessingAttempt{
			ID:          "attempt-1",
			ImageID:     img.ID,
			UserID:      img.UserID,
			Mode:        mode,
			Status:      domain.StatusCompleted,
			FinalOutput: "This is a 20 dollar bill.",
		}, nil
	}}
	app := newTestApp(images, runner)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "bill.png")
	if err != nil {
		t.Fatalf("CreateFormFile returned error: %v", err)
	}
	if _, err := part.Write([]byte("\x89PNG\r\n\x1a\npayload")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := authedRequest(t, http.MethodPost, "/specialized/currency", "", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Specialized(domain.ModeCurrencyRecognition)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if gotMode != domain.ModeCurrencyRecognition {
		t.Fatalf("mode = %q, want %q", gotMode, domain.ModeCurrencyRecognition)
	}
	if len(images.images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images.images))
	}
	if !strings.Contains(rec.Body.String(), "20 dollar bill") {
		t.Fatalf("body missing result: %s", rec.Body.String())
	}
}

func TestUploadRejectsNonImagePayload(t *testing.T) {
	app := newTestApp(&fakeImageRepo{images: map[string]*domain.Image{}}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("CreateFormFile returned error: %v", err)
	}
	fmt.Fprint(part, "plain text")
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := authedRequest(t, http.MethodPost, "/images", "", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	app.UploadImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
