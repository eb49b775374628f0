package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"visionassist/internal/domain"
	"visionassist/internal/middleware"
	"visionassist/internal/storage"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

type imageResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	FileSize    int64     `json:"file_size"`
	MimeType    string    `json:"mime_type"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	ImageType   string    `json:"image_type"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toImageResponse(img *domain.Image) imageResponse {
	return imageResponse{
		ID:          img.ID,
		Filename:    img.Filename,
		FileSize:    img.FileSize,
		MimeType:    img.MimeType,
		Width:       img.Width,
		Height:      img.Height,
		ImageType:   string(img.ImageType),
		Description: img.Description,
		Tags:        img.Tags,
		CreatedAt:   img.CreatedAt,
	}
}

// UploadImage accepts a multipart upload, stores the bytes and records the
// metadata row.
func (a *App) UploadImage(w http.ResponseWriter, r *http.Request) {
	img, status, err := a.saveUpload(r)
	if err != nil {
		if status == http.StatusInternalServerError {
			a.fail(w, err)
			return
		}
		a.error(w, status, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusCreated, toImageResponse(img))
}

// saveUpload reads the multipart "file" part, writes the bytes to blob
// storage and inserts the metadata record. Shared with the specialized
// one-shot routes.
func (a *App) saveUpload(r *http.Request) (*domain.Image, int, error) {
	maxBytes := a.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, http.StatusBadRequest, errInvalid("multipart form required")
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, http.StatusBadRequest, errInvalid("file part required")
	}
	defer func() {
		_ = file.Close()
	}()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, http.StatusBadRequest, errInvalid("unreadable file part")
	}
	if len(data) == 0 {
		return nil, http.StatusBadRequest, errInvalid("empty file")
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, http.StatusBadRequest, errInvalid("only image uploads are accepted")
	}

	imageType := domain.ImageTypeOther
	if raw := r.FormValue("image_type"); raw != "" {
		switch t := domain.ImageType(raw); t {
		case domain.ImageTypeScene, domain.ImageTypeDocument, domain.ImageTypeProduct,
			domain.ImageTypeChart, domain.ImageTypeText, domain.ImageTypeOther:
			imageType = t
		default:
			return nil, http.StatusBadRequest, errInvalid("unknown image_type")
		}
	}
	var tags []string
	if raw := r.FormValue("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	key := storage.NewKey(header.Filename)
	storedKey, err := a.Store.Put(r.Context(), key, data, mimeType)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	now := time.Now().UTC()
	img := &domain.Image{
		ID:          uuid.NewString(),
		UserID:      middleware.UserIDFromContext(r.Context()),
		Filename:    header.Filename,
		StorageKey:  storedKey,
		FileSize:    int64(len(data)),
		MimeType:    mimeType,
		Width:       parseDimension(r.FormValue("width")),
		Height:      parseDimension(r.FormValue("height")),
		ImageType:   imageType,
		Description: strings.TrimSpace(r.FormValue("description")),
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.Images.Create(r.Context(), img); err != nil {
		// Best effort: do not leave an orphaned blob behind.
		_ = a.Store.Delete(r.Context(), storedKey)
		return nil, http.StatusInternalServerError, err
	}
	return img, http.StatusCreated, nil
}

// ListImages returns the caller's images.
func (a *App) ListImages(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(r, "offset", 0)
	images, err := a.Images.ListByUser(r.Context(), middleware.UserIDFromContext(r.Context()), limit, offset)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := make([]imageResponse, 0, len(images))
	for i := range images {
		out = append(out, toImageResponse(&images[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"images": out})
}

// GetImage returns one of the caller's images.
func (a *App) GetImage(w http.ResponseWriter, r *http.Request) {
	img, err := a.ownedImage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, toImageResponse(img))
}

// DownloadImage streams the stored bytes back to the owner.
func (a *App) DownloadImage(w http.ResponseWriter, r *http.Request) {
	img, err := a.ownedImage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	data, err := a.Store.Get(r.Context(), img.StorageKey)
	if err != nil {
		a.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", img.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DeleteImage removes the blob and the metadata row.
func (a *App) DeleteImage(w http.ResponseWriter, r *http.Request) {
	img, err := a.ownedImage(r)
	if err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Store.Delete(r.Context(), img.StorageKey); err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Images.Delete(r.Context(), img.ID); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedImage loads the image from the URL parameter and enforces ownership.
// Non-owners get ErrNotFound rather than a hint that the image exists.
func (a *App) ownedImage(r *http.Request) (*domain.Image, error) {
	img, err := a.Images.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if img.UserID != middleware.UserIDFromContext(r.Context()) {
		return nil, domain.ErrNotFound
	}
	return img, nil
}

func parseDimension(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
