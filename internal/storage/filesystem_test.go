package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"visionassist/internal/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	ctx := context.Background()
	key, err := store.Put(ctx, "uploads/photo.jpg", []byte("jpeg bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	data, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Fatalf("Get = %q, want %q", data, "jpeg bytes")
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreMissingKeyIsNotFound(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, err := store.Get(context.Background(), "nope.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, err := store.Put(context.Background(), "../escape.jpg", []byte("x"), "image/jpeg"); err == nil {
		t.Fatal("expected error for traversal key")
	}
}

func TestNewKeyKeepsExtension(t *testing.T) {
	key := NewKey("holiday photo.JPG")
	if !strings.HasSuffix(key, ".JPG") {
		t.Fatalf("NewKey = %q, want .JPG suffix", key)
	}
	if key == NewKey("holiday photo.JPG") {
		t.Fatal("NewKey should not collide for identical filenames")
	}
}
