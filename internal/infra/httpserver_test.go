package infra

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPServerWriteTimeoutCoversPipeline(t *testing.T) {
	cfg := &Config{
		Port:             "8080",
		HTTPWriteTimeout: 10 * time.Second,
		VisionTimeout:    60 * time.Second,
		LanguageTimeout:  30 * time.Second,
	}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())
	want := cfg.VisionTimeout + cfg.LanguageTimeout + 5*time.Second
	if got := srv.WriteTimeout(); got != want {
		t.Fatalf("WriteTimeout() = %v, want raised to %v", got, want)
	}
}

func TestNewHTTPServerKeepsGenerousWriteTimeout(t *testing.T) {
	cfg := &Config{
		Port:             "8080",
		HTTPWriteTimeout: 5 * time.Minute,
		VisionTimeout:    60 * time.Second,
		LanguageTimeout:  30 * time.Second,
	}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())
	if got := srv.WriteTimeout(); got != 5*time.Minute {
		t.Fatalf("WriteTimeout() = %v, want configured %v", got, 5*time.Minute)
	}
	if srv.Addr() != ":8080" {
		t.Fatalf("Addr() = %q, want %q", srv.Addr(), ":8080")
	}
}
