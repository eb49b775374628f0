package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer owns the API listener lifecycle: serve until asked to stop,
// then drain in-flight requests.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer builds the listener from service configuration. Processing
// runs synchronously inside the request, so the write timeout must outlast a
// full pipeline run; it is raised to cover both model-stage timeouts when the
// configured value is tighter than that.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	writeTimeout := cfg.HTTPWriteTimeout
	if floor := cfg.VisionTimeout + cfg.LanguageTimeout + 5*time.Second; writeTimeout < floor {
		writeTimeout = floor
	}
	return &HTTPServer{srv: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		MaxHeaderBytes:    1 << 20,
	}}
}

// Addr returns the listen address.
func (s *HTTPServer) Addr() string {
	if s == nil || s.srv == nil {
		return ""
	}
	return s.srv.Addr
}

// WriteTimeout returns the effective response deadline.
func (s *HTTPServer) WriteTimeout() time.Duration {
	if s == nil || s.srv == nil {
		return 0
	}
	return s.srv.WriteTimeout
}

// Start serves requests until Shutdown is called or the listener fails.
func (s *HTTPServer) Start() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting new connections and drains in-flight requests
// until ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
