// Package httpapi assembles the chi router.
package httpapi

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"visionassist/internal/auth"
	"visionassist/internal/http/handlers"
	"visionassist/internal/middleware"
)

// Options configures the router.
type Options struct {
	App            *handlers.App
	Tokens         *auth.TokenIssuer
	Logger         zerolog.Logger
	AllowedOrigins []string
	RatePerMinute  int
}

// NewRouter wires middleware and routes.
func NewRouter(opts Options) http.Handler {
	app := opts.App
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)
	if opts.RatePerMinute > 0 {
		r.Use(middleware.RateLimit(opts.RatePerMinute))
	}

	r.Get("/healthz", app.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(opts.Tokens))

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", app.Me)
			r.Put("/me", app.UpdateMe)
			r.Delete("/me", app.DeleteMe)
			r.With(middleware.RequireAdmin).Get("/", app.ListUsers)
		})

		r.Route("/images", func(r chi.Router) {
			r.Post("/", app.UploadImage)
			r.Get("/", app.ListImages)
			r.Get("/{id}", app.GetImage)
			r.Get("/{id}/download", app.DownloadImage)
			r.Delete("/{id}", app.DeleteImage)
		})

		r.Route("/processing", func(r chi.Router) {
			r.Get("/modes", app.ListModes)
			r.Get("/results/{id}", app.GetResult)
			r.Get("/image/{id}", app.ListResultsByImage)
			r.Post("/{id}", app.ProcessImage)
		})

		r.Route("/specialized", func(r chi.Router) {
			names := make([]string, 0, len(handlers.SpecializedRoutes))
			for name := range handlers.SpecializedRoutes {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				r.Post("/"+name, app.Specialized(handlers.SpecializedRoutes[name]))
			}
		})
	})

	return r
}
