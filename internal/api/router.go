package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campusconnect/portal-bff/internal/api/handlers"
	"github.com/campusconnect/portal-bff/internal/cache"
	"github.com/campusconnect/portal-bff/internal/config"
	"github.com/campusconnect/portal-bff/internal/logger"
	"github.com/campusconnect/portal-bff/middleware"
)

// NewRouter assembles the public HTTP surface of the portal BFF.
func NewRouter(cfg *config.Config, portal *handlers.Portal, cch *cache.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger.Log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Metrics)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.Identity(cfg.JWTSecret))

	if cfg.RLEnabled {
		if cch != nil {
			limiter := middleware.NewRedisRateLimiter(cch.Raw())
			r.Use(limiter.Middleware(middleware.RateLimitConfig{
				Limit:  cfg.RLLimit,
				Window: cfg.RLWindow,
				KeyFn:  middleware.KeyByUser,
			}))
		} else {
			r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
		}
	}

	r.Get("/api/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"portal-bff"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Get("/", portal.Events.List)
			r.Get("/{id}", portal.EventDetail)
		})

		r.Route("/demands", func(r chi.Router) {
			r.Get("/", portal.Demands.List)
			r.Get("/{id}", portal.Demands.Get)
			// Submissions are throttled tighter than reads.
			r.With(httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP))).
				Post("/", portal.DemandCreate)
		})

		r.Route("/pyqs", func(r chi.Router) {
			r.Get("/", portal.Pyqs.List)
			r.Get("/{id}", portal.Pyqs.Get)
			r.Get("/{id}/download", portal.Pyqs.Download)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", portal.Notes.List)
			r.Get("/{id}", portal.Notes.Get)
			r.Get("/{id}/download", portal.Notes.Download)
		})

		r.Route("/fests", func(r chi.Router) {
			r.Get("/", portal.Fests.List)
			r.Get("/{id}", portal.Fests.Get)
		})

		r.Route("/hostels", func(r chi.Router) {
			r.Get("/", portal.Hostels.List)
			r.Get("/{id}", portal.Hostels.Get)
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", portal.Gallery.List)
			r.Get("/{id}", portal.Gallery.Get)
			r.Post("/{id}/like", portal.GalleryLike)
		})
	})

	return r
}
