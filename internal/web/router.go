// Package web assembles the HTTP surface of the mock training API.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/shindakun/ethicstraining/internal/config"
	"github.com/shindakun/ethicstraining/internal/web/handlers"
	webmiddleware "github.com/shindakun/ethicstraining/internal/web/middleware"
)

// NewRouter wires every route and the global middleware stack
func NewRouter(cfg *config.Config, h *handlers.Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(webmiddleware.LoggingMiddleware(logger))
	r.Use(webmiddleware.Recoverer(logger))
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(webmiddleware.SecurityHeaders(cfg.Server.Security.Headers))
	r.Use(webmiddleware.MaxBytes(cfg.Server.Security.MaxRequestBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/auth/login", h.Login)
		r.Get("/content/{kind}", h.Content)

		r.Group(func(r chi.Router) {
			r.Use(webmiddleware.RequireBearer)
			r.Get("/admin/users", h.AdminUsers)
		})
	})

	// Unknown paths and methods share the same JSON 404
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
