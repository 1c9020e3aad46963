package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shindakun/ethicstraining/internal/auth"
	"github.com/shindakun/ethicstraining/internal/config"
	"github.com/shindakun/ethicstraining/internal/content"
	"github.com/shindakun/ethicstraining/internal/models"
	"github.com/shindakun/ethicstraining/internal/version"
	"github.com/shindakun/ethicstraining/internal/web/render"
)

// Handlers holds dependencies for HTTP handlers
type Handlers struct {
	authenticator *auth.Authenticator
	catalog       *content.Catalog
	environment   string
	instance      string
	started       time.Time
	logger        *zap.Logger
}

// New creates a new Handlers instance
func New(cfg *config.Config, authenticator *auth.Authenticator, catalog *content.Catalog, logger *zap.Logger) *Handlers {
	return &Handlers{
		authenticator: authenticator,
		catalog:       catalog,
		environment:   cfg.Server.Environment,
		instance:      uuid.NewString(),
		started:       time.Now(),
		logger:        logger,
	}
}

// Login evaluates a credential submission against the demo identity
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			render.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.logger.Debug("failed to decode login body", zap.Error(err))
		render.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome := h.authenticator.Authenticate(req)
	h.logger.Info("login attempt",
		zap.String("username", req.Username),
		zap.Bool("mfa_supplied", req.HasMFACode()),
		zap.Stringer("outcome", outcome.Kind),
	)

	status := http.StatusOK
	if outcome.Err() != nil {
		status = http.StatusUnauthorized
	}

	if err := render.JSON(w, status, outcome.Response()); err != nil {
		h.logger.Error("failed to write login response", zap.Error(err))
	}
}

// Content returns the static collection named by the {kind} URL parameter
func (h *Handlers) Content(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseContentKind(chi.URLParam(r, "kind"))
	if !ok {
		h.NotFound(w, r)
		return
	}

	data, ok := h.catalog.Get(kind)
	if !ok {
		h.NotFound(w, r)
		return
	}

	if err := render.List(w, data); err != nil {
		h.logger.Error("failed to write content", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// Health reports liveness and uptime
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	health := models.Health{
		Status:      "OK",
		Timestamp:   now.UTC(),
		Uptime:      now.Sub(h.started).Seconds(),
		Version:     version.GetVersion(),
		Environment: h.environment,
		Instance:    h.instance,
	}
	if err := render.JSON(w, http.StatusOK, health); err != nil {
		h.logger.Error("failed to write health", zap.Error(err))
	}
}

// AdminUsers lists demo users for the admin portal (behind RequireBearer)
func (h *Handlers) AdminUsers(w http.ResponseWriter, r *http.Request) {
	if err := render.List(w, h.catalog.Users); err != nil {
		h.logger.Error("failed to write admin users", zap.Error(err))
	}
}

// NotFound answers unmatched routes and methods
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	render.Error(w, http.StatusNotFound, "Endpoint not found")
}
