package transport

import (
	"net/http"

	"gear-rental/internal/database"
	"gear-rental/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HealthHandler serves the service banner, liveness check and the
// connectivity diagnostic endpoint.
type HealthHandler struct {
	db     *database.Service
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.Service, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// RegisterRoutes registers the diagnostic routes
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/test", h.Diagnostics)
}

// Root returns the service banner
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Mountain Gear Rental API is running",
	})
}

// Health is the liveness check
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Diagnostics reports connectivity status without exposing configuration
// values. Store failures are summarized in the report rather than returned
// as errors, so the endpoint answers even with the database down.
func (h *HealthHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	report := h.db.Health(r.Context())
	middleware.RespondWithJSON(w, http.StatusOK, report)
}
