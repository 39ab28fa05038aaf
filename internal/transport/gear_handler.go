package transport

import (
	"net/http"

	"gear-rental/internal/domain"
	"gear-rental/internal/middleware"
	"gear-rental/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateGearRequest represents the catalog-creation payload. The numeric
// fields are pointers so an explicit zero survives decoding: price is
// required but may legitimately be 0, stock and rating fall back to their
// catalog defaults when omitted.
type CreateGearRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	PricePerDay *float64 `json:"price_per_day" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"image_url"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// CreateGearResponse carries the assigned identifier
type CreateGearResponse struct {
	ID string `json:"id"`
}

// GearListResponse wraps a page of catalog entries
type GearListResponse struct {
	Items []domain.GearView `json:"items"`
}

// GearHandler handles HTTP requests for the gear catalog
type GearHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewGearHandler creates a new GearHandler
func NewGearHandler(catalog service.CatalogService, logger *zap.Logger) *GearHandler {
	return &GearHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all gear routes
func (h *GearHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/gear", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

// Create handles catalog entry creation
func (h *GearHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGearRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Gear validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.catalog.CreateGear(r.Context(), domain.GearParams{
		Title:       req.Title,
		Description: req.Description,
		PricePerDay: *req.PricePerDay,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Rating:      req.Rating,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Gear created", zap.String("gear_id", id), zap.String("category", req.Category))
	middleware.RespondWithJSON(w, http.StatusCreated, CreateGearResponse{ID: id})
}

// List handles catalog listing with optional category filter
func (h *GearHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	gears, err := h.catalog.ListGear(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	items := make([]domain.GearView, 0, len(gears))
	for i := range gears {
		items = append(items, gears[i].View())
	}

	middleware.RespondWithJSON(w, http.StatusOK, GearListResponse{Items: items})
}
