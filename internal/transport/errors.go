package transport

import (
	"errors"
	"net/http"
	"strconv"

	"gear-rental/internal/domain"
	"gear-rental/internal/middleware"
	"gear-rental/internal/service"
	"gear-rental/internal/store"

	"go.uber.org/zap"
)

// respondServiceError maps workflow errors onto the HTTP error taxonomy:
// unresolvable gear references are 404, validation failures 400, a missing
// store connection 502 and any other storage failure 500. Nothing is
// retried or swallowed.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var notFound *service.GearNotFoundError

	switch {
	case errors.As(err, &notFound):
		middleware.RespondWithErrorDetails(w, http.StatusNotFound, "gear not found",
			map[string]interface{}{"gear_id": notFound.GearID})
	case errors.Is(err, domain.ErrValidation):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		logger.Error("Document store unavailable", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadGateway, "document store unavailable")
	default:
		logger.Error("Storage operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "storage error")
	}
}

// parseLimit reads the optional limit query parameter. Zero means the caller
// did not set one and the store default of 50 applies.
func parseLimit(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return 0, false
	}
	return limit, true
}
