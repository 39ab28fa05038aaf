package transport

import (
	"net/http"

	"gear-rental/internal/domain"
	"gear-rental/internal/middleware"
	"gear-rental/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TransactionItemRequest is one rental line in a transaction request.
// Quantity and Days are pointers so that an omitted field (defaults to 1)
// can be told apart from an explicit zero, which is rejected.
type TransactionItemRequest struct {
	GearID   string `json:"gear_id" validate:"required"`
	Quantity *int   `json:"quantity" validate:"omitempty,gte=1"`
	Days     *int   `json:"days" validate:"omitempty,gte=1"`
}

// CreateTransactionRequest represents the transaction-creation payload.
// The total is always computed server side; a client-supplied total is
// ignored by decoding.
type CreateTransactionRequest struct {
	UserID string                   `json:"user_id" validate:"required"`
	Items  []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateTransactionResponse carries the persisted order summary
type CreateTransactionResponse struct {
	ID          string        `json:"id"`
	TotalAmount float64       `json:"total_amount"`
	Status      domain.Status `json:"status"`
}

// TransactionListResponse wraps a page of transactions
type TransactionListResponse struct {
	Items []domain.TransactionView `json:"items"`
}

// intOrZero unwraps an optional numeric field; zero means omitted.
func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// TransactionHandler handles HTTP requests for rental transactions
type TransactionHandler struct {
	rental service.RentalService
	logger *zap.Logger
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(rental service.RentalService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		rental: rental,
		logger: logger,
	}
}

// RegisterRoutes registers all transaction routes
func (h *TransactionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

// Create prices and persists a rental order
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Transaction validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]domain.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := domain.NewTransactionItem(it.GearID, intOrZero(it.Quantity), intOrZero(it.Days))
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		items = append(items, item)
	}

	txn, err := h.rental.CreateTransaction(r.Context(), req.UserID, items)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Transaction created",
		zap.String("transaction_id", txn.ID.Hex()),
		zap.String("user_id", txn.UserID),
		zap.Float64("total_amount", txn.TotalAmount),
	)

	middleware.RespondWithJSON(w, http.StatusCreated, CreateTransactionResponse{
		ID:          txn.ID.Hex(),
		TotalAmount: txn.TotalAmount,
		Status:      txn.Status,
	})
}

// List handles transaction listing with optional user_id and status filters
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	txns, err := h.rental.ListTransactions(
		r.Context(),
		r.URL.Query().Get("user_id"),
		domain.Status(r.URL.Query().Get("status")),
		limit,
	)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	items := make([]domain.TransactionView, 0, len(txns))
	for i := range txns {
		items = append(items, txns[i].View())
	}

	middleware.RespondWithJSON(w, http.StatusOK, TransactionListResponse{Items: items})
}
