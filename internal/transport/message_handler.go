package transport

import (
	"net/http"

	"gear-rental/internal/domain"
	"gear-rental/internal/middleware"
	"gear-rental/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateMessageRequest represents the message-creation payload
type CreateMessageRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateMessageResponse carries the assigned identifier
type CreateMessageResponse struct {
	ID string `json:"id"`
}

// MessageListResponse wraps a page of messages
type MessageListResponse struct {
	Items []domain.MessageView `json:"items"`
}

// MessageHandler handles HTTP requests for customer messages
type MessageHandler struct {
	messages service.MessageService
	logger   *zap.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messages service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messages: messages,
		logger:   logger,
	}
}

// RegisterRoutes registers all message routes
func (h *MessageHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/messages", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

// Create handles message creation
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Message validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.messages.CreateMessage(r.Context(), req.UserID, req.Content)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Message created", zap.String("message_id", id), zap.String("user_id", req.UserID))
	middleware.RespondWithJSON(w, http.StatusCreated, CreateMessageResponse{ID: id})
}

// List handles message listing with optional user_id filter
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	msgs, err := h.messages.ListMessages(r.Context(), r.URL.Query().Get("user_id"), limit)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	items := make([]domain.MessageView, 0, len(msgs))
	for i := range msgs {
		items = append(items, msgs[i].View())
	}

	middleware.RespondWithJSON(w, http.StatusOK, MessageListResponse{Items: items})
}
