package transport

import (
	"net/http"

	"gear-rental/internal/domain"
	"gear-rental/internal/middleware"
	"gear-rental/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateUserRequest represents the user-creation payload
type CreateUserRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url"`
}

// CreateUserResponse carries the assigned identifier
type CreateUserResponse struct {
	ID string `json:"id"`
}

// UserListResponse wraps a page of users
type UserListResponse struct {
	Items []domain.UserView `json:"items"`
}

// UserHandler handles HTTP requests for user records
type UserHandler struct {
	users  service.UserService
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

// Create handles user creation
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("User validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.users.CreateUser(r.Context(), req.Name, req.Email, req.Phone, req.Address, req.AvatarURL)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("User created", zap.String("user_id", id))
	middleware.RespondWithJSON(w, http.StatusCreated, CreateUserResponse{ID: id})
}

// List handles user listing
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	users, err := h.users.ListUsers(r.Context(), limit)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	items := make([]domain.UserView, 0, len(users))
	for i := range users {
		items = append(items, users[i].View())
	}

	middleware.RespondWithJSON(w, http.StatusOK, UserListResponse{Items: items})
}
