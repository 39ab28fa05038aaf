package service

import (
	"context"

	"gear-rental/internal/domain"
	"gear-rental/internal/repository"
)

// UserService defines the interface for user records.
type UserService interface {
	CreateUser(ctx context.Context, name, email, phone, address, avatarURL string) (string, error)
	ListUsers(ctx context.Context, limit int64) ([]domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, name, email, phone, address, avatarURL string) (string, error) {
	user, err := domain.NewUser(name, email, phone, address, avatarURL)
	if err != nil {
		return "", err
	}
	return s.userRepo.Create(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context, limit int64) ([]domain.User, error) {
	return s.userRepo.List(ctx, limit)
}
