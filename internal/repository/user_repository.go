package repository

import (
	"context"

	"gear-rental/internal/domain"
	"gear-rental/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

const userCollection = "user"

// UserRepository defines the interface for user record access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	List(ctx context.Context, limit int64) ([]domain.User, error)
}

type userRepository struct {
	store store.Store
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	return r.store.Insert(ctx, userCollection, user)
}

func (r *userRepository) List(ctx context.Context, limit int64) ([]domain.User, error) {
	results := make([]domain.User, 0)
	if err := r.store.Query(ctx, userCollection, bson.M{}, limit, &results); err != nil {
		return nil, err
	}
	return results, nil
}
