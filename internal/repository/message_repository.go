package repository

import (
	"context"

	"gear-rental/internal/domain"
	"gear-rental/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

const messageCollection = "message"

// MessageRepository defines the interface for message record access.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (string, error)
	List(ctx context.Context, userID string, limit int64) ([]domain.Message, error)
}

type messageRepository struct {
	store store.Store
}

// NewMessageRepository creates a new instance of MessageRepository.
func NewMessageRepository(s store.Store) MessageRepository {
	return &messageRepository{store: s}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) (string, error) {
	return r.store.Insert(ctx, messageCollection, msg)
}

func (r *messageRepository) List(ctx context.Context, userID string, limit int64) ([]domain.Message, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	results := make([]domain.Message, 0)
	if err := r.store.Query(ctx, messageCollection, filter, limit, &results); err != nil {
		return nil, err
	}
	return results, nil
}
