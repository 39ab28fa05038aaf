package service

import (
	"context"

	"gear-rental/internal/domain"
	"gear-rental/internal/repository"
)

// MessageService defines the interface for customer messages.
type MessageService interface {
	CreateMessage(ctx context.Context, userID, content string) (string, error)
	ListMessages(ctx context.Context, userID string, limit int64) ([]domain.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) CreateMessage(ctx context.Context, userID, content string) (string, error) {
	msg, err := domain.NewMessage(userID, content)
	if err != nil {
		return "", err
	}
	return s.messageRepo.Create(ctx, msg)
}

func (s *messageService) ListMessages(ctx context.Context, userID string, limit int64) ([]domain.Message, error) {
	return s.messageRepo.List(ctx, userID, limit)
}
