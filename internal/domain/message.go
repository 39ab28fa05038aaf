package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserIDRequired  = fmt.Errorf("%w: user_id is required", ErrValidation)
	ErrContentRequired = fmt.Errorf("%w: content is required", ErrValidation)
)

// Message is a customer message in the "message" collection.
type Message struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	UserID  string             `bson:"user_id"`
	Content string             `bson:"content"`
	IsRead  bool               `bson:"is_read"`
}

// NewMessage validates the required fields and returns an unread message.
func NewMessage(userID, content string) (*Message, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	return &Message{UserID: userID, Content: content, IsRead: false}, nil
}

// MessageView is the outward-facing projection of a Message record.
type MessageView struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Content string `json:"content"`
	IsRead  bool   `json:"is_read"`
}

// View projects the record into its public shape.
func (m *Message) View() MessageView {
	return MessageView{
		ID:      m.ID.Hex(),
		UserID:  m.UserID,
		Content: m.Content,
		IsRead:  m.IsRead,
	}
}
