package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNameRequired  = fmt.Errorf("%w: name is required", ErrValidation)
	ErrEmailRequired = fmt.Errorf("%w: email is required", ErrValidation)
)

// User is a customer record in the "user" collection.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Address   string             `bson:"address,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty"`
	IsActive  bool               `bson:"is_active"`
}

// NewUser validates the required fields and returns an active user record.
func NewUser(name, email, phone, address, avatarURL string) (*User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	return &User{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		AvatarURL: avatarURL,
		IsActive:  true,
	}, nil
}

// UserView is the outward-facing projection of a User record.
type UserView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// View projects the record into its public shape.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
	}
}
