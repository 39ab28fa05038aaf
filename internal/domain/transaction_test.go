package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionItem_Defaults(t *testing.T) {
	item, err := NewTransactionItem("G1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 1, item.Days)
}

func TestNewTransactionItem_Bounds(t *testing.T) {
	_, err := NewTransactionItem("", 1, 1)
	assert.True(t, errors.Is(err, ErrGearIDRequired))

	_, err = NewTransactionItem("G1", -1, 1)
	assert.True(t, errors.Is(err, ErrInvalidQuantity))

	_, err = NewTransactionItem("G1", 1, -2)
	assert.True(t, errors.Is(err, ErrInvalidDays))
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusPaid.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())
}

func TestNewUser_IsActiveByDefault(t *testing.T) {
	user, err := NewUser("Ana", "ana@example.com", "", "", "")
	require.NoError(t, err)
	assert.True(t, user.IsActive)
}

func TestNewMessage_UnreadByDefault(t *testing.T) {
	msg, err := NewMessage("U1", "hello")
	require.NoError(t, err)
	assert.False(t, msg.IsRead)

	_, err = NewMessage("", "hello")
	assert.True(t, errors.Is(err, ErrUserIDRequired))

	_, err = NewMessage("U1", "")
	assert.True(t, errors.Is(err, ErrContentRequired))
}
