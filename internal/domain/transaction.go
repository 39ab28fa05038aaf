package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrGearIDRequired  = fmt.Errorf("%w: gear_id is required", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	ErrInvalidDays     = fmt.Errorf("%w: days must be at least 1", ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid transaction status", ErrValidation)
)

// Status is the lifecycle state of a rental transaction. Transactions are
// always created as StatusPending; no transition endpoint exists in this
// service, so the remaining states are reserved for future payment logic.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// TransactionItem is one rental line inside a transaction. It exists only
// embedded in a Transaction and holds a weak reference to a Gear record.
type TransactionItem struct {
	GearID   string `bson:"gear_id" json:"gear_id"`
	Quantity int    `bson:"quantity" json:"quantity"`
	Days     int    `bson:"days" json:"days"`
}

// NewTransactionItem validates a rental line. A zero quantity or days means
// the field was omitted and defaults to 1.
func NewTransactionItem(gearID string, quantity, days int) (TransactionItem, error) {
	if gearID == "" {
		return TransactionItem{}, ErrGearIDRequired
	}
	if quantity == 0 {
		quantity = 1
	}
	if days == 0 {
		days = 1
	}
	if quantity < 1 {
		return TransactionItem{}, ErrInvalidQuantity
	}
	if days < 1 {
		return TransactionItem{}, ErrInvalidDays
	}
	return TransactionItem{GearID: gearID, Quantity: quantity, Days: days}, nil
}

// Transaction is a rental order as stored in the "transaction" collection.
// TotalAmount is computed at creation time from the referenced gear prices
// and is a snapshot: it is never recomputed when prices change later.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Items       []TransactionItem  `bson:"items"`
	TotalAmount float64            `bson:"total_amount"`
	Status      Status             `bson:"status"`
}

// TransactionView is the outward-facing projection of a Transaction.
type TransactionView struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Items       []TransactionItem `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	Status      Status            `json:"status"`
}

// View projects the record into its public shape.
func (t *Transaction) View() TransactionView {
	return TransactionView{
		ID:          t.ID.Hex(),
		UserID:      t.UserID,
		Items:       t.Items,
		TotalAmount: t.TotalAmount,
		Status:      t.Status,
	}
}
