package repository

import (
	"context"
	"fmt"

	"gear-rental/internal/domain"
	"gear-rental/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const transactionCollection = "transaction"

// TransactionRepository defines the interface for rental order access.
type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) (string, error)
	List(ctx context.Context, userID string, status domain.Status, limit int64) ([]domain.Transaction, error)
}

type transactionRepository struct {
	store store.Store
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(s store.Store) TransactionRepository {
	return &transactionRepository{store: s}
}

// Create persists a rental order, assigns the store identifier onto the
// record and returns it as a hex string.
func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) (string, error) {
	id, err := r.store.Insert(ctx, transactionCollection, txn)
	if err != nil {
		return "", err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("parse assigned id %q: %w", id, err)
	}
	txn.ID = oid
	return id, nil
}

// List returns up to limit transactions, optionally filtered by exact
// user_id and status matches.
func (r *transactionRepository) List(ctx context.Context, userID string, status domain.Status, limit int64) ([]domain.Transaction, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	if status != "" {
		filter["status"] = status
	}

	results := make([]domain.Transaction, 0)
	if err := r.store.Query(ctx, transactionCollection, filter, limit, &results); err != nil {
		return nil, err
	}
	return results, nil
}
