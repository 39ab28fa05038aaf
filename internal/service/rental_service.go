package service

import (
	"context"
	"errors"
	"fmt"

	"gear-rental/internal/domain"
	"gear-rental/internal/repository"
)

var (
	ErrNoItems = fmt.Errorf("%w: transaction requires at least one item", domain.ErrValidation)
)

// GearNotFoundError reports which gear reference in a transaction request
// could not be resolved.
type GearNotFoundError struct {
	GearID string
}

func (e *GearNotFoundError) Error() string {
	return fmt.Sprintf("gear %q not found", e.GearID)
}

func (e *GearNotFoundError) Unwrap() error {
	return repository.ErrGearNotFound
}

// RentalService defines the interface for the rental transaction workflow.
type RentalService interface {
	CreateTransaction(ctx context.Context, userID string, items []domain.TransactionItem) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, status domain.Status, limit int64) ([]domain.Transaction, error)
}

type rentalService struct {
	gearRepo repository.GearRepository
	txnRepo  repository.TransactionRepository
}

// NewRentalService creates a new instance of RentalService.
func NewRentalService(gearRepo repository.GearRepository, txnRepo repository.TransactionRepository) RentalService {
	return &rentalService{
		gearRepo: gearRepo,
		txnRepo:  txnRepo,
	}
}

// CreateTransaction prices a rental order and persists it with status
// pending. Every gear reference is resolved, in input order, before anything
// is written: a single unresolvable reference aborts the whole operation and
// leaves the store untouched. The total is a snapshot of current prices and
// is never recomputed afterwards.
//
// Submitting the same request twice creates two independent transactions;
// there is no idempotency key and no stock reservation.
func (s *rentalService) CreateTransaction(ctx context.Context, userID string, items []domain.TransactionItem) (*domain.Transaction, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	// Accumulation order is fixed to the submitted item order so totals are
	// reproducible.
	var total float64
	for _, item := range items {
		gear, err := s.gearRepo.FindByID(ctx, item.GearID)
		if err != nil {
			if errors.Is(err, repository.ErrGearNotFound) {
				return nil, &GearNotFoundError{GearID: item.GearID}
			}
			return nil, fmt.Errorf("resolve gear %s: %w", item.GearID, err)
		}
		total += gear.PricePerDay * float64(item.Quantity) * float64(item.Days)
	}

	txn := &domain.Transaction{
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      domain.StatusPending,
	}

	if _, err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns up to limit transactions filtered by exact
// user_id and status matches; empty filters match everything.
func (s *rentalService) ListTransactions(ctx context.Context, userID string, status domain.Status, limit int64) ([]domain.Transaction, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.txnRepo.List(ctx, userID, status, limit)
}
