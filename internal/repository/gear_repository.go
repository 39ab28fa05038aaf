package repository

import (
	"context"
	"errors"

	"gear-rental/internal/domain"
	"gear-rental/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrGearNotFound = errors.New("gear not found")
)

const gearCollection = "gear"

// GearRepository defines the interface for gear catalog access.
type GearRepository interface {
	Create(ctx context.Context, gear *domain.Gear) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Gear, error)
	List(ctx context.Context, category string, limit int64) ([]domain.Gear, error)
}

type gearRepository struct {
	store store.Store
}

// NewGearRepository creates a new instance of GearRepository.
func NewGearRepository(s store.Store) GearRepository {
	return &gearRepository{store: s}
}

// Create inserts a new catalog entry and returns its assigned identifier.
func (r *gearRepository) Create(ctx context.Context, gear *domain.Gear) (string, error) {
	return r.store.Insert(ctx, gearCollection, gear)
}

// FindByID resolves a gear record by its identifier. An identifier that is
// not a valid ObjectID hex cannot reference any stored record and is
// reported as ErrGearNotFound, the same as an absent one.
func (r *gearRepository) FindByID(ctx context.Context, id string) (*domain.Gear, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrGearNotFound
	}

	var results []domain.Gear
	if err := r.store.Query(ctx, gearCollection, bson.M{"_id": oid}, 1, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrGearNotFound
	}
	return &results[0], nil
}

// List returns up to limit catalog entries, optionally filtered by exact
// category match.
func (r *gearRepository) List(ctx context.Context, category string, limit int64) ([]domain.Gear, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	results := make([]domain.Gear, 0)
	if err := r.store.Query(ctx, gearCollection, filter, limit, &results); err != nil {
		return nil, err
	}
	return results, nil
}
