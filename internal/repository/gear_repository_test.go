package repository

import (
	"context"
	"errors"
	"testing"

	"gear-rental/internal/domain"
	"gear-rental/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore records calls and plays back canned results, so repository
// behavior can be tested without a running database.
type fakeStore struct {
	insertID  string
	insertErr error
	queryErr  error
	gears     []domain.Gear
	txns      []domain.Transaction

	lastCollection string
	lastFilter     bson.M
	lastLimit      int64
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	f.lastCollection = collection
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.insertID == "" {
		return primitive.NewObjectID().Hex(), nil
	}
	return f.insertID, nil
}

func (f *fakeStore) Query(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	f.lastCollection = collection
	f.lastFilter = filter
	f.lastLimit = limit
	if f.queryErr != nil {
		return f.queryErr
	}
	switch v := out.(type) {
	case *[]domain.Gear:
		*v = append(*v, f.gears...)
	case *[]domain.Transaction:
		*v = append(*v, f.txns...)
	}
	return nil
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) Collections(ctx context.Context) ([]string, error) { return nil, nil }

func TestGearRepository_FindByID_InvalidHex(t *testing.T) {
	repo := NewGearRepository(&fakeStore{})

	_, err := repo.FindByID(context.Background(), "not-a-hex-id")
	assert.True(t, errors.Is(err, ErrGearNotFound))
}

func TestGearRepository_FindByID_NoMatch(t *testing.T) {
	repo := NewGearRepository(&fakeStore{})

	_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, ErrGearNotFound))
}

func TestGearRepository_FindByID_QueriesByIdentifier(t *testing.T) {
	oid := primitive.NewObjectID()
	fs := &fakeStore{gears: []domain.Gear{{ID: oid, Title: "Tent", PricePerDay: 12}}}
	repo := NewGearRepository(fs)

	gear, err := repo.FindByID(context.Background(), oid.Hex())
	require.NoError(t, err)

	assert.Equal(t, "Tent", gear.Title)
	assert.Equal(t, "gear", fs.lastCollection)
	assert.Equal(t, bson.M{"_id": oid}, fs.lastFilter)
	assert.Equal(t, int64(1), fs.lastLimit)
}

func TestGearRepository_FindByID_StorageErrorPassesThrough(t *testing.T) {
	fs := &fakeStore{queryErr: store.ErrUnavailable}
	repo := NewGearRepository(fs)

	_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, store.ErrUnavailable))
	assert.False(t, errors.Is(err, ErrGearNotFound))
}

func TestGearRepository_List_CategoryFilter(t *testing.T) {
	fs := &fakeStore{}
	repo := NewGearRepository(fs)

	_, err := repo.List(context.Background(), "tenda", 20)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"category": "tenda"}, fs.lastFilter)
	assert.Equal(t, int64(20), fs.lastLimit)

	_, err = repo.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, bson.M{}, fs.lastFilter)
}

func TestGearRepository_List_EmptyResultIsNotAnError(t *testing.T) {
	repo := NewGearRepository(&fakeStore{})

	results, err := repo.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestTransactionRepository_Create_AssignsIdentifier(t *testing.T) {
	oid := primitive.NewObjectID()
	fs := &fakeStore{insertID: oid.Hex()}
	repo := NewTransactionRepository(fs)

	txn := &domain.Transaction{UserID: "U1", Status: domain.StatusPending}
	id, err := repo.Create(context.Background(), txn)
	require.NoError(t, err)

	assert.Equal(t, oid.Hex(), id)
	assert.Equal(t, oid, txn.ID)
	assert.Equal(t, "transaction", fs.lastCollection)
}

func TestTransactionRepository_List_Filters(t *testing.T) {
	fs := &fakeStore{}
	repo := NewTransactionRepository(fs)

	_, err := repo.List(context.Background(), "U1", domain.StatusPending, 0)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"user_id": "U1", "status": domain.StatusPending}, fs.lastFilter)

	_, err = repo.List(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, bson.M{}, fs.lastFilter)
}
