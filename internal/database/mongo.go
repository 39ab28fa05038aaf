// Package database owns the MongoDB client for the process lifetime. The
// connection is opened once at startup and closed during graceful shutdown.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Service holds the shared Mongo client and the selected database.
type Service struct {
	client  *mongo.Client
	db      *mongo.Database
	urlSet  bool
	nameSet bool
}

// New connects to MongoDB using the given connection string and database
// name, and verifies the connection with a ping before returning.
func New(ctx context.Context, url, name string) (*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Service{
		client:  client,
		db:      client.Database(name),
		urlSet:  url != "",
		nameSet: name != "",
	}, nil
}

// Database returns the selected database handle.
func (s *Service) Database() *mongo.Database {
	return s.db
}

// Health reports connectivity status for the diagnostic endpoint. It never
// includes the connection string or database name, only whether they were
// set. Failures are summarized in the report instead of being returned, so
// the endpoint can respond even when the database is down.
func (s *Service) Health(ctx context.Context) map[string]any {
	report := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"database_url_set":  s.urlSet,
		"database_name_set": s.nameSet,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if s.client == nil {
		return report
	}
	report["database"] = "available"

	if err := s.client.Ping(ctx, nil); err != nil {
		report["database"] = fmt.Sprintf("available but unreachable: %v", err)
		return report
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		report["database"] = fmt.Sprintf("connected but error: %v", err)
		return report
	}
	if len(names) > 10 {
		names = names[:10]
	}
	report["database"] = "connected"
	report["connection_status"] = "connected"
	report["collections"] = names

	return report
}

// Close disconnects the client.
func (s *Service) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
