package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"quickq-backend/internal/shared/telemetry"
)

// ErrNotConfigured is returned when no connection string is configured.
var ErrNotConfigured = errors.New("MONGODB_URI environment variable not set")

const (
	serverSelectionTimeout = 5 * time.Second
	connectTimeout         = 10 * time.Second
	socketTimeout          = 20 * time.Second
)

// Store owns a single lazily-connected MongoDB client. The driver pools
// connections internally, so one client is shared across all requests.
type Store struct {
	uri       string
	defaultDB string

	mu     sync.Mutex
	client *mongo.Client
}

// New constructs a Store. No connection is made until first use.
func New(uri, defaultDB string) *Store {
	return &Store{uri: uri, defaultDB: defaultDB}
}

// Client returns the shared client, connecting and pinging the primary on
// first use. Connection failures propagate to the caller.
func (s *Store) Client(ctx context.Context) (*mongo.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	if s.uri == "" {
		return nil, ErrNotConfigured
	}

	opts := options.Client().
		ApplyURI(s.uri).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	// The first ping doubles as a cheap health probe.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	telemetry.Info("mongodb.connected", map[string]any{"database": s.defaultDB})
	s.client = client
	return client, nil
}

// Database returns a handle scoped to the named logical database, or the
// configured default when name is empty.
func (s *Store) Database(ctx context.Context, name string) (*mongo.Database, error) {
	client, err := s.Client(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = s.defaultDB
	}
	return client.Database(name), nil
}

// Ping verifies the primary is reachable, connecting first if needed.
func (s *Store) Ping(ctx context.Context) error {
	client, err := s.Client(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx, readpref.Primary())
}

// Close tears down the client. Safe to call when never connected.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	if err != nil {
		return err
	}
	telemetry.Info("mongodb.closed", nil)
	return nil
}
