package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes a connection to the document database and verifies it
// with a ping. The returned handle is safe for concurrent use; callers own
// the disconnect (see Disconnect).
func Connect(ctx context.Context, cfg Config) (*mongo.Database, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeoutDuration).
		SetServerSelectionTimeout(timeoutDuration)

	connectCtx, cancel := context.WithTimeout(ctx, timeoutDuration)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connect is lazy; ping to surface auth/connectivity errors before any
	// destructive sync phase starts
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return client.Database(cfg.Name), nil
}

// Disconnect closes the underlying client of a connected database handle.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}
