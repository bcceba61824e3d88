package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tictacnext/tictacnext/internal/config"
)

// Mongo is an explicit handle to the document store, created once at startup
// and passed to whoever needs it. There are no package-level connections.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes and verifies the connection described by cfg.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Mongo{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Close drains the connection. Safe to call once during shutdown.
func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
