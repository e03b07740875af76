package repomanager

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/userform/internal/server/repositories/users"
)

// MongoRepositoryManager vends MongoDB-backed repositories. Updates replace
// single documents, so WithinTx only serializes callers in this process.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  *users.MongoRepository
	txMu   sync.Mutex
}

// OpenMongo connects to uri and checks the connection.
func OpenMongo(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	return &MongoRepositoryManager{
		client: client,
		users:  users.NewMongoRepository(client.Database(database)),
	}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m.users)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
