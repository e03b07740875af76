// Package repomanager opens the configured storage backend and vends its
// repositories.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userform/internal/server/config"
	"github.com/dmitrijs2005/userform/internal/server/repositories/users"
)

// RepositoryManager hands out repositories of one storage backend.
type RepositoryManager interface {
	Users() users.Repository
	// WithinTx runs fn with a repository whose reads and writes form one
	// unit. Backends without transactions serialize fn calls instead.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error
	Close(ctx context.Context) error
}

// New opens the backend named by cfg.Storage.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.Storage {
	case config.StorageMemory, "":
		return NewMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		return OpenPostgres(ctx, cfg.DatabaseDSN)
	case config.StorageMongo:
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
