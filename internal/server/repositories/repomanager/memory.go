package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userform/internal/server/repositories/users"
)

type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	txMu  sync.Mutex
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m.users)
}

func (m *MemoryRepositoryManager) Close(ctx context.Context) error {
	return nil
}
