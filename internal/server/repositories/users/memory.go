package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/server/models"
)

// MemoryRepository keeps users in process memory. It is the default storage
// of the development server.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.User
	order []string
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]models.User),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}
	return users, nil
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = r.now()
	user.UpdatedAt = user.CreatedAt

	r.byID[user.ID] = *user
	r.order = append(r.order, user.ID)
	return user, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) GetForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.Get(ctx, id)
}

func (r *MemoryRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[user.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	user.CreatedAt = old.CreatedAt
	user.UpdatedAt = r.now()
	r.byID[user.ID] = *user
	return user, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
