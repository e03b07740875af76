package users

import (
	"context"

	"github.com/dmitrijs2005/userform/internal/server/models"
)

// Repository stores user profiles. Lookups of unknown ids return
// common.ErrorNotFound. List returns users in insertion order.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	// GetForUpdate is Get that also locks the record for the rest of the
	// surrounding transaction, where the storage supports it.
	GetForUpdate(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
