package client

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userform/internal/client/models"
)

var (
	// ErrUnavailable wraps transport failures: the request never produced
	// an HTTP response.
	ErrUnavailable = errors.New("user API unavailable")
	// ErrInvalidBaseURL is returned for a base URL that is not absolute
	// http(s).
	ErrInvalidBaseURL = errors.New("invalid API base URL")
)

// Client is the contract of the user REST API.
type Client interface {
	ListUsers(ctx context.Context) ([]models.UserRecord, error)
	CreateUser(ctx context.Context, p models.Payload) error
	UpdateUser(ctx context.Context, id string, p models.Payload) error
	DeleteUser(ctx context.Context, id string) error
}
