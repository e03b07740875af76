package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/userform/internal/client/models"
	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/netx"
	"github.com/google/uuid"
)

// HTTPClient talks to the user API over HTTP/JSON. Every request carries a
// fresh X-Request-ID so client and server logs can be correlated.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the server at baseURL (scheme and host,
// optionally a path prefix). A zero timeout means no per-request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the normalised server root.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	var users []models.UserRecord
	if err := c.do(ctx, http.MethodGet, common.ListUsersPath, nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []models.UserRecord{}
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, p models.Payload) error {
	if err := c.do(ctx, http.MethodPost, common.CreateUserPath, p, nil); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, p models.Payload) error {
	if err := c.do(ctx, http.MethodPut, common.UpdateUserPath+url.PathEscape(id), p, nil); err != nil {
		return fmt.Errorf("update user %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, common.DeleteUserPath+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	h := http.Header{}
	h.Set(common.RequestIDHeaderName, uuid.NewString())

	err := netx.DoJSON(ctx, c.http, method, c.baseURL+path, h, body, out)
	if err == nil {
		return nil
	}

	var se *netx.StatusError
	if errors.As(err, &se) {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
