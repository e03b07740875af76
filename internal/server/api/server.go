// Package api exposes the user service over the REST contract consumed by
// the client: /api/user/getUsers, /register, /updateUser/{id} and
// /deleteUser/{id}.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/logging"
	"github.com/dmitrijs2005/userform/internal/server/models"
	"github.com/dmitrijs2005/userform/internal/server/services"
)

// UserService is the part of services.UserService used by the handlers.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, in services.UserInput) (*models.User, error)
	Update(ctx context.Context, id string, in services.UserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// Server serves the user API.
type Server struct {
	users       UserService
	logger      logging.Logger
	corsOrigins []string
}

func NewServer(us UserService, l logging.Logger, corsOrigins []string) *Server {
	return &Server{
		users:       us,
		logger:      l.With("module", "http_server"),
		corsOrigins: corsOrigins,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", common.RequestIDHeaderName},
		MaxAge:         300,
	}))

	r.Route(common.UserAPIBasePath, func(r chi.Router) {
		r.Get("/getUsers", s.handleList)
		r.Post("/register", s.handleRegister)
		r.Put("/updateUser/{id}", s.handleUpdate)
		r.Delete("/deleteUser/{id}", s.handleDelete)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
