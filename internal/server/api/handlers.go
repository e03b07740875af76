package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/server/models"
	"github.com/dmitrijs2005/userform/internal/server/services"
)

// maxBodyBytes bounds request bodies; images arrive inline as data URIs.
const maxBodyBytes = 10 << 20

// userResponse is the wire form of a user. The password hash never leaves
// the server.
type userResponse struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
	Gender      string `json:"gender"`
	Image       string `json:"image"`
}

func toResponse(u models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Birthday:    u.Birthday,
		Gender:      u.Gender,
		Image:       u.Image,
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	u, err := s.users.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(*u))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	u, err := s.users.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*u))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func decodeInput(w http.ResponseWriter, r *http.Request) (services.UserInput, bool) {
	var in services.UserInput

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return in, false
	}
	return in, true
}

// fail maps a service error to a status code.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, common.ErrorValidation):
		errorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		errorJSON(w, http.StatusNotFound, "user not found")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
