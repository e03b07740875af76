// Package services contains application services for the user form client.
// This file defines ProfileService, the controller that keeps the form
// draft, its validation flags and the fetched user list consistent across
// create, edit and delete operations.
package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userform/internal/client/client"
	"github.com/dmitrijs2005/userform/internal/client/form"
	"github.com/dmitrijs2005/userform/internal/client/models"
	"github.com/dmitrijs2005/userform/internal/client/userlist"
	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/filex"
	"github.com/dmitrijs2005/userform/internal/logging"
)

// State is the controller's current activity.
type State string

const (
	StateIdle       State = "idle"
	StateListing    State = "listing"
	StateSubmitting State = "submitting"
	StateDeleting   State = "deleting"
)

// ValidationError lists every required field that blocked a submit.
type ValidationError struct {
	Fields []models.Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "form validation failed: " + strings.Join(names, ", ")
}

// Is makes errors.Is(err, common.ErrorValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

// Messages returns the inline hint of each invalid field.
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.Message()
	}
	return out
}

// ProfileService orchestrates the REST calls and reconciles the form and
// list stores after each of them.
//
// Operations are expected to be issued one at a time; the service tracks
// its State but does not reject overlapping calls. A list refresh that
// finishes after a newer one has been applied is discarded.
type ProfileService struct {
	client client.Client
	form   *form.Store
	users  *userlist.Store
	logger logging.Logger

	mu         sync.Mutex
	state      State
	selectedID string
	visible    bool
	imageFile  string
}

// NewProfileService constructs the controller over the given API client.
func NewProfileService(c client.Client, logger logging.Logger) *ProfileService {
	return &ProfileService{
		client: c,
		form:   form.NewStore(),
		users:  userlist.NewStore(),
		logger: logger.With("module", "profile_service"),
		state:  StateIdle,
	}
}

// Form exposes the form state store.
func (s *ProfileService) Form() *form.Store { return s.form }

// Users exposes the list store.
func (s *ProfileService) Users() *userlist.Store { return s.users }

func (s *ProfileService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectedUserID returns the id being edited; "" means create mode.
func (s *ProfileService) SelectedUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

func (s *ProfileService) FormVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// ImageFile is the name of the last image file chosen for the draft, the
// equivalent of a file input's visible value.
func (s *ProfileService) ImageFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageFile
}

// SubmitLabel is the caption of the submit action for the current mode.
func (s *ProfileService) SubmitLabel() string {
	if s.SelectedUserID() != "" {
		return "Update Data"
	}
	return "Submit"
}

// ToggleLabel is the caption of the add/hide action.
func (s *ProfileService) ToggleLabel() string {
	if s.FormVisible() {
		return "Hide Form"
	}
	return "Add User"
}

func (s *ProfileService) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// FetchUsers refreshes the list store. On failure the previous snapshot is
// kept and the error is returned.
func (s *ProfileService) FetchUsers(ctx context.Context) error {
	s.setState(StateListing)
	defer s.setState(StateIdle)

	seq := s.users.Begin()
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to fetch user data", "error", err)
		return err
	}

	if !s.users.ReplaceIfLatest(seq, users) {
		s.logger.Debug(ctx, "Discarded stale user list", "seq", seq)
		return nil
	}
	s.logger.Debug(ctx, "User list refreshed", "count", len(users))
	return nil
}

// Submit validates the whole draft and creates or updates the record.
//
// A draft with invalid fields returns *ValidationError without any request.
// On success the draft, its flags, the selection and the chosen image file
// are cleared, the list is refreshed and the form is closed. On failure
// nothing changes, so the user can retry.
func (s *ProfileService) Submit(ctx context.Context) error {
	if !s.form.Validate() {
		verr := &ValidationError{Fields: s.form.Validation().InvalidFields()}
		s.logger.Warn(ctx, "Form validation failed", "fields", verr.Fields)
		return verr
	}

	s.setState(StateSubmitting)
	defer s.setState(StateIdle)

	payload := s.form.Draft().Payload()
	id := s.SelectedUserID()

	var err error
	if id != "" {
		err = s.client.UpdateUser(ctx, id, payload)
	} else {
		err = s.client.CreateUser(ctx, payload)
	}
	if err != nil {
		if id != "" {
			s.logger.Error(ctx, "Update failed", "id", id, "error", err)
		} else {
			s.logger.Error(ctx, "Form submission failed", "error", err)
		}
		return err
	}

	if id != "" {
		s.logger.Info(ctx, "Update successful", "id", id)
	} else {
		s.logger.Info(ctx, "Form submission successful")
	}

	s.form.Reset()
	s.form.ClearValidation()

	s.mu.Lock()
	s.selectedID = ""
	s.imageFile = ""
	s.mu.Unlock()

	// the mutation itself succeeded; a failed refresh is only reported
	_ = s.FetchUsers(ctx)

	s.mu.Lock()
	s.visible = false
	s.mu.Unlock()

	return nil
}

// DeleteUser removes a record and refreshes the list on success.
func (s *ProfileService) DeleteUser(ctx context.Context, id string) error {
	s.setState(StateDeleting)
	defer s.setState(StateIdle)

	if err := s.client.DeleteUser(ctx, id); err != nil {
		s.logger.Error(ctx, "Failed to delete user", "id", id, "error", err)
		return err
	}
	s.logger.Info(ctx, "User deleted successfully", "id", id)

	_ = s.FetchUsers(ctx)
	return nil
}

// SelectForEdit loads u into the draft, switches to edit mode and opens the
// form.
func (s *ProfileService) SelectForEdit(u models.UserRecord) {
	s.form.Load(u)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = u.ID
	s.visible = true
}

// ToggleAddNew leaves edit mode and flips form visibility.
func (s *ProfileService) ToggleAddNew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
	s.visible = !s.visible
}

// SetImageFile reads an image from disk into the draft.
func (s *ProfileService) SetImageFile(ctx context.Context, path string) error {
	uri, err := filex.ReadDataURI(path)
	if err != nil {
		if errors.Is(err, common.ErrNoImage) {
			s.logger.Warn(ctx, "No image selected", "path", path)
		} else {
			s.logger.Warn(ctx, "Image could not be read", "path", path, "error", err)
		}
		return err
	}

	if err := s.form.SetImage(uri); err != nil {
		return fmt.Errorf("set image: %w", err)
	}

	s.mu.Lock()
	s.imageFile = filepath.Base(path)
	s.mu.Unlock()
	return nil
}

// SetField forwards an edit to the form store, reporting malformed input.
func (s *ProfileService) SetField(ctx context.Context, field models.Field, value any) error {
	if err := s.form.SetField(field, value); err != nil {
		s.logger.Warn(ctx, "Invalid field value", "field", field, "error", err)
		return err
	}
	return nil
}
