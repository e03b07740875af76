// Package form holds the draft of the user record being created or edited
// together with its per-field validation flags.
//
// Two validation passes exist. SetField re-evaluates only the edited field;
// Validate re-evaluates every required field at once and replaces the whole
// flag set.
package form

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/userform/internal/client/models"
	"github.com/dmitrijs2005/userform/internal/common"
)

type Store struct {
	mu         sync.Mutex
	draft      models.FormDraft
	validation Validation
}

func NewStore() *Store {
	return &Store{validation: newValidation()}
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() models.FormDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Validation returns a copy of the current flags.
func (s *Store) Validation() Validation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validation.clone()
}

// BirthdayDate returns the draft birthday as a structured date, false when
// unset.
func (s *Store) BirthdayDate() (models.Date, bool) {
	s.mu.Lock()
	b := s.draft.Birthday
	s.mu.Unlock()

	if b == "" {
		return models.Date{}, false
	}
	d, err := models.ParseDate(b)
	if err != nil {
		return models.Date{}, false
	}
	return d, true
}

// SetField stores a field value and re-evaluates that field's flag.
//
// Birthday accepts time.Time, models.Date or a string; the stored value is
// YYYY-MM-DD and the flag is cleared. Password is stored without a flag.
// Every other field accepts string, models.Gender or nil (stored as ""), and
// is flagged when the value is empty or nil.
func (s *Store) SetField(field models.Field, value any) error {
	if !field.Known() {
		return fmt.Errorf("%w: %q", common.ErrUnknownField, field)
	}

	if field == models.FieldBirthday {
		return s.setBirthday(value)
	}

	var text string
	switch v := value.(type) {
	case nil:
	case string:
		text = v
	case models.Gender:
		text = string(v)
	default:
		return fmt.Errorf("%w: %T for %s", common.ErrInvalidInput, value, field)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.assign(field, text)
	if field.IsRequired() {
		s.validation[field] = text == ""
	}
	return nil
}

func (s *Store) setBirthday(value any) error {
	var formatted string
	switch v := value.(type) {
	case time.Time:
		formatted = models.DateOf(v).String()
	case models.Date:
		formatted = v.String()
	case string:
		formatted = models.TrimTime(v)
	default:
		return fmt.Errorf("%w: %T for %s", common.ErrInvalidInput, value, models.FieldBirthday)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Birthday = formatted
	s.validation[models.FieldBirthday] = false
	return nil
}

// SetImage stores an image given as a data URI.
func (s *Store) SetImage(dataURI string) error {
	if dataURI == "" {
		return common.ErrNoImage
	}
	if !strings.HasPrefix(dataURI, "data:") {
		return fmt.Errorf("%w: image must be a data URI", common.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Image = dataURI
	s.validation[models.FieldImage] = false
	return nil
}

// Validate runs the wholesale pass and reports whether the draft may be
// submitted.
func (s *Store) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.validation = validateDraft(s.draft)
	return s.validation.Valid()
}

// Reset empties the draft. Validation flags are left as they are.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = models.FormDraft{}
}

// ClearValidation marks every field valid.
func (s *Store) ClearValidation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validation = newValidation()
}

// Load replaces the draft with the editable fields of u and an empty
// password.
func (s *Store) Load(u models.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = models.DraftFromRecord(u)
}

func (s *Store) assign(field models.Field, v string) {
	switch field {
	case models.FieldFirstName:
		s.draft.FirstName = v
	case models.FieldLastName:
		s.draft.LastName = v
	case models.FieldEmail:
		s.draft.Email = v
	case models.FieldPassword:
		s.draft.Password = v
	case models.FieldPhoneNumber:
		s.draft.PhoneNumber = v
	case models.FieldGender:
		s.draft.Gender = models.Gender(v)
	case models.FieldImage:
		s.draft.Image = v
	}
}
