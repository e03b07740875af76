// Package services contains server-side business logic. This file implements
// UserService, which validates user profiles and stores them through the
// configured repository manager.
package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/server/models"
	"github.com/dmitrijs2005/userform/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userform/internal/server/repositories/users"
)

// UserInput is the body of register and update requests.
type UserInput struct {
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"omitempty,max=72"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Birthday    *string `json:"birthday" validate:"required,datetime=2006-01-02"`
	Gender      string  `json:"gender" validate:"required,oneof=male female"`
	Image       string  `json:"image" validate:"required,dataimage"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists every rejected field of a UserInput. It matches
// common.ErrorValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " (" + f.Rule + ")"
	}
	return "invalid user: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

// UserService implements the user CRUD operations behind the REST API.
type UserService struct {
	repomanager repomanager.RepositoryManager
	validate    *validator.Validate
	hash        func(password []byte, cost int) ([]byte, error)
}

// NewUserService constructs a UserService over m.
func NewUserService(m repomanager.RepositoryManager) *UserService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	mustRegister(v, "dataimage", isDataImage)

	return &UserService{
		repomanager: m,
		validate:    v,
		hash:        bcrypt.GenerateFromPassword,
	}
}

// mustRegister adds a custom rule; a failure is a programming error.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

func isDataImage(fl validator.FieldLevel) bool {
	return strings.HasPrefix(fl.Field().String(), "data:image/")
}

// List returns all users in creation order.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	list, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

// Create validates in and stores a new user. A non-empty password is stored
// as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	user := &models.User{}
	apply(user, in)

	if in.Password != "" {
		h, err := s.hash([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = string(h)
	}

	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Update replaces the profile of user id with in. An empty password keeps
// the stored hash.
func (s *UserService) Update(ctx context.Context, id string, in UserInput) (*models.User, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	var hash string
	if in.Password != "" {
		h, err := s.hash([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		hash = string(h)
	}

	var updated *models.User
	err := s.repomanager.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		user, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		apply(user, in)
		if hash != "" {
			user.PasswordHash = hash
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return updated, nil
}

// Delete removes user id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Users().Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

func (s *UserService) check(in UserInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

func apply(u *models.User, in UserInput) {
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = in.Email
	u.PhoneNumber = in.PhoneNumber
	u.Gender = in.Gender
	u.Image = in.Image
	if in.Birthday != nil {
		u.Birthday = *in.Birthday
	}
}
