package services

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/server/models"
	"github.com/dmitrijs2005/userform/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userform/internal/server/repositories/users"
)

func strptr(s string) *string { return &s }

func validInput() UserInput {
	return UserInput{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@example.com",
		PhoneNumber: "5551234",
		Birthday:    strptr("1990-02-28"),
		Gender:      "female",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
	}
}

func newMemService(t *testing.T) (*UserService, *repomanager.MemoryRepositoryManager) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	s := NewUserService(m)
	s.hash = func(p []byte, cost int) ([]byte, error) { return append([]byte("hashed:"), p...), nil }
	return s, m
}

func TestCreate_StoresUser(t *testing.T) {
	s, _ := newMemService(t)
	ctx := context.Background()

	in := validInput()
	in.Password = "pw"
	u, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "hashed:pw", u.PasswordHash)
	assert.Equal(t, "1990-02-28", u.Birthday)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, u.ID, list[0].ID)
}

func TestCreate_WithoutPassword(t *testing.T) {
	s, _ := newMemService(t)

	u, err := s.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "", u.PasswordHash)
}

func TestCreate_RealBcrypt(t *testing.T) {
	s := NewUserService(repomanager.NewMemoryRepositoryManager())

	in := validInput()
	in.Password = "correct horse"
	u, err := s.Create(context.Background(), in)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")))
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*UserInput)
		field string
		rule  string
	}{
		{name: "missing first name", edit: func(in *UserInput) { in.FirstName = "" }, field: "firstName", rule: "required"},
		{name: "bad email", edit: func(in *UserInput) { in.Email = "nope" }, field: "email", rule: "email"},
		{name: "null birthday", edit: func(in *UserInput) { in.Birthday = nil }, field: "birthday", rule: "required"},
		{name: "bad birthday", edit: func(in *UserInput) { in.Birthday = strptr("28.02.1990") }, field: "birthday", rule: "datetime"},
		{name: "unknown gender", edit: func(in *UserInput) { in.Gender = "other" }, field: "gender", rule: "oneof"},
		{name: "not an image", edit: func(in *UserInput) { in.Image = "data:text/plain;base64,AA==" }, field: "image", rule: "dataimage"},
		{name: "password too long", edit: func(in *UserInput) { in.Password = string(make([]byte, 73)) }, field: "password", rule: "max"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newMemService(t)
			in := validInput()
			tc.edit(&in)

			_, err := s.Create(context.Background(), in)

			require.ErrorIs(t, err, common.ErrorValidation)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []FieldError{{Field: tc.field, Rule: tc.rule}}, verr.Fields)
			assert.Contains(t, verr.Error(), tc.field)

			list, _ := m.Users().List(context.Background())
			assert.Empty(t, list)
		})
	}
}

func TestUpdate(t *testing.T) {
	s, _ := newMemService(t)
	ctx := context.Background()

	in := validInput()
	in.Password = "first"
	created, err := s.Create(ctx, in)
	require.NoError(t, err)

	t.Run("empty password keeps hash", func(t *testing.T) {
		in := validInput()
		in.FirstName = "Anna"
		u, err := s.Update(ctx, created.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "Anna", u.FirstName)
		assert.Equal(t, "hashed:first", u.PasswordHash)
	})

	t.Run("new password replaces hash", func(t *testing.T) {
		in := validInput()
		in.Password = "second"
		u, err := s.Update(ctx, created.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "hashed:second", u.PasswordHash)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.Update(ctx, "missing", validInput())
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		in := validInput()
		in.LastName = ""
		_, err := s.Update(ctx, created.ID, in)
		require.ErrorIs(t, err, common.ErrorValidation)
	})
}

func TestDelete(t *testing.T) {
	s, _ := newMemService(t)
	ctx := context.Background()

	u, err := s.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, u.ID))
	require.ErrorIs(t, s.Delete(ctx, u.ID), common.ErrorNotFound)
}

// ---- failure paths with a broken repository ----

type brokenRepo struct{ users.Repository }

var errDB = errors.New("db down")

func (brokenRepo) List(context.Context) ([]models.User, error) { return nil, errDB }
func (brokenRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, errDB
}
func (brokenRepo) GetForUpdate(context.Context, string) (*models.User, error) {
	return nil, errDB
}
func (brokenRepo) Delete(context.Context, string) error { return errDB }

type brokenManager struct{}

func (brokenManager) Users() users.Repository { return brokenRepo{} }
func (brokenManager) WithinTx(ctx context.Context, fn func(context.Context, users.Repository) error) error {
	return fn(ctx, brokenRepo{})
}
func (brokenManager) Close(context.Context) error { return nil }

func TestRepositoryErrorsAreWrapped(t *testing.T) {
	s := NewUserService(brokenManager{})
	ctx := context.Background()

	_, err := s.List(ctx)
	require.ErrorIs(t, err, errDB)

	_, err = s.Create(ctx, validInput())
	require.ErrorIs(t, err, errDB)
	assert.Contains(t, err.Error(), "error creating user")

	_, err = s.Update(ctx, "x", validInput())
	require.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	err = s.Delete(ctx, "x")
	require.ErrorIs(t, err, errDB)
}

func TestCreate_HashError(t *testing.T) {
	s, _ := newMemService(t)
	s.hash = func([]byte, int) ([]byte, error) { return nil, errors.New("no entropy") }

	in := validInput()
	in.Password = "pw"
	_, err := s.Create(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error hashing password")
}

func TestMustRegister(t *testing.T) {
	v := validator.New()

	assert.NotPanics(t, func() { mustRegister(v, "dataimage", isDataImage) })
	assert.Panics(t, func() {
		mustRegister(v, "", isDataImage)
	})
}
