package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userform/internal/server/config"
	"github.com/dmitrijs2005/userform/internal/server/models"
	"github.com/dmitrijs2005/userform/internal/server/repositories/users"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNew_SelectsBackend(t *testing.T) {
	m, err := New(context.Background(), &config.Config{Storage: config.StorageMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepositoryManager{}, m)

	_, err = New(context.Background(), &config.Config{Storage: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown storage "redis"`)
}

func TestMemoryManager_WithinTx(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepositoryManager()

	err := m.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		_, err := repo.Create(ctx, &models.User{FirstName: "Ann"})
		return err
	})
	require.NoError(t, err)

	list, err := m.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, m.Close(ctx))
}

func TestPostgresManager_Users(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager(db)
	var _ RepositoryManager = m
	assert.IsType(t, &users.PostgresRepository{}, m.Users())
}

func TestPostgresManager_WithinTx(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock := newDB(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		m := NewPostgresRepositoryManager(db)
		err := m.WithinTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
			assert.IsType(t, &users.PostgresRepository{}, repo)
			return nil
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback", func(t *testing.T) {
		db, mock := newDB(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		m := NewPostgresRepositoryManager(db)
		err := m.WithinTx(context.Background(), func(ctx context.Context, repo users.Repository) error {
			return errors.New("boom")
		})
		require.EqualError(t, err, "boom")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrations(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, NewPostgresRepositoryManager(db).RunMigrations(context.Background()))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("migrate fail")
	}
	require.EqualError(t, NewPostgresRepositoryManager(db).RunMigrations(context.Background()), "migrate fail")
}
