package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/dbx"
	"github.com/dmitrijs2005/userform/internal/server/models"
)

const userColumns = `id::text, first_name, last_name, email, password_hash, phone_number,
       to_char(birthday, 'YYYY-MM-DD'), gender, image, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber,
		&u.Birthday, &u.Gender, &u.Image, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (first_name, last_name, email, password_hash, phone_number, birthday, gender, image)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id::text, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.PhoneNumber, user.Birthday, user.Gender, user.Image,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, id, `SELECT `+userColumns+` FROM users WHERE id = $1`)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, id, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`)
}

func (r *PostgresRepository) get(ctx context.Context, id, query string) (*models.User, error) {
	// ids are UUIDs; anything else cannot name a row
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if _, err := uuid.Parse(user.ID); err != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`UPDATE users
		 SET first_name = $2, last_name = $3, email = $4, password_hash = $5,
		     phone_number = $6, birthday = $7, gender = $8, image = $9, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.PhoneNumber, user.Birthday, user.Gender, user.Image,
	).Scan(&user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
