package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dailydiet/dailydiet/internal/dbx"
	"github.com/dailydiet/dailydiet/internal/models"
)

// Repository defines persistence operations for users
type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// PostgresRepository implements Repository on top of the users table
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository creates a repository bound to the given handle
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.User) error {
	query :=
		`INSERT INTO users (id, name, email)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, u.ID, u.Name, u.Email).Scan(&u.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when no user matches the id. The id column is
// uuid-typed, so a value that is not uuid-syntax can never match a row and
// would only make the store raise a type error.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query :=
		`SELECT id, name, email, created_at FROM users
		 WHERE id = $1
		 `

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}
