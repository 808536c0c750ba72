package diet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dailydiet/dailydiet/internal/dbx"
	"github.com/dailydiet/dailydiet/internal/models"
)

// UpdateFields carries the optional fields of a partial update. Nil
// pointers leave the stored value untouched.
type UpdateFields struct {
	Name         *string
	Description  *string
	IsPartOfDiet *bool
	Date         *string
	Time         *string
}

// Summary is the aggregate over one user's diet records.
type Summary struct {
	TotalMeals           int64        `json:"totalMeals"`
	TotalMealsPartOfDiet int64        `json:"totalMealsPartOfDiet"`
	TotalMealsOutOfDiet  int64        `json:"totalMealsOutOfDiet"`
	BestDietDay          *BestDietDay `json:"bestDietDay"`
}

// BestDietDay is the date with the most in-diet meals. Ties resolve to the
// lexicographically smallest date so the result is deterministic.
type BestDietDay struct {
	Date            string `json:"date"`
	TotalMealAmount int64  `json:"totalMealAmount"`
}

// Repository defines persistence operations for diet records. Every method
// that touches an existing row is scoped by user id; a row owned by another
// user behaves exactly like a missing row.
type Repository interface {
	Insert(ctx context.Context, m *models.Meal) error
	GetByID(ctx context.Context, userID, id string) (*models.Meal, error)
	ListByUser(ctx context.Context, userID string) ([]models.Meal, error)
	Update(ctx context.Context, userID, id string, f UpdateFields) error
	Delete(ctx context.Context, userID, id string) error
	Summary(ctx context.Context, userID string) (*Summary, error)
}

// PostgresRepository implements Repository on top of the diet table
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, m *models.Meal) error {
	query :=
		`INSERT INTO diet (id, "userId", name, description, "isPartOfDiet", date, time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		m.ID, m.UserID, m.Name, m.Description, m.IsPartOfDiet, m.Date, m.Time).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when no record matches (id, userID). The id
// comes straight from the request path; a non-uuid value can never match
// the uuid-typed column and would only make the store raise a type error.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Meal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query :=
		`SELECT id, "userId", name, description, "isPartOfDiet", date, time, created_at, updated_at
		 FROM diet
		 WHERE id = $1 AND "userId" = $2
		 `

	m := &models.Meal{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Description, &m.IsPartOfDiet,
		&m.Date, &m.Time, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// ListByUser returns the user's records in insertion order.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Meal, error) {
	query :=
		`SELECT id, "userId", name, description, "isPartOfDiet", date, time, created_at, updated_at
		 FROM diet
		 WHERE "userId" = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	meals := make([]models.Meal, 0)
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.IsPartOfDiet,
			&m.Date, &m.Time, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return meals, nil
}

// Update replaces the supplied fields and stamps updated_at. The caller is
// expected to have verified ownership via GetByID first.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, f UpdateFields) error {
	set := []string{"updated_at = now()"}
	args := []any{}
	i := 1

	add := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}
	if f.Name != nil {
		add("name", *f.Name)
	}
	if f.Description != nil {
		add("description", *f.Description)
	}
	if f.IsPartOfDiet != nil {
		add(`"isPartOfDiet"`, *f.IsPartOfDiet)
	}
	if f.Date != nil {
		add("date", *f.Date)
	}
	if f.Time != nil {
		add("time", *f.Time)
	}

	query := fmt.Sprintf(
		`UPDATE diet SET %s WHERE id = $%d AND "userId" = $%d`,
		strings.Join(set, ", "), i, i+1)
	args = append(args, id, userID)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM diet WHERE id = $1 AND "userId" = $2`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Summary composes the four scoped aggregate queries. BestDietDay is nil
// when the user has no in-diet records.
func (r *PostgresRepository) Summary(ctx context.Context, userID string) (*Summary, error) {
	s := &Summary{}

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(id) FROM diet WHERE "userId" = $1`, userID).Scan(&s.TotalMeals)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(id) FROM diet WHERE "userId" = $1 AND "isPartOfDiet" = true`, userID).Scan(&s.TotalMealsPartOfDiet)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(id) FROM diet WHERE "userId" = $1 AND "isPartOfDiet" = false`, userID).Scan(&s.TotalMealsOutOfDiet)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	best := &BestDietDay{}
	err = r.db.QueryRowContext(ctx,
		`SELECT date, COUNT(id) AS "totalMealAmount"
		 FROM diet
		 WHERE "userId" = $1 AND "isPartOfDiet" = true
		 GROUP BY date
		 ORDER BY "totalMealAmount" DESC, date ASC
		 LIMIT 1`, userID).Scan(&best.Date, &best.TotalMealAmount)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("db error: %w", err)
		}
	} else {
		s.BestDietDay = best
	}

	return s, nil
}
