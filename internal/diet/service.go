package diet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dailydiet/dailydiet/internal/models"
)

// ErrNotFound reports that a record does not exist for the caller. A record
// owned by another user surfaces the same way.
var ErrNotFound = errors.New("diet not found")

// Service wraps repository operations with business logic. The
// lookup-then-mutate flow in Update/Delete is not atomic against a
// concurrent delete of the same record; the second statement then simply
// affects zero rows.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Create inserts a new record owned by userID and returns it with the
// server-generated id and created_at.
func (s *Service) Create(ctx context.Context, userID, name, description string, isPartOfDiet bool, date, timeOfDay string) (*models.Meal, error) {
	m := &models.Meal{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		Description:  description,
		IsPartOfDiet: isPartOfDiet,
		Date:         date,
		Time:         timeOfDay,
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*models.Meal, error) {
	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]models.Meal, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update replaces the supplied fields on the caller's record. ErrNotFound
// when the record is absent or owned by someone else.
func (s *Service) Update(ctx context.Context, userID, id string, f UpdateFields) error {
	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}
	return s.repo.Update(ctx, userID, id, f)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) Summary(ctx context.Context, userID string) (*Summary, error) {
	return s.repo.Summary(ctx, userID)
}
