package diet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailydiet/dailydiet/internal/models"
)

type fakeRepo struct {
	meals map[string]*models.Meal // keyed by id

	updateCalls int
	deleteCalls int
	getErr      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{meals: map[string]*models.Meal{}}
}

func (f *fakeRepo) Insert(ctx context.Context, m *models.Meal) error {
	m.CreatedAt = time.Now().UTC()
	cp := *m
	f.meals[m.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, userID, id string) (*models.Meal, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	m, ok := f.meals[id]
	if !ok || m.UserID != userID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]models.Meal, error) {
	out := make([]models.Meal, 0)
	for _, m := range f.meals {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, userID, id string, fields UpdateFields) error {
	f.updateCalls++
	m := f.meals[id]
	if fields.Name != nil {
		m.Name = *fields.Name
	}
	if fields.Description != nil {
		m.Description = *fields.Description
	}
	if fields.IsPartOfDiet != nil {
		m.IsPartOfDiet = *fields.IsPartOfDiet
	}
	if fields.Date != nil {
		m.Date = *fields.Date
	}
	if fields.Time != nil {
		m.Time = *fields.Time
	}
	now := time.Now().UTC()
	m.UpdatedAt = &now
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, userID, id string) error {
	f.deleteCalls++
	delete(f.meals, id)
	return nil
}

func (f *fakeRepo) Summary(ctx context.Context, userID string) (*Summary, error) {
	return &Summary{}, nil
}

func TestCreate_SetsIDAndOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	m, err := svc.Create(context.Background(), "user-1", "Lunch", "Salad", true, "2023-05-16", "12:30")
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	assert.Equal(t, "user-1", m.UserID)
	assert.Nil(t, m.UpdatedAt)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestGet_NotOwned(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	m, err := svc.Create(context.Background(), "user-1", "Lunch", "Salad", true, "2023-05-16", "12:30")
	require.NoError(t, err)

	// another user's id must look like a missing record
	_, err = svc.Get(context.Background(), "user-2", m.ID)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(context.Background(), "user-1", m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}

func TestUpdate_MissingRecordDoesNotMutate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	name := "Dinner"
	err := svc.Update(context.Background(), "user-1", "no-such-id", UpdateFields{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, repo.updateCalls, "update must not run without a successful lookup")
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	m, err := svc.Create(ctx, "user-1", "Lunch", "Salad", true, "2023-05-16", "12:30")
	require.NoError(t, err)

	name := "Brunch"
	require.NoError(t, svc.Update(ctx, "user-1", m.ID, UpdateFields{Name: &name}))

	got, err := svc.Get(ctx, "user-1", m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brunch", got.Name)
	assert.Equal(t, "Salad", got.Description, "absent fields stay unchanged")
	assert.NotNil(t, got.UpdatedAt)
}

func TestDelete_ThenGet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	m, err := svc.Create(ctx, "user-1", "Lunch", "Salad", false, "2023-05-16", "12:30")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", m.ID))
	_, err = svc.Get(ctx, "user-1", m.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// deleting again is a 404 as well
	require.ErrorIs(t, svc.Delete(ctx, "user-1", m.ID), ErrNotFound)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestUpdate_LookupErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("db down")
	svc := NewService(repo)

	err := svc.Update(context.Background(), "user-1", "id", UpdateFields{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
