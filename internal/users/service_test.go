package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dailydiet/dailydiet/internal/models"
)

type fakeRepo struct {
	lastCreate *models.User
	createErr  error
}

func (f *fakeRepo) Create(ctx context.Context, u *models.User) error {
	f.lastCreate = u
	// simulate the DEFAULT now() the insert returns
	u.CreatedAt = time.Now().UTC()
	return f.createErr
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func TestRegister(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil {
		t.Fatal("expected user, got nil")
	}
	if u.ID == "" {
		t.Fatal("expected server-generated id")
	}
	if u.Name != "Alice" || u.Email != "alice@example.com" {
		t.Fatalf("unexpected user fields: %+v", u)
	}
	if repo.lastCreate == nil {
		t.Fatal("expected repository Create to be called")
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	// each registration gets a distinct id
	u2, err := svc.Register(ctx, "Bob", "bob@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u2.ID == u.ID {
		t.Fatalf("expected unique ids, got %q twice", u.ID)
	}
}

func TestRegister_RepoError(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("insert failed")}
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), "Alice", "alice@example.com")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if u != nil {
		t.Fatalf("expected nil user on error, got %+v", u)
	}
}
