package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/dailydiet/dailydiet/internal/models"
)

// Service encapsulates user-related business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Register creates a new user with a server-generated id. The returned id
// is what the handler binds to the session cookie.
func (s *Service) Register(ctx context.Context, name, email string) (*models.User, error) {
	u := &models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
