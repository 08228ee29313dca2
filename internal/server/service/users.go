package service

import (
	"context"
	"errors"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/cryptox"
	"github.com/acadeval/encuestas/pkg/idx"
)

// ErrUsernameTaken maps a store conflict on the username column.
var ErrUsernameTaken = errors.New("username_taken")

type UserService struct {
	Store store.Store
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Create hashes the plaintext password and inserts the user under a fresh id.
func (s *UserService) Create(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// Update replaces username, password and role. The password always arrives as
// plaintext and is re-hashed here.
func (s *UserService) Update(ctx context.Context, id, username, password string, role domain.Role) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Store.Users().UpdateUser(ctx, id, username, hash, role); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.Store.Users().SoftDeleteUser(ctx, id)
}
