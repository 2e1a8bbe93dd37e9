package service

import (
	"context"
	"fmt"

	"techsphere/internal/models"
	"techsphere/internal/repository"
)

// ProfileService reads and overwrites the caller's own user record. The
// record is fetched fresh on every call; nothing is cached in the session.
type ProfileService struct {
	users repository.Users
}

func NewProfileService(users repository.Users) *ProfileService {
	return &ProfileService{users: users}
}

// Get returns the user record for the given username.
func (s *ProfileService) Get(ctx context.Context, username string) (models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// Update overwrites full name, email and password for the record keyed by
// username. A zero-row update surfaces as ErrUserNotFound.
func (s *ProfileService) Update(ctx context.Context, username string, p ProfileParams) error {
	hash, err := hashPassword(p.Password)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	matched, err := s.users.Update(ctx, username, p.FullName, p.Email, hash)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrUserNotFound
	}
	return nil
}
