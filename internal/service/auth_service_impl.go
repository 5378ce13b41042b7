package service

import (
	"context"
	"errors"

	"github.com/ingcor/backend/internal/model"
	"github.com/ingcor/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	users repository.UserRepository
}

// NewAuthService creates an AuthService backed by the given user repository.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authServiceImpl{users: users}
}

// Login verifies the email/password pair with bcrypt. Unknown accounts and
// wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns the account for a verified session.
func (s *authServiceImpl) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

// HashPassword produces a bcrypt hash for seeding admin accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
