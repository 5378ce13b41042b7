package service

import (
	"context"
	"errors"

	"github.com/ingcor/backend/internal/model"
)

// ErrInvalidCredentials is returned on a failed login. The handler shows the
// same message for unknown email and wrong password.
var ErrInvalidCredentials = errors.New("service: invalid credentials")

// AuthService authenticates admin panel logins.
type AuthService interface {
	// Login verifies the email/password pair and returns the account.
	Login(ctx context.Context, email, password string) (*model.User, error)

	// GetByID returns the account for a verified session.
	GetByID(ctx context.Context, id string) (*model.User, error)
}
