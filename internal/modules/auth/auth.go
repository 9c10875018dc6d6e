package auth

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials is returned for any email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDisabled is returned when no admin account is configured.
	ErrDisabled = errors.New("admin login is not configured")
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login checks admin credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Verify parses a bearer token and returns the admin email it was issued to.
	Verify(token string) (string, error)
}
