package auth

import (
	"context"
)

type AuthService interface {
	// Login verifies credentials against the upstream API and returns the
	// session to persist. It never writes client state itself.
	Login(ctx context.Context, req LoginRequest) (Session, error)

	// Logout notifies the upstream, best effort. Callers clear local
	// session state regardless of the returned error.
	Logout(ctx context.Context, token string) error
}
