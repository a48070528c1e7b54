package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

// UpstreamAuth is the slice of the HR API client the auth service needs.
type UpstreamAuth interface {
	Login(ctx context.Context, email, password string) (auth.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type AuthServiceImpl struct {
	upstream UpstreamAuth
}

func NewAuthService(upstream UpstreamAuth) auth.AuthService {
	return &AuthServiceImpl{upstream: upstream}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.Session, error) {
	res, err := a.upstream.Login(ctx, req.Email, req.Password)
	if err != nil {
		return auth.Session{}, err
	}

	res.User.Role = user.ParseRole(string(res.User.Role))
	sess := auth.Session{Token: res.Token, User: res.User}
	if !sess.Valid() {
		// A token without a usable profile (or the reverse) is worthless
		// for policy checks; refuse to persist it.
		return auth.Session{}, fmt.Errorf("upstream returned an incomplete session for %q", req.Email)
	}
	return sess, nil
}

// Logout implements auth.AuthService. Failures are logged, not returned as
// fatal: local session clearing must proceed regardless.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if err := a.upstream.Logout(ctx, token); err != nil {
		slog.Warn("upstream logout failed, clearing local session anyway", "error", err)
		return err
	}
	return nil
}
