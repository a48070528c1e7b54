package auth

import (
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResponse mirrors the upstream login payload: the token and the
// authenticated user's profile, returned directly by the backend.
type LoginResponse struct {
	Token string       `json:"token"`
	User  user.Profile `json:"user"`
}

// SessionResponse is what the gateway reports back to the frontend about
// the current session. The raw token never leaves the signed cookie.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *user.Profile `json:"user,omitempty"`
}
