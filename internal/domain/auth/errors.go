package auth

import "errors"

var (
	// ErrInvalidCredentials is a login rejection. Recovered locally; any
	// prior session stays untouched.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated is an upstream 401 on any call: the token is
	// missing, expired, or revoked. Propagates to the global session-clear
	// and redirect-to-login path.
	ErrUnauthenticated = errors.New("authentication rejected by upstream")

	// ErrForbidden is an upstream 403: authenticated but the server-side
	// role check failed. Surfaced per call, never clears the session.
	ErrForbidden = errors.New("insufficient role for upstream resource")

	ErrSessionAbsent = errors.New("no active session")
)
