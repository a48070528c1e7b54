package auth

import "github.com/hrsystem/hr-gateway/internal/domain/user"

// Session is the client-held proof of authentication: the bearer token the
// upstream API issued plus the cached identity that came with it. A session
// is either whole or absent: anything missing its token or a usable role
// is discarded at load time rather than surfaced as a partial value.
type Session struct {
	Token string       `json:"token"`
	User  user.Profile `json:"user"`
}

// Valid reports whether the session satisfies the wholeness invariant.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != "" && s.User.Role.Known()
}
