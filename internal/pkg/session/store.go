package session

import (
	"crypto/sha256"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/pbkdf2"

	"github.com/hrsystem/hr-gateway/internal/config"
	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

const (
	valueToken = "token"
	valueUser  = "user"
)

// Store persists the session in a signed, encrypted cookie so it survives
// page loads without the gateway keeping any state of its own. Every write
// replaces the cookie wholesale; a reader sees either the previous session
// or the new one, never a mix.
//
// The route guard and scope filter only borrow read access through Load.
// The sole writers are login, logout, and the upstream-401 handler.
type Store struct {
	cookies *sessions.CookieStore
	name    string
}

func NewStore(cfg config.SessionConfig) *Store {
	// Independent salts keep the signing and encryption keys unrelated
	// even though both derive from the one configured secret.
	hashKey := pbkdf2.Key([]byte(cfg.Secret), []byte("hr-gateway/session-hash"), 4096, 32, sha256.New)
	blockKey := pbkdf2.Key([]byte(cfg.Secret), []byte("hr-gateway/session-block"), 4096, 32, sha256.New)

	cookies := sessions.NewCookieStore(hashKey, blockKey)
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	cookies.MaxAge(int(cfg.MaxAge.Seconds()))

	return &Store{cookies: cookies, name: cfg.CookieName}
}

// Load reads the session off the request cookie. Absent, corrupted,
// partial, and expired sessions all come back as nil; a bad cookie is
// indistinguishable from no cookie by design.
func (s *Store) Load(r *http.Request) *auth.Session {
	// A decode error still yields a usable empty session, which fails the
	// wholeness check below.
	cookieSession, _ := s.cookies.Get(r, s.name)

	token, _ := cookieSession.Values[valueToken].(string)
	rawUser, _ := cookieSession.Values[valueUser].(string)
	if token == "" || rawUser == "" {
		return nil
	}

	var profile user.Profile
	if err := json.Unmarshal([]byte(rawUser), &profile); err != nil {
		return nil
	}

	sess := &auth.Session{Token: token, User: profile}
	if !sess.Valid() {
		return nil
	}
	if tokenExpired(token) {
		return nil
	}
	return sess
}

// IsAuthenticated reports whether the request carries a whole session.
func (s *Store) IsAuthenticated(r *http.Request) bool {
	return s.Load(r) != nil
}

// Save replaces the persisted session. Prior contents are dropped, not
// merged, so a failed login can never leave a hybrid of two identities.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, sess auth.Session) error {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	cookieSession, _ := s.cookies.Get(r, s.name)
	cookieSession.Values = map[interface{}]interface{}{
		valueToken: sess.Token,
		valueUser:  string(rawUser),
	}
	return cookieSession.Save(r, w)
}

// Clear drops the session unconditionally. It never fails: expiring the
// cookie is all it takes, and that always succeeds locally.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) {
	cookieSession, _ := s.cookies.Get(r, s.name)
	cookieSession.Values = map[interface{}]interface{}{}
	cookieSession.Options.MaxAge = -1
	_ = cookieSession.Save(r, w)
}

// tokenExpired decodes the upstream token without verifying it, purely to
// notice expiry before wasting a round trip. The token stays opaque proof
// of authentication; verification is the upstream's job, and a token that
// does not parse as a JWT is simply trusted until the upstream says 401.
func tokenExpired(token string) bool {
	tok, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return false
	}
	exp := tok.Expiration()
	return !exp.IsZero() && time.Now().After(exp)
}
