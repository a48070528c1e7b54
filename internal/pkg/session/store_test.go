package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsystem/hr-gateway/internal/config"
	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

func newTestStore() *Store {
	return NewStore(config.SessionConfig{
		Secret:     "test-secret-key-for-sessions",
		CookieName: "hr_session",
		MaxAge:     time.Hour,
	})
}

func testSession() auth.Session {
	return auth.Session{
		Token: "opaque-token-123",
		User: user.Profile{
			ID:    "u-1",
			Email: "a@b.com",
			Role:  user.RoleEmployee,
		},
	}
}

// save writes the session through the store and returns a request carrying
// the resulting cookies, the way the browser would on the next page load.
func save(t *testing.T, store *Store, sess auth.Session) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, store.Save(rec, req, sess))

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	return next
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore()
	req := save(t, store, testSession())

	loaded := store.Load(req)
	require.NotNil(t, loaded)
	assert.Equal(t, "opaque-token-123", loaded.Token)
	assert.Equal(t, "a@b.com", loaded.User.Email)
	assert.Equal(t, user.RoleEmployee, loaded.User.Role)
	assert.True(t, store.IsAuthenticated(req))
}

func TestStore_AbsentWithoutCookie(t *testing.T) {
	store := newTestStore()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	assert.Nil(t, store.Load(req))
	assert.False(t, store.IsAuthenticated(req))
}

func TestStore_CorruptedCookieTreatedAsAbsent(t *testing.T) {
	store := newTestStore()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "hr_session", Value: "not-a-valid-session"})

	assert.Nil(t, store.Load(req))
}

func TestStore_TamperedCookieTreatedAsAbsent(t *testing.T) {
	store := newTestStore()
	req := save(t, store, testSession())

	// Re-read with a store keyed off a different secret, as after a
	// secret rotation.
	rotated := NewStore(config.SessionConfig{
		Secret:     "a-completely-different-secret",
		CookieName: "hr_session",
		MaxAge:     time.Hour,
	})
	assert.Nil(t, rotated.Load(req))
}

func TestStore_PartialSessionTreatedAsAbsent(t *testing.T) {
	store := newTestStore()

	missingToken := testSession()
	missingToken.Token = ""
	assert.Nil(t, store.Load(save(t, store, missingToken)))

	unknownRole := testSession()
	unknownRole.User.Role = "superuser"
	assert.Nil(t, store.Load(save(t, store, unknownRole)))

	missingUser := testSession()
	missingUser.User.ID = ""
	assert.Nil(t, store.Load(save(t, store, missingUser)))
}

func TestStore_SaveReplacesWholesale(t *testing.T) {
	store := newTestStore()

	first := testSession()
	second := auth.Session{
		Token: "token-2",
		User:  user.Profile{ID: "u-2", Email: "c@d.com", Role: user.RoleManager},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, store.Save(rec, req, first))
	require.NoError(t, store.Save(rec, req, second))

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	loaded := store.Load(next)
	require.NotNil(t, loaded)
	assert.Equal(t, "u-2", loaded.User.ID)
	assert.Equal(t, "token-2", loaded.Token)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore()
	req := save(t, store, testSession())
	require.NotNil(t, store.Load(req))

	rec := httptest.NewRecorder()
	store.Clear(rec, req)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[0].MaxAge)

	cleared := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range cookies {
		cleared.AddCookie(cookie)
	}
	assert.Nil(t, store.Load(cleared))
}

func TestStore_ExpiredJWTTokenTreatedAsAbsent(t *testing.T) {
	store := newTestStore()

	expired, err := jwt.NewBuilder().
		Subject("u-1").
		Expiration(time.Now().Add(-time.Minute)).
		Build()
	require.NoError(t, err)
	signed, err := jwt.Sign(expired, jwt.WithKey(jwa.HS256, []byte("upstream-secret")))
	require.NoError(t, err)

	sess := testSession()
	sess.Token = string(signed)
	assert.Nil(t, store.Load(save(t, store, sess)))
}

func TestStore_NonJWTTokenIsTrusted(t *testing.T) {
	store := newTestStore()
	loaded := store.Load(save(t, store, testSession()))
	assert.NotNil(t, loaded, "opaque tokens cannot be expiry-checked locally")
}
