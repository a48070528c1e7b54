package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
)

// handlerBase carries the plumbing every handler shares: the cookie
// store for session teardown and the guard for building login redirects
// when a session dies mid-request.
type handlerBase struct {
	store *session.Store
	guard *middleware.Guard
}

// requireSession reads the session the route guard attached. Guarded
// routes always have one; the check covers handlers that are wired onto
// an unguarded route by mistake.
func (h handlerBase) requireSession(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthenticated(w, "Sign in to access this page", h.guard.LoginRedirect(r.URL.Path))
		return nil, false
	}
	return sess, true
}

// fail translates service errors into responses. An upstream 401 means
// the stored token is dead everywhere, so the local session is torn
// down before the frontend is told to sign in again. Every other error
// keeps the session intact.
func (h handlerBase) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, auth.ErrUnauthenticated) {
		h.store.Clear(w, r)
		response.Unauthenticated(w, "Your session has expired", h.guard.LoginRedirect(r.URL.Path))
		return
	}
	response.HandleError(w, err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error("request decode error", "path", r.URL.Path, "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}
