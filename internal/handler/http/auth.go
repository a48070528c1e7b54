package http

import (
	"log/slog"
	"net/http"

	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	handlerBase
	authService auth.AuthService
}

func NewAuthHandler(store *session.Store, guard *middleware.Guard, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{handlerBase: handlerBase{store: store, guard: guard}, authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if !decodeJSON(w, r, &loginReq) {
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	sess, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Persist the session in the signed cookie
	if err := a.store.Save(w, r, sess); err != nil {
		slog.Error("Login session save error", "error", err)
		response.InternalServerError(w, "Could not establish a session")
		return
	}

	slog.Info("user signed in", "user", sess.User.ID, "role", sess.User.Role)
	response.SuccessWithMessage(w, "Signed in", auth.SessionResponse{
		Authenticated: true,
		User:          &sess.User,
	})
}

// Logout implements AuthHandler. The local session is cleared no matter
// what the upstream API says: a dead token on their side must never
// keep a live session on ours.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := a.store.Load(r); sess != nil {
		// Best effort; the service already logs failures.
		_ = a.authService.Logout(r.Context(), sess.Token)
	}

	a.store.Clear(w, r)
	response.SuccessWithMessage(w, "Signed out", nil)
}

// Session implements AuthHandler. It reports who is signed in without
// touching the upstream API, so the frontend can restore state cheaply.
func (a *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	sess := a.store.Load(r)
	if sess == nil {
		response.Success(w, auth.SessionResponse{Authenticated: false})
		return
	}
	response.Success(w, auth.SessionResponse{
		Authenticated: true,
		User:          &sess.User,
	})
}
