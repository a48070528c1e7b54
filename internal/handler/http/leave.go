package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
	"github.com/hrsystem/hr-gateway/internal/service/leave"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	handlerBase
	leaveService leave.LeaveService
}

func NewLeaveHandler(store *session.Store, guard *middleware.Guard, leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{handlerBase: handlerBase{store: store, guard: guard}, leaveService: leaveService}
}

type leaveDecisionRequest struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	listing, err := h.leaveService.List(r.Context(), sess.Token, sess.User)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, listing)
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req hr.LeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.leaveService.Create(r.Context(), sess.Token, sess.User, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// UpdateStatus implements LeaveHandler. The route sits behind the
// manager-or-above guard.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req leaveDecisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.leaveService.UpdateStatus(r.Context(), sess.Token, hr.ID(chi.URLParam(r, "id")), req.Status, req.Comments)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request "+req.Status, updated)
}
