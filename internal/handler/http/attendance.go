package http

import (
	"net/http"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
	"github.com/hrsystem/hr-gateway/internal/service/attendance"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	handlerBase
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(store *session.Store, guard *middleware.Guard, attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{handlerBase: handlerBase{store: store, guard: guard}, attendanceService: attendanceService}
}

// clockRequest is the optional body of a check-in or check-out. An
// empty body clocks the caller's own record.
type clockRequest struct {
	EmployeeID hr.ID `json:"employeeId"`
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	listing, err := h.attendanceService.List(r.Context(), sess.Token, sess.User)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, listing)
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req clockRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	row, err := h.attendanceService.CheckIn(r.Context(), sess.Token, sess.User, req.EmployeeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Checked in", row)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req clockRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	row, err := h.attendanceService.CheckOut(r.Context(), sess.Token, sess.User, req.EmployeeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out", row)
}
