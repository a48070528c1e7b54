package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
	"github.com/hrsystem/hr-gateway/internal/service/employee"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	handlerBase
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(store *session.Store, guard *middleware.Guard, employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{handlerBase: handlerBase{store: store, guard: guard}, employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	listing, err := h.employeeService.List(r.Context(), sess.Token, sess.User)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, listing)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var emp hr.Employee
	if !decodeJSON(w, r, &emp) {
		return
	}

	created, err := h.employeeService.Create(r.Context(), sess.Token, emp)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, "Employee created", created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var emp hr.Employee
	if !decodeJSON(w, r, &emp) {
		return
	}

	updated, err := h.employeeService.Update(r.Context(), sess.Token, hr.ID(chi.URLParam(r, "id")), emp)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(r.Context(), sess.Token, hr.ID(chi.URLParam(r, "id"))); err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}
