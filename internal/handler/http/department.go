package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
	"github.com/hrsystem/hr-gateway/internal/service/department"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	handlerBase
	departmentService department.DepartmentService
}

func NewDepartmentHandler(store *session.Store, guard *middleware.Guard, departmentService department.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{handlerBase: handlerBase{store: store, guard: guard}, departmentService: departmentService}
}

// List implements DepartmentHandler.
func (h *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	departments, err := h.departmentService.List(r.Context(), sess.Token)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, departments)
}

// Create implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var dept hr.Department
	if !decodeJSON(w, r, &dept) {
		return
	}

	created, err := h.departmentService.Create(r.Context(), sess.Token, dept)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, "Department created", created)
}

// Update implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var dept hr.Department
	if !decodeJSON(w, r, &dept) {
		return
	}

	updated, err := h.departmentService.Update(r.Context(), sess.Token, hr.ID(chi.URLParam(r, "id")), dept)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated", updated)
}

// Delete implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	if err := h.departmentService.Delete(r.Context(), sess.Token, hr.ID(chi.URLParam(r, "id"))); err != nil {
		h.fail(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted", nil)
}
