package http

import (
	"net/http"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
	"github.com/hrsystem/hr-gateway/internal/service/payroll"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	handlerBase
	payrollService payroll.PayrollService
}

func NewPayrollHandler(store *session.Store, guard *middleware.Guard, payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{handlerBase: handlerBase{store: store, guard: guard}, payrollService: payrollService}
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	listing, err := h.payrollService.List(r.Context(), sess.Token, sess.User)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, listing)
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var rec hr.PayrollRecord
	if !decodeJSON(w, r, &rec) {
		return
	}

	created, err := h.payrollService.Create(r.Context(), sess.Token, rec)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, "Payroll record created", created)
}
