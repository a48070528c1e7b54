package http

import (
	"net/http"

	"github.com/hrsystem/hr-gateway/internal/domain/dashboard"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	handlerBase
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(store *session.Store, guard *middleware.Guard, dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{handlerBase: handlerBase{store: store, guard: guard}, dashboardService: dashboardService}
}

// Get implements DashboardHandler.
func (h *DashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	board, err := h.dashboardService.GetDashboard(r.Context(), sess.Token, sess.User)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Success(w, board)
}
