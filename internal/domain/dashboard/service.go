package dashboard

import (
	"context"

	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

// DashboardService composes the role-appropriate dashboard for a viewer.
type DashboardService interface {
	GetDashboard(ctx context.Context, token string, viewer user.Profile) (*DashboardResponse, error)
}
