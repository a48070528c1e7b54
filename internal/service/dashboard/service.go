package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/domain/dashboard"
	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

const recentLimit = 5

// UpstreamHR is the slice of the API client the dashboard needs.
type UpstreamHR interface {
	Employees(ctx context.Context, token string) ([]hr.Employee, error)
	Departments(ctx context.Context, token string) ([]hr.Department, error)
	Attendance(ctx context.Context, token string) ([]hr.Attendance, error)
	LeaveRequests(ctx context.Context, token string) ([]hr.LeaveRequest, error)
	PayrollRecords(ctx context.Context, token string) ([]hr.PayrollRecord, error)
}

type DashboardServiceImpl struct {
	upstream UpstreamHR
}

func NewDashboardService(upstream UpstreamHR) dashboard.DashboardService {
	return &DashboardServiceImpl{upstream: upstream}
}

// GetDashboard fetches the five collections in parallel and derives stats
// only after every fetch has settled. A failing widget fetch degrades to
// an empty collection so one broken endpoint does not blank the whole
// dashboard; an upstream 401 cancels the group and propagates, because no
// partial dashboard is worth rendering for a dead session.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, token string, viewer user.Profile) (*dashboard.DashboardResponse, error) {
	var (
		employees   []hr.Employee
		departments []hr.Department
		attendance  []hr.Attendance
		leaves      []hr.LeaveRequest
		payroll     []hr.PayrollRecord
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.upstream.Employees(gCtx, token)
		return degrade("employees", err)
	})
	g.Go(func() error {
		var err error
		departments, err = s.upstream.Departments(gCtx, token)
		return degrade("departments", err)
	})
	g.Go(func() error {
		var err error
		attendance, err = s.upstream.Attendance(gCtx, token)
		return degrade("attendance", err)
	})
	g.Go(func() error {
		var err error
		leaves, err = s.upstream.LeaveRequests(gCtx, token)
		return degrade("leaves", err)
	})
	g.Go(func() error {
		var err error
		payroll, err = s.upstream.PayrollRecords(gCtx, token)
		return degrade("payroll", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := scope.NewResolver(employees, departments)
	now := time.Now()

	switch viewer.Role {
	case user.RoleAdmin:
		return s.adminDashboard(employees, departments, attendance, leaves, payroll, now), nil
	case user.RoleManager:
		return s.managerDashboard(res, viewer, employees, attendance, leaves, payroll, now), nil
	case user.RoleEmployee:
		return s.employeeDashboard(res, viewer, attendance, leaves, payroll, now), nil
	default:
		return nil, user.ErrUnknownRole
	}
}

// degrade swallows everything except an authentication rejection, which
// must reach the global session-clear path.
func degrade(resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, auth.ErrUnauthenticated) {
		return err
	}
	slog.Warn("dashboard fetch degraded to empty", "resource", resource, "error", err)
	return nil
}

func (s *DashboardServiceImpl) adminDashboard(employees []hr.Employee, departments []hr.Department, attendance []hr.Attendance, leaves []hr.LeaveRequest, payroll []hr.PayrollRecord, now time.Time) *dashboard.DashboardResponse {
	return &dashboard.DashboardResponse{
		Role: user.RoleAdmin,
		Admin: &dashboard.AdminStats{
			TotalEmployees:       len(employees),
			TotalDepartments:     len(departments),
			PresentToday:         presentToday(attendance, now),
			PendingLeaveRequests: pendingCount(leaves),
			MonthlyPayroll:       payrollTotal(payroll, now),
		},
		Recent: recent(attendance, leaves, payroll),
	}
}

func (s *DashboardServiceImpl) managerDashboard(res *scope.Resolver, viewer user.Profile, employees []hr.Employee, attendance []hr.Attendance, leaves []hr.LeaveRequest, payroll []hr.PayrollRecord, now time.Time) *dashboard.DashboardResponse {
	teamEmployees, err := scope.Visible(employees, viewer, res)
	if err != nil {
		// Fail closed: zeroed dashboard plus a visible warning, which is
		// not the same thing as an empty team.
		slog.Warn("manager dashboard scoped to nothing", "user", viewer.ID, "error", err)
		return &dashboard.DashboardResponse{
			Role:    user.RoleManager,
			Warning: scopeWarning(err),
			Manager: &dashboard.ManagerStats{},
			Recent:  recent(nil, nil, nil),
		}
	}

	teamAttendance, _ := scope.Visible(attendance, viewer, res)
	teamLeaves, _ := scope.Visible(leaves, viewer, res)
	teamPayroll, _ := scope.Visible(payroll, viewer, res)

	return &dashboard.DashboardResponse{
		Role: user.RoleManager,
		Manager: &dashboard.ManagerStats{
			TeamSize:              len(teamEmployees),
			PresentToday:          presentToday(teamAttendance, now),
			PendingLeaveRequests:  pendingCount(teamLeaves),
			DepartmentMonthlyCost: payrollTotal(teamPayroll, now),
		},
		Recent: recent(teamAttendance, teamLeaves, teamPayroll),
	}
}

func (s *DashboardServiceImpl) employeeDashboard(res *scope.Resolver, viewer user.Profile, attendance []hr.Attendance, leaves []hr.LeaveRequest, payroll []hr.PayrollRecord, now time.Time) *dashboard.DashboardResponse {
	myAttendance, err := scope.Visible(attendance, viewer, res)
	if err != nil {
		slog.Warn("employee dashboard scoped to nothing", "user", viewer.ID, "error", err)
		return &dashboard.DashboardResponse{
			Role:     user.RoleEmployee,
			Warning:  scopeWarning(err),
			Employee: &dashboard.EmployeeStats{},
			Recent:   recent(nil, nil, nil),
		}
	}

	myLeaves, _ := scope.Visible(leaves, viewer, res)
	myPayroll, _ := scope.Visible(payroll, viewer, res)

	return &dashboard.DashboardResponse{
		Role: user.RoleEmployee,
		Employee: &dashboard.EmployeeStats{
			AttendanceThisMonth:  monthlyCount(myAttendance, now),
			PendingLeaveRequests: pendingCount(myLeaves),
			CurrentMonthSalary:   payrollTotal(myPayroll, now),
		},
		Recent: recent(myAttendance, myLeaves, myPayroll),
	}
}

func scopeWarning(err error) string {
	switch {
	case errors.Is(err, scope.ErrDepartmentUnresolved):
		return "Department information not found. Ask an admin to assign you to a department."
	case errors.Is(err, scope.ErrEmployeeUnresolved):
		return "No employee record is linked to your account. Ask an admin to link one."
	default:
		return "Your records could not be resolved."
	}
}

func presentToday(attendance []hr.Attendance, now time.Time) int {
	today := now.Format("2006-01-02")
	count := 0
	for _, att := range attendance {
		if att.Date == today && att.Status == hr.AttendanceStatusPresent {
			count++
		}
	}
	return count
}

func monthlyCount(attendance []hr.Attendance, now time.Time) int {
	month := now.Format("2006-01")
	count := 0
	for _, att := range attendance {
		if strings.HasPrefix(att.Date, month) {
			count++
		}
	}
	return count
}

func pendingCount(leaves []hr.LeaveRequest) int {
	count := 0
	for _, leave := range leaves {
		if leave.Status == hr.LeaveStatusPending {
			count++
		}
	}
	return count
}

// payrollTotal sums net salaries for the current month. Records without a
// month stamp are counted: some upstream deployments only ever expose the
// current run.
func payrollTotal(payroll []hr.PayrollRecord, now time.Time) float64 {
	month := now.Format("2006-01")
	var total float64
	for _, rec := range payroll {
		if rec.Month == "" || strings.HasPrefix(rec.Month, month) {
			total += rec.NetSalary
		}
	}
	return total
}

// recent trims each collection to its newest few rows without touching
// the caller's slices.
func recent(attendance []hr.Attendance, leaves []hr.LeaveRequest, payroll []hr.PayrollRecord) dashboard.RecentData {
	att := make([]hr.Attendance, len(attendance))
	copy(att, attendance)
	sort.SliceStable(att, func(i, j int) bool { return att[i].Date > att[j].Date })

	lv := make([]hr.LeaveRequest, len(leaves))
	copy(lv, leaves)
	sort.SliceStable(lv, func(i, j int) bool { return lv[i].StartDate > lv[j].StartDate })

	pr := make([]hr.PayrollRecord, len(payroll))
	copy(pr, payroll)
	sort.SliceStable(pr, func(i, j int) bool { return pr[i].Month > pr[j].Month })

	return dashboard.RecentData{
		Attendance:    head(att, recentLimit),
		LeaveRequests: head(lv, recentLimit),
		Payroll:       head(pr, recentLimit),
	}
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	if items == nil {
		return []T{}
	}
	return items
}
