package dashboard

import (
	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

// DashboardResponse is the role-routed dashboard payload. Exactly one of
// the per-role stat blocks is set, matching the viewer's role.
type DashboardResponse struct {
	Role     user.Role      `json:"role"`
	Warning  string         `json:"warning,omitempty"`
	Admin    *AdminStats    `json:"admin,omitempty"`
	Manager  *ManagerStats  `json:"manager,omitempty"`
	Employee *EmployeeStats `json:"employee,omitempty"`
	Recent   RecentData     `json:"recent"`
}

// AdminStats summarizes the whole organization.
type AdminStats struct {
	TotalEmployees       int     `json:"totalEmployees"`
	TotalDepartments     int     `json:"totalDepartments"`
	PresentToday         int     `json:"presentToday"`
	PendingLeaveRequests int     `json:"pendingLeaveRequests"`
	MonthlyPayroll       float64 `json:"monthlyPayroll"`
}

// ManagerStats summarizes the manager's own department only.
type ManagerStats struct {
	TeamSize              int     `json:"teamSize"`
	PresentToday          int     `json:"presentToday"`
	PendingLeaveRequests  int     `json:"pendingLeaveRequests"`
	DepartmentMonthlyCost float64 `json:"departmentMonthlyCost"`
}

// EmployeeStats summarizes the viewer's own records only.
type EmployeeStats struct {
	AttendanceThisMonth  int     `json:"attendanceThisMonth"`
	PendingLeaveRequests int     `json:"pendingLeaveRequests"`
	CurrentMonthSalary   float64 `json:"currentMonthSalary"`
}

// RecentData carries the latest records backing the dashboard widgets,
// already narrowed to what the viewer may see.
type RecentData struct {
	Attendance    []hr.Attendance    `json:"attendance"`
	LeaveRequests []hr.LeaveRequest  `json:"leaveRequests"`
	Payroll       []hr.PayrollRecord `json:"payroll,omitempty"`
}
