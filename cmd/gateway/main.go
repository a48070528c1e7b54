package main

import (
	"fmt"
	"net/http"

	"github.com/hrsystem/hr-gateway/internal/config"
	appHTTP "github.com/hrsystem/hr-gateway/internal/handler/http"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
	"github.com/hrsystem/hr-gateway/internal/pkg/hrapi"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
	attendanceService "github.com/hrsystem/hr-gateway/internal/service/attendance"
	serviceAuth "github.com/hrsystem/hr-gateway/internal/service/auth"
	dashboardService "github.com/hrsystem/hr-gateway/internal/service/dashboard"
	departmentService "github.com/hrsystem/hr-gateway/internal/service/department"
	employeeService "github.com/hrsystem/hr-gateway/internal/service/employee"
	leaveService "github.com/hrsystem/hr-gateway/internal/service/leave"
	payrollService "github.com/hrsystem/hr-gateway/internal/service/payroll"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	client := hrapi.NewClient(cfg.Upstream)
	store := session.NewStore(cfg.Session)
	guard := middleware.NewGuard(store, cfg.App.LoginPath)
	loader := scope.NewLoader(client)

	authSvc := serviceAuth.NewAuthService(client)
	dashboardSvc := dashboardService.NewDashboardService(client)
	employeeSvc := employeeService.NewEmployeeService(client, loader)
	departmentSvc := departmentService.NewDepartmentService(client)
	attendanceSvc := attendanceService.NewAttendanceService(client, loader)
	leaveSvc := leaveService.NewLeaveService(client, loader)
	payrollSvc := payrollService.NewPayrollService(client, loader)

	authHandler := appHTTP.NewAuthHandler(store, guard, authSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(store, guard, dashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(store, guard, employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(store, guard, departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(store, guard, attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(store, guard, leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(store, guard, payrollSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		guard,
		authHandler,
		dashboardHandler,
		employeeHandler,
		departmentHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Gateway running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
