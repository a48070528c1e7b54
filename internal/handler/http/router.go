package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/hrsystem/hr-gateway/internal/config"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/handler/http/middleware"
)

// NewRouter assembles the API surface. Route access is declared here
// and nowhere else: reads are open to any signed-in role, leave
// decisions need manager or above, and structural writes are admin-only.
func NewRouter(
	cfg config.AppConfig,
	guard *middleware.Guard,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-gateway"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)
		})

		// Any signed-in role.
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAuth())
			r.Get("/dashboard", dashboardHandler.Get)
			r.Get("/employees", employeeHandler.List)
			r.Get("/departments", departmentHandler.List)
			r.Get("/attendance", attendanceHandler.List)
			r.Post("/attendance/check-in", attendanceHandler.CheckIn)
			r.Post("/attendance/check-out", attendanceHandler.CheckOut)
			r.Get("/leaves", leaveHandler.List)
			r.Post("/leaves", leaveHandler.Create)
			r.Get("/payroll", payrollHandler.List)
		})

		// Manager and above.
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAtLeast(user.RoleManager))
			r.Put("/leaves/{id}/status", leaveHandler.UpdateStatus)
		})

		// Admin only, as an exact set: there is no role above admin to
		// inherit these.
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireRoles(user.RoleAdmin))
			r.Post("/employees", employeeHandler.Create)
			r.Put("/employees/{id}", employeeHandler.Update)
			r.Delete("/employees/{id}", employeeHandler.Delete)
			r.Post("/departments", departmentHandler.Create)
			r.Put("/departments/{id}", departmentHandler.Update)
			r.Delete("/departments/{id}", departmentHandler.Delete)
			r.Post("/payroll", payrollHandler.Create)
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
