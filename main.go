package main

import (
	"log"
	"net/http"

	"staffhub/config"
	"staffhub/database"
	"staffhub/handlers"
	"staffhub/middleware"
	"staffhub/models"
	"staffhub/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	middleware.SetJWTSecret(cfg.JWTSecret)

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.SeedDefaultAdmin(db); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	router := newRouter(cfg, db)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}

func newRouter(cfg *config.Config, db *gorm.DB) chi.Router {
	leavePolicy := service.DefaultLeavePolicy()
	leavePolicy.AdvanceNoticeDays = cfg.LeaveAdvanceDays
	leavePolicy.MonthlyPaidQuota = cfg.LeaveMonthlyPaidQuota

	userService := service.NewUserService(db)
	leaveService := service.NewLeaveService(db, leavePolicy)
	attendanceService := service.NewAttendanceService(db)
	approvalService := service.NewApprovalService(db)

	authHandler := handlers.NewAuthHandler(cfg, userService)
	adminHandler := handlers.NewAdminHandler(userService)
	attendanceHandler := handlers.NewAttendanceHandler(db, attendanceService, approvalService)
	leaveHandler := handlers.NewLeaveHandler(db, leaveService, approvalService)
	employeeHandler := handlers.NewEmployeeHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	salaryHandler := handlers.NewSalaryHandler(db)
	taskHandler := handlers.NewTaskHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	// Preflight requests succeed here, before any auth runs.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Post("/api/auth/login", authHandler.Login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(db))

		r.Get("/api/me", profileHandler.Me)
		r.Put("/api/me", profileHandler.UpdateMe)
		r.Get("/api/dashboard", dashboardHandler.Summary)

		r.Post("/api/attendance/check-in", attendanceHandler.CheckIn)
		r.Post("/api/attendance/check-out", attendanceHandler.CheckOut)
		r.Get("/api/attendance", attendanceHandler.List)

		r.Post("/api/leaves", leaveHandler.Submit)
		r.Get("/api/leaves", leaveHandler.List)

		r.Get("/api/employees", employeeHandler.List)
		r.Get("/api/tasks", taskHandler.List)
		r.Put("/api/tasks/{id}/status", taskHandler.UpdateStatus)
		r.Get("/api/salary", salaryHandler.My)

		// Approval authority and management surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))

			r.Post("/api/attendance/{id}/decide", attendanceHandler.Decide)
			r.Post("/api/leaves/{id}/decide", leaveHandler.Decide)
			r.Get("/api/attendance/export", attendanceHandler.ExportCSV)

			r.Post("/api/employees", employeeHandler.Create)
			r.Put("/api/employees/{id}", employeeHandler.Update)
			r.Delete("/api/employees/{id}", employeeHandler.Deactivate)

			r.Get("/api/salary/all", salaryHandler.All)
			r.Post("/api/salary", salaryHandler.Create)
			r.Put("/api/salary/{id}/pay", salaryHandler.MarkPaid)

			r.Post("/api/tasks", taskHandler.Create)
		})

		// Privileged user provisioning. The admin check lives in the service
		// layer so it also covers any future non-HTTP callers.
		r.Post("/api/admin/create-user", adminHandler.CreateUser)
		r.Post("/api/admin/update-user-role", adminHandler.UpdateUserRole)
		r.With(middleware.RequireRole(models.RoleAdmin)).Get("/api/admin/users", adminHandler.ListUsers)
	})

	return router
}
