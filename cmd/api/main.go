package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sweldo-hr/sweldo-backend-go/internal/config"
	appHTTP "github.com/sweldo-hr/sweldo-backend-go/internal/handler/http"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/database"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/jwt"
	"github.com/sweldo-hr/sweldo-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sweldo-hr/sweldo-backend-go/internal/service/attendance"
	payrollService "github.com/sweldo-hr/sweldo-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		requestRepo,
		settingsRepo,
	)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(jwtService, payrollHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
