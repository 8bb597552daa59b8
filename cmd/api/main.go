package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	appHTTP "github.com/teamtrack/teamtrack-backend-go/internal/handler/http"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/postgresql"
	employeeService "github.com/teamtrack/teamtrack-backend-go/internal/service/employee"
	leaveService "github.com/teamtrack/teamtrack-backend-go/internal/service/leave"
	payrollService "github.com/teamtrack/teamtrack-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "teamtrack"),
		slog.String("env", cfg.App.Env),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	periodCalc := payrollService.NewPeriodCalculator(leaveRepo)
	totalsCalc := payrollService.NewTotalsCalculator(cfg.Payroll.CalcMode)
	payrollSvc := payrollService.NewPayrollService(
		settingRepo,
		recordRepo,
		employeeRepo,
		periodCalc,
		totalsCalc,
		jwtService,
		logger,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(cfg, jwtService, payrollHandler, leaveHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
