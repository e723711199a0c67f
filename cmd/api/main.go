package main

import (
	"fmt"
	"net/http"

	"github.com/fieldhr/hr-backend-go/internal/config"
	appHTTP "github.com/fieldhr/hr-backend-go/internal/handler/http"
	"github.com/fieldhr/hr-backend-go/internal/pkg/database"
	"github.com/fieldhr/hr-backend-go/internal/pkg/jwt"
	"github.com/fieldhr/hr-backend-go/internal/pkg/sse"
	"github.com/fieldhr/hr-backend-go/internal/repository/postgresql"
	approvalService "github.com/fieldhr/hr-backend-go/internal/service/approval"
	employeeService "github.com/fieldhr/hr-backend-go/internal/service/employee"
	notificationService "github.com/fieldhr/hr-backend-go/internal/service/notification"
	reportService "github.com/fieldhr/hr-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	requestRepo := postgresql.NewApprovalRequestRepository(db)
	workPolicyRepo := postgresql.NewWorkPolicyRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	notifService := notificationService.NewNotificationService(notificationRepo, hub)
	apprService := approvalService.NewApprovalService(txRunner, requestRepo, workPolicyRepo, employeeRepo, notifService)
	empService := employeeService.NewEmployeeService(employeeRepo)
	repService := reportService.NewReportService(reportRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(apprService)
	leaveHandler := appHTTP.NewLeaveHandler(apprService)
	approvalHandler := appHTTP.NewApprovalHandler(apprService)
	notificationHandler := appHTTP.NewNotificationHandler(notifService, jwtService, hub)
	reportHandler := appHTTP.NewReportHandler(repService)
	employeeHandler := appHTTP.NewEmployeeHandler(empService)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		leaveHandler,
		approvalHandler,
		notificationHandler,
		reportHandler,
		employeeHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server is running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
