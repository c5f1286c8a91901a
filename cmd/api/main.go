package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wagetime/wagetime-backend-go/internal/config"
	appHTTP "github.com/wagetime/wagetime-backend-go/internal/handler/http"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/audit"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/calendar"
	"github.com/wagetime/wagetime-backend-go/internal/pkg/database"
	"github.com/wagetime/wagetime-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wagetime/wagetime-backend-go/internal/service/attendance"
	leaveService "github.com/wagetime/wagetime-backend-go/internal/service/leave"
	overtimeService "github.com/wagetime/wagetime-backend-go/internal/service/overtime"
	payrollService "github.com/wagetime/wagetime-backend-go/internal/service/payroll"
	policyService "github.com/wagetime/wagetime-backend-go/internal/service/policy"
	scheduleService "github.com/wagetime/wagetime-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	normalizer, err := calendar.NewNormalizer(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to initialize business calendar:", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	auditor := audit.NewRecorder(postgresql.NewAuditSink(db), logger)

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	shiftScheduleRepo := postgresql.NewShiftScheduleRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	payrollRunRepo := postgresql.NewPayrollRunRepository(db)
	payrollItemRepo := postgresql.NewPayrollItemRepository(db)

	policySvc := policyService.NewPolicyService(policyRepo, auditor)
	scheduleSvc := scheduleService.NewScheduleService(shiftScheduleRepo, employeeRepo, normalizer, auditor)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		adjustmentRepo,
		employeeRepo,
		companyRepo,
		policySvc,
		scheduleSvc,
		normalizer,
		auditor,
	)
	leaveSvc := leaveService.NewLeaveService(
		db,
		leaveTypeRepo,
		leaveBalanceRepo,
		leaveRequestRepo,
		employeeRepo,
		attendanceRepo,
		policySvc,
		normalizer,
		auditor,
	)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo, policySvc, normalizer, auditor)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRunRepo,
		payrollItemRepo,
		employeeRepo,
		attendanceRepo,
		overtimeRepo,
		policySvc,
		auditor,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	router := appHTTP.NewRouter(
		tokenAuth,
		cfg.App.Env,
		attendanceHandler,
		leaveHandler,
		overtimeHandler,
		payrollHandler,
		scheduleHandler,
		policyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
