package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/wagetime/wagetime-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	tokenAuth *jwtauth.JWTAuth,
	env string,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	payrollHandler PayrollHandler,
	scheduleHandler ScheduleHandler,
	policyHandler PolicyHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagetime"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/{id}", attendanceHandler.Get)

				r.Route("/adjustments", func(r chi.Router) {
					r.Post("/", attendanceHandler.SubmitAdjustment)
					r.Post("/resubmit", attendanceHandler.ResubmitAdjustment)
					r.Put("/{id}", attendanceHandler.UpdateAdjustment)
					r.Delete("/{id}", attendanceHandler.DeleteAdjustment)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/{id}/approve", attendanceHandler.ApproveAdjustment)
						r.Post("/{id}/reject", attendanceHandler.RejectAdjustment)
					})
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireOwner)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
					})
				})

				r.Get("/balances/{employeeID}/{leaveTypeID}", leaveHandler.GetBalance)
				r.With(middleware.RequireOwner).Post("/quotas", leaveHandler.SetManualQuota)

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.Submit)
					r.Get("/my", leaveHandler.ListMy)
					r.Put("/{id}", leaveHandler.Update)
					r.Delete("/{id}", leaveHandler.Delete)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/{id}/approve", leaveHandler.Approve)
						r.Post("/{id}/reject", leaveHandler.Reject)
					})
				})
			})

			r.Route("/overtime/requests", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/my", overtimeHandler.ListMy)
				r.Put("/{id}", overtimeHandler.Update)
				r.Delete("/{id}", overtimeHandler.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", overtimeHandler.Approve)
					r.Post("/{id}/reject", overtimeHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireOwner)

				r.Route("/runs", func(r chi.Router) {
					r.Post("/", payrollHandler.CreateRun)
					r.Get("/", payrollHandler.ListRuns)
					r.Get("/{id}", payrollHandler.GetRun)
					r.Post("/{id}/lock", payrollHandler.LockRun)
					r.Post("/{id}/pay", payrollHandler.MarkPaid)
					r.Delete("/{id}", payrollHandler.DeleteRun)
				})

				r.Route("/items", func(r chi.Router) {
					r.Put("/{id}", payrollHandler.OverrideItem)
					r.Post("/{id}/recompute", payrollHandler.RecomputeItem)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/employees/{employeeID}", scheduleHandler.ListEmployeeSlots)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/slots", scheduleHandler.CreateSlot)
					r.Delete("/slots/{id}", scheduleHandler.DeleteSlot)
				})
			})

			r.With(middleware.RequireOwner).Put("/policies/{type}", policyHandler.Update)
		})
	})
	return r
}
