package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sweldo-hr/sweldo-backend-go/internal/handler/http/middleware"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, payrollHandler PayrollHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sweldo-backend"),
		slog.String("version", "v1.0.0"),
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
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/preview", payrollHandler.PreviewPayroll)
				r.Post("/generate", payrollHandler.GeneratePayroll)

				r.Route("/records", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayrollRecords)
					r.Get("/{id}", payrollHandler.GetPayrollRecord)
					r.Get("/{id}/statutory", payrollHandler.GetStatutoryEstimate)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", payrollHandler.ListSettings)
					r.Put("/", payrollHandler.UpdateSetting)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListAttendance)
			})
		})
	})
	return r
}
