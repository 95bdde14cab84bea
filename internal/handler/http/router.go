package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-salary-go/internal/config"
	"github.com/cmlabs-hris/hris-salary-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-salary-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-salary-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(cfg config.AppConfig, JWTService jwt.Service, salaryHandler SalaryHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-salary"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.ForwardBearer)

			r.Route("/salary", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionSalaryViewOwn))

				r.Route("/daily/{userId}", func(r chi.Router) {
					r.Get("/", salaryHandler.GetDailySalary)
					r.Get("/export", salaryHandler.ExportDailySalary)
				})
				r.Get("/monthly/{userId}/history", salaryHandler.GetMonthlyHistory)
				r.Get("/overview/{userId}", salaryHandler.GetOverview)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/sync/{userId}", salaryHandler.SyncUser)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
				r.Get("/my", attendanceHandler.GetMyAttendance)
			})
		})
	})
	return r
}
