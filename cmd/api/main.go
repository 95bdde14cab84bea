package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/config"
	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	appHTTP "github.com/cmlabs-hris/hris-salary-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/hrapi"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/hris-salary-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-salary-go/internal/service/attendance"
	payrollService "github.com/cmlabs-hris/hris-salary-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", "hris-salary"), slog.String("env", cfg.App.Env)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	snapshotRepo := postgresql.NewSalarySnapshotRepository(db)

	hrClient, err := hrapi.NewClient(cfg.HRAPI, oauth.NewServiceTokenSource(ctx, cfg.HRAPI))
	if err != nil {
		slog.Error("Error creating HR backend client", "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiration)
	formatter := payroll.NewCurrencyFormatter(cfg.Currency.Locale, cfg.Currency.Suffix)

	payrollSvc := payrollService.NewPayrollService(hrClient, snapshotRepo, formatter)
	attendanceSvc := attendanceService.NewAttendanceService(hrClient)

	salaryHandler := appHTTP.NewSalaryHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(cfg.App, JWTService, salaryHandler, attendanceHandler)

	scheduler := cron.NewScheduler()
	cron.NewSalaryJobs(payrollSvc, snapshotRepo, cfg.Sync.LookbackDays).RegisterJobs(scheduler, cfg.Sync.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}
