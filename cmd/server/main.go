package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/madibogo/records-backend/internal/config"
	"github.com/madibogo/records-backend/internal/database"
	"github.com/madibogo/records-backend/internal/handler"
	"github.com/madibogo/records-backend/internal/logger"
	"github.com/madibogo/records-backend/internal/middleware"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/madibogo/records-backend/internal/router"
	"github.com/madibogo/records-backend/internal/service"
	"github.com/madibogo/records-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting student records API")
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Refusing to start with insecure configuration")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	repos := repository.New(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, repos.Students, repos.Admins, log)
	enrollmentService := service.NewEnrollmentService(repos.Enrollments, log)
	moduleService := service.NewModuleService(repos.Modules, repos.Enrollments, log)
	catalogueService := service.NewCatalogueService(repos.Programmes, repos.Semesters, rdb, cfg.CatalogueCacheTTL, log)
	studentService := service.NewStudentService(repos.Students, repos.Enrollments, authService, log)
	reportService := service.NewReportService(repos.Reports, repos.Enrollments, studentService, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService),
		Module:     handler.NewModuleHandler(moduleService),
		Catalogue:  handler.NewCatalogueHandler(catalogueService),
		Student:    handler.NewStudentHandler(studentService),
		Report:     handler.NewReportHandler(reportService),
	}

	// ─── Login Rate Limiter ───────────────────────────────────────────
	// Shared across instances when Redis is available.
	var loginLimiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.LoginRateLimit, time.Minute)
	if rdb != nil {
		loginLimiter = middleware.NewRedisLimiter(rdb, cfg.LoginRateLimit, time.Minute)
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg, loginLimiter, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
