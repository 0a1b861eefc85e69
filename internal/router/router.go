package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/madibogo/records-backend/internal/config"
	"github.com/madibogo/records-backend/internal/handler"
	"github.com/madibogo/records-backend/internal/middleware"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/madibogo/records-backend/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Enrollment *handler.EnrollmentHandler
	Module     *handler.ModuleHandler
	Catalogue  *handler.CatalogueHandler
	Student    *handler.StudentHandler
	Report     *handler.ReportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService middleware.TokenValidator,
	handlers *Handlers,
	cfg *config.Config,
	loginLimiter middleware.Limiter,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so every log line and response carries it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	api := router.Group("/api")
	requireAuth := middleware.RequireAuth(authService)
	allow := middleware.Authorize

	// ─── 1. Auth (Public login, Rate Limited) ──────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter, log), handlers.Auth.Login)
		auth.GET("/verify", requireAuth, handlers.Auth.Verify)
		auth.POST("/logout", requireAuth, handlers.Auth.Logout)
	}

	// ─── 2. Public Catalogue ───────────────────────────────────────────
	catalogue := api.Group("")
	catalogue.Use(allow(service.OpPublicRead), middleware.CacheControl(int(cfg.CatalogueCacheTTL.Seconds())))
	{
		catalogue.GET("/programmes", handlers.Catalogue.ListProgrammes)
		catalogue.GET("/semesters", handlers.Catalogue.ListSemesters)
	}

	// ─── 3. Enrollments ────────────────────────────────────────────────
	enrollments := api.Group("/enrollments")
	enrollments.Use(requireAuth)
	{
		enrollments.GET("/student/:id", allow(service.OpReadOwnRecords), handlers.Enrollment.ListForStudent)
		enrollments.GET("/student/:id/marks", allow(service.OpReadOwnRecords), handlers.Enrollment.ListMarksForStudent)
		enrollments.GET("", allow(service.OpListEnrollments), handlers.Enrollment.List)
		enrollments.GET("/marks", allow(service.OpListMarks), handlers.Enrollment.ListMarks)
		enrollments.POST("", allow(service.OpManageEnrollments), handlers.Enrollment.Create)
		enrollments.PUT("/marks", allow(service.OpRecordMarks), handlers.Enrollment.RecordMark)
		enrollments.PUT("/:id/status", allow(service.OpManageEnrollments), handlers.Enrollment.UpdateStatus)
		enrollments.DELETE("/:id", allow(service.OpManageEnrollments), handlers.Enrollment.Delete)
	}

	// ─── 4. Modules ────────────────────────────────────────────────────
	modules := api.Group("/modules")
	modules.Use(requireAuth)
	{
		modules.GET("", allow(service.OpReadCatalogue), handlers.Module.List)
		modules.GET("/programme/:code", allow(service.OpReadCatalogue), handlers.Module.ListByProgramme)
		modules.GET("/:code", allow(service.OpReadCatalogue), handlers.Module.Get)
		modules.POST("", allow(service.OpManageModules), handlers.Module.Create)
		modules.PUT("/:code", allow(service.OpManageModules), handlers.Module.Update)
		modules.DELETE("/:code", allow(service.OpManageModules), handlers.Module.Delete)
	}

	// ─── 5. Students ───────────────────────────────────────────────────
	students := api.Group("/students")
	students.Use(requireAuth)
	{
		students.GET("", allow(service.OpManageStudents), handlers.Student.List)
		students.GET("/:id", allow(service.OpReadOwnRecords), handlers.Student.Get)
		students.POST("", allow(service.OpManageStudents), handlers.Student.Create)
		students.PUT("/:id", allow(service.OpManageStudents), handlers.Student.Update)
		students.DELETE("/:id", allow(service.OpManageStudents), handlers.Student.Delete)
	}

	// ─── 6. Reports ────────────────────────────────────────────────────
	reports := api.Group("/reports")
	reports.Use(requireAuth)
	{
		reports.GET("/summary", allow(service.OpViewReports), handlers.Report.Summary)
		reports.GET("/students/:id/transcript", allow(service.OpReadOwnRecords), handlers.Report.Transcript)
	}

	return router
}
