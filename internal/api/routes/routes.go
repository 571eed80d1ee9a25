package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobdesk-utils/internal/api/handlers"
	"jobdesk-utils/internal/api/middleware"
	"jobdesk-utils/internal/background"
	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/evaluation"
	"jobdesk-utils/internal/llm"
	"jobdesk-utils/internal/parser"
	"jobdesk-utils/internal/pdf"
	"jobdesk-utils/internal/storage"
)

// Services bundles the domain services the routes depend on.
type Services struct {
	Parser       *parser.Service
	Resume       *parser.ResumeService
	Profile      *evaluation.ProfileService
	Interview    *evaluation.InterviewService
	PDFExtractor *pdf.Extractor
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svcs *Services, llmManager *llm.Manager, store *storage.Store, taskManager background.TaskManager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: 30s for most endpoints, 2 minutes for LLM-backed endpoints
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, store))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager, taskManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Job description parsing routes
		jobs := v1.Group("/jobs")
		{
			jobs.POST("/parse", handlers.ParseJobHandler(cfg, svcs.Parser, store))
			jobs.POST("/parse/async", handlers.ParseJobAsyncHandler(cfg, svcs.Parser, store, taskManager))
		}

		// Evaluation routes
		evaluations := v1.Group("/evaluations")
		{
			evaluations.POST("/profile", handlers.EvaluateProfileHandler(cfg, svcs.Profile, store))
			evaluations.POST("/profile/async", handlers.EvaluateProfileAsyncHandler(cfg, svcs.Profile, store, taskManager))
			evaluations.POST("/interview", handlers.EvaluateInterviewHandler(cfg, svcs.Interview, store))
			evaluations.POST("/interview/async", handlers.EvaluateInterviewAsyncHandler(cfg, svcs.Interview, store, taskManager))
		}

		// Resume extraction routes
		resume := v1.Group("/resume")
		{
			resume.POST("/extract", handlers.ExtractResumeHandler(cfg, svcs.Resume, svcs.PDFExtractor))
		}

		// Background task monitoring routes
		tasks := v1.Group("/tasks")
		{
			tasks.GET("/:processId", handlers.GetTaskStatusHandler(taskManager))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Jobdesk Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
