package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobdesk-utils/internal/api/routes"
	"jobdesk-utils/internal/background"
	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/evaluation"
	"jobdesk-utils/internal/llm"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/internal/parser"
	"jobdesk-utils/internal/pdf"
	"jobdesk-utils/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging system
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Jobdesk Utils")

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
	}

	// Connect to the database when configured
	var store *storage.Store
	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
		store, err = storage.Connect(ctx, cfg)
		cancel()
		if err != nil {
			logger.Fatal("Failed to connect to database", map[string]interface{}{"error": err.Error()})
		}
		defer store.Close()
		logger.Info("Database connection established")
	} else {
		logger.Info("Database not configured, records will not be persisted")
	}

	// Pick the task store: Redis when reachable, in-memory otherwise
	var taskStore background.TaskStore
	if redisStore, err := background.NewRedisTaskStore(cfg); err != nil {
		logger.Warn("Redis unavailable, using in-memory task store", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		taskStore = redisStore
		logger.Info("Using Redis task store")
	}

	// Initialize background task manager
	taskManager := background.NewTaskManager(cfg, taskStore)
	ctx := context.Background()
	if err := taskManager.Start(ctx); err != nil {
		logger.Fatal("Failed to start task manager", map[string]interface{}{"error": err.Error()})
	}

	// Build the domain services
	svcs := &routes.Services{
		Parser:       parser.NewService(cfg, llmManager),
		Resume:       parser.NewResumeService(cfg, llmManager),
		Profile:      evaluation.NewProfileService(cfg, llmManager),
		Interview:    evaluation.NewInterviewService(cfg, llmManager),
		PDFExtractor: pdf.NewExtractor(),
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, svcs, llmManager, store, taskManager)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		// Create a shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Stop task manager first (most important for background tasks)
		logger.Info("Stopping background task manager...")
		if err := taskManager.Stop(shutdownCtx); err != nil {
			logger.Error("Error stopping task manager", map[string]interface{}{"error": err.Error()})
		}

		// Stop LLM manager
		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		// Shutdown Echo server
		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
