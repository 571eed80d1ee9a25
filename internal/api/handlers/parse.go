package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobdesk-utils/internal/background"
	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/internal/parser"
	"jobdesk-utils/internal/storage"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

var validate = validator.New()

// ParseJobHandler handles synchronous job description parsing requests
func ParseJobHandler(cfg *config.Config, svc *parser.Service, store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		req, errResp := bindParseRequest(c, requestID)
		if req == nil {
			return errResp
		}

		engine := req.Engine
		if engine == "" {
			engine = "llm"
		}

		logger.Info("Parse request received", map[string]interface{}{
			"engine":     engine,
			"input_size": len(req.Raw),
		})

		response, err := runParse(c.Request().Context(), req, engine, svc, store, logger)
		if err != nil {
			logger.Error("Parse request failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "parse_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response.ProcessingTime = time.Since(startTime)
		response.RequestID = requestID

		logger.Info("Parse request completed", map[string]interface{}{
			"engine":          engine,
			"processing_time": response.ProcessingTime,
		})

		return c.JSON(http.StatusOK, response)
	}
}

// ParseJobAsyncHandler accepts a parse request and processes it in the
// background, returning a process ID immediately.
func ParseJobAsyncHandler(cfg *config.Config, svc *parser.Service, store *storage.Store, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		req, errResp := bindParseRequest(c, requestID)
		if req == nil {
			return errResp
		}

		engine := req.Engine
		if engine == "" {
			engine = "llm"
		}

		processID := utils.GenerateRequestID()
		metadata := map[string]interface{}{
			"engine":     engine,
			"input_size": len(req.Raw),
		}

		err := taskManager.Submit(c.Request().Context(), processID, background.TaskTypeParse, metadata, func(ctx context.Context) (interface{}, error) {
			return runParse(ctx, req, engine, svc, store, logger)
		})
		if err != nil {
			logger.Error("Failed to submit parse task", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusServiceUnavailable, models.CreateAsyncErrorResponse(
				"task_submission_failed", err.Error()))
		}

		logger.Info("Parse task accepted", map[string]interface{}{"process_id": processID})
		return c.JSON(http.StatusAccepted, models.CreateAsyncSubmitResponse(
			processID, "Job parsing accepted for processing"))
	}
}

func bindParseRequest(c echo.Context, requestID string) (*models.ParseJobRequest, error) {
	var req models.ParseJobRequest
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid request format",
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	if err := validate.Struct(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "validation_failed",
			Message:   err.Error(),
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	return &req, nil
}

func runParse(ctx context.Context, req *models.ParseJobRequest, engine string, svc *parser.Service, store *storage.Store, logger logging.Logger) (*models.ParseJobResponse, error) {
	cleaner := parser.NewPasteCleaner()
	raw, err := cleaner.CleanPaste(req.Raw)
	if err != nil {
		raw = req.Raw
	}

	response := &models.ParseJobResponse{
		Success: true,
		Engine:  engine,
	}

	if engine == "heuristic" {
		job := parser.ParseHeuristic(raw)
		response.HeuristicJob = job

		if store != nil {
			id, err := store.SaveHeuristicRecord(ctx, req.UserID, raw, job)
			if err != nil {
				logger.Warn("Failed to persist heuristic record", map[string]interface{}{"error": err.Error()})
			} else {
				response.JobID = id.String()
			}
		}
		return response, nil
	}

	outcome, err := svc.ExtractJob(ctx, raw)
	if err != nil {
		return nil, err
	}

	response.Job = outcome.Job
	response.Errors = outcome.Errors

	if store != nil {
		id, err := store.SaveJobRecord(ctx, req.UserID, raw, outcome)
		if err != nil {
			logger.Warn("Failed to persist job record", map[string]interface{}{"error": err.Error()})
		} else {
			response.JobID = id.String()
		}
	}

	return response, nil
}
