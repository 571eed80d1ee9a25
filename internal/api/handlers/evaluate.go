package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobdesk-utils/internal/background"
	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/evaluation"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/internal/storage"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

// EvaluateProfileHandler handles synchronous profile evaluation requests
func EvaluateProfileHandler(cfg *config.Config, svc *evaluation.ProfileService, store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		req, errResp := bindProfileRequest(c, requestID)
		if req == nil {
			return errResp
		}

		logger.Info("Profile evaluation request received", map[string]interface{}{})

		response, err := runProfileEvaluation(c.Request().Context(), req, svc, store, logger)
		if err != nil {
			logger.Error("Profile evaluation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "evaluation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response.ProcessingTime = time.Since(startTime)
		response.RequestID = requestID

		logger.Info("Profile evaluation completed", map[string]interface{}{
			"processing_time": response.ProcessingTime,
		})

		return c.JSON(http.StatusOK, response)
	}
}

// EvaluateProfileAsyncHandler accepts a profile evaluation request and
// processes it in the background.
func EvaluateProfileAsyncHandler(cfg *config.Config, svc *evaluation.ProfileService, store *storage.Store, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		req, errResp := bindProfileRequest(c, requestID)
		if req == nil {
			return errResp
		}

		processID := utils.GenerateRequestID()

		err := taskManager.Submit(c.Request().Context(), processID, background.TaskTypeEvaluate, nil, func(ctx context.Context) (interface{}, error) {
			return runProfileEvaluation(ctx, req, svc, store, logger)
		})
		if err != nil {
			logger.Error("Failed to submit evaluation task", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusServiceUnavailable, models.CreateAsyncErrorResponse(
				"task_submission_failed", err.Error()))
		}

		logger.Info("Profile evaluation task accepted", map[string]interface{}{"process_id": processID})
		return c.JSON(http.StatusAccepted, models.CreateAsyncSubmitResponse(
			processID, "Profile evaluation accepted for processing"))
	}
}

func bindProfileRequest(c echo.Context, requestID string) (*models.ProfileEvaluationRequest, error) {
	var req models.ProfileEvaluationRequest
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

func runProfileEvaluation(ctx context.Context, req *models.ProfileEvaluationRequest, svc *evaluation.ProfileService, store *storage.Store, logger logging.Logger) (*models.EvaluationResponse, error) {
	outcome, err := svc.EvaluateProfile(ctx, req.Profile, req.Job)
	if err != nil {
		return nil, err
	}

	response := &models.EvaluationResponse{
		Success: true,
		Data:    outcome,
	}

	if store != nil {
		var jobID *uuid.UUID
		if req.JobID != "" {
			if parsed, err := uuid.Parse(req.JobID); err == nil {
				jobID = &parsed
			}
		}

		id, err := store.SaveProfileEvaluation(ctx, req.UserID, jobID, outcome)
		if err != nil {
			logger.Warn("Failed to persist profile evaluation", map[string]interface{}{"error": err.Error()})
		} else {
			response.EvaluationID = id.String()
		}
	}

	return response, nil
}
