package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobdesk-utils/internal/background"
	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/evaluation"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/internal/storage"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

// EvaluateInterviewHandler handles synchronous interview answer evaluation
func EvaluateInterviewHandler(cfg *config.Config, svc *evaluation.InterviewService, store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		req, errResp := bindInterviewRequest(c, requestID)
		if req == nil {
			return errResp
		}

		logger.Info("Interview evaluation request received", map[string]interface{}{
			"question": req.Question.Title,
		})

		response, err := runInterviewEvaluation(c.Request().Context(), req, svc, store, logger)
		if err != nil {
			logger.Error("Interview evaluation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "evaluation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response.ProcessingTime = time.Since(startTime)
		response.RequestID = requestID

		return c.JSON(http.StatusOK, response)
	}
}

// EvaluateInterviewAsyncHandler accepts an interview answer evaluation and
// processes it in the background.
func EvaluateInterviewAsyncHandler(cfg *config.Config, svc *evaluation.InterviewService, store *storage.Store, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		req, errResp := bindInterviewRequest(c, requestID)
		if req == nil {
			return errResp
		}

		processID := utils.GenerateRequestID()
		metadata := map[string]interface{}{
			"question": req.Question.Title,
		}

		err := taskManager.Submit(c.Request().Context(), processID, background.TaskTypeEvaluate, metadata, func(ctx context.Context) (interface{}, error) {
			return runInterviewEvaluation(ctx, req, svc, store, logger)
		})
		if err != nil {
			logger.Error("Failed to submit evaluation task", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusServiceUnavailable, models.CreateAsyncErrorResponse(
				"task_submission_failed", err.Error()))
		}

		logger.Info("Interview evaluation task accepted", map[string]interface{}{"process_id": processID})
		return c.JSON(http.StatusAccepted, models.CreateAsyncSubmitResponse(
			processID, "Interview answer evaluation accepted for processing"))
	}
}

func bindInterviewRequest(c echo.Context, requestID string) (*models.InterviewEvaluationRequest, error) {
	var req models.InterviewEvaluationRequest
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

func runInterviewEvaluation(ctx context.Context, req *models.InterviewEvaluationRequest, svc *evaluation.InterviewService, store *storage.Store, logger logging.Logger) (*models.EvaluationResponse, error) {
	outcome, err := svc.EvaluateAnswer(ctx, req.Question, req.Answer)
	if err != nil {
		return nil, err
	}

	response := &models.EvaluationResponse{
		Success: true,
		Data:    outcome,
	}

	if store != nil {
		id, err := store.SaveInterviewEvaluation(ctx, req.UserID, req.Answer, outcome)
		if err != nil {
			logger.Warn("Failed to persist interview evaluation", map[string]interface{}{"error": err.Error()})
		} else {
			response.EvaluationID = id.String()
		}
	}

	return response, nil
}
