package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobdesk-utils/internal/background"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

// GetTaskStatusHandler returns the current status and result of a background
// task by its process ID.
func GetTaskStatusHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		processID := c.Param("processId")
		if processID == "" {
			return c.JSON(http.StatusBadRequest, models.CreateAsyncErrorResponse(
				"missing_process_id", "Process ID is required"))
		}

		result, err := taskManager.GetTaskResult(c.Request().Context(), processID)
		if err != nil {
			if errors.Is(err, background.ErrTaskNotFound) {
				return c.JSON(http.StatusNotFound, models.CreateAsyncErrorResponse(
					"task_not_found", "No task found for the given process ID", processID))
			}

			logger.Error("Failed to retrieve task result", map[string]interface{}{
				"process_id": processID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.CreateAsyncErrorResponse(
				"task_lookup_failed", err.Error(), processID))
		}

		response := models.AsyncTaskStatusResponse{
			ProcessID:      result.ProcessID,
			Status:         models.AsyncStatus(result.Status),
			Data:           result.Data,
			Error:          result.Error,
			CreatedAt:      result.CreatedAt,
			CompletedAt:    result.CompletedAt,
			ProcessingTime: result.ProcessingTime,
			Metadata:       result.Metadata,
		}

		return c.JSON(http.StatusOK, response)
	}
}
