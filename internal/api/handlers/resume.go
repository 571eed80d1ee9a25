package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/internal/parser"
	"jobdesk-utils/internal/pdf"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

const maxResumeUploadSize = 10 << 20

// ExtractResumeHandler handles resume extraction from plain text (JSON body)
// or an uploaded PDF (multipart form with a "file" field).
func ExtractResumeHandler(cfg *config.Config, svc *parser.ResumeService, extractor *pdf.Extractor) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Resume extraction request received")

		text, errResp := resumeText(c, extractor, requestID)
		if text == "" {
			return errResp
		}

		outcome, err := svc.ExtractResume(c.Request().Context(), text)
		if err != nil {
			logger.Error("Resume extraction failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "extraction_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		response := models.ResumeExtractResponse{
			Success:        true,
			Data:           outcome.Data,
			Resume:         outcome.Resume,
			Errors:         outcome.Errors,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		}

		logger.Info("Resume extraction completed", map[string]interface{}{
			"processing_time": response.ProcessingTime,
		})

		return c.JSON(http.StatusOK, response)
	}
}

// resumeText pulls the resume text out of the request, extracting it from an
// uploaded PDF when the request is multipart.
func resumeText(c echo.Context, extractor *pdf.Extractor, requestID string) (string, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return "", c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "missing_file",
				Message:   "Multipart request must include a \"file\" field",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if fileHeader.Size > maxResumeUploadSize {
			return "", c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:     "file_too_large",
				Message:   "Uploaded file exceeds the 10MB limit",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return "", c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "unreadable_file",
				Message:   "Could not open uploaded file",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxResumeUploadSize))
		if err != nil {
			return "", c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "unreadable_file",
				Message:   "Could not read uploaded file",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		text, err := extractor.ExtractTextFromBytes(data)
		if err != nil {
			return "", c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:     "pdf_extraction_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return text, nil
	}

	var req models.ResumeExtractRequest
	if err := c.Bind(&req); err != nil {
		return "", c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "invalid_request",
			Message:   "Invalid request format",
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	if err := validate.Struct(&req); err != nil {
		return "", c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "validation_failed",
			Message:   err.Error(),
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	return req.Text, nil
}
