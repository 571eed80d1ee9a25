package parser

import (
	"context"
	"fmt"
	"time"

	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

// Completer is the slice of the LLM manager the extraction services need.
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest) (*models.CompletionResponse, error)
}

// Service runs the model-assisted extraction pipeline: prompt the model,
// recover the JSON from its output and coerce it into the canonical record.
type Service struct {
	config    *config.Config
	completer Completer
	logger    logging.Logger
}

// NewService creates a new extraction service
func NewService(cfg *config.Config, completer Completer) *Service {
	return &Service{
		config:    cfg,
		completer: completer,
		logger:    logging.GetGlobalLogger(),
	}
}

// ExtractJob runs the full model-assisted pipeline over raw job text. Model
// failures are fatal; malformed model output is not, it degrades to a
// default-shaped record with diagnostics attached.
func (s *Service) ExtractJob(ctx context.Context, raw string) (*models.ExtractionOutcome, error) {
	startTime := time.Now()

	text := NormalizeRawText(raw)

	// Rough estimation: 3 chars per token
	maxContentLength := s.config.LLM.MaxTokens * 3
	if len(text) > maxContentLength {
		text = text[:maxContentLength] + "..."
		s.logger.Debug("Job text truncated to fit token limits")
	}

	response, err := s.completer.Complete(ctx, models.CompletionRequest{
		Model:       s.config.LLM.Model,
		Temperature: s.config.LLM.Temperature,
		MaxTokens:   s.config.LLM.MaxTokens,
		Messages: []models.CompletionMessage{
			{Role: "user", Content: buildJobExtractionPrompt(text)},
		},
	})
	if err != nil {
		return nil, utils.NewLLMError(err.Error())
	}

	decoded, diagnostics := ExtractJSON(response.Content)
	record := Normalize(decoded)

	s.logger.Info("Job extraction completed", map[string]interface{}{
		"title":           record.Title,
		"company":         record.CompanyName,
		"diagnostics":     len(diagnostics),
		"processing_time": time.Since(startTime).String(),
		"model":           response.Model,
	})

	return &models.ExtractionOutcome{
		Job:       record,
		Errors:    diagnostics,
		RawOutput: response.Content,
		Usage:     response.Usage,
		Model:     response.Model,
	}, nil
}

// buildJobExtractionPrompt renders the extraction prompt. The record shape
// and the enum vocabularies are embedded verbatim so the model has no room
// to invent fields or values.
func buildJobExtractionPrompt(text string) string {
	return fmt.Sprintf(`You are tasked with extracting structured information from a job description provided in free text. The text will be provided in the following XML tags:

<job_text>
%s
</job_text>

Your goal is to carefully analyze this text and extract relevant information to populate a JSON object. The JSON must follow exactly this shape:

%s

Follow these rules when extracting:

1. title: The role title, without seniority prefixes.
2. seniority: One of exactly: Intern, Junior, Mid, Senior, Lead, Principal, Staff, Head, Director. Use null if not determinable.
3. company_name: The hiring company's name, empty string if not found.
4. work_mode: One of exactly: Remote, Hybrid, Onsite. Use null if not determinable.
5. location: City/country as written in the posting, empty string if not found.
6. employment_type: One of exactly: Full time, Part time, Contract, Internship, Temporary, Freelance, Volunteer. Use null if not determinable.
7. summary: A concise summary of the role, two sentences and 280 characters at most.
8. responsibilities: Array of responsibility strings, one per duty, 12 items at most.
9. requirements: Array of required qualification strings, 12 items at most.
10. skills: Array of individual technology or skill names, 20 items at most, no duplicates. Use canonical spellings, e.g. "PostgreSQL" not "postgres", "JavaScript" not "JS", "Node.js" not "NodeJS".
11. years_experience_min / years_experience_max: Integers when the posting states required experience, null otherwise.

If any information is not found, keep the field's default from the shape above. Never add fields that are not in the shape.

Present your final output within <structured_json> tags. Do not include any explanation or additional text outside of these tags.`, text, DefaultRecordJSON())
}
