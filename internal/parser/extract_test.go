package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk-utils/internal/config"
	"jobdesk-utils/pkg/models"
)

type stubCompleter struct {
	content string
	err     error

	lastRequest models.CompletionRequest
}

func (s *stubCompleter) Complete(ctx context.Context, req models.CompletionRequest) (*models.CompletionResponse, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.CompletionResponse{
		Content: s.content,
		Model:   "stub-model",
		Usage:   map[string]interface{}{"total_tokens": 42.0},
	}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Model = "stub-model"
	cfg.LLM.MaxTokens = 4000
	cfg.LLM.Temperature = 0
	return cfg
}

func TestExtractJob_WellFormedOutput(t *testing.T) {
	stub := &stubCompleter{content: `<structured_json>
{"title": "Backend Engineer", "company_name": "Acme", "seniority": "senior", "skills": ["Go", "SQL"]}
</structured_json>`}
	svc := NewService(testConfig(), stub)

	outcome, err := svc.ExtractJob(context.Background(), "We are hiring a backend engineer at Acme.")

	require.NoError(t, err)
	require.NotNil(t, outcome.Job)
	assert.Empty(t, outcome.Errors)
	assert.Equal(t, "Backend Engineer", outcome.Job.Title)
	assert.Equal(t, "Acme", outcome.Job.CompanyName)
	require.NotNil(t, outcome.Job.Seniority)
	assert.Equal(t, "Senior", *outcome.Job.Seniority)
	assert.Equal(t, []string{"Go", "SQL"}, outcome.Job.Skills)
	assert.Equal(t, "stub-model", outcome.Model)
	assert.Contains(t, outcome.RawOutput, "structured_json")
}

func TestExtractJob_MalformedOutputDegradesToDefaults(t *testing.T) {
	stub := &stubCompleter{content: "I am unable to produce JSON."}
	svc := NewService(testConfig(), stub)

	outcome, err := svc.ExtractJob(context.Background(), "Some job text goes here.")

	require.NoError(t, err)
	require.NotNil(t, outcome.Job)
	assert.NotEmpty(t, outcome.Errors)
	assert.Equal(t, "", outcome.Job.Title)
	assert.Nil(t, outcome.Job.Seniority)
	assert.NotNil(t, outcome.Job.Skills)
}

func TestExtractJob_CompleterErrorIsFatal(t *testing.T) {
	stub := &stubCompleter{err: errors.New("rate limited")}
	svc := NewService(testConfig(), stub)

	outcome, err := svc.ExtractJob(context.Background(), "Some job text goes here.")

	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestExtractJob_PromptContainsInputAndSchema(t *testing.T) {
	stub := &stubCompleter{content: `<structured_json>{}</structured_json>`}
	svc := NewService(testConfig(), stub)

	_, err := svc.ExtractJob(context.Background(), "A very specific posting about llamas.")

	require.NoError(t, err)
	require.Len(t, stub.lastRequest.Messages, 1)
	prompt := stub.lastRequest.Messages[0].Content
	assert.Contains(t, prompt, "A very specific posting about llamas.")
	assert.Contains(t, prompt, `"years_experience_min"`)
	assert.Contains(t, prompt, "<structured_json>")
	assert.Equal(t, "stub-model", stub.lastRequest.Model)
}

func TestExtractJob_PromptContainsContentShapingRules(t *testing.T) {
	stub := &stubCompleter{content: `<structured_json>{}</structured_json>`}
	svc := NewService(testConfig(), stub)

	_, err := svc.ExtractJob(context.Background(), "Some job text goes here.")

	require.NoError(t, err)
	prompt := stub.lastRequest.Messages[0].Content
	assert.Contains(t, prompt, "280 characters at most")
	assert.Contains(t, prompt, "12 items at most")
	assert.Contains(t, prompt, "20 items at most")
	assert.Contains(t, prompt, `"PostgreSQL" not "postgres"`)
}

func TestExtractJob_TruncatesOversizedInput(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.MaxTokens = 10

	stub := &stubCompleter{content: `<structured_json>{}</structured_json>`}
	svc := NewService(cfg, stub)

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}

	_, err := svc.ExtractJob(context.Background(), string(long))

	require.NoError(t, err)
	prompt := stub.lastRequest.Messages[0].Content
	assert.Contains(t, prompt, "xxx...")
	assert.NotContains(t, prompt, string(long))
}

func TestExtractResume_DecodesTypedView(t *testing.T) {
	stub := &stubCompleter{content: `<structured_json>
{"name": "Jane Doe", "skills": ["Go"], "experiences": [{"company": "Acme", "title": "Engineer", "currently_working": true}]}
</structured_json>`}
	svc := NewResumeService(testConfig(), stub)

	outcome, err := svc.ExtractResume(context.Background(), "Jane Doe\nEngineer at Acme")

	require.NoError(t, err)
	require.NotNil(t, outcome.Data)
	assert.Equal(t, "Jane Doe", outcome.Data["name"])

	require.NotNil(t, outcome.Resume)
	assert.Equal(t, "Jane Doe", outcome.Resume.Name)
	require.Len(t, outcome.Resume.Experiences, 1)
	assert.Equal(t, "Acme", outcome.Resume.Experiences[0].Company)
	assert.True(t, outcome.Resume.Experiences[0].CurrentlyWorking)
}
