package evaluation

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
	}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Model = "stub-model"
	cfg.LLM.MaxTokens = 4000
	return cfg
}

const interviewResponse = `<evaluation>
<overall_performance>
The answer addresses the question directly with solid examples.
Score: 8
</overall_performance>

<structural_integrity>
Well organized with a clear beginning and end.
Score: 7
</structural_integrity>

<content_accuracy>
Mostly accurate, one dated claim.
Score: 6
</content_accuracy>

<fluency_of_expression>
Fluent and natural.
Score: 9
</fluency_of_expression>

<strengths>
1. Directly answers the question
2. Uses a concrete example
</strengths>

<priority_areas_for_improvement>
1. Quantify the outcome
2. Tighten the conclusion
</priority_areas_for_improvement>

<comparative_analysis>
✅ Structure matches what experts produce
✅ Example selection on par with average candidates
❌ Lacks the metrics experts typically cite
</comparative_analysis>

<encouraging_advice>
1. Keep practicing with timed answers
</encouraging_advice>
</evaluation>`

func TestEvaluateAnswer_FullResponse(t *testing.T) {
	stub := &stubCompleter{content: interviewResponse}
	svc := NewInterviewService(testConfig(), stub)

	question := models.InterviewQuestion{Title: "Tell me about a conflict you resolved."}
	outcome, err := svc.EvaluateAnswer(context.Background(), question, "Last year I mediated...")

	require.NoError(t, err)
	assert.Empty(t, outcome.Errors)
	assert.Equal(t, "stub-model", outcome.Model)

	data := outcome.Data
	require.NotNil(t, data)

	require.NotNil(t, data.OverallPerformance.Score)
	assert.Equal(t, 8, *data.OverallPerformance.Score)
	require.NotNil(t, data.OverallPerformance.Justification)
	assert.Contains(t, *data.OverallPerformance.Justification, "solid examples")

	require.NotNil(t, data.StructuralIntegrity.Score)
	assert.Equal(t, 7, *data.StructuralIntegrity.Score)
	require.NotNil(t, data.ContentAccuracy.Score)
	assert.Equal(t, 6, *data.ContentAccuracy.Score)
	require.NotNil(t, data.FluencyOfExpression.Score)
	assert.Equal(t, 9, *data.FluencyOfExpression.Score)

	assert.Equal(t, []string{"Directly answers the question", "Uses a concrete example"}, data.Strengths)
	assert.Len(t, data.PriorityAreas, 2)
	require.Len(t, data.ComparativeAnalysis, 3)
	assert.Equal(t, "✅ Structure matches what experts produce", data.ComparativeAnalysis[0])
	assert.Equal(t, "❌ Lacks the metrics experts typically cite", data.ComparativeAnalysis[2])
	assert.Equal(t, []string{"Keep practicing with timed answers"}, data.EncouragingAdvice)
}

func TestEvaluateAnswer_MissingOverallScore(t *testing.T) {
	stub := &stubCompleter{content: `<evaluation>
<overall_performance>
A reasonable answer but I cannot commit to a number.
</overall_performance>
<strengths>
1. Honest
</strengths>
</evaluation>`}
	svc := NewInterviewService(testConfig(), stub)

	outcome, err := svc.EvaluateAnswer(context.Background(), models.InterviewQuestion{Title: "Q"}, "A")

	require.NoError(t, err)
	assert.Contains(t, outcome.Errors, "Missing or unparseable overall performance score.")

	data := outcome.Data
	assert.Nil(t, data.OverallPerformance.Score)
	require.NotNil(t, data.OverallPerformance.Justification)
	assert.Nil(t, data.PriorityAreas)
	assert.Equal(t, []string{"Honest"}, data.Strengths)
}

func TestEvaluateAnswer_CompleterErrorIsFatal(t *testing.T) {
	stub := &stubCompleter{err: errors.New("provider down")}
	svc := NewInterviewService(testConfig(), stub)

	outcome, err := svc.EvaluateAnswer(context.Background(), models.InterviewQuestion{Title: "Q"}, "A")

	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider down")
}

func TestEvaluateAnswer_PromptContainsQuestionAndAnswer(t *testing.T) {
	stub := &stubCompleter{content: interviewResponse}
	svc := NewInterviewService(testConfig(), stub)

	question := models.InterviewQuestion{Title: "Describe a production incident."}
	_, err := svc.EvaluateAnswer(context.Background(), question, "  The database fell over.  ")

	require.NoError(t, err)
	require.Len(t, stub.lastRequest.Messages, 1)
	prompt := stub.lastRequest.Messages[0].Content
	assert.Contains(t, prompt, "Describe a production incident.")
	assert.Contains(t, prompt, "<user_answer>\nThe database fell over.\n</user_answer>")
}
