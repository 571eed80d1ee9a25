package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobdesk-utils/internal/config"
	"jobdesk-utils/internal/logging"
	"jobdesk-utils/internal/parser"
	"jobdesk-utils/pkg/models"
	"jobdesk-utils/pkg/utils"
)

// InterviewService evaluates a user's answer to an interview question and
// parses the tag-structured model output.
type InterviewService struct {
	config    *config.Config
	completer parser.Completer
	logger    logging.Logger
}

// NewInterviewService creates a new interview answer evaluation service
func NewInterviewService(cfg *config.Config, completer parser.Completer) *InterviewService {
	return &InterviewService{
		config:    cfg,
		completer: completer,
		logger:    logging.GetGlobalLogger(),
	}
}

// EvaluateAnswer runs the full interview answer evaluation. Parse failures
// degrade to diagnostics on the outcome, only transport errors are fatal.
func (s *InterviewService) EvaluateAnswer(ctx context.Context, question models.InterviewQuestion, answer string) (*models.InterviewEvaluationOutcome, error) {
	startTime := time.Now()

	response, err := s.completer.Complete(ctx, models.CompletionRequest{
		Model:       s.config.LLM.Model,
		Temperature: s.config.LLM.Temperature,
		MaxTokens:   s.config.LLM.MaxTokens,
		Messages: []models.CompletionMessage{
			{Role: "user", Content: buildInterviewPrompt(question, strings.TrimSpace(answer))},
		},
	})
	if err != nil {
		return nil, utils.NewLLMError(err.Error())
	}

	data, diagnostics := parseInterviewEvaluation(response.Content)

	s.logger.Info("Interview answer evaluation completed", map[string]interface{}{
		"question":        question.Title,
		"diagnostics":     len(diagnostics),
		"processing_time": time.Since(startTime).String(),
		"model":           response.Model,
	})

	return &models.InterviewEvaluationOutcome{
		Data:      data,
		Errors:    diagnostics,
		RawOutput: response.Content,
		Usage:     response.Usage,
		Model:     response.Model,
	}, nil
}

// parseInterviewEvaluation extracts every section from the tag-structured
// response. Missing sections stay nil; only a missing overall performance
// score counts as a diagnostic.
func parseInterviewEvaluation(content string) (*models.InterviewEvaluation, []string) {
	var errs []string

	data := &models.InterviewEvaluation{
		OverallPerformance:  ParseScored(Section(content, "overall_performance")),
		StructuralIntegrity: ParseScored(Section(content, "structural_integrity")),
		ContentAccuracy:     ParseScored(Section(content, "content_accuracy")),
		FluencyOfExpression: ParseScored(Section(content, "fluency_of_expression")),
		Strengths:           ParseList(Section(content, "strengths")),
		PriorityAreas:       ParseList(Section(content, "priority_areas_for_improvement")),
		ComparativeAnalysis: ParseList(Section(content, "comparative_analysis")),
		EncouragingAdvice:   ParseList(Section(content, "encouraging_advice")),
	}

	if data.OverallPerformance.Score == nil {
		errs = append(errs, "Missing or unparseable overall performance score.")
	}

	return data, errs
}

// buildInterviewPrompt renders the evaluation prompt with the question JSON
// and the sanitized answer embedded.
func buildInterviewPrompt(question models.InterviewQuestion, answer string) string {
	questionJSON, _ := json.Marshal(question)

	return fmt.Sprintf(`You are an expert evaluator tasked with assessing a user's answer to a given question. You will be provided with a JSON object containing the question details and the user's answer. Your goal is to provide a comprehensive evaluation of the answer, including scores, strengths, areas for improvement, and advice.

First, you will be presented with the question details in JSON format:

<question_json>
%s
</question_json>

Next, you will see the user's answer:

<user_answer>
%s
</user_answer>

Analyze the user's answer in relation to the question provided. Consider the following aspects:

1. Overall Performance: How well the answer addresses the question as a whole.
2. Structural Integrity: The organization and logical flow of the answer.
3. Content Accuracy: The correctness and relevance of the information provided.
4. Fluency of Expression: The clarity and effectiveness of the language used.

For each aspect, provide a detailed justification followed by a score on a scale of 1 to 10, where 1 is poor and 10 is excellent.

After your analysis, create the following sections:

1. Strengths: Identify 2-3 key strengths of the answer.
2. Priority Areas for Improvement: Highlight 2-3 specific areas where the user can improve their answer.
3. Comparative Analysis: Output EXACTLY 3-5 checklist bullets (no paragraphs). Each line must start with:
   - ✅ for aspects where the user's performance meets or exceeds expectations (average or expert),
   - ❌ for aspects where the user's performance falls short.
   Keep each bullet concise and comparative (what the user did vs average vs expert).
4. Encouraging Advice: Provide 2-3 pieces of constructive and motivating advice for the user to enhance their performance in future responses.

Your final output should be formatted as follows:

<evaluation>
<overall_performance>
[Justification for overall performance]
Score: [1-10]
</overall_performance>

<structural_integrity>
[Justification for structural integrity]
Score: [1-10]
</structural_integrity>

<content_accuracy>
[Justification for content accuracy]
Score: [1-10]
</content_accuracy>

<fluency_of_expression>
[Justification for fluency of expression]
Score: [1-10]
</fluency_of_expression>

<strengths>
1. [First strength]
2. [Second strength]
3. [Third strength (if applicable)]
</strengths>

<priority_areas_for_improvement>
1. [First area for improvement]
2. [Second area for improvement]
3. [Third area for improvement (if applicable)]
</priority_areas_for_improvement>

<comparative_analysis>
✅ [Concise highlight comparing user vs average/expert]
✅ [Concise highlight comparing user vs average/expert]
✅ [Concise highlight comparing user vs average/expert]
❌ [Concise highlight showing where user falls short]
[Optional 5th bullet with ✅ or ❌]
</comparative_analysis>

<encouraging_advice>
1. [First piece of advice]
2. [Second piece of advice]
3. [Third piece of advice (if applicable)]
</encouraging_advice>
</evaluation>

Ensure that your evaluation is balanced, constructive, and tailored to the specific question and answer provided. Your goal is to provide valuable feedback that will help the user improve their performance in future responses.`, questionJSON, answer)
}
