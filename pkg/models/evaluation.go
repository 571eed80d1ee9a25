package models

// ScoredSection is a tag-delimited evaluation section carrying a numeric
// score and the justification text that preceded it.
type ScoredSection struct {
	Score         *int    `json:"score"`
	Justification *string `json:"justification"`
}

// CriterionResult is one scored criterion inside a profile evaluation block.
type CriterionResult struct {
	Score    *int    `json:"score"`
	Feedback *string `json:"feedback"`
}

// InterviewEvaluation is the parsed form of an interview answer evaluation
// response. List sections are nil (not empty) when the tag was missing.
type InterviewEvaluation struct {
	OverallPerformance  ScoredSection `json:"overall_performance"`
	StructuralIntegrity ScoredSection `json:"structural_integrity"`
	ContentAccuracy     ScoredSection `json:"content_accuracy"`
	FluencyOfExpression ScoredSection `json:"fluency_of_expression"`
	Strengths           []string      `json:"strengths"`
	PriorityAreas       []string      `json:"priority_areas_for_improvement"`
	ComparativeAnalysis []string      `json:"comparative_analysis"`
	EncouragingAdvice   []string      `json:"encouraging_advice"`
}

// OverallRecommendation is the summary block of a profile evaluation.
type OverallRecommendation struct {
	TotalScore          *int    `json:"total_score"`
	Recommendation      string  `json:"recommendation"`
	Improvements        *string `json:"improvements"`
	Strengths           *string `json:"strengths"`
	AreasForImprovement *string `json:"areas_for_improvement"`
}

// ProfileEvaluation is the parsed form of a profile-vs-job evaluation
// response. Criterion maps only contain the keys that parsed successfully.
type ProfileEvaluation struct {
	Impact           map[string]CriterionResult `json:"impact"`
	SkillsAndTraits  map[string]CriterionResult `json:"skills_and_traits"`
	AlignmentWithJob map[string]CriterionResult `json:"alignment_with_job"`
	Overall          OverallRecommendation      `json:"overall"`
	SpecificChanges  []map[string]interface{}   `json:"specific_changes"`
}

// ProfileEvaluationOutcome carries the parsed evaluation plus its audit trail.
type ProfileEvaluationOutcome struct {
	Data      *ProfileEvaluation     `json:"data"`
	Errors    []string               `json:"errors"`
	RawOutput string                 `json:"raw_output"`
	Usage     map[string]interface{} `json:"usage,omitempty"`
	Model     string                 `json:"llm_model,omitempty"`
}

// InterviewEvaluationOutcome carries the parsed interview answer evaluation
// plus its audit trail.
type InterviewEvaluationOutcome struct {
	Data      *InterviewEvaluation   `json:"data"`
	Errors    []string               `json:"errors"`
	RawOutput string                 `json:"raw_output"`
	Usage     map[string]interface{} `json:"usage,omitempty"`
	Model     string                 `json:"llm_model,omitempty"`
}

// InterviewQuestion is the question context supplied with an answer to
// evaluate. Explanation is the model answer guidance shown to the evaluator.
type InterviewQuestion struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}
