package models

// ParseJobRequest is the payload for parsing a raw job description.
// Engine selects the pipeline: "llm" (default) or "heuristic" for the
// deterministic offline path.
type ParseJobRequest struct {
	Raw    string `json:"raw" validate:"required,min=20"`
	Engine string `json:"engine,omitempty" validate:"omitempty,oneof=llm heuristic"`
	UserID string `json:"user_id,omitempty"`
}

// ProfileEvaluationRequest is the payload for evaluating a profile against a
// parsed job description. Both documents are forwarded verbatim into the
// evaluation prompt.
type ProfileEvaluationRequest struct {
	Profile map[string]interface{} `json:"profile" validate:"required"`
	Job     map[string]interface{} `json:"job" validate:"required"`
	UserID  string                 `json:"user_id,omitempty"`
	JobID   string                 `json:"job_id,omitempty" validate:"omitempty,uuid"`
}

// InterviewEvaluationRequest is the payload for evaluating an interview
// answer against its question.
type InterviewEvaluationRequest struct {
	Question InterviewQuestion `json:"question" validate:"required"`
	Answer   string            `json:"answer" validate:"required,min=1"`
	UserID   string            `json:"user_id,omitempty"`
}

// ResumeExtractRequest is the JSON payload for extracting structured resume
// data from plain text. PDF uploads go through the multipart form instead.
type ResumeExtractRequest struct {
	Text string `json:"text" validate:"required,min=20"`
}
