package models

import "time"

// ParseJobResponse is the response from a synchronous parse request. Exactly
// one of Job or HeuristicJob is set depending on the engine used.
type ParseJobResponse struct {
	Success        bool          `json:"success"`
	Job            *JobRecord    `json:"job,omitempty"`
	HeuristicJob   *HeuristicJob `json:"heuristic_job,omitempty"`
	JobID          string        `json:"job_id,omitempty"`
	Errors         []string      `json:"errors,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	Engine         string        `json:"engine_used"`
	RequestID      string        `json:"request_id"`
}

// EvaluationResponse is the response envelope shared by the profile and
// interview evaluation endpoints.
type EvaluationResponse struct {
	Success        bool          `json:"success"`
	EvaluationID   string        `json:"evaluation_id,omitempty"`
	Data           interface{}   `json:"data,omitempty"`
	Errors         []string      `json:"errors,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// ResumeExtractResponse is the response from a resume extraction request.
type ResumeExtractResponse struct {
	Success        bool                   `json:"success"`
	Data           map[string]interface{} `json:"data,omitempty"`
	Resume         *ParsedResume          `json:"resume,omitempty"`
	Errors         []string               `json:"errors,omitempty"`
	ProcessingTime time.Duration          `json:"processing_time"`
	RequestID      string                 `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
