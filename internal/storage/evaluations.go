package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"jobdesk-utils/pkg/models"
)

// SaveProfileEvaluation persists a profile evaluation outcome and returns
// the row's ID.
func (s *Store) SaveProfileEvaluation(ctx context.Context, userID string, jobID *uuid.UUID, outcome *models.ProfileEvaluationOutcome) (uuid.UUID, error) {
	dataJSON, err := json.Marshal(outcome.Data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evaluation: %w", err)
	}

	errorsJSON, _ := json.Marshal(outcome.Errors)

	var usageJSON []byte
	if outcome.Usage != nil {
		usageJSON, _ = json.Marshal(outcome.Usage)
	}

	var totalScore interface{}
	if outcome.Data != nil && outcome.Data.Overall.TotalScore != nil {
		totalScore = *outcome.Data.Overall.TotalScore
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO profile_evaluations (user_id, job_record_id, total_score, evaluation, raw_output, errors, usage, llm_model)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		nullableString(userID), jobID, totalScore, dataJSON, outcome.RawOutput, errorsJSON, usageJSON, outcome.Model,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile evaluation: %w", err)
	}

	return id, nil
}

// SaveInterviewEvaluation persists an interview answer evaluation outcome
// and returns the row's ID.
func (s *Store) SaveInterviewEvaluation(ctx context.Context, userID, answer string, outcome *models.InterviewEvaluationOutcome) (uuid.UUID, error) {
	dataJSON, err := json.Marshal(outcome.Data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evaluation: %w", err)
	}

	errorsJSON, _ := json.Marshal(outcome.Errors)

	var usageJSON []byte
	if outcome.Usage != nil {
		usageJSON, _ = json.Marshal(outcome.Usage)
	}

	var overallScore interface{}
	if outcome.Data != nil && outcome.Data.OverallPerformance.Score != nil {
		overallScore = *outcome.Data.OverallPerformance.Score
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO interview_evaluations (user_id, answer, overall_score, evaluation, raw_output, errors, usage, llm_model)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		nullableString(userID), answer, overallScore, dataJSON, outcome.RawOutput, errorsJSON, usageJSON, outcome.Model,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save interview evaluation: %w", err)
	}

	return id, nil
}
