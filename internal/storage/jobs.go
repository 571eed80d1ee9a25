package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"jobdesk-utils/pkg/models"
)

// SaveJobRecord persists a normalized job record together with its audit
// trail and returns the row's ID.
func (s *Store) SaveJobRecord(ctx context.Context, userID, rawInput string, outcome *models.ExtractionOutcome) (uuid.UUID, error) {
	jobJSON, err := json.Marshal(outcome.Job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job record: %w", err)
	}

	errorsJSON, err := json.Marshal(outcome.Errors)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal diagnostics: %w", err)
	}

	var usageJSON []byte
	if outcome.Usage != nil {
		usageJSON, _ = json.Marshal(outcome.Usage)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO job_records (user_id, raw_input, record, llm_output_raw, errors, usage, llm_model)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		nullableString(userID), rawInput, jobJSON, outcome.RawOutput, errorsJSON, usageJSON, outcome.Model,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job record: %w", err)
	}

	s.logger.Debug("Job record persisted", map[string]interface{}{
		"id": id.String(),
	})

	return id, nil
}

// SaveHeuristicRecord persists a heuristic parse result and returns the
// row's ID. Heuristic results share the table with model-assisted ones;
// the engine column tells them apart.
func (s *Store) SaveHeuristicRecord(ctx context.Context, userID, rawInput string, job *models.HeuristicJob) (uuid.UUID, error) {
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal heuristic record: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO job_records (user_id, raw_input, record, engine)
		 VALUES ($1, $2, $3, 'heuristic')
		 RETURNING id`,
		nullableString(userID), rawInput, jobJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save heuristic record: %w", err)
	}

	return id, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
