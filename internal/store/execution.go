package store

import (
	"context"
	"fmt"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExecutionStore struct {
	db *pgxpool.Pool
}

func NewExecutionStore(db *pgxpool.Pool) *ExecutionStore {
	return &ExecutionStore{db: db}
}

func (s *ExecutionStore) Create(ctx context.Context, e *domain.Execution) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO agent_executions (agent_id, input_data, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, started_at`,
		e.AgentID, e.InputData, e.Status,
	).Scan(&e.ID, &e.StartedAt)
}

func (s *ExecutionStore) Finalize(ctx context.Context, e *domain.Execution) error {
	// The status guard keeps terminal records immutable.
	tag, err := s.db.Exec(ctx,
		`UPDATE agent_executions
		 SET output_data = $2, status = $3, error_message = $4, completed_at = $5
		 WHERE id = $1 AND status = 'running'`,
		e.ID, e.OutputData, e.Status, e.ErrorMessage, e.CompletedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ExecutionStore) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]domain.Execution, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, agent_id, input_data, output_data, status, error_message, started_at, completed_at
		 FROM agent_executions WHERE agent_id = $1
		 ORDER BY started_at DESC`,
		agentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list executions query: %w", err)
	}
	defer rows.Close()

	executions := []domain.Execution{}
	for rows.Next() {
		var e domain.Execution
		if err := rows.Scan(&e.ID, &e.AgentID, &e.InputData, &e.OutputData, &e.Status, &e.ErrorMessage, &e.StartedAt, &e.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan execution row: %w", err)
		}
		executions = append(executions, e)
	}
	return executions, rows.Err()
}
