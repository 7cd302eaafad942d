package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AgentStore struct {
	db *pgxpool.Pool
}

func NewAgentStore(db *pgxpool.Pool) *AgentStore {
	return &AgentStore{db: db}
}

func (s *AgentStore) Create(ctx context.Context, a *domain.Agent) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO agents (name, description, agent_type, configuration, is_active, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Description, a.AgentType, a.Configuration, a.IsActive, a.UserID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (s *AgentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, description, agent_type, configuration, is_active, user_id, created_at, updated_at
		 FROM agents WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Description, &a.AgentType, &a.Configuration, &a.IsActive, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AgentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Agent, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, agent_type, configuration, is_active, user_id, created_at, updated_at
		 FROM agents WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list agents query: %w", err)
	}
	defer rows.Close()

	agents := []domain.Agent{}
	for rows.Next() {
		var a domain.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.AgentType, &a.Configuration, &a.IsActive, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan agent row: %w", err)
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (s *AgentStore) Update(ctx context.Context, a *domain.Agent) error {
	// updated_at is refreshed on every update, even when no field changed.
	err := s.db.QueryRow(ctx,
		`UPDATE agents
		 SET name = $2, description = $3, agent_type = $4, configuration = $5, is_active = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		a.ID, a.Name, a.Description, a.AgentType, a.Configuration, a.IsActive,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AgentStore) Delete(ctx context.Context, id uuid.UUID) error {
	// Dependent agent_executions rows are removed by ON DELETE CASCADE.
	tag, err := s.db.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
