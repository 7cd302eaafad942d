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

type TemplateStore struct {
	db *pgxpool.Pool
}

func NewTemplateStore(db *pgxpool.Pool) *TemplateStore {
	return &TemplateStore{db: db}
}

func (s *TemplateStore) Create(ctx context.Context, t *domain.Template) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO agent_templates (name, description, agent_type, is_premium, default_configuration)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		t.Name, t.Description, t.AgentType, t.IsPremium, t.DefaultConfiguration,
	).Scan(&t.ID, &t.CreatedAt)
}

func (s *TemplateStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	t := &domain.Template{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, description, agent_type, is_premium, default_configuration, created_at
		 FROM agent_templates WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.AgentType, &t.IsPremium, &t.DefaultConfiguration, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TemplateStore) List(ctx context.Context) ([]domain.Template, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, agent_type, is_premium, default_configuration, created_at
		 FROM agent_templates ORDER BY created_at, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list templates query: %w", err)
	}
	defer rows.Close()

	templates := []domain.Template{}
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.AgentType, &t.IsPremium, &t.DefaultConfiguration, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan template row: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *TemplateStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM agent_templates`).Scan(&count)
	return count, err
}
