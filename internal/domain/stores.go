package domain

import (
	"context"

	"github.com/google/uuid"
)

type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type AgentStore interface {
	Create(ctx context.Context, a *Agent) error
	GetByID(ctx context.Context, id uuid.UUID) (*Agent, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Agent, error)
	Update(ctx context.Context, a *Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TemplateStore interface {
	Create(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, id uuid.UUID) (*Template, error)
	List(ctx context.Context) ([]Template, error)
	Count(ctx context.Context) (int, error)
}

type ExecutionStore interface {
	Create(ctx context.Context, e *Execution) error
	// Finalize persists the terminal state of a running execution.
	// Records already in a terminal state are never overwritten.
	Finalize(ctx context.Context, e *Execution) error
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]Execution, error)
}
