package service

import (
	"context"
	"sort"
	"time"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/Chit-ai/ChittaFlow/internal/store"
	"github.com/google/uuid"
)

// mockUserStore implements domain.UserStore for testing.
type mockUserStore struct {
	users map[uuid.UUID]*domain.User
	gets  int
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (m *mockUserStore) Create(ctx context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = u
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.gets++
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

// mockAgentStore implements domain.AgentStore for testing.
type mockAgentStore struct {
	agents map[uuid.UUID]*domain.Agent
}

func newMockAgentStore() *mockAgentStore {
	return &mockAgentStore{agents: make(map[uuid.UUID]*domain.Agent)}
}

func (m *mockAgentStore) Create(ctx context.Context, a *domain.Agent) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	m.agents[a.ID] = a
	return nil
}

func (m *mockAgentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	a, ok := m.agents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (m *mockAgentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Agent, error) {
	agents := []domain.Agent{}
	for _, a := range m.agents {
		if a.UserID == userID {
			agents = append(agents, *a)
		}
	}
	return agents, nil
}

func (m *mockAgentStore) Update(ctx context.Context, a *domain.Agent) error {
	if _, ok := m.agents[a.ID]; !ok {
		return store.ErrNotFound
	}
	a.UpdatedAt = time.Now().UTC()
	m.agents[a.ID] = a
	return nil
}

func (m *mockAgentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.agents[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.agents, id)
	return nil
}

// mockTemplateStore implements domain.TemplateStore for testing.
type mockTemplateStore struct {
	templates []*domain.Template
}

func newMockTemplateStore() *mockTemplateStore {
	return &mockTemplateStore{}
}

func (m *mockTemplateStore) Create(ctx context.Context, t *domain.Template) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now().UTC()
	m.templates = append(m.templates, t)
	return nil
}

func (m *mockTemplateStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	for _, t := range m.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockTemplateStore) List(ctx context.Context) ([]domain.Template, error) {
	templates := []domain.Template{}
	for _, t := range m.templates {
		templates = append(templates, *t)
	}
	return templates, nil
}

func (m *mockTemplateStore) Count(ctx context.Context) (int, error) {
	return len(m.templates), nil
}

// mockExecutionStore implements domain.ExecutionStore for testing.
type mockExecutionStore struct {
	executions []*domain.Execution
}

func newMockExecutionStore() *mockExecutionStore {
	return &mockExecutionStore{}
}

func (m *mockExecutionStore) Create(ctx context.Context, e *domain.Execution) error {
	e.ID = uuid.New()
	e.StartedAt = time.Now().UTC()
	// Store a snapshot so Finalize sees the persisted state, not the
	// caller's in-flight mutations.
	snapshot := *e
	m.executions = append(m.executions, &snapshot)
	return nil
}

func (m *mockExecutionStore) Finalize(ctx context.Context, e *domain.Execution) error {
	for _, existing := range m.executions {
		if existing.ID == e.ID && existing.Status == domain.ExecutionStatusRunning {
			*existing = *e
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockExecutionStore) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]domain.Execution, error) {
	executions := []domain.Execution{}
	for _, e := range m.executions {
		if e.AgentID == agentID {
			executions = append(executions, *e)
		}
	}
	sort.Slice(executions, func(i, j int) bool {
		return executions[i].StartedAt.After(executions[j].StartedAt)
	})
	return executions, nil
}
