package service

import (
	"context"
	"errors"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/Chit-ai/ChittaFlow/internal/store"
	"github.com/google/uuid"
)

var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrAgentNameMissing = errors.New("name is required")
	ErrAgentTypeMissing = errors.New("agent_type is required")
	ErrOwnerMissing     = errors.New("user_id is required")
	ErrTemplateNotFound = errors.New("template not found")
	ErrPremiumRequired  = errors.New("premium subscription required for this template")
)

type AgentService struct {
	agents    domain.AgentStore
	templates domain.TemplateStore
	users     domain.UserStore
}

func NewAgentService(agents domain.AgentStore, templates domain.TemplateStore, users domain.UserStore) *AgentService {
	return &AgentService{agents: agents, templates: templates, users: users}
}

func (s *AgentService) Create(ctx context.Context, a *domain.Agent) error {
	if a.Name == "" {
		return ErrAgentNameMissing
	}
	if a.AgentType == "" {
		return ErrAgentTypeMissing
	}
	if a.UserID == uuid.Nil {
		return ErrOwnerMissing
	}
	if a.Configuration == nil {
		a.Configuration = domain.Document{}
	}
	a.IsActive = true
	return s.agents.Create(ctx, a)
}

func (s *AgentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	a, err := s.agents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AgentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Agent, error) {
	return s.agents.ListByUser(ctx, userID)
}

// AgentUpdate carries a partial update: nil fields keep their prior value.
type AgentUpdate struct {
	Name          *string
	Description   *string
	AgentType     *domain.AgentType
	Configuration domain.Document
	IsActive      *bool
}

func (s *AgentService) Update(ctx context.Context, id uuid.UUID, upd AgentUpdate) (*domain.Agent, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		a.Name = *upd.Name
	}
	if upd.Description != nil {
		a.Description = *upd.Description
	}
	if upd.AgentType != nil {
		a.AgentType = *upd.AgentType
	}
	if upd.Configuration != nil {
		a.Configuration = upd.Configuration
	}
	if upd.IsActive != nil {
		a.IsActive = *upd.IsActive
	}

	if err := s.agents.Update(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AgentService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.agents.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAgentNotFound
	}
	return err
}

// TemplateOverrides are the caller-supplied fields that take precedence
// over a template's values when instantiating an agent from it.
type TemplateOverrides struct {
	Name        *string
	Description *string
}

// InstantiateFromTemplate creates an agent from a template. Premium
// templates require the owner to hold a premium subscription; free
// templates never consult the owner record at all. The template's
// default configuration is deep-copied so later mutations of the
// agent's configuration cannot leak back into the template.
func (s *AgentService) InstantiateFromTemplate(ctx context.Context, templateID, userID uuid.UUID, ov TemplateOverrides) (*domain.Agent, error) {
	if userID == uuid.Nil {
		return nil, ErrOwnerMissing
	}

	tmpl, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	if tmpl.IsPremium {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrPremiumRequired
			}
			return nil, err
		}
		if !user.IsPremium {
			return nil, ErrPremiumRequired
		}
	}

	a := &domain.Agent{
		Name:          tmpl.Name,
		Description:   tmpl.Description,
		AgentType:     tmpl.AgentType,
		Configuration: tmpl.DefaultConfiguration.Copy(),
		IsActive:      true,
		UserID:        userID,
	}
	if ov.Name != nil {
		a.Name = *ov.Name
	}
	if ov.Description != nil {
		a.Description = *ov.Description
	}

	if err := s.agents.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
