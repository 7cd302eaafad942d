package service

import (
	"context"
	"errors"
	"time"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/Chit-ai/ChittaFlow/internal/runner"
	"github.com/Chit-ai/ChittaFlow/internal/store"
	"github.com/google/uuid"
)

var ErrAgentInactive = errors.New("agent is not active")

// ExecutionService drives the execution state machine: a record is
// created in the running state, handed to exactly one runner, and
// finalized as completed or failed. Runner failures are recorded on the
// execution, never returned to the caller; only validation failures
// (missing agent, inactive agent) propagate before a record exists.
type ExecutionService struct {
	executions domain.ExecutionStore
	agents     domain.AgentStore
}

func NewExecutionService(executions domain.ExecutionStore, agents domain.AgentStore) *ExecutionService {
	return &ExecutionService{executions: executions, agents: agents}
}

func (s *ExecutionService) Execute(ctx context.Context, agentID uuid.UUID, input domain.Document) (*domain.Execution, error) {
	agent, err := s.agents.GetByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	if !agent.IsActive {
		return nil, ErrAgentInactive
	}

	if input == nil {
		input = domain.Document{}
	}

	exec := &domain.Execution{
		AgentID:   agent.ID,
		InputData: input,
		Status:    domain.ExecutionStatusRunning,
	}
	if err := s.executions.Create(ctx, exec); err != nil {
		return nil, err
	}

	output, runErr := s.run(ctx, agent, input)

	now := time.Now().UTC()
	exec.CompletedAt = &now
	if runErr != nil {
		exec.Status = domain.ExecutionStatusFailed
		msg := runErr.Error()
		exec.ErrorMessage = &msg
	} else {
		exec.Status = domain.ExecutionStatusCompleted
		exec.OutputData = output
	}

	if err := s.executions.Finalize(ctx, exec); err != nil {
		return nil, err
	}
	return exec, nil
}

// run selects and invokes the runner for the agent's type. An unknown
// agent type counts as a run failure so the attempt is recorded as a
// failed execution rather than a successful one with an error payload.
func (s *ExecutionService) run(ctx context.Context, agent *domain.Agent, input domain.Document) (domain.Document, error) {
	rn, err := runner.ForType(agent.AgentType)
	if err != nil {
		return nil, err
	}
	return rn.Run(ctx, input, agent.Configuration)
}

func (s *ExecutionService) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]domain.Execution, error) {
	return s.executions.ListByAgent(ctx, agentID)
}
