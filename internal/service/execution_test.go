package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/google/uuid"
)

func setupExecutionTest(t *testing.T, agentType domain.AgentType, active bool) (*ExecutionService, *mockExecutionStore, *domain.Agent) {
	t.Helper()

	agentStore := newMockAgentStore()
	executionStore := newMockExecutionStore()
	svc := NewExecutionService(executionStore, agentStore)

	agent := &domain.Agent{
		Name:          "Test Agent",
		AgentType:     agentType,
		Configuration: domain.Document{},
		IsActive:      active,
		UserID:        uuid.New(),
	}
	if err := agentStore.Create(context.Background(), agent); err != nil {
		t.Fatalf("create agent: %v", err)
	}
	return svc, executionStore, agent
}

func TestExecutionService_Execute_AgentNotFound(t *testing.T) {
	svc, _, _ := setupExecutionTest(t, domain.AgentTypeMarketing, true)

	_, err := svc.Execute(context.Background(), uuid.New(), domain.Document{})
	if err != ErrAgentNotFound {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
}

func TestExecutionService_Execute_InactiveAgent(t *testing.T) {
	svc, executionStore, agent := setupExecutionTest(t, domain.AgentTypeMarketing, false)

	_, err := svc.Execute(context.Background(), agent.ID, domain.Document{})
	if err != ErrAgentInactive {
		t.Fatalf("expected ErrAgentInactive, got %v", err)
	}
	if len(executionStore.executions) != 0 {
		t.Fatalf("expected no execution record for inactive agent, got %d", len(executionStore.executions))
	}
}

func TestExecutionService_Execute_Completed(t *testing.T) {
	svc, executionStore, agent := setupExecutionTest(t, domain.AgentTypeCustomerSupport, true)
	ctx := context.Background()

	exec, err := svc.Execute(ctx, agent.ID, domain.Document{"message": "I want a REFUND"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if exec.Status != domain.ExecutionStatusCompleted {
		t.Fatalf("expected completed status, got %s", exec.Status)
	}
	if exec.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}
	if exec.ErrorMessage != nil {
		t.Fatalf("expected no error message, got %q", *exec.ErrorMessage)
	}
	if exec.OutputData["confidence"] != 0.85 {
		t.Fatalf("expected refund flow output, got %v", exec.OutputData)
	}
	if exec.InputData["message"] != "I want a REFUND" {
		t.Fatalf("expected input stored verbatim, got %v", exec.InputData)
	}
	if len(executionStore.executions) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(executionStore.executions))
	}
	if executionStore.executions[0].Status != domain.ExecutionStatusCompleted {
		t.Fatalf("expected persisted record finalized, got %s", executionStore.executions[0].Status)
	}
}

func TestExecutionService_Execute_UnknownTypeFails(t *testing.T) {
	svc, executionStore, agent := setupExecutionTest(t, "fortune_telling", true)

	exec, err := svc.Execute(context.Background(), agent.ID, domain.Document{})
	if err != nil {
		t.Fatalf("expected no request-level error, got %v", err)
	}

	if exec.Status != domain.ExecutionStatusFailed {
		t.Fatalf("expected failed status for unknown agent type, got %s", exec.Status)
	}
	if exec.ErrorMessage == nil || !strings.Contains(*exec.ErrorMessage, "unknown agent type: fortune_telling") {
		t.Fatalf("expected unknown agent type message, got %v", exec.ErrorMessage)
	}
	if exec.CompletedAt == nil {
		t.Fatal("expected completed_at to be set on failure")
	}
	if exec.OutputData != nil {
		t.Fatalf("expected no output data on failure, got %v", exec.OutputData)
	}
	if len(executionStore.executions) != 1 {
		t.Fatalf("expected failed attempt recorded, got %d records", len(executionStore.executions))
	}
}

func TestExecutionService_Execute_NeverLeavesRunning(t *testing.T) {
	svc, executionStore, agent := setupExecutionTest(t, domain.AgentTypeDataAnalysis, true)
	ctx := context.Background()

	// Empty data is a business error: the run still completes, with an
	// error-shaped payload rather than a failed status.
	exec, err := svc.Execute(ctx, agent.ID, domain.Document{"data": []any{}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if exec.Status != domain.ExecutionStatusCompleted {
		t.Fatalf("expected completed status, got %s", exec.Status)
	}
	if exec.OutputData["error"] != "No data provided for analysis" {
		t.Fatalf("expected error document output, got %v", exec.OutputData)
	}

	for _, e := range executionStore.executions {
		if e.Status == domain.ExecutionStatusRunning {
			t.Fatal("expected no record left in running state")
		}
	}
}

func TestExecutionService_ListByAgent_NewestFirst(t *testing.T) {
	svc, _, agent := setupExecutionTest(t, domain.AgentTypeMarketing, true)
	ctx := context.Background()

	first, err := svc.Execute(ctx, agent.ID, domain.Document{"campaign_type": "email"})
	if err != nil {
		t.Fatalf("first execute: %v", err)
	}
	time.Sleep(time.Millisecond)
	second, err := svc.Execute(ctx, agent.ID, domain.Document{"campaign_type": "social_media"})
	if err != nil {
		t.Fatalf("second execute: %v", err)
	}

	executions, err := svc.ListByAgent(ctx, agent.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(executions) != 2 {
		t.Fatalf("expected 2 executions, got %d", len(executions))
	}
	if executions[0].ID != second.ID || executions[1].ID != first.ID {
		t.Fatal("expected executions ordered newest first")
	}
}
