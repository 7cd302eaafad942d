package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionStatus is monotonic: a record starts running and transitions
// exactly once to completed or failed, after which it is immutable.
type ExecutionStatus string

const (
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
)

// Execution is one attempt to run an agent against an input payload.
// Records form an append-only history per agent.
type Execution struct {
	ID           uuid.UUID       `json:"id"`
	AgentID      uuid.UUID       `json:"agent_id"`
	InputData    Document        `json:"input_data"`
	OutputData   Document        `json:"output_data"`
	Status       ExecutionStatus `json:"status"`
	ErrorMessage *string         `json:"error_message"`
	StartedAt    time.Time       `json:"started_at"`
	CompletedAt  *time.Time      `json:"completed_at"`
}
