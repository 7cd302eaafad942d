package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgentType identifies the behavior variant an agent executes as.
// Creation accepts any non-empty value; dispatch rejects types outside
// the known set at execution time.
type AgentType string

const (
	AgentTypeCustomerSupport   AgentType = "customer_support"
	AgentTypeDataAnalysis      AgentType = "data_analysis"
	AgentTypeMarketing         AgentType = "marketing"
	AgentTypeContentGeneration AgentType = "content_generation"
)

type Agent struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	AgentType     AgentType `json:"agent_type"`
	Configuration Document  `json:"configuration"`
	IsActive      bool      `json:"is_active"`
	UserID        uuid.UUID `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
