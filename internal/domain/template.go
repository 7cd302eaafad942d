package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is an immutable blueprint for creating agents. Templates are
// written once by the catalog seed and only ever read after that.
type Template struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	AgentType            AgentType `json:"agent_type"`
	IsPremium            bool      `json:"is_premium"`
	DefaultConfiguration Document  `json:"default_configuration"`
	CreatedAt            time.Time `json:"created_at"`
}
