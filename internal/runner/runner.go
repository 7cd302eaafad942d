// Package runner implements the deterministic behavior variants that
// agent executions dispatch to. Each variant maps an input payload and
// the agent's configuration to a canned structured result.
package runner

import (
	"context"
	"fmt"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

// Runner executes one agent behavior variant.
type Runner interface {
	Run(ctx context.Context, input, config domain.Document) (domain.Document, error)
}

// ForType selects the runner for an agent type. Types outside the known
// set are an error; the dispatcher records them as failed executions.
func ForType(t domain.AgentType) (Runner, error) {
	switch t {
	case domain.AgentTypeCustomerSupport:
		return &CustomerSupport{}, nil
	case domain.AgentTypeDataAnalysis:
		return &DataAnalysis{}, nil
	case domain.AgentTypeMarketing:
		return &Marketing{}, nil
	case domain.AgentTypeContentGeneration:
		return &ContentGeneration{}, nil
	default:
		return nil, fmt.Errorf("unknown agent type: %s", t)
	}
}

// stringField reads a string sub-field from a document, falling back to
// def when the key is absent or not a string.
func stringField(d domain.Document, key, def string) string {
	if v, ok := d[key].(string); ok && v != "" {
		return v
	}
	return def
}
