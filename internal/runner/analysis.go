package runner

import (
	"context"
	"fmt"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

// DataAnalysis summarizes an input data sequence. A missing or empty
// sequence and an unsupported analysis type both produce an error-shaped
// result document rather than a failed execution.
type DataAnalysis struct{}

func (r *DataAnalysis) Run(ctx context.Context, input, config domain.Document) (domain.Document, error) {
	data, _ := input["data"].([]any)
	analysisType := stringField(input, "analysis_type", "summary")

	if len(data) == 0 {
		return domain.Document{"error": "No data provided for analysis"}, nil
	}

	if analysisType != "summary" {
		return domain.Document{"error": fmt.Sprintf("Unsupported analysis type: %s", analysisType)}, nil
	}

	return domain.Document{
		"total_records": len(data),
		"summary":       "Data analysis completed",
		"insights":      []string{"Sample insight 1", "Sample insight 2"},
	}, nil
}
