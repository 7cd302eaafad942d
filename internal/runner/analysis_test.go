package runner

import (
	"context"
	"testing"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAnalysis_Run_Summary(t *testing.T) {
	rn := &DataAnalysis{}
	input := domain.Document{
		"data":          []any{1, 2, 3},
		"analysis_type": "summary",
	}

	out, err := rn.Run(context.Background(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, out["total_records"])
	assert.Equal(t, "Data analysis completed", out["summary"])
	assert.Len(t, out["insights"], 2)
}

func TestDataAnalysis_Run_DefaultsToSummary(t *testing.T) {
	rn := &DataAnalysis{}

	out, err := rn.Run(context.Background(), domain.Document{"data": []any{"row"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, out["total_records"])
}

func TestDataAnalysis_Run_EmptyData(t *testing.T) {
	rn := &DataAnalysis{}

	// Empty data is a business error in the result document, not a
	// failed run.
	out, err := rn.Run(context.Background(), domain.Document{"data": []any{}, "analysis_type": "summary"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "No data provided for analysis", out["error"])

	out, err = rn.Run(context.Background(), domain.Document{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "No data provided for analysis", out["error"])
}

func TestDataAnalysis_Run_UnsupportedType(t *testing.T) {
	rn := &DataAnalysis{}
	input := domain.Document{
		"data":          []any{1},
		"analysis_type": "clustering",
	}

	out, err := rn.Run(context.Background(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, "Unsupported analysis type: clustering", out["error"])
}
