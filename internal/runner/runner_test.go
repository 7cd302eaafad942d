package runner

import (
	"testing"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForType(t *testing.T) {
	tests := []struct {
		agentType domain.AgentType
		want      Runner
	}{
		{domain.AgentTypeCustomerSupport, &CustomerSupport{}},
		{domain.AgentTypeDataAnalysis, &DataAnalysis{}},
		{domain.AgentTypeMarketing, &Marketing{}},
		{domain.AgentTypeContentGeneration, &ContentGeneration{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.agentType), func(t *testing.T) {
			rn, err := ForType(tt.agentType)
			require.NoError(t, err)
			assert.IsType(t, tt.want, rn)
		})
	}
}

func TestForType_Unknown(t *testing.T) {
	rn, err := ForType("fortune_telling")
	require.Error(t, err)
	assert.Nil(t, rn)
	assert.EqualError(t, err, "unknown agent type: fortune_telling")
}
