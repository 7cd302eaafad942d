package runner

import (
	"context"
	"testing"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketing_Run(t *testing.T) {
	rn := &Marketing{}
	input := domain.Document{
		"campaign_type":   "social_media",
		"target_audience": "prospects",
	}

	out, err := rn.Run(context.Background(), input, nil)
	require.NoError(t, err)

	suggestions, ok := out["campaign_suggestions"].([]string)
	require.True(t, ok)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "Create social_media campaign for prospects", suggestions[0])
	assert.Equal(t, []string{"email", "social_media", "content_marketing"}, out["recommended_channels"])
	assert.Equal(t, 1000, out["estimated_reach"])
}

func TestMarketing_Run_Defaults(t *testing.T) {
	rn := &Marketing{}

	out, err := rn.Run(context.Background(), domain.Document{}, nil)
	require.NoError(t, err)

	suggestions := out["campaign_suggestions"].([]string)
	assert.Equal(t, "Create email campaign for general", suggestions[0])
}
