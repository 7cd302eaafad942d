package runner

import (
	"context"
	"fmt"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

// Marketing suggests a campaign outline for a campaign type and target
// audience. It always succeeds.
type Marketing struct{}

func (r *Marketing) Run(ctx context.Context, input, config domain.Document) (domain.Document, error) {
	campaignType := stringField(input, "campaign_type", "email")
	targetAudience := stringField(input, "target_audience", "general")

	return domain.Document{
		"campaign_suggestions": []string{
			fmt.Sprintf("Create %s campaign for %s", campaignType, targetAudience),
			"Focus on value proposition",
			"Include clear call-to-action",
		},
		"recommended_channels": []string{"email", "social_media", "content_marketing"},
		"estimated_reach":      1000,
	}, nil
}
