package runner

import (
	"context"
	"strings"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

// CustomerSupport answers free-text messages with keyword-triggered
// canned flows. Matching is case-insensitive; the first rule that
// matches wins, in the order refund, technical, fallback.
type CustomerSupport struct{}

func (r *CustomerSupport) Run(ctx context.Context, input, config domain.Document) (domain.Document, error) {
	message := strings.ToLower(stringField(input, "message", ""))

	switch {
	case strings.Contains(message, "refund"):
		return domain.Document{
			"response":          "I understand you're looking for a refund. Let me help you with that. Please provide your order number.",
			"suggested_actions": []string{"escalate_to_human", "request_order_number"},
			"confidence":        0.85,
		}, nil
	case strings.Contains(message, "technical") || strings.Contains(message, "bug"):
		return domain.Document{
			"response":          "I see you're experiencing a technical issue. Let me gather some information to help resolve this.",
			"suggested_actions": []string{"collect_system_info", "create_ticket"},
			"confidence":        0.90,
		}, nil
	default:
		return domain.Document{
			"response":          "Thank you for contacting us. How can I assist you today?",
			"suggested_actions": []string{"clarify_intent"},
			"confidence":        0.70,
		}, nil
	}
}
