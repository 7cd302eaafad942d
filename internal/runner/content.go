package runner

import (
	"context"
	"fmt"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

// ContentGeneration produces placeholder content for a content type and
// topic. It always succeeds.
type ContentGeneration struct{}

func (r *ContentGeneration) Run(ctx context.Context, input, config domain.Document) (domain.Document, error) {
	contentType := stringField(input, "content_type", "blog_post")
	topic := stringField(input, "topic", "AI and automation")

	return domain.Document{
		"content_type":      contentType,
		"topic":             topic,
		"generated_content": fmt.Sprintf("This is a sample %s about %s. In a real implementation, this would be generated using advanced language models.", contentType, topic),
		"word_count":        150,
		"suggestions":       []string{"Add more examples", "Include statistics", "Optimize for SEO"},
	}, nil
}
