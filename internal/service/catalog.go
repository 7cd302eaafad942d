package service

import (
	"context"
	"fmt"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

// CatalogService owns the fixed template catalog. Seeding is a one-time
// bootstrap: once any template exists it becomes a no-op.
type CatalogService struct {
	templates domain.TemplateStore
}

func NewCatalogService(templates domain.TemplateStore) *CatalogService {
	return &CatalogService{templates: templates}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Template, error) {
	return s.templates.List(ctx)
}

// Seed inserts the built-in catalog if the store is empty. It returns
// whether templates were created this call and the full catalog either way.
func (s *CatalogService) Seed(ctx context.Context) (bool, []domain.Template, error) {
	count, err := s.templates.Count(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("count templates: %w", err)
	}
	if count > 0 {
		existing, err := s.templates.List(ctx)
		return false, existing, err
	}

	for _, tmpl := range defaultCatalog() {
		t := tmpl
		if err := s.templates.Create(ctx, &t); err != nil {
			return false, nil, fmt.Errorf("create template %q: %w", t.Name, err)
		}
	}

	created, err := s.templates.List(ctx)
	return true, created, err
}

// defaultCatalog is the built-in set of eight templates, a free and a
// premium tier for each agent type.
func defaultCatalog() []domain.Template {
	return []domain.Template{
		{
			Name:        "Basic Customer Support Bot",
			Description: "A simple customer support agent that can handle common inquiries and escalate complex issues.",
			AgentType:   domain.AgentTypeCustomerSupport,
			IsPremium:   false,
			DefaultConfiguration: domain.Document{
				"response_style":          "friendly",
				"escalation_threshold":    0.7,
				"supported_languages":     []string{"en"},
				"max_conversation_length": 10,
			},
		},
		{
			Name:        "Advanced Customer Support Agent",
			Description: "An advanced customer support agent with multi-language support and sentiment analysis.",
			AgentType:   domain.AgentTypeCustomerSupport,
			IsPremium:   true,
			DefaultConfiguration: domain.Document{
				"response_style":          "professional",
				"escalation_threshold":    0.8,
				"supported_languages":     []string{"en", "es", "fr", "de"},
				"sentiment_analysis":      true,
				"max_conversation_length": 20,
				"integration_apis":        []string{"zendesk", "salesforce"},
			},
		},
		{
			Name:        "Data Analysis Assistant",
			Description: "Analyzes datasets and provides insights and visualizations.",
			AgentType:   domain.AgentTypeDataAnalysis,
			IsPremium:   false,
			DefaultConfiguration: domain.Document{
				"supported_formats": []string{"csv", "json"},
				"max_file_size":     "10MB",
				"analysis_types":    []string{"summary", "trends", "correlations"},
			},
		},
		{
			Name:        "Advanced Data Scientist",
			Description: "Advanced data analysis with machine learning capabilities and custom visualizations.",
			AgentType:   domain.AgentTypeDataAnalysis,
			IsPremium:   true,
			DefaultConfiguration: domain.Document{
				"supported_formats":     []string{"csv", "json", "xlsx", "parquet"},
				"max_file_size":         "100MB",
				"analysis_types":        []string{"summary", "trends", "correlations", "predictions", "clustering"},
				"ml_models":             []string{"regression", "classification", "clustering"},
				"custom_visualizations": true,
			},
		},
		{
			Name:        "Marketing Campaign Assistant",
			Description: "Helps create and optimize marketing campaigns across different channels.",
			AgentType:   domain.AgentTypeMarketing,
			IsPremium:   false,
			DefaultConfiguration: domain.Document{
				"campaign_types":      []string{"email", "social_media"},
				"target_audiences":    []string{"general", "existing_customers"},
				"content_suggestions": true,
			},
		},
		{
			Name:        "AI Marketing Strategist",
			Description: "Advanced marketing agent with A/B testing, personalization, and multi-channel optimization.",
			AgentType:   domain.AgentTypeMarketing,
			IsPremium:   true,
			DefaultConfiguration: domain.Document{
				"campaign_types":   []string{"email", "social_media", "ppc", "content_marketing"},
				"target_audiences": []string{"general", "existing_customers", "prospects", "custom_segments"},
				"ab_testing":       true,
				"personalization":  true,
				"roi_optimization": true,
				"integration_apis": []string{"mailchimp", "hubspot", "google_ads"},
			},
		},
		{
			Name:        "Content Writer",
			Description: "Generates various types of content including blog posts, social media posts, and marketing copy.",
			AgentType:   domain.AgentTypeContentGeneration,
			IsPremium:   false,
			DefaultConfiguration: domain.Document{
				"content_types":  []string{"blog_post", "social_media_post", "email"},
				"max_word_count": 500,
				"tone_options":   []string{"professional", "casual", "friendly"},
			},
		},
		{
			Name:        "AI Content Creator Pro",
			Description: "Advanced content generation with SEO optimization, brand voice consistency, and multi-format support.",
			AgentType:   domain.AgentTypeContentGeneration,
			IsPremium:   true,
			DefaultConfiguration: domain.Document{
				"content_types":          []string{"blog_post", "social_media_post", "email", "landing_page", "product_description", "press_release"},
				"max_word_count":         2000,
				"tone_options":           []string{"professional", "casual", "friendly", "authoritative", "conversational"},
				"seo_optimization":       true,
				"brand_voice_training":   true,
				"plagiarism_check":       true,
				"multi_language_support": true,
			},
		},
	}
}
