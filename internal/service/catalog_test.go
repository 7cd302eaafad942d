package service

import (
	"context"
	"testing"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

func TestCatalogService_Seed(t *testing.T) {
	svc := NewCatalogService(newMockTemplateStore())
	ctx := context.Background()

	created, templates, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !created {
		t.Fatal("expected first seed to create templates")
	}
	if len(templates) != 8 {
		t.Fatalf("expected 8 templates, got %d", len(templates))
	}

	perType := map[domain.AgentType]int{}
	premium := 0
	for _, tmpl := range templates {
		perType[tmpl.AgentType]++
		if tmpl.IsPremium {
			premium++
		}
		if len(tmpl.DefaultConfiguration) == 0 {
			t.Fatalf("template %q has empty default configuration", tmpl.Name)
		}
	}
	for _, agentType := range []domain.AgentType{
		domain.AgentTypeCustomerSupport,
		domain.AgentTypeDataAnalysis,
		domain.AgentTypeMarketing,
		domain.AgentTypeContentGeneration,
	} {
		if perType[agentType] != 2 {
			t.Fatalf("expected 2 templates for %s, got %d", agentType, perType[agentType])
		}
	}
	if premium != 4 {
		t.Fatalf("expected 4 premium templates, got %d", premium)
	}
}

func TestCatalogService_Seed_Idempotent(t *testing.T) {
	store := newMockTemplateStore()
	svc := NewCatalogService(store)
	ctx := context.Background()

	if _, _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	created, templates, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if created {
		t.Fatal("expected second seed to be a no-op")
	}
	if len(templates) != 8 {
		t.Fatalf("expected catalog unchanged at 8 templates, got %d", len(templates))
	}
	if len(store.templates) != 8 {
		t.Fatalf("expected zero inserts on second seed, store has %d", len(store.templates))
	}
}
