package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Chit-ai/ChittaFlow/internal/api/middleware"
	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/Chit-ai/ChittaFlow/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	catalog *service.CatalogService
	agents  *service.AgentService
}

func NewTemplateHandler(catalog *service.CatalogService, agents *service.AgentService) *TemplateHandler {
	return &TemplateHandler{catalog: catalog, agents: agents}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}

	writeJSON(w, http.StatusOK, templates)
}

type createFromTemplateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UserID      string  `json:"user_id"`
}

func (h *TemplateHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	templateID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	var req createFromTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.UserFromContext(r.Context())
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		userID = id
	}

	agent, err := h.agents.InstantiateFromTemplate(r.Context(), templateID, userID, service.TemplateOverrides{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPremiumRequired):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrOwnerMissing):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create agent from template")
		}
		return
	}

	writeJSON(w, http.StatusCreated, agent)
}

type seedTemplatesResponse struct {
	Message   string            `json:"message"`
	Templates []domain.Template `json:"templates,omitempty"`
}

// Seed bootstraps the template catalog. Repeat calls are no-ops that
// answer 200 instead of 201.
func (h *TemplateHandler) Seed(w http.ResponseWriter, r *http.Request) {
	created, templates, err := h.catalog.Seed(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to seed templates")
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, seedTemplatesResponse{Message: "Templates already exist"})
		return
	}

	writeJSON(w, http.StatusCreated, seedTemplatesResponse{
		Message:   fmt.Sprintf("Successfully created %d agent templates", len(templates)),
		Templates: templates,
	})
}
