package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Chit-ai/ChittaFlow/internal/api/middleware"
	"github.com/Chit-ai/ChittaFlow/internal/domain"
	"github.com/Chit-ai/ChittaFlow/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AgentHandler struct {
	agents     *service.AgentService
	executions *service.ExecutionService
}

func NewAgentHandler(agents *service.AgentService, executions *service.ExecutionService) *AgentHandler {
	return &AgentHandler{agents: agents, executions: executions}
}

type createAgentRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	AgentType     string          `json:"agent_type"`
	Configuration domain.Document `json:"configuration"`
	UserID        string          `json:"user_id"`
}

func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
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

	agent := &domain.Agent{
		Name:          req.Name,
		Description:   req.Description,
		AgentType:     domain.AgentType(req.AgentType),
		Configuration: req.Configuration,
		UserID:        userID,
	}

	if err := h.agents.Create(r.Context(), agent); err != nil {
		switch {
		case errors.Is(err, service.ErrAgentNameMissing),
			errors.Is(err, service.ErrAgentTypeMissing),
			errors.Is(err, service.ErrOwnerMissing):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create agent")
		}
		return
	}

	writeJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())
	if userID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	agents, err := h.agents.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list agents")
		return
	}

	writeJSON(w, http.StatusOK, agents)
}

func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	agent, err := h.agents.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAgentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get agent")
		return
	}

	writeJSON(w, http.StatusOK, agent)
}

type updateAgentRequest struct {
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	AgentType     *string         `json:"agent_type"`
	Configuration domain.Document `json:"configuration"`
	IsActive      *bool           `json:"is_active"`
}

func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	var req updateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := service.AgentUpdate{
		Name:          req.Name,
		Description:   req.Description,
		Configuration: req.Configuration,
		IsActive:      req.IsActive,
	}
	if req.AgentType != nil {
		t := domain.AgentType(*req.AgentType)
		upd.AgentType = &t
	}

	agent, err := h.agents.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, service.ErrAgentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update agent")
		return
	}

	writeJSON(w, http.StatusOK, agent)
}

func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	if err := h.agents.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrAgentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete agent")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type executeAgentRequest struct {
	InputData domain.Document `json:"input_data"`
}

// Execute always answers 200 with a terminal execution record once the
// agent itself checks out; runner failures surface in the record's
// status and error_message, not as an error response.
func (h *AgentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	var req executeAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exec, err := h.executions.Execute(r.Context(), id, req.InputData)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAgentInactive):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to execute agent")
		}
		return
	}

	writeJSON(w, http.StatusOK, exec)
}

func (h *AgentHandler) ListExecutions(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	executions, err := h.executions.ListByAgent(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list executions")
		return
	}

	writeJSON(w, http.StatusOK, executions)
}

func agentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agent id")
		return uuid.Nil, false
	}
	return id, true
}
